package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DvEyZ/rkblog-be/internal/apperr"
	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/DvEyZ/rkblog-be/internal/mock"
	"github.com/DvEyZ/rkblog-be/internal/service"
	"github.com/DvEyZ/rkblog-be/internal/utils"
	"github.com/DvEyZ/rkblog-be/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

func newHandlerWithAccountService(accountSvc service.AccountService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AccountService: accountSvc,
		},
	}
}

// executeWithURLParam runs handlerFn over a synthetic request carrying a chi
// URL parameter and, optionally, a verified caller identity in the context.
func executeWithURLParam(handlerFn http.HandlerFunc, method, target, paramKey, paramValue string, body io.Reader, claims *models.AccessClaims) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	req = injectNopLogger(req)

	if paramKey != "" {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add(paramKey, paramValue)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	}

	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), utils.ClaimsCtxKey, *claims))
	}

	rr := httptest.NewRecorder()
	handlerFn(rr, req)
	return rr
}

// ---- List ----

func TestListAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountSvc := mock.NewMockAccountService(ctrl)
	h := newHandlerWithAccountService(accountSvc)

	accountSvc.EXPECT().
		List(gomock.Any()).
		Return([]models.AccountBrief{
			{ID: "id-1", Name: "alice"},
			{ID: "id-2", Name: "bob"},
		}, nil)

	rr := executeWithURLParam(h.listAccounts, http.MethodGet, "/api/accounts", "", "", nil, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"_id":"id-1","name":"alice"},{"_id":"id-2","name":"bob"}]`, rr.Body.String())
}

// ---- Get ----

func TestGetAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountSvc := mock.NewMockAccountService(ctrl)
	h := newHandlerWithAccountService(accountSvc)

	accountSvc.EXPECT().
		Get(gomock.Any(), "alice").
		Return(models.AccountRead{ID: "id-1", Name: "alice", Permissions: models.PermissionUser, Bio: "hi"}, nil)

	rr := executeWithURLParam(h.getAccount, http.MethodGet, "/api/accounts/alice", "name", "alice", nil, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"_id":"id-1","name":"alice","permissions":"User","bio":"hi"}`, rr.Body.String())
}

func TestGetAccount_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountSvc := mock.NewMockAccountService(ctrl)
	h := newHandlerWithAccountService(accountSvc)

	accountSvc.EXPECT().
		Get(gomock.Any(), "ghost").
		Return(models.AccountRead{}, apperr.New(apperr.KindNotFound, "Account ghost not found."))

	rr := executeWithURLParam(h.getAccount, http.MethodGet, "/api/accounts/ghost", "name", "ghost", nil, nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Account ghost not found."}`, rr.Body.String())
}

// ---- Create ----

func TestCreateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountSvc := mock.NewMockAccountService(ctrl)
	h := newHandlerWithAccountService(accountSvc)

	accountSvc.EXPECT().
		Create(gomock.Any(), models.AccountWrite{Name: "carol", Password: "pw", Permissions: models.PermissionUser}).
		Return(models.AccountRead{ID: "id-3", Name: "carol", Permissions: models.PermissionUser}, nil)

	body := strings.NewReader(`{"name":"carol","password":"pw","permissions":"User"}`)
	rr := executeWithURLParam(h.createAccount, http.MethodPost, "/api/accounts", "", "", body, nil)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"_id":"id-3","name":"carol","permissions":"User"}`, rr.Body.String())
}

func TestCreateAccount_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountSvc := mock.NewMockAccountService(ctrl)
	h := newHandlerWithAccountService(accountSvc)

	accountSvc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(models.AccountRead{}, apperr.New(apperr.KindConflict, "Account carol already exists."))

	body := strings.NewReader(`{"name":"carol","password":"pw","permissions":"User"}`)
	rr := executeWithURLParam(h.createAccount, http.MethodPost, "/api/accounts", "", "", body, nil)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"message":"Account carol already exists."}`, rr.Body.String())
}

func TestCreateAccount_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountSvc := mock.NewMockAccountService(ctrl)
	h := newHandlerWithAccountService(accountSvc)

	body := strings.NewReader("{broken")
	rr := executeWithURLParam(h.createAccount, http.MethodPost, "/api/accounts", "", "", body, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ---- Update ----

func TestUpdateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountSvc := mock.NewMockAccountService(ctrl)
	h := newHandlerWithAccountService(accountSvc)

	caller := models.AccessClaims{AccountID: "id-1", Name: "alice", Permissions: models.PermissionUser}

	accountSvc.EXPECT().
		Update(gomock.Any(), "alice", models.AccountWrite{Name: "alice", Password: "new", Permissions: models.PermissionUser}, caller).
		Return(models.AccountRead{ID: "id-1", Name: "alice", Permissions: models.PermissionUser}, nil)

	body := strings.NewReader(`{"name":"alice","password":"new","permissions":"User"}`)
	rr := executeWithURLParam(h.updateAccount, http.MethodPut, "/api/accounts/alice", "name", "alice", body, &caller)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUpdateAccount_MissingClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountSvc := mock.NewMockAccountService(ctrl)
	h := newHandlerWithAccountService(accountSvc)

	body := strings.NewReader(`{"name":"alice","password":"new","permissions":"User"}`)
	rr := executeWithURLParam(h.updateAccount, http.MethodPut, "/api/accounts/alice", "name", "alice", body, nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestUpdateAccount_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountSvc := mock.NewMockAccountService(ctrl)
	h := newHandlerWithAccountService(accountSvc)

	caller := models.AccessClaims{AccountID: "id-2", Name: "bob", Permissions: models.PermissionUser}

	accountSvc.EXPECT().
		Update(gomock.Any(), "alice", gomock.Any(), caller).
		Return(models.AccountRead{}, apperr.New(apperr.KindForbidden, "You don't have permission to modify this resource."))

	body := strings.NewReader(`{"name":"alice","password":"new","permissions":"User"}`)
	rr := executeWithURLParam(h.updateAccount, http.MethodPut, "/api/accounts/alice", "name", "alice", body, &caller)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"message":"You don't have permission to modify this resource."}`, rr.Body.String())
}

// ---- Delete ----

func TestDeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountSvc := mock.NewMockAccountService(ctrl)
	h := newHandlerWithAccountService(accountSvc)

	accountSvc.EXPECT().
		Delete(gomock.Any(), "alice").
		Return(models.AccountRead{ID: "id-1", Name: "alice", Permissions: models.PermissionUser}, nil)

	rr := executeWithURLParam(h.deleteAccount, http.MethodDelete, "/api/accounts/alice", "name", "alice", nil, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"_id":"id-1","name":"alice","permissions":"User"}`, rr.Body.String())
}
