package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DvEyZ/rkblog-be/internal/apperr"
	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/DvEyZ/rkblog-be/internal/mock"
	"github.com/DvEyZ/rkblog-be/internal/store"
	"github.com/DvEyZ/rkblog-be/internal/utils"
	"github.com/DvEyZ/rkblog-be/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAccountServiceWithMocks(t *testing.T) (AccountService, *mock.MockAccountRepository, *mock.MockPostRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountRepository(ctrl)
	posts := mock.NewMockPostRepository(ctrl)

	return NewAccountService(accounts, posts, testAppConfig(), logger.Nop()), accounts, posts
}

func adminCaller() models.AccessClaims {
	return models.AccessClaims{AccountID: "admin-id", Name: "root", Permissions: models.PermissionAdmin}
}

func userCaller(name string) models.AccessClaims {
	return models.AccessClaims{AccountID: name + "-id", Name: name, Permissions: models.PermissionUser}
}

func TestAccountService_List(t *testing.T) {
	svc, accounts, _ := newAccountServiceWithMocks(t)
	ctx := context.Background()

	accounts.EXPECT().
		List(ctx).
		Return([]models.Account{
			{ID: "id-1", Name: "alice", PasswordHash: "h1"},
			{ID: "id-2", Name: "bob", PasswordHash: "h2"},
		}, nil)

	briefs, err := svc.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, []models.AccountBrief{
		{ID: "id-1", Name: "alice"},
		{ID: "id-2", Name: "bob"},
	}, briefs)
}

func TestAccountService_Get(t *testing.T) {
	svc, accounts, _ := newAccountServiceWithMocks(t)
	ctx := context.Background()

	accounts.EXPECT().
		FindByName(ctx, "alice").
		Return(models.Account{ID: "id-1", Name: "alice", PasswordHash: "hash", Permissions: models.PermissionUser, Bio: "hi"}, nil)

	read, err := svc.Get(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", read.Name)
	assert.Equal(t, "hi", read.Bio)
}

func TestAccountService_Get_NotFound(t *testing.T) {
	svc, accounts, _ := newAccountServiceWithMocks(t)

	accounts.EXPECT().
		FindByName(gomock.Any(), "ghost").
		Return(models.Account{}, store.ErrAccountNotFound)

	_, err := svc.Get(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestAccountService_Create(t *testing.T) {
	svc, accounts, _ := newAccountServiceWithMocks(t)
	ctx := context.Background()

	write := models.AccountWrite{Name: "carol", Password: "pw", Permissions: models.PermissionUser, Bio: "bio"}

	accounts.EXPECT().
		FindByName(ctx, "carol").
		Return(models.Account{}, store.ErrAccountNotFound)

	accounts.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, account models.Account) (models.Account, error) {
			assert.NotEmpty(t, account.ID)
			assert.Equal(t, "carol", account.Name)
			assert.Equal(t, utils.HashString("pw", testHashKey), account.PasswordHash)
			assert.Equal(t, models.PermissionUser, account.Permissions)
			return account, nil
		})

	read, err := svc.Create(ctx, write)
	require.NoError(t, err)
	assert.Equal(t, "carol", read.Name)
}

func TestAccountService_Create_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		write    models.AccountWrite
		prepare  func(accounts *mock.MockAccountRepository)
		wantKind apperr.Kind
	}{
		{
			name:     "missing name",
			write:    models.AccountWrite{Password: "pw", Permissions: models.PermissionUser},
			wantKind: apperr.KindMalformed,
		},
		{
			name:     "missing password",
			write:    models.AccountWrite{Name: "carol", Permissions: models.PermissionUser},
			wantKind: apperr.KindMalformed,
		},
		{
			name:     "unknown permission level",
			write:    models.AccountWrite{Name: "carol", Password: "pw", Permissions: "Root"},
			wantKind: apperr.KindMalformed,
		},
		{
			name:  "name already taken",
			write: models.AccountWrite{Name: "alice", Password: "pw", Permissions: models.PermissionUser},
			prepare: func(accounts *mock.MockAccountRepository) {
				accounts.EXPECT().
					FindByName(gomock.Any(), "alice").
					Return(models.Account{ID: "id-1", Name: "alice"}, nil)
			},
			wantKind: apperr.KindConflict,
		},
		{
			name:  "unique constraint wins a concurrent race",
			write: models.AccountWrite{Name: "carol", Password: "pw", Permissions: models.PermissionUser},
			prepare: func(accounts *mock.MockAccountRepository) {
				accounts.EXPECT().
					FindByName(gomock.Any(), "carol").
					Return(models.Account{}, store.ErrAccountNotFound)
				accounts.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(models.Account{}, store.ErrAccountNameTaken)
			},
			wantKind: apperr.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, accounts, _ := newAccountServiceWithMocks(t)
			if tt.prepare != nil {
				tt.prepare(accounts)
			}

			_, err := svc.Create(context.Background(), tt.write)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperr.KindOf(err))
		})
	}
}

func TestAccountService_Update_OwnerSucceeds(t *testing.T) {
	svc, accounts, _ := newAccountServiceWithMocks(t)
	ctx := context.Background()

	origin := models.Account{ID: "id-1", Name: "alice", PasswordHash: "old", Permissions: models.PermissionUser}
	write := models.AccountWrite{Name: "alice", Password: "new-pw", Permissions: models.PermissionUser, Bio: "updated"}

	accounts.EXPECT().
		FindByName(ctx, "alice").
		Return(origin, nil)

	accounts.EXPECT().
		Replace(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, account models.Account) (models.Account, error) {
			// identifier survives the replace
			assert.Equal(t, "id-1", account.ID)
			assert.Equal(t, "updated", account.Bio)
			return account, nil
		})

	read, err := svc.Update(ctx, "alice", write, userCaller("alice"))
	require.NoError(t, err)
	assert.Equal(t, "updated", read.Bio)
}

func TestAccountService_Update_OtherUserForbidden(t *testing.T) {
	svc, accounts, _ := newAccountServiceWithMocks(t)

	accounts.EXPECT().
		FindByName(gomock.Any(), "alice").
		Return(models.Account{ID: "id-1", Name: "alice"}, nil)

	_, err := svc.Update(context.Background(), "alice",
		models.AccountWrite{Name: "alice", Password: "pw", Permissions: models.PermissionUser},
		userCaller("bob"))
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestAccountService_Update_AdminSucceeds(t *testing.T) {
	svc, accounts, _ := newAccountServiceWithMocks(t)
	ctx := context.Background()

	accounts.EXPECT().
		FindByName(ctx, "alice").
		Return(models.Account{ID: "id-1", Name: "alice"}, nil)

	accounts.EXPECT().
		Replace(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, account models.Account) (models.Account, error) {
			return account, nil
		})

	_, err := svc.Update(ctx, "alice",
		models.AccountWrite{Name: "alice", Password: "pw", Permissions: models.PermissionUser},
		adminCaller())
	assert.NoError(t, err)
}

func TestAccountService_Delete_CascadesPosts(t *testing.T) {
	svc, accounts, posts := newAccountServiceWithMocks(t)
	ctx := context.Background()

	account := models.Account{ID: "id-1", Name: "alice"}

	accounts.EXPECT().
		FindByName(ctx, "alice").
		Return(account, nil)

	// posts go first so no author reference dangles mid-operation
	gomock.InOrder(
		posts.EXPECT().DeleteByAuthor(ctx, "id-1").Return(nil),
		accounts.EXPECT().Delete(ctx, "id-1").Return(nil),
	)

	read, err := svc.Delete(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", read.Name)
}

func TestAccountService_Delete_CascadeFailureAborts(t *testing.T) {
	svc, accounts, posts := newAccountServiceWithMocks(t)
	ctx := context.Background()

	accounts.EXPECT().
		FindByName(ctx, "alice").
		Return(models.Account{ID: "id-1", Name: "alice"}, nil)

	posts.EXPECT().
		DeleteByAuthor(ctx, "id-1").
		Return(errors.New("disk on fire"))

	_, err := svc.Delete(ctx, "alice")
	require.Error(t, err)
	assert.Equal(t, apperr.KindServerFault, apperr.KindOf(err))
}

func TestAccountService_Delete_NotFound(t *testing.T) {
	svc, accounts, _ := newAccountServiceWithMocks(t)

	accounts.EXPECT().
		FindByName(gomock.Any(), "ghost").
		Return(models.Account{}, store.ErrAccountNotFound)

	_, err := svc.Delete(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
