package service

import (
	"context"
	"testing"

	"github.com/DvEyZ/rkblog-be/internal/apperr"
	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/DvEyZ/rkblog-be/internal/mock"
	"github.com/DvEyZ/rkblog-be/internal/store"
	"github.com/DvEyZ/rkblog-be/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPostServiceWithMocks(t *testing.T) (PostService, *mock.MockPostRepository, *mock.MockAccountRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	posts := mock.NewMockPostRepository(ctrl)
	accounts := mock.NewMockAccountRepository(ctrl)

	return NewPostService(posts, accounts, logger.Nop()), posts, accounts
}

func carolsPost() models.Post {
	return models.Post{ID: "post-1", Title: "hello", Content: "world", AuthorID: "carol-id"}
}

func carol() models.Account {
	return models.Account{ID: "carol-id", Name: "carol", Permissions: models.PermissionUser}
}

func bob() models.Account {
	return models.Account{ID: "bob-id", Name: "bob", Permissions: models.PermissionUser}
}

func TestPostService_List(t *testing.T) {
	svc, posts, accounts := newPostServiceWithMocks(t)
	ctx := context.Background()

	posts.EXPECT().
		List(ctx).
		Return([]models.Post{carolsPost()}, nil)

	accounts.EXPECT().
		FindByID(ctx, "carol-id").
		Return(carol(), nil)

	briefs, err := svc.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, []models.PostBrief{
		{ID: "post-1", Title: "hello", Author: "carol"},
	}, briefs)
}

func TestPostService_Get(t *testing.T) {
	svc, posts, accounts := newPostServiceWithMocks(t)
	ctx := context.Background()

	posts.EXPECT().
		FindByTitle(ctx, "hello").
		Return(carolsPost(), nil)

	accounts.EXPECT().
		FindByID(ctx, "carol-id").
		Return(carol(), nil)

	read, err := svc.Get(ctx, "hello")
	require.NoError(t, err)

	assert.Equal(t, models.PostRead{
		ID:      "post-1",
		Title:   "hello",
		Content: "world",
		Author:  models.AccountBrief{ID: "carol-id", Name: "carol"},
	}, read)
}

func TestPostService_Get_DanglingAuthor(t *testing.T) {
	svc, posts, accounts := newPostServiceWithMocks(t)

	posts.EXPECT().
		FindByTitle(gomock.Any(), "hello").
		Return(carolsPost(), nil)

	accounts.EXPECT().
		FindByID(gomock.Any(), "carol-id").
		Return(models.Account{}, store.ErrAccountNotFound)

	_, err := svc.Get(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestPostService_Create(t *testing.T) {
	svc, posts, accounts := newPostServiceWithMocks(t)
	ctx := context.Background()

	posts.EXPECT().
		FindByTitle(ctx, "fresh").
		Return(models.Post{}, store.ErrPostNotFound)

	accounts.EXPECT().
		FindByName(ctx, "bob").
		Return(bob(), nil)

	posts.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, post models.Post) (models.Post, error) {
			assert.NotEmpty(t, post.ID)
			assert.Equal(t, "fresh", post.Title)
			assert.Equal(t, "bob-id", post.AuthorID)
			return post, nil
		})

	read, err := svc.Create(ctx, models.PostWrite{Title: "fresh", Content: "content"}, userCaller("bob"))
	require.NoError(t, err)

	assert.Equal(t, "fresh", read.Title)
	assert.Equal(t, "bob", read.Author.Name)
}

func TestPostService_Create_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		write    models.PostWrite
		prepare  func(posts *mock.MockPostRepository, accounts *mock.MockAccountRepository)
		wantKind apperr.Kind
	}{
		{
			name:     "missing title",
			write:    models.PostWrite{Content: "content"},
			wantKind: apperr.KindMalformed,
		},
		{
			name:  "duplicate title",
			write: models.PostWrite{Title: "hello"},
			prepare: func(posts *mock.MockPostRepository, _ *mock.MockAccountRepository) {
				posts.EXPECT().
					FindByTitle(gomock.Any(), "hello").
					Return(carolsPost(), nil)
			},
			wantKind: apperr.KindConflict,
		},
		{
			name:  "unique constraint wins a concurrent race",
			write: models.PostWrite{Title: "fresh"},
			prepare: func(posts *mock.MockPostRepository, accounts *mock.MockAccountRepository) {
				posts.EXPECT().
					FindByTitle(gomock.Any(), "fresh").
					Return(models.Post{}, store.ErrPostNotFound)
				accounts.EXPECT().
					FindByName(gomock.Any(), "bob").
					Return(bob(), nil)
				posts.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(models.Post{}, store.ErrPostTitleTaken)
			},
			wantKind: apperr.KindConflict,
		},
		{
			name:  "caller account no longer exists",
			write: models.PostWrite{Title: "fresh"},
			prepare: func(posts *mock.MockPostRepository, accounts *mock.MockAccountRepository) {
				posts.EXPECT().
					FindByTitle(gomock.Any(), "fresh").
					Return(models.Post{}, store.ErrPostNotFound)
				accounts.EXPECT().
					FindByName(gomock.Any(), "bob").
					Return(models.Account{}, store.ErrAccountNotFound)
			},
			wantKind: apperr.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, posts, accounts := newPostServiceWithMocks(t)
			if tt.prepare != nil {
				tt.prepare(posts, accounts)
			}

			_, err := svc.Create(context.Background(), tt.write, userCaller("bob"))
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperr.KindOf(err))
		})
	}
}

func TestPostService_Update_OwnerSucceeds(t *testing.T) {
	svc, posts, accounts := newPostServiceWithMocks(t)
	ctx := context.Background()

	posts.EXPECT().
		FindByTitle(ctx, "hello").
		Return(carolsPost(), nil)

	accounts.EXPECT().
		FindByID(ctx, "carol-id").
		Return(carol(), nil)

	accounts.EXPECT().
		FindByName(ctx, "carol").
		Return(carol(), nil)

	posts.EXPECT().
		Replace(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, post models.Post) (models.Post, error) {
			assert.Equal(t, "post-1", post.ID)
			assert.Equal(t, "renamed", post.Title)
			assert.Equal(t, "carol-id", post.AuthorID)
			return post, nil
		})

	read, err := svc.Update(ctx, "hello", models.PostWrite{Title: "renamed", Content: "new"}, userCaller("carol"))
	require.NoError(t, err)
	assert.Equal(t, "renamed", read.Title)
}

func TestPostService_Update_OtherUserForbidden(t *testing.T) {
	svc, posts, accounts := newPostServiceWithMocks(t)

	posts.EXPECT().
		FindByTitle(gomock.Any(), "hello").
		Return(carolsPost(), nil)

	accounts.EXPECT().
		FindByID(gomock.Any(), "carol-id").
		Return(carol(), nil)

	_, err := svc.Update(context.Background(), "hello", models.PostWrite{Title: "renamed"}, userCaller("bob"))
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

// An administrator may rewrite anyone's post; the replacement is recorded as
// authored by the administrator.
func TestPostService_Update_AdminReassignsAuthor(t *testing.T) {
	svc, posts, accounts := newPostServiceWithMocks(t)
	ctx := context.Background()

	admin := models.Account{ID: "admin-id", Name: "root", Permissions: models.PermissionAdmin}

	posts.EXPECT().
		FindByTitle(ctx, "hello").
		Return(carolsPost(), nil)

	accounts.EXPECT().
		FindByID(ctx, "carol-id").
		Return(carol(), nil)

	accounts.EXPECT().
		FindByName(ctx, "root").
		Return(admin, nil)

	posts.EXPECT().
		Replace(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, post models.Post) (models.Post, error) {
			assert.Equal(t, "admin-id", post.AuthorID)
			return post, nil
		})

	read, err := svc.Update(ctx, "hello", models.PostWrite{Title: "hello", Content: "moderated"}, adminCaller())
	require.NoError(t, err)
	assert.Equal(t, "root", read.Author.Name)
}

func TestPostService_Delete_OwnerSucceeds(t *testing.T) {
	svc, posts, accounts := newPostServiceWithMocks(t)
	ctx := context.Background()

	posts.EXPECT().
		FindByTitle(ctx, "hello").
		Return(carolsPost(), nil)

	accounts.EXPECT().
		FindByID(ctx, "carol-id").
		Return(carol(), nil)

	posts.EXPECT().
		Delete(ctx, "post-1").
		Return(nil)

	read, err := svc.Delete(ctx, "hello", userCaller("carol"))
	require.NoError(t, err)
	assert.Equal(t, "hello", read.Title)
}

func TestPostService_Delete_OtherUserForbidden(t *testing.T) {
	svc, posts, accounts := newPostServiceWithMocks(t)

	posts.EXPECT().
		FindByTitle(gomock.Any(), "hello").
		Return(carolsPost(), nil)

	accounts.EXPECT().
		FindByID(gomock.Any(), "carol-id").
		Return(carol(), nil)

	_, err := svc.Delete(context.Background(), "hello", userCaller("bob"))
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestPostService_Delete_AdminSucceeds(t *testing.T) {
	svc, posts, accounts := newPostServiceWithMocks(t)
	ctx := context.Background()

	posts.EXPECT().
		FindByTitle(ctx, "hello").
		Return(carolsPost(), nil)

	accounts.EXPECT().
		FindByID(ctx, "carol-id").
		Return(carol(), nil)

	posts.EXPECT().
		Delete(ctx, "post-1").
		Return(nil)

	_, err := svc.Delete(ctx, "hello", adminCaller())
	assert.NoError(t, err)
}

func TestPostService_Delete_NotFound(t *testing.T) {
	svc, posts, _ := newPostServiceWithMocks(t)

	posts.EXPECT().
		FindByTitle(gomock.Any(), "ghost").
		Return(models.Post{}, store.ErrPostNotFound)

	_, err := svc.Delete(context.Background(), "ghost", adminCaller())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
