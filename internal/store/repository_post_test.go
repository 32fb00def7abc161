package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/DvEyZ/rkblog-be/models"
	"github.com/jackc/pgerrcode"
)

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &postRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func postRows(posts ...models.Post) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "content", "author_id"})
	for _, p := range posts {
		rows.AddRow(p.ID, p.Title, p.Content, p.AuthorID)
	}
	return rows
}

func TestPostCreate_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	post := models.Post{ID: "post-1", Title: "hello", Content: "world", AuthorID: "carol-id"}

	mock.ExpectQuery("INSERT INTO posts").
		WithArgs(post.ID, post.Title, post.Content, post.AuthorID).
		WillReturnRows(postRows(post))

	created, err := repo.Create(context.Background(), post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Title != "hello" {
		t.Errorf("expected title hello, got %s", created.Title)
	}
}

func TestPostCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO posts").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), models.Post{Title: "hello"})
	if !errors.Is(err, ErrPostTitleTaken) {
		t.Errorf("expected ErrPostTitleTaken, got %v", err)
	}
}

func TestPostFindByTitle_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	post := models.Post{ID: "post-1", Title: "hello", Content: "world", AuthorID: "carol-id"}

	mock.ExpectQuery("SELECT id, title, content, author_id FROM posts").
		WithArgs("hello").
		WillReturnRows(postRows(post))

	found, err := repo.FindByTitle(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.AuthorID != "carol-id" {
		t.Errorf("expected carol-id, got %s", found.AuthorID)
	}
}

func TestPostFindByTitle_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, title, content, author_id FROM posts").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByTitle(context.Background(), "ghost")
	if !errors.Is(err, ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostList_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, title, content, author_id FROM posts").
		WillReturnRows(postRows(
			models.Post{ID: "post-1", Title: "alpha", AuthorID: "id-1"},
			models.Post{ID: "post-2", Title: "beta", AuthorID: "id-2"},
		))

	posts, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
}

func TestPostReplace_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	post := models.Post{ID: "post-1", Title: "renamed", Content: "new", AuthorID: "carol-id"}

	mock.ExpectQuery("UPDATE posts").
		WithArgs(post.Title, post.Content, post.AuthorID, post.ID).
		WillReturnRows(postRows(post))

	replaced, err := repo.Replace(context.Background(), post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if replaced.Title != "renamed" {
		t.Errorf("expected renamed, got %s", replaced.Title)
	}
}

func TestPostReplace_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE posts").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Replace(context.Background(), models.Post{ID: "missing-id"})
	if !errors.Is(err, ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostDelete_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM posts").
		WithArgs("post-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "post-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPostDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM posts").
		WithArgs("missing-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing-id")
	if !errors.Is(err, ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostDeleteByAuthor_ZeroRowsIsNotAnError(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM posts").
		WithArgs("carol-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteByAuthor(context.Background(), "carol-id"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
