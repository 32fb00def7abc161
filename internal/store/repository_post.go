package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/DvEyZ/rkblog-be/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// psql is the squirrel statement builder configured for PostgreSQL
// dollar-sign placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// postColumns is the canonical column order used by every post query.
var postColumns = []string{"id", "title", "content", "author_id"}

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
// Queries are built with squirrel against the "posts" table.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new post record.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the title → [ErrPostTitleTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *postRepository) Create(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(post.TableName()).
		Columns(postColumns...).
		Values(post.ID, post.Title, post.Content, post.AuthorID).
		Suffix("RETURNING id, title, content, author_id").
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Post
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.ID, &created.Title, &created.Content, &created.AuthorID); err != nil {
		log.Err(err).Str("func", "*postRepository.Create").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Post{}, ErrPostTitleTaken
		default:
			return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindByTitle retrieves the post with the given title.
// An empty result set maps to [ErrPostNotFound].
func (r *postRepository) FindByTitle(ctx context.Context, title string) (models.Post, error) {
	return r.findOne(ctx, sq.Eq{"title": title})
}

// FindByID retrieves the post with the given identifier.
// An empty result set maps to [ErrPostNotFound].
func (r *postRepository) FindByID(ctx context.Context, id string) (models.Post, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *postRepository) findOne(ctx context.Context, where sq.Eq) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var post models.Post
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.findOne").Msg("error: scanning error")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

// List returns all posts ordered by title.
func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(postColumns...).
		From(models.Post{}.TableName()).
		OrderBy("title").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.List").Msg("error: query error")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID); err != nil {
			log.Err(err).Str("func", "*postRepository.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// Replace overwrites the record identified by post.ID.
//
// Error handling:
//   - no matching row → [ErrPostNotFound];
//   - unique_violation on the new title → [ErrPostTitleTaken].
func (r *postRepository) Replace(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update(post.TableName()).
		Set("title", post.Title).
		Set("content", post.Content).
		Set("author_id", post.AuthorID).
		Where(sq.Eq{"id": post.ID}).
		Suffix("RETURNING id, title, content, author_id").
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var replaced models.Post
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&replaced.ID, &replaced.Title, &replaced.Content, &replaced.AuthorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.Replace").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Post{}, ErrPostTitleTaken
		default:
			return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return replaced, nil
}

// Delete removes the post with the given identifier. Deleting a missing post
// maps to [ErrPostNotFound].
func (r *postRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(models.Post{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.Delete").Msg("error: exec error")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// DeleteByAuthor removes every post owned by the given account. Used by the
// account cascade delete; removing zero rows is not an error.
func (r *postRepository) DeleteByAuthor(ctx context.Context, authorID string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(models.Post{}.TableName()).
		Where(sq.Eq{"author_id": authorID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*postRepository.DeleteByAuthor").Msg("error: exec error")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
