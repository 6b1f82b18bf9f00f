package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/blog-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
)

const postColumns = `id, title, content, category, summary, author_id, created_at, updated_at`

// PgPostRepository implements PostRepository on Postgres.
type PgPostRepository struct {
	pool *pgxpool.Pool
}

func NewPgPostRepository(pool *pgxpool.Pool) *PgPostRepository {
	return &PgPostRepository{pool: pool}
}

func (r *PgPostRepository) CreatePost(ctx context.Context, post model.NewPost) (*model.Post, error) {
	stmt := `
		INSERT INTO posts (title, content, category, summary, author_id)
		VALUES (@title, @content, @category, @summary, @author_id)
		RETURNING ` + postColumns

	rows, err := r.pool.Query(ctx, stmt, pgx.NamedArgs{
		"title":     post.Title,
		"content":   post.Content,
		"category":  post.Category,
		"summary":   post.Summary,
		"author_id": post.AuthorID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create post query: %w", err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Post])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:posts: %w", err)
	}

	return &created, nil
}

// SQLitePostRepository implements PostRepository on SQLite.
type SQLitePostRepository struct {
	db *sqlx.DB
}

func NewSQLitePostRepository(db *sqlx.DB) *SQLitePostRepository {
	return &SQLitePostRepository{db: db}
}

func (r *SQLitePostRepository) CreatePost(ctx context.Context, post model.NewPost) (*model.Post, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (title, content, category, summary, author_id) VALUES (?, ?, ?, ?, ?)`,
		post.Title, post.Content, post.Category, post.Summary, post.AuthorID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to execute create post query: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read post id: %w", err)
	}

	var created model.Post
	err = r.db.GetContext(ctx, &created, `SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read row from table:posts: for id=%d: %w", id, err)
	}

	return &created, nil
}
