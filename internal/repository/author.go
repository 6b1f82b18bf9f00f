package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/blog-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
)

// PgAuthorRepository implements AuthorRepository on Postgres.
type PgAuthorRepository struct {
	pool *pgxpool.Pool
}

func NewPgAuthorRepository(pool *pgxpool.Pool) *PgAuthorRepository {
	return &PgAuthorRepository{pool: pool}
}

func (r *PgAuthorRepository) CreateAuthor(ctx context.Context, author model.NewAuthor) (*model.Author, error) {
	stmt := `
		INSERT INTO authors (name, phone_number)
		VALUES (@name, @phone_number)
		RETURNING id, name, phone_number, created_at, updated_at
	`

	rows, err := r.pool.Query(ctx, stmt, pgx.NamedArgs{
		"name":         author.Name,
		"phone_number": author.PhoneNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create author query for name=%s: %w", author.Name, err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Author])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:authors for name=%s: %w", author.Name, err)
	}

	return &created, nil
}

func (r *PgAuthorRepository) AuthorNameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM authors WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to look up author name=%s: %w", name, err)
	}
	return exists, nil
}

// SQLiteAuthorRepository implements AuthorRepository on SQLite.
type SQLiteAuthorRepository struct {
	db *sqlx.DB
}

func NewSQLiteAuthorRepository(db *sqlx.DB) *SQLiteAuthorRepository {
	return &SQLiteAuthorRepository{db: db}
}

func (r *SQLiteAuthorRepository) CreateAuthor(ctx context.Context, author model.NewAuthor) (*model.Author, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO authors (name, phone_number) VALUES (?, ?)`,
		author.Name, author.PhoneNumber,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to execute create author query for name=%s: %w", author.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read author id: %w", err)
	}

	// Read the row back so store defaults (timestamps) are returned too.
	var created model.Author
	err = r.db.GetContext(ctx, &created,
		`SELECT id, name, phone_number, created_at, updated_at FROM authors WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read row from table:authors: for id=%d: %w", id, err)
	}

	return &created, nil
}

func (r *SQLiteAuthorRepository) AuthorNameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM authors WHERE name = ?)`, name)
	if err != nil {
		return false, fmt.Errorf("failed to look up author name=%s: %w", name, err)
	}
	return exists, nil
}
