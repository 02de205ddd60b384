package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) GetBookByID(ctx context.Context, id int) (Book, bool, error) {
	const query = `
		SELECT id, title, author
		FROM books
		WHERE id = $1
	`
	if !storableID(id) {
		return Book{}, false, nil
	}
	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(&b.ID, &b.Title, &b.Author)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, false, nil
		}
		return Book{}, false, fmt.Errorf("get book %d: %w", id, err)
	}
	return b, true, nil
}

func (r *PostgresRepo) GetAllBooks(ctx context.Context) ([]Book, error) {
	const query = `
		SELECT id, title, author
		FROM books
		ORDER BY position
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// AddBook lets the serial assign the id when b.ID is zero. A caller-supplied
// id advances the sequence past it so later assigned ids stay free.
func (r *PostgresRepo) AddBook(ctx context.Context, b Book) (int, error) {
	if b.ID != 0 && !storableID(b.ID) {
		return 0, ErrInvalidID
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	if b.ID == 0 {
		const insert = `INSERT INTO books (title, author) VALUES ($1, $2) RETURNING id`
		var id int
		if err := r.db.QueryRow(timeoutCtx, insert, b.Title, b.Author).Scan(&id); err != nil {
			return 0, fmt.Errorf("insert book: %w", err)
		}
		return id, nil
	}

	err := pgx.BeginFunc(timeoutCtx, r.db, func(tx pgx.Tx) error {
		const insert = `INSERT INTO books (id, title, author) VALUES ($1, $2, $3)`
		if _, err := tx.Exec(timeoutCtx, insert, b.ID, b.Title, b.Author); err != nil {
			return err
		}
		const bump = `
			SELECT setval(pg_get_serial_sequence('books', 'id'), GREATEST(MAX(id), 1))
			FROM books`
		_, err := tx.Exec(timeoutCtx, bump)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, ErrDuplicateID
		}
		return 0, fmt.Errorf("insert book %d: %w", b.ID, err)
	}
	return b.ID, nil
}

func (r *PostgresRepo) UpdateBook(ctx context.Context, b Book) (bool, error) {
	const sql = `
		UPDATE books
		SET title = $2, author = $3, updated_at = NOW()
		WHERE id = $1`

	if !storableID(b.ID) {
		return false, nil
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql, b.ID, b.Title, b.Author)
	if err != nil {
		return false, fmt.Errorf("update book %d: %w", b.ID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepo) DeleteBook(ctx context.Context, id int) (bool, error) {
	if !storableID(id) {
		return false, nil
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete book %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
