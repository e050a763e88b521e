package quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const quoteColumns = `
	q.id, q.user_id, q.content, q.book_title, q.author, q.page_number,
	(SELECT count(*) FROM quote_likes l WHERE l.quote_id = q.id) AS like_count,
	q.created_at, q.updated_at`

func scanQuote(row pgx.Row) (Quote, error) {
	var q Quote
	err := row.Scan(&q.ID, &q.UserID, &q.Content, &q.BookTitle, &q.Author,
		&q.PageNumber, &q.LikeCount, &q.CreatedAt, &q.UpdatedAt)
	return q, err
}

func (r *PostgresRepo) Create(ctx context.Context, q *Quote) error {
	const sql = `
		INSERT INTO quotes (user_id, content, book_title, author, page_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, sql, q.UserID, q.Content, q.BookTitle, q.Author, q.PageNumber).
		Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Quote, error) {
	sql := `SELECT ` + quoteColumns + ` FROM quotes q WHERE q.id = $1`

	q, err := scanQuote(r.db.QueryRow(ctx, sql, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Quote{}, ErrNotFound
	}
	if err != nil {
		return Quote{}, fmt.Errorf("get quote %d: %w", id, err)
	}
	return q, nil
}

func (r *PostgresRepo) List(ctx context.Context, query Query) ([]Quote, int, error) {
	sql := `SELECT ` + quoteColumns + `
		FROM quotes q
		WHERE ($1 = '' OR q.user_id::text = $1)
		AND ($2 = '' OR q.content ILIKE '%' || $2 || '%')
		ORDER BY q.id DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, sql, query.UserID, query.Search, query.Limit, query.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	quotes, err := collectQuotes(rows)
	if err != nil {
		return nil, 0, err
	}

	const countSQL = `
		SELECT count(*) FROM quotes q
		WHERE ($1 = '' OR q.user_id::text = $1)
		AND ($2 = '' OR q.content ILIKE '%' || $2 || '%')`

	var total int
	if err := r.db.QueryRow(ctx, countSQL, query.UserID, query.Search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count quotes: %w", err)
	}
	return quotes, total, nil
}

func (r *PostgresRepo) ListAll(ctx context.Context) ([]Quote, error) {
	sql := `SELECT ` + quoteColumns + ` FROM quotes q ORDER BY q.id`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list all quotes: %w", err)
	}
	defer rows.Close()
	return collectQuotes(rows)
}

func (r *PostgresRepo) ListByUser(ctx context.Context, userID string) ([]Quote, error) {
	sql := `SELECT ` + quoteColumns + ` FROM quotes q WHERE q.user_id = $1 ORDER BY q.id`

	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("list quotes for user %s: %w", userID, err)
	}
	defer rows.Close()
	return collectQuotes(rows)
}

func (r *PostgresRepo) ListRecent(ctx context.Context, limit int) ([]Quote, error) {
	sql := `SELECT ` + quoteColumns + ` FROM quotes q ORDER BY q.created_at DESC, q.id DESC LIMIT $1`

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent quotes: %w", err)
	}
	defer rows.Close()
	return collectQuotes(rows)
}

func (r *PostgresRepo) Update(ctx context.Context, q *Quote) error {
	const sql = `
		UPDATE quotes
		SET content = $2, book_title = $3, author = $4, page_number = $5, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, sql, q.ID, q.Content, q.BookTitle, q.Author, q.PageNumber).
		Scan(&q.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update quote %d: %w", q.ID, err)
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Like(ctx context.Context, userID string, quoteID int64) error {
	const sql = `INSERT INTO quote_likes (user_id, quote_id) VALUES ($1, $2)`

	_, err := r.db.Exec(ctx, sql, userID, quoteID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return ErrAlreadyLiked
			case "23503": // foreign_key_violation
				return ErrNotFound
			}
		}
		return fmt.Errorf("like quote %d: %w", quoteID, err)
	}
	return nil
}

func (r *PostgresRepo) Unlike(ctx context.Context, userID string, quoteID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM quote_likes WHERE user_id = $1 AND quote_id = $2`, userID, quoteID)
	if err != nil {
		return fmt.Errorf("unlike quote %d: %w", quoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotLiked
	}
	return nil
}

func collectQuotes(rows pgx.Rows) ([]Quote, error) {
	var quotes []Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return quotes, nil
}
