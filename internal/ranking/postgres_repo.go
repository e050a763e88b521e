package ranking

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) ListAll(ctx context.Context) ([]SubmittedQuote, error) {
	const sql = `
		SELECT q.id, q.user_id, q.content, q.book_title, q.author, q.page_number,
			(SELECT count(*) FROM quote_likes l WHERE l.quote_id = q.id) AS like_count,
			q.created_at, q.updated_at,
			u.display_name
		FROM quotes q
		JOIN users u ON u.id = q.user_id
		ORDER BY q.id`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list quotes with submitter: %w", err)
	}
	defer rows.Close()

	var out []SubmittedQuote
	for rows.Next() {
		var sq SubmittedQuote
		err := rows.Scan(&sq.ID, &sq.UserID, &sq.Content, &sq.BookTitle, &sq.Author,
			&sq.PageNumber, &sq.LikeCount, &sq.CreatedAt, &sq.UpdatedAt, &sq.SubmitterName)
		if err != nil {
			return nil, fmt.Errorf("scan submitted quote: %w", err)
		}
		out = append(out, sq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
