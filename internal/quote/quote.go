package quote

import (
	"context"
	"errors"
	"time"

	"quotegarden/internal/bookgroup"
)

var (
	// ErrNotFound is returned when a quote does not exist.
	ErrNotFound = errors.New("quote not found")
	// ErrForbidden is returned when a user touches a quote they do not own.
	ErrForbidden = errors.New("quote does not belong to user")
	// ErrAlreadyLiked is returned when a user likes a quote twice.
	ErrAlreadyLiked = errors.New("quote already liked")
	// ErrNotLiked is returned when a user removes a like that does not exist.
	ErrNotLiked = errors.New("quote not liked")
)

// Quote is one collected sentence. BookTitle and Author are free user-typed
// text with no uniqueness and no foreign key; per-book views are derived from
// them by the bookgroup engine at read time.
type Quote struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	Content    string    `json:"content"`
	BookTitle  string    `json:"book_title,omitempty"`
	Author     string    `json:"author,omitempty"`
	PageNumber *int      `json:"page_number,omitempty"`
	LikeCount  int       `json:"like_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Query defines filters and pagination for listing quotes.
type Query struct {
	UserID string // restrict to one submitter when set
	Search string // substring match on content
	Limit  int
	Offset int
}

type Repository interface {
	Create(ctx context.Context, q *Quote) error
	GetByID(ctx context.Context, id int64) (Quote, error)
	List(ctx context.Context, q Query) ([]Quote, int, error)
	ListAll(ctx context.Context) ([]Quote, error)
	ListByUser(ctx context.Context, userID string) ([]Quote, error)
	ListRecent(ctx context.Context, limit int) ([]Quote, error)
	Update(ctx context.Context, q *Quote) error
	Delete(ctx context.Context, id int64) error
	Like(ctx context.Context, userID string, quoteID int64) error
	Unlike(ctx context.Context, userID string, quoteID int64) error
}

// GroupRecords maps quotes to the aggregation engine's input form. Every
// consumer of the engine goes through this one mapping so the grouping seen
// by export, rankings, shelf and activity can never drift apart.
func GroupRecords(quotes []Quote) []bookgroup.Record {
	records := make([]bookgroup.Record, 0, len(quotes))
	for _, q := range quotes {
		records = append(records, bookgroup.Record{
			ID:        q.ID,
			BookTitle: q.BookTitle,
			Author:    q.Author,
			Likes:     q.LikeCount,
		})
	}
	return records
}
