// Package activity feeds the recent-activity widgets: latest quotes and the
// books that were most recently quoted from.
package activity

import (
	"context"
	"fmt"
	"sort"
	"time"

	"quotegarden/internal/bookgroup"
	"quotegarden/internal/quote"
)

// DefaultLimit is the widget size when the caller does not pass one.
const DefaultLimit = 5

type QuoteReader interface {
	ListAll(ctx context.Context) ([]quote.Quote, error)
	ListRecent(ctx context.Context, limit int) ([]quote.Quote, error)
}

// RecentBook is a book group annotated with the time of its newest quote.
type RecentBook struct {
	bookgroup.Summary
	LastQuotedAt time.Time `json:"last_quoted_at"`
}

type Service struct {
	quotes QuoteReader
}

func NewService(quotes QuoteReader) *Service {
	return &Service{quotes: quotes}
}

// RecentQuotes returns the newest quotes across all users.
func (s *Service) RecentQuotes(ctx context.Context, limit int) ([]quote.Quote, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	quotes, err := s.quotes.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load recent quotes: %w", err)
	}
	return quotes, nil
}

// RecentBooks returns book groups ordered by the creation time of their
// newest member quote. Groups therefore surface when anyone adds to them,
// not only when they first appear.
func (s *Service) RecentBooks(ctx context.Context, limit int) ([]RecentBook, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	quotes, err := s.quotes.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load quotes for activity: %w", err)
	}

	createdAt := make(map[int64]time.Time, len(quotes))
	for _, q := range quotes {
		createdAt[q.ID] = q.CreatedAt
	}

	summaries := bookgroup.Aggregate(quote.GroupRecords(quotes), bookgroup.Options{})
	books := make([]RecentBook, 0, len(summaries))
	for _, g := range summaries {
		rb := RecentBook{Summary: g}
		for _, id := range g.MemberIDs {
			if t, ok := createdAt[id]; ok && t.After(rb.LastQuotedAt) {
				rb.LastQuotedAt = t
			}
		}
		books = append(books, rb)
	}

	sort.SliceStable(books, func(i, j int) bool {
		if !books[i].LastQuotedAt.Equal(books[j].LastQuotedAt) {
			return books[i].LastQuotedAt.After(books[j].LastQuotedAt)
		}
		return books[i].GroupKey < books[j].GroupKey
	})

	if len(books) > limit {
		books = books[:limit]
	}
	return books, nil
}
