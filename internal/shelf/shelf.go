// Package shelf is the read side of the book pages: the grouped book list
// and the per-book detail with its member quotes. Like every other surface
// it derives books from quotes through the bookgroup engine, never from a
// book table (there is none).
package shelf

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"quotegarden/internal/bookgroup"
	"quotegarden/internal/quote"
)

// ErrBookNotFound is returned when no quote group matches the requested key.
var ErrBookNotFound = errors.New("book not found")

type QuoteReader interface {
	ListAll(ctx context.Context) ([]quote.Quote, error)
	ListByUser(ctx context.Context, userID string) ([]quote.Quote, error)
}

// BookDetail is one book group with its member quotes resolved.
type BookDetail struct {
	bookgroup.Summary
	Quotes []quote.Quote `json:"quotes"`
}

type Service struct {
	quotes QuoteReader
}

func NewService(quotes QuoteReader) *Service {
	return &Service{quotes: quotes}
}

// Books lists all book groups, most-quoted first. A non-empty userID limits
// the shelf to that user's collection.
func (s *Service) Books(ctx context.Context, userID string) ([]bookgroup.Summary, error) {
	quotes, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := bookgroup.Aggregate(quote.GroupRecords(quotes), bookgroup.Options{})
	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].SentenceCount != summaries[j].SentenceCount {
			return summaries[i].SentenceCount > summaries[j].SentenceCount
		}
		if summaries[i].TotalLikes != summaries[j].TotalLikes {
			return summaries[i].TotalLikes > summaries[j].TotalLikes
		}
		return summaries[i].GroupKey < summaries[j].GroupKey
	})
	return summaries, nil
}

// Book resolves one group by its key and returns it with member quotes in
// submission order.
func (s *Service) Book(ctx context.Context, userID, key string) (BookDetail, error) {
	quotes, err := s.load(ctx, userID)
	if err != nil {
		return BookDetail{}, err
	}

	byID := make(map[int64]quote.Quote, len(quotes))
	for _, q := range quotes {
		byID[q.ID] = q
	}

	for _, g := range bookgroup.Aggregate(quote.GroupRecords(quotes), bookgroup.Options{}) {
		if g.GroupKey != key {
			continue
		}
		detail := BookDetail{Summary: g}
		for _, id := range g.MemberIDs {
			if q, ok := byID[id]; ok {
				detail.Quotes = append(detail.Quotes, q)
			}
		}
		return detail, nil
	}
	return BookDetail{}, ErrBookNotFound
}

func (s *Service) load(ctx context.Context, userID string) ([]quote.Quote, error) {
	if userID != "" {
		quotes, err := s.quotes.ListByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load shelf for user %s: %w", userID, err)
		}
		return quotes, nil
	}
	quotes, err := s.quotes.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load shelf: %w", err)
	}
	return quotes, nil
}
