// Package ranking builds the popular-books widget and the contributor
// leaderboard. Both lean on the bookgroup engine: popular books rank its
// summaries directly, contributors use the shared normalizer for their
// distinct-book side metric.
package ranking

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"quotegarden/internal/bookgroup"
	"quotegarden/internal/quote"
)

// DefaultLimit is the widget size used when the caller does not ask for a
// specific top-N.
const DefaultLimit = 3

// SubmittedQuote is a quote joined with its submitter's display name.
type SubmittedQuote struct {
	quote.Quote
	SubmitterName string `json:"submitter_name"`
}

type Repository interface {
	ListAll(ctx context.Context) ([]SubmittedQuote, error)
}

// Contributor is one row of the contributor leaderboard. Grouping is by the
// stable user ID; the display name is presentation only, so two accounts
// sharing a name never merge.
type Contributor struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	QuoteCount  int    `json:"quote_count"`
	TotalLikes  int    `json:"total_likes"`
	BookCount   int    `json:"book_count"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// PopularBooks returns the top-N book groups by total likes. Only quotes
// with at least one like count toward a book's rank. Ties fall back to
// sentence count, then group key, so the widget is stable across requests.
func (s *Service) PopularBooks(ctx context.Context, limit int) ([]bookgroup.Summary, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	submitted, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load quotes for ranking: %w", err)
	}

	records := make([]bookgroup.Record, 0, len(submitted))
	for _, sq := range submitted {
		records = append(records, bookgroup.Record{
			ID:        sq.ID,
			BookTitle: sq.BookTitle,
			Author:    sq.Author,
			Likes:     sq.LikeCount,
		})
	}

	summaries := bookgroup.Aggregate(records, bookgroup.Options{MinLikes: 1})
	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].TotalLikes != summaries[j].TotalLikes {
			return summaries[i].TotalLikes > summaries[j].TotalLikes
		}
		if summaries[i].SentenceCount != summaries[j].SentenceCount {
			return summaries[i].SentenceCount > summaries[j].SentenceCount
		}
		return summaries[i].GroupKey < summaries[j].GroupKey
	})

	if len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

// Contributors returns the top-N submitters by likes received, with the
// number of distinct books they quoted from as a side metric.
func (s *Service) Contributors(ctx context.Context, limit int) ([]Contributor, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	submitted, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load quotes for ranking: %w", err)
	}

	type acc struct {
		contributor Contributor
		books       map[string]bool
	}
	byUser := make(map[string]*acc)
	for _, sq := range submitted {
		a, ok := byUser[sq.UserID]
		if !ok {
			a = &acc{
				contributor: Contributor{
					UserID:      sq.UserID,
					DisplayName: sq.SubmitterName,
				},
				books: make(map[string]bool),
			}
			byUser[sq.UserID] = a
		}
		a.contributor.QuoteCount++
		a.contributor.TotalLikes += sq.LikeCount
		if strings.TrimSpace(sq.BookTitle) != "" {
			a.books[bookgroup.GroupKey(sq.BookTitle, sq.Author)] = true
		}
	}

	out := make([]Contributor, 0, len(byUser))
	for _, a := range byUser {
		a.contributor.BookCount = len(a.books)
		out = append(out, a.contributor)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalLikes != out[j].TotalLikes {
			return out[i].TotalLikes > out[j].TotalLikes
		}
		if out[i].QuoteCount != out[j].QuoteCount {
			return out[i].QuoteCount > out[j].QuoteCount
		}
		return out[i].UserID < out[j].UserID
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
