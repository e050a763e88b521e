// Package export renders a user's quote collection grouped by book, as plain
// text or CSV. Grouping comes from the shared bookgroup engine; this package
// only layers selection, member ordering and formatting on top.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"quotegarden/internal/bookgroup"
	"quotegarden/internal/quote"
)

type QuoteReader interface {
	ListByUser(ctx context.Context, userID string) ([]quote.Quote, error)
}

type Service struct {
	quotes QuoteReader
}

func NewService(quotes QuoteReader) *Service {
	return &Service{quotes: quotes}
}

const banner = "=========================================="

// Text renders the user's quotes grouped by book. When selectedTitles is
// non-empty only groups whose normalized title matches one of them are
// included; selection is by normalized title so any spelling variant of a
// book selects its whole group.
func (s *Service) Text(ctx context.Context, userID string, selectedTitles []string) (string, error) {
	groups, byID, err := s.groups(ctx, userID, selectedTitles)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(banner + "\n")
		b.WriteString("책: " + g.RepresentativeTitle + "\n")
		if g.Author != "" {
			b.WriteString("저자: " + g.Author + "\n")
		}
		fmt.Fprintf(&b, "문장 %d개 / 좋아요 %d개\n", g.SentenceCount, g.TotalLikes)
		if g.HasVariants() {
			b.WriteString("표기 변형: " + strings.Join(g.DistinctTitles, ", ") + "\n")
		}
		b.WriteString(banner + "\n\n")

		for _, m := range Members(g, byID) {
			b.WriteString(m.Content + "\n")
			line := ""
			if m.PageNumber != nil {
				line = fmt.Sprintf("페이지: %d", *m.PageNumber)
			}
			if m.LikeCount > 0 {
				if line != "" {
					line += ", "
				}
				line += fmt.Sprintf("좋아요: %d", m.LikeCount)
			}
			if line != "" {
				b.WriteString("(" + line + ")\n")
			}
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// CSV renders the same grouping as Text, one row per quote.
func (s *Service) CSV(ctx context.Context, userID string, selectedTitles []string) ([]byte, error) {
	groups, byID, err := s.groups(ctx, userID, selectedTitles)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"book_title", "author", "content", "page_number", "like_count", "created_at"}); err != nil {
		return nil, err
	}

	for _, g := range groups {
		for _, m := range Members(g, byID) {
			page := ""
			if m.PageNumber != nil {
				page = strconv.Itoa(*m.PageNumber)
			}
			row := []string{
				g.RepresentativeTitle,
				g.Author,
				m.Content,
				page,
				strconv.Itoa(m.LikeCount),
				m.CreatedAt.Format("2006-01-02"),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Service) groups(ctx context.Context, userID string, selectedTitles []string) ([]bookgroup.Summary, map[int64]quote.Quote, error) {
	quotes, err := s.quotes.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load quotes for export: %w", err)
	}

	byID := make(map[int64]quote.Quote, len(quotes))
	for _, q := range quotes {
		byID[q.ID] = q
	}

	groups := bookgroup.Aggregate(quote.GroupRecords(quotes), bookgroup.Options{})
	if len(selectedTitles) > 0 {
		wanted := make(map[string]bool, len(selectedTitles))
		for _, t := range selectedTitles {
			wanted[bookgroup.Normalize(t)] = true
		}
		filtered := groups[:0]
		for _, g := range groups {
			if wanted[bookgroup.Normalize(g.RepresentativeTitle)] {
				filtered = append(filtered, g)
			}
		}
		groups = filtered
	}
	return groups, byID, nil
}

// Members resolves a group's quotes sorted for export: page number ascending
// with quotes lacking a page number last, ties broken by id.
func Members(g bookgroup.Summary, byID map[int64]quote.Quote) []quote.Quote {
	members := make([]quote.Quote, 0, len(g.MemberIDs))
	for _, id := range g.MemberIDs {
		if q, ok := byID[id]; ok {
			members = append(members, q)
		}
	}
	sort.SliceStable(members, func(i, j int) bool {
		pi, pj := members[i].PageNumber, members[j].PageNumber
		switch {
		case pi == nil && pj == nil:
			return members[i].ID < members[j].ID
		case pi == nil:
			return false
		case pj == nil:
			return true
		case *pi != *pj:
			return *pi < *pj
		default:
			return members[i].ID < members[j].ID
		}
	})
	return members
}
