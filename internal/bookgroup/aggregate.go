package bookgroup

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Record is one quote as the engine sees it. Callers map their richer quote
// type down to this before aggregating; the engine never touches storage.
type Record struct {
	ID        int64
	BookTitle string
	Author    string
	Likes     int
}

// Options carries per-consumer aggregation policy.
type Options struct {
	// MinLikes drops records with fewer likes before grouping. Zero keeps
	// everything; rankings pass 1 so unliked quotes never rank a book.
	MinLikes int
}

// Summary is the aggregate for all quotes whose titles normalize to the same
// key. It is recomputed on every call and never persisted.
type Summary struct {
	GroupKey            string   `json:"group_key"`
	RepresentativeTitle string   `json:"representative_title"`
	Author              string   `json:"author,omitempty"`
	DistinctTitles      []string `json:"distinct_titles"`
	SentenceCount       int      `json:"sentence_count"`
	TotalLikes          int      `json:"total_likes"`
	MemberIDs           []int64  `json:"member_ids"`
}

// HasVariants reports whether more than one raw title spelling was merged
// into this group.
func (s Summary) HasVariants() bool {
	return len(s.DistinctTitles) > 1
}

type accumulator struct {
	summary Summary
	// rune length of the representative's raw title; a longer raw title
	// replaces the representative on the assumption that it kept more of
	// the original spacing and reads better in the UI.
	priority int
	seen     map[string]bool
}

// Aggregate buckets records by GroupKey and returns one Summary per bucket.
//
// Records with an empty (or whitespace-only) raw title are excluded entirely:
// "no book" never produces a group. A non-empty title that happens to
// normalize to the empty string still forms a group keyed by that empty
// title key, so such quotes stay visible rather than silently vanishing.
//
// The input is re-sorted by ID ascending before accumulation, which makes the
// first-seen tie-break on equal-length titles independent of the caller's
// iteration order. Output is sorted by GroupKey; consumers apply their own
// ordering on top.
func Aggregate(records []Record, opts Options) []Summary {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	groups := make(map[string]*accumulator)
	for _, rec := range sorted {
		if strings.TrimSpace(rec.BookTitle) == "" {
			continue
		}
		if rec.Likes < opts.MinLikes {
			continue
		}

		key := GroupKey(rec.BookTitle, rec.Author)
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{
				summary: Summary{
					GroupKey:            key,
					RepresentativeTitle: rec.BookTitle,
					Author:              rec.Author,
				},
				priority: utf8.RuneCountInString(rec.BookTitle),
				seen:     make(map[string]bool),
			}
			groups[key] = acc
		} else if n := utf8.RuneCountInString(rec.BookTitle); n > acc.priority {
			acc.summary.RepresentativeTitle = rec.BookTitle
			acc.summary.Author = rec.Author
			acc.priority = n
		}

		if !acc.seen[rec.BookTitle] {
			acc.seen[rec.BookTitle] = true
			acc.summary.DistinctTitles = append(acc.summary.DistinctTitles, rec.BookTitle)
		}
		acc.summary.SentenceCount++
		acc.summary.TotalLikes += rec.Likes
		acc.summary.MemberIDs = append(acc.summary.MemberIDs, rec.ID)
	}

	out := make([]Summary, 0, len(groups))
	for _, acc := range groups {
		out = append(out, acc.summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GroupKey < out[j].GroupKey })
	return out
}
