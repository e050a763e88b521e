package activity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quotegarden/internal/quote"
)

type mockQuoteReader struct {
	mock.Mock
}

func (m *mockQuoteReader) ListAll(ctx context.Context) ([]quote.Quote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]quote.Quote), args.Error(1)
}

func (m *mockQuoteReader) ListRecent(ctx context.Context, limit int) ([]quote.Quote, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]quote.Quote), args.Error(1)
}

func at(day int) time.Time {
	return time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
}

func TestRecentBooks_OrderedByNewestMemberQuote(t *testing.T) {
	reader := new(mockQuoteReader)
	reader.On("ListAll", mock.Anything).Return([]quote.Quote{
		{ID: 1, BookTitle: "토지", Author: "박경리", CreatedAt: at(1)},
		{ID: 2, BookTitle: "데미안", Author: "헤세", CreatedAt: at(5)},
		// An old book resurfaces when someone quotes it again.
		{ID: 3, BookTitle: "토 지", Author: "박경리", CreatedAt: at(9)},
	}, nil)

	books, err := NewService(reader).RecentBooks(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, books, 2)

	assert.Equal(t, "토지-박경리", books[0].GroupKey)
	assert.Equal(t, at(9), books[0].LastQuotedAt)
	assert.Equal(t, "데미안-헤세", books[1].GroupKey)
}

func TestRecentBooks_Limit(t *testing.T) {
	reader := new(mockQuoteReader)
	reader.On("ListAll", mock.Anything).Return([]quote.Quote{
		{ID: 1, BookTitle: "토지", CreatedAt: at(1)},
		{ID: 2, BookTitle: "데미안", CreatedAt: at(2)},
		{ID: 3, BookTitle: "채식주의자", CreatedAt: at(3)},
	}, nil)

	books, err := NewService(reader).RecentBooks(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "채식주의자", books[0].RepresentativeTitle)
}

func TestRecentQuotes_DefaultLimitPassedThrough(t *testing.T) {
	reader := new(mockQuoteReader)
	reader.On("ListRecent", mock.Anything, DefaultLimit).Return([]quote.Quote{
		{ID: 9, Content: "최근 문장"},
	}, nil)

	quotes, err := NewService(reader).RecentQuotes(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	reader.AssertExpectations(t)
}
