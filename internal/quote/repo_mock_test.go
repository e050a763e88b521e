package quote

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, q *Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (Quote, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Quote), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, q Query) ([]Quote, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]Quote), args.Int(1), args.Error(2)
}

func (m *mockRepo) ListAll(ctx context.Context) ([]Quote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Quote), args.Error(1)
}

func (m *mockRepo) ListByUser(ctx context.Context, userID string) ([]Quote, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Quote), args.Error(1)
}

func (m *mockRepo) ListRecent(ctx context.Context, limit int) ([]Quote, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Quote), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, q *Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepo) Like(ctx context.Context, userID string, quoteID int64) error {
	args := m.Called(ctx, userID, quoteID)
	return args.Error(0)
}

func (m *mockRepo) Unlike(ctx context.Context, userID string, quoteID int64) error {
	args := m.Called(ctx, userID, quoteID)
	return args.Error(0)
}
