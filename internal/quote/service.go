package quote

import (
	"context"
	"strings"
)

// Service provides quote business logic on top of the repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new quote for userID. Title and author are kept exactly as
// typed; only surrounding whitespace is trimmed so an all-space title counts
// as "no book".
func (s *Service) Create(ctx context.Context, userID, content, bookTitle, author string, pageNumber *int) (Quote, error) {
	q := Quote{
		UserID:     userID,
		Content:    content,
		BookTitle:  strings.TrimSpace(bookTitle),
		Author:     strings.TrimSpace(author),
		PageNumber: pageNumber,
	}
	if err := s.repo.Create(ctx, &q); err != nil {
		return Quote{}, err
	}
	return q, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Quote, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, q Query) ([]Quote, int, error) {
	return s.repo.List(ctx, q)
}

// Update replaces content/title/author/page of a quote owned by userID.
func (s *Service) Update(ctx context.Context, userID string, id int64, content, bookTitle, author string, pageNumber *int) (Quote, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Quote{}, err
	}
	if q.UserID != userID {
		return Quote{}, ErrForbidden
	}

	q.Content = content
	q.BookTitle = strings.TrimSpace(bookTitle)
	q.Author = strings.TrimSpace(author)
	q.PageNumber = pageNumber
	if err := s.repo.Update(ctx, &q); err != nil {
		return Quote{}, err
	}
	return q, nil
}

func (s *Service) Delete(ctx context.Context, userID string, id int64) error {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if q.UserID != userID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) Like(ctx context.Context, userID string, quoteID int64) error {
	return s.repo.Like(ctx, userID, quoteID)
}

func (s *Service) Unlike(ctx context.Context, userID string, quoteID int64) error {
	return s.repo.Unlike(ctx, userID, quoteID)
}
