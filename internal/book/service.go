package book

import (
	"context"
)

var _ UseCase = (*Service)(nil)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetBookByID returns a book by its id.
func (s *Service) GetBookByID(ctx context.Context, id int) (Book, bool, error) {
	return s.repo.GetBookByID(ctx, id)
}

// GetAllBooks returns every book.
func (s *Service) GetAllBooks(ctx context.Context) ([]Book, error) {
	return s.repo.GetAllBooks(ctx)
}

// AddBook stores a new book and returns its id.
func (s *Service) AddBook(ctx context.Context, b Book) (int, error) {
	return s.repo.AddBook(ctx, b)
}

// UpdateBook replaces an existing book.
func (s *Service) UpdateBook(ctx context.Context, b Book) (bool, error) {
	return s.repo.UpdateBook(ctx, b)
}

// DeleteBook removes a book by its id.
func (s *Service) DeleteBook(ctx context.Context, id int) (bool, error) {
	return s.repo.DeleteBook(ctx, id)
}
