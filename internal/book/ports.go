package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	// GetBookByID reports ok=false when no book holds the id.
	GetBookByID(ctx context.Context, id int) (Book, bool, error)
	// GetAllBooks returns every held book in insertion order.
	GetAllBooks(ctx context.Context) ([]Book, error)
	// AddBook stores b and returns its id. A zero b.ID gets the next free id.
	AddBook(ctx context.Context, b Book) (int, error)
	// UpdateBook replaces the book with b.ID and reports whether it existed.
	UpdateBook(ctx context.Context, b Book) (bool, error)
	// DeleteBook removes the book with id and reports whether it existed.
	DeleteBook(ctx context.Context, id int) (bool, error)
}

// UseCase is the book facade exposed to transports.
type UseCase interface {
	GetBookByID(ctx context.Context, id int) (Book, bool, error)
	GetAllBooks(ctx context.Context) ([]Book, error)
	AddBook(ctx context.Context, b Book) (int, error)
	UpdateBook(ctx context.Context, b Book) (bool, error)
	DeleteBook(ctx context.Context, id int) (bool, error)
}
