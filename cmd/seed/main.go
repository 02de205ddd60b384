package main

import (
	"context"
	"errors"
	"log"

	"bookstore/internal/book"
	"bookstore/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	service := book.NewService(book.NewPostgresRepo(pool, cfg.DBTimeout))

	inserted, err := seed(ctx, service, book.SeedData())
	if err != nil {
		log.Fatalf("Failed to seed books: %v", err)
	}
	log.Printf("Seeded %d books", inserted)
}

// seed adds books, skipping ids already present, and returns how many were new.
func seed(ctx context.Context, svc book.UseCase, books []book.Book) (int, error) {
	inserted := 0
	for _, b := range books {
		if _, err := svc.AddBook(ctx, b); err != nil {
			if errors.Is(err, book.ErrDuplicateID) {
				log.Printf("book id=%d already present, skipping", b.ID)
				continue
			}
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
