package book

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepo is a non-persistent Repository. Books are kept in insertion order.
type MemoryRepo struct {
	mu     sync.RWMutex
	books  map[int]Book
	order  []int
	nextID int
}

// NewMemoryRepo constructs a MemoryRepo seeded with the provided books.
// Seed entries with a zero ID are assigned one; later duplicates are dropped.
func NewMemoryRepo(seed []Book) *MemoryRepo {
	r := &MemoryRepo{
		books:  make(map[int]Book, len(seed)),
		order:  make([]int, 0, len(seed)),
		nextID: 1,
	}
	for _, b := range seed {
		_, _ = r.add(b)
	}
	return r
}

func (r *MemoryRepo) GetBookByID(_ context.Context, id int) (Book, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	return b, ok, nil
}

func (r *MemoryRepo) GetAllBooks(_ context.Context) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.books[id])
	}
	return out, nil
}

// AddBook rejects a caller-supplied id that is already held with ErrDuplicateID
// and one outside 1..MaxID with ErrInvalidID.
func (r *MemoryRepo) AddBook(_ context.Context, b Book) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.add(b)
}

func (r *MemoryRepo) add(b Book) (int, error) {
	switch {
	case b.ID == 0:
		// nextID stays above every held id, so it is free unless past MaxID.
		if r.nextID > MaxID {
			return 0, ErrIDSpaceExhausted
		}
		b.ID = r.nextID
	case !storableID(b.ID):
		return 0, ErrInvalidID
	default:
		if _, exists := r.books[b.ID]; exists {
			return 0, ErrDuplicateID
		}
	}
	if b.ID >= r.nextID {
		r.nextID = b.ID + 1
	}

	r.books[b.ID] = b
	r.order = append(r.order, b.ID)
	return b.ID, nil
}

func (r *MemoryRepo) UpdateBook(_ context.Context, b Book) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[b.ID]; !ok {
		return false, nil
	}
	r.books[b.ID] = b
	return true, nil
}

func (r *MemoryRepo) DeleteBook(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return false, nil
	}
	delete(r.books, id)
	r.order = slices.DeleteFunc(r.order, func(v int) bool { return v == id })
	return true, nil
}
