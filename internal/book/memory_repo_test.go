package book

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_GetBookByID(t *testing.T) {
	repo := NewMemoryRepo(SeedData())
	ctx := context.Background()

	t.Run("seeded id", func(t *testing.T) {
		b, ok, err := repo.GetBookByID(ctx, 1)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, Book{ID: 1, Title: "1999", Author: "George Orwell"}, b)
	})

	t.Run("every seeded id resolves to itself", func(t *testing.T) {
		for _, seeded := range SeedData() {
			b, ok, err := repo.GetBookByID(ctx, seeded.ID)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, seeded.ID, b.ID)
		}
	})

	t.Run("absent id", func(t *testing.T) {
		b, ok, err := repo.GetBookByID(ctx, 99)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, b)
	})
}

func TestMemoryRepo_GetAllBooks(t *testing.T) {
	ctx := context.Background()

	t.Run("insertion order", func(t *testing.T) {
		repo := NewMemoryRepo(SeedData())
		all, err := repo.GetAllBooks(ctx)
		require.NoError(t, err)
		assert.Equal(t, SeedData(), all)
	})

	t.Run("empty store returns empty slice", func(t *testing.T) {
		repo := NewMemoryRepo(nil)
		all, err := repo.GetAllBooks(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("result is a copy", func(t *testing.T) {
		repo := NewMemoryRepo(SeedData())
		all, err := repo.GetAllBooks(ctx)
		require.NoError(t, err)
		all[0].Title = "changed"

		b, _, err := repo.GetBookByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "1999", b.Title)
	})

	t.Run("tracks add update delete", func(t *testing.T) {
		repo := NewMemoryRepo(SeedData())
		id, err := repo.AddBook(ctx, Book{Title: "New", Author: "Auth"})
		require.NoError(t, err)
		_, err = repo.UpdateBook(ctx, Book{ID: 2, Title: "Go Set a Watchman", Author: "Harper Lee"})
		require.NoError(t, err)
		_, err = repo.DeleteBook(ctx, 3)
		require.NoError(t, err)

		all, err := repo.GetAllBooks(ctx)
		require.NoError(t, err)
		assert.Equal(t, []Book{
			{ID: 1, Title: "1999", Author: "George Orwell"},
			{ID: 2, Title: "Go Set a Watchman", Author: "Harper Lee"},
			{ID: 4, Title: "Lord of the Flies", Author: "William Golding"},
			{ID: 5, Title: "Pride and Prejudice", Author: "Jane Austen"},
			{ID: id, Title: "New", Author: "Auth"},
		}, all)
	})
}

func TestMemoryRepo_AddBook(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns next id", func(t *testing.T) {
		repo := NewMemoryRepo(SeedData())
		id, err := repo.AddBook(ctx, Book{Title: "New", Author: "Auth"})
		require.NoError(t, err)
		assert.Equal(t, 6, id)

		b, ok, err := repo.GetBookByID(ctx, 6)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, Book{ID: 6, Title: "New", Author: "Auth"}, b)
	})

	t.Run("accepts free caller id and continues after it", func(t *testing.T) {
		repo := NewMemoryRepo(SeedData())
		id, err := repo.AddBook(ctx, Book{ID: 42, Title: "Answer"})
		require.NoError(t, err)
		assert.Equal(t, 42, id)

		next, err := repo.AddBook(ctx, Book{Title: "After"})
		require.NoError(t, err)
		assert.Equal(t, 43, next)
	})

	t.Run("assigned ids skip caller ids below the counter", func(t *testing.T) {
		repo := NewMemoryRepo(nil)
		_, err := repo.AddBook(ctx, Book{ID: 2})
		require.NoError(t, err)

		id, err := repo.AddBook(ctx, Book{})
		require.NoError(t, err)
		assert.Equal(t, 3, id)
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		repo := NewMemoryRepo(SeedData())
		before, err := repo.GetAllBooks(ctx)
		require.NoError(t, err)

		_, err = repo.AddBook(ctx, Book{ID: 1, Title: "Animal Farm", Author: "George Orwell"})
		assert.ErrorIs(t, err, ErrDuplicateID)

		after, err := repo.GetAllBooks(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("rejects ids outside the storable range", func(t *testing.T) {
		repo := NewMemoryRepo(SeedData())
		before, err := repo.GetAllBooks(ctx)
		require.NoError(t, err)

		for _, id := range []int{-1, int(int64(MaxID) + 1)} {
			_, err := repo.AddBook(ctx, Book{ID: id, Title: "out of range"})
			assert.ErrorIs(t, err, ErrInvalidID, "id %d", id)
		}

		after, err := repo.GetAllBooks(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("stops assigning once MaxID is held", func(t *testing.T) {
		repo := NewMemoryRepo(SeedData())
		id, err := repo.AddBook(ctx, Book{ID: MaxID, Title: "last"})
		require.NoError(t, err)
		assert.Equal(t, MaxID, id)

		_, err = repo.AddBook(ctx, Book{Title: "one too many"})
		assert.ErrorIs(t, err, ErrIDSpaceExhausted)

		last, ok, err := repo.GetBookByID(ctx, MaxID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "last", last.Title)

		all, err := repo.GetAllBooks(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 6)
	})

	t.Run("seed duplicates are dropped", func(t *testing.T) {
		repo := NewMemoryRepo([]Book{{ID: 1, Title: "first"}, {ID: 1, Title: "second"}})
		all, err := repo.GetAllBooks(ctx)
		require.NoError(t, err)
		assert.Equal(t, []Book{{ID: 1, Title: "first"}}, all)
	})
}

func TestMemoryRepo_UpdateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("existing id", func(t *testing.T) {
		repo := NewMemoryRepo(SeedData())
		updated := Book{ID: 1, Title: "1984", Author: "George Orwell"}

		ok, err := repo.UpdateBook(ctx, updated)
		require.NoError(t, err)
		assert.True(t, ok)

		b, found, err := repo.GetBookByID(ctx, 1)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, updated, b)
	})

	t.Run("missing id leaves store unchanged", func(t *testing.T) {
		repo := NewMemoryRepo(SeedData())
		before, err := repo.GetAllBooks(ctx)
		require.NoError(t, err)

		ok, err := repo.UpdateBook(ctx, Book{ID: 99, Title: "Ghost", Author: "Nobody"})
		require.NoError(t, err)
		assert.False(t, ok)

		after, err := repo.GetAllBooks(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestMemoryRepo_DeleteBook(t *testing.T) {
	ctx := context.Background()

	t.Run("existing id", func(t *testing.T) {
		repo := NewMemoryRepo(SeedData())

		ok, err := repo.DeleteBook(ctx, 1)
		require.NoError(t, err)
		assert.True(t, ok)

		_, found, err := repo.GetBookByID(ctx, 1)
		require.NoError(t, err)
		assert.False(t, found)

		again, err := repo.DeleteBook(ctx, 1)
		require.NoError(t, err)
		assert.False(t, again)
	})

	t.Run("missing id leaves store unchanged", func(t *testing.T) {
		repo := NewMemoryRepo(SeedData())
		before, err := repo.GetAllBooks(ctx)
		require.NoError(t, err)

		ok, err := repo.DeleteBook(ctx, 99)
		require.NoError(t, err)
		assert.False(t, ok)

		after, err := repo.GetAllBooks(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("deleted ids are not reused", func(t *testing.T) {
		repo := NewMemoryRepo(SeedData())
		_, err := repo.DeleteBook(ctx, 5)
		require.NoError(t, err)

		id, err := repo.AddBook(ctx, Book{Title: "New"})
		require.NoError(t, err)
		assert.Equal(t, 6, id)
	})
}

func TestMemoryRepo_ConcurrentAdds(t *testing.T) {
	repo := NewMemoryRepo(nil)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := repo.AddBook(ctx, Book{Title: "t"})
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}

	all, err := repo.GetAllBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n)
}
