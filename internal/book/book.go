package book

import (
	"errors"
	"math"
)

// MaxID is the largest id a book can hold. It matches the SERIAL column.
const MaxID = math.MaxInt32

var (
	// ErrDuplicateID is returned when a book is added with an id that is already held.
	ErrDuplicateID = errors.New("book id already exists")
	// ErrInvalidID is returned when a book is added with an id outside 1..MaxID.
	ErrInvalidID = errors.New("book id out of range")
	// ErrIDSpaceExhausted is returned when no id above every held id is left to assign.
	ErrIDSpaceExhausted = errors.New("book id space exhausted")
)

// Book represents a book entity. An ID of zero means the repository has not
// assigned one yet.
type Book struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// storableID reports whether id can be held by a repository.
func storableID(id int) bool {
	return id > 0 && id <= MaxID
}
