package book

// SeedData returns the books every fresh store starts with.
func SeedData() []Book {
	return []Book{
		{ID: 1, Title: "1999", Author: "George Orwell"},
		{ID: 2, Title: "To Kill a Mockingbird", Author: "Harper Lee"},
		{ID: 3, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald"},
		{ID: 4, Title: "Lord of the Flies", Author: "William Golding"},
		{ID: 5, Title: "Pride and Prejudice", Author: "Jane Austen"},
	}
}
