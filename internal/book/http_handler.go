package book

import (
	"bookstore/internal/httpx"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

type HTTPHandler struct {
	service UseCase
}

func NewHTTPHandler(service UseCase) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// bookRequest is the body of POST /books and PUT /books/{id}. The column
// widths of the books table bound title and author.
type bookRequest struct {
	ID     int    `json:"id" validate:"gte=0,lte=2147483647"`
	Title  string `json:"title" validate:"max=255"`
	Author string `json:"author" validate:"max=255"`
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books/{id}", h.GetByID)
	mux.HandleFunc("PUT /books/{id}", h.Update)
	mux.HandleFunc("DELETE /books/{id}", h.Delete)
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.GetAllBooks(r.Context())
	if err != nil {
		internalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]any{"total": len(books)})
}

// GetByID handles GET /books/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b, found, err := h.service.GetBookByID(r.Context(), id)
	if err != nil {
		internalError(w, r)
		return
	}
	if !found {
		notFound(w, r)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBook(w, r)
	if !ok {
		return
	}

	b := Book{ID: req.ID, Title: req.Title, Author: req.Author}
	id, err := h.service.AddBook(r.Context(), b)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateID):
			httpx.JSONError(w, r, http.StatusConflict, "DUPLICATE_ID", "A book with this id already exists", nil)
		case errors.Is(err, ErrInvalidID):
			httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "Book id out of range", nil)
		case errors.Is(err, ErrIDSpaceExhausted):
			httpx.JSONError(w, r, http.StatusInsufficientStorage, "ID_SPACE_EXHAUSTED", "No book ids left to assign", nil)
		default:
			internalError(w, r)
		}
		return
	}
	b.ID = id
	w.Header().Set("Location", "/books/"+strconv.Itoa(id))
	httpx.JSONCreated(w, r, b)
}

// Update handles PUT /books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := decodeBook(w, r)
	if !ok {
		return
	}
	if req.ID != 0 && req.ID != id {
		httpx.JSONError(w, r, http.StatusBadRequest, "ID_MISMATCH", "Body id does not match path id", nil)
		return
	}

	b := Book{ID: id, Title: req.Title, Author: req.Author}
	updated, err := h.service.UpdateBook(r.Context(), b)
	if err != nil {
		internalError(w, r)
		return
	}
	if !updated {
		notFound(w, r)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteBook(r.Context(), id)
	if err != nil {
		internalError(w, r)
		return
	}
	if !deleted {
		notFound(w, r)
		return
	}
	httpx.JSONNoContent(w)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "Book id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}

// decodeBook accepts exactly one JSON object with known fields.
func decodeBook(w http.ResponseWriter, r *http.Request) (bookRequest, bool) {
	var req bookRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(&req)
	if err == nil && dec.More() {
		err = errors.New("trailing data after book")
	}
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
			return req, false
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_JSON", "Request body must be a JSON book", nil)
		return req, false
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book", details)
		return req, false
	}
	return req, true
}

func notFound(w http.ResponseWriter, r *http.Request) {
	httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
}

func internalError(w http.ResponseWriter, r *http.Request) {
	httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}
