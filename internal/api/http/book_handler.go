package http

import (
	"net/http"
	"strconv"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
	"github.com/Charan908515/book-credit-exchange/internal/service"
)

type BookHandler struct {
	bookSvc service.BookService
}

func NewBookHandler(bookSvc service.BookService) *BookHandler {
	return &BookHandler{bookSvc: bookSvc}
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.BookFilter{
		Genre:     q.Get("genre"),
		Condition: q.Get("condition"),
		Query:     q.Get("q"),
	}
	if raw := q.Get("maxCredits"); raw != "" {
		max, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || max < 0 {
			respondMessage(w, http.StatusBadRequest, "invalid maxCredits")
			return
		}
		filter.MaxCredits = int32(max)
	}

	books, err := h.bookSvc.ListAvailableBooks(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	if books == nil {
		books = []domain.Book{}
	}
	respondJSON(w, http.StatusOK, books)
}

func (h *BookHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	books, err := h.bookSvc.ListBooksByOwner(r.Context(), ownerID)
	if err != nil {
		respondError(w, err)
		return
	}
	if books == nil {
		books = []domain.Book{}
	}
	respondJSON(w, http.StatusOK, books)
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	book, err := h.bookSvc.GetBook(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, book)
}

type bookBody struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Genres      []string `json:"genres"`
	Condition   string   `json:"condition"`
	CreditValue int32    `json:"creditValue"`
	CoverURL    string   `json:"coverUrl"`
	Description string   `json:"description"`
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body bookBody
	if !decodeBody(w, r, &body) {
		return
	}
	claims := claimsFrom(r.Context())

	book := &domain.Book{
		Title:       body.Title,
		Author:      body.Author,
		Genres:      body.Genres,
		Condition:   domain.BookCondition(body.Condition),
		CreditValue: body.CreditValue,
		CoverURL:    body.CoverURL,
		Description: body.Description,
		OwnerID:     claims.UserID,
	}
	if book.Genres == nil {
		book.Genres = []string{}
	}

	if err := h.bookSvc.AddBook(r.Context(), book); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, book)
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var body bookBody
	if !decodeBody(w, r, &body) {
		return
	}
	claims := claimsFrom(r.Context())

	patch := &domain.Book{
		ID:          id,
		Title:       body.Title,
		Author:      body.Author,
		Genres:      body.Genres,
		Condition:   domain.BookCondition(body.Condition),
		CreditValue: body.CreditValue,
		CoverURL:    body.CoverURL,
		Description: body.Description,
	}
	book, err := h.bookSvc.UpdateBook(r.Context(), claims.UserID, claims.IsAdmin, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, book)
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	claims := claimsFrom(r.Context())
	if err := h.bookSvc.DeleteBook(r.Context(), claims.UserID, claims.IsAdmin, id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Book deleted")
}

func (h *BookHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	book, err := h.bookSvc.MarkRead(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, book)
}
