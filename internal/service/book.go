package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
	"github.com/Charan908515/book-credit-exchange/internal/repository"
)

type bookService struct {
	bookRepo repository.BookRepository
	userRepo repository.UserRepository
}

func NewBookService(bookRepo repository.BookRepository, userRepo repository.UserRepository) BookService {
	return &bookService{bookRepo: bookRepo, userRepo: userRepo}
}

func validateBook(b *domain.Book) error {
	if strings.TrimSpace(b.Title) == "" {
		return domain.NewValidationError("title", "must not be empty")
	}
	if strings.TrimSpace(b.Author) == "" {
		return domain.NewValidationError("author", "must not be empty")
	}
	if !domain.ValidCondition(b.Condition) {
		return domain.NewValidationError("condition", fmt.Sprintf("%q is not a recognized condition", b.Condition))
	}
	if b.CreditValue < domain.MinCreditValue || b.CreditValue > domain.MaxCreditValue {
		return domain.NewValidationError("creditValue",
			fmt.Sprintf("must be between %d and %d", domain.MinCreditValue, domain.MaxCreditValue))
	}
	return nil
}

func (s *bookService) AddBook(ctx context.Context, b *domain.Book) error {
	if err := validateBook(b); err != nil {
		return err
	}
	// The lister must exist before the book can reference them.
	if _, err := s.userRepo.GetByID(ctx, b.OwnerID); err != nil {
		return err
	}
	return s.bookRepo.Create(ctx, b)
}

func (s *bookService) GetBook(ctx context.Context, id int32) (*domain.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner, err := s.userRepo.GetByID(ctx, book.OwnerID); err == nil {
		book.Owner = &domain.User{ID: owner.ID, Username: owner.Username, Email: owner.Email}
	}
	return book, nil
}

func (s *bookService) UpdateBook(ctx context.Context, actorID int32, actorAdmin bool, patch *domain.Book) (*domain.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, patch.ID)
	if err != nil {
		return nil, err
	}
	if book.OwnerID != actorID && !actorAdmin {
		return nil, domain.ErrUnauthorized
	}

	if patch.Title != "" {
		book.Title = patch.Title
	}
	if patch.Author != "" {
		book.Author = patch.Author
	}
	if patch.Genres != nil {
		book.Genres = patch.Genres
	}
	if patch.Condition != "" {
		book.Condition = patch.Condition
	}
	if patch.CreditValue != 0 {
		book.CreditValue = patch.CreditValue
	}
	if patch.CoverURL != "" {
		book.CoverURL = patch.CoverURL
	}
	if patch.Description != "" {
		book.Description = patch.Description
	}

	if err := validateBook(book); err != nil {
		return nil, err
	}
	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) DeleteBook(ctx context.Context, actorID int32, actorAdmin bool, id int32) error {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if book.OwnerID != actorID && !actorAdmin {
		return domain.ErrUnauthorized
	}
	return s.bookRepo.Delete(ctx, id)
}

func (s *bookService) ListAvailableBooks(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error) {
	return s.bookRepo.ListAvailable(ctx, filter)
}

func (s *bookService) ListBooksByOwner(ctx context.Context, ownerID int32) ([]domain.Book, error) {
	return s.bookRepo.ListByOwner(ctx, ownerID)
}

func (s *bookService) MarkRead(ctx context.Context, id int32) (*domain.Book, error) {
	return s.bookRepo.IncrementReadCount(ctx, id)
}
