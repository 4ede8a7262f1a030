package service

import (
	"context"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
)

type AuthService interface {
	// RequestOTP stages a registration and emails a verification code.
	RequestOTP(ctx context.Context, username, email, password string) error
	// VerifyOTP turns a staged registration into a user with the signup
	// credit grant. Returns the created user.
	VerifyOTP(ctx context.Context, email, code string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error) // user, access token
}

type UserService interface {
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, adminID, userID int32) error
}

type BookService interface {
	AddBook(ctx context.Context, book *domain.Book) error
	GetBook(ctx context.Context, id int32) (*domain.Book, error)
	UpdateBook(ctx context.Context, actorID int32, actorAdmin bool, book *domain.Book) (*domain.Book, error)
	DeleteBook(ctx context.Context, actorID int32, actorAdmin bool, id int32) error
	ListAvailableBooks(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error)
	ListBooksByOwner(ctx context.Context, ownerID int32) ([]domain.Book, error)
	MarkRead(ctx context.Context, id int32) (*domain.Book, error)
}

type RequestService interface {
	CreateRequest(ctx context.Context, bookID, requesterID int32) (*domain.Request, error)
	UpdateRequestStatus(ctx context.Context, requestID int32, status domain.RequestStatus, meetupDetails string) (*domain.Request, error)
	CancelRequest(ctx context.Context, requestID int32) error
	ListIncoming(ctx context.Context, ownerID int32) ([]domain.Request, error)
	ListOutgoing(ctx context.Context, requesterID int32) ([]domain.Request, error)
}

type ExchangeService interface {
	// Settle atomically moves book availability, credits and ledger entries.
	Settle(ctx context.Context, requesterID, bookID int32) (*domain.ExchangeResult, error)
}

type LedgerService interface {
	GetTransactions(ctx context.Context, userID int32) ([]domain.Transaction, error)
}

type EmailService interface {
	SendOTP(ctx context.Context, email, username, code string) error
}
