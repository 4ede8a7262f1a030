package repository

import (
	"context"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
)

type UserRepository interface {
	// CreateWithGrant inserts the user and the signup credit ledger entry in
	// one transaction, so the ledger-vs-balance invariant holds from birth.
	CreateWithGrant(ctx context.Context, user *domain.User, grant int32) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the user and cascades their books, requests and ledger
	// entries in one transaction.
	Delete(ctx context.Context, id int32) error

	// OTP-gated registration staging
	UpsertPendingRegistration(ctx context.Context, reg *domain.PendingRegistration) error
	GetPendingRegistration(ctx context.Context, email string) (*domain.PendingRegistration, error)
	DeletePendingRegistration(ctx context.Context, email string) error
	DeleteExpiredPendingRegistrations(ctx context.Context) (int64, error)
}

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int32) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	// Delete removes the book and rejects its pending requests in one
	// transaction.
	Delete(ctx context.Context, id int32) error
	ListAvailable(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Book, error)
	IncrementReadCount(ctx context.Context, id int32) (*domain.Book, error)
}

type RequestRepository interface {
	Create(ctx context.Context, req *domain.Request) error
	GetByID(ctx context.Context, id int32) (*domain.Request, error)
	Update(ctx context.Context, req *domain.Request) error
	Delete(ctx context.Context, id int32) error
	HasPending(ctx context.Context, bookID, requesterID int32) (bool, error)
	ListIncoming(ctx context.Context, ownerID int32) ([]domain.Request, error)
	ListOutgoing(ctx context.Context, requesterID int32) ([]domain.Request, error)
}

// LedgerRepository is read-only: ledger rows are inserted by the settlement
// and signup-grant transactions, never on their own.
type LedgerRepository interface {
	ListByUser(ctx context.Context, userID int32) ([]domain.Transaction, error)
	// ListBalanceDrift returns users whose stored balance disagrees with
	// their ledger sum.
	ListBalanceDrift(ctx context.Context) ([]BalanceDrift, error)
}

// BalanceDrift reports a user whose credits column no longer matches the
// ledger. A non-empty result always indicates a bug.
type BalanceDrift struct {
	UserID    int32
	Credits   int32
	LedgerSum int32
}

// ExchangeRepository settles a credit exchange as one atomic unit: flip book
// availability, move credits between requester and owner, append the two
// ledger entries, and complete any approved request for the pair. Either all
// of it commits or none of it does.
type ExchangeRepository interface {
	Settle(ctx context.Context, requesterID, bookID int32) (*domain.ExchangeResult, error)
}
