package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
	"github.com/Charan908515/book-credit-exchange/internal/repository"
)

type exchangeRepository struct {
	db *sql.DB
}

func NewExchangeRepository(db *sql.DB) repository.ExchangeRepository {
	return &exchangeRepository{db: db}
}

// Settle performs the credit exchange as one transaction. All preconditions
// are re-checked after taking row locks, so two settlements racing on the
// same book serialize on the book row and the loser sees it unavailable.
func (r *exchangeRepository) Settle(ctx context.Context, requesterID, bookID int32) (*domain.ExchangeResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Lock the book row first. This is the serialization point for
	// concurrent settlements of the same book.
	var (
		title       string
		creditValue int32
		ownerID     int32
		isAvailable bool
	)
	err = tx.QueryRowContext(ctx,
		`SELECT title, credit_value, owner_id, is_available FROM books WHERE id = $1 FOR UPDATE`,
		bookID).Scan(&title, &creditValue, &ownerID, &isAvailable)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}
	if !isAvailable {
		return nil, domain.ErrBookUnavailable
	}
	if ownerID == requesterID {
		return nil, domain.ErrSelfRequest
	}

	// Lock both user rows in ascending id order to avoid lock-order
	// deadlocks between opposing exchanges.
	requesterCredits, ownerCredits, err := lockBalances(ctx, tx, requesterID, ownerID)
	if err != nil {
		return nil, err
	}
	if requesterCredits < creditValue {
		return nil, domain.ErrInsufficientCredits
	}

	now := time.Now()

	if _, err = tx.ExecContext(ctx,
		`UPDATE books SET is_available = false WHERE id = $1`, bookID); err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE users SET credits = credits - $1, updated_on = $2 WHERE id = $3`,
		creditValue, now, requesterID); err != nil {
		return nil, err
	}
	if _, err = tx.ExecContext(ctx,
		`UPDATE users SET credits = credits + $1, updated_on = $2 WHERE id = $3`,
		creditValue, now, ownerID); err != nil {
		return nil, err
	}

	const insertEntry = `INSERT INTO transactions (user_id, book_id, type, amount, description, created_on)
	                     VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(ctx, insertEntry,
		requesterID, bookID, domain.TransactionTypeDebit, creditValue,
		fmt.Sprintf("Exchanged book: %s", title), now); err != nil {
		return nil, err
	}
	if _, err = tx.ExecContext(ctx, insertEntry,
		ownerID, bookID, domain.TransactionTypeCredit, creditValue,
		fmt.Sprintf("Book exchanged: %s", title), now); err != nil {
		return nil, err
	}

	// Promote the matching approved request, if the exchange went through the
	// request workflow. Settlement without a request is also legal.
	if _, err = tx.ExecContext(ctx,
		`UPDATE requests SET status = $1, updated_on = $2
		 WHERE book_id = $3 AND requester_id = $4 AND status = $5`,
		domain.RequestStatusCompleted, now, bookID, requesterID, domain.RequestStatusApproved); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return &domain.ExchangeResult{
		RequesterCredits: requesterCredits - creditValue,
		OwnerCredits:     ownerCredits + creditValue,
	}, nil
}

func lockBalances(ctx context.Context, tx *sql.Tx, requesterID, ownerID int32) (requesterCredits, ownerCredits int32, err error) {
	firstID, secondID := requesterID, ownerID
	if secondID < firstID {
		firstID, secondID = secondID, firstID
	}

	balances := make(map[int32]int32, 2)
	for _, id := range []int32{firstID, secondID} {
		var credits int32
		err = tx.QueryRowContext(ctx,
			`SELECT credits FROM users WHERE id = $1 FOR UPDATE`, id).Scan(&credits)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return 0, 0, domain.ErrUserNotFound
			}
			return 0, 0, err
		}
		balances[id] = credits
	}

	return balances[requesterID], balances[ownerID], nil
}
