package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
	"github.com/Charan908515/book-credit-exchange/internal/repository"
)

type ledgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

// Ledger writes happen inside the settlement and signup transactions;
// this repository only reads.

func (r *ledgerRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Transaction, error) {
	query := `SELECT id, user_id, book_id, type, amount, COALESCE(description, ''), created_on
	          FROM transactions WHERE user_id = $1 ORDER BY created_on DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		var createdOn time.Time
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.BookID, &tx.Type, &tx.Amount, &tx.Description, &createdOn); err != nil {
			return nil, err
		}
		tx.CreatedOn = createdOn.Format(time.RFC3339)
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func (r *ledgerRepository) ListBalanceDrift(ctx context.Context) ([]repository.BalanceDrift, error) {
	query := `SELECT u.id, u.credits, COALESCE(SUM(CASE WHEN t.type = 'credit' THEN t.amount ELSE -t.amount END), 0) AS ledger_sum
	          FROM users u
	          LEFT JOIN transactions t ON t.user_id = u.id
	          GROUP BY u.id, u.credits
	          HAVING u.credits <> COALESCE(SUM(CASE WHEN t.type = 'credit' THEN t.amount ELSE -t.amount END), 0)`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drifts []repository.BalanceDrift
	for rows.Next() {
		var d repository.BalanceDrift
		if err := rows.Scan(&d.UserID, &d.Credits, &d.LedgerSum); err != nil {
			return nil, err
		}
		drifts = append(drifts, d)
	}
	return drifts, rows.Err()
}
