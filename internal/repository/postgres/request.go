package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
	"github.com/Charan908515/book-credit-exchange/internal/repository"
)

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.Request) error {
	query := `INSERT INTO requests (book_id, requester_id, owner_id, status, meetup_details, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	req.Status = domain.RequestStatusPending
	err := r.db.QueryRowContext(ctx, query, req.BookID, req.RequesterID, req.OwnerID, req.Status, req.MeetupDetails, now, now).Scan(&req.ID)
	if err != nil {
		if isUniqueViolation(err) {
			// Partial unique index on (book_id, requester_id) WHERE pending.
			return domain.ErrAlreadyRequested
		}
		return err
	}
	req.CreatedOn = now.Format(time.RFC3339)
	req.UpdatedOn = req.CreatedOn
	return nil
}

func (r *requestRepository) GetByID(ctx context.Context, id int32) (*domain.Request, error) {
	req := &domain.Request{}
	query := `SELECT id, book_id, requester_id, owner_id, status, COALESCE(meetup_details, ''), created_on, updated_on
	          FROM requests WHERE id = $1`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&req.ID, &req.BookID, &req.RequesterID, &req.OwnerID, &req.Status, &req.MeetupDetails, &createdOn, &updatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	req.CreatedOn = createdOn.Format(time.RFC3339)
	req.UpdatedOn = updatedOn.Format(time.RFC3339)
	return req, nil
}

func (r *requestRepository) Update(ctx context.Context, req *domain.Request) error {
	query := `UPDATE requests SET status=$1, meetup_details=$2, updated_on=$3 WHERE id=$4`
	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, req.Status, req.MeetupDetails, now, req.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRequestNotFound
	}
	req.UpdatedOn = now.Format(time.RFC3339)
	return nil
}

func (r *requestRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *requestRepository) HasPending(ctx context.Context, bookID, requesterID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM requests WHERE book_id = $1 AND requester_id = $2 AND status = $3)`
	err := r.db.QueryRowContext(ctx, query, bookID, requesterID, domain.RequestStatusPending).Scan(&exists)
	return exists, err
}

// ListIncoming returns pending requests against books the user owns,
// including the book and requester for display.
func (r *requestRepository) ListIncoming(ctx context.Context, ownerID int32) ([]domain.Request, error) {
	query := `SELECT r.id, r.book_id, r.requester_id, r.owner_id, r.status, COALESCE(r.meetup_details, ''), r.created_on, r.updated_on,
	                 COALESCE(b.title, ''), COALESCE(b.author, ''), COALESCE(b.credit_value, 0),
	                 u.username, u.email
	          FROM requests r
	          LEFT JOIN books b ON b.id = r.book_id
	          JOIN users u ON u.id = r.requester_id
	          WHERE r.owner_id = $1 AND r.status = $2
	          ORDER BY r.created_on DESC`
	return r.listJoined(ctx, query, ownerID, domain.RequestStatusPending)
}

// ListOutgoing returns all requests the user has made, any status.
func (r *requestRepository) ListOutgoing(ctx context.Context, requesterID int32) ([]domain.Request, error) {
	query := `SELECT r.id, r.book_id, r.requester_id, r.owner_id, r.status, COALESCE(r.meetup_details, ''), r.created_on, r.updated_on,
	                 COALESCE(b.title, ''), COALESCE(b.author, ''), COALESCE(b.credit_value, 0),
	                 u.username, u.email
	          FROM requests r
	          LEFT JOIN books b ON b.id = r.book_id
	          JOIN users u ON u.id = r.owner_id
	          WHERE r.requester_id = $1
	          ORDER BY r.created_on DESC`
	return r.listJoined(ctx, query, requesterID)
}

func (r *requestRepository) listJoined(ctx context.Context, query string, args ...interface{}) ([]domain.Request, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.Request
	for rows.Next() {
		var req domain.Request
		var createdOn, updatedOn time.Time
		book := &domain.Book{}
		user := &domain.User{}
		if err := rows.Scan(&req.ID, &req.BookID, &req.RequesterID, &req.OwnerID, &req.Status, &req.MeetupDetails, &createdOn, &updatedOn,
			&book.Title, &book.Author, &book.CreditValue,
			&user.Username, &user.Email); err != nil {
			return nil, err
		}
		req.CreatedOn = createdOn.Format(time.RFC3339)
		req.UpdatedOn = updatedOn.Format(time.RFC3339)
		book.ID = req.BookID
		req.Book = book
		req.Requester = user
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}
