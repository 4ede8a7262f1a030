package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
	"github.com/Charan908515/book-credit-exchange/internal/repository"

	"github.com/lib/pq"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateWithGrant(ctx context.Context, u *domain.User, grant int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	query := `INSERT INTO users (username, email, password_hash, credits, is_admin, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err = tx.QueryRowContext(ctx, query, u.Username, u.Email, u.PasswordHash, grant, u.IsAdmin, now, now).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateUser
		}
		return err
	}
	u.Credits = grant
	u.CreatedOn = now.Format(time.RFC3339)
	u.UpdatedOn = u.CreatedOn

	// The matching ledger entry keeps the balance invariant true from the
	// first row.
	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (user_id, book_id, type, amount, description, created_on)
		 VALUES ($1, NULL, $2, $3, $4, $5)`,
		u.ID, domain.TransactionTypeCredit, grant, "Initial signup credits", now)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, `WHERE LOWER(email) = LOWER($1)`, email)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, `WHERE username = $1`, username)
}

func (r *userRepository) getBy(ctx context.Context, where string, arg any) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, username, email, password_hash, credits, is_admin, created_on, updated_on FROM users ` + where
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Credits, &u.IsAdmin, &createdOn, &updatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	u.CreatedOn = createdOn.Format(time.RFC3339)
	u.UpdatedOn = updatedOn.Format(time.RFC3339)
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, username, email, password_hash, credits, is_admin, created_on, updated_on FROM users ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Credits, &u.IsAdmin, &createdOn, &updatedOn); err != nil {
			return nil, err
		}
		u.CreatedOn = createdOn.Format(time.RFC3339)
		u.UpdatedOn = updatedOn.Format(time.RFC3339)
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET username=$1, email=$2, credits=$3, is_admin=$4, updated_on=$5 WHERE id=$6`
	result, err := r.db.ExecContext(ctx, query, u.Username, u.Email, u.Credits, u.IsAdmin, time.Now(), u.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Cascade order: requests referencing the user or their books, then the
	// books, then the ledger, then the user row itself.
	_, err = tx.ExecContext(ctx,
		`DELETE FROM requests WHERE requester_id = $1 OR owner_id = $1
		 OR book_id IN (SELECT id FROM books WHERE owner_id = $1)`, id)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM books WHERE owner_id = $1`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM transactions WHERE user_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return tx.Commit()
}

func (r *userRepository) UpsertPendingRegistration(ctx context.Context, reg *domain.PendingRegistration) error {
	query := `INSERT INTO pending_registrations (email, username, password_hash, otp_code, expires_at, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (email) DO UPDATE
	          SET username = $2, password_hash = $3, otp_code = $4, expires_at = $5`
	expiresAt, err := time.Parse(time.RFC3339, reg.ExpiresAt)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, reg.Email, reg.Username, reg.PasswordHash, reg.OTPCode, expiresAt, time.Now())
	return err
}

func (r *userRepository) GetPendingRegistration(ctx context.Context, email string) (*domain.PendingRegistration, error) {
	reg := &domain.PendingRegistration{}
	query := `SELECT email, username, password_hash, otp_code, expires_at, created_on
	          FROM pending_registrations WHERE LOWER(email) = LOWER($1)`
	var expiresAt, createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, email).Scan(&reg.Email, &reg.Username, &reg.PasswordHash, &reg.OTPCode, &expiresAt, &createdOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvalidOTP
		}
		return nil, err
	}
	reg.ExpiresAt = expiresAt.Format(time.RFC3339)
	reg.CreatedOn = createdOn.Format(time.RFC3339)
	return reg, nil
}

func (r *userRepository) DeletePendingRegistration(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pending_registrations WHERE LOWER(email) = LOWER($1)`, email)
	return err
}

func (r *userRepository) DeleteExpiredPendingRegistrations(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pending_registrations WHERE expires_at < $1`, time.Now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
