package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
	"github.com/Charan908515/book-credit-exchange/internal/repository"

	"github.com/lib/pq"
)

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

const bookColumns = `id, title, author, genres, condition, credit_value, COALESCE(cover_url, ''), COALESCE(description, ''), owner_id, is_available, read_count, created_on`

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (title, author, genres, condition, credit_value, cover_url, description, owner_id, is_available, read_count, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now()
	b.IsAvailable = true
	b.ReadCount = 0
	err := r.db.QueryRowContext(ctx, query,
		b.Title, b.Author, pq.Array(b.Genres), b.Condition, b.CreditValue,
		b.CoverURL, b.Description, b.OwnerID, b.IsAvailable, b.ReadCount, now).Scan(&b.ID)
	if err != nil {
		return err
	}
	b.CreatedOn = now.Format(time.RFC3339)
	return nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	b, err := scanBook(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookRepository) Update(ctx context.Context, b *domain.Book) error {
	// is_available is written only by the settlement transaction and
	// read_count only by IncrementReadCount; neither is updatable here.
	query := `UPDATE books SET title=$1, author=$2, genres=$3, condition=$4, credit_value=$5,
	          cover_url=$6, description=$7 WHERE id=$8`
	result, err := r.db.ExecContext(ctx, query,
		b.Title, b.Author, pq.Array(b.Genres), b.Condition, b.CreditValue,
		b.CoverURL, b.Description, b.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Pending requests against a deleted book are rejected, not orphaned.
	_, err = tx.ExecContext(ctx,
		`UPDATE requests SET status = $1, updated_on = $2 WHERE book_id = $3 AND status = $4`,
		domain.RequestStatusRejected, time.Now(), id, domain.RequestStatusPending)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrBookNotFound
	}

	return tx.Commit()
}

func (r *bookRepository) ListAvailable(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE is_available = true`
	args := []interface{}{}
	argIdx := 1

	if filter.Genre != "" {
		query += fmt.Sprintf(" AND $%d = ANY(genres)", argIdx)
		args = append(args, filter.Genre)
		argIdx++
	}
	if filter.Condition != "" {
		query += fmt.Sprintf(" AND condition = $%d", argIdx)
		args = append(args, filter.Condition)
		argIdx++
	}
	if filter.MaxCredits > 0 {
		query += fmt.Sprintf(" AND credit_value <= $%d", argIdx)
		args = append(args, filter.MaxCredits)
		argIdx++
	}
	if filter.Query != "" {
		query += fmt.Sprintf(" AND (title ILIKE '%%' || $%d || '%%' OR author ILIKE '%%' || $%d || '%%')", argIdx, argIdx)
		args = append(args, filter.Query)
		argIdx++
	}
	query += " ORDER BY created_on DESC"

	return r.list(ctx, query, args...)
}

func (r *bookRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE owner_id = $1 ORDER BY created_on DESC`
	return r.list(ctx, query, ownerID)
}

func (r *bookRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Book, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}
	return books, rows.Err()
}

func (r *bookRepository) IncrementReadCount(ctx context.Context, id int32) (*domain.Book, error) {
	query := `UPDATE books SET read_count = read_count + 1 WHERE id = $1 RETURNING ` + bookColumns
	b, err := scanBook(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}
	return b, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBook(row rowScanner) (*domain.Book, error) {
	b := &domain.Book{}
	var createdOn time.Time
	err := row.Scan(&b.ID, &b.Title, &b.Author, pq.Array(&b.Genres), &b.Condition, &b.CreditValue,
		&b.CoverURL, &b.Description, &b.OwnerID, &b.IsAvailable, &b.ReadCount, &createdOn)
	if err != nil {
		return nil, err
	}
	b.CreatedOn = createdOn.Format(time.RFC3339)
	return b, nil
}
