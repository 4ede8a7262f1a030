package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
)

func TestRequestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		repo := NewRequestRepository(db)
		req := &domain.Request{BookID: 7, RequesterID: 1, OwnerID: 2}

		mock.ExpectQuery("INSERT INTO requests").
			WithArgs(int32(7), int32(1), int32(2), domain.RequestStatusPending, "", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

		err = repo.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, int32(11), req.ID)
		assert.Equal(t, domain.RequestStatusPending, req.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SecondPendingRequestRejected", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		repo := NewRequestRepository(db)
		req := &domain.Request{BookID: 7, RequesterID: 1, OwnerID: 2}

		mock.ExpectQuery("INSERT INTO requests").
			WithArgs(int32(7), int32(1), int32(2), domain.RequestStatusPending, "", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505"})

		err = repo.Create(ctx, req)
		assert.ErrorIs(t, err, domain.ErrAlreadyRequested)
	})
}

func TestRequestRepository_HasPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRequestRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int32(7), int32(1), domain.RequestStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.HasPending(ctx, 7, 1)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestRequestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRequestRepository(db)
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, book_id, requester_id, owner_id, status").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})
}
