package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
	"github.com/Charan908515/book-credit-exchange/internal/repository"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateWithGrant(ctx context.Context, user *domain.User, grant int32) error {
	args := m.Called(ctx, user, grant)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) UpsertPendingRegistration(ctx context.Context, reg *domain.PendingRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}
func (m *MockUserRepo) GetPendingRegistration(ctx context.Context, email string) (*domain.PendingRegistration, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingRegistration), args.Error(1)
}
func (m *MockUserRepo) DeletePendingRegistration(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
func (m *MockUserRepo) DeleteExpiredPendingRegistrations(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockBookRepo
type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) Update(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookRepo) ListAvailable(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookRepo) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Book, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookRepo) IncrementReadCount(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id int32) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestRepo) Update(ctx context.Context, req *domain.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRequestRepo) HasPending(ctx context.Context, bookID, requesterID int32) (bool, error) {
	args := m.Called(ctx, bookID, requesterID)
	return args.Bool(0), args.Error(1)
}
func (m *MockRequestRepo) ListIncoming(ctx context.Context, ownerID int32) ([]domain.Request, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestRepo) ListOutgoing(ctx context.Context, requesterID int32) ([]domain.Request, error) {
	args := m.Called(ctx, requesterID)
	return args.Get(0).([]domain.Request), args.Error(1)
}

// MockLedgerRepo
type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockLedgerRepo) ListBalanceDrift(ctx context.Context) ([]repository.BalanceDrift, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.BalanceDrift), args.Error(1)
}

// MockExchangeRepo
type MockExchangeRepo struct {
	mock.Mock
}

func (m *MockExchangeRepo) Settle(ctx context.Context, requesterID, bookID int32) (*domain.ExchangeResult, error) {
	args := m.Called(ctx, requesterID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeResult), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOTP(ctx context.Context, email, username, code string) error {
	args := m.Called(ctx, email, username, code)
	return args.Error(0)
}
