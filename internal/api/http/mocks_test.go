package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) RequestOTP(ctx context.Context, username, email, password string) error {
	args := m.Called(ctx, username, email, password)
	return args.Error(0)
}
func (m *MockAuthService) VerifyOTP(ctx context.Context, email, code string) (*domain.User, error) {
	args := m.Called(ctx, email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, adminID, userID int32) error {
	args := m.Called(ctx, adminID, userID)
	return args.Error(0)
}

// MockBookService
type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) AddBook(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookService) GetBook(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookService) UpdateBook(ctx context.Context, actorID int32, actorAdmin bool, book *domain.Book) (*domain.Book, error) {
	args := m.Called(ctx, actorID, actorAdmin, book)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookService) DeleteBook(ctx context.Context, actorID int32, actorAdmin bool, id int32) error {
	args := m.Called(ctx, actorID, actorAdmin, id)
	return args.Error(0)
}
func (m *MockBookService) ListAvailableBooks(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookService) ListBooksByOwner(ctx context.Context, ownerID int32) ([]domain.Book, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookService) MarkRead(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

// MockRequestService
type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) CreateRequest(ctx context.Context, bookID, requesterID int32) (*domain.Request, error) {
	args := m.Called(ctx, bookID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestService) UpdateRequestStatus(ctx context.Context, requestID int32, status domain.RequestStatus, meetupDetails string) (*domain.Request, error) {
	args := m.Called(ctx, requestID, status, meetupDetails)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestService) CancelRequest(ctx context.Context, requestID int32) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}
func (m *MockRequestService) ListIncoming(ctx context.Context, ownerID int32) ([]domain.Request, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestService) ListOutgoing(ctx context.Context, requesterID int32) ([]domain.Request, error) {
	args := m.Called(ctx, requesterID)
	return args.Get(0).([]domain.Request), args.Error(1)
}

// MockExchangeService
type MockExchangeService struct {
	mock.Mock
}

func (m *MockExchangeService) Settle(ctx context.Context, requesterID, bookID int32) (*domain.ExchangeResult, error) {
	args := m.Called(ctx, requesterID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeResult), args.Error(1)
}

// MockLedgerService
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetTransactions(ctx context.Context, userID int32) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
