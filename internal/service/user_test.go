package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
)

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("AdminDeletes", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo)

		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, IsAdmin: true}, nil)
		userRepo.On("Delete", ctx, int32(2)).Return(nil)

		err := svc.DeleteUser(ctx, 1, 2)
		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("NonAdminForbidden", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo)

		userRepo.On("GetByID", ctx, int32(3)).Return(&domain.User{ID: 3, IsAdmin: false}, nil)

		err := svc.DeleteUser(ctx, 3, 2)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestExchangeService_Settle(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		exchangeRepo := new(MockExchangeRepo)
		svc := NewExchangeService(exchangeRepo)

		exchangeRepo.On("Settle", ctx, int32(1), int32(7)).
			Return(&domain.ExchangeResult{RequesterCredits: 2, OwnerCredits: 13}, nil)

		result, err := svc.Settle(ctx, 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), result.RequesterCredits)
		assert.Equal(t, int32(13), result.OwnerCredits)
	})

	t.Run("FailurePassesThrough", func(t *testing.T) {
		exchangeRepo := new(MockExchangeRepo)
		svc := NewExchangeService(exchangeRepo)

		exchangeRepo.On("Settle", ctx, int32(1), int32(7)).
			Return(nil, domain.ErrInsufficientCredits)

		_, err := svc.Settle(ctx, 1, 7)
		assert.ErrorIs(t, err, domain.ErrInsufficientCredits)
	})
}
