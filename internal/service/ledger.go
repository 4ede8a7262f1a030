package service

import (
	"context"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
	"github.com/Charan908515/book-credit-exchange/internal/repository"
)

type ledgerService struct {
	ledgerRepo repository.LedgerRepository
}

func NewLedgerService(ledgerRepo repository.LedgerRepository) LedgerService {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

func (s *ledgerService) GetTransactions(ctx context.Context, userID int32) ([]domain.Transaction, error) {
	return s.ledgerRepo.ListByUser(ctx, userID)
}
