package service

import (
	"context"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
	"github.com/Charan908515/book-credit-exchange/internal/logger"
	"github.com/Charan908515/book-credit-exchange/internal/repository"
)

type exchangeService struct {
	exchangeRepo repository.ExchangeRepository
}

func NewExchangeService(exchangeRepo repository.ExchangeRepository) ExchangeService {
	return &exchangeService{exchangeRepo: exchangeRepo}
}

// Settle delegates to the repository, which runs the whole settlement in one
// database transaction. Failures are surfaced once, never retried here; the
// caller can retry because a failed settlement leaves no partial state.
func (s *exchangeService) Settle(ctx context.Context, requesterID, bookID int32) (*domain.ExchangeResult, error) {
	result, err := s.exchangeRepo.Settle(ctx, requesterID, bookID)
	if err != nil {
		logger.Warn("Exchange settlement failed", "requester_id", requesterID, "book_id", bookID, "error", err)
		return nil, err
	}

	logger.Info("Exchange settled",
		"requester_id", requesterID,
		"book_id", bookID,
		"requester_credits", result.RequesterCredits,
		"owner_credits", result.OwnerCredits)
	return result, nil
}
