package service

import (
	"context"
	"strings"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
	"github.com/Charan908515/book-credit-exchange/internal/logger"
	"github.com/Charan908515/book-credit-exchange/internal/repository"
)

type requestService struct {
	requestRepo repository.RequestRepository
	bookRepo    repository.BookRepository
	userRepo    repository.UserRepository
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		bookRepo:    bookRepo,
		userRepo:    userRepo,
	}
}

func (s *requestService) CreateRequest(ctx context.Context, bookID, requesterID int32) (*domain.Request, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !book.IsAvailable {
		return nil, domain.ErrBookUnavailable
	}
	if book.OwnerID == requesterID {
		return nil, domain.ErrSelfRequest
	}
	if _, err := s.userRepo.GetByID(ctx, requesterID); err != nil {
		return nil, err
	}

	exists, err := s.requestRepo.HasPending(ctx, bookID, requesterID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyRequested
	}

	req := &domain.Request{
		BookID:      bookID,
		RequesterID: requesterID,
		// Owner snapshot: later ownership changes must not redirect this
		// request.
		OwnerID: book.OwnerID,
	}
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	req.Book = book
	logger.Info("Request created", "request_id", req.ID, "book_id", bookID, "requester_id", requesterID)
	return req, nil
}

// UpdateRequestStatus applies the only two legal owner-driven transitions:
// pending→approved (with meetup details) and pending→rejected. Approval never
// touches the book's availability; that flips only inside exchange
// settlement.
func (s *requestService) UpdateRequestStatus(ctx context.Context, requestID int32, status domain.RequestStatus, meetupDetails string) (*domain.Request, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if req.Status != domain.RequestStatusPending {
		return nil, domain.ErrInvalidTransition
	}

	switch status {
	case domain.RequestStatusApproved:
		if strings.TrimSpace(meetupDetails) == "" {
			return nil, domain.NewValidationError("meetupDetails", "required when approving a request")
		}
		req.MeetupDetails = meetupDetails
	case domain.RequestStatusRejected:
		if meetupDetails != "" {
			req.MeetupDetails = meetupDetails
		}
	default:
		return nil, domain.ErrInvalidTransition
	}

	req.Status = status
	if err := s.requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	logger.Info("Request status updated", "request_id", req.ID, "status", req.Status)
	return req, nil
}

func (s *requestService) CancelRequest(ctx context.Context, requestID int32) error {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status != domain.RequestStatusPending {
		return domain.ErrRequestNotPending
	}
	return s.requestRepo.Delete(ctx, requestID)
}

func (s *requestService) ListIncoming(ctx context.Context, ownerID int32) ([]domain.Request, error) {
	return s.requestRepo.ListIncoming(ctx, ownerID)
}

func (s *requestService) ListOutgoing(ctx context.Context, requesterID int32) ([]domain.Request, error) {
	return s.requestRepo.ListOutgoing(ctx, requesterID)
}
