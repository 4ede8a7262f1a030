package http

import (
	"net/http"

	"github.com/Charan908515/book-credit-exchange/internal/service"
)

type TransactionHandler struct {
	exchangeSvc service.ExchangeService
}

func NewTransactionHandler(exchangeSvc service.ExchangeService) *TransactionHandler {
	return &TransactionHandler{exchangeSvc: exchangeSvc}
}

type exchangeBody struct {
	RequesterID int32 `json:"requesterId"`
	BookID      int32 `json:"bookId"`
}

type exchangeResponse struct {
	Message          string `json:"message"`
	RequesterCredits int32  `json:"requesterCredits"`
	OwnerCredits     int32  `json:"ownerCredits"`
}

// Exchange invokes the settlement. The requester comes from the token, not
// the body: a caller can only spend their own credits.
func (h *TransactionHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	var body exchangeBody
	if !decodeBody(w, r, &body) {
		return
	}
	claims := claimsFrom(r.Context())
	requesterID := claims.UserID
	if body.RequesterID != 0 && body.RequesterID != requesterID && !claims.IsAdmin {
		respondMessage(w, http.StatusForbidden, "cannot exchange on behalf of another user")
		return
	}
	if body.RequesterID != 0 && claims.IsAdmin {
		requesterID = body.RequesterID
	}

	result, err := h.exchangeSvc.Settle(r.Context(), requesterID, body.BookID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, exchangeResponse{
		Message:          "Book exchange successful",
		RequesterCredits: result.RequesterCredits,
		OwnerCredits:     result.OwnerCredits,
	})
}
