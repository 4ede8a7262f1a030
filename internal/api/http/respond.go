package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
	"github.com/Charan908515/book-credit-exchange/internal/logger"
	"github.com/Charan908515/book-credit-exchange/internal/security"
)

type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, messageResponse{Message: msg})
}

// respondError maps domain errors onto the HTTP status contract: 404 for
// missing entities, 400 for rule violations and bad input, 401/403 for auth,
// 500 for everything else.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBookNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRequestNotFound):
		respondMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrBookUnavailable),
		errors.Is(err, domain.ErrInsufficientCredits),
		errors.Is(err, domain.ErrAlreadyRequested),
		errors.Is(err, domain.ErrSelfRequest),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrRequestNotPending),
		errors.Is(err, domain.ErrDuplicateUser),
		errors.Is(err, domain.ErrInvalidOTP),
		domain.IsValidation(err):
		respondMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken):
		respondMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		respondMessage(w, http.StatusForbidden, err.Error())
	default:
		logger.Error("Internal error", "error", err)
		respondMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
