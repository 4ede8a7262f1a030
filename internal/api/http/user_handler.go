package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
	"github.com/Charan908515/book-credit-exchange/internal/service"
)

// UserHandler serves registration, login and user reads.
type UserHandler struct {
	authSvc   service.AuthService
	userSvc   service.UserService
	ledgerSvc service.LedgerService
}

func NewUserHandler(authSvc service.AuthService, userSvc service.UserService, ledgerSvc service.LedgerService) *UserHandler {
	return &UserHandler{authSvc: authSvc, userSvc: userSvc, ledgerSvc: ledgerSvc}
}

type requestOTPBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var body requestOTPBody
	if !decodeBody(w, r, &body) {
		return
	}
	if err := h.authSvc.RequestOTP(r.Context(), body.Username, body.Email, body.Password); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Verification code sent")
}

type verifyOTPBody struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (h *UserHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var body verifyOTPBody
	if !decodeBody(w, r, &body) {
		return
	}
	user, err := h.authSvc.VerifyOTP(r.Context(), body.Email, body.OTP)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if !decodeBody(w, r, &body) {
		return
	}
	user, token, err := h.authSvc.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loginResponse{User: user, Token: token})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userSvc.ListUsers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	user, err := h.userSvc.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	txs, err := h.ledgerSvc.GetTransactions(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	respondJSON(w, http.StatusOK, txs)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	claims := claimsFrom(r.Context())
	if err := h.userSvc.DeleteUser(r.Context(), claims.UserID, id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "User deleted")
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		respondMessage(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return int32(id), true
}
