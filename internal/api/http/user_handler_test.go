package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
)

func TestUserHandler_RequestOTP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, m := newTestRouter()

		m.auth.On("RequestOTP", mock.Anything, "alice", "alice@example.com", "secret-password").Return(nil)

		body := `{"username":"alice","email":"alice@example.com","password":"secret-password"}`
		req := httptest.NewRequest("POST", "/api/users/request-otp", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		router, m := newTestRouter()

		m.auth.On("RequestOTP", mock.Anything, "alice", "alice@example.com", "secret-password").
			Return(domain.ErrDuplicateUser)

		body := `{"username":"alice","email":"alice@example.com","password":"secret-password"}`
		req := httptest.NewRequest("POST", "/api/users/request-otp", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_VerifyOTP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, m := newTestRouter()

		m.auth.On("VerifyOTP", mock.Anything, "alice@example.com", "123456").
			Return(&domain.User{ID: 1, Username: "alice", Credits: 5}, nil)

		body := `{"email":"alice@example.com","otp":"123456"}`
		req := httptest.NewRequest("POST", "/api/users/verify-otp", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"credits":5`)
	})

	t.Run("WrongCode", func(t *testing.T) {
		router, m := newTestRouter()

		m.auth.On("VerifyOTP", mock.Anything, "alice@example.com", "000000").
			Return(nil, domain.ErrInvalidOTP)

		body := `{"email":"alice@example.com","otp":"000000"}`
		req := httptest.NewRequest("POST", "/api/users/verify-otp", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, m := newTestRouter()

		m.auth.On("Login", mock.Anything, "alice@example.com", "secret-password").
			Return(&domain.User{ID: 1, Username: "alice"}, "token-value", nil)

		body := `{"email":"alice@example.com","password":"secret-password"}`
		req := httptest.NewRequest("POST", "/api/users/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			User  *domain.User `json:"user"`
			Token string       `json:"token"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "token-value", resp.Token)
		assert.Equal(t, "alice", resp.User.Username)
	})

	t.Run("BadCredentials", func(t *testing.T) {
		router, m := newTestRouter()

		m.auth.On("Login", mock.Anything, "alice@example.com", "wrong").
			Return(nil, "", domain.ErrUnauthorized)

		body := `{"email":"alice@example.com","password":"wrong"}`
		req := httptest.NewRequest("POST", "/api/users/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestUserHandler_Transactions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, m := newTestRouter()

		m.ledger.On("GetTransactions", mock.Anything, int32(1)).
			Return([]domain.Transaction{
				{ID: 1, UserID: 1, Type: domain.TransactionTypeCredit, Amount: 5, Description: "Initial signup credits"},
			}, nil)

		req := httptest.NewRequest("GET", "/api/users/1/transactions", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Initial signup credits")
	})
}

func TestUserHandler_Delete(t *testing.T) {
	t.Run("NonAdminForbidden", func(t *testing.T) {
		router, m := newTestRouter()

		m.users.On("DeleteUser", mock.Anything, int32(3), int32(2)).Return(domain.ErrUnauthorized)

		req := httptest.NewRequest("DELETE", "/api/users/2", nil)
		req.Header.Set("Authorization", bearerFor(t, m, 3, false))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("AdminDeletes", func(t *testing.T) {
		router, m := newTestRouter()

		m.users.On("DeleteUser", mock.Anything, int32(1), int32(2)).Return(nil)

		req := httptest.NewRequest("DELETE", "/api/users/2", nil)
		req.Header.Set("Authorization", bearerFor(t, m, 1, true))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
