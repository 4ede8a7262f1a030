package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Charan908515/book-credit-exchange/internal/security"
	"github.com/Charan908515/book-credit-exchange/internal/service"
)

// NewRouter wires the full REST surface. Reads and the auth endpoints are
// open; everything that mutates state requires a Bearer token.
func NewRouter(
	authSvc service.AuthService,
	userSvc service.UserService,
	bookSvc service.BookService,
	requestSvc service.RequestService,
	exchangeSvc service.ExchangeService,
	ledgerSvc service.LedgerService,
	tokens security.TokenManager,
) *mux.Router {
	userHandler := NewUserHandler(authSvc, userSvc, ledgerSvc)
	bookHandler := NewBookHandler(bookSvc)
	requestHandler := NewRequestHandler(requestSvc)
	transactionHandler := NewTransactionHandler(exchangeSvc)
	auth := NewAuthMiddleware(tokens)

	router := mux.NewRouter()
	router.Use(RequestIDMiddleware, LoggingMiddleware)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		respondMessage(w, http.StatusOK, "Book Exchange API is running")
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// Users & auth
	api.HandleFunc("/users/request-otp", userHandler.RequestOTP).Methods("POST")
	api.HandleFunc("/users/verify-otp", userHandler.VerifyOTP).Methods("POST")
	api.HandleFunc("/users/login", userHandler.Login).Methods("POST")
	api.HandleFunc("/users", userHandler.List).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}", userHandler.Get).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}/transactions", userHandler.Transactions).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}", auth.Require(userHandler.Delete)).Methods("DELETE")

	// Books
	api.HandleFunc("/books", bookHandler.List).Methods("GET")
	api.HandleFunc("/books/user/{userId:[0-9]+}", bookHandler.ListByOwner).Methods("GET")
	api.HandleFunc("/books/{id:[0-9]+}", bookHandler.Get).Methods("GET")
	api.HandleFunc("/books", auth.Require(bookHandler.Create)).Methods("POST")
	api.HandleFunc("/books/{id:[0-9]+}", auth.Require(bookHandler.Update)).Methods("PATCH")
	api.HandleFunc("/books/{id:[0-9]+}", auth.Require(bookHandler.Delete)).Methods("DELETE")
	api.HandleFunc("/books/{id:[0-9]+}/read", auth.Require(bookHandler.MarkRead)).Methods("POST")

	// Requests
	api.HandleFunc("/requests/incoming/{userId:[0-9]+}", requestHandler.Incoming).Methods("GET")
	api.HandleFunc("/requests/outgoing/{userId:[0-9]+}", requestHandler.Outgoing).Methods("GET")
	api.HandleFunc("/requests", auth.Require(requestHandler.Create)).Methods("POST")
	api.HandleFunc("/requests/{id:[0-9]+}", auth.Require(requestHandler.Update)).Methods("PATCH")
	api.HandleFunc("/requests/{id:[0-9]+}", auth.Require(requestHandler.Cancel)).Methods("DELETE")

	// Exchange settlement
	api.HandleFunc("/transactions/exchange", auth.Require(transactionHandler.Exchange)).Methods("POST")

	return router
}
