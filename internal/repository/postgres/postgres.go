package postgres

import (
	"database/sql"

	"github.com/Charan908515/book-credit-exchange/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.BookRepository
	repository.RequestRepository
	repository.LedgerRepository
	repository.ExchangeRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		UserRepository:     NewUserRepository(db),
		BookRepository:     NewBookRepository(db),
		RequestRepository:  NewRequestRepository(db),
		LedgerRepository:   NewLedgerRepository(db),
		ExchangeRepository: NewExchangeRepository(db),
	}
}
