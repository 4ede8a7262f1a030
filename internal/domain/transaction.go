package domain

type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// Transaction is an append-only ledger entry. Amount is always positive; the
// direction comes from Type. The sum of a user's credits minus debits must
// equal that user's current balance.
type Transaction struct {
	ID          int32           `json:"id"`
	UserID      int32           `json:"userId"`
	BookID      *int32          `json:"bookId,omitempty"`
	Type        TransactionType `json:"type"`
	Amount      int32           `json:"amount"`
	Description string          `json:"description"`
	CreatedOn   string          `json:"createdOn"`
}

// ExchangeResult reports the post-settlement balances of both parties.
type ExchangeResult struct {
	RequesterCredits int32 `json:"requesterCredits"`
	OwnerCredits     int32 `json:"ownerCredits"`
}
