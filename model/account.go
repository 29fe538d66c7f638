package model

// Transaction represents a single account-Transaction.
// Negative amounts are debits.
type Transaction struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
}

// Account is a ledger-record with its ordered transactions.
type Account struct {
	ID           string        `json:"id"`
	Transactions []Transaction `json:"transactions"`
}
