package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// ParseTransactionType returns the typed value for s, or false when s is
// not a known transaction type.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch TransactionType(s) {
	case TypeIncome, TypeExpense:
		return TransactionType(s), true
	}
	return "", false
}

type TransactionStatus string

const (
	StatusActive  TransactionStatus = "active"
	StatusDeleted TransactionStatus = "deleted"
)

// Transaction is a single ledger record. Amount is always strictly
// positive; direction is carried by Type. DeletedAt is set together with
// StatusDeleted and never cleared.
type Transaction struct {
	ID          uuid.UUID         `db:"id"`
	UserID      uuid.UUID         `db:"user_id"`
	Amount      decimal.Decimal   `db:"amount"`
	Type        TransactionType   `db:"type"`
	CategoryID  uuid.UUID         `db:"category_id"`
	Description string            `db:"description"`
	Date        time.Time         `db:"transaction_date"`
	Status      TransactionStatus `db:"status"`
	CreatedAt   time.Time         `db:"created_at"`
	DeletedAt   *time.Time        `db:"deleted_at"`
}

// Deleted reports whether the record has been soft-deleted.
func (t *Transaction) Deleted() bool {
	return t.Status == StatusDeleted
}
