package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionFilter narrows a transaction listing or count. Nil fields apply
// no filter; date bounds are inclusive.
type TransactionFilter struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	CategoryID *uuid.UUID
	Type       *TransactionType
}

// CategoryAmount is one per-category expense total produced by the store's
// group-by aggregation.
type CategoryAmount struct {
	CategoryID uuid.UUID
	Total      decimal.Decimal
}
