package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AlertKind string

const (
	AlertBudgetExceeded   AlertKind = "budget_exceeded"
	AlertLargeTransaction AlertKind = "large_transaction"
)

type AlertSeverity string

const (
	SeverityWarning AlertSeverity = "warning"
	SeverityInfo    AlertSeverity = "info"
)

// Alert is a derived, non-persisted notice that a configured threshold was
// crossed in a given month. Exactly one of the kind-specific payloads is
// non-nil, matching Kind.
type Alert struct {
	Kind             AlertKind              `json:"kind"`
	Severity         AlertSeverity          `json:"severity"`
	Title            string                 `json:"title"`
	Message          string                 `json:"message"`
	BudgetExceeded   *BudgetExceededAlert   `json:"budget_exceeded,omitempty"`
	LargeTransaction *LargeTransactionAlert `json:"large_transaction,omitempty"`
}

// BudgetExceededAlert reports that expenses reached the configured share of
// the month's income.
type BudgetExceededAlert struct {
	Percent          decimal.Decimal `json:"percent"`
	ThresholdPercent decimal.Decimal `json:"threshold_percent"`
}

// LargeTransactionAlert reports a single expense at or above the configured
// share of the month's income.
type LargeTransactionAlert struct {
	TransactionID   uuid.UUID       `json:"transaction_id"`
	Amount          decimal.Decimal `json:"amount"`
	PercentOfIncome decimal.Decimal `json:"percent_of_income"`
	Date            time.Time       `json:"transaction_date"`
	Description     string          `json:"description"`
	CategoryName    string          `json:"category_name"`
}
