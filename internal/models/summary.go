package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Summary holds period totals. SavingsRate is a percentage rounded to one
// decimal place and is zero whenever TotalIncome is not positive.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetSavings    decimal.Decimal `json:"net_savings"`
	SavingsRate   decimal.Decimal `json:"savings_rate"`
}

// CategoryBreakdownEntry is one row of the expenses-by-category breakdown.
// Percent is the share of the period's total expenses, rounded to one
// decimal place.
type CategoryBreakdownEntry struct {
	CategoryID   uuid.UUID       `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Total        decimal.Decimal `json:"total"`
	Percent      decimal.Decimal `json:"percent"`
}
