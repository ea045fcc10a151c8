package service

import (
	"context"
	"fmt"

	"finledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AlertService derives threshold alerts from a month's aggregates. Alerts
// are computed fresh on every call; nothing is persisted.
type AlertService struct {
	store          TransactionStore
	categories     CategoryStore
	insights       *InsightsService
	budgetPercent  decimal.Decimal
	largeTxPercent decimal.Decimal
	logger         *zap.Logger
}

// NewAlertService builds an alert engine with explicit thresholds: emit a
// budget alert when expenses reach budgetPercent of income, and one alert
// per expense at or above largeTxPercent of income.
func NewAlertService(store TransactionStore, categories CategoryStore, insights *InsightsService, budgetPercent, largeTxPercent float64, logger *zap.Logger) *AlertService {
	return &AlertService{
		store:          store,
		categories:     categories,
		insights:       insights,
		budgetPercent:  decimal.NewFromFloat(budgetPercent),
		largeTxPercent: decimal.NewFromFloat(largeTxPercent),
		logger:         logger,
	}
}

// Generate returns the month's alerts: at most one budget-exceeded warning
// followed by large-transaction notices ordered by amount descending. When
// the month's income is not positive, neither rule fires and the result is
// empty regardless of expense volume.
func (s *AlertService) Generate(ctx context.Context, userID uuid.UUID, year, month int) ([]models.Alert, error) {
	summary, err := s.insights.MonthlySummary(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	alerts := []models.Alert{}

	income := summary.TotalIncome
	if !income.IsPositive() {
		return alerts, nil
	}

	pct := summary.TotalExpenses.Div(income).Mul(oneHundred)
	if pct.GreaterThanOrEqual(s.budgetPercent) {
		rounded := pct.Round(1)
		alerts = append(alerts, models.Alert{
			Kind:     models.AlertBudgetExceeded,
			Severity: models.SeverityWarning,
			Title:    "Budget alert",
			Message: fmt.Sprintf("Expenses are %s%% of earnings this month (threshold: %s%%).",
				rounded, s.budgetPercent),
			BudgetExceeded: &models.BudgetExceededAlert{
				Percent:          rounded,
				ThresholdPercent: s.budgetPercent,
			},
		})
	}

	// Inclusive threshold: an expense exactly at the boundary triggers.
	thresholdAmount := income.Mul(s.largeTxPercent).Div(oneHundred)
	from, to := monthRange(year, month)
	large, err := s.store.ListLargeExpenses(ctx, userID, from, to, thresholdAmount)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(large))
	for _, tx := range large {
		ids = append(ids, tx.CategoryID)
	}
	names, err := s.categories.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, tx := range large {
		categoryName := unknownCategoryName
		if cat, ok := names[tx.CategoryID]; ok {
			categoryName = cat.Name
		}
		txPct := tx.Amount.Div(income).Mul(oneHundred).Round(1)
		alerts = append(alerts, models.Alert{
			Kind:     models.AlertLargeTransaction,
			Severity: models.SeverityInfo,
			Title:    "Unusual large transaction",
			Message: fmt.Sprintf("Expense of %s (%s%% of monthly income) on %s.",
				tx.Amount.StringFixed(2), txPct, tx.Date.Format(dateLayout)),
			LargeTransaction: &models.LargeTransactionAlert{
				TransactionID:   tx.ID,
				Amount:          tx.Amount,
				PercentOfIncome: txPct,
				Date:            tx.Date,
				Description:     tx.Description,
				CategoryName:    categoryName,
			},
		})
	}

	return alerts, nil
}
