package service

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"finledger/internal/models"
	"finledger/pkg/cache"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Category ids that no longer resolve to a record are reported under this
// name instead of failing the breakdown.
const unknownCategoryName = "Unknown"

const summaryCacheTTL = 60 * time.Second

var oneHundred = decimal.NewFromInt(100)

// InsightsService computes period summaries and category breakdowns from
// stored state. All methods are pure reads and safe to call concurrently.
type InsightsService struct {
	store      TransactionStore
	categories CategoryStore
	cache      *cache.Cache
	logger     *zap.Logger
}

func NewInsightsService(store TransactionStore, categories CategoryStore, c *cache.Cache, logger *zap.Logger) *InsightsService {
	return &InsightsService{
		store:      store,
		categories: categories,
		cache:      c,
		logger:     logger,
	}
}

// MonthlySummary resolves the month's first and last calendar day and
// delegates to RangeSummary. Results are cached briefly per user and month;
// mutations invalidate the affected month.
func (s *InsightsService) MonthlySummary(ctx context.Context, userID uuid.UUID, year, month int) (*models.Summary, error) {
	key := summaryCacheKey(userID, year, month)
	if data, ok := s.cache.Get(ctx, key); ok {
		var summary models.Summary
		if err := json.Unmarshal(data, &summary); err == nil {
			return &summary, nil
		}
	}

	from, to := monthRange(year, month)
	summary, err := s.RangeSummary(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(summary); err == nil {
		s.cache.Set(ctx, key, data, summaryCacheTTL)
	}
	return summary, nil
}

// RangeSummary totals income and expenses over the inclusive date range.
// The savings rate is net savings as a percentage of income, rounded to one
// decimal place, and exactly zero when income is not positive.
func (s *InsightsService) RangeSummary(ctx context.Context, userID uuid.UUID, from, to time.Time) (*models.Summary, error) {
	income, err := s.store.SumAmounts(ctx, userID, models.TypeIncome, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.SumAmounts(ctx, userID, models.TypeExpense, from, to)
	if err != nil {
		return nil, err
	}

	net := income.Sub(expenses)
	rate := decimal.Zero
	if income.IsPositive() {
		rate = net.Div(income).Mul(oneHundred).Round(1)
	}

	return &models.Summary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetSavings:    net,
		SavingsRate:   rate,
	}, nil
}

// CategoryBreakdown groups the range's expenses by category with each
// category's share of total spending. Ordered by total descending, then
// category name ascending, then id.
func (s *InsightsService) CategoryBreakdown(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.CategoryBreakdownEntry, error) {
	rows, err := s.store.ExpenseTotalsByCategory(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	grandTotal := decimal.Zero
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		grandTotal = grandTotal.Add(row.Total)
		ids = append(ids, row.CategoryID)
	}

	names, err := s.categories.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]models.CategoryBreakdownEntry, 0, len(rows))
	for _, row := range rows {
		name := unknownCategoryName
		if cat, ok := names[row.CategoryID]; ok {
			name = cat.Name
		}
		percent := decimal.Zero
		if grandTotal.IsPositive() {
			percent = row.Total.Div(grandTotal).Mul(oneHundred).Round(1)
		}
		entries = append(entries, models.CategoryBreakdownEntry{
			CategoryID:   row.CategoryID,
			CategoryName: name,
			Total:        row.Total,
			Percent:      percent,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Total.Equal(entries[j].Total) {
			return entries[i].Total.GreaterThan(entries[j].Total)
		}
		ni, nj := strings.ToLower(entries[i].CategoryName), strings.ToLower(entries[j].CategoryName)
		if ni != nj {
			return ni < nj
		}
		return entries[i].CategoryID.String() < entries[j].CategoryID.String()
	})

	return entries, nil
}
