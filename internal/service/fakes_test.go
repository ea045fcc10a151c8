package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"finledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fakeTransactionStore is an in-memory TransactionStore with the same
// ordering and filtering semantics as the SQL repository.
type fakeTransactionStore struct {
	transactions []*models.Transaction
}

func (f *fakeTransactionStore) Insert(_ context.Context, tx *models.Transaction) error {
	cp := *tx
	f.transactions = append(f.transactions, &cp)
	return nil
}

func (f *fakeTransactionStore) Update(_ context.Context, tx *models.Transaction) error {
	for i, existing := range f.transactions {
		if existing.ID == tx.ID && existing.UserID == tx.UserID {
			cp := *tx
			f.transactions[i] = &cp
			return nil
		}
	}
	return nil
}

func (f *fakeTransactionStore) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	for _, tx := range f.transactions {
		if tx.ID == id && tx.UserID == userID && tx.Status == models.StatusActive {
			cp := *tx
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionStore) GetByIDAny(_ context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	for _, tx := range f.transactions {
		if tx.ID == id && tx.UserID == userID {
			cp := *tx
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionStore) MarkDeleted(_ context.Context, userID, id uuid.UUID, at time.Time) (bool, error) {
	for _, tx := range f.transactions {
		if tx.ID == id && tx.UserID == userID && tx.Status == models.StatusActive {
			tx.Status = models.StatusDeleted
			deletedAt := at
			tx.DeletedAt = &deletedAt
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTransactionStore) List(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter, limit, offset int) ([]*models.Transaction, error) {
	matched := f.filtered(userID, filter)
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (f *fakeTransactionStore) Count(_ context.Context, userID uuid.UUID, filter models.TransactionFilter) (int, error) {
	return len(f.filtered(userID, filter)), nil
}

func (f *fakeTransactionStore) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Transaction, error) {
	return f.List(ctx, userID, models.TransactionFilter{}, limit, 0)
}

func (f *fakeTransactionStore) SumAmounts(_ context.Context, userID uuid.UUID, t models.TransactionType, from, to time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, tx := range f.active(userID) {
		if tx.Type == t && inRange(tx.Date, from, to) {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum, nil
}

func (f *fakeTransactionStore) ExpenseTotalsByCategory(_ context.Context, userID uuid.UUID, from, to time.Time) ([]models.CategoryAmount, error) {
	totals := map[uuid.UUID]decimal.Decimal{}
	var order []uuid.UUID
	for _, tx := range f.active(userID) {
		if tx.Type != models.TypeExpense || !inRange(tx.Date, from, to) {
			continue
		}
		if _, ok := totals[tx.CategoryID]; !ok {
			order = append(order, tx.CategoryID)
		}
		totals[tx.CategoryID] = totals[tx.CategoryID].Add(tx.Amount)
	}
	result := make([]models.CategoryAmount, 0, len(order))
	for _, id := range order {
		result = append(result, models.CategoryAmount{CategoryID: id, Total: totals[id]})
	}
	return result, nil
}

func (f *fakeTransactionStore) ListLargeExpenses(_ context.Context, userID uuid.UUID, from, to time.Time, minAmount decimal.Decimal) ([]*models.Transaction, error) {
	var matched []*models.Transaction
	for _, tx := range f.active(userID) {
		if tx.Type == models.TypeExpense && inRange(tx.Date, from, to) && tx.Amount.GreaterThanOrEqual(minAmount) {
			cp := *tx
			matched = append(matched, &cp)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Amount.GreaterThan(matched[j].Amount)
	})
	return matched, nil
}

func (f *fakeTransactionStore) active(userID uuid.UUID) []*models.Transaction {
	var result []*models.Transaction
	for _, tx := range f.transactions {
		if tx.UserID == userID && tx.Status == models.StatusActive {
			result = append(result, tx)
		}
	}
	return result
}

func (f *fakeTransactionStore) filtered(userID uuid.UUID, filter models.TransactionFilter) []*models.Transaction {
	var matched []*models.Transaction
	for _, tx := range f.active(userID) {
		if filter.DateFrom != nil && tx.Date.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && tx.Date.After(*filter.DateTo) {
			continue
		}
		if filter.CategoryID != nil && tx.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Type != nil && tx.Type != *filter.Type {
			continue
		}
		cp := *tx
		matched = append(matched, &cp)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].ID.String() > matched[j].ID.String()
	})
	return matched
}

func inRange(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}

// fakeCategoryStore is an in-memory CategoryStore. refCounts feeds
// CountTransactionsReferencing for delete tests.
type fakeCategoryStore struct {
	categories []*models.Category
	refCounts  map[uuid.UUID]int
}

func (f *fakeCategoryStore) GetByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	for _, cat := range f.categories {
		if cat.ID == id {
			cp := *cat
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Category, error) {
	result := make(map[uuid.UUID]*models.Category, len(ids))
	for _, id := range ids {
		if cat, _ := f.GetByID(ctx, id); cat != nil {
			result[id] = cat
		}
	}
	return result, nil
}

func (f *fakeCategoryStore) ListForUser(_ context.Context, userID uuid.UUID) ([]*models.Category, error) {
	var result []*models.Category
	for _, cat := range f.categories {
		if cat.AvailableTo(userID) {
			cp := *cat
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (f *fakeCategoryStore) FindByNameInScope(_ context.Context, userID *uuid.UUID, name string) (*models.Category, error) {
	for _, cat := range f.categories {
		sameScope := (cat.UserID == nil && userID == nil) ||
			(cat.UserID != nil && userID != nil && *cat.UserID == *userID)
		if sameScope && strings.EqualFold(cat.Name, name) {
			cp := *cat
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) Insert(_ context.Context, cat *models.Category) error {
	cp := *cat
	f.categories = append(f.categories, &cp)
	return nil
}

func (f *fakeCategoryStore) Delete(_ context.Context, userID, id uuid.UUID) (bool, error) {
	for i, cat := range f.categories {
		if cat.ID == id && cat.UserID != nil && *cat.UserID == userID {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryStore) CountTransactionsReferencing(_ context.Context, id uuid.UUID) (int, error) {
	return f.refCounts[id], nil
}

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	users []*models.User
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	cp := *user
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
