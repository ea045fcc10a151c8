package service

import (
	"context"
	"time"

	"finledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStore is the ledger's persistence contract for transactions.
// Lookup methods return (nil, nil) when no matching record exists; errors are
// reserved for store failures. All read methods except GetByIDAny exclude
// soft-deleted records.
type TransactionStore interface {
	Insert(ctx context.Context, tx *models.Transaction) error
	Update(ctx context.Context, tx *models.Transaction) error

	// GetByID resolves an active transaction scoped to its owner.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error)
	// GetByIDAny resolves a transaction regardless of deletion status
	// (direct audit lookup).
	GetByIDAny(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error)

	// MarkDeleted sets the deletion timestamp on an active owner-scoped
	// transaction. It reports false when no such record exists, which
	// covers both unknown ids and already-deleted records.
	MarkDeleted(ctx context.Context, userID, id uuid.UUID, at time.Time) (bool, error)

	// List returns a page ordered by transaction date descending, then id
	// descending. Count returns the filtered total before paging.
	List(ctx context.Context, userID uuid.UUID, f models.TransactionFilter, limit, offset int) ([]*models.Transaction, error)
	Count(ctx context.Context, userID uuid.UUID, f models.TransactionFilter) (int, error)

	// Recent returns the newest transactions, same ordering as List.
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Transaction, error)

	// SumAmounts totals amounts of the given type within the inclusive
	// date range; no matching rows sum to zero.
	SumAmounts(ctx context.Context, userID uuid.UUID, t models.TransactionType, from, to time.Time) (decimal.Decimal, error)

	// ExpenseTotalsByCategory groups expense amounts by category within
	// the inclusive date range.
	ExpenseTotalsByCategory(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.CategoryAmount, error)

	// ListLargeExpenses returns expenses with amount >= minAmount within
	// the inclusive date range, ordered by amount descending.
	ListLargeExpenses(ctx context.Context, userID uuid.UUID, from, to time.Time, minAmount decimal.Decimal) ([]*models.Transaction, error)
}

// CategoryStore is the persistence contract for categories. Lookup methods
// return (nil, nil) when no matching record exists.
type CategoryStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	// GetByIDs batches a lookup, keyed by category id. Ids with no record
	// are simply absent from the result.
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Category, error)
	// ListForUser returns global categories plus the user's own, ordered
	// by name.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Category, error)
	// FindByNameInScope matches name case-insensitively within one owner
	// scope; a nil userID addresses the global scope.
	FindByNameInScope(ctx context.Context, userID *uuid.UUID, name string) (*models.Category, error)
	Insert(ctx context.Context, cat *models.Category) error
	// Delete removes a user-owned category, reporting false when the
	// category does not exist in the user's scope.
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
	// CountTransactionsReferencing counts all transactions, including
	// soft-deleted ones, that reference the category.
	CountTransactionsReferencing(ctx context.Context, id uuid.UUID) (int, error)
}

// UserStore is the persistence contract for users. Lookup methods return
// (nil, nil) when no matching record exists.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
