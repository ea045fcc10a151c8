package repository

import (
	"context"
	"errors"
	"time"

	"finledger/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var transactionColumns = []string{
	"id", "user_id", "amount", "type", "category_id",
	"description", "transaction_date", "status", "created_at", "deleted_at",
}

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) Insert(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns(transactionColumns...).
		Values(tx.ID, tx.UserID, tx.Amount, tx.Type, tx.CategoryID,
			tx.Description, tx.Date, tx.Status, tx.CreatedAt, tx.DeletedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Update("transactions").
		Set("amount", tx.Amount).
		Set("type", tx.Type).
		Set("category_id", tx.CategoryID).
		Set("description", tx.Description).
		Set("transaction_date", tx.Date).
		Where(squirrel.Eq{"id": tx.ID, "user_id": tx.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id, "user_id": userID, "status": models.StatusActive})
}

func (r *TransactionRepository) GetByIDAny(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id, "user_id": userID})
}

func (r *TransactionRepository) getOne(ctx context.Context, pred squirrel.Eq) (*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(pred).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var tx models.Transaction
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&tx.ID, &tx.UserID, &tx.Amount, &tx.Type, &tx.CategoryID,
		&tx.Description, &tx.Date, &tx.Status, &tx.CreatedAt, &tx.DeletedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepository) MarkDeleted(ctx context.Context, userID, id uuid.UUID, at time.Time) (bool, error) {
	query := squirrel.Update("transactions").
		Set("status", models.StatusDeleted).
		Set("deleted_at", at).
		Where(squirrel.Eq{"id": id, "user_id": userID, "status": models.StatusActive}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TransactionRepository) List(ctx context.Context, userID uuid.UUID, f models.TransactionFilter, limit, offset int) ([]*models.Transaction, error) {
	query := applyFilter(r.activeFor(userID, transactionColumns...), f).
		OrderBy("transaction_date DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.queryMany(ctx, query)
}

func (r *TransactionRepository) Count(ctx context.Context, userID uuid.UUID, f models.TransactionFilter) (int, error) {
	query := applyFilter(r.activeFor(userID, "COUNT(*)"), f)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var total int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *TransactionRepository) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Transaction, error) {
	query := r.activeFor(userID, transactionColumns...).
		OrderBy("transaction_date DESC", "id DESC").
		Limit(uint64(limit))

	return r.queryMany(ctx, query)
}

func (r *TransactionRepository) SumAmounts(ctx context.Context, userID uuid.UUID, t models.TransactionType, from, to time.Time) (decimal.Decimal, error) {
	query := r.activeFor(userID, "COALESCE(SUM(amount), 0)").
		Where(squirrel.Eq{"type": t}).
		Where(squirrel.GtOrEq{"transaction_date": from}).
		Where(squirrel.LtOrEq{"transaction_date": to})

	sql, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&sum); err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *TransactionRepository) ExpenseTotalsByCategory(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.CategoryAmount, error) {
	query := r.activeFor(userID, "category_id", "SUM(amount) AS total").
		Where(squirrel.Eq{"type": models.TypeExpense}).
		Where(squirrel.GtOrEq{"transaction_date": from}).
		Where(squirrel.LtOrEq{"transaction_date": to}).
		GroupBy("category_id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.CategoryAmount
	for rows.Next() {
		var ca models.CategoryAmount
		if err := rows.Scan(&ca.CategoryID, &ca.Total); err != nil {
			return nil, err
		}
		totals = append(totals, ca)
	}
	return totals, rows.Err()
}

func (r *TransactionRepository) ListLargeExpenses(ctx context.Context, userID uuid.UUID, from, to time.Time, minAmount decimal.Decimal) ([]*models.Transaction, error) {
	query := r.activeFor(userID, transactionColumns...).
		Where(squirrel.Eq{"type": models.TypeExpense}).
		Where(squirrel.GtOrEq{"transaction_date": from}).
		Where(squirrel.LtOrEq{"transaction_date": to}).
		Where(squirrel.GtOrEq{"amount": minAmount}).
		OrderBy("amount DESC")

	return r.queryMany(ctx, query)
}

// activeFor starts a SELECT over the user's non-deleted transactions.
func (r *TransactionRepository) activeFor(userID uuid.UUID, columns ...string) squirrel.SelectBuilder {
	return squirrel.Select(columns...).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID, "status": models.StatusActive}).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *TransactionRepository) queryMany(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Transaction, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Amount, &tx.Type, &tx.CategoryID,
			&tx.Description, &tx.Date, &tx.Status, &tx.CreatedAt, &tx.DeletedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}
	return transactions, rows.Err()
}

func applyFilter(query squirrel.SelectBuilder, f models.TransactionFilter) squirrel.SelectBuilder {
	if f.DateFrom != nil {
		query = query.Where(squirrel.GtOrEq{"transaction_date": *f.DateFrom})
	}
	if f.DateTo != nil {
		query = query.Where(squirrel.LtOrEq{"transaction_date": *f.DateTo})
	}
	if f.CategoryID != nil {
		query = query.Where(squirrel.Eq{"category_id": *f.CategoryID})
	}
	if f.Type != nil {
		query = query.Where(squirrel.Eq{"type": *f.Type})
	}
	return query
}
