package service

import (
	"context"
	"strings"
	"time"

	"finledger/internal/models"
	"finledger/pkg/cache"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TransactionInput carries raw form values for create and update. All fields
// are strings; validation and parsing happen here, not at the boundary.
type TransactionInput struct {
	Amount      string
	Type        string
	CategoryID  string
	Description string
	Date        string
}

// ListFilter carries raw listing parameters. Unparsable dates, unknown type
// values and malformed category ids degrade to "no filter applied"; the list
// path has no error conditions of its own.
type ListFilter struct {
	DateFrom   string
	DateTo     string
	CategoryID string
	Type       string
	Page       int
	PerPage    int
}

// ListResult is one page of a user's active transactions plus the filtered
// total. TotalPages is never below 1, even for an empty result.
type ListResult struct {
	Items      []*models.Transaction
	Total      int
	TotalPages int
	Page       int
	PerPage    int
}

type TransactionService struct {
	store           TransactionStore
	categories      CategoryStore
	cache           *cache.Cache
	defaultPageSize int
	logger          *zap.Logger
}

func NewTransactionService(store TransactionStore, categories CategoryStore, c *cache.Cache, defaultPageSize int, logger *zap.Logger) *TransactionService {
	if defaultPageSize <= 0 {
		defaultPageSize = 20
	}
	return &TransactionService{
		store:           store,
		categories:      categories,
		cache:           c,
		defaultPageSize: defaultPageSize,
		logger:          logger,
	}
}

// Create validates the input and persists a new transaction for the user.
// Rejections come back as ValidationError values with user-facing text.
func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, in TransactionInput) (*models.Transaction, error) {
	amount, ok := parseAmount(in.Amount)
	if !ok {
		return nil, ErrInvalidAmount
	}

	txType := models.TypeExpense
	if in.Type != "" {
		t, ok := models.ParseTransactionType(in.Type)
		if !ok {
			return nil, ErrInvalidType
		}
		txType = t
	}

	categoryID, err := uuid.Parse(strings.TrimSpace(in.CategoryID))
	if err != nil {
		return nil, ErrCategoryRequired
	}

	date, ok := parseDate(in.Date)
	if !ok {
		return nil, ErrDateRequired
	}

	if err := s.checkCategory(ctx, userID, categoryID); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Type:        txType,
		CategoryID:  categoryID,
		Description: strings.TrimSpace(in.Description),
		Date:        date,
		Status:      models.StatusActive,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, tx); err != nil {
		return nil, err
	}

	s.invalidateSummary(ctx, userID, tx.Date)
	return tx, nil
}

// Update replaces all mutable fields of an existing transaction. Amount and
// date are always required; an absent or unparsable type or category falls
// back to the record's current value.
func (s *TransactionService) Update(ctx context.Context, userID, transactionID uuid.UUID, in TransactionInput) (*models.Transaction, error) {
	tx, err := s.store.GetByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}

	amount, ok := parseAmount(in.Amount)
	if !ok {
		return nil, ErrInvalidAmount
	}

	txType := tx.Type
	if t, ok := models.ParseTransactionType(in.Type); ok {
		txType = t
	}

	categoryID := tx.CategoryID
	if id, err := uuid.Parse(strings.TrimSpace(in.CategoryID)); err == nil {
		categoryID = id
	}

	date, ok := parseDate(in.Date)
	if !ok {
		return nil, ErrDateRequired
	}

	if err := s.checkCategory(ctx, userID, categoryID); err != nil {
		return nil, err
	}

	prevDate := tx.Date

	tx.Amount = amount
	tx.Type = txType
	tx.CategoryID = categoryID
	tx.Description = strings.TrimSpace(in.Description)
	tx.Date = date

	if err := s.store.Update(ctx, tx); err != nil {
		return nil, err
	}

	s.invalidateSummary(ctx, userID, prevDate)
	s.invalidateSummary(ctx, userID, tx.Date)
	return tx, nil
}

// SoftDelete marks the transaction deleted. It reports false uniformly for
// unknown, cross-user and already-deleted ids.
func (s *TransactionService) SoftDelete(ctx context.Context, userID, transactionID uuid.UUID) (bool, error) {
	tx, err := s.store.GetByID(ctx, userID, transactionID)
	if err != nil {
		return false, err
	}
	if tx == nil {
		return false, nil
	}

	deleted, err := s.store.MarkDeleted(ctx, userID, transactionID, time.Now().UTC())
	if err != nil {
		return false, err
	}
	if deleted {
		s.invalidateSummary(ctx, userID, tx.Date)
	}
	return deleted, nil
}

// Get resolves a transaction by id for its owner, including soft-deleted
// records. Returns ErrTransactionNotFound for unknown or cross-user ids.
func (s *TransactionService) Get(ctx context.Context, userID, transactionID uuid.UUID) (*models.Transaction, error) {
	tx, err := s.store.GetByIDAny(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}
	return tx, nil
}

// List returns a filtered, paginated page of the user's active transactions,
// newest first.
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, f ListFilter) (*ListResult, error) {
	filter := s.buildFilter(f)

	page := f.Page
	if page < 1 {
		page = 1
	}
	perPage := f.PerPage
	if perPage <= 0 {
		perPage = s.defaultPageSize
	}

	total, err := s.store.Count(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	items, err := s.store.List(ctx, userID, filter, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	return &ListResult{
		Items:      items,
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

// Recent returns the user's newest active transactions. A non-positive limit
// defaults to 10.
func (s *TransactionService) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.store.Recent(ctx, userID, limit)
}

func (s *TransactionService) buildFilter(f ListFilter) models.TransactionFilter {
	var filter models.TransactionFilter
	if d, ok := parseDate(f.DateFrom); ok {
		filter.DateFrom = &d
	}
	if d, ok := parseDate(f.DateTo); ok {
		filter.DateTo = &d
	}
	if id, err := uuid.Parse(strings.TrimSpace(f.CategoryID)); err == nil {
		filter.CategoryID = &id
	}
	if t, ok := models.ParseTransactionType(f.Type); ok {
		filter.Type = &t
	}
	return filter
}

// checkCategory enforces that the category exists and is global or owned by
// the user.
func (s *TransactionService) checkCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	cat, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if cat == nil || !cat.AvailableTo(userID) {
		return ErrInvalidCategory
	}
	return nil
}

func (s *TransactionService) invalidateSummary(ctx context.Context, userID uuid.UUID, date time.Time) {
	s.cache.Delete(ctx, summaryCacheKey(userID, date.Year(), int(date.Month())))
}

// parseAmount parses a monetary amount, rounding to two decimal places.
// Anything that does not end up strictly positive is rejected.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	d = d.Round(2)
	if !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}
