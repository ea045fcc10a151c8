package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"finledger/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PredefinedCategories are the global categories seeded at startup.
var PredefinedCategories = []string{
	"Food", "Transport", "Salary", "Rent", "Utilities",
	"Entertainment", "Health", "Other",
}

type CategoryService struct {
	store  CategoryStore
	logger *zap.Logger
}

func NewCategoryService(store CategoryStore, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		store:  store,
		logger: logger,
	}
}

// SeedPredefined creates the predefined global categories that do not exist
// yet. Safe to run repeatedly.
func (s *CategoryService) SeedPredefined(ctx context.Context) error {
	for _, name := range PredefinedCategories {
		existing, err := s.store.FindByNameInScope(ctx, nil, name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		cat := &models.Category{
			ID:           uuid.New(),
			UserID:       nil,
			Name:         name,
			IsPredefined: true,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.store.Insert(ctx, cat); err != nil {
			return err
		}
		s.logger.Info("seeded predefined category", zap.String("name", name))
	}
	return nil
}

// ListForUser returns the global categories plus the user's own, ordered by
// name.
func (s *CategoryService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Category, error) {
	return s.store.ListForUser(ctx, userID)
}

// Create adds a user category. A duplicate name within the user's scope,
// compared case-insensitively, is rejected.
func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	existing, err := s.store.FindByNameInScope(ctx, &userID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ValidationError(fmt.Sprintf("A category named '%s' already exists.", name))
	}

	cat := &models.Category{
		ID:           uuid.New(),
		UserID:       &userID,
		Name:         name,
		IsPredefined: false,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Delete removes a category the user owns. Global and predefined categories
// cannot be deleted, and a category still referenced by any transaction,
// soft-deleted ones included, is an explicit rejection rather than a
// storage-level constraint violation.
func (s *CategoryService) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	cat, err := s.store.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if cat == nil || cat.UserID == nil || *cat.UserID != userID {
		return ErrCategoryNotFound
	}

	refs, err := s.store.CountTransactionsReferencing(ctx, categoryID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrCategoryInUse
	}

	deleted, err := s.store.Delete(ctx, userID, categoryID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCategoryNotFound
	}
	return nil
}
