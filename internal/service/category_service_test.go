package service

import (
	"context"
	"errors"
	"testing"

	"finledger/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newCategoryService(cats *fakeCategoryStore) *CategoryService {
	return NewCategoryService(cats, zap.NewNop())
}

func TestCategorySeedPredefined(t *testing.T) {
	cats := &fakeCategoryStore{refCounts: map[uuid.UUID]int{}}
	svc := newCategoryService(cats)
	ctx := context.Background()

	if err := svc.SeedPredefined(ctx); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if len(cats.categories) != len(PredefinedCategories) {
		t.Fatalf("expected %d categories, got %d", len(PredefinedCategories), len(cats.categories))
	}
	for _, cat := range cats.categories {
		if !cat.IsPredefined || cat.UserID != nil {
			t.Errorf("expected global predefined category, got %+v", cat)
		}
	}

	// Running again must not duplicate anything.
	if err := svc.SeedPredefined(ctx); err != nil {
		t.Fatalf("repeat seed failed: %v", err)
	}
	if len(cats.categories) != len(PredefinedCategories) {
		t.Fatalf("expected seeding to be idempotent, got %d categories", len(cats.categories))
	}
}

func TestCategoryCreate(t *testing.T) {
	cats := &fakeCategoryStore{refCounts: map[uuid.UUID]int{}}
	svc := newCategoryService(cats)
	ctx := context.Background()

	cat, err := svc.Create(ctx, testUser, "  Subscriptions  ")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cat.Name != "Subscriptions" {
		t.Errorf("expected trimmed name, got %q", cat.Name)
	}
	if cat.UserID == nil || *cat.UserID != testUser {
		t.Error("expected category scoped to the user")
	}
	if cat.IsPredefined {
		t.Error("expected user category not predefined")
	}

	t.Run("blank name", func(t *testing.T) {
		_, err := svc.Create(ctx, testUser, "   ")
		if !errors.Is(err, ErrCategoryNameRequired) {
			t.Fatalf("expected name error, got %v", err)
		}
	})

	t.Run("duplicate is case-insensitive", func(t *testing.T) {
		_, err := svc.Create(ctx, testUser, "subscriptions")
		var verr ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		want := "A category named 'subscriptions' already exists."
		if verr.Error() != want {
			t.Errorf("expected %q, got %q", want, verr.Error())
		}
	})

	t.Run("same name in another scope is fine", func(t *testing.T) {
		if _, err := svc.Create(ctx, otherUser, "Subscriptions"); err != nil {
			t.Fatalf("expected cross-user create to succeed, got %v", err)
		}
	})
}

func TestCategoryDelete(t *testing.T) {
	cats := &fakeCategoryStore{refCounts: map[uuid.UUID]int{}}
	svc := newCategoryService(cats)
	ctx := context.Background()

	if err := svc.SeedPredefined(ctx); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	owned, err := svc.Create(ctx, testUser, "Subscriptions")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	foreign, err := svc.Create(ctx, otherUser, "Hobby")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	t.Run("unknown id", func(t *testing.T) {
		if err := svc.Delete(ctx, testUser, uuid.New()); !errors.Is(err, ErrCategoryNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("global category is untouchable", func(t *testing.T) {
		var global *models.Category
		for _, c := range cats.categories {
			if c.UserID == nil {
				global = c
				break
			}
		}
		if err := svc.Delete(ctx, testUser, global.ID); !errors.Is(err, ErrCategoryNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("other user's category looks absent", func(t *testing.T) {
		if err := svc.Delete(ctx, testUser, foreign.ID); !errors.Is(err, ErrCategoryNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("referenced category is rejected", func(t *testing.T) {
		cats.refCounts[owned.ID] = 2
		if err := svc.Delete(ctx, testUser, owned.ID); !errors.Is(err, ErrCategoryInUse) {
			t.Fatalf("expected in-use error, got %v", err)
		}
	})

	t.Run("unreferenced category deletes", func(t *testing.T) {
		cats.refCounts[owned.ID] = 0
		if err := svc.Delete(ctx, testUser, owned.ID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		got, err := cats.GetByID(ctx, owned.ID)
		if err != nil {
			t.Fatalf("lookup failed: %v", err)
		}
		if got != nil {
			t.Error("expected category removed from store")
		}
	})
}
