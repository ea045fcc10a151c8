package service

import (
	"context"
	"testing"

	"finledger/internal/models"

	"go.uber.org/zap"
)

func newAlertService(txs *fakeTransactionStore, cats *fakeCategoryStore, budget, largeTx float64) *AlertService {
	insights := newInsightsService(txs, cats)
	return NewAlertService(txs, cats, insights, budget, largeTx, zap.NewNop())
}

func TestAlertsRequirePositiveIncome(t *testing.T) {
	txs, cats, globalCat, _ := newTestStores()
	txSvc := newTransactionService(txs, cats)
	svc := newAlertService(txs, cats, 90, 25)
	ctx := context.Background()

	// Heavy spending with no income at all.
	seedTransaction(t, txSvc, testUser, "5000.00", "expense", globalCat, "2026-03-05")

	alerts, err := svc.Generate(ctx, testUser, 2026, 3)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if alerts == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(alerts) != 0 {
		t.Fatalf("expected no alerts without income, got %d", len(alerts))
	}
}

func TestBudgetAlertBoundary(t *testing.T) {
	cases := []struct {
		name     string
		expenses string
		want     bool
	}{
		{"below threshold", "899.99", false},
		{"exactly at threshold", "900.00", true},
		{"above threshold", "950.00", true},
		{"over income", "1200.00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			txs, cats, globalCat, _ := newTestStores()
			txSvc := newTransactionService(txs, cats)
			svc := newAlertService(txs, cats, 90, 200)
			ctx := context.Background()

			seedTransaction(t, txSvc, testUser, "1000.00", "income", globalCat, "2026-03-01")
			seedTransaction(t, txSvc, testUser, tc.expenses, "expense", globalCat, "2026-03-10")

			alerts, err := svc.Generate(ctx, testUser, 2026, 3)
			if err != nil {
				t.Fatalf("generate failed: %v", err)
			}

			var budget *models.Alert
			for i := range alerts {
				if alerts[i].Kind == models.AlertBudgetExceeded {
					budget = &alerts[i]
				}
			}
			if (budget != nil) != tc.want {
				t.Fatalf("expected budget alert=%v, got %+v", tc.want, alerts)
			}
			if budget != nil {
				if budget.Severity != models.SeverityWarning {
					t.Errorf("expected warning severity, got %s", budget.Severity)
				}
				if budget.BudgetExceeded == nil {
					t.Fatal("expected budget payload")
				}
				if got := budget.BudgetExceeded.ThresholdPercent.String(); got != "90" {
					t.Errorf("expected threshold 90, got %s", got)
				}
			}
		})
	}
}

func TestBudgetAlertMessage(t *testing.T) {
	txs, cats, globalCat, _ := newTestStores()
	txSvc := newTransactionService(txs, cats)
	svc := newAlertService(txs, cats, 90, 200)
	ctx := context.Background()

	seedTransaction(t, txSvc, testUser, "1000.00", "income", globalCat, "2026-03-01")
	seedTransaction(t, txSvc, testUser, "950.00", "expense", globalCat, "2026-03-10")

	alerts, err := svc.Generate(ctx, testUser, 2026, 3)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected single alert, got %d", len(alerts))
	}
	want := "Expenses are 95% of earnings this month (threshold: 90%)."
	if alerts[0].Message != want {
		t.Errorf("expected %q, got %q", want, alerts[0].Message)
	}
}

func TestLargeTransactionAlerts(t *testing.T) {
	txs, cats, globalCat, _ := newTestStores()
	txSvc := newTransactionService(txs, cats)
	svc := newAlertService(txs, cats, 200, 25)
	ctx := context.Background()

	seedTransaction(t, txSvc, testUser, "1000.00", "income", globalCat, "2026-03-01")
	// Threshold is 250.00: one below, one exactly at, one above.
	seedTransaction(t, txSvc, testUser, "249.99", "expense", globalCat, "2026-03-05")
	atBoundary := seedTransaction(t, txSvc, testUser, "250.00", "expense", globalCat, "2026-03-10")
	biggest := seedTransaction(t, txSvc, testUser, "400.00", "expense", globalCat, "2026-03-15")

	alerts, err := svc.Generate(ctx, testUser, 2026, 3)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d: %+v", len(alerts), alerts)
	}

	// Ordered by amount descending.
	first, second := alerts[0], alerts[1]
	if first.Kind != models.AlertLargeTransaction || second.Kind != models.AlertLargeTransaction {
		t.Fatal("expected large-transaction alerts only")
	}
	if first.LargeTransaction.TransactionID != biggest.ID {
		t.Errorf("expected largest expense first, got %s", first.LargeTransaction.TransactionID)
	}
	if second.LargeTransaction.TransactionID != atBoundary.ID {
		t.Errorf("expected boundary expense second, got %s", second.LargeTransaction.TransactionID)
	}

	if first.Severity != models.SeverityInfo {
		t.Errorf("expected info severity, got %s", first.Severity)
	}
	if got := first.LargeTransaction.PercentOfIncome.StringFixed(1); got != "40.0" {
		t.Errorf("expected 40.0 percent of income, got %s", got)
	}
	if first.LargeTransaction.CategoryName != "Food" {
		t.Errorf("expected category name Food, got %s", first.LargeTransaction.CategoryName)
	}
	want := "Expense of 400.00 (40% of monthly income) on 2026-03-15."
	if first.Message != want {
		t.Errorf("expected %q, got %q", want, first.Message)
	}
}

func TestAlertsBudgetPrecedesLargeTransactions(t *testing.T) {
	txs, cats, globalCat, _ := newTestStores()
	txSvc := newTransactionService(txs, cats)
	svc := newAlertService(txs, cats, 90, 25)
	ctx := context.Background()

	seedTransaction(t, txSvc, testUser, "1000.00", "income", globalCat, "2026-03-01")
	seedTransaction(t, txSvc, testUser, "950.00", "expense", globalCat, "2026-03-10")

	alerts, err := svc.Generate(ctx, testUser, 2026, 3)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(alerts))
	}
	if alerts[0].Kind != models.AlertBudgetExceeded {
		t.Errorf("expected budget alert first, got %s", alerts[0].Kind)
	}
	if alerts[1].Kind != models.AlertLargeTransaction {
		t.Errorf("expected large-transaction alert second, got %s", alerts[1].Kind)
	}
}
