package services

import (
	"context"
	"testing"
	"time"

	"dhanam/internal/models"
	"dhanam/internal/testutil"
)

func TestGetSnapshot(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	t.Run("aggregates_all_sections", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db)
		user := testutil.CreateTestUser(t, db)

		inMonth := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		lastMonth := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestExpenseOn(t, db, user.ID, models.CategoryFood, 120, inMonth)
		testutil.CreateTestExpenseOn(t, db, user.ID, models.CategoryFood, 80, inMonth)
		testutil.CreateTestExpenseOn(t, db, user.ID, models.CategoryBills, 300, lastMonth)

		testutil.CreateTestInvestment(t, db, user.ID, models.InvestmentFD, 10000)
		testutil.CreateTestInvestment(t, db, user.ID, models.InvestmentFD, 5000)
		testutil.CreateTestInvestment(t, db, user.ID, models.InvestmentSIP, 2000)

		testutil.CreateTestEmergencyFund(t, db, user.ID, 12000, 6000)
		testutil.CreateTestBudgetEntry(t, db, user.ID, models.CategoryFood, 500, "2026-09")

		snapshot, err := svc.GetSnapshot(context.Background(), user.ID, now)
		testutil.AssertNoError(t, err)

		// Only September's expenses count toward the month total.
		if snapshot.TotalExpenses != 200 {
			t.Errorf("expected total expenses 200, got %v", snapshot.TotalExpenses)
		}

		if len(snapshot.Investments) != 2 {
			t.Fatalf("expected 2 investment groups, got %d", len(snapshot.Investments))
		}
		for _, group := range snapshot.Investments {
			switch group.Type {
			case models.InvestmentFD:
				if group.Total != 15000 {
					t.Errorf("expected FD total 15000, got %v", group.Total)
				}
			case models.InvestmentSIP:
				if group.Total != 2000 {
					t.Errorf("expected SIP total 2000, got %v", group.Total)
				}
			default:
				t.Errorf("unexpected investment group %s", group.Type)
			}
		}

		if snapshot.EmergencyFund == nil {
			t.Fatal("expected emergency fund in snapshot")
		}
		if snapshot.EmergencyFund.MonthsCovered != 6 {
			t.Errorf("expected 6 months covered, got %d", snapshot.EmergencyFund.MonthsCovered)
		}

		if len(snapshot.BudgetStatus) != 1 {
			t.Fatalf("expected 1 budget status, got %d", len(snapshot.BudgetStatus))
		}
		if snapshot.BudgetStatus[0].Progress != 40 {
			t.Errorf("expected progress 40, got %v", snapshot.BudgetStatus[0].Progress)
		}

		if !snapshot.AsOf.Equal(now) {
			t.Errorf("expected asOf %v, got %v", now, snapshot.AsOf)
		}
	})

	t.Run("empty_user_gets_empty_snapshot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db)
		user := testutil.CreateTestUser(t, db)

		snapshot, err := svc.GetSnapshot(context.Background(), user.ID, now)
		testutil.AssertNoError(t, err)

		if snapshot.TotalExpenses != 0 {
			t.Errorf("expected zero expenses, got %v", snapshot.TotalExpenses)
		}
		if len(snapshot.Investments) != 0 {
			t.Errorf("expected no investment groups, got %d", len(snapshot.Investments))
		}
		// A missing fund is a valid state, not an error.
		if snapshot.EmergencyFund != nil {
			t.Error("expected nil emergency fund")
		}
		if len(snapshot.BudgetStatus) != 0 {
			t.Errorf("expected no budget statuses, got %d", len(snapshot.BudgetStatus))
		}
	})

	t.Run("scoped_to_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestExpenseOn(t, db, user1.ID, models.CategoryFood, 999,
			time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestInvestment(t, db, user1.ID, models.InvestmentSIP, 5000)
		testutil.CreateTestEmergencyFund(t, db, user1.ID, 12000, 6000)

		snapshot, err := svc.GetSnapshot(context.Background(), user2.ID, now)
		testutil.AssertNoError(t, err)

		if snapshot.TotalExpenses != 0 || len(snapshot.Investments) != 0 || snapshot.EmergencyFund != nil {
			t.Error("expected other user's records excluded from snapshot")
		}
	})

	t.Run("month_boundaries_half_open", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db)
		user := testutil.CreateTestUser(t, db)

		firstInstant := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		nextMonth := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestExpenseOn(t, db, user.ID, models.CategoryFood, 10, firstInstant)
		testutil.CreateTestExpenseOn(t, db, user.ID, models.CategoryFood, 20, nextMonth)

		snapshot, err := svc.GetSnapshot(context.Background(), user.ID, now)
		testutil.AssertNoError(t, err)

		if snapshot.TotalExpenses != 10 {
			t.Errorf("expected only the first-of-month expense counted, got %v", snapshot.TotalExpenses)
		}
	})
}
