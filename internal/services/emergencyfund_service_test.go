package services

import (
	"testing"

	"dhanam/internal/testutil"
)

func ptr(v float64) *float64 { return &v }

func TestGetEmergencyFund(t *testing.T) {
	t.Run("not_found_before_first_write", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEmergencyFundService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetEmergencyFund(user.ID)
		testutil.AssertAppError(t, err, "EMERGENCY_FUND_NOT_FOUND")
	})

	t.Run("returns_fund", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEmergencyFundService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestEmergencyFund(t, db, user.ID, 12000, 6000)

		fund, err := svc.GetEmergencyFund(user.ID)
		testutil.AssertNoError(t, err)

		if fund.TargetAmount != 12000 {
			t.Errorf("expected target 12000, got %v", fund.TargetAmount)
		}
		if fund.MonthsCovered != 6 {
			t.Errorf("expected 6 months covered, got %d", fund.MonthsCovered)
		}
	})
}

func TestUpsertEmergencyFund(t *testing.T) {
	t.Run("first_write_creates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEmergencyFundService(db)
		user := testutil.CreateTestUser(t, db)

		fund, err := svc.UpsertEmergencyFund(user.ID, ptr(12000), ptr(3000))
		testutil.AssertNoError(t, err)

		if fund.ID == "" {
			t.Fatal("expected non-empty fund ID")
		}
		if fund.MonthsCovered != 3 {
			t.Errorf("expected 3 months covered, got %d", fund.MonthsCovered)
		}
		if fund.IsGoalMet {
			t.Error("expected goal not met")
		}
	})

	t.Run("first_write_requires_target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEmergencyFundService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpsertEmergencyFund(user.ID, nil, ptr(3000))
		testutil.AssertAppError(t, err, "TARGET_REQUIRED")
	})

	t.Run("first_write_defaults_current_to_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEmergencyFundService(db)
		user := testutil.CreateTestUser(t, db)

		fund, err := svc.UpsertEmergencyFund(user.ID, ptr(12000), nil)
		testutil.AssertNoError(t, err)

		if fund.CurrentAmount != 0 {
			t.Errorf("expected current amount 0, got %v", fund.CurrentAmount)
		}
	})

	t.Run("later_write_merges_supplied_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEmergencyFundService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestEmergencyFund(t, db, user.ID, 12000, 3000)

		fund, err := svc.UpsertEmergencyFund(user.ID, nil, ptr(12000))
		testutil.AssertNoError(t, err)

		if fund.TargetAmount != 12000 {
			t.Errorf("expected target unchanged at 12000, got %v", fund.TargetAmount)
		}
		if fund.CurrentAmount != 12000 {
			t.Errorf("expected current 12000, got %v", fund.CurrentAmount)
		}
		if !fund.IsGoalMet {
			t.Error("expected goal met after topping up")
		}
		if fund.MonthsCovered != 12 {
			t.Errorf("expected 12 months covered, got %d", fund.MonthsCovered)
		}
	})

	t.Run("explicit_zero_overwrites", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEmergencyFundService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestEmergencyFund(t, db, user.ID, 12000, 6000)

		fund, err := svc.UpsertEmergencyFund(user.ID, nil, ptr(0))
		testutil.AssertNoError(t, err)

		if fund.CurrentAmount != 0 {
			t.Errorf("expected current overwritten to 0, got %v", fund.CurrentAmount)
		}
		if fund.MonthsCovered != 0 {
			t.Errorf("expected 0 months covered, got %d", fund.MonthsCovered)
		}
	})

	t.Run("singleton_per_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEmergencyFundService(db)
		user := testutil.CreateTestUser(t, db)

		first, err := svc.UpsertEmergencyFund(user.ID, ptr(12000), nil)
		testutil.AssertNoError(t, err)
		second, err := svc.UpsertEmergencyFund(user.ID, ptr(24000), nil)
		testutil.AssertNoError(t, err)

		if first.ID != second.ID {
			t.Error("expected repeated writes to touch the same record")
		}
	})

	t.Run("negative_amount_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEmergencyFundService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpsertEmergencyFund(user.ID, ptr(-1), nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
