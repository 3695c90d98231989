package models

import (
	"testing"
	"time"
)

func TestEmergencyFundRecalculate(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("half_funded", func(t *testing.T) {
		fund := EmergencyFund{TargetAmount: 12000, CurrentAmount: 6000}
		fund.Recalculate(now)

		if fund.MonthsCovered != 6 {
			t.Errorf("expected 6 months covered, got %d", fund.MonthsCovered)
		}
		if fund.IsGoalMet {
			t.Error("expected goal not met")
		}
		if !fund.LastUpdated.Equal(now) {
			t.Errorf("expected LastUpdated %v, got %v", now, fund.LastUpdated)
		}
	})

	t.Run("goal_met_exactly", func(t *testing.T) {
		fund := EmergencyFund{TargetAmount: 12000, CurrentAmount: 12000}
		fund.Recalculate(now)

		if fund.MonthsCovered != 12 {
			t.Errorf("expected 12 months covered, got %d", fund.MonthsCovered)
		}
		if !fund.IsGoalMet {
			t.Error("expected goal met at exact target")
		}
	})

	t.Run("overfunded", func(t *testing.T) {
		fund := EmergencyFund{TargetAmount: 12000, CurrentAmount: 18000}
		fund.Recalculate(now)

		if fund.MonthsCovered != 18 {
			t.Errorf("expected 18 months covered, got %d", fund.MonthsCovered)
		}
		if !fund.IsGoalMet {
			t.Error("expected goal met when overfunded")
		}
	})

	t.Run("partial_month_floors", func(t *testing.T) {
		fund := EmergencyFund{TargetAmount: 12000, CurrentAmount: 6999}
		fund.Recalculate(now)

		if fund.MonthsCovered != 6 {
			t.Errorf("expected floor to 6 months, got %d", fund.MonthsCovered)
		}
	})

	t.Run("zero_target", func(t *testing.T) {
		fund := EmergencyFund{TargetAmount: 0, CurrentAmount: 5000}
		fund.Recalculate(now)

		if fund.MonthsCovered != 0 {
			t.Errorf("expected 0 months covered for zero target, got %d", fund.MonthsCovered)
		}
		if !fund.IsGoalMet {
			t.Error("expected goal met when current >= zero target")
		}
	})

	t.Run("stale_derived_values_discarded", func(t *testing.T) {
		fund := EmergencyFund{
			TargetAmount:  12000,
			CurrentAmount: 3000,
			MonthsCovered: 99,
			IsGoalMet:     true,
		}
		fund.Recalculate(now)

		if fund.MonthsCovered != 3 {
			t.Errorf("expected recomputed 3 months, got %d", fund.MonthsCovered)
		}
		if fund.IsGoalMet {
			t.Error("expected recomputed goal-met flag to be false")
		}
	})
}
