package metrics

import (
	"testing"

	"dhanam/internal/testutil"
)

func TestTotalReturn(t *testing.T) {
	t.Run("fixed_deposit_example", func(t *testing.T) {
		// 10000 at 6% compounded over 12 months.
		got, err := TotalReturn(10000, 6, 12)
		testutil.AssertNoError(t, err)
		if got != 10121.96 {
			t.Errorf("expected return 10121.96, got %v", got)
		}
	})

	t.Run("zero_tenure_yields_zero", func(t *testing.T) {
		got, err := TotalReturn(10000, 6, 0)
		testutil.AssertNoError(t, err)
		if got != 0 {
			t.Errorf("expected zero return for zero tenure, got %v", got)
		}
	})

	t.Run("zero_rate_yields_zero", func(t *testing.T) {
		got, err := TotalReturn(10000, 0, 12)
		testutil.AssertNoError(t, err)
		if got != 0 {
			t.Errorf("expected zero return for zero rate, got %v", got)
		}
	})

	t.Run("zero_principal_yields_zero", func(t *testing.T) {
		got, err := TotalReturn(0, 6, 12)
		testutil.AssertNoError(t, err)
		if got != 0 {
			t.Errorf("expected zero return for zero principal, got %v", got)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first, err := TotalReturn(2500.55, 7.25, 18)
		testutil.AssertNoError(t, err)
		second, err := TotalReturn(2500.55, 7.25, 18)
		testutil.AssertNoError(t, err)
		if first != second {
			t.Errorf("expected identical results, got %v and %v", first, second)
		}
	})

	t.Run("monotonic_in_tenure", func(t *testing.T) {
		prev := -1.0
		for _, tenure := range []int{1, 6, 12, 24, 60} {
			got, err := TotalReturn(10000, 6, tenure)
			testutil.AssertNoError(t, err)
			if got <= prev {
				t.Fatalf("expected return to grow with tenure, got %v after %v", got, prev)
			}
			prev = got
		}
	})

	t.Run("monotonic_in_rate", func(t *testing.T) {
		prev := -1.0
		for _, rate := range []float64{0.5, 2, 6, 12, 50} {
			got, err := TotalReturn(10000, rate, 12)
			testutil.AssertNoError(t, err)
			if got <= prev {
				t.Fatalf("expected return to grow with rate, got %v after %v", got, prev)
			}
			prev = got
		}
	})

	t.Run("negative_principal", func(t *testing.T) {
		_, err := TotalReturn(-1, 6, 12)
		testutil.AssertAppError(t, err, "COMPUTATION_ERROR")
	})

	t.Run("negative_rate", func(t *testing.T) {
		_, err := TotalReturn(10000, -0.5, 12)
		testutil.AssertAppError(t, err, "COMPUTATION_ERROR")
	})

	t.Run("rate_above_hundred", func(t *testing.T) {
		_, err := TotalReturn(10000, 100.01, 12)
		testutil.AssertAppError(t, err, "COMPUTATION_ERROR")
	})

	t.Run("negative_tenure", func(t *testing.T) {
		_, err := TotalReturn(10000, 6, -1)
		testutil.AssertAppError(t, err, "COMPUTATION_ERROR")
	})
}

func TestProjectedReturn(t *testing.T) {
	t.Run("nil_tenure_yields_zero", func(t *testing.T) {
		got, err := ProjectedReturn(10000, 6, nil)
		testutil.AssertNoError(t, err)
		if got != 0 {
			t.Errorf("expected zero return for open-ended instrument, got %v", got)
		}
	})

	t.Run("matches_total_return", func(t *testing.T) {
		tenure := 12
		got, err := ProjectedReturn(10000, 6, &tenure)
		testutil.AssertNoError(t, err)
		want, err := TotalReturn(10000, 6, 12)
		testutil.AssertNoError(t, err)
		if got != want {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}
