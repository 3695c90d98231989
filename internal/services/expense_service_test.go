package services

import (
	"testing"
	"time"

	"dhanam/internal/models"
	"dhanam/internal/pagination"
	"dhanam/internal/testutil"
)

func TestCreateExpense(t *testing.T) {
	t.Run("creates_expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		expense, err := svc.CreateExpense(user.ID, "Groceries", 120.50, models.CategoryFood, nil, "weekly shop")
		testutil.AssertNoError(t, err)

		if expense.ID == "" {
			t.Fatal("expected non-empty expense ID")
		}
		if expense.Amount != 120.50 {
			t.Errorf("expected amount 120.50, got %v", expense.Amount)
		}
		if expense.Date.IsZero() {
			t.Error("expected date to default to creation time")
		}
	})

	t.Run("explicit_date_kept", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		expense, err := svc.CreateExpense(user.ID, "Train ticket", 40, models.CategoryTransport, &date, "")
		testutil.AssertNoError(t, err)

		if !expense.Date.Equal(date) {
			t.Errorf("expected date %v, got %v", date, expense.Date)
		}
	})

	t.Run("empty_title", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateExpense(user.ID, "", 10, models.CategoryFood, nil, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateExpense(user.ID, "Refund?", -5, models.CategoryFood, nil, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateExpense(user.ID, "Mystery", 10, models.ExpenseCategory("Gadgets"), nil, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserExpenses(t *testing.T) {
	t.Run("newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		older := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
		newer := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestExpenseOn(t, db, user.ID, models.CategoryFood, 10, older)
		testutil.CreateTestExpenseOn(t, db, user.ID, models.CategoryFood, 20, newer)

		result, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Fatalf("expected 2 expenses, got %d", result.TotalItems)
		}
		if result.Data[0].Amount != 20 {
			t.Errorf("expected newest expense first, got amount %v", result.Data[0].Amount)
		}
	})

	t.Run("scoped_to_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		testutil.CreateTestExpense(t, db, user1.ID, models.CategoryFood, 10)

		result, err := svc.GetUserExpenses(user2.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 0 {
			t.Errorf("expected no expenses for other user, got %d", result.TotalItems)
		}
	})

	t.Run("paginates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		for i := 0; i < 5; i++ {
			testutil.CreateTestExpense(t, db, user.ID, models.CategoryOther, float64(i+1))
		}

		result, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{Page: 2, PageSize: 2})
		testutil.AssertNoError(t, err)

		if len(result.Data) != 2 {
			t.Errorf("expected 2 items on page 2, got %d", len(result.Data))
		}
		if result.TotalItems != 5 {
			t.Errorf("expected total 5, got %d", result.TotalItems)
		}
		if result.TotalPages != 3 {
			t.Errorf("expected 3 pages, got %d", result.TotalPages)
		}
	})
}

func TestUpdateExpense(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)
		expense := testutil.CreateTestExpense(t, db, user.ID, models.CategoryFood, 100)

		amount := 150.0
		updated, err := svc.UpdateExpense(user.ID, expense.ID, ExpenseUpdate{Amount: &amount})
		testutil.AssertNoError(t, err)

		if updated.Amount != 150 {
			t.Errorf("expected amount 150, got %v", updated.Amount)
		}
		if updated.Category != models.CategoryFood {
			t.Errorf("expected category unchanged, got %s", updated.Category)
		}
	})

	t.Run("explicit_zero_overwrites", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)
		expense := testutil.CreateTestExpense(t, db, user.ID, models.CategoryFood, 100)

		zero := 0.0
		updated, err := svc.UpdateExpense(user.ID, expense.ID, ExpenseUpdate{Amount: &zero})
		testutil.AssertNoError(t, err)

		if updated.Amount != 0 {
			t.Errorf("expected amount overwritten to 0, got %v", updated.Amount)
		}
	})

	t.Run("empty_title_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)
		expense := testutil.CreateTestExpense(t, db, user.ID, models.CategoryFood, 100)

		empty := ""
		_, err := svc.UpdateExpense(user.ID, expense.ID, ExpenseUpdate{Title: &empty})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		amount := 10.0
		_, err := svc.UpdateExpense(user.ID, "missing-id", ExpenseUpdate{Amount: &amount})
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})

	t.Run("wrong_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		expense := testutil.CreateTestExpense(t, db, user1.ID, models.CategoryFood, 100)

		amount := 10.0
		_, err := svc.UpdateExpense(user2.ID, expense.ID, ExpenseUpdate{Amount: &amount})
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

func TestDeleteExpense(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)
		expense := testutil.CreateTestExpense(t, db, user.ID, models.CategoryFood, 100)

		testutil.AssertNoError(t, svc.DeleteExpense(user.ID, expense.ID))

		_, err := svc.GetExpenseByID(user.ID, expense.ID)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})

	t.Run("wrong_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		expense := testutil.CreateTestExpense(t, db, user1.ID, models.CategoryFood, 100)

		err := svc.DeleteExpense(user2.ID, expense.ID)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}
