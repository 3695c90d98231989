package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"dhanam/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: fmt.Sprintf("testuser%d", nextID()),
		Email:    email,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates an expense in the given category dated now.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID string, category models.ExpenseCategory, amount float64) *models.Expense {
	t.Helper()
	return CreateTestExpenseOn(t, db, userID, category, amount, time.Now().UTC())
}

// CreateTestExpenseOn creates an expense with an explicit date.
func CreateTestExpenseOn(t *testing.T, db *gorm.DB, userID string, category models.ExpenseCategory, amount float64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		Title:    fmt.Sprintf("Test Expense %d", nextID()),
		Amount:   amount,
		Category: category,
		Date:     date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBudgetEntry creates a per-category limit for the given month.
func CreateTestBudgetEntry(t *testing.T, db *gorm.DB, userID string, category models.ExpenseCategory, limit float64, month string) *models.BudgetEntry {
	t.Helper()

	entry := &models.BudgetEntry{
		UserID:   userID,
		Category: category,
		Limit:    limit,
		Month:    month,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test budget entry: %v", err)
	}
	return entry
}

// CreateTestInvestment creates an investment of the given type and amount.
// Tenure defaults to 12 months for types that require it.
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID string, investmentType models.InvestmentType, amount float64) *models.Investment {
	t.Helper()

	inv := &models.Investment{
		UserID:       userID,
		Type:         investmentType,
		Amount:       amount,
		InterestRate: 6.0,
		StartDate:    time.Now().UTC(),
	}
	if investmentType.RequiresTenure() {
		tenure := 12
		inv.Tenure = &tenure
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return inv
}

// CreateTestInsurance creates a policy renewing one year from now.
func CreateTestInsurance(t *testing.T, db *gorm.DB, userID string, insuranceType models.InsuranceType) *models.Insurance {
	t.Helper()

	insurance := &models.Insurance{
		UserID:         userID,
		Type:           insuranceType,
		Provider:       fmt.Sprintf("Test Provider %d", nextID()),
		CoverageAmount: 500000,
		Premium:        1200,
		RenewalDate:    time.Now().UTC().AddDate(1, 0, 0),
	}
	if err := db.Create(insurance).Error; err != nil {
		t.Fatalf("failed to create test insurance: %v", err)
	}
	return insurance
}

// CreateTestEmergencyFund creates an emergency fund with the given amounts.
// Derived fields are recomputed by the model's save hook.
func CreateTestEmergencyFund(t *testing.T, db *gorm.DB, userID string, target, current float64) *models.EmergencyFund {
	t.Helper()

	fund := &models.EmergencyFund{
		UserID:        userID,
		TargetAmount:  target,
		CurrentAmount: current,
	}
	if err := db.Create(fund).Error; err != nil {
		t.Fatalf("failed to create test emergency fund: %v", err)
	}
	return fund
}
