package services

import (
	"context"
	"time"

	"dhanam/internal/metrics"
	"dhanam/internal/models"
	"dhanam/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// ExpenseUpdate holds the fields of a partial expense update. A nil
// field means "not provided"; a non-nil zero value is a deliberate
// overwrite.
type ExpenseUpdate struct {
	Title       *string
	Amount      *float64
	Category    *models.ExpenseCategory
	Date        *time.Time
	Description *string
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID, title string, amount float64, category models.ExpenseCategory, date *time.Time, description string) (*models.Expense, error)
	GetUserExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	UpdateExpense(userID, expenseID string, update ExpenseUpdate) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error
}

// InvestmentInput holds the fields for creating an investment.
type InvestmentInput struct {
	Type         models.InvestmentType
	Amount       float64
	Tenure       *int
	InterestRate float64
	StartDate    *time.Time
	FundType     string
}

// InvestmentUpdate holds the fields of a partial investment update.
type InvestmentUpdate struct {
	Type         *models.InvestmentType
	Amount       *float64
	Tenure       *int
	InterestRate *float64
	FundType     *string
}

// InvestmentServicer defines the contract for investment-related business logic.
type InvestmentServicer interface {
	CreateInvestment(userID string, input InvestmentInput) (*models.Investment, error)
	GetUserInvestments(userID string) ([]models.Investment, error)
	GetInvestmentByID(userID, investmentID string) (*models.Investment, error)
	UpdateInvestment(userID, investmentID string, update InvestmentUpdate) (*models.Investment, error)
	DeleteInvestment(userID, investmentID string) error
}

// InsuranceUpdate holds the fields of a partial insurance policy update.
type InsuranceUpdate struct {
	Type           *models.InsuranceType
	Provider       *string
	CoverageAmount *float64
	Premium        *float64
	RenewalDate    *time.Time
}

// InsuranceServicer defines the contract for insurance-related business logic.
type InsuranceServicer interface {
	CreateInsurance(userID string, insuranceType models.InsuranceType, provider string, coverageAmount, premium float64, renewalDate time.Time) (*models.Insurance, error)
	GetUserInsurances(userID string) ([]models.Insurance, error)
	GetInsuranceByID(userID, insuranceID string) (*models.Insurance, error)
	UpdateInsurance(userID, insuranceID string, update InsuranceUpdate) (*models.Insurance, error)
	DeleteInsurance(userID, insuranceID string) error
}

// EmergencyFundServicer defines the contract for the singleton
// emergency fund. Upsert creates the fund lazily on first write and
// merges supplied fields on later writes; an explicit zero is a valid
// overwrite.
type EmergencyFundServicer interface {
	GetEmergencyFund(userID string) (*models.EmergencyFund, error)
	UpsertEmergencyFund(userID string, targetAmount, currentAmount *float64) (*models.EmergencyFund, error)
}

// BudgetServicer defines the contract for the income baseline, the
// per-category monthly budget entries, and their reconciliation against
// actual spend.
type BudgetServicer interface {
	GetIncome(userID string) (float64, error)
	SetIncome(userID string, income float64) (float64, error)
	CreateBudgetEntry(userID string, category models.ExpenseCategory, limit float64, month string) (*models.BudgetEntry, error)
	GetBudgetEntries(userID string, month *string) ([]models.BudgetEntry, error)
	DeleteBudgetEntry(userID, entryID string) error
	GetBudgetStatus(userID, month string) ([]metrics.BudgetStatus, error)
}

// InvestmentSummary is the per-type amount total in a dashboard snapshot.
type InvestmentSummary struct {
	Type  models.InvestmentType `json:"type"`
	Total float64               `json:"total"`
}

// DashboardSnapshot is the consolidated financial state of one user,
// read at a single logical instant. EmergencyFund is null when the user
// has not created one yet.
type DashboardSnapshot struct {
	TotalExpenses float64                `json:"totalExpenses"`
	Investments   []InvestmentSummary    `json:"investments"`
	EmergencyFund *models.EmergencyFund  `json:"emergencyFund"`
	BudgetStatus  []metrics.BudgetStatus `json:"budgetStatus"`
	AsOf          time.Time              `json:"asOf"`
}

// DashboardServicer defines the contract for the dashboard aggregator.
type DashboardServicer interface {
	GetSnapshot(ctx context.Context, userID string, now time.Time) (*DashboardSnapshot, error)
}
