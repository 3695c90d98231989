package models

import "time"

// ExpenseCategory is the fixed set of expense categories.
type ExpenseCategory string

const (
	CategoryFood          ExpenseCategory = "Food"
	CategoryTransport     ExpenseCategory = "Transport"
	CategoryEntertainment ExpenseCategory = "Entertainment"
	CategoryBills         ExpenseCategory = "Bills"
	CategoryHealthcare    ExpenseCategory = "Healthcare"
	CategoryOther         ExpenseCategory = "Other"
)

// ExpenseCategories lists every valid category.
var ExpenseCategories = []ExpenseCategory{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryBills,
	CategoryHealthcare,
	CategoryOther,
}

// ValidExpenseCategory reports whether c is a member of the category enum.
func ValidExpenseCategory(c ExpenseCategory) bool {
	for _, v := range ExpenseCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Expense represents a single spending record owned by one user.
type Expense struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string          `gorm:"not null" json:"title"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Category    ExpenseCategory `gorm:"not null" json:"category"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `gorm:"not null" json:"date"`
}
