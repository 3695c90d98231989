package models

import "regexp"

// MonthKeyPattern matches calendar-month keys such as "2024-06".
var MonthKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// BudgetEntry is a per-category spending limit for one calendar month,
// part of the owning user's profile. Uniqueness per (category, month)
// is not enforced; duplicate entries are reconciled independently.
type BudgetEntry struct {
	Base
	UserID   string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Category ExpenseCategory `gorm:"not null" json:"category"`
	Limit    float64         `gorm:"column:limit_amount;not null" json:"limit"`
	Month    string          `gorm:"not null;size:7" json:"month"`
}
