package models

// User represents the user model in the database. Income is the
// baseline used as the overall budget ceiling; per-category monthly
// limits live in the Budgets list.
type User struct {
	Base
	Username string  `gorm:"uniqueIndex;not null" json:"username"`
	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Password string  `gorm:"not null" json:"-"`
	Income   float64 `gorm:"not null;default:0" json:"income"`

	// Relationships. Expenses is a derived view for aggregation; the
	// authoritative owner field is Expense.UserID.
	Budgets  []BudgetEntry `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
	Expenses []Expense     `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
}
