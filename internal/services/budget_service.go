package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "dhanam/internal/errors"
	"dhanam/internal/metrics"
	"dhanam/internal/models"
)

// budgetService handles the income baseline, the per-category monthly
// budget entries, and their reconciliation against actual spend.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// GetIncome returns the user's income baseline.
func (s *budgetService) GetIncome(userID string) (float64, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user.Income, nil
}

// SetIncome updates the user's income baseline.
func (s *budgetService) SetIncome(userID string, income float64) (float64, error) {
	if income < 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "income must be non-negative")
	}

	result := s.db.Model(&models.User{}).Where("id = ?", userID).Update("income", income)
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, apperrors.ErrUserNotFound
	}
	return income, nil
}

// CreateBudgetEntry adds a per-category limit for a month. Duplicate
// (category, month) entries are allowed; the reconciler reports each
// independently.
func (s *budgetService) CreateBudgetEntry(userID string, category models.ExpenseCategory, limit float64, month string) (*models.BudgetEntry, error) {
	if !models.ValidExpenseCategory(category) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown expense category: "+string(category))
	}
	if limit < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be non-negative")
	}
	if !models.MonthKeyPattern.MatchString(month) {
		return nil, apperrors.ErrInvalidMonth
	}

	entry := &models.BudgetEntry{
		UserID:   userID,
		Category: category,
		Limit:    limit,
		Month:    month,
	}

	if err := s.db.Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return entry, nil
}

// GetBudgetEntries returns the user's budget entries in creation order,
// optionally filtered to one month.
func (s *budgetService) GetBudgetEntries(userID string, month *string) ([]models.BudgetEntry, error) {
	query := s.db.Where("user_id = ?", userID)
	if month != nil {
		if !models.MonthKeyPattern.MatchString(*month) {
			return nil, apperrors.ErrInvalidMonth
		}
		query = query.Where("month = ?", *month)
	}

	var entries []models.BudgetEntry
	if err := query.Order("created_at ASC").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}

// DeleteBudgetEntry permanently removes a budget entry owned by the user.
func (s *budgetService) DeleteBudgetEntry(userID, entryID string) error {
	var entry models.BudgetEntry
	if err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBudgetEntryNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&entry).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetBudgetStatus reconciles the user's budget entries for a month
// against their full expense history.
func (s *budgetService) GetBudgetStatus(userID, month string) ([]metrics.BudgetStatus, error) {
	if !models.MonthKeyPattern.MatchString(month) {
		return nil, apperrors.ErrInvalidMonth
	}

	var entries []models.BudgetEntry
	if err := s.db.Where("user_id = ? AND month = ?", userID, month).Order("created_at ASC").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return metrics.ReconcileBudgets(entries, expenses, month), nil
}
