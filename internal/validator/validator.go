// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"dhanam/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("investment_type", validateInvestmentType)
		_ = v.RegisterValidation("insurance_type", validateInsuranceType)
		_ = v.RegisterValidation("month_key", validateMonthKey)
	}
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.ValidExpenseCategory(models.ExpenseCategory(fl.Field().String()))
}

func validateInvestmentType(fl validator.FieldLevel) bool {
	return models.ValidInvestmentType(models.InvestmentType(fl.Field().String()))
}

func validateInsuranceType(fl validator.FieldLevel) bool {
	return models.ValidInsuranceType(models.InsuranceType(fl.Field().String()))
}

func validateMonthKey(fl validator.FieldLevel) bool {
	return models.MonthKeyPattern.MatchString(fl.Field().String())
}
