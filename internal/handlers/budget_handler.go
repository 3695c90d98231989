package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "dhanam/internal/errors"
	"dhanam/internal/metrics"
	"dhanam/internal/models"
	"dhanam/internal/services"
)

// BudgetHandler handles income-baseline and budget-entry requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// SetIncomeRequest represents the income baseline update payload.
type SetIncomeRequest struct {
	Budget float64 `json:"budget" binding:"omitempty,gte=0"`
}

// CreateBudgetEntryRequest represents the payload for adding a
// per-category monthly limit.
type CreateBudgetEntryRequest struct {
	Category string  `json:"category" binding:"required,expense_category"`
	Limit    float64 `json:"limit" binding:"omitempty,gte=0"`
	Month    string  `json:"month" binding:"required,month_key"`
}

// GetIncome handles retrieving the income baseline.
// @Summary     Get income baseline
// @Description Get the authenticated user's overall budget (income) baseline
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]float64 "Income baseline"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.budgetService.GetIncome(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": income})
}

// SetIncome handles updating the income baseline.
// @Summary     Set income baseline
// @Description Update the authenticated user's overall budget (income) baseline
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetIncomeRequest true "Income baseline"
// @Success     200 {object} map[string]float64 "Updated income baseline"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) SetIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	income, err := h.budgetService.SetIncome(userID, req.Budget)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": income})
}

// CreateBudgetEntry handles adding a per-category monthly limit.
// @Summary     Create budget entry
// @Description Add a per-category spending limit for a calendar month (YYYY-MM)
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBudgetEntryRequest true "Budget entry"
// @Success     201 {object} models.BudgetEntry "Budget entry created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/entries [post]
func (h *BudgetHandler) CreateBudgetEntry(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBudgetEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entry, err := h.budgetService.CreateBudgetEntry(userID, models.ExpenseCategory(req.Category), req.Limit, req.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// GetBudgetEntries handles listing budget entries.
// @Summary     Get budget entries
// @Description Get the authenticated user's budget entries, optionally filtered by month
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month key (YYYY-MM)"
// @Success     200 {object} map[string][]models.BudgetEntry "Budget entries"
// @Failure     400 {object} ErrorResponse "Invalid month key"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/entries [get]
func (h *BudgetHandler) GetBudgetEntries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var month *string
	if v := c.Query("month"); v != "" {
		month = &v
	}

	entries, err := h.budgetService.GetBudgetEntries(userID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// DeleteBudgetEntry handles deleting a budget entry.
// @Summary     Delete budget entry
// @Description Permanently delete a budget entry by ID
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget entry ID"
// @Success     200 {object} MessageResponse "Budget entry deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget entry not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/entries/{id} [delete]
func (h *BudgetHandler) DeleteBudgetEntry(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudgetEntry(userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget entry deleted successfully"})
}

// GetBudgetStatus handles reconciling budgets against actual spend.
// @Summary     Get budget status
// @Description Reconcile the month's budget entries against actual spend per category
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month key (YYYY-MM), defaults to the current month"
// @Success     200 {object} map[string][]metrics.BudgetStatus "Budget status"
// @Failure     400 {object} ErrorResponse "Invalid month key"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/status [get]
func (h *BudgetHandler) GetBudgetStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month := c.Query("month")
	if month == "" {
		month = metrics.MonthKey(time.Now())
	}

	status, err := h.budgetService.GetBudgetStatus(userID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgetStatus": status})
}
