package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "dhanam/internal/errors"
	"dhanam/internal/models"
	"dhanam/internal/services"
)

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// CreateInvestmentRequest represents the request payload for creating an investment.
type CreateInvestmentRequest struct {
	Type         string     `json:"type" binding:"required,investment_type"`
	Amount       float64    `json:"amount" binding:"omitempty,gte=0"`
	Tenure       *int       `json:"tenure" binding:"omitempty,gte=0"`
	InterestRate float64    `json:"interestRate" binding:"omitempty,gte=0,lte=100"`
	StartDate    *time.Time `json:"startDate"`
	FundType     string     `json:"fundType" binding:"max=100"`
}

// UpdateInvestmentRequest represents a partial investment update.
type UpdateInvestmentRequest struct {
	Type         *string  `json:"type" binding:"omitempty,investment_type"`
	Amount       *float64 `json:"amount" binding:"omitempty,gte=0"`
	Tenure       *int     `json:"tenure" binding:"omitempty,gte=0"`
	InterestRate *float64 `json:"interestRate" binding:"omitempty,gte=0,lte=100"`
	FundType     *string  `json:"fundType" binding:"omitempty,max=100"`
}

// CreateInvestment handles the creation of a new investment.
// @Summary     Create an investment
// @Description Record a new investment; tenure is required for FD and PPF
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateInvestmentRequest true "Investment details"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid input or missing tenure"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	investment, err := h.investmentService.CreateInvestment(userID, services.InvestmentInput{
		Type:         models.InvestmentType(req.Type),
		Amount:       req.Amount,
		Tenure:       req.Tenure,
		InterestRate: req.InterestRate,
		StartDate:    req.StartDate,
		FundType:     req.FundType,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"investment": investment})
}

// GetInvestments handles listing investments for the authenticated user.
// @Summary     Get investments
// @Description Get the authenticated user's investments with projected returns
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]models.Investment "Investments"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [get]
func (h *InvestmentHandler) GetInvestments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investments, err := h.investmentService.GetUserInvestments(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investments": investments})
}

// UpdateInvestment handles a partial update of an investment.
// @Summary     Update investment
// @Description Update an existing investment; omitted fields keep their stored value
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                  true "Investment ID"
// @Param       request body UpdateInvestmentRequest true "Updated investment fields"
// @Success     200 {object} models.Investment "Updated investment"
// @Failure     400 {object} ErrorResponse "Invalid input or missing tenure"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.InvestmentUpdate{
		Amount:       req.Amount,
		Tenure:       req.Tenure,
		InterestRate: req.InterestRate,
		FundType:     req.FundType,
	}
	if req.Type != nil {
		investmentType := models.InvestmentType(*req.Type)
		update.Type = &investmentType
	}

	investment, err := h.investmentService.UpdateInvestment(userID, c.Param("id"), update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investment": investment})
}

// DeleteInvestment handles deleting an investment.
// @Summary     Delete investment
// @Description Permanently delete an investment by ID
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} MessageResponse "Investment deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.investmentService.DeleteInvestment(userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Investment deleted successfully"})
}
