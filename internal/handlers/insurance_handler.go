package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "dhanam/internal/errors"
	"dhanam/internal/models"
	"dhanam/internal/services"
)

// InsuranceHandler handles insurance-policy requests.
type InsuranceHandler struct {
	insuranceService services.InsuranceServicer
}

// NewInsuranceHandler creates a new InsuranceHandler.
func NewInsuranceHandler(insuranceService services.InsuranceServicer) *InsuranceHandler {
	return &InsuranceHandler{insuranceService: insuranceService}
}

// CreateInsuranceRequest represents the request payload for creating a policy.
type CreateInsuranceRequest struct {
	Type           string    `json:"type" binding:"required,insurance_type"`
	Provider       string    `json:"provider" binding:"required,min=1,max=200"`
	CoverageAmount float64   `json:"coverageAmount" binding:"omitempty,gte=0"`
	Premium        float64   `json:"premium" binding:"omitempty,gte=0"`
	RenewalDate    time.Time `json:"renewalDate" binding:"required"`
}

// UpdateInsuranceRequest represents a partial policy update.
type UpdateInsuranceRequest struct {
	Type           *string    `json:"type" binding:"omitempty,insurance_type"`
	Provider       *string    `json:"provider" binding:"omitempty,max=200"`
	CoverageAmount *float64   `json:"coverageAmount" binding:"omitempty,gte=0"`
	Premium        *float64   `json:"premium" binding:"omitempty,gte=0"`
	RenewalDate    *time.Time `json:"renewalDate"`
}

// CreateInsurance handles the creation of a new policy.
// @Summary     Create an insurance policy
// @Description Record a new insurance policy for the authenticated user
// @Tags        insurance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateInsuranceRequest true "Policy details"
// @Success     201 {object} models.Insurance "Policy created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insurance [post]
func (h *InsuranceHandler) CreateInsurance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateInsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	insurance, err := h.insuranceService.CreateInsurance(
		userID, models.InsuranceType(req.Type), req.Provider, req.CoverageAmount, req.Premium, req.RenewalDate,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insurance": insurance})
}

// GetInsurances handles listing policies for the authenticated user.
// @Summary     Get insurance policies
// @Description Get the authenticated user's insurance policies ordered by renewal date
// @Tags        insurance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]models.Insurance "Policies"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insurance [get]
func (h *InsuranceHandler) GetInsurances(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	insurances, err := h.insuranceService.GetUserInsurances(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insurances": insurances})
}

// UpdateInsurance handles a partial update of a policy.
// @Summary     Update insurance policy
// @Description Update an existing policy; omitted fields keep their stored value
// @Tags        insurance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                 true "Policy ID"
// @Param       request body UpdateInsuranceRequest true "Updated policy fields"
// @Success     200 {object} models.Insurance "Updated policy"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Policy not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insurance/{id} [put]
func (h *InsuranceHandler) UpdateInsurance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateInsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.InsuranceUpdate{
		Provider:       req.Provider,
		CoverageAmount: req.CoverageAmount,
		Premium:        req.Premium,
		RenewalDate:    req.RenewalDate,
	}
	if req.Type != nil {
		insuranceType := models.InsuranceType(*req.Type)
		update.Type = &insuranceType
	}

	insurance, err := h.insuranceService.UpdateInsurance(userID, c.Param("id"), update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insurance": insurance})
}

// DeleteInsurance handles deleting a policy.
// @Summary     Delete insurance policy
// @Description Permanently delete a policy by ID
// @Tags        insurance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Policy ID"
// @Success     200 {object} MessageResponse "Policy deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Policy not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insurance/{id} [delete]
func (h *InsuranceHandler) DeleteInsurance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.insuranceService.DeleteInsurance(userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Insurance policy deleted successfully"})
}
