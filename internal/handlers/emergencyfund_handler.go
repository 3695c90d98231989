package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "dhanam/internal/errors"
	"dhanam/internal/services"
)

// EmergencyFundHandler handles emergency-fund requests.
type EmergencyFundHandler struct {
	fundService services.EmergencyFundServicer
}

// NewEmergencyFundHandler creates a new EmergencyFundHandler.
func NewEmergencyFundHandler(fundService services.EmergencyFundServicer) *EmergencyFundHandler {
	return &EmergencyFundHandler{fundService: fundService}
}

// UpsertEmergencyFundRequest represents the emergency-fund write
// payload. Pointer fields distinguish "omitted" from an explicit zero:
// a supplied zero overwrites the stored value.
type UpsertEmergencyFundRequest struct {
	TargetAmount  *float64 `json:"targetAmount" binding:"omitempty,gte=0"`
	CurrentAmount *float64 `json:"currentAmount" binding:"omitempty,gte=0"`
}

// GetEmergencyFund handles retrieving the user's emergency fund.
// @Summary     Get emergency fund
// @Description Get the authenticated user's emergency fund
// @Tags        emergency-fund
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.EmergencyFund "Emergency fund"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No fund created yet"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /emergency-fund [get]
func (h *EmergencyFundHandler) GetEmergencyFund(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	fund, err := h.fundService.GetEmergencyFund(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"emergencyFund": fund})
}

// UpsertEmergencyFund handles creating or updating the emergency fund.
// @Summary     Create or update emergency fund
// @Description Create the fund on first write (targetAmount required), merge supplied fields afterwards; monthsCovered and isGoalMet are recomputed on every write
// @Tags        emergency-fund
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpsertEmergencyFundRequest true "Fund amounts"
// @Success     200 {object} models.EmergencyFund "Emergency fund"
// @Failure     400 {object} ErrorResponse "Invalid input or missing targetAmount"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /emergency-fund [post]
func (h *EmergencyFundHandler) UpsertEmergencyFund(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertEmergencyFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fund, err := h.fundService.UpsertEmergencyFund(userID, req.TargetAmount, req.CurrentAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"emergencyFund": fund})
}
