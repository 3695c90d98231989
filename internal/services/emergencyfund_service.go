package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "dhanam/internal/errors"
	"dhanam/internal/models"
)

// emergencyFundService handles the singleton per-user emergency fund.
type emergencyFundService struct {
	db *gorm.DB
}

// NewEmergencyFundService creates a new EmergencyFundServicer.
func NewEmergencyFundService(db *gorm.DB) EmergencyFundServicer {
	return &emergencyFundService{db: db}
}

// GetEmergencyFund returns the user's fund, or ErrEmergencyFundNotFound
// if no fund has been created yet.
func (s *emergencyFundService) GetEmergencyFund(userID string) (*models.EmergencyFund, error) {
	var fund models.EmergencyFund
	if err := s.db.Where("user_id = ?", userID).First(&fund).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmergencyFundNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &fund, nil
}

// UpsertEmergencyFund creates the fund on first write and merges
// supplied fields afterwards. A field changes if and only if it was
// supplied: an explicit zero overwrites, a nil field keeps the stored
// value. The derived fields are recomputed by the model's save hook on
// every path through here.
func (s *emergencyFundService) UpsertEmergencyFund(userID string, targetAmount, currentAmount *float64) (*models.EmergencyFund, error) {
	if targetAmount != nil && *targetAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "targetAmount must be non-negative")
	}
	if currentAmount != nil && *currentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "currentAmount must be non-negative")
	}

	var fund models.EmergencyFund
	err := s.db.Where("user_id = ?", userID).First(&fund).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if targetAmount == nil {
			return nil, apperrors.ErrTargetRequired
		}
		fund = models.EmergencyFund{
			UserID:       userID,
			TargetAmount: *targetAmount,
		}
		if currentAmount != nil {
			fund.CurrentAmount = *currentAmount
		}
		if err := s.db.Create(&fund).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case err != nil:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	default:
		if targetAmount != nil {
			fund.TargetAmount = *targetAmount
		}
		if currentAmount != nil {
			fund.CurrentAmount = *currentAmount
		}
		if err := s.db.Save(&fund).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return &fund, nil
}
