package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "dhanam/internal/errors"
	"dhanam/internal/models"
)

// insuranceService handles insurance-policy business logic.
type insuranceService struct {
	db *gorm.DB
}

// NewInsuranceService creates a new InsuranceServicer.
func NewInsuranceService(db *gorm.DB) InsuranceServicer {
	return &insuranceService{db: db}
}

// CreateInsurance validates and persists a new insurance policy.
func (s *insuranceService) CreateInsurance(
	userID string,
	insuranceType models.InsuranceType,
	provider string,
	coverageAmount, premium float64,
	renewalDate time.Time,
) (*models.Insurance, error) {
	if !models.ValidInsuranceType(insuranceType) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown insurance type: "+string(insuranceType))
	}
	if provider == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "provider must not be empty")
	}
	if coverageAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "coverageAmount must be non-negative")
	}
	if premium < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "premium must be non-negative")
	}
	if renewalDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "renewalDate is required")
	}

	insurance := &models.Insurance{
		UserID:         userID,
		Type:           insuranceType,
		Provider:       provider,
		CoverageAmount: coverageAmount,
		Premium:        premium,
		RenewalDate:    renewalDate,
	}

	if err := s.db.Create(insurance).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return insurance, nil
}

// GetUserInsurances returns all insurance policies owned by the user.
func (s *insuranceService) GetUserInsurances(userID string) ([]models.Insurance, error) {
	var insurances []models.Insurance
	if err := s.db.Where("user_id = ?", userID).Order("renewal_date ASC").Find(&insurances).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return insurances, nil
}

// GetInsuranceByID returns a policy if it belongs to the user.
func (s *insuranceService) GetInsuranceByID(userID, insuranceID string) (*models.Insurance, error) {
	var insurance models.Insurance
	if err := s.db.Where("id = ? AND user_id = ?", insuranceID, userID).First(&insurance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInsuranceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &insurance, nil
}

// UpdateInsurance applies a partial update to a policy.
func (s *insuranceService) UpdateInsurance(userID, insuranceID string, update InsuranceUpdate) (*models.Insurance, error) {
	insurance, err := s.GetInsuranceByID(userID, insuranceID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Type != nil {
		if !models.ValidInsuranceType(*update.Type) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown insurance type: "+string(*update.Type))
		}
		updates["type"] = *update.Type
	}
	if update.Provider != nil {
		if *update.Provider == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "provider must not be empty")
		}
		updates["provider"] = *update.Provider
	}
	if update.CoverageAmount != nil {
		if *update.CoverageAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "coverageAmount must be non-negative")
		}
		updates["coverage_amount"] = *update.CoverageAmount
	}
	if update.Premium != nil {
		if *update.Premium < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "premium must be non-negative")
		}
		updates["premium"] = *update.Premium
	}
	if update.RenewalDate != nil {
		updates["renewal_date"] = *update.RenewalDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(insurance).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return insurance, nil
}

// DeleteInsurance permanently removes a policy owned by the user.
func (s *insuranceService) DeleteInsurance(userID, insuranceID string) error {
	insurance, err := s.GetInsuranceByID(userID, insuranceID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(insurance).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
