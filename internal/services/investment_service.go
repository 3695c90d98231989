package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "dhanam/internal/errors"
	"dhanam/internal/metrics"
	"dhanam/internal/models"
)

// investmentService handles investment-related business logic.
type investmentService struct {
	db *gorm.DB
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db}
}

// validateInvestment checks the cross-field rules shared by create and
// update: enum membership, non-negative amounts and tenure, rate within
// [0,100], and tenure presence for FD/PPF.
func validateInvestment(investmentType models.InvestmentType, amount float64, tenure *int, interestRate float64) error {
	if !models.ValidInvestmentType(investmentType) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown investment type: "+string(investmentType))
	}
	if amount < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be non-negative")
	}
	if interestRate < 0 || interestRate > 100 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "interestRate must be within [0,100]")
	}
	if tenure != nil && *tenure < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "tenure must be non-negative")
	}
	if investmentType.RequiresTenure() && tenure == nil {
		return apperrors.ErrTenureRequired
	}
	return nil
}

// CreateInvestment validates and persists a new investment. StartDate
// defaults to the creation time when not supplied.
func (s *investmentService) CreateInvestment(userID string, input InvestmentInput) (*models.Investment, error) {
	if err := validateInvestment(input.Type, input.Amount, input.Tenure, input.InterestRate); err != nil {
		return nil, err
	}

	startDate := time.Now().UTC()
	if input.StartDate != nil {
		startDate = *input.StartDate
	}

	investment := &models.Investment{
		UserID:       userID,
		Type:         input.Type,
		Amount:       input.Amount,
		Tenure:       input.Tenure,
		InterestRate: input.InterestRate,
		StartDate:    startDate,
		FundType:     input.FundType,
	}

	if err := s.db.Create(investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.attachProjectedReturn(investment)
	return investment, nil
}

// GetUserInvestments returns the user's investments with the projected
// return computed for each.
func (s *investmentService) GetUserInvestments(userID string) ([]models.Investment, error) {
	var investments []models.Investment
	if err := s.db.Where("user_id = ?", userID).Order("start_date DESC").Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range investments {
		s.attachProjectedReturn(&investments[i])
	}
	return investments, nil
}

// GetInvestmentByID returns an investment if it belongs to the user.
func (s *investmentService) GetInvestmentByID(userID, investmentID string) (*models.Investment, error) {
	var investment models.Investment
	if err := s.db.Where("id = ? AND user_id = ?", investmentID, userID).First(&investment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.attachProjectedReturn(&investment)
	return &investment, nil
}

// UpdateInvestment applies a partial update and re-validates the merged
// record, so a type change to FD/PPF still requires a tenure.
func (s *investmentService) UpdateInvestment(userID, investmentID string, update InvestmentUpdate) (*models.Investment, error) {
	investment, err := s.GetInvestmentByID(userID, investmentID)
	if err != nil {
		return nil, err
	}

	merged := *investment
	updates := make(map[string]interface{})
	if update.Type != nil {
		merged.Type = *update.Type
		updates["type"] = *update.Type
	}
	if update.Amount != nil {
		merged.Amount = *update.Amount
		updates["amount"] = *update.Amount
	}
	if update.Tenure != nil {
		merged.Tenure = update.Tenure
		updates["tenure"] = *update.Tenure
	}
	if update.InterestRate != nil {
		merged.InterestRate = *update.InterestRate
		updates["interest_rate"] = *update.InterestRate
	}
	if update.FundType != nil {
		merged.FundType = *update.FundType
		updates["fund_type"] = *update.FundType
	}

	if err := validateInvestment(merged.Type, merged.Amount, merged.Tenure, merged.InterestRate); err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.Model(investment).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	s.attachProjectedReturn(investment)
	return investment, nil
}

// DeleteInvestment permanently removes an investment owned by the user.
func (s *investmentService) DeleteInvestment(userID, investmentID string) error {
	var investment models.Investment
	if err := s.db.Where("id = ? AND user_id = ?", investmentID, userID).First(&investment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvestmentNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&investment).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// attachProjectedReturn fills the read-time return field. Stored
// records always satisfy the calculator's domain, so a computation
// error here means the record predates a rule change; the return is
// left at zero rather than failing the read.
func (s *investmentService) attachProjectedReturn(investment *models.Investment) {
	projected, err := metrics.ProjectedReturn(investment.Amount, investment.InterestRate, investment.Tenure)
	if err != nil {
		return
	}
	investment.ProjectedReturn = projected
}
