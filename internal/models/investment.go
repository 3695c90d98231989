package models

import "time"

// InvestmentType is the fixed set of supported instruments.
type InvestmentType string

const (
	InvestmentFD          InvestmentType = "FD"
	InvestmentPPF         InvestmentType = "PPF"
	InvestmentSIP         InvestmentType = "SIP"
	InvestmentDigitalGold InvestmentType = "Digital Gold"
)

// ValidInvestmentType reports whether t is a member of the type enum.
func ValidInvestmentType(t InvestmentType) bool {
	switch t {
	case InvestmentFD, InvestmentPPF, InvestmentSIP, InvestmentDigitalGold:
		return true
	}
	return false
}

// RequiresTenure reports whether the instrument type mandates a tenure.
// FD and PPF carry a fixed holding period; SIP and Digital Gold are
// open-ended.
func (t InvestmentType) RequiresTenure() bool {
	return t == InvestmentFD || t == InvestmentPPF
}

// Investment represents a holding of one instrument. Tenure is in whole
// months and nullable; it is required for FD and PPF. InterestRate is a
// flat per-tenure-period compounding percentage.
type Investment struct {
	Base
	UserID       string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Type         InvestmentType `gorm:"not null" json:"type"`
	Amount       float64        `gorm:"not null" json:"amount"`
	Tenure       *int           `json:"tenure,omitempty"`
	InterestRate float64        `gorm:"not null;default:0" json:"interestRate"`
	StartDate    time.Time      `gorm:"not null" json:"startDate"`
	FundType     string         `json:"fundType,omitempty"` // SIP tag, e.g. "Large Cap"

	// ProjectedReturn is populated at query time from the return
	// calculator; it is never persisted.
	ProjectedReturn float64 `gorm:"-" json:"projectedReturn"`
}
