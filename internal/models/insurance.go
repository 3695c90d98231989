package models

import "time"

// InsuranceType is the fixed set of policy types.
type InsuranceType string

const (
	InsuranceHealth InsuranceType = "Health"
	InsuranceLife   InsuranceType = "Life"
)

// ValidInsuranceType reports whether t is a member of the type enum.
func ValidInsuranceType(t InsuranceType) bool {
	return t == InsuranceHealth || t == InsuranceLife
}

// Insurance represents an insurance policy owned by one user.
type Insurance struct {
	Base
	UserID         string        `gorm:"type:uuid;not null;index" json:"user_id"`
	Type           InsuranceType `gorm:"not null" json:"type"`
	Provider       string        `gorm:"not null" json:"provider"`
	CoverageAmount float64       `gorm:"not null" json:"coverageAmount"`
	Premium        float64       `gorm:"not null" json:"premium"`
	RenewalDate    time.Time     `gorm:"not null" json:"renewalDate"`
}
