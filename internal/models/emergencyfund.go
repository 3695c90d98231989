package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// EmergencyFund is a singleton per user, created lazily on first write.
// MonthsCovered and IsGoalMet are derived fields: they are recomputed on
// every save and any caller-supplied value is discarded.
type EmergencyFund struct {
	Base
	UserID        string    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	TargetAmount  float64   `gorm:"not null" json:"targetAmount"`
	CurrentAmount float64   `gorm:"not null;default:0" json:"currentAmount"`
	MonthsCovered int       `gorm:"not null;default:0" json:"monthsCovered"`
	IsGoalMet     bool      `gorm:"not null;default:false" json:"isGoalMet"`
	LastUpdated   time.Time `gorm:"not null" json:"lastUpdated"`
}

// Recalculate recomputes the derived fields from the current amounts
// and refreshes LastUpdated. The invariant:
//
//	monthsCovered = floor(currentAmount / (targetAmount/12)) when targetAmount > 0, else 0
//	isGoalMet     = currentAmount >= targetAmount
func (f *EmergencyFund) Recalculate(now time.Time) {
	if f.TargetAmount > 0 {
		f.MonthsCovered = int(math.Floor(f.CurrentAmount / (f.TargetAmount / 12)))
	} else {
		f.MonthsCovered = 0
	}
	f.IsGoalMet = f.CurrentAmount >= f.TargetAmount
	f.LastUpdated = now
}

// BeforeSave keeps the derived fields unconditionally true at rest,
// regardless of which path persisted the record.
func (f *EmergencyFund) BeforeSave(tx *gorm.DB) error {
	f.Recalculate(time.Now().UTC())
	return nil
}
