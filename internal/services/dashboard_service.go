package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "dhanam/internal/errors"
	"dhanam/internal/metrics"
	"dhanam/internal/models"
)

// dashboardService aggregates independently stored records into one
// consolidated snapshot per user.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// GetSnapshot reads the four dashboard sections concurrently and joins
// them before returning. All month comparisons use the single now value
// (UTC calendar month), so the sections agree even though the reads are
// not simultaneous. Any failed sub-read fails the whole snapshot; there
// is no partial-result mode.
func (s *dashboardService) GetSnapshot(ctx context.Context, userID string, now time.Time) (*DashboardSnapshot, error) {
	snapshot := &DashboardSnapshot{AsOf: now.UTC()}
	month := metrics.MonthKey(now)
	monthStart, monthNext := metrics.MonthBounds(now)

	g, gctx := errgroup.WithContext(ctx)

	// Total expenses in now's month.
	g.Go(func() error {
		var total float64
		err := s.db.WithContext(gctx).Model(&models.Expense{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("user_id = ? AND date >= ? AND date < ?", userID, monthStart, monthNext).
			Scan(&total).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		snapshot.TotalExpenses = total
		return nil
	})

	// Investments grouped by type.
	g.Go(func() error {
		var sums []InvestmentSummary
		err := s.db.WithContext(gctx).Model(&models.Investment{}).
			Select("type, COALESCE(SUM(amount), 0) AS total").
			Where("user_id = ?", userID).
			Group("type").
			Order("type ASC").
			Scan(&sums).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if sums == nil {
			sums = []InvestmentSummary{}
		}
		snapshot.Investments = sums
		return nil
	})

	// Emergency fund; absent is a valid state, not an error.
	g.Go(func() error {
		var fund models.EmergencyFund
		err := s.db.WithContext(gctx).Where("user_id = ?", userID).First(&fund).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		snapshot.EmergencyFund = &fund
		return nil
	})

	// Budget status for now's month.
	g.Go(func() error {
		var entries []models.BudgetEntry
		err := s.db.WithContext(gctx).
			Where("user_id = ? AND month = ?", userID, month).
			Order("created_at ASC").
			Find(&entries).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var expenses []models.Expense
		err = s.db.WithContext(gctx).Where("user_id = ?", userID).Find(&expenses).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		snapshot.BudgetStatus = metrics.ReconcileBudgets(entries, expenses, month)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshot, nil
}
