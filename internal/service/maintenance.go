package service

import (
	"math"
	"time"

	"github.com/ANIKETSHETTY47/energy-grid-analytics-go/maintenance"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/domain"
)

// DefaultServiceInterval is used to project the next service for assets
// without a scheduled date.
const DefaultServiceInterval = 365 * 24 * time.Hour

// MaintenanceService projects asset maintenance needs from the fixture dates
// and an annual failure rate.
type MaintenanceService struct {
	failureRate float64
}

func NewMaintenanceService(failureRatePerYear float64) *MaintenanceService {
	return &MaintenanceService{failureRate: failureRatePerYear}
}

// Outlook computes the asset's outlook at now. It has no side effects.
func (s *MaintenanceService) Outlook(a domain.Asset, now time.Time) domain.MaintenanceOutlook {
	next := a.NextMaintenance
	if next.IsZero() {
		next = maintenance.NextServiceDate(maintenance.AssetHealth{
			HoursRun:           now.Sub(a.LastMaintenance).Hours(),
			FailureRatePerYear: s.failureRate,
			LastService:        a.LastMaintenance,
			ServiceInterval:    DefaultServiceInterval,
		})
	}

	risk30 := maintenance.FailureRisk(s.failureRate, 30*24*time.Hour)
	risk90 := maintenance.FailureRisk(s.failureRate, 90*24*time.Hour)

	days := int(math.Floor(next.Sub(now).Hours() / 24))
	overdue := next.Before(now)

	return domain.MaintenanceOutlook{
		AssetID:           a.ID,
		NextService:       next,
		DaysUntilService:  days,
		Overdue:           overdue,
		FailureRisk30Days: risk30 * 100,
		FailureRisk90Days: risk90 * 100,
		Recommendation:    generateRecommendation(a.Status, overdue, days, risk30),
	}
}

func generateRecommendation(status domain.AssetStatus, overdue bool, days int, risk float64) string {
	switch status {
	case domain.AssetOffline:
		return "URGENT: Schedule immediate maintenance inspection"
	case domain.AssetMaintenance:
		return "Maintenance in progress"
	case domain.AssetOperational:
	}

	if overdue || risk > 0.5 {
		return "URGENT: Schedule immediate maintenance inspection"
	} else if risk > 0.3 || days <= 30 {
		return "Schedule maintenance within next 30 days"
	} else if risk > 0.15 || days <= 90 {
		return "Plan maintenance within next 90 days"
	}
	return "Equipment operating normally"
}
