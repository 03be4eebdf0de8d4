package services

import (
	"gorm.io/gorm"

	"github.com/Amsa221/softskills-project/internal/models"
	"github.com/Amsa221/softskills-project/internal/repositories"
	"github.com/Amsa221/softskills-project/pkg/apperrors"
)

type AnalyticsService interface {
	// RecordCompletedPayment folds a payment that just reached completed
	// into that day's totals. Callers invoke it exactly once per
	// transition, inside the same transaction that flipped the status.
	RecordCompletedPayment(tx *gorm.DB, payment *models.Payment) error
	List() ([]models.DailyStat, error)
}

type analyticsService struct {
	db    *gorm.DB
	stats repositories.DailyStatRepository
}

func NewAnalyticsService(db *gorm.DB, stats repositories.DailyStatRepository) AnalyticsService {
	return &analyticsService{db: db, stats: stats}
}

func (s *analyticsService) RecordCompletedPayment(tx *gorm.DB, payment *models.Payment) error {
	return s.stats.IncrementForDate(tx, payment.StatDate(), payment.Amount)
}

func (s *analyticsService) List() ([]models.DailyStat, error) {
	stats, err := s.stats.FindAll(s.db)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "analytics", "Failed to load daily statistics", 500)
	}
	return stats, nil
}
