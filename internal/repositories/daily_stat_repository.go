package repositories

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Amsa221/softskills-project/internal/models"
)

var ErrDailyStatNotFound = errors.New("daily stat not found")

type DailyStatRepository interface {
	// IncrementForDate folds one completed payment into the date's
	// running totals as a single atomic statement.
	IncrementForDate(db *gorm.DB, date time.Time, amount decimal.Decimal) error
	FindAll(db *gorm.DB) ([]models.DailyStat, error)
	FindByDate(db *gorm.DB, date time.Time) (*models.DailyStat, error)
}

type DailyStatRepositoryImpl struct{}

func NewDailyStatRepository() DailyStatRepository {
	return &DailyStatRepositoryImpl{}
}

// IncrementForDate is an upsert-and-increment in one statement:
// INSERT ... ON CONFLICT(date) DO UPDATE SET total_revenue =
// total_revenue + amount, total_transactions = total_transactions + 1.
// The database serializes concurrent completions for the same date, so
// totals never lose an update.
func (r *DailyStatRepositoryImpl) IncrementForDate(db *gorm.DB, date time.Time, amount decimal.Decimal) error {
	stat := models.DailyStat{
		Date:              date,
		TotalRevenue:      amount,
		TotalTransactions: 1,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_revenue":      gorm.Expr("total_revenue + ?", amount),
			"total_transactions": gorm.Expr("total_transactions + 1"),
			"updated_at":         time.Now(),
		}),
	}).Create(&stat).Error
}

func (r *DailyStatRepositoryImpl) FindAll(db *gorm.DB) ([]models.DailyStat, error) {
	var stats []models.DailyStat
	err := db.Order("date desc").Find(&stats).Error
	return stats, err
}

func (r *DailyStatRepositoryImpl) FindByDate(db *gorm.DB, date time.Time) (*models.DailyStat, error) {
	var stat models.DailyStat
	err := db.First(&stat, "date = ?", date).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDailyStatNotFound
		}
		return nil, err
	}
	return &stat, nil
}
