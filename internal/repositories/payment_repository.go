package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Amsa221/softskills-project/internal/auth"
	"github.com/Amsa221/softskills-project/internal/models"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrPaymentStatusChanged reports that the guarded status update hit
	// zero rows: someone else moved the payment first.
	ErrPaymentStatusChanged = errors.New("payment status changed concurrently")
)

// PaymentRepository takes the db handle per call so the service can run
// the status flip and the statistics update inside one transaction.
type PaymentRepository interface {
	Create(db *gorm.DB, payment *models.Payment) error
	FindByID(db *gorm.DB, id string) (*models.Payment, error)
	FindVisible(db *gorm.DB, viewer auth.Viewer, page, pageSize int) ([]models.Payment, int64, error)
	TransitionStatus(db *gorm.DB, id string, from, to models.PaymentStatus) error
}

type PaymentRepositoryImpl struct{}

func NewPaymentRepository() PaymentRepository {
	return &PaymentRepositoryImpl{}
}

func (r *PaymentRepositoryImpl) Create(db *gorm.DB, payment *models.Payment) error {
	return db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Payment, error) {
	var payment models.Payment
	err := db.First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindVisible scopes the ledger to the viewer: owners see their own
// payments, elevated viewers see everything.
func (r *PaymentRepositoryImpl) FindVisible(db *gorm.DB, viewer auth.Viewer, page, pageSize int) ([]models.Payment, int64, error) {
	query := db.Model(&models.Payment{})
	if !viewer.IsElevated() {
		query = query.Where("owner_id = ?", viewer.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []models.Payment
	err := query.Order("created_at desc").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&payments).Error
	return payments, total, err
}

// TransitionStatus flips the status with a single guarded UPDATE. The
// WHERE on the old status makes the flip atomic: of N concurrent racers
// exactly one sees RowsAffected == 1, which is what keys the aggregation
// side effect to the transition instead of to every save.
func (r *PaymentRepositoryImpl) TransitionStatus(db *gorm.DB, id string, from, to models.PaymentStatus) error {
	res := db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPaymentStatusChanged
	}
	return nil
}
