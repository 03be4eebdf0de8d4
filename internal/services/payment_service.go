package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Amsa221/softskills-project/internal/auth"
	"github.com/Amsa221/softskills-project/internal/logger"
	"github.com/Amsa221/softskills-project/internal/models"
	"github.com/Amsa221/softskills-project/internal/repositories"
	"github.com/Amsa221/softskills-project/internal/services/dto"
	"github.com/Amsa221/softskills-project/pkg/apperrors"
)

type PaymentService interface {
	Create(viewer auth.Viewer, req *dto.CreatePaymentRequest) (*models.Payment, error)
	Get(viewer auth.Viewer, id string) (*models.Payment, error)
	List(viewer auth.Viewer, page, pageSize int) ([]models.Payment, int64, error)
	UpdateStatus(id string, req *dto.UpdatePaymentStatusRequest) (*models.Payment, error)
}

type paymentService struct {
	db        *gorm.DB
	payments  repositories.PaymentRepository
	analytics AnalyticsService
}

func NewPaymentService(db *gorm.DB, payments repositories.PaymentRepository, analytics AnalyticsService) PaymentService {
	return &paymentService{db: db, payments: payments, analytics: analytics}
}

// Create opens a ledger entry. Status is always pending and the owner is
// always the caller, whatever the request body says.
func (s *paymentService) Create(viewer auth.Viewer, req *dto.CreatePaymentRequest) (*models.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.ValidationError(map[string]string{"amount": "Amount must be positive"})
	}

	payment := &models.Payment{
		OwnerID:       viewer.UserID,
		Amount:        req.Amount,
		Status:        models.PaymentStatusPending,
		Method:        req.Method,
		TransactionID: req.TransactionID,
	}
	if err := s.payments.Create(s.db, payment); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payment, nil
}

func (s *paymentService) Get(viewer auth.Viewer, id string) (*models.Payment, error) {
	payment, err := s.payments.FindByID(s.db, id)
	if err != nil {
		if err == repositories.ErrPaymentNotFound {
			return nil, apperrors.ErrNotFound(err, "payment")
		}
		return nil, err
	}
	// A foreign payment is reported as absent, not as forbidden.
	if !auth.CanViewPayment(viewer, payment) {
		return nil, apperrors.ErrNotFound(repositories.ErrPaymentNotFound, "payment")
	}
	return payment, nil
}

func (s *paymentService) List(viewer auth.Viewer, page, pageSize int) ([]models.Payment, int64, error) {
	return s.payments.FindVisible(s.db, viewer, page, pageSize)
}

// UpdateStatus applies one legal transition and, when the payment
// reaches completed, folds it into the daily statistics. Both writes
// share a transaction and the status flip is guarded on the previous
// status, so the aggregation runs exactly once per completion no matter
// how many callers race on the same payment.
func (s *paymentService) UpdateStatus(id string, req *dto.UpdatePaymentStatusRequest) (*models.Payment, error) {
	target := models.PaymentStatus(req.Status)

	var updated *models.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		payment, err := s.payments.FindByID(tx, id)
		if err != nil {
			if err == repositories.ErrPaymentNotFound {
				return apperrors.ErrNotFound(err, "payment")
			}
			return err
		}

		if payment.Status == target {
			return apperrors.ErrInvalidStatusTransition("payment",
				fmt.Sprintf("Payment is already %s", target))
		}
		if !models.CanTransitionPayment(payment.Status, target) {
			return apperrors.ErrInvalidStatusTransition("payment",
				fmt.Sprintf("Cannot change payment status from %s to %s", payment.Status, target))
		}

		if err := s.payments.TransitionStatus(tx, id, payment.Status, target); err != nil {
			if err == repositories.ErrPaymentStatusChanged {
				return apperrors.ErrConflict("payment", "Payment status changed, retry the request")
			}
			return err
		}

		payment.Status = target
		if req.TransactionID != nil {
			payment.TransactionID = req.TransactionID
			if err := tx.Model(&models.Payment{}).Where("id = ?", id).
				Update("transaction_id", *req.TransactionID).Error; err != nil {
				return err
			}
		}

		if target == models.PaymentStatusCompleted {
			if err := s.analytics.RecordCompletedPayment(tx, payment); err != nil {
				return err
			}
			logger.Info("payment completed",
				"payment_id", payment.ID,
				"amount", payment.Amount.String(),
				"stat_date", payment.StatDate().Format("2006-01-02"))
		}

		updated = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
