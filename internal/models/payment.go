package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is an append-mostly ledger row. Rows are never deleted in
// normal operation; only the status column changes after creation.
type Payment struct {
	ID      string          `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID string          `gorm:"type:uuid;index;not null" json:"owner_id"`
	Amount  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status  PaymentStatus   `gorm:"size:10;index;not null;default:'pending'" json:"status"`

	// Opaque gateway references, set by the payment-method callback.
	Method        *string `gorm:"size:50" json:"method,omitempty"`
	TransactionID *string `gorm:"size:255" json:"transaction_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// StatDate is the aggregation key: the calendar date of the creation
// timestamp, not of the status change.
func (p *Payment) StatDate() time.Time {
	y, m, d := p.CreatedAt.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
