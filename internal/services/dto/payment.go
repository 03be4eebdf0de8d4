package dto

import (
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Method        *string         `json:"method" validate:"omitempty,max=50"`
	TransactionID *string         `json:"transaction_id" validate:"omitempty,max=255"`
}

type UpdatePaymentStatusRequest struct {
	Status        string  `json:"status" validate:"required,is-payment-status"`
	TransactionID *string `json:"transaction_id" validate:"omitempty,max=255"`
}
