package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyStat holds one running total per calendar date. Rows are created
// lazily by the aggregator and only ever grow.
type DailyStat struct {
	ID                uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Date              time.Time       `gorm:"type:date;uniqueIndex;not null" json:"date"`
	TotalRevenue      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_revenue"`
	TotalTransactions uint            `gorm:"not null;default:0" json:"total_transactions"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
