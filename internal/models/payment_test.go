package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatDateUsesCreationDateUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	p := Payment{
		// 01:30 local on March 2nd is still March 1st in UTC.
		CreatedAt: time.Date(2026, 3, 2, 1, 30, 0, 0, loc),
	}
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), p.StatDate())
}
