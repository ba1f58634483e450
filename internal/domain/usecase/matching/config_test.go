package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_AmountWithinTolerance(t *testing.T) {
	cfg := DefaultConfig() // 5% tolerance

	tests := []struct {
		name        string
		transaction int64
		candidate   int64
		expected    bool
	}{
		{
			name:        "exact match",
			transaction: -10000,
			candidate:   10000,
			expected:    true,
		},
		{
			name:        "deviation below tolerance",
			transaction: -10000,
			candidate:   10400,
			expected:    true,
		},
		{
			name:        "deviation exactly at tolerance is inclusive",
			transaction: -10000,
			candidate:   10500,
			expected:    true,
		},
		{
			name:        "deviation just past tolerance",
			transaction: -10000,
			candidate:   10501,
			expected:    false,
		},
		{
			name:        "signs are ignored",
			transaction: -10000,
			candidate:   -10000,
			expected:    true,
		},
		{
			name:        "zero transaction amount never matches",
			transaction: 0,
			candidate:   0,
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cfg.AmountWithinTolerance(tt.transaction, tt.candidate))
		})
	}
}

func TestConfig_DateWithinWindow(t *testing.T) {
	cfg := DefaultConfig() // 30 day window
	booking := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		candidate time.Time
		expected  bool
	}{
		{
			name:      "same day",
			candidate: booking,
			expected:  true,
		},
		{
			name:      "thirty days before is inclusive",
			candidate: booking.AddDate(0, 0, -30),
			expected:  true,
		},
		{
			name:      "thirty days after is inclusive",
			candidate: booking.AddDate(0, 0, 30),
			expected:  true,
		},
		{
			name:      "thirty one days before",
			candidate: booking.AddDate(0, 0, -31),
			expected:  false,
		},
		{
			name:      "thirty one days after",
			candidate: booking.AddDate(0, 0, 31),
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cfg.DateWithinWindow(booking, tt.candidate))
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 5.0, cfg.AmountTolerancePercent)
	assert.Equal(t, 30, cfg.DateWindowDays)
	assert.Equal(t, 0.7, cfg.BodyInvoiceConfidence)
	assert.Equal(t, 3*time.Minute, cfg.RunBudget)
	assert.Equal(t, 30*24*time.Hour, cfg.DateWindow())
}
