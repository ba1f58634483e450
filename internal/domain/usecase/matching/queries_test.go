package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
)

func queryTestTransaction(name string) *entity.Transaction {
	return &entity.Transaction{
		ID:          "tx-1",
		OwnerID:     "owner-1",
		Name:        name,
		AmountMinor: -4999,
		Currency:    "EUR",
		BookingDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildQueries(t *testing.T) {
	t.Run("suggestions come first, derived tokens after", func(t *testing.T) {
		tx := queryTestTransaction("ACME RE-2024/001 payment")

		queries := BuildQueries(tx, []string{"acme invoice", "acme receipt"}, 10)

		assert.Equal(t, []string{"acme invoice", "acme receipt", "RE-2024/001"}, queries)
	})

	t.Run("deduplicates by exact match preserving order", func(t *testing.T) {
		tx := queryTestTransaction("order 12345678")

		queries := BuildQueries(tx, []string{"12345678", "12345678", "acme"}, 10)

		assert.Equal(t, []string{"12345678", "acme"}, queries)
	})

	t.Run("blank suggestions are dropped", func(t *testing.T) {
		tx := queryTestTransaction("plain text only")

		queries := BuildQueries(tx, []string{"  ", "", "acme"}, 10)

		assert.Equal(t, []string{"acme"}, queries)
	})

	t.Run("caps the combined list", func(t *testing.T) {
		tx := queryTestTransaction("A-12345 B-23456 C-34567")

		queries := BuildQueries(tx, []string{"one", "two"}, 3)

		assert.Len(t, queries, 3)
		assert.Equal(t, []string{"one", "two", "A-12345"}, queries)
	})

	t.Run("no suggestions and no tokens yields empty list", func(t *testing.T) {
		tx := queryTestTransaction("plain words only")

		queries := BuildQueries(tx, nil, 6)

		assert.Empty(t, queries)
	})
}

func TestDeriveTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "invoice style code",
			input:    "payment RE-2024/001 thanks",
			expected: []string{"RE-2024/001"},
		},
		{
			name:     "bare long numeric id extracted twice by both patterns",
			input:    "ref 1234567890",
			expected: []string{"1234567890", "1234567890"},
		},
		{
			name:     "short numbers ignored by numeric pattern",
			input:    "AB-123",
			expected: []string{"AB-123"},
		},
		{
			name:     "nothing extractable",
			input:    "coffee to go",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deriveTokens(tt.input))
		})
	}
}
