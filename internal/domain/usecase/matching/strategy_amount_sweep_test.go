package matching

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	persistencemocks "github.com/fintomate/receipt-matcher/mocks/port/persistence"
)

func TestAmountDateSweepStrategy_Run(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()
	bookingDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	newTx := func() *entity.Transaction {
		return &entity.Transaction{
			ID:          "tx-1",
			OwnerID:     "owner-1",
			Name:        "Some shop",
			AmountMinor: -10000,
			BookingDate: bookingDate,
		}
	}

	newStrategy := func(mockDocs *persistencemocks.MockDocumentRepository, mockConnections *persistencemocks.MockConnectionRepository) *AmountDateSweepStrategy {
		mockPartners := new(persistencemocks.MockPartnerRepository)
		tp := fixedTimeProvider(fixedTime)
		logger := quietLogger()
		connector := NewConnector(new(persistencemocks.MockUnitOfWork), mockConnections, mockPartners, tp, logger, cfg)
		return NewAmountDateSweepStrategy(mockDocs, mockPartners, connector, tp, logger, cfg)
	}

	t.Run("smallest amount delta wins among survivors", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockDocs := new(persistencemocks.MockDocumentRepository)
		mockConnections := new(persistencemocks.MockConnectionRepository)

		closeMatch := &entity.Document{
			ID:                   "doc-close",
			ExtractedAmountMinor: int64Ptr(10010),
			ExtractedDate:        timePtr(bookingDate.AddDate(0, 0, 1)),
		}
		widerMatch := &entity.Document{
			ID:                   "doc-wide",
			ExtractedAmountMinor: int64Ptr(10400),
			ExtractedDate:        timePtr(bookingDate),
		}

		from := bookingDate.Add(-cfg.DateWindow())
		to := bookingDate.Add(cfg.DateWindow())
		mockDocs.On("ListUnlinkedInDateRange", ctx, "owner-1", from, to).
			Return([]*entity.Document{widerMatch, closeMatch}, nil)
		mockConnections.On("FindByKey", ctx, "doc-close", "tx-1", "owner-1").
			Return(&entity.Connection{ID: "conn-1"}, nil)

		strategy := newStrategy(mockDocs, mockConnections)
		tx := newTx()
		run := NewRun(&entity.QueueItem{ID: "qi-1"})

		// Act
		attempt := strategy.Run(ctx, run, tx)

		// Assert
		assert.Equal(t, 1, attempt.MatchesFound)
		assert.Equal(t, []string{"doc-close"}, attempt.ConnectedDocumentIDs)
		assert.Equal(t, 2, attempt.CandidatesEvaluated)
		mockConnections.AssertExpectations(t)
	})

	t.Run("no survivor means no connect call", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockDocs := new(persistencemocks.MockDocumentRepository)
		mockConnections := new(persistencemocks.MockConnectionRepository)

		outOfTolerance := &entity.Document{
			ID:                   "doc-1",
			ExtractedAmountMinor: int64Ptr(20000),
			ExtractedDate:        timePtr(bookingDate),
		}
		mockDocs.On("ListUnlinkedInDateRange", ctx, "owner-1", mock.Anything, mock.Anything).
			Return([]*entity.Document{outOfTolerance}, nil)

		strategy := newStrategy(mockDocs, mockConnections)
		run := NewRun(&entity.QueueItem{ID: "qi-1"})

		// Act
		attempt := strategy.Run(ctx, run, newTx())

		// Assert
		assert.Zero(t, attempt.MatchesFound)
		mockConnections.AssertNotCalled(t, "FindByKey")
	})

	t.Run("window bounds are recorded as parameters", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockDocs := new(persistencemocks.MockDocumentRepository)
		mockConnections := new(persistencemocks.MockConnectionRepository)

		mockDocs.On("ListUnlinkedInDateRange", ctx, "owner-1", mock.Anything, mock.Anything).
			Return(nil, nil)

		strategy := newStrategy(mockDocs, mockConnections)
		run := NewRun(&entity.QueueItem{ID: "qi-1"})

		// Act
		attempt := strategy.Run(ctx, run, newTx())

		// Assert
		assert.Equal(t, "2024-02-09", attempt.Parameters["date_from"])
		assert.Equal(t, "2024-04-09", attempt.Parameters["date_to"])
		assert.Equal(t, cfg.AmountTolerancePercent, attempt.Parameters["amount_tolerance_pct"])
	})
}
