package matching

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	persistencemocks "github.com/fintomate/receipt-matcher/mocks/port/persistence"
)

func TestPartnerFilesStrategy_Run(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()
	bookingDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	newTx := func() *entity.Transaction {
		return &entity.Transaction{
			ID:          "tx-1",
			OwnerID:     "owner-1",
			PartnerID:   "partner-1",
			Name:        "ACME payment",
			AmountMinor: -10000,
			BookingDate: bookingDate,
		}
	}

	// connectorWithExistingConnection builds a connector whose fast path
	// always resolves, so strategy tests need no unit of work plumbing
	connectorWithExistingConnection := func(mockPartners *persistencemocks.MockPartnerRepository) (*Connector, *persistencemocks.MockConnectionRepository) {
		mockUow := new(persistencemocks.MockUnitOfWork)
		mockConnections := new(persistencemocks.MockConnectionRepository)
		connector := NewConnector(mockUow, mockConnections, mockPartners, fixedTimeProvider(fixedTime), quietLogger(), cfg)
		return connector, mockConnections
	}

	t.Run("transaction without partner is skipped", func(t *testing.T) {
		// Arrange
		mockDocs := new(persistencemocks.MockDocumentRepository)
		mockPartners := new(persistencemocks.MockPartnerRepository)
		connector, _ := connectorWithExistingConnection(mockPartners)

		strategy := NewPartnerFilesStrategy(mockDocs, mockPartners, connector, fixedTimeProvider(fixedTime), quietLogger(), cfg)
		tx := newTx()
		tx.PartnerID = ""
		run := NewRun(&entity.QueueItem{ID: "qi-1"})

		// Act
		attempt := strategy.Run(context.Background(), run, tx)

		// Assert
		assert.Equal(t, entity.StrategyPartnerFiles, attempt.Strategy)
		assert.Equal(t, "transaction has no partner", attempt.Parameters["skipped"])
		assert.Zero(t, attempt.MatchesFound)
		mockDocs.AssertNotCalled(t, "ListUnlinkedByPartner")
	})

	t.Run("first candidate passing amount and date filters wins", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockDocs := new(persistencemocks.MockDocumentRepository)
		mockPartners := new(persistencemocks.MockPartnerRepository)
		connector, mockConnections := connectorWithExistingConnection(mockPartners)

		tooExpensive := &entity.Document{
			ID:                   "doc-1",
			OwnerID:              "owner-1",
			ExtractedAmountMinor: int64Ptr(20000),
			ExtractedDate:        timePtr(bookingDate),
		}
		good := &entity.Document{
			ID:                   "doc-2",
			OwnerID:              "owner-1",
			ExtractedAmountMinor: int64Ptr(10000),
			ExtractedDate:        timePtr(bookingDate.AddDate(0, 0, 3)),
			ExtractedPartnerName: "ACME",
		}

		mockDocs.On("ListUnlinkedByPartner", ctx, "owner-1", "partner-1").Return([]*entity.Document{tooExpensive, good}, nil)
		mockPartners.On("GetByID", ctx, "partner-1").Return(&entity.Partner{ID: "partner-1", Name: "ACME"}, nil)
		mockConnections.On("FindByKey", ctx, "doc-2", "tx-1", "owner-1").
			Return(&entity.Connection{ID: "conn-1"}, nil)

		strategy := NewPartnerFilesStrategy(mockDocs, mockPartners, connector, fixedTimeProvider(fixedTime), quietLogger(), cfg)
		tx := newTx()
		run := NewRun(&entity.QueueItem{ID: "qi-1"})

		// Act
		attempt := strategy.Run(ctx, run, tx)

		// Assert
		assert.Equal(t, 2, attempt.CandidatesFound)
		assert.Equal(t, 2, attempt.CandidatesEvaluated)
		assert.Equal(t, 1, attempt.MatchesFound)
		assert.Equal(t, []string{"doc-2"}, attempt.ConnectedDocumentIDs)
		assert.True(t, tx.HasDocument("doc-2"))
		mockConnections.AssertExpectations(t)
	})

	t.Run("rejected and extraction-incomplete documents are filtered", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockDocs := new(persistencemocks.MockDocumentRepository)
		mockPartners := new(persistencemocks.MockPartnerRepository)
		connector, _ := connectorWithExistingConnection(mockPartners)

		rejected := &entity.Document{
			ID:                   "doc-rejected",
			ExtractedAmountMinor: int64Ptr(10000),
			ExtractedDate:        timePtr(bookingDate),
		}
		noExtraction := &entity.Document{ID: "doc-raw"}

		mockDocs.On("ListUnlinkedByPartner", ctx, "owner-1", "partner-1").Return([]*entity.Document{rejected, noExtraction}, nil)
		mockPartners.On("GetByID", ctx, "partner-1").Return(&entity.Partner{ID: "partner-1"}, nil)

		strategy := NewPartnerFilesStrategy(mockDocs, mockPartners, connector, fixedTimeProvider(fixedTime), quietLogger(), cfg)
		tx := newTx()
		tx.RejectedDocumentIDs = []string{"doc-rejected"}
		run := NewRun(&entity.QueueItem{ID: "qi-1"})

		// Act
		attempt := strategy.Run(ctx, run, tx)

		// Assert
		assert.Zero(t, attempt.MatchesFound)
		assert.Empty(t, attempt.ConnectedDocumentIDs)
		assert.Equal(t, 2, attempt.CandidatesEvaluated)
	})

	t.Run("listing failure is absorbed into the attempt", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockDocs := new(persistencemocks.MockDocumentRepository)
		mockPartners := new(persistencemocks.MockPartnerRepository)
		connector, _ := connectorWithExistingConnection(mockPartners)

		mockDocs.On("ListUnlinkedByPartner", ctx, "owner-1", "partner-1").
			Return(nil, assert.AnError)

		strategy := NewPartnerFilesStrategy(mockDocs, mockPartners, connector, fixedTimeProvider(fixedTime), quietLogger(), cfg)
		run := NewRun(&entity.QueueItem{ID: "qi-1"})

		// Act
		attempt := strategy.Run(ctx, run, newTx())

		// Assert
		assert.NotEmpty(t, attempt.Error)
		assert.Zero(t, attempt.MatchesFound)
	})
}
