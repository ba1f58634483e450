package matching

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	errs "github.com/fintomate/receipt-matcher/internal/domain/error"
	persistencemocks "github.com/fintomate/receipt-matcher/mocks/port/persistence"
)

type testCtxKey string

func TestConnector_Connect(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()

	t.Run("fast path returns existing connection without a transaction", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockUow := new(persistencemocks.MockUnitOfWork)
		mockConnections := new(persistencemocks.MockConnectionRepository)
		mockPartners := new(persistencemocks.MockPartnerRepository)

		existing := &entity.Connection{ID: "conn-1", DocumentID: "doc-1", TransactionID: "tx-1", OwnerID: "owner-1"}
		mockConnections.On("FindByKey", ctx, "doc-1", "tx-1", "owner-1").Return(existing, nil)

		connector := NewConnector(mockUow, mockConnections, mockPartners, fixedTimeProvider(fixedTime), quietLogger(), cfg)

		// Act
		result, err := connector.Connect(ctx, "doc-1", "tx-1", "owner-1",
			entity.ConnectionAutoMatched, 80, entity.ConnectionProvenance{})

		// Assert
		assert.NoError(t, err)
		assert.True(t, result.AlreadyConnected)
		assert.Equal(t, "conn-1", result.ConnectionID)
		mockUow.AssertNotCalled(t, "Begin")
		mockConnections.AssertExpectations(t)
	})

	t.Run("first connection writes junction and both id lists atomically", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		txCtx := context.WithValue(ctx, testCtxKey("tx"), "tx")

		mockUow := new(persistencemocks.MockUnitOfWork)
		mockConnections := new(persistencemocks.MockConnectionRepository)
		mockPartners := new(persistencemocks.MockPartnerRepository)
		mockTxRepo := new(persistencemocks.MockTransactionRepository)
		mockDocRepo := new(persistencemocks.MockDocumentRepository)
		mockConnRepo := new(persistencemocks.MockConnectionRepository)

		transaction := &entity.Transaction{ID: "tx-1", OwnerID: "owner-1"}
		document := &entity.Document{ID: "doc-1", OwnerID: "owner-1"}

		mockConnections.On("FindByKey", ctx, "doc-1", "tx-1", "owner-1").Return(nil, errs.ErrConnectionNotFound)
		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("GetTransactionRepository", txCtx).Return(mockTxRepo)
		mockUow.On("GetDocumentRepository", txCtx).Return(mockDocRepo)
		mockUow.On("GetConnectionRepository", txCtx).Return(mockConnRepo)
		mockConnRepo.On("FindByKey", txCtx, "doc-1", "tx-1", "owner-1").Return(nil, errs.ErrConnectionNotFound)
		mockTxRepo.On("GetByID", txCtx, "tx-1").Return(transaction, nil)
		mockDocRepo.On("GetByID", txCtx, "doc-1").Return(document, nil)
		mockConnRepo.On("Create", txCtx, mock.AnythingOfType("*entity.Connection")).Return(nil)
		mockDocRepo.On("Update", txCtx, document).Return(nil)
		mockTxRepo.On("Update", txCtx, transaction).Return(nil)
		mockUow.On("Commit", txCtx).Return(nil)

		connector := NewConnector(mockUow, mockConnections, mockPartners, fixedTimeProvider(fixedTime), quietLogger(), cfg)

		// Act
		result, err := connector.Connect(ctx, "doc-1", "tx-1", "owner-1",
			entity.ConnectionAutoMatched, 80, entity.ConnectionProvenance{SourceType: "partner_files"})

		// Assert
		assert.NoError(t, err)
		assert.False(t, result.AlreadyConnected)
		assert.NotEmpty(t, result.ConnectionID)
		assert.Equal(t, []string{"tx-1"}, document.TransactionIDs)
		assert.Equal(t, []string{"doc-1"}, transaction.DocumentIDs)
		assert.True(t, transaction.IsComplete)
		mockUow.AssertExpectations(t)
		mockConnRepo.AssertExpectations(t)
		mockTxRepo.AssertExpectations(t)
		mockDocRepo.AssertExpectations(t)
	})

	t.Run("rejected document is never reconnected", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		txCtx := context.WithValue(ctx, testCtxKey("tx"), "tx")

		mockUow := new(persistencemocks.MockUnitOfWork)
		mockConnections := new(persistencemocks.MockConnectionRepository)
		mockPartners := new(persistencemocks.MockPartnerRepository)
		mockTxRepo := new(persistencemocks.MockTransactionRepository)
		mockDocRepo := new(persistencemocks.MockDocumentRepository)
		mockConnRepo := new(persistencemocks.MockConnectionRepository)

		transaction := &entity.Transaction{
			ID:                  "tx-1",
			OwnerID:             "owner-1",
			RejectedDocumentIDs: []string{"doc-1"},
		}

		mockConnections.On("FindByKey", ctx, "doc-1", "tx-1", "owner-1").Return(nil, errs.ErrConnectionNotFound)
		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("GetTransactionRepository", txCtx).Return(mockTxRepo)
		mockUow.On("GetDocumentRepository", txCtx).Return(mockDocRepo)
		mockUow.On("GetConnectionRepository", txCtx).Return(mockConnRepo)
		mockConnRepo.On("FindByKey", txCtx, "doc-1", "tx-1", "owner-1").Return(nil, errs.ErrConnectionNotFound)
		mockTxRepo.On("GetByID", txCtx, "tx-1").Return(transaction, nil)
		mockUow.On("Rollback", txCtx).Return(nil)

		connector := NewConnector(mockUow, mockConnections, mockPartners, fixedTimeProvider(fixedTime), quietLogger(), cfg)

		// Act
		result, err := connector.Connect(ctx, "doc-1", "tx-1", "owner-1",
			entity.ConnectionAutoMatched, 80, entity.ConnectionProvenance{})

		// Assert
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDocumentRejected)
		mockDocRepo.AssertNotCalled(t, "GetByID")
		mockUow.AssertExpectations(t)
	})

	t.Run("losing the duplicate race resolves to the winning row", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		txCtx := context.WithValue(ctx, testCtxKey("tx"), "tx")

		mockUow := new(persistencemocks.MockUnitOfWork)
		mockConnections := new(persistencemocks.MockConnectionRepository)
		mockPartners := new(persistencemocks.MockPartnerRepository)
		mockTxRepo := new(persistencemocks.MockTransactionRepository)
		mockDocRepo := new(persistencemocks.MockDocumentRepository)
		mockConnRepo := new(persistencemocks.MockConnectionRepository)

		transaction := &entity.Transaction{ID: "tx-1", OwnerID: "owner-1"}
		document := &entity.Document{ID: "doc-1", OwnerID: "owner-1"}
		winner := &entity.Connection{ID: "conn-winner"}

		mockConnections.On("FindByKey", ctx, "doc-1", "tx-1", "owner-1").Return(nil, errs.ErrConnectionNotFound)
		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("GetTransactionRepository", txCtx).Return(mockTxRepo)
		mockUow.On("GetDocumentRepository", txCtx).Return(mockDocRepo)
		mockUow.On("GetConnectionRepository", txCtx).Return(mockConnRepo)
		mockConnRepo.On("FindByKey", txCtx, "doc-1", "tx-1", "owner-1").Return(nil, errs.ErrConnectionNotFound).Once()
		mockTxRepo.On("GetByID", txCtx, "tx-1").Return(transaction, nil)
		mockDocRepo.On("GetByID", txCtx, "doc-1").Return(document, nil)
		mockConnRepo.On("Create", txCtx, mock.AnythingOfType("*entity.Connection")).Return(errs.ErrDuplicateConnection)
		mockConnRepo.On("FindByKey", txCtx, "doc-1", "tx-1", "owner-1").Return(winner, nil).Once()
		mockUow.On("Commit", txCtx).Return(nil)

		connector := NewConnector(mockUow, mockConnections, mockPartners, fixedTimeProvider(fixedTime), quietLogger(), cfg)

		// Act
		result, err := connector.Connect(ctx, "doc-1", "tx-1", "owner-1",
			entity.ConnectionAutoMatched, 80, entity.ConnectionProvenance{})

		// Assert
		assert.NoError(t, err)
		assert.True(t, result.AlreadyConnected)
		assert.Equal(t, "conn-winner", result.ConnectionID)
		mockConnRepo.AssertExpectations(t)
	})

	t.Run("mail provenance teaches the partner a source pattern", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		txCtx := context.WithValue(ctx, testCtxKey("tx"), "tx")

		mockUow := new(persistencemocks.MockUnitOfWork)
		mockConnections := new(persistencemocks.MockConnectionRepository)
		mockPartners := new(persistencemocks.MockPartnerRepository)
		mockTxRepo := new(persistencemocks.MockTransactionRepository)
		mockDocRepo := new(persistencemocks.MockDocumentRepository)
		mockConnRepo := new(persistencemocks.MockConnectionRepository)

		transaction := &entity.Transaction{ID: "tx-1", OwnerID: "owner-1", PartnerID: "partner-1"}
		document := &entity.Document{ID: "doc-1", OwnerID: "owner-1"}
		partner := &entity.Partner{ID: "partner-1", OwnerID: "owner-1", Name: "ACME"}

		mockConnections.On("FindByKey", ctx, "doc-1", "tx-1", "owner-1").Return(nil, errs.ErrConnectionNotFound)
		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("GetTransactionRepository", txCtx).Return(mockTxRepo)
		mockUow.On("GetDocumentRepository", txCtx).Return(mockDocRepo)
		mockUow.On("GetConnectionRepository", txCtx).Return(mockConnRepo)
		mockConnRepo.On("FindByKey", txCtx, "doc-1", "tx-1", "owner-1").Return(nil, errs.ErrConnectionNotFound)
		mockTxRepo.On("GetByID", txCtx, "tx-1").Return(transaction, nil)
		mockDocRepo.On("GetByID", txCtx, "doc-1").Return(document, nil)
		mockConnRepo.On("Create", txCtx, mock.AnythingOfType("*entity.Connection")).Return(nil)
		mockDocRepo.On("Update", txCtx, document).Return(nil)
		mockTxRepo.On("Update", txCtx, transaction).Return(nil)
		mockUow.On("Commit", txCtx).Return(nil)

		// Pattern learning runs outside the committed transaction
		mockUow.On("GetTransactionRepository", ctx).Return(mockTxRepo)
		mockTxRepo.On("GetByID", ctx, "tx-1").Return(transaction, nil)
		mockPartners.On("GetByID", ctx, "partner-1").Return(partner, nil)
		mockPartners.On("Update", ctx, partner).Return(nil)

		connector := NewConnector(mockUow, mockConnections, mockPartners, fixedTimeProvider(fixedTime), quietLogger(), cfg)

		// Act
		result, err := connector.Connect(ctx, "doc-1", "tx-1", "owner-1",
			entity.ConnectionAutoMatched, 80, entity.ConnectionProvenance{
				SourceType: "mail_attachments",
				Sender:     "Billing <billing@acme.com>",
				MailboxID:  "mb-1",
			})

		// Assert
		assert.NoError(t, err)
		assert.False(t, result.AlreadyConnected)
		assert.Equal(t, []string{"acme.com"}, partner.EmailDomains)
		assert.Len(t, partner.SourcePatterns, 1)
		assert.Equal(t, "acme.com", partner.SourcePatterns[0].Domain)
		assert.Equal(t, "mb-1", partner.SourcePatterns[0].MailboxID)
		assert.Equal(t, cfg.PatternStartingConfidence, partner.SourcePatterns[0].Confidence)
		mockPartners.AssertExpectations(t)
	})
}
