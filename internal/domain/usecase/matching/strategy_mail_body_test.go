package matching

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	errs "github.com/fintomate/receipt-matcher/internal/domain/error"
	intelport "github.com/fintomate/receipt-matcher/internal/domain/port/intel"
	mailport "github.com/fintomate/receipt-matcher/internal/domain/port/mail"
	intelmocks "github.com/fintomate/receipt-matcher/mocks/port/intel"
	mailmocks "github.com/fintomate/receipt-matcher/mocks/port/mail"
	persistencemocks "github.com/fintomate/receipt-matcher/mocks/port/persistence"
)

type bodyStrategyFixture struct {
	mailboxes   *persistencemocks.MockMailboxRepository
	documents   *persistencemocks.MockDocumentRepository
	partners    *persistencemocks.MockPartnerRepository
	connections *persistencemocks.MockConnectionRepository
	client      *mailmocks.MockClient
	suggester   *intelmocks.MockQuerySuggester
	classifier  *intelmocks.MockMessageClassifier
	blobs       *intelmocks.MockBlobStore
	strategy    *MailBodyStrategy
}

func newBodyStrategyFixture(fixedTime time.Time, cfg Config) *bodyStrategyFixture {
	f := &bodyStrategyFixture{
		mailboxes:   new(persistencemocks.MockMailboxRepository),
		documents:   new(persistencemocks.MockDocumentRepository),
		partners:    new(persistencemocks.MockPartnerRepository),
		connections: new(persistencemocks.MockConnectionRepository),
		client:      new(mailmocks.MockClient),
		suggester:   new(intelmocks.MockQuerySuggester),
		classifier:  new(intelmocks.MockMessageClassifier),
		blobs:       new(intelmocks.MockBlobStore),
	}
	tp := fixedTimeProvider(fixedTime)
	logger := quietLogger()
	connector := NewConnector(new(persistencemocks.MockUnitOfWork), f.connections, f.partners, tp, logger, cfg)
	ingestor := NewIngestor(f.documents, f.blobs, tp, logger)
	f.strategy = NewMailBodyStrategy(f.mailboxes, f.documents, f.partners, f.client, f.suggester, f.classifier, ingestor, connector, tp, logger, cfg)
	return f
}

func TestMailBodyStrategy_Run(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()

	newTx := func() *entity.Transaction {
		return &entity.Transaction{
			ID:          "tx-1",
			OwnerID:     "owner-1",
			Name:        "ACME payment",
			AmountMinor: -10000,
			Currency:    "EUR",
			BookingDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		}
	}

	msg := &mailport.Message{
		ID:       "msg-1",
		Subject:  "Your receipt",
		From:     "billing@acme.com",
		SentAt:   time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC),
		BodyHTML: "<p>Receipt total 100.00 EUR</p>",
	}

	setupSearch := func(f *bodyStrategyFixture, ctx context.Context) {
		f.mailboxes.On("ListAuthorized", ctx, "owner-1").
			Return([]*entity.Mailbox{{ID: "mb-1", OwnerID: "owner-1"}}, nil)
		f.suggester.On("SuggestQueries", ctx, mock.AnythingOfType("intel.SuggestRequest")).
			Return([]string{"acme receipt"}, entity.IntelUsage{Calls: 1}, nil)
		f.client.On("Search", ctx, "mb-1", "acme receipt", cfg.MailSearchMaxResults).
			Return(&mailport.SearchResult{MessageIDs: []string{"msg-1"}}, nil)
		f.client.On("GetMessage", ctx, "mb-1", "msg-1").Return(msg, nil)
	}

	t.Run("confident body classification ingests and connects", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newBodyStrategyFixture(fixedTime, cfg)
		setupSearch(f, ctx)

		f.classifier.On("ClassifyMessage", ctx, mock.AnythingOfType("intel.ClassifyRequest")).
			Return(&intelport.Classification{BodyIsInvoice: true, Confidence: 0.9}, entity.IntelUsage{Calls: 1}, nil)
		f.documents.On("ExistsByMailBody", ctx, "owner-1", "msg-1").Return(false, nil)

		rendered := RenderEmailBody(msg)
		hash := ContentHash(rendered)
		f.documents.On("FindByContentHash", ctx, "owner-1", hash).Return(nil, errs.ErrDocumentNotFound)
		f.blobs.On("Upload", ctx, "owner-1", hash, rendered, "text/html").Return("ref-1", nil)
		f.documents.On("Create", ctx, mock.AnythingOfType("*entity.Document")).Return(nil)
		f.connections.On("FindByKey", ctx, mock.AnythingOfType("string"), "tx-1", "owner-1").
			Return(&entity.Connection{ID: "conn-1"}, nil)

		tx := newTx()
		run := NewRun(&entity.QueueItem{ID: "qi-1"})

		// Act
		attempt := f.strategy.Run(ctx, run, tx)

		// Assert
		assert.Equal(t, 1, attempt.MatchesFound)
		assert.Len(t, tx.DocumentIDs, 1)
		assert.Equal(t, 2, attempt.Usage.Calls)
		assert.Equal(t, cfg.BodyInvoiceConfidence, attempt.Parameters["confidence_threshold"])
	})

	t.Run("low confidence never ingests", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newBodyStrategyFixture(fixedTime, cfg)
		setupSearch(f, ctx)

		f.classifier.On("ClassifyMessage", ctx, mock.AnythingOfType("intel.ClassifyRequest")).
			Return(&intelport.Classification{BodyIsInvoice: true, Confidence: 0.5}, entity.IntelUsage{Calls: 1}, nil)

		run := NewRun(&entity.QueueItem{ID: "qi-1"})

		// Act
		attempt := f.strategy.Run(ctx, run, newTx())

		// Assert
		assert.Zero(t, attempt.MatchesFound)
		f.documents.AssertNotCalled(t, "ExistsByMailBody")
		f.blobs.AssertNotCalled(t, "Upload")
	})

	t.Run("invoice links are recorded on the partner even without a match", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newBodyStrategyFixture(fixedTime, cfg)
		partner := &entity.Partner{ID: "partner-1", OwnerID: "owner-1", Name: "ACME"}

		f.mailboxes.On("ListAuthorized", ctx, "owner-1").
			Return([]*entity.Mailbox{{ID: "mb-1", OwnerID: "owner-1"}}, nil)
		f.partners.On("GetByID", ctx, "partner-1").Return(partner, nil)
		f.suggester.On("SuggestQueries", ctx, mock.AnythingOfType("intel.SuggestRequest")).
			Return([]string{"acme receipt"}, entity.IntelUsage{}, nil)
		f.client.On("Search", ctx, "mb-1", "acme receipt", cfg.MailSearchMaxResults).
			Return(&mailport.SearchResult{MessageIDs: []string{"msg-1"}}, nil)
		f.client.On("GetMessage", ctx, "mb-1", "msg-1").Return(msg, nil)
		f.classifier.On("ClassifyMessage", ctx, mock.AnythingOfType("intel.ClassifyRequest")).
			Return(&intelport.Classification{
				InvoiceLinks:  []entity.InvoiceLink{{URL: "https://acme.com/invoice/1", AnchorText: "Download"}},
				BodyIsInvoice: false,
			}, entity.IntelUsage{Calls: 1}, nil)
		f.partners.On("Update", ctx, partner).Return(nil)

		tx := newTx()
		tx.PartnerID = "partner-1"
		run := NewRun(&entity.QueueItem{ID: "qi-1"})

		// Act
		attempt := f.strategy.Run(ctx, run, tx)

		// Assert
		assert.Zero(t, attempt.MatchesFound)
		assert.Len(t, partner.InvoiceLinks, 1)
		assert.Equal(t, "msg-1", partner.InvoiceLinks[0].MessageID)
		assert.Equal(t, fixedTime, partner.InvoiceLinks[0].RecordedAt)
		f.partners.AssertExpectations(t)
	})

	t.Run("dedup to a user-flagged non-invoice never connects", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newBodyStrategyFixture(fixedTime, cfg)
		setupSearch(f, ctx)

		rendered := RenderEmailBody(msg)
		flagged := &entity.Document{
			ID:           "doc-flagged",
			OwnerID:      "owner-1",
			ContentHash:  ContentHash(rendered),
			IsNotInvoice: true,
		}

		f.classifier.On("ClassifyMessage", ctx, mock.AnythingOfType("intel.ClassifyRequest")).
			Return(&intelport.Classification{BodyIsInvoice: true, Confidence: 0.9}, entity.IntelUsage{}, nil)
		f.documents.On("ExistsByMailBody", ctx, "owner-1", "msg-1").Return(false, nil)
		// Same rendered bytes already ingested from another message and
		// flagged by the user
		f.documents.On("FindByContentHash", ctx, "owner-1", ContentHash(rendered)).Return(flagged, nil)

		tx := newTx()
		run := NewRun(&entity.QueueItem{ID: "qi-1"})

		// Act
		attempt := f.strategy.Run(ctx, run, tx)

		// Assert
		assert.Zero(t, attempt.MatchesFound)
		assert.Empty(t, tx.DocumentIDs)
		f.connections.AssertNotCalled(t, "FindByKey")
		f.blobs.AssertNotCalled(t, "Upload")
	})

	t.Run("expired credentials flag the mailbox and end its scan", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newBodyStrategyFixture(fixedTime, cfg)

		f.mailboxes.On("ListAuthorized", ctx, "owner-1").
			Return([]*entity.Mailbox{{ID: "mb-1", OwnerID: "owner-1"}}, nil)
		f.suggester.On("SuggestQueries", ctx, mock.AnythingOfType("intel.SuggestRequest")).
			Return([]string{"acme receipt"}, entity.IntelUsage{}, nil)
		f.client.On("Search", ctx, "mb-1", "acme receipt", cfg.MailSearchMaxResults).
			Return(nil, errs.ErrMailboxAuthExpired)
		f.mailboxes.On("MarkNeedsReauth", ctx, "mb-1").Return(nil)

		run := NewRun(&entity.QueueItem{ID: "qi-1"})

		// Act
		attempt := f.strategy.Run(ctx, run, newTx())

		// Assert
		assert.Zero(t, attempt.MatchesFound)
		assert.True(t, run.MailboxSkipped("mb-1"))
		f.mailboxes.AssertExpectations(t)
		f.classifier.AssertNotCalled(t, "ClassifyMessage")
	})

	t.Run("existing body document is not duplicated", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newBodyStrategyFixture(fixedTime, cfg)
		setupSearch(f, ctx)

		f.classifier.On("ClassifyMessage", ctx, mock.AnythingOfType("intel.ClassifyRequest")).
			Return(&intelport.Classification{BodyIsInvoice: true, Confidence: 0.9}, entity.IntelUsage{}, nil)
		f.documents.On("ExistsByMailBody", ctx, "owner-1", "msg-1").Return(true, nil)

		run := NewRun(&entity.QueueItem{ID: "qi-1"})

		// Act
		attempt := f.strategy.Run(ctx, run, newTx())

		// Assert
		assert.Zero(t, attempt.MatchesFound)
		f.blobs.AssertNotCalled(t, "Upload")
	})
}
