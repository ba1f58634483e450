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

type mailStrategyFixture struct {
	mailboxes   *persistencemocks.MockMailboxRepository
	documents   *persistencemocks.MockDocumentRepository
	partners    *persistencemocks.MockPartnerRepository
	connections *persistencemocks.MockConnectionRepository
	client      *mailmocks.MockClient
	suggester   *intelmocks.MockQuerySuggester
	blobs       *intelmocks.MockBlobStore
	strategy    *MailAttachmentsStrategy
}

func newMailStrategyFixture(fixedTime time.Time, cfg Config) *mailStrategyFixture {
	f := &mailStrategyFixture{
		mailboxes:   new(persistencemocks.MockMailboxRepository),
		documents:   new(persistencemocks.MockDocumentRepository),
		partners:    new(persistencemocks.MockPartnerRepository),
		connections: new(persistencemocks.MockConnectionRepository),
		client:      new(mailmocks.MockClient),
		suggester:   new(intelmocks.MockQuerySuggester),
		blobs:       new(intelmocks.MockBlobStore),
	}
	tp := fixedTimeProvider(fixedTime)
	logger := quietLogger()
	connector := NewConnector(new(persistencemocks.MockUnitOfWork), f.connections, f.partners, tp, logger, cfg)
	ingestor := NewIngestor(f.documents, f.blobs, tp, logger)
	f.strategy = NewMailAttachmentsStrategy(f.mailboxes, f.documents, f.partners, f.client, f.suggester, ingestor, connector, tp, logger, cfg)
	return f
}

func TestMailAttachmentsStrategy_Run(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()

	newTx := func() *entity.Transaction {
		return &entity.Transaction{
			ID:          "tx-1",
			OwnerID:     "owner-1",
			Name:        "ACME 12345678",
			AmountMinor: -10000,
			Currency:    "EUR",
			BookingDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("no authorized mailbox skips without touching mail or intel", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newMailStrategyFixture(fixedTime, cfg)
		f.mailboxes.On("ListAuthorized", ctx, "owner-1").Return(nil, nil)

		run := NewRun(&entity.QueueItem{ID: "qi-1"})

		// Act
		attempt := f.strategy.Run(ctx, run, newTx())

		// Assert
		assert.Equal(t, "no authorized mailbox", attempt.Parameters["skipped"])
		assert.Zero(t, attempt.MatchesFound)
		f.client.AssertNotCalled(t, "Search")
		f.suggester.AssertNotCalled(t, "SuggestQueries")
	})

	t.Run("expired credentials flag the mailbox and end its scan", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newMailStrategyFixture(fixedTime, cfg)
		box := &entity.Mailbox{ID: "mb-1", OwnerID: "owner-1"}

		f.mailboxes.On("ListAuthorized", ctx, "owner-1").Return([]*entity.Mailbox{box}, nil)
		f.suggester.On("SuggestQueries", ctx, mock.AnythingOfType("intel.SuggestRequest")).
			Return([]string{"acme invoice"}, entity.IntelUsage{Calls: 1}, nil)
		f.client.On("Search", ctx, "mb-1", "acme invoice has:attachment", cfg.MailSearchMaxResults).
			Return(nil, errs.ErrMailboxAuthExpired)
		f.mailboxes.On("MarkNeedsReauth", ctx, "mb-1").Return(nil)

		run := NewRun(&entity.QueueItem{ID: "qi-1"})

		// Act
		attempt := f.strategy.Run(ctx, run, newTx())

		// Assert
		assert.Zero(t, attempt.MatchesFound)
		assert.True(t, run.MailboxSkipped("mb-1"))
		assert.Equal(t, 1, attempt.Usage.Calls)
		f.mailboxes.AssertExpectations(t)
		// Only the first query ran; the mailbox was abandoned after expiry
		f.client.AssertNumberOfCalls(t, "Search", 1)
	})

	t.Run("first new pdf attachment is ingested and connected", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newMailStrategyFixture(fixedTime, cfg)
		box := &entity.Mailbox{ID: "mb-1", OwnerID: "owner-1"}
		payload := []byte("%PDF-1.4 acme invoice")
		hash := ContentHash(payload)

		msg := &mailport.Message{
			ID:      "msg-1",
			Subject: "Invoice 12345678",
			From:    "Billing <billing@acme.com>",
			SentAt:  time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC),
			Attachments: []mailport.AttachmentInfo{
				{ID: "att-txt", Filename: "terms.txt", MimeType: "text/plain"},
				{ID: "att-pdf", Filename: "invoice.pdf", MimeType: "application/pdf"},
			},
		}

		f.mailboxes.On("ListAuthorized", ctx, "owner-1").Return([]*entity.Mailbox{box}, nil)
		f.suggester.On("SuggestQueries", ctx, mock.AnythingOfType("intel.SuggestRequest")).
			Return([]string{"acme invoice"}, entity.IntelUsage{Calls: 1}, nil)
		f.client.On("Search", ctx, "mb-1", "acme invoice has:attachment", cfg.MailSearchMaxResults).
			Return(&mailport.SearchResult{MessageIDs: []string{"msg-1"}}, nil)
		f.client.On("GetMessage", ctx, "mb-1", "msg-1").Return(msg, nil)
		f.documents.On("ExistsByMailAttachment", ctx, "owner-1", "msg-1", "att-pdf").Return(false, nil)
		f.client.On("GetAttachment", ctx, "mb-1", "msg-1", "att-pdf").Return(payload, nil)
		f.documents.On("FindByContentHash", ctx, "owner-1", hash).Return(nil, errs.ErrDocumentNotFound)
		f.blobs.On("Upload", ctx, "owner-1", hash, payload, "application/pdf").Return("ref-1", nil)
		f.documents.On("Create", ctx, mock.AnythingOfType("*entity.Document")).Return(nil)
		f.connections.On("FindByKey", ctx, mock.AnythingOfType("string"), "tx-1", "owner-1").
			Return(&entity.Connection{ID: "conn-1"}, nil)

		tx := newTx()
		run := NewRun(&entity.QueueItem{ID: "qi-1"})

		// Act
		attempt := f.strategy.Run(ctx, run, tx)

		// Assert
		assert.Equal(t, 1, attempt.MatchesFound)
		assert.Len(t, attempt.ConnectedDocumentIDs, 1)
		assert.Equal(t, 1, attempt.CandidatesFound)
		assert.Equal(t, 1, attempt.CandidatesEvaluated)
		assert.Len(t, tx.DocumentIDs, 1)
		f.documents.AssertNotCalled(t, "ExistsByMailAttachment", ctx, "owner-1", "msg-1", "att-txt")
		f.blobs.AssertExpectations(t)
	})

	t.Run("dedup to a user-flagged non-invoice never connects", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newMailStrategyFixture(fixedTime, cfg)
		box := &entity.Mailbox{ID: "mb-1", OwnerID: "owner-1"}
		payload := []byte("%PDF-1.4 not actually an invoice")
		hash := ContentHash(payload)

		flagged := &entity.Document{
			ID:           "doc-flagged",
			OwnerID:      "owner-1",
			ContentHash:  hash,
			IsNotInvoice: true,
		}
		msg := &mailport.Message{
			ID:      "msg-1",
			Subject: "Invoice 12345678",
			From:    "billing@acme.com",
			Attachments: []mailport.AttachmentInfo{
				{ID: "att-pdf", Filename: "invoice.pdf", MimeType: "application/pdf"},
			},
		}

		f.mailboxes.On("ListAuthorized", ctx, "owner-1").Return([]*entity.Mailbox{box}, nil)
		f.suggester.On("SuggestQueries", ctx, mock.AnythingOfType("intel.SuggestRequest")).
			Return([]string{"acme invoice"}, entity.IntelUsage{}, nil)
		f.client.On("Search", ctx, "mb-1", "acme invoice has:attachment", cfg.MailSearchMaxResults).
			Return(&mailport.SearchResult{MessageIDs: []string{"msg-1"}}, nil)
		f.client.On("Search", ctx, "mb-1", "12345678 has:attachment", cfg.MailSearchMaxResults).
			Return(&mailport.SearchResult{}, nil)
		f.client.On("GetMessage", ctx, "mb-1", "msg-1").Return(msg, nil)
		f.documents.On("ExistsByMailAttachment", ctx, "owner-1", "msg-1", "att-pdf").Return(false, nil)
		f.client.On("GetAttachment", ctx, "mb-1", "msg-1", "att-pdf").Return(payload, nil)
		// Same bytes arriving through another message resolve to the
		// flagged document
		f.documents.On("FindByContentHash", ctx, "owner-1", hash).Return(flagged, nil)

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

	t.Run("messages seen earlier in the run are not refetched", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newMailStrategyFixture(fixedTime, cfg)
		box := &entity.Mailbox{ID: "mb-1", OwnerID: "owner-1"}

		f.mailboxes.On("ListAuthorized", ctx, "owner-1").Return([]*entity.Mailbox{box}, nil)
		f.suggester.On("SuggestQueries", ctx, mock.AnythingOfType("intel.SuggestRequest")).
			Return([]string{"acme invoice"}, entity.IntelUsage{}, nil)
		f.client.On("Search", ctx, "mb-1", "acme invoice has:attachment", cfg.MailSearchMaxResults).
			Return(&mailport.SearchResult{MessageIDs: []string{"msg-1"}}, nil)
		f.client.On("Search", ctx, "mb-1", "12345678 has:attachment", cfg.MailSearchMaxResults).
			Return(&mailport.SearchResult{}, nil)

		tx := newTx()
		run := NewRun(&entity.QueueItem{ID: "qi-1"})
		run.MarkMessageSeen("msg-1")

		// Act
		attempt := f.strategy.Run(ctx, run, tx)

		// Assert
		assert.Zero(t, attempt.CandidatesEvaluated)
		f.client.AssertNotCalled(t, "GetMessage")
	})

	t.Run("suggestion failure degrades to derived tokens", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newMailStrategyFixture(fixedTime, cfg)
		box := &entity.Mailbox{ID: "mb-1", OwnerID: "owner-1"}

		f.mailboxes.On("ListAuthorized", ctx, "owner-1").Return([]*entity.Mailbox{box}, nil)
		f.suggester.On("SuggestQueries", ctx, mock.AnythingOfType("intel.SuggestRequest")).
			Return(nil, entity.IntelUsage{Calls: 1}, assert.AnError)
		// The transaction name still yields the numeric token
		f.client.On("Search", ctx, "mb-1", "12345678 has:attachment", cfg.MailSearchMaxResults).
			Return(&mailport.SearchResult{}, nil)

		run := NewRun(&entity.QueueItem{ID: "qi-1"})

		// Act
		attempt := f.strategy.Run(ctx, run, newTx())

		// Assert
		assert.Zero(t, attempt.MatchesFound)
		assert.Equal(t, []string{"12345678"}, attempt.Parameters["queries"])
		assert.Equal(t, 1, attempt.Usage.Calls)
		f.client.AssertExpectations(t)
	})
}

// Compile-time interface checks for the intel ports the strategies depend on
var (
	_ intelport.QuerySuggester = (*intelmocks.MockQuerySuggester)(nil)
	_ mailport.Client          = (*mailmocks.MockClient)(nil)
)
