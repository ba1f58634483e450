package matching

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	errs "github.com/fintomate/receipt-matcher/internal/domain/error"
	"github.com/fintomate/receipt-matcher/internal/domain/port/core"
	"github.com/fintomate/receipt-matcher/internal/domain/port/intel"
	mailport "github.com/fintomate/receipt-matcher/internal/domain/port/mail"
	"github.com/fintomate/receipt-matcher/internal/domain/port/persistence"
)

// documentMimeTypes is the fixed allowlist of attachment types treated as
// evidence documents
var documentMimeTypes = map[string]struct{}{
	"application/pdf": {},
	"image/png":       {},
	"image/jpeg":      {},
	"image/tiff":      {},
}

// MailAttachmentsStrategy searches connected mailboxes for messages with
// attachments, ingests the first new document-type attachment and connects
// it. Stops the whole strategy, not just the query loop, on first success.
type MailAttachmentsStrategy struct {
	mailboxes    persistence.MailboxRepository
	documents    persistence.DocumentRepository
	partners     persistence.PartnerRepository
	client       mailport.Client
	suggester    intel.QuerySuggester
	ingestor     *Ingestor
	connector    *Connector
	timeProvider core.TimeProvider
	logger       core.Logger
	cfg          Config
}

// NewMailAttachmentsStrategy creates the email-attachment search strategy
func NewMailAttachmentsStrategy(
	mailboxes persistence.MailboxRepository,
	documents persistence.DocumentRepository,
	partners persistence.PartnerRepository,
	client mailport.Client,
	suggester intel.QuerySuggester,
	ingestor *Ingestor,
	connector *Connector,
	timeProvider core.TimeProvider,
	logger core.Logger,
	cfg Config,
) *MailAttachmentsStrategy {
	return &MailAttachmentsStrategy{
		mailboxes:    mailboxes,
		documents:    documents,
		partners:     partners,
		client:       client,
		suggester:    suggester,
		ingestor:     ingestor,
		connector:    connector,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// Name returns the strategy identifier used in attempt records
func (s *MailAttachmentsStrategy) Name() string {
	return entity.StrategyMailAttachments
}

// Run executes the strategy against one transaction
func (s *MailAttachmentsStrategy) Run(ctx context.Context, run *Run, tx *entity.Transaction) *entity.SearchAttempt {
	attempt := newAttempt(run, tx, s.Name(), s.timeProvider)
	defer func() { attempt.FinishedAt = s.timeProvider.Now() }()

	boxes, err := s.mailboxes.ListAuthorized(ctx, tx.OwnerID)
	if err != nil {
		attempt.Error = fmt.Sprintf("listing mailboxes: %v", err)
		return attempt
	}
	if len(boxes) == 0 {
		attempt.Parameters["skipped"] = "no authorized mailbox"
		return attempt
	}

	partner := cachedPartner(ctx, s.partners, run, tx.PartnerID, s.logger)
	queries := cachedQueries(ctx, s.suggester, run, tx, partner, attempt, s.cfg, s.logger)
	attempt.Parameters["queries"] = queries
	if len(queries) == 0 {
		return attempt
	}

	for _, box := range boxes {
		if run.MailboxSkipped(box.ID) {
			continue
		}
		for _, query := range queries {
			connected, authExpired := s.scanQuery(ctx, run, tx, box, query, partner, attempt)
			if authExpired {
				disableMailbox(ctx, run, s.mailboxes, box, s.logger)
				break
			}
			if connected {
				return attempt
			}
		}
	}
	return attempt
}

// scanQuery searches one mailbox with one query and tries to ingest and
// connect the first new document attachment. Per-message failures are
// logged and skipped; only expired credentials abort the mailbox.
func (s *MailAttachmentsStrategy) scanQuery(
	ctx context.Context,
	run *Run,
	tx *entity.Transaction,
	box *entity.Mailbox,
	query string,
	partner *entity.Partner,
	attempt *entity.SearchAttempt,
) (connected, authExpired bool) {
	result, err := s.client.Search(ctx, box.ID, query+" has:attachment", s.cfg.MailSearchMaxResults)
	if err != nil {
		if errors.Is(err, errs.ErrMailboxAuthExpired) {
			return false, true
		}
		s.logger.Warn("Mailbox search failed", map[string]any{
			"mailbox_id": box.ID,
			"query":      query,
			"error":      err.Error(),
		})
		attempt.Error = err.Error()
		return false, false
	}
	attempt.CandidatesFound += len(result.MessageIDs)

	for _, messageID := range result.MessageIDs {
		if run.MarkMessageSeen(messageID) {
			continue
		}
		attempt.CandidatesEvaluated++

		msg, err := s.client.GetMessage(ctx, box.ID, messageID)
		if err != nil {
			if errors.Is(err, errs.ErrMailboxAuthExpired) {
				return false, true
			}
			s.logger.Warn("Message fetch failed, skipping", map[string]any{
				"mailbox_id": box.ID,
				"message_id": messageID,
				"error":      err.Error(),
			})
			attempt.Error = err.Error()
			continue
		}

		if s.connectFromMessage(ctx, tx, box, query, partner, msg, attempt) {
			return true, false
		}
	}
	return false, false
}

// connectFromMessage ingests the first new document-type attachment of the
// message and connects it to the transaction
func (s *MailAttachmentsStrategy) connectFromMessage(
	ctx context.Context,
	tx *entity.Transaction,
	box *entity.Mailbox,
	query string,
	partner *entity.Partner,
	msg *mailport.Message,
	attempt *entity.SearchAttempt,
) bool {
	for _, att := range msg.Attachments {
		if _, ok := documentMimeTypes[att.MimeType]; !ok {
			continue
		}
		exists, err := s.documents.ExistsByMailAttachment(ctx, tx.OwnerID, msg.ID, att.ID)
		if err != nil {
			s.logger.Warn("Attachment dedup check failed, skipping", map[string]any{
				"message_id": msg.ID,
				"error":      err.Error(),
			})
			continue
		}
		if exists {
			continue
		}

		data, err := s.client.GetAttachment(ctx, box.ID, msg.ID, att.ID)
		if err != nil {
			s.logger.Warn("Attachment fetch failed, skipping", map[string]any{
				"message_id":    msg.ID,
				"attachment_id": att.ID,
				"error":         err.Error(),
			})
			attempt.Error = err.Error()
			continue
		}

		doc, _, err := s.ingestor.Ingest(ctx, tx.OwnerID, data, SourceMeta{
			Filename: att.Filename,
			MimeType: att.MimeType,
			Source:   entity.SourceMailAttachment,
			Mail: entity.MailProvenance{
				MailboxID:    box.ID,
				MessageID:    msg.ID,
				AttachmentID: att.ID,
				Sender:       msg.From,
				Subject:      msg.Subject,
				SentAt:       msg.SentAt,
			},
		})
		if err != nil {
			s.logger.Warn("Attachment ingestion failed, skipping", map[string]any{
				"message_id": msg.ID,
				"error":      err.Error(),
			})
			attempt.Error = err.Error()
			continue
		}
		// Ingest may dedup to an existing document the user has already
		// ruled out
		if tx.IsRejected(doc.ID) || doc.IsNotInvoice {
			continue
		}

		match := ScoreCandidate(tx, Candidate{
			Name:             att.Filename,
			Subject:          msg.Subject,
			Snippet:          msg.Snippet,
			Sender:           msg.From,
			MailboxID:        box.ID,
			HasPDFAttachment: att.MimeType == "application/pdf",
		}, partnerContext(partner), s.cfg)

		_, err = s.connector.Connect(ctx, doc.ID, tx.ID, tx.OwnerID,
			entity.ConnectionAutoMatched, match.Score, entity.ConnectionProvenance{
				SourceType:    s.Name(),
				SearchPattern: query,
				MailMessageID: msg.ID,
				Sender:        msg.From,
				MailboxID:     box.ID,
			})
		if err != nil {
			s.logger.Warn("Connect failed for mail attachment", map[string]any{
				"document_id":    doc.ID,
				"transaction_id": tx.ID,
				"error":          err.Error(),
			})
			attempt.Error = err.Error()
			continue
		}

		attempt.MatchesFound++
		attempt.ConnectedDocumentIDs = append(attempt.ConnectedDocumentIDs, doc.ID)
		tx.AttachDocument(doc.ID)
		return true
	}
	return false
}
