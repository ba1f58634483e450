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

// MailBodyStrategy searches mailboxes without an attachment filter and
// submits messages to the external classifier. Discovered invoice-download
// links are recorded on the partner as a side effect; when the body itself
// is plausibly the invoice it is rendered, ingested and connected.
type MailBodyStrategy struct {
	mailboxes    persistence.MailboxRepository
	documents    persistence.DocumentRepository
	partners     persistence.PartnerRepository
	client       mailport.Client
	suggester    intel.QuerySuggester
	classifier   intel.MessageClassifier
	ingestor     *Ingestor
	connector    *Connector
	timeProvider core.TimeProvider
	logger       core.Logger
	cfg          Config
}

// NewMailBodyStrategy creates the email-body-as-invoice strategy
func NewMailBodyStrategy(
	mailboxes persistence.MailboxRepository,
	documents persistence.DocumentRepository,
	partners persistence.PartnerRepository,
	client mailport.Client,
	suggester intel.QuerySuggester,
	classifier intel.MessageClassifier,
	ingestor *Ingestor,
	connector *Connector,
	timeProvider core.TimeProvider,
	logger core.Logger,
	cfg Config,
) *MailBodyStrategy {
	return &MailBodyStrategy{
		mailboxes:    mailboxes,
		documents:    documents,
		partners:     partners,
		client:       client,
		suggester:    suggester,
		classifier:   classifier,
		ingestor:     ingestor,
		connector:    connector,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// Name returns the strategy identifier used in attempt records
func (s *MailBodyStrategy) Name() string {
	return entity.StrategyMailBody
}

// Run executes the strategy against one transaction
func (s *MailBodyStrategy) Run(ctx context.Context, run *Run, tx *entity.Transaction) *entity.SearchAttempt {
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
	attempt.Parameters["confidence_threshold"] = s.cfg.BodyInvoiceConfidence
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

func (s *MailBodyStrategy) scanQuery(
	ctx context.Context,
	run *Run,
	tx *entity.Transaction,
	box *entity.Mailbox,
	query string,
	partner *entity.Partner,
	attempt *entity.SearchAttempt,
) (connected, authExpired bool) {
	result, err := s.client.Search(ctx, box.ID, query, s.cfg.MailSearchMaxResults)
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

		if s.classifyAndConnect(ctx, tx, box, query, partner, msg, attempt) {
			return true, false
		}
	}
	return false, false
}

// classifyAndConnect runs the external classification for one message.
// A failure only skips this message, never the strategy.
func (s *MailBodyStrategy) classifyAndConnect(
	ctx context.Context,
	tx *entity.Transaction,
	box *entity.Mailbox,
	query string,
	partner *entity.Partner,
	msg *mailport.Message,
	attempt *entity.SearchAttempt,
) bool {
	partnerName := ""
	if partner != nil {
		partnerName = partner.Name
	}
	classification, usage, err := s.classifier.ClassifyMessage(ctx, intel.ClassifyRequest{
		Transaction: intel.TransactionContext{
			Name:        tx.Name,
			AmountMinor: tx.AmountMinor,
			Currency:    tx.Currency,
			BookingDate: tx.BookingDate.Format("2006-01-02"),
			PartnerName: partnerName,
		},
		Subject:  msg.Subject,
		Sender:   msg.From,
		BodyText: msg.BodyText,
		BodyHTML: msg.BodyHTML,
	})
	attempt.Usage.Add(usage)
	if err != nil {
		s.logger.Warn("Message classification failed, skipping", map[string]any{
			"message_id": msg.ID,
			"error":      err.Error(),
		})
		attempt.Error = err.Error()
		return false
	}

	// Side effect independent of whether a file gets connected
	if len(classification.InvoiceLinks) > 0 {
		s.recordInvoiceLinks(ctx, partner, msg.ID, classification.InvoiceLinks)
	}

	if !classification.BodyIsInvoice || classification.Confidence < s.cfg.BodyInvoiceConfidence {
		return false
	}

	exists, err := s.documents.ExistsByMailBody(ctx, tx.OwnerID, msg.ID)
	if err != nil {
		s.logger.Warn("Body document dedup check failed, skipping", map[string]any{
			"message_id": msg.ID,
			"error":      err.Error(),
		})
		return false
	}
	if exists {
		return false
	}

	doc, _, err := s.ingestor.IngestEmailBody(ctx, tx.OwnerID, box.ID, msg)
	if err != nil {
		s.logger.Warn("Body ingestion failed, skipping", map[string]any{
			"message_id": msg.ID,
			"error":      err.Error(),
		})
		attempt.Error = err.Error()
		return false
	}
	// Ingest may dedup to an existing document the user has already
	// ruled out
	if tx.IsRejected(doc.ID) || doc.IsNotInvoice {
		return false
	}

	match := ScoreCandidate(tx, Candidate{
		Subject:   msg.Subject,
		Snippet:   msg.Snippet,
		Body:      msg.BodyText,
		Sender:    msg.From,
		MailboxID: box.ID,
	}, partnerContext(partner), s.cfg)
	// The classifier's verdict dominates the heuristic score
	confidence := classification.Confidence * 100
	if match.Score > confidence {
		confidence = match.Score
	}

	_, err = s.connector.Connect(ctx, doc.ID, tx.ID, tx.OwnerID,
		entity.ConnectionAutoMatched, confidence, entity.ConnectionProvenance{
			SourceType:    s.Name(),
			SearchPattern: query,
			MailMessageID: msg.ID,
			Sender:        msg.From,
			MailboxID:     box.ID,
		})
	if err != nil {
		s.logger.Warn("Connect failed for body document", map[string]any{
			"document_id":    doc.ID,
			"transaction_id": tx.ID,
			"error":          err.Error(),
		})
		attempt.Error = err.Error()
		return false
	}

	attempt.MatchesFound++
	attempt.ConnectedDocumentIDs = append(attempt.ConnectedDocumentIDs, doc.ID)
	tx.AttachDocument(doc.ID)
	return true
}

// recordInvoiceLinks stores discovered links on the partner for manual
// follow-up. Best-effort; the partner may be unknown.
func (s *MailBodyStrategy) recordInvoiceLinks(ctx context.Context, partner *entity.Partner, messageID string, links []entity.InvoiceLink) {
	if partner == nil {
		return
	}
	changed := false
	now := s.timeProvider.Now()
	for _, link := range links {
		link.MessageID = messageID
		link.RecordedAt = now
		if partner.RecordInvoiceLink(link) {
			changed = true
		}
	}
	if !changed {
		return
	}
	if err := s.partners.Update(ctx, partner); err != nil {
		s.logger.Warn("Failed to record invoice links on partner", map[string]any{
			"partner_id": partner.ID,
			"error":      err.Error(),
		})
		return
	}
	s.logger.Info("Recorded invoice download links on partner", map[string]any{
		"partner_id": partner.ID,
		"message_id": messageID,
		"links":      len(links),
	})
}
