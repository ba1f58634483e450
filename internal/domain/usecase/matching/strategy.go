package matching

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	"github.com/fintomate/receipt-matcher/internal/domain/port/core"
	"github.com/fintomate/receipt-matcher/internal/domain/port/intel"
	"github.com/fintomate/receipt-matcher/internal/domain/port/persistence"
)

// Strategy is one ordered matching algorithm. Run never returns an error:
// everything below the strategy boundary is converted into the attempt's
// error context and a zero-match result so the controller can advance to
// the next strategy.
type Strategy interface {
	Name() string
	Run(ctx context.Context, run *Run, tx *entity.Transaction) *entity.SearchAttempt
}

// Run carries run-scoped state shared by all strategies of one controller
// invocation: message dedup, mailboxes skipped after auth expiry, partner
// and query caches.
type Run struct {
	Item *entity.QueueItem

	seenMessages     map[string]struct{}
	skippedMailboxes map[string]struct{}
	partners         map[string]*entity.Partner
	queries          map[string][]string
}

// NewRun creates the shared state for one controller invocation
func NewRun(item *entity.QueueItem) *Run {
	return &Run{
		Item:             item,
		seenMessages:     make(map[string]struct{}),
		skippedMailboxes: make(map[string]struct{}),
		partners:         make(map[string]*entity.Partner),
		queries:          make(map[string][]string),
	}
}

// MarkMessageSeen records the message id and reports whether it was
// already fetched earlier in this run
func (r *Run) MarkMessageSeen(messageID string) bool {
	if _, seen := r.seenMessages[messageID]; seen {
		return true
	}
	r.seenMessages[messageID] = struct{}{}
	return false
}

// MailboxSkipped reports whether the mailbox was disabled for this run
func (r *Run) MailboxSkipped(mailboxID string) bool {
	_, skipped := r.skippedMailboxes[mailboxID]
	return skipped
}

// SkipMailbox disables a mailbox (expired credentials) for the rest of the
// run
func (r *Run) SkipMailbox(mailboxID string) {
	r.skippedMailboxes[mailboxID] = struct{}{}
}

// newAttempt starts an attempt record for one strategy execution
func newAttempt(run *Run, tx *entity.Transaction, strategy string, timeProvider core.TimeProvider) *entity.SearchAttempt {
	return &entity.SearchAttempt{
		ID:            uuid.NewString(),
		QueueItemID:   run.Item.ID,
		TransactionID: tx.ID,
		OwnerID:       tx.OwnerID,
		Strategy:      strategy,
		StartedAt:     timeProvider.Now(),
		Parameters:    make(map[string]any),
	}
}

// cachedPartner loads and caches the partner for this run. Missing or
// unloadable partners resolve to nil; matching proceeds without partner
// signals.
func cachedPartner(
	ctx context.Context,
	repo persistence.PartnerRepository,
	run *Run,
	partnerID string,
	logger core.Logger,
) *entity.Partner {
	if partnerID == "" {
		return nil
	}
	if p, ok := run.partners[partnerID]; ok {
		return p
	}
	p, err := repo.GetByID(ctx, partnerID)
	if err != nil {
		logger.Debug("Partner not loadable, matching without partner context", map[string]any{
			"partner_id": partnerID,
			"error":      err.Error(),
		})
		p = nil
	}
	run.partners[partnerID] = p
	return p
}

// cachedQueries builds the mailbox query list for a transaction once per
// run. The suggestion service's usage is charged to the attempt that
// triggered the call; later strategies reuse the cached list for free.
func cachedQueries(
	ctx context.Context,
	suggester intel.QuerySuggester,
	run *Run,
	tx *entity.Transaction,
	partner *entity.Partner,
	attempt *entity.SearchAttempt,
	cfg Config,
	logger core.Logger,
) []string {
	if qs, ok := run.queries[tx.ID]; ok {
		return qs
	}

	partnerName := ""
	if partner != nil {
		partnerName = partner.Name
	}
	suggested, usage, err := suggester.SuggestQueries(ctx, intel.SuggestRequest{
		Transaction: intel.TransactionContext{
			Name:        tx.Name,
			AmountMinor: tx.AmountMinor,
			Currency:    tx.Currency,
			BookingDate: tx.BookingDate.Format("2006-01-02"),
			PartnerName: partnerName,
		},
		MaxQueries: cfg.MaxQueries,
	})
	attempt.Usage.Add(usage)
	if err != nil {
		// Degrade to deterministic tokens only
		logger.Warn("Query suggestion failed, using derived tokens only", map[string]any{
			"transaction_id": tx.ID,
			"error":          err.Error(),
		})
		suggested = nil
	}

	qs := BuildQueries(tx, suggested, cfg.MaxQueries)
	run.queries[tx.ID] = qs
	return qs
}

// disableMailbox flags the mailbox for re-authorization and skips it for
// the rest of the run. Shared by the mail strategies.
func disableMailbox(
	ctx context.Context,
	run *Run,
	mailboxes persistence.MailboxRepository,
	box *entity.Mailbox,
	logger core.Logger,
) {
	run.SkipMailbox(box.ID)
	if err := mailboxes.MarkNeedsReauth(ctx, box.ID); err != nil {
		logger.Error("Failed to flag mailbox for re-authorization", map[string]any{
			"mailbox_id": box.ID,
			"error":      err.Error(),
		})
		return
	}
	logger.Warn("Mailbox credentials expired, skipping for this run", map[string]any{
		"mailbox_id": box.ID,
	})
}

// partnerContext converts a partner entity into the scorer's view
func partnerContext(p *entity.Partner) *PartnerContext {
	if p == nil {
		return nil
	}
	return &PartnerContext{
		Name:           p.Name,
		EmailDomains:   p.EmailDomains,
		SourcePatterns: p.SourcePatterns,
	}
}
