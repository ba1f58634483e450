package matching

import (
	"context"
	"fmt"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	"github.com/fintomate/receipt-matcher/internal/domain/port/core"
	"github.com/fintomate/receipt-matcher/internal/domain/port/persistence"
)

// PartnerFilesStrategy reuses documents already extraction-complete and
// tagged with the transaction's partner but not yet linked anywhere. The
// partner match is a strong prior, so the first candidate passing the
// amount and date filters wins without further ranking.
type PartnerFilesStrategy struct {
	documents    persistence.DocumentRepository
	partners     persistence.PartnerRepository
	connector    *Connector
	timeProvider core.TimeProvider
	logger       core.Logger
	cfg          Config
}

// NewPartnerFilesStrategy creates the partner-file reuse strategy
func NewPartnerFilesStrategy(
	documents persistence.DocumentRepository,
	partners persistence.PartnerRepository,
	connector *Connector,
	timeProvider core.TimeProvider,
	logger core.Logger,
	cfg Config,
) *PartnerFilesStrategy {
	return &PartnerFilesStrategy{
		documents:    documents,
		partners:     partners,
		connector:    connector,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// Name returns the strategy identifier used in attempt records
func (s *PartnerFilesStrategy) Name() string {
	return entity.StrategyPartnerFiles
}

// Run executes the strategy against one transaction
func (s *PartnerFilesStrategy) Run(ctx context.Context, run *Run, tx *entity.Transaction) *entity.SearchAttempt {
	attempt := newAttempt(run, tx, s.Name(), s.timeProvider)
	defer func() { attempt.FinishedAt = s.timeProvider.Now() }()

	if tx.PartnerID == "" {
		attempt.Parameters["skipped"] = "transaction has no partner"
		return attempt
	}
	attempt.Parameters["partner_id"] = tx.PartnerID

	candidates, err := s.documents.ListUnlinkedByPartner(ctx, tx.OwnerID, tx.PartnerID)
	if err != nil {
		attempt.Error = fmt.Sprintf("listing partner documents: %v", err)
		return attempt
	}
	attempt.CandidatesFound = len(candidates)

	partner := cachedPartner(ctx, s.partners, run, tx.PartnerID, s.logger)

	for _, doc := range candidates {
		attempt.CandidatesEvaluated++
		if tx.IsRejected(doc.ID) {
			continue
		}
		if doc.ExtractedAmountMinor == nil || doc.ExtractedDate == nil {
			continue
		}
		if !s.cfg.AmountWithinTolerance(tx.AmountMinor, *doc.ExtractedAmountMinor) {
			continue
		}
		if !s.cfg.DateWithinWindow(tx.BookingDate, *doc.ExtractedDate) {
			continue
		}

		match := ScoreCandidate(tx, Candidate{
			AmountMinor: doc.ExtractedAmountMinor,
			Date:        doc.ExtractedDate,
			Name:        doc.ExtractedPartnerName,
		}, partnerContext(partner), s.cfg)

		result, err := s.connector.Connect(ctx, doc.ID, tx.ID, tx.OwnerID,
			entity.ConnectionAutoMatched, match.Score, entity.ConnectionProvenance{
				SourceType: s.Name(),
			})
		if err != nil {
			// Per-candidate failure: log and try the next one
			s.logger.Warn("Connect failed for partner file candidate", map[string]any{
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
		if result.AlreadyConnected {
			s.logger.Debug("Partner file was already connected", map[string]any{
				"document_id":    doc.ID,
				"transaction_id": tx.ID,
			})
		}
		// One document per transaction per pass is sufficient
		break
	}
	return attempt
}
