package matching

import (
	"context"
	"fmt"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	"github.com/fintomate/receipt-matcher/internal/domain/port/core"
	"github.com/fintomate/receipt-matcher/internal/domain/port/persistence"
)

// AmountDateSweepStrategy scans all extraction-complete, unlinked documents
// of the owner regardless of partner. Both the date window and the amount
// tolerance are hard filters; among survivors the smallest absolute amount
// delta wins.
type AmountDateSweepStrategy struct {
	documents    persistence.DocumentRepository
	partners     persistence.PartnerRepository
	connector    *Connector
	timeProvider core.TimeProvider
	logger       core.Logger
	cfg          Config
}

// NewAmountDateSweepStrategy creates the amount/date sweep strategy
func NewAmountDateSweepStrategy(
	documents persistence.DocumentRepository,
	partners persistence.PartnerRepository,
	connector *Connector,
	timeProvider core.TimeProvider,
	logger core.Logger,
	cfg Config,
) *AmountDateSweepStrategy {
	return &AmountDateSweepStrategy{
		documents:    documents,
		partners:     partners,
		connector:    connector,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// Name returns the strategy identifier used in attempt records
func (s *AmountDateSweepStrategy) Name() string {
	return entity.StrategyAmountDateSweep
}

// Run executes the strategy against one transaction
func (s *AmountDateSweepStrategy) Run(ctx context.Context, run *Run, tx *entity.Transaction) *entity.SearchAttempt {
	attempt := newAttempt(run, tx, s.Name(), s.timeProvider)
	defer func() { attempt.FinishedAt = s.timeProvider.Now() }()

	from := tx.BookingDate.Add(-s.cfg.DateWindow())
	to := tx.BookingDate.Add(s.cfg.DateWindow())
	attempt.Parameters["date_from"] = from.Format("2006-01-02")
	attempt.Parameters["date_to"] = to.Format("2006-01-02")
	attempt.Parameters["amount_tolerance_pct"] = s.cfg.AmountTolerancePercent

	candidates, err := s.documents.ListUnlinkedInDateRange(ctx, tx.OwnerID, from, to)
	if err != nil {
		attempt.Error = fmt.Sprintf("listing documents in date range: %v", err)
		return attempt
	}
	attempt.CandidatesFound = len(candidates)

	var best *entity.Document
	var bestDelta int64
	for _, doc := range candidates {
		attempt.CandidatesEvaluated++
		if tx.IsRejected(doc.ID) {
			continue
		}
		if doc.ExtractedAmountMinor == nil || doc.ExtractedDate == nil {
			continue
		}
		if !s.cfg.DateWithinWindow(tx.BookingDate, *doc.ExtractedDate) {
			continue
		}
		if !s.cfg.AmountWithinTolerance(tx.AmountMinor, *doc.ExtractedAmountMinor) {
			continue
		}
		delta := tx.AbsAmountMinor() - absMinor(*doc.ExtractedAmountMinor)
		if delta < 0 {
			delta = -delta
		}
		if best == nil || delta < bestDelta {
			best = doc
			bestDelta = delta
		}
	}
	if best == nil {
		return attempt
	}

	partner := cachedPartner(ctx, s.partners, run, tx.PartnerID, s.logger)
	match := ScoreCandidate(tx, Candidate{
		AmountMinor: best.ExtractedAmountMinor,
		Date:        best.ExtractedDate,
		Name:        best.ExtractedPartnerName,
	}, partnerContext(partner), s.cfg)

	result, err := s.connector.Connect(ctx, best.ID, tx.ID, tx.OwnerID,
		entity.ConnectionAutoMatched, match.Score, entity.ConnectionProvenance{
			SourceType: s.Name(),
		})
	if err != nil {
		attempt.Error = err.Error()
		s.logger.Warn("Connect failed for sweep candidate", map[string]any{
			"document_id":    best.ID,
			"transaction_id": tx.ID,
			"error":          err.Error(),
		})
		return attempt
	}

	attempt.MatchesFound++
	attempt.ConnectedDocumentIDs = append(attempt.ConnectedDocumentIDs, best.ID)
	tx.AttachDocument(best.ID)
	if result.AlreadyConnected {
		s.logger.Debug("Sweep candidate was already connected", map[string]any{
			"document_id":    best.ID,
			"transaction_id": tx.ID,
		})
	}
	return attempt
}

func absMinor(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
