package matching

import (
	"time"
)

// Config holds the matching engine's tunable policy values. The business
// thresholds carry defaults taken from production behavior and are
// overridable through configuration rather than inferred.
type Config struct {
	// AmountTolerancePercent is the maximum allowed deviation between the
	// transaction amount and a candidate's extracted amount. A candidate at
	// exactly the tolerance passes (inclusive boundary).
	AmountTolerancePercent float64

	// DateWindowDays is the half-width of the accepted date window around
	// the transaction's booking date
	DateWindowDays int

	// BodyInvoiceConfidence is the minimum classifier confidence for
	// treating an email body as the invoice itself
	BodyInvoiceConfidence float64

	// RunBudget is the wall-clock budget for one controller invocation,
	// safely under the host execution-time limit
	RunBudget time.Duration

	// InterTransactionDelay is the fixed pause between transactions to
	// avoid saturating the storage backend
	InterTransactionDelay time.Duration

	// PageSize is how many incomplete transactions are loaded per page
	PageSize int

	// MailSearchMaxResults caps the message ids fetched per mailbox query
	MailSearchMaxResults int

	// MaxQueries caps the combined (suggested + derived) query list per
	// transaction
	MaxQueries int

	// MaxRetries caps how often a queue item is re-armed after a fatal
	// invocation error
	MaxRetries int

	// PatternStartingConfidence is the initial confidence assigned to a
	// freshly learned source pattern
	PatternStartingConfidence float64
}

// DefaultConfig returns the production defaults
func DefaultConfig() Config {
	return Config{
		AmountTolerancePercent:    5.0,
		DateWindowDays:            30,
		BodyInvoiceConfidence:     0.7,
		RunBudget:                 3 * time.Minute,
		InterTransactionDelay:     150 * time.Millisecond,
		PageSize:                  25,
		MailSearchMaxResults:      10,
		MaxQueries:                6,
		MaxRetries:                3,
		PatternStartingConfidence: 0.6,
	}
}

// DateWindow returns the half-width of the date window as a duration
func (c Config) DateWindow() time.Duration {
	return time.Duration(c.DateWindowDays) * 24 * time.Hour
}

// AmountWithinTolerance reports whether the candidate amount deviates from
// the transaction amount by at most the configured tolerance. Signs are
// ignored; extracted invoice amounts are unsigned while bank amounts are
// signed.
func (c Config) AmountWithinTolerance(transactionMinor, candidateMinor int64) bool {
	return amountDeviationPercent(transactionMinor, candidateMinor) <= c.AmountTolerancePercent
}

// DateWithinWindow reports whether the candidate date falls inside the
// two-sided window around the transaction date
func (c Config) DateWithinWindow(transactionDate, candidateDate time.Time) bool {
	diff := transactionDate.Sub(candidateDate)
	if diff < 0 {
		diff = -diff
	}
	return diff <= c.DateWindow()
}

// amountDeviationPercent returns the relative deviation of the candidate
// amount from the transaction amount, in percent. A zero transaction
// amount never matches anything.
func amountDeviationPercent(transactionMinor, candidateMinor int64) float64 {
	txAbs := transactionMinor
	if txAbs < 0 {
		txAbs = -txAbs
	}
	candAbs := candidateMinor
	if candAbs < 0 {
		candAbs = -candAbs
	}
	if txAbs == 0 {
		return 100
	}
	delta := txAbs - candAbs
	if delta < 0 {
		delta = -delta
	}
	return float64(delta) / float64(txAbs) * 100
}
