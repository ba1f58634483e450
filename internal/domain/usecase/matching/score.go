package matching

import (
	"fmt"
	"strings"
	"time"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
)

// MatchLabel is the qualitative verdict attached to a score
type MatchLabel string

// Labels
const (
	LabelStrong MatchLabel = "Strong"
	LabelLikely MatchLabel = "Likely"
	LabelNone   MatchLabel = ""
)

// Label thresholds
const (
	strongThreshold = 75.0
	likelyThreshold = 50.0
)

// Signal weights. Additive, capped at 100.
const (
	amountWeight        = 40.0
	amountDecayPercent  = 20.0 // deviation beyond tolerance at which the amount signal reaches zero
	dateWeight          = 20.0
	nameOverlapWeight   = 20.0
	pdfAttachmentWeight = 10.0 // also the floor for PDF-only candidates
	invoiceWordWeight   = 10.0
	linkWordWeight      = 5.0
	senderDomainWeight  = 15.0
	sourcePatternWeight = 10.0
)

// invoiceKeywords indicate invoice-like content in subject/snippet/body
// (English + German)
var invoiceKeywords = []string{
	"invoice", "receipt", "bill", "payment confirmation", "order confirmation",
	"rechnung", "beleg", "quittung", "zahlungsbestätigung", "bestellbestätigung",
}

// linkKeywords indicate an invoice download link
var linkKeywords = []string{
	"download invoice", "view invoice", "download receipt", "view your bill",
	"rechnung herunterladen", "beleg herunterladen", "rechnung ansehen",
}

// Candidate is the scorer's view of one piece of evidence, either a local
// document or a mail message
type Candidate struct {
	AmountMinor *int64
	Date        *time.Time
	Name        string // filename or extracted partner name

	// Email signals, zero-valued for local documents
	Subject          string
	Snippet          string
	Body             string
	Sender           string
	MailboxID        string
	HasPDFAttachment bool
}

// PartnerContext carries the partner signals the scorer may use
type PartnerContext struct {
	Name           string
	EmailDomains   []string
	SourcePatterns []entity.SourcePattern
}

// MatchScore is the scorer's output: a 0..100 score, a qualitative label
// and human-readable reasons
type MatchScore struct {
	Score   float64
	Label   MatchLabel
	Reasons []string
}

// ScoreCandidate scores a candidate against a transaction. Pure and
// deterministic; combines weighted signals and caps the total at 100.
func ScoreCandidate(tx *entity.Transaction, cand Candidate, partner *PartnerContext, cfg Config) MatchScore {
	var score float64
	var reasons []string

	if cand.AmountMinor != nil {
		dev := amountDeviationPercent(tx.AmountMinor, *cand.AmountMinor)
		switch {
		case dev <= cfg.AmountTolerancePercent:
			score += amountWeight
			reasons = append(reasons, fmt.Sprintf("amount within %.1f%% of transaction", cfg.AmountTolerancePercent))
		case dev < cfg.AmountTolerancePercent+amountDecayPercent:
			partial := amountWeight * (1 - (dev-cfg.AmountTolerancePercent)/amountDecayPercent)
			score += partial
			reasons = append(reasons, fmt.Sprintf("amount deviates %.1f%% from transaction", dev))
		}
	}

	if cand.Date != nil && cfg.DateWithinWindow(tx.BookingDate, *cand.Date) {
		score += dateWeight
		reasons = append(reasons, fmt.Sprintf("date within %d days of transaction", cfg.DateWindowDays))
	}

	partnerName := ""
	if partner != nil {
		partnerName = partner.Name
	}
	if matchesAnyName(cand, tx.Name, partnerName) {
		score += nameOverlapWeight
		reasons = append(reasons, "name overlap with transaction or partner")
	}

	if cand.HasPDFAttachment {
		score += pdfAttachmentWeight
		reasons = append(reasons, "message carries a PDF attachment")
	}

	emailText := strings.ToLower(cand.Subject + " " + cand.Snippet + " " + cand.Body)
	if containsAny(emailText, invoiceKeywords) {
		score += invoiceWordWeight
		reasons = append(reasons, "invoice keywords in message")
	}
	if containsAny(emailText, linkKeywords) {
		score += linkWordWeight
		reasons = append(reasons, "invoice download link keywords in message")
	}

	if partner != nil && cand.Sender != "" {
		domain := senderDomain(cand.Sender)
		if domain != "" {
			for _, d := range partner.EmailDomains {
				if strings.EqualFold(d, domain) {
					score += senderDomainWeight
					reasons = append(reasons, "sender domain matches partner")
					break
				}
			}
			for _, p := range partner.SourcePatterns {
				if p.Domain == domain && (cand.MailboxID == "" || p.MailboxID == cand.MailboxID) {
					score += sourcePatternWeight
					reasons = append(reasons, "sender matches learned source pattern")
					break
				}
			}
		}
	}

	// A PDF attachment with no other signal is still plausibly relevant
	if cand.HasPDFAttachment && score < pdfAttachmentWeight {
		score = pdfAttachmentWeight
	}
	if score > 100 {
		score = 100
	}

	return MatchScore{Score: score, Label: labelFor(score), Reasons: reasons}
}

func labelFor(score float64) MatchLabel {
	switch {
	case score >= strongThreshold:
		return LabelStrong
	case score >= likelyThreshold:
		return LabelLikely
	default:
		return LabelNone
	}
}

func matchesAnyName(cand Candidate, transactionName, partnerName string) bool {
	candidateText := cand.Name
	if candidateText == "" {
		candidateText = cand.Subject
	}
	if candidateText == "" && cand.Sender != "" {
		candidateText = cand.Sender
	}
	if candidateText == "" {
		return false
	}
	if partnerName != "" && NamesMatch(candidateText, partnerName) {
		return true
	}
	return NamesMatch(candidateText, transactionName)
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
