package entity

import (
	"strings"
	"time"
)

// SourcePattern is a learned hint that invoices for a partner tend to
// arrive from a sender domain via a specific mailbox. Deduplicated by
// (domain, mailbox id) pair.
type SourcePattern struct {
	Domain     string    `json:"domain"`
	MailboxID  string    `json:"mailboxId"`
	UsageCount int       `json:"usageCount"`
	Confidence float64   `json:"confidence"`
	LearnedAt  time.Time `json:"learnedAt"`
}

// InvoiceLink is a download link discovered inside an email body. Recorded
// for manual follow-up, never fetched automatically.
type InvoiceLink struct {
	URL        string    `json:"url"`
	AnchorText string    `json:"anchorText,omitempty"`
	MessageID  string    `json:"messageId,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

// Partner is a known counterparty (merchant, supplier) of the owner
type Partner struct {
	ID             string
	OwnerID        string
	Name           string
	EmailDomains   []string // Known sender domains, lowercase, deduplicated
	SourcePatterns []SourcePattern
	InvoiceLinks   []InvoiceLink
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasDomain reports whether the domain is already known (case-insensitive)
func (p *Partner) HasDomain(domain string) bool {
	domain = strings.ToLower(domain)
	for _, d := range p.EmailDomains {
		if d == domain {
			return true
		}
	}
	return false
}

// AddDomain appends the domain if not already present and reports whether
// the partner was modified
func (p *Partner) AddDomain(domain string) bool {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" || p.HasDomain(domain) {
		return false
	}
	p.EmailDomains = append(p.EmailDomains, domain)
	return true
}

// UpsertSourcePattern records or bumps the (domain, mailbox) pattern and
// reports whether the partner was modified
func (p *Partner) UpsertSourcePattern(domain, mailboxID string, startingConfidence float64, now time.Time) bool {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return false
	}
	for i := range p.SourcePatterns {
		if p.SourcePatterns[i].Domain == domain && p.SourcePatterns[i].MailboxID == mailboxID {
			p.SourcePatterns[i].UsageCount++
			return true
		}
	}
	p.SourcePatterns = append(p.SourcePatterns, SourcePattern{
		Domain:     domain,
		MailboxID:  mailboxID,
		UsageCount: 1,
		Confidence: startingConfidence,
		LearnedAt:  now,
	})
	return true
}

// RecordInvoiceLink appends the link unless the same URL was already
// recorded from the same message
func (p *Partner) RecordInvoiceLink(link InvoiceLink) bool {
	for _, l := range p.InvoiceLinks {
		if l.URL == link.URL && l.MessageID == link.MessageID {
			return false
		}
	}
	p.InvoiceLinks = append(p.InvoiceLinks, link)
	return true
}
