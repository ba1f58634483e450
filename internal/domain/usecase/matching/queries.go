package matching

import (
	"regexp"
	"strings"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
)

// Two regex families extract filename-like tokens from the transaction's
// free-text name: alphanumeric invoice-style codes (RE-2024/001, A-12345)
// and bare numeric ids of length >= 8.
var (
	invoiceCodePattern = regexp.MustCompile(`[A-Za-z]{0,5}-?\d{3,}(?:[./]\d+)?`)
	numericIDPattern   = regexp.MustCompile(`\d{8,}`)
)

// BuildQueries combines AI-suggested query strings with deterministically
// derived tokens from the transaction name. Queries are trimmed and
// deduplicated by case-sensitive exact match; order is preserved
// (suggestions first, derived tokens after) and the list is capped.
func BuildQueries(tx *entity.Transaction, suggested []string, max int) []string {
	var queries []string
	seen := make(map[string]struct{})

	add := func(q string) {
		q = strings.TrimSpace(q)
		if q == "" {
			return
		}
		if _, dup := seen[q]; dup {
			return
		}
		seen[q] = struct{}{}
		queries = append(queries, q)
	}

	for _, q := range suggested {
		add(q)
	}
	for _, token := range deriveTokens(tx.Name) {
		add(token)
	}

	if max > 0 && len(queries) > max {
		queries = queries[:max]
	}
	return queries
}

// deriveTokens extracts invoice-number-looking substrings from the
// transaction's free text
func deriveTokens(name string) []string {
	var tokens []string
	tokens = append(tokens, invoiceCodePattern.FindAllString(name, -1)...)
	tokens = append(tokens, numericIDPattern.FindAllString(name, -1)...)
	return tokens
}
