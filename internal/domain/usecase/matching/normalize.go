package matching

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// legalSuffixes are legal-entity markers stripped before comparing partner
// names. Mixed German/English because bank statements carry both.
var legalSuffixes = map[string]struct{}{
	"gmbh": {}, "ag": {}, "kg": {}, "ug": {}, "ohg": {}, "se": {}, "ev": {},
	"inc": {}, "llc": {}, "ltd": {}, "plc": {}, "co": {}, "corp": {},
	"company": {}, "limited": {}, "sarl": {}, "bv": {},
}

// insignificantWords are too generic to count as a name match on their own
var insignificantWords = map[string]struct{}{
	"the": {}, "and": {}, "und": {}, "der": {}, "die": {}, "das": {},
	"for": {}, "von": {}, "fuer": {}, "für": {},
}

// NormalizeName lowercases a counterparty name, replaces punctuation with
// spaces and strips legal-entity suffixes
func NormalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r > 127:
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	words := strings.Fields(b.String())
	kept := words[:0]
	for _, w := range words {
		if _, legal := legalSuffixes[w]; legal {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// NamesMatch reports whether two counterparty names plausibly refer to the
// same party: after normalization either one contains the other, or at
// least one significant word overlaps (allowing a single-character typo on
// longer words).
func NamesMatch(a, b string) bool {
	na := NormalizeName(a)
	nb := NormalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}
	for _, wa := range strings.Fields(na) {
		if !isSignificant(wa) {
			continue
		}
		for _, wb := range strings.Fields(nb) {
			if !isSignificant(wb) {
				continue
			}
			if wa == wb {
				return true
			}
			if len(wa) >= 5 && len(wb) >= 5 && levenshtein.ComputeDistance(wa, wb) <= 1 {
				return true
			}
		}
	}
	return false
}

func isSignificant(word string) bool {
	if len(word) < 3 {
		return false
	}
	_, generic := insignificantWords[word]
	return !generic
}

// senderDomain extracts the lowercase domain from an RFC 5322 address like
// "Billing <billing@acme.com>" or a bare address
func senderDomain(sender string) string {
	s := sender
	if start := strings.LastIndex(s, "<"); start >= 0 {
		s = s[start+1:]
		if end := strings.Index(s, ">"); end >= 0 {
			s = s[:end]
		}
	}
	at := strings.LastIndex(s, "@")
	if at < 0 || at == len(s)-1 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(s[at+1:]))
}
