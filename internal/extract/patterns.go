// Package extract holds the pattern library and field extractors that turn
// raw scraped text into structured lead fields. Every function is a pure,
// best-effort heuristic: empty or absent input yields an empty result, and
// sub-matches that fail to parse are dropped rather than surfaced as errors.
package extract

import "regexp"

// emailPattern matches local@domain.tld with dotted labels and a 2+ letter TLD.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// firstLastLocalPattern matches a firstname.lastname local part: two
// letter-only tokens separated by a single dot.
var firstLastLocalPattern = regexp.MustCompile(`^[a-zA-Z]+\.[a-zA-Z]+$`)

// genericLocalParts are mailbox prefixes that indicate a shared inbox rather
// than a person.
var genericLocalParts = map[string]bool{
	"info":    true,
	"contact": true,
	"admin":   true,
	"sales":   true,
	"support": true,
	"hello":   true,
	"office":  true,
}

// freeMailDomains are consumer mail providers; anything else is treated as a
// business domain.
var freeMailDomains = map[string]bool{
	"gmail.com":      true,
	"yahoo.com":      true,
	"hotmail.com":    true,
	"outlook.com":    true,
	"aol.com":        true,
	"icloud.com":     true,
	"protonmail.com": true,
	"mail.com":       true,
	"zoho.com":       true,
}

// phonePatterns are tried in order; matches from all three are collected.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),                     // (123) 456-7890, 123-456-7890
	regexp.MustCompile(`\d{3}[-.\s]?\d{4}`),                                      // 456-7890
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),    // +1 (123) 456-7890
}

var nonDigitPattern = regexp.MustCompile(`\D`)

// datePatterns are the literal date shapes scanned for before parsing.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`),
	regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{2,4}`),
	regexp.MustCompile(`\d{1,2}\.\d{1,2}\.\d{2,4}`),
	regexp.MustCompile(`(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2},? \d{2,4}`),
}

// dateLayouts are attempted in order against each date match; the first
// successful parse wins.
var dateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"1-2-2006",
	"1-2-06",
	"1.2.2006",
	"1.2.06",
	"January 2, 2006",
	"January 2 2006",
}

// companySuffixes build the <CapitalizedPhrase> <Suffix> company patterns.
var companySuffixes = []string{
	"Inc", "LLC", "Ltd", "Corp", "Corporation", "Company", "Co",
	"Limited", "Group", "Holdings", "Enterprises", "Services",
	"Solutions", "Systems", "Technologies", "International",
}

// govIndicators mark government entities; they match on either side of a
// capitalized phrase.
var govIndicators = []string{
	"Department", "Agency", "Bureau", "Office", "Commission",
	"Authority", "Administration", "County", "City of", "State of",
	"Government", "Federal", "Municipal", "Public", "District",
}

// personNamePattern matches sequences of 2-3 capitalized words. High
// false-positive rate is an accepted limitation of this heuristic.
var personNamePattern = regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,2}`)

var (
	companyPatterns = buildCompanyPatterns()
	govPatterns     = buildGovPatterns()
	suffixStrips    = buildSuffixStrips()
)

func buildCompanyPatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(companySuffixes))
	for _, suffix := range companySuffixes {
		out = append(out, regexp.MustCompile(`([A-Z][A-Za-z0-9\s&',]+)\s+`+regexp.QuoteMeta(suffix)+`\b`))
	}
	return out
}

func buildGovPatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(govIndicators))
	for _, ind := range govIndicators {
		quoted := regexp.QuoteMeta(ind)
		out = append(out, regexp.MustCompile(
			`([A-Z][A-Za-z0-9\s&',]+\s+`+quoted+`|`+quoted+`\s+[A-Z][A-Za-z0-9\s&',]+)`))
	}
	return out
}

func buildSuffixStrips() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(companySuffixes))
	for _, suffix := range companySuffixes {
		out = append(out, regexp.MustCompile(`(?i)\s+`+regexp.QuoteMeta(suffix)+`\s*$`))
	}
	return out
}
