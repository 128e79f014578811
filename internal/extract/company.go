package extract

import (
	"regexp"
	"strings"
)

// CompanyCandidate is a company name found in free text.
type CompanyCandidate struct {
	Name         string `json:"name"`
	IsGovernment bool   `json:"is_government"`
}

// Companies extracts company name candidates from text. Patterns are applied
// per sentence so a greedy capture never spans sentence boundaries. Suffix
// patterns ("<Phrase> Inc") run before government patterns; matches under 3
// characters are discarded and duplicates collapse via the normalized form,
// keeping the first occurrence.
func Companies(text string) []CompanyCandidate {
	if text == "" {
		return nil
	}

	sentences := splitSentences(text)
	var candidates []CompanyCandidate

	for i, pattern := range companyPatterns {
		for _, sentence := range sentences {
			for _, m := range pattern.FindAllStringSubmatch(sentence, -1) {
				name := strings.TrimSpace(m[1])
				if len(name) <= 2 {
					continue
				}
				candidates = append(candidates, CompanyCandidate{
					Name: name + " " + companySuffixes[i],
				})
			}
		}
	}

	for _, pattern := range govPatterns {
		for _, sentence := range sentences {
			for _, m := range pattern.FindAllStringSubmatch(sentence, -1) {
				name := strings.TrimSpace(m[1])
				if len(name) <= 2 {
					continue
				}
				candidates = append(candidates, CompanyCandidate{
					Name:         name,
					IsGovernment: true,
				})
			}
		}
	}

	var out []CompanyCandidate
	seen := make(map[string]bool)
	for _, c := range candidates {
		normalized := NormalizeCompanyName(c.Name)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, c)
	}
	return out
}

// NormalizeCompanyName lowercases a name, strips a trailing entity suffix,
// removes punctuation, and collapses whitespace. Two names that normalize
// equal are treated as the same organization.
func NormalizeCompanyName(name string) string {
	if name == "" {
		return ""
	}

	normalized := strings.ToLower(name)
	for _, strip := range suffixStrips {
		normalized = strip.ReplaceAllString(normalized, "")
	}
	normalized = stripPunctuation(normalized)
	return strings.Join(strings.Fields(normalized), " ")
}

// IsGovernmentEntity reports whether a name contains a government indicator.
func IsGovernmentEntity(name string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	for _, ind := range govIndicators {
		if strings.Contains(lower, strings.ToLower(ind)) {
			return true
		}
	}
	return false
}

// PersonNames extracts candidate person names: sequences of 2-3 capitalized
// letter-only words, each longer than one character. No further
// disambiguation is attempted.
func PersonNames(text string) []string {
	if text == "" {
		return nil
	}

	var out []string
	for _, name := range personNamePattern.FindAllString(text, -1) {
		words := strings.Fields(name)
		if len(words) < 2 {
			continue
		}
		valid := true
		for _, w := range words {
			if len(w) <= 1 {
				valid = false
				break
			}
		}
		if valid {
			out = append(out, name)
		}
	}
	return out
}

var sentenceBoundary = regexp.MustCompile(`[.!?]+(?:\s+|$)`)

func splitSentences(text string) []string {
	return sentenceBoundary.Split(text, -1)
}

// stripPunctuation removes ASCII punctuation, mirroring the normalization
// applied on the deduplication path.
func stripPunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(`!"#$%&'()*+,-./:;<=>?@[\]^_`+"`"+`{|}~`, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
