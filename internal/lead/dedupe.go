package lead

import (
	"strings"

	"github.com/guardline/leads-cli/internal/model"
)

// Similarity weights and threshold for duplicate detection.
const (
	orgSimilarityWeight   = 0.6
	titleSimilarityWeight = 0.4
	duplicateThreshold    = 0.8
)

// DuplicateMatch reports the outcome of a duplicate check.
type DuplicateMatch struct {
	IsDuplicate bool
	MatchedID   string
	Similarity  float64
}

// FindDuplicate compares a candidate against existing leads using weighted
// organization-name and title similarity. The candidate matches the existing
// lead with the highest combined similarity above the threshold; equal
// scores keep the earliest lead in the sequence, so iteration order of
// existing is significant and must be preserved by the caller. Existing
// leads sharing the candidate's source URL are skipped — same-source updates
// are not duplicates — as are pairs missing an organization name or title.
//
// The caller must not mutate existing while the check is in flight; beyond
// that the function places no locking requirement.
func FindDuplicate(candidate model.Lead, existing []model.Lead) DuplicateMatch {
	orgName := candidate.Organization.Name
	title := candidate.Opportunity.Title
	if orgName == "" || title == "" {
		return DuplicateMatch{}
	}

	normalizedOrg := NormalizeText(orgName)
	normalizedTitle := NormalizeText(title)

	var match DuplicateMatch
	for _, e := range existing {
		if e.SourceURL == candidate.SourceURL {
			continue
		}
		if e.Organization.Name == "" || e.Opportunity.Title == "" {
			continue
		}

		orgSim := Similarity(normalizedOrg, NormalizeText(e.Organization.Name))
		titleSim := Similarity(normalizedTitle, NormalizeText(e.Opportunity.Title))
		combined := orgSimilarityWeight*orgSim + titleSimilarityWeight*titleSim

		if combined > duplicateThreshold && combined > match.Similarity {
			match.Similarity = combined
			match.MatchedID = e.ID
			match.IsDuplicate = true
		}
	}
	return match
}

// NormalizeText lowercases, strips punctuation, and collapses whitespace.
// Normalization is symmetric: NormalizeText("ABC, Inc.") equals
// NormalizeText("abc inc").
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if strings.ContainsRune(`!"#$%&'()*+,-./:;<=>?@[\]^_`+"`"+`{|}~`, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Similarity is the Jaccard index of the two strings' whitespace-split token
// sets: intersection over union, 0.0 when either side is empty.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}

	setA := tokenSet(a)
	setB := tokenSet(b)

	intersection := 0
	for tok := range setA {
		if setB[tok] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}
