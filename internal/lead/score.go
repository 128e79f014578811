// Package lead implements the scoring, enrichment, validation, and
// deduplication stages of the pipeline. Every operation is a pure function
// of its inputs; nothing here performs I/O or holds shared state.
package lead

import "github.com/guardline/leads-cli/internal/model"

// Fixed confidence weights. The score starts at a neutral base and each
// present field adds its weight; the total is capped at 1.0.
const (
	confidenceBase    = 0.5
	weightOrgName     = 0.1
	weightHasContacts = 0.05
	weightHasEmail    = 0.1
	weightHasPhone    = 0.1
	weightTitle       = 0.05
	weightDescription = 0.05
	weightLocation    = 0.05
)

// ConfidenceScore computes the completeness/quality score for a lead on
// [0, 1]. It is deterministic and derivable purely from the record's current
// field values; callers must re-invoke it after any mutation to the
// organization, contacts, or opportunity.
func ConfidenceScore(l model.Lead) float64 {
	score := confidenceBase

	if l.Organization.Name != "" {
		score += weightOrgName
	}

	if len(l.Contacts) > 0 {
		score += weightHasContacts

		var hasEmail, hasPhone bool
		for _, c := range l.Contacts {
			if c.Email != "" {
				hasEmail = true
			}
			if c.Phone != "" {
				hasPhone = true
			}
		}
		if hasEmail {
			score += weightHasEmail
		}
		if hasPhone {
			score += weightHasPhone
		}
	}

	if l.Opportunity.Title != "" {
		score += weightTitle
	}
	if l.Opportunity.Description != "" {
		score += weightDescription
	}
	if l.Opportunity.Location != "" {
		score += weightLocation
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
