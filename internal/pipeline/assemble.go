// Package pipeline turns raw source records into stored leads: assembly,
// enrichment, validation, deduplication, persistence. Every step before the
// store call is a pure in-memory computation; callers own all I/O scheduling.
package pipeline

import (
	"strings"

	"github.com/google/uuid"

	"github.com/guardline/leads-cli/internal/extract"
	"github.com/guardline/leads-cli/internal/lead"
	"github.com/guardline/leads-cli/internal/model"
	"github.com/guardline/leads-cli/internal/source"
)

// Assemble builds a Lead from a raw source record. All text fields are
// concatenated for extraction, so contact details buried in a description
// are found regardless of which field carried them. The returned lead has an
// ID, state tags, and an initial confidence score; enrichment and validation
// happen later in the pipeline.
func Assemble(sourceName string, rec source.RawRecord) model.Lead {
	allText := joinNonEmpty(
		rec.Title, rec.OrgName(), rec.Location,
		rec.Description, rec.Requirements, rec.ContactInfo,
	)

	emails := extract.Emails(allText)
	phones := extract.Phones(allText)
	keywords := extract.DetectKeywords(allText)

	l := model.Lead{
		ID:        uuid.New().String(),
		Source:    sourceName,
		SourceURL: rec.SourceURL,
		Type:      leadType(rec.LeadType),
		Status:    model.LeadStatusNew,
		Organization: model.Organization{
			Name:         rec.OrgName(),
			IsGovernment: rec.IsGovernment(),
		},
		Opportunity: model.Opportunity{
			Title:        rec.Title,
			Description:  rec.Description,
			Requirements: requirements(rec.Requirements, keywords),
			Location:     rec.Location,
			Type:         opportunityType(keywords),
			IsArmed:      armedFlag(keywords),
		},
	}

	if len(emails) > 0 || len(phones) > 0 {
		var c model.Contact
		if len(emails) > 0 {
			c.Email = emails[0]
		}
		if len(phones) > 0 {
			c.Phone = phones[0]
		}
		l.Contacts = append(l.Contacts, c)
	}

	if dates := extract.Dates(rec.DueDate); len(dates) > 0 {
		l.Opportunity.EndDate = &dates[0]
	}

	l.States = extract.StatesFromFields(map[string]string{
		"location":        rec.Location,
		"description":     rec.Description,
		"title":           rec.Title,
		"contact_address": rec.ContactInfo,
	})

	l.ConfidenceScore = lead.ConfidenceScore(l)
	return l
}

func leadType(hint string) model.LeadType {
	if strings.EqualFold(strings.TrimSpace(hint), string(model.LeadTypeRFP)) {
		return model.LeadTypeRFP
	}
	return model.LeadTypeJobPosting
}

// opportunityType classifies by detected keywords: event beats construction
// beats general.
func opportunityType(keywords map[extract.KeywordCategory][]string) model.OpportunityType {
	if len(keywords[extract.CategoryEventType]) > 0 {
		return model.OpportunityTypeEvent
	}
	if len(keywords[extract.CategoryConstruction]) > 0 {
		return model.OpportunityTypeConstruction
	}
	return model.OpportunityTypeGeneral
}

// armedFlag resolves the armed flag from security-type keywords. "unarmed"
// wins over "armed" since the latter is a substring of the former. With no
// security-type keyword the flag stays unset so enrichment can fill it from
// the description.
func armedFlag(keywords map[extract.KeywordCategory][]string) *bool {
	terms := keywords[extract.CategorySecurityType]
	if len(terms) == 0 {
		return nil
	}
	var armed bool
	for _, term := range terms {
		if strings.Contains(term, "unarmed") {
			armed = false
			break
		}
		if strings.Contains(term, "armed") {
			armed = true
		}
	}
	return &armed
}

// requirements keeps the record's own requirements text, falling back to
// the detected requirement keywords.
func requirements(explicit string, keywords map[extract.KeywordCategory][]string) string {
	if explicit != "" {
		return explicit
	}
	return strings.Join(keywords[extract.CategoryRequirements], ", ")
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
