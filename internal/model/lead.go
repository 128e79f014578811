// Package model defines the lead data model shared by the extraction
// pipeline, the store, and the CLI.
package model

import "time"

// LeadType distinguishes the two kinds of opportunities the scrapers produce.
type LeadType string

const (
	LeadTypeJobPosting LeadType = "job_posting"
	LeadTypeRFP        LeadType = "rfp"
)

// LeadStatus is the lifecycle field mutated by downstream consumers.
// The pipeline only ever writes LeadStatusNew; transition rules live with
// the consumers.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusReviewed  LeadStatus = "reviewed"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusClosed    LeadStatus = "closed"
)

// OpportunityType classifies the engagement described by an opportunity.
type OpportunityType string

const (
	OpportunityTypeGeneral      OpportunityType = "general"
	OpportunityTypeEvent        OpportunityType = "event"
	OpportunityTypeConstruction OpportunityType = "construction"
)

// Organization is the entity offering the opportunity.
type Organization struct {
	Name         string `json:"name"`
	IsGovernment bool   `json:"is_government"`
	Industry     string `json:"industry,omitempty"`
}

// Contact is a person or mailbox reachable about the opportunity.
// Email and phone are independently extracted and either may be empty.
type Contact struct {
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
}

// HasReachableInfo reports whether the contact carries an email or phone.
func (c Contact) HasReachableInfo() bool {
	return c.Email != "" || c.Phone != ""
}

// Opportunity describes the work being offered.
type Opportunity struct {
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Requirements string          `json:"requirements,omitempty"`
	Location     string          `json:"location,omitempty"`
	Type         OpportunityType `json:"opportunity_type"`
	// IsArmed is tri-state: nil means no armed/unarmed keyword was present.
	IsArmed    *bool      `json:"is_armed,omitempty"`
	GuardCount *int       `json:"guard_count,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
}

// State is a canonical US state tag. The (code, name) pair is immutable
// once resolved from the process-wide states table.
type State struct {
	Code string `json:"state_code"`
	Name string `json:"state_name"`
}

// Lead is the central entity: a candidate business opportunity extracted
// from a source site.
//
// Contacts preserve extraction order; the first entry is treated as the
// primary contact by the scorer. States is derived data — re-running
// extraction recomputes it. ConfidenceScore is a pure function of the other
// fields and must be recomputed after any mutation to them.
type Lead struct {
	ID              string       `json:"id"`
	Source          string       `json:"source"`
	SourceURL       string       `json:"source_url"`
	Type            LeadType     `json:"lead_type"`
	Organization    Organization `json:"organization"`
	Contacts        []Contact    `json:"contacts,omitempty"`
	Opportunity     Opportunity  `json:"opportunity"`
	States          []State      `json:"states,omitempty"`
	ConfidenceScore float64      `json:"confidence_score"`
	Status          LeadStatus   `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// Clone returns a deep copy of the lead. Enrichment operates on copies so
// the caller's record is never aliased.
func (l Lead) Clone() Lead {
	out := l
	if l.Contacts != nil {
		out.Contacts = make([]Contact, len(l.Contacts))
		copy(out.Contacts, l.Contacts)
	}
	if l.States != nil {
		out.States = make([]State, len(l.States))
		copy(out.States, l.States)
	}
	if l.Opportunity.IsArmed != nil {
		v := *l.Opportunity.IsArmed
		out.Opportunity.IsArmed = &v
	}
	if l.Opportunity.GuardCount != nil {
		v := *l.Opportunity.GuardCount
		out.Opportunity.GuardCount = &v
	}
	if l.Opportunity.EndDate != nil {
		v := *l.Opportunity.EndDate
		out.Opportunity.EndDate = &v
	}
	return out
}

// HasContactInfo reports whether any contact has an email or phone.
func (l Lead) HasContactInfo() bool {
	for _, c := range l.Contacts {
		if c.HasReachableInfo() {
			return true
		}
	}
	return false
}
