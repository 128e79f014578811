// Package source provides generic lead-record sources. A source yields raw
// field records; it knows nothing about extraction or scoring. Site-specific
// selector logic is out of scope — records arrive already shaped, from JSONL
// files or JSON feed endpoints.
package source

import "context"

// RawRecord is one unprocessed posting or solicitation as a source delivers
// it. Text fields may be empty; the pipeline extracts what it can from
// whatever is present.
type RawRecord struct {
	Title        string `json:"title"`
	Company      string `json:"company,omitempty"`
	Agency       string `json:"agency,omitempty"`
	Department   string `json:"department,omitempty"`
	Location     string `json:"location,omitempty"`
	Description  string `json:"description,omitempty"`
	Requirements string `json:"requirements,omitempty"`
	ContactInfo  string `json:"contact_info,omitempty"`
	Salary       string `json:"salary,omitempty"`
	DueDate      string `json:"due_date,omitempty"`
	SourceURL    string `json:"source_url"`
	LeadType     string `json:"lead_type,omitempty"`
}

// OrgName returns the record's organization name: company for commercial
// postings, agency (with department appended when present) for government
// ones.
func (r RawRecord) OrgName() string {
	if r.Company != "" {
		return r.Company
	}
	if r.Agency != "" && r.Department != "" {
		return r.Agency + " - " + r.Department
	}
	if r.Agency != "" {
		return r.Agency
	}
	return r.Department
}

// IsGovernment reports whether the record came from a government agency.
func (r RawRecord) IsGovernment() bool {
	return r.Agency != "" && r.Company == ""
}

// Source yields raw records for the pipeline.
type Source interface {
	// Name identifies the source; it becomes Lead.Source.
	Name() string
	// Fetch returns all records currently available from the source.
	Fetch(ctx context.Context) ([]RawRecord, error)
}
