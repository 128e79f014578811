// Package store persists accepted leads and serves the existing-leads
// snapshot the deduplicator compares against.
package store

import (
	"context"

	"github.com/guardline/leads-cli/internal/model"
)

// Filter specifies criteria for listing leads. State accepts either a
// 2-letter code or a full state name; the backends normalize it before
// querying the state index.
type Filter struct {
	State  string           `json:"state,omitempty"`
	Status model.LeadStatus `json:"status,omitempty"`
	Source string           `json:"source,omitempty"`
	Type   model.LeadType   `json:"lead_type,omitempty"`
	Limit  int              `json:"limit,omitempty"`
	Offset int              `json:"offset,omitempty"`
}

// Store defines the persistence interface for the lead pipeline. List
// returns leads in insertion (creation-time) order so the deduplicator's
// first-seen tie-break is stable across calls.
type Store interface {
	StoreLead(ctx context.Context, l model.Lead) (string, error)
	GetLead(ctx context.Context, id string) (*model.Lead, error)
	ListLeads(ctx context.Context, filter Filter) ([]model.Lead, int, error)
	UpdateLeadStatus(ctx context.Context, id string, status model.LeadStatus) error

	Migrate(ctx context.Context) error
	Close() error
}
