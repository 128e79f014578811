package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/guardline/leads-cli/internal/lead"
	"github.com/guardline/leads-cli/internal/model"
	"github.com/guardline/leads-cli/internal/store"
)

// Pipeline runs assembled leads through enrichment, validation, and
// deduplication, storing the survivors.
type Pipeline struct {
	store     store.Store
	validator *lead.Validator
}

// New creates a Pipeline over the given store and validator.
func New(st store.Store, v *lead.Validator) *Pipeline {
	return &Pipeline{store: st, validator: v}
}

// Result reports what happened to one lead.
type Result struct {
	// Lead is the enriched lead; its ID is set when Accepted.
	Lead     model.Lead
	Accepted bool
	// Issues holds validation rule violations when the lead was rejected.
	Issues []string
	// Duplicate reports a deduplication hit; MatchedID and Similarity
	// identify the existing lead it collided with.
	Duplicate  bool
	MatchedID  string
	Similarity float64
}

// Process enriches, validates, and deduplicates one lead, storing it when it
// survives. existing is the deduplication snapshot; the caller must not
// mutate it while the call is in flight, and its iteration order decides
// dedup ties (insertion order is expected).
func (p *Pipeline) Process(ctx context.Context, l model.Lead, existing []model.Lead) (Result, error) {
	log := zap.L().With(
		zap.String("source", l.Source),
		zap.String("source_url", l.SourceURL),
	)

	enriched := lead.Enrich(l)
	res := Result{Lead: enriched}

	if valid, issues := p.validator.Validate(enriched); !valid {
		res.Issues = issues
		log.Debug("lead rejected", zap.Strings("issues", issues))
		return res, nil
	}

	if match := lead.FindDuplicate(enriched, existing); match.IsDuplicate {
		res.Duplicate = true
		res.MatchedID = match.MatchedID
		res.Similarity = match.Similarity
		log.Debug("lead is duplicate",
			zap.String("matched_id", match.MatchedID),
			zap.Float64("similarity", match.Similarity),
		)
		return res, nil
	}

	id, err := p.store.StoreLead(ctx, enriched)
	if err != nil {
		return res, err
	}
	res.Lead.ID = id
	res.Accepted = true
	log.Debug("lead stored",
		zap.String("lead_id", id),
		zap.Float64("confidence", enriched.ConfidenceScore),
	)
	return res, nil
}
