package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/guardline/leads-cli/internal/config"
	"github.com/guardline/leads-cli/internal/lead"
	"github.com/guardline/leads-cli/internal/store"
)

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		path := cfg.Store.Path
		if path == "" {
			path = "leads.db"
		}
		return store.NewSQLite(path)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

func initValidator() (*lead.Validator, error) {
	overrides, err := config.LoadKeywordOverrides(cfg.Pipeline.KeywordsFile)
	if err != nil {
		return nil, err
	}

	opts := []lead.ValidatorOption{
		lead.WithMinConfidence(cfg.Pipeline.MinConfidence),
	}
	if len(overrides.Keywords) > 0 {
		opts = append(opts, lead.WithExtraKeywords(overrides.Keywords))
	}
	if len(overrides.Blacklist) > 0 {
		opts = append(opts, lead.WithExtraBlacklist(overrides.Blacklist))
	}
	return lead.NewValidator(opts...), nil
}
