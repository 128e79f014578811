package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guardline/leads-cli/internal/pipeline"
	"github.com/guardline/leads-cli/internal/source"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest lead records from files and feeds",
	Long:  "Fetches raw records from JSONL files and JSON feed endpoints, runs them through extraction, enrichment, validation, and deduplication, and stores the accepted leads.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		files, _ := cmd.Flags().GetStringSlice("file")
		feeds, _ := cmd.Flags().GetStringSlice("feed")
		if len(files) == 0 && len(feeds) == 0 {
			return fmt.Errorf("at least one --file or --feed is required")
		}

		var sources []source.Source
		for _, path := range files {
			sources = append(sources, source.NewFileSource("", path))
		}
		for _, spec := range feeds {
			name, url := splitFeedSpec(spec)
			sources = append(sources, source.NewFeedSource(name, url, source.FeedOptions{
				UserAgent:  cfg.Ingest.UserAgent,
				RatePerSec: cfg.Ingest.FeedRate,
			}))
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		validator, err := initValidator()
		if err != nil {
			return err
		}

		p := pipeline.New(st, validator)
		summary, err := p.RunBatch(ctx, sources, cfg.Ingest.Concurrency)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout,
			"Sources: %d (%d failed)\nFound: %d\nAccepted: %d\nRejected: %d\nDuplicates: %d\n",
			summary.Sources, summary.Failed, summary.Found,
			summary.Accepted, summary.Rejected, summary.Duplicates,
		)
		return nil
	},
}

// splitFeedSpec parses "name=url" feed specs; a bare URL gets the name "feed".
func splitFeedSpec(spec string) (name, url string) {
	if n, u, ok := strings.Cut(spec, "="); ok && !strings.Contains(n, "/") {
		return n, u
	}
	return "feed", spec
}

func init() {
	ingestCmd.Flags().StringSlice("file", nil, "JSONL record file to ingest (repeatable)")
	ingestCmd.Flags().StringSlice("feed", nil, "JSON feed endpoint, optionally name=url (repeatable)")

	rootCmd.AddCommand(ingestCmd)
}
