package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/guardline/leads-cli/internal/export"
	"github.com/guardline/leads-cli/internal/model"
	"github.com/guardline/leads-cli/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export <output.xlsx>",
	Short: "Export stored leads to an XLSX report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		state, _ := cmd.Flags().GetString("state")
		status, _ := cmd.Flags().GetString("status")
		src, _ := cmd.Flags().GetString("source")

		leads, total, err := st.ListLeads(ctx, store.Filter{
			State:  state,
			Status: model.LeadStatus(status),
			Source: src,
		})
		if err != nil {
			return eris.Wrap(err, "export")
		}

		if err := export.WriteXLSX(args[0], leads); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Exported %d of %d leads to %s\n", len(leads), total, args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().String("state", "", "filter by US state (2-letter code or full name)")
	exportCmd.Flags().String("status", "", "filter by lead status")
	exportCmd.Flags().String("source", "", "filter by source name")

	rootCmd.AddCommand(exportCmd)
}
