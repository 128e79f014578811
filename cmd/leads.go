package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/guardline/leads-cli/internal/model"
	"github.com/guardline/leads-cli/internal/store"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Inspect and manage stored leads",
	Long:  "Commands for listing, viewing, and updating stored leads.",
}

// -- leads list --

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored leads",
	RunE: func(cmd *cobra.Command, _ []string) error {
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
		leadType, _ := cmd.Flags().GetString("type")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		filter := store.Filter{
			State:  state,
			Status: model.LeadStatus(status),
			Source: src,
			Type:   model.LeadType(leadType),
			Limit:  limit,
			Offset: offset,
		}

		leads, total, err := st.ListLeads(ctx, filter)
		if err != nil {
			return eris.Wrap(err, "leads list")
		}

		if len(leads) == 0 {
			fmt.Fprintln(os.Stderr, "No leads found.")
			return nil
		}

		formatLeadsList(os.Stdout, leads)
		fmt.Fprintf(os.Stdout, "\n%d of %d leads\n", len(leads), total)
		return nil
	},
}

// -- leads show --

var leadsShowCmd = &cobra.Command{
	Use:   "show <lead-id>",
	Short: "Show full details of a lead",
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

		l, err := st.GetLead(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "leads show")
		}
		if l == nil {
			return eris.Errorf("lead not found: %s", args[0])
		}

		out, err := json.MarshalIndent(l, "", "  ")
		if err != nil {
			return eris.Wrap(err, "leads show: marshal")
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	},
}

// -- leads status --

var leadsStatusCmd = &cobra.Command{
	Use:   "status <lead-id> <new|reviewed|contacted|closed>",
	Short: "Update a lead's lifecycle status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		status := model.LeadStatus(args[1])
		switch status {
		case model.LeadStatusNew, model.LeadStatusReviewed,
			model.LeadStatusContacted, model.LeadStatusClosed:
		default:
			return eris.Errorf("invalid status: %s", args[1])
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		if err := st.UpdateLeadStatus(ctx, args[0], status); err != nil {
			return eris.Wrap(err, "leads status")
		}
		fmt.Fprintf(os.Stdout, "Lead %s is now %s\n", args[0], status)
		return nil
	},
}

func init() {
	leadsListCmd.Flags().String("state", "", "filter by US state (2-letter code or full name)")
	leadsListCmd.Flags().String("status", "", "filter by lead status (new, reviewed, contacted, closed)")
	leadsListCmd.Flags().String("source", "", "filter by source name")
	leadsListCmd.Flags().String("type", "", "filter by lead type (job_posting, rfp)")
	leadsListCmd.Flags().Int("limit", 50, "max number of leads to display")
	leadsListCmd.Flags().Int("offset", 0, "number of leads to skip")

	leadsCmd.AddCommand(leadsListCmd)
	leadsCmd.AddCommand(leadsShowCmd)
	leadsCmd.AddCommand(leadsStatusCmd)
	rootCmd.AddCommand(leadsCmd)
}

// formatLeadsList writes a tabular list of leads to w.
func formatLeadsList(out io.Writer, leads []model.Lead) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tORGANIZATION\tTITLE\tSTATES\tCONF\tSTATUS\tSOURCE")
	_, _ = fmt.Fprintln(w, "--\t------------\t-----\t------\t----\t------\t------")

	for _, l := range leads {
		org := l.Organization.Name
		if len(org) > 30 {
			org = org[:27] + "..."
		}
		title := l.Opportunity.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}

		codes := ""
		for i, st := range l.States {
			if i > 0 {
				codes += ","
			}
			codes += st.Code
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%s\t%s\n",
			truncateID(l.ID),
			org,
			title,
			codes,
			l.ConfidenceScore,
			l.Status,
			l.Source,
		)
	}
	_ = w.Flush()
}

// truncateID shortens a UUID for display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
