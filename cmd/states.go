package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/guardline/leads-cli/internal/extract"
)

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List recognized US states",
	Long:  "Prints the canonical state table used for location extraction and the --state filter.",
	RunE: func(_ *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "CODE\tNAME")
		for _, st := range extract.AllStates() {
			_, _ = fmt.Fprintf(w, "%s\t%s\n", st.Code, st.Name)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statesCmd)
}
