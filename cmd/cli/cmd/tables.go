// Package cmd - tables command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"motor-premium/core/determinism"
	"motor-premium/core/output"
)

var tablesFormat string

// tablesCmd describes the tariff in effect
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Show the tariff snapshot in effect",
	Long: `Load and validate the tariff, then print its snapshot id, content hash
and liability fee table. With --format json the full tables are printed.`,
	Args: cobra.NoArgs,
	RunE: runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.Flags().StringVarP(&tablesFormat, "format", "f", "", "output format (cli, json)")
}

func runTables(cmd *cobra.Command, args []string) error {
	store, err := loadStore(cmd.Context())
	if err != nil {
		return err
	}
	snap := store.Current()
	tables := snap.Tables()

	if outputFormat(tablesFormat) == "json" {
		return output.WriteJSON(cmd.OutOrStdout(), struct {
			ID     string `json:"id"`
			Hash   string `json:"hash"`
			Source string `json:"source"`
			Tables any    `json:"tables"`
		}{string(snap.ID), snap.ContentHash.Hex(), snap.Source, tables})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Snapshot: %s\n", snap.ID)
	fmt.Fprintf(w, "Hash:     %s\n", snap.ContentHash.Hex())
	fmt.Fprintf(w, "Source:   %s\n", snap.Source)
	fmt.Fprintf(w, "Contents: %s\n\n", tables.Summary())
	fmt.Fprintln(w, "Third-party liability fees:")
	for _, category := range determinism.SortedKeys(tables.Liability) {
		fmt.Fprintf(w, "  %-32s %20s\n", category, output.Money(tables.Liability[category]))
	}
	fmt.Fprintln(w, "\nPassenger accident packages (per seat):")
	for _, id := range determinism.SortedKeys(tables.Accident) {
		pkg := tables.Accident[id]
		fmt.Fprintf(w, "  %-12s private %12s  commercial %12s\n", id, output.Money(pkg.PrivatePerSeat), output.Money(pkg.CommercialPerSeat))
	}
	return nil
}
