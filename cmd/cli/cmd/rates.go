// Package cmd - rates command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"motor-premium/core/output"
	"motor-premium/core/quote"
	"motor-premium/core/types"
)

var (
	ratesReq    quote.Request
	ratesFormat string
)

// noTier marks no row of the rates table as selected
const noTier = types.PackageTier(-1)

// ratesCmd shows the five tier rates of a vehicle without pricing it
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Show the hull rates of all package tiers for a vehicle",
	Long: `Classify a vehicle and show the hull rate of each package tier.
A "-" marks a tier that is not offered for the vehicle.`,
	Args: cobra.NoArgs,
	RunE: runRates,
}

func init() {
	rootCmd.AddCommand(ratesCmd)
	addProfileFlags(ratesCmd, &ratesReq)
	ratesCmd.Flags().StringVarP(&ratesFormat, "format", "f", "", "output format (cli, json)")
}

func runRates(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, err := loadStore(ctx)
	if err != nil {
		return err
	}
	profile, _, err := ratesReq.Inputs()
	if err != nil {
		return err
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	svc := quote.NewService(store)
	engine, _ := svc.Engine()
	class, rates := engine.Rates(profile)

	if outputFormat(ratesFormat) == "json" {
		return output.WriteJSON(cmd.OutOrStdout(), struct {
			Classification types.Classification `json:"classification"`
			Rates          types.TierRates      `json:"rates"`
		}{class, rates})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s, %d years (%s), liability %s\n", profile.Usage, class.AgeYears, class.Age, class.Liability)
	if class.Value != nil {
		fmt.Fprintf(w, "value band %s\n", class.Value)
	}
	fmt.Fprintln(w)
	output.TierRatesTable(rates, rates, noTier).Render(w, noColor)
	return nil
}
