// Package cmd - quote command
package cmd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"motor-premium/core/output"
	"motor-premium/core/quote"
)

var (
	quoteReq    quote.Request
	quoteFormat string
)

// quoteCmd prices one vehicle
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute an itemized premium quote for one vehicle",
	Long: `Compute hull, liability and passenger accident premiums for one vehicle.

Examples:
  motor-premium quote --usage private_passenger --value 300000000 --manufacture-year 2020
  motor-premium quote --usage private_passenger --value 600000000 --engine electric \
      --battery-value 100000000 --registered 2023-06-01 --tier extended
  motor-premium quote --usage commercial_cargo --value 900000000 --weight 7000 \
      --manufacture-year 2018 --liability --accident nntx-20m --seats 3 --renewal -5`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)
	addProfileFlags(quoteCmd, &quoteReq)

	f := quoteCmd.Flags()
	f.StringVarP(&quoteReq.Tier, "tier", "t", "basic", "package tier (basic, standard, advanced, premium, extended or 0-4)")
	f.StringVar(&quoteReq.CustomRate, "custom-rate", "", "agent-negotiated hull rate in percent, replaces the tariff rate")
	f.BoolVar(&quoteReq.Liability, "liability", false, "add compulsory third-party liability")
	f.StringVar(&quoteReq.AccidentPackage, "accident", "", "passenger accident package id (e.g. nntx-10m)")
	f.StringVar(&quoteReq.RenewalPercent, "renewal", "", "renewal adjustment in percent of insured value, negative for a discount")
	f.StringVarP(&quoteFormat, "format", "f", "", "output format (cli, json)")
}

// addProfileFlags binds the vehicle flags shared by quote and rates
func addProfileFlags(cmd *cobra.Command, req *quote.Request) {
	f := cmd.Flags()
	f.StringVarP(&req.Usage, "usage", "u", "private_passenger", "usage category")
	f.Int64Var(&req.Value, "value", 0, "declared vehicle value in VND")
	f.StringVar(&req.RegistrationDate, "registered", "", "first registration date (2006-01-02 or 02/01/2006)")
	f.IntVar(&req.ManufactureYear, "manufacture-year", 0, "year of manufacture, used when no registration date is given")
	f.IntVar(&req.Seats, "seats", 5, "registered seat count")
	f.Int64Var(&req.CargoWeightKg, "weight", 0, "cargo weight in kg (cargo, tractor and trailer categories)")
	f.StringVar(&req.Engine, "engine", "combustion", "engine type (combustion, hybrid, electric)")
	f.Int64Var(&req.BatteryValue, "battery-value", 0, "declared traction battery value in VND")
}

func runQuote(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, err := newService(ctx, prometheus.NewRegistry())
	if err != nil {
		return err
	}

	rec, err := svc.QuoteRequest(ctx, quoteReq)
	if err != nil {
		return err
	}

	formatter, err := output.New(outputFormat(quoteFormat), noColor)
	if err != nil {
		return err
	}
	return formatter.RenderQuote(cmd.OutOrStdout(), rec)
}
