// Package cmd - batch command
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"motor-premium/core/output"
	"motor-premium/core/quote"
	"motor-premium/internal/config"
	"motor-premium/internal/errors"
)

var (
	batchFormat  string
	batchWorkers int
)

// batchCmd prices every request of a file
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Quote every request in a JSON or YAML file",
	Long: `Quote a list of requests concurrently. The file holds a list of objects
with the same fields as the quote command flags (value, usage,
registration_date, manufacture_year, seats, cargo_weight_kg, engine,
battery_value, tier, custom_rate, liability, accident_package,
renewal_percent). A rejected request does not stop the others.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "output format (cli, json)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "concurrent quotes (default from config)")
}

// readRequests decodes a request list by file extension
func readRequests(path string) ([]quote.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reqs []quote.Request
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &reqs)
	case ".json":
		err = json.Unmarshal(data, &reqs)
	default:
		return nil, errors.Newf(errors.TypeInput, "unsupported request file format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, errors.Parsing("invalid request file "+path, err)
	}
	return reqs, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	reqs, err := readRequests(args[0])
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	svc, err := newService(ctx, reg)
	if err != nil {
		return err
	}

	workers := batchWorkers
	if workers <= 0 {
		workers = config.Get().Quote.Workers
	}
	results, err := svc.Batch(ctx, reqs, workers)
	if err != nil {
		return err
	}

	formatter, err := output.New(outputFormat(batchFormat), noColor)
	if err != nil {
		return err
	}
	return formatter.RenderBatch(cmd.OutOrStdout(), results)
}
