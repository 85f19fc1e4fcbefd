// Package cmd provides the CLI commands for motor-premium.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	tarifffile "motor-premium/adapters/tariff/hcl"
	"motor-premium/core/output"
	"motor-premium/core/quote"
	"motor-premium/core/tariff"
	"motor-premium/internal/config"
	"motor-premium/internal/logging"
	"motor-premium/internal/metrics"
)

const version = "0.3.0"

var (
	cfgFile    string
	tablesFile string
	verbose    bool
	noColor    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "motor-premium",
	Short: "Rate motor insurance premiums",
	Long: `motor-premium rates motor vehicle insurance: hull damage by package tier,
compulsory third-party liability, passenger accident cover and renewal
adjustments, against a versioned tariff.

Examples:
  motor-premium quote --usage private_passenger --value 650000000 --registered 2021-03-15 --tier premium --liability
  motor-premium rates --usage tractor --manufacture-year 2015
  motor-premium batch requests.yaml --format json
  motor-premium tables --tariff tariff.hcl`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&tablesFile, "tariff", "", "HCL tariff file (default is the built-in tariff)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if tablesFile != "" {
		cfg.Tariff.TablesPath = tablesFile
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadStore seals the configured tariff into a store
func loadStore(ctx context.Context) (*tariff.Store, error) {
	path := config.Get().Tariff.TablesPath
	if path == "" {
		return tariff.NewStore(tariff.MustDefaultSnapshot()), nil
	}

	store := tariff.NewStore(tariff.MustDefaultSnapshot())
	snap, err := store.Reload(ctx, tarifffile.NewLoader(path), time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to load tariff %s: %w", path, err)
	}
	logging.Info("tariff loaded",
		zap.String("source", snap.Source),
		zap.String("snapshot", string(snap.ID)),
		zap.String("summary", snap.Tables().Summary()),
	)
	return store, nil
}

// newService wires the quote service to the configured tariff, logger
// and metrics
func newService(ctx context.Context, reg prometheus.Registerer) (*quote.Service, error) {
	store, err := loadStore(ctx)
	if err != nil {
		return nil, err
	}

	cfg := config.Get()
	opts := []quote.Option{quote.WithLogger(logging.Logger.Named("quote"))}
	if cfg.Metrics.Enabled {
		rec, err := metrics.NewPromRecorder(reg, cfg.Metrics.Namespace)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		opts = append(opts, quote.WithRecorder(rec))
	}
	return quote.NewService(store, opts...), nil
}

func outputFormat(flag string) string {
	if flag != "" {
		return flag
	}
	return config.Get().Quote.DefaultFormat
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "motor-premium version %s\n", version)
	},
}

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.WriteJSON(cmd.OutOrStdout(), config.Get())
	},
}
