package cmd

import (
	"fmt"
	"os"
	"strings"

	cfgpkg "github.com/KaramelBytes/iris-cli/internal/config"
	"github.com/KaramelBytes/iris-cli/internal/dataset"
	"github.com/KaramelBytes/iris-cli/internal/logging"
	"github.com/KaramelBytes/iris-cli/internal/render"
	"github.com/KaramelBytes/iris-cli/internal/run"
	"github.com/KaramelBytes/iris-cli/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags (override config when set)
	cfgFile    string
	debug      bool
	flagData   string
	flagSheet  string
	flagOut    string
	flagFormat string

	// Loaded configuration and logger
	cfg *cfgpkg.Global
	logger = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "iris",
	Short: "Iris CLI: descriptive statistics, regressions and charts for the Iris dataset",
	Long: `Iris CLI summarises Fisher's Iris measurements, fits per-class linear
regressions with Pearson correlation, and renders histograms and scatter charts.
The built-in UCI dataset is used unless --data points at a CSV, TSV or XLSX file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.iris-cli/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "dataset path: .csv, .tsv or .xlsx (overrides config; default built-in Iris)")
	rootCmd.PersistentFlags().StringVar(&flagSheet, "sheet", "", "XLSX: sheet name (default first sheet)")
	rootCmd.PersistentFlags().StringVar(&flagOut, "out", "", "output directory for generated files (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "chart format: png|svg|pdf|html (overrides config)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		// config subcommands must work with a broken file so it can be fixed
		if isConfigCmd(cmd) {
			return nil
		}
		return cfg.Validate()
	}
}

func isConfigCmd(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}

func loadConfig() error {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("data") {
		cfg.DataPath = flagData
	}
	if f.Changed("sheet") {
		cfg.Sheet = flagSheet
	}
	if f.Changed("out") && flagOut != "" {
		cfg.OutputDir = flagOut
	}
	if f.Changed("format") && flagFormat != "" {
		cfg.ChartFormat = flagFormat
	}
	cfg.ChartFormat = strings.ToLower(strings.TrimSpace(cfg.ChartFormat))

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: %v\n", err)
	}
	if debug {
		level = zap.DebugLevel
	}
	logger = logging.New("iris", level, os.Stderr)
	logger.Debugw("config loaded", "data_path", cfg.DataPath, "output_dir", cfg.OutputDir, "chart_format", cfg.ChartFormat)
	return nil
}

// loadDataset reads the configured dataset, or the built-in one.
func loadDataset() (*dataset.Dataset, error) {
	var (
		ds  *dataset.Dataset
		err error
	)
	if cfg.DataPath == "" {
		ds, err = dataset.Iris()
	} else {
		path, e := utils.ExpandHome(cfg.DataPath)
		if e != nil {
			return nil, e
		}
		ds, err = dataset.LoadFile(path, dataset.LoadOptions{Sheet: cfg.Sheet})
	}
	if err != nil {
		return nil, err
	}
	logger.Debugw("dataset loaded", "name", ds.Name, "rows", ds.Len())
	return ds, nil
}

// partition splits ds by label and logs any unknown labels.
func partition(ds *dataset.Dataset) dataset.Partition {
	p := ds.Partition()
	if p.Flagged() {
		logger.Warnw("rows with unknown labels", "count", len(p.Unknown), "labels", p.UnknownLabels())
	}
	return p
}

func outputDir() (string, error) {
	dir, err := utils.ExpandHome(cfg.OutputDir)
	if err != nil {
		return "", err
	}
	if err := utils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	return dir, nil
}

func newRenderer() (render.Renderer, error) {
	return render.New(cfg.ChartFormat, cfg.ChartWidthCm, cfg.ChartHeightCm)
}

// openRun loads or starts the manifest of the output directory for ds.
func openRun(dir string, ds *dataset.Dataset) (*run.Run, error) {
	r, err := run.OpenOrNew(dir, ds.Name, ds.Len(), cfg.ChartFormat)
	if err != nil {
		return nil, err
	}
	logger.Debugw("run opened", "id", r.ID, "dir", dir, "artifacts", len(r.Artifacts))
	return r, nil
}
