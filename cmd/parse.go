package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kozaktomas/mrzname/internal/config"
	"github.com/kozaktomas/mrzname/internal/database"
	"github.com/kozaktomas/mrzname/internal/database/postgres"
	"github.com/kozaktomas/mrzname/internal/export"
	"github.com/kozaktomas/mrzname/internal/extract"
	"github.com/kozaktomas/mrzname/internal/ftm"
	"github.com/kozaktomas/mrzname/internal/metrics"
	"github.com/kozaktomas/mrzname/internal/pipeline"
	"github.com/kozaktomas/mrzname/internal/report"
)

var parseCmd = &cobra.Command{
	Use:   "parse [input-file]",
	Short: "Extract person records from an FTM entity file",
	Long: `Parse an FTM entity file (JSON array, {"entities": [...]} document or
newline-delimited JSON) and write one record per Latin name spelling of every
person to CSV and/or JSON files.

Examples:
  # Parse entities.ftm.json into output/persons_with_passports.{csv,json}
  mrzname parse

  # Only persons with a passport, JSON only
  mrzname parse sanctions.ftm.json --filter-passports --output-format json

  # Persist the run into PostgreSQL as well
  DATABASE_URL=postgres://localhost/mrz mrzname parse --store`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().String("output-format", export.FormatBoth, "Output format: csv, json or both")
	parseCmd.Flags().String("output-dir", "output", "Output directory")
	parseCmd.Flags().String("output-prefix", "persons_with_passports", "Output file prefix")
	parseCmd.Flags().Bool("filter-passports", false, "Only include persons who have passports")
	parseCmd.Flags().Int("workers", 0, "Number of extraction workers (default from MRZNAME_WORKERS or CPU count)")
	parseCmd.Flags().Int("max-combinations", 0, "Cap on synthesized name combinations per person, 0 = unbounded (default from MRZNAME_MAX_COMBINATIONS or 1000)")
	parseCmd.Flags().Bool("store", false, "Persist the run into PostgreSQL (requires DATABASE_URL)")
	parseCmd.Flags().Bool("quiet", false, "Do not show a progress bar")
}

func runParse(cmd *cobra.Command, args []string) error {
	inputFile := "entities.ftm.json"
	if len(args) > 0 {
		inputFile = args[0]
	}

	format := mustGetString(cmd, "output-format")
	if !export.ValidFormat(format) {
		return fmt.Errorf("invalid output format %q: must be csv, json or both", format)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Extraction.Workers = intFlagOr(cmd, "workers", cfg.Extraction.Workers)
	cfg.Extraction.MaxCombinations = intFlagOr(cmd, "max-combinations", cfg.Extraction.MaxCombinations)

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	synth, err := cfg.Extraction.Synthesizer()
	if err != nil {
		return err
	}

	store := mustGetBool(cmd, "store")
	if store {
		if err := connectStore(cfg); err != nil {
			return err
		}
		defer postgres.GetGlobalPool().Close()
	}

	fmt.Printf("Parsing file: %s\n", inputFile)
	fmt.Println("This may take a moment for large files...")

	entities, err := ftm.ReadFile(inputFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	filter := mustGetBool(cmd, "filter-passports")
	opts := pipeline.Options{
		Workers:         cfg.Extraction.Workers,
		FilterPassports: filter,
		Logger:          logger,
		Metrics:         metrics.New(),
	}
	if bar := newParseProgressBar(len(entities), mustGetBool(cmd, "quiet")); bar != nil {
		opts.Progress = bar
	}

	out, err := pipeline.Run(ctx, extract.New(synth), entities, opts)
	if err != nil {
		return err
	}
	if filter {
		fmt.Println("Filtered to persons with passports only")
	}

	report.Print(os.Stdout, out.Records, out.MissingLatin)

	paths := export.Paths{Dir: mustGetString(cmd, "output-dir"), Prefix: mustGetString(cmd, "output-prefix")}
	if err := os.MkdirAll(paths.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := writeOutputs(paths, format, out); err != nil {
		return err
	}

	if store {
		if err := storeRun(ctx, logger, inputFile, out); err != nil {
			return err
		}
	}

	fmt.Println("\nDone!")
	return nil
}

// writeOutputs saves the records in the requested formats. Nothing is written
// when there are no records.
func writeOutputs(paths export.Paths, format string, out *pipeline.Output) error {
	if format == export.FormatCSV || format == export.FormatBoth {
		if len(out.Records) == 0 {
			fmt.Println("No persons found in the dataset.")
		} else {
			if err := export.SaveCSV(paths.CSV(), out.Records); err != nil {
				return err
			}
			fmt.Printf("Data saved to %s\n", paths.CSV())
		}
	}

	if format == export.FormatJSON || format == export.FormatBoth {
		if len(out.Records) == 0 {
			fmt.Println("No persons found in the dataset.")
			return nil
		}
		if err := export.SaveJSON(paths.JSON(), out.Records); err != nil {
			return err
		}
		fmt.Printf("Data saved to %s\n", paths.JSON())

		if len(out.MissingLatin) > 0 {
			if err := export.SaveJSON(paths.MissingLatinReport(), out.MissingLatin); err != nil {
				return err
			}
			fmt.Printf("Non-Latin names report saved to %s\n", paths.MissingLatinReport())
		}
	}
	return nil
}

// connectStore initializes the PostgreSQL backend from cfg.
func connectStore(cfg *config.Config) error {
	if cfg.Database.URL == "" {
		return fmt.Errorf("--store requires DATABASE_URL")
	}
	fmt.Println("Connecting to PostgreSQL database...")
	if err := postgres.Initialize(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize PostgreSQL: %w", err)
	}
	return nil
}

func storeRun(ctx context.Context, logger *zap.SugaredLogger, inputFile string, out *pipeline.Output) error {
	writer, err := database.GetRunWriter(ctx)
	if err != nil {
		return err
	}
	run := database.StoredRun{
		ID:       out.RunID,
		Source:   filepath.Base(inputFile),
		Entities: out.Entities,
	}
	if err := writer.SaveRun(ctx, run, out.Records, out.MissingLatin); err != nil {
		return fmt.Errorf("storing run: %w", err)
	}
	logger.Infow("run stored", "run_id", out.RunID, "records", len(out.Records))
	fmt.Printf("Run stored in PostgreSQL with id %s\n", out.RunID)
	return nil
}

func newParseProgressBar(count int, quiet bool) *progressbar.ProgressBar {
	if quiet || count == 0 {
		return nil
	}
	return progressbar.NewOptions(count,
		progressbar.OptionSetDescription("Extracting persons"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("entities"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
	)
}
