package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-ingest/internal/config"
	"github.com/jonathan/career-ingest/internal/db"
	"github.com/jonathan/career-ingest/internal/extraction"
	"github.com/jonathan/career-ingest/internal/ingestion"
	"github.com/jonathan/career-ingest/internal/observability"
	"github.com/jonathan/career-ingest/internal/pipeline"
	"github.com/jonathan/career-ingest/internal/schemas"
)

var ingestCommand = &cobra.Command{
	Use:   "ingest <export-file>",
	Short: "Ingest a crawler export file into the store",
	Long: `Reads a JSON export of crawled career pages, segments each page into job
postings, extracts structured fields, resolves each posting's employer to a
canonical company record, and persists everything with duplicate detection.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngestCmd,
}

var (
	ingestConfigPath  string
	ingestDatabaseURL string
	ingestJobKey      string
	ingestVocabulary  string
	ingestDryRun      bool
	ingestVerbose     bool
)

func init() {
	ingestCommand.Flags().StringVar(&ingestConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	ingestCommand.Flags().StringVar(&ingestDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	ingestCommand.Flags().StringVar(&ingestJobKey, "job-key", "", "Job dedup key strategy: source_url or title_company (default source_url)")
	ingestCommand.Flags().StringVar(&ingestVocabulary, "vocabulary", "", "Path to a JSON file overriding the built-in extraction vocabularies")
	ingestCommand.Flags().BoolVar(&ingestDryRun, "dry-run", false, "Run the full pipeline without writing to the store")
	ingestCommand.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print detailed per-entry information")

	rootCmd.AddCommand(ingestCommand)
}

func runIngestCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	exportPath := args[0]

	// Step 1: Load config file if provided
	var cfg config.Config
	if ingestConfigPath != "" {
		loadedCfg, err := config.LoadConfig(ingestConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	overrides := config.Config{
		DatabaseURL: ingestDatabaseURL,
		JobKey:      ingestJobKey,
		Vocabulary:  ingestVocabulary,
	}
	cfg = overrides.MergeWithDefaults(cfg)
	cfg.Verbose = cfg.Verbose || ingestVerbose

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (--db-url flag, config file, or DATABASE_URL env var)")
	}

	// Step 3: Load and validate the export file
	data, err := os.ReadFile(exportPath)
	if err != nil {
		return fmt.Errorf("failed to read export file %s: %w", exportPath, err)
	}
	if err := schemas.ValidateExport(data); err != nil {
		return fmt.Errorf("export file rejected: %w", err)
	}
	entries, err := ingestion.ParseExport(data)
	if err != nil {
		return err
	}
	log.Printf("loaded %d entries from %s", len(entries), exportPath)

	// Step 4: Vocabulary
	vocab := extraction.DefaultVocabulary()
	if cfg.Vocabulary != "" {
		vocab, err = extraction.LoadVocabulary(cfg.Vocabulary)
		if err != nil {
			return err
		}
	}

	// Step 5: Connect and migrate. A store failure here is fatal.
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return err
	}

	// Step 6: Run the pipeline
	runner := pipeline.NewRunner(store, store, extraction.NewExtractor(vocab), pipeline.Options{
		Strategy: pipeline.KeyStrategy(cfg.JobKey),
		DryRun:   ingestDryRun,
		Verbose:  cfg.Verbose,
	})
	stats, err := runner.Run(ctx, entries)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRunSummary(stats, ingestDryRun)
	if cfg.Verbose {
		printer.PrintTopSkills(stats.SkillCounts)
	}
	return nil
}
