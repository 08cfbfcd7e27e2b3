package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-composer/internal/config"
	"github.com/jonathan/cv-composer/internal/ingestion"
)

var importCommand = &cobra.Command{
	Use:   "import",
	Short: "Import corpus entries from JSON files or PDF resumes",
	Long: `Loads CV content into the corpus. JSON files are validated against
schemas/corpus_entries.schema.json; PDF resumes are split into summary,
achievement, skill, and responsibility entries. All entries are embedded
in batches before insertion.`,
	RunE: importCmd,
}

var (
	importConfigPath  string
	importJSONPath    string
	importPDFPath     string
	importPDFDir      string
	importCategory    string
	importAPIKey      string
	importDatabaseURL string
)

func init() {
	importCommand.Flags().StringVar(&importConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	importCommand.Flags().StringVar(&importJSONPath, "json", "", "Path to a JSON corpus file")
	importCommand.Flags().StringVar(&importPDFPath, "pdf", "", "Path to a single PDF resume")
	importCommand.Flags().StringVar(&importPDFDir, "pdf-dir", "", "Directory of PDF resumes; subdirectory names become categories")
	importCommand.Flags().StringVar(&importCategory, "category", "General", "Category for a single PDF import")
	importCommand.Flags().StringVar(&importAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	importCommand.Flags().StringVar(&importDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(importCommand)
}

func importCmd(_ *cobra.Command, _ []string) error {
	sources := 0
	for _, src := range []string{importJSONPath, importPDFPath, importPDFDir} {
		if src != "" {
			sources++
		}
	}
	if sources != 1 {
		return fmt.Errorf("exactly one of --json, --pdf, or --pdf-dir must be provided")
	}

	ctx := context.Background()

	cfg, err := resolveConfig(importConfigPath, config.Config{
		APIKey:      importAPIKey,
		DatabaseURL: importDatabaseURL,
	})
	if err != nil {
		return err
	}

	rt, err := newRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	importer := ingestion.NewImporter(rt.store, rt.embedder)

	var report *ingestion.ImportReport
	switch {
	case importJSONPath != "":
		report, err = importer.ImportJSON(ctx, importJSONPath)
	case importPDFPath != "":
		report, err = importer.ImportPDF(ctx, importPDFPath, importCategory)
	default:
		report, err = importer.ImportPDFDir(ctx, importPDFDir)
	}
	if err != nil {
		return err
	}

	rt.printer.PrintImportReport(report.Imported, report.Skipped, report.Failed, report.Errors)
	return nil
}
