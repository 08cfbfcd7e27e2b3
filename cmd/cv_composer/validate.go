package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-composer/internal/config"
	"github.com/jonathan/cv-composer/internal/retrieval"
	"github.com/jonathan/cv-composer/internal/types"
	"github.com/jonathan/cv-composer/internal/validation"
)

var validateCommand = &cobra.Command{
	Use:   "validate <query>",
	Short: "Validate a piece of CV content against the corpus",
	Long: `Checks generated or hand-written CV content for length, relevance to the
query, and grounding in the retrieved corpus examples. Content is read from
--text or --file.`,
	Args: cobra.ExactArgs(1),
	RunE: validateCmd,
}

var (
	validateConfigPath  string
	validateText        string
	validateFile        string
	validateProfession  string
	validateSection     string
	validateTopK        int
	validateAPIKey      string
	validateDatabaseURL string
)

func init() {
	validateCommand.Flags().StringVar(&validateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	validateCommand.Flags().StringVar(&validateText, "text", "", "CV content to validate (mutually exclusive with --file)")
	validateCommand.Flags().StringVar(&validateFile, "file", "", "File containing CV content to validate (mutually exclusive with --text)")
	validateCommand.Flags().StringVarP(&validateProfession, "profession", "p", "", "Profession facet filter for context retrieval")
	validateCommand.Flags().StringVarP(&validateSection, "section", "s", "", "CV section facet filter for context retrieval")
	validateCommand.Flags().IntVarP(&validateTopK, "top-k", "k", 0, "Number of context examples to retrieve")
	validateCommand.Flags().StringVar(&validateAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	validateCommand.Flags().StringVar(&validateDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(validateCommand)
}

func validateCmd(_ *cobra.Command, args []string) error {
	content, err := readValidationContent()
	if err != nil {
		return err
	}

	ctx := context.Background()

	cfg, err := resolveConfig(validateConfigPath, config.Config{
		APIKey:      validateAPIKey,
		DatabaseURL: validateDatabaseURL,
		TopK:        validateTopK,
	})
	if err != nil {
		return err
	}

	rt, err := newRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	query := args[0]
	entries, err := rt.engine.Retrieve(ctx, retrieval.Request{
		Query:      query,
		Profession: types.ParseProfession(validateProfession),
		Section:    types.ParseSection(validateSection),
		TopK:       cfg.TopK,
		UseCache:   true,
	})
	if err != nil {
		return err
	}

	verdict := validation.New(rt.embedder).Validate(ctx, query, content, entries)
	rt.printer.PrintVerdict(verdict)

	if !verdict.IsValid {
		return fmt.Errorf("content failed validation")
	}
	return nil
}

func readValidationContent() (string, error) {
	if validateText != "" && validateFile != "" {
		return "", fmt.Errorf("--text and --file are mutually exclusive; provide only one")
	}
	if validateText != "" {
		return validateText, nil
	}
	if validateFile != "" {
		data, err := os.ReadFile(validateFile)
		if err != nil {
			return "", fmt.Errorf("failed to read content file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return "", fmt.Errorf("either --text or --file must be provided")
}
