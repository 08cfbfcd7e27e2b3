package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-composer/internal/config"
	"github.com/jonathan/cv-composer/internal/llm"
	"github.com/jonathan/cv-composer/internal/retrieval"
	"github.com/jonathan/cv-composer/internal/types"
	"github.com/jonathan/cv-composer/internal/validation"
)

var generateCommand = &cobra.Command{
	Use:   "generate <request>",
	Short: "Generate CV content grounded in retrieved examples",
	Long: `Runs the full loop: retrieve relevant examples, build a grounded prompt,
generate a draft with the configured model, and validate the draft against the
query and the retrieved context.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.ExactArgs(1),
	RunE: generateCmd,
}

var (
	generateConfigPath  string
	generateProfession  string
	generateSection     string
	generateTopK        int
	generateHybrid      bool
	generateNoCache     bool
	generateVerbose     bool
	generateAPIKey      string
	generateDatabaseURL string
	generateModel       string
)

func init() {
	generateCommand.Flags().StringVar(&generateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	generateCommand.Flags().StringVarP(&generateProfession, "profession", "p", "", "Profession facet filter")
	generateCommand.Flags().StringVarP(&generateSection, "section", "s", "", "CV section facet filter")
	generateCommand.Flags().IntVarP(&generateTopK, "top-k", "k", 0, "Number of grounding examples")
	generateCommand.Flags().BoolVar(&generateHybrid, "hybrid", false, "Append keyword matches missed by semantic search")
	generateCommand.Flags().BoolVar(&generateNoCache, "no-cache", false, "Bypass the query cache")
	generateCommand.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print retrieval and validation diagnostics")
	generateCommand.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	generateCommand.Flags().StringVar(&generateDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	generateCommand.Flags().StringVar(&generateModel, "model", "", "Generation model name")

	rootCmd.AddCommand(generateCommand)
}

func generateCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(generateConfigPath, config.Config{
		APIKey:          generateAPIKey,
		DatabaseURL:     generateDatabaseURL,
		GenerationModel: generateModel,
		TopK:            generateTopK,
		Verbose:         generateVerbose,
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
	result, err := rt.engine.RetrieveDetailed(ctx, retrieval.Request{
		Query:      query,
		Profession: types.ParseProfession(generateProfession),
		Section:    types.ParseSection(generateSection),
		TopK:       cfg.TopK,
		UseCache:   !generateNoCache,
		Hybrid:     generateHybrid,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		rt.printer.PrintRetrieval(result)
	}

	client, err := llm.NewGeminiClient(ctx, cfg.APIKey, cfg.GenerationModel)
	if err != nil {
		return err
	}
	defer client.Close()

	prompt := buildGenerationPrompt(query, retrieval.FormatForPrompt(result.Entries))
	draft, err := client.GenerateText(ctx, prompt)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	verdict := validation.New(rt.embedder).Validate(ctx, query, draft, result.Entries)

	_, _ = fmt.Fprintln(os.Stdout, draft)
	if cfg.Verbose {
		rt.printer.PrintVerdict(verdict)
	} else if !verdict.IsValid {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: draft failed validation (%v)\n", verdict.Reasons)
	}
	return nil
}

func buildGenerationPrompt(query, examples string) string {
	return fmt.Sprintf(`You are an expert CV writer. Use the examples below as grounding for tone, structure, and specificity. Write one concise piece of CV content for the request. Use strong action verbs and concrete numbers where truthful phrasing allows. Respond with the CV content only.

%s
Request: %s`, examples, query)
}
