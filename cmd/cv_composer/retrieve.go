package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-composer/internal/config"
	"github.com/jonathan/cv-composer/internal/retrieval"
	"github.com/jonathan/cv-composer/internal/types"
)

var retrieveCommand = &cobra.Command{
	Use:   "retrieve <query>",
	Short: "Retrieve the most relevant CV examples for a query",
	Long: `Embeds the query, ranks the corpus by cosine similarity within the requested
facets, re-ranks by content quality, and prints the top examples as a grounding block.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.ExactArgs(1),
	RunE: retrieveCmd,
}

var (
	retrieveConfigPath  string
	retrieveProfession  string
	retrieveSection     string
	retrieveTopK        int
	retrieveHybrid      bool
	retrieveNoCache     bool
	retrieveVerbose     bool
	retrieveAPIKey      string
	retrieveDatabaseURL string
)

func init() {
	retrieveCommand.Flags().StringVar(&retrieveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	retrieveCommand.Flags().StringVarP(&retrieveProfession, "profession", "p", "", "Profession facet filter (e.g. \"Backend Developer\")")
	retrieveCommand.Flags().StringVarP(&retrieveSection, "section", "s", "", "CV section facet filter (e.g. \"achievement\")")
	retrieveCommand.Flags().IntVarP(&retrieveTopK, "top-k", "k", 0, "Number of examples to retrieve")
	retrieveCommand.Flags().BoolVar(&retrieveHybrid, "hybrid", false, "Append keyword matches missed by semantic search")
	retrieveCommand.Flags().BoolVar(&retrieveNoCache, "no-cache", false, "Bypass the query cache for this call")
	retrieveCommand.Flags().BoolVarP(&retrieveVerbose, "verbose", "v", false, "Print detailed retrieval diagnostics")
	retrieveCommand.Flags().StringVar(&retrieveAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	retrieveCommand.Flags().StringVar(&retrieveDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(retrieveCommand)
}

func retrieveCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(retrieveConfigPath, config.Config{
		APIKey:      retrieveAPIKey,
		DatabaseURL: retrieveDatabaseURL,
		TopK:        retrieveTopK,
		Verbose:     retrieveVerbose,
	})
	if err != nil {
		return err
	}

	rt, err := newRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	result, err := rt.engine.RetrieveDetailed(ctx, retrieval.Request{
		Query:      args[0],
		Profession: types.ParseProfession(retrieveProfession),
		Section:    types.ParseSection(retrieveSection),
		TopK:       cfg.TopK,
		UseCache:   !retrieveNoCache,
		Hybrid:     retrieveHybrid,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		rt.printer.PrintRetrieval(result)
	}

	_, _ = fmt.Fprintln(os.Stdout, retrieval.FormatForPrompt(result.Entries))
	return nil
}
