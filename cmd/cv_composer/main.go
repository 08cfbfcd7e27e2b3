// Package main provides the cv_composer CLI: retrieval-augmented CV content
// generation over a faceted example corpus.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_composer",
	Short: "Retrieval-augmented CV content engine",
	Long:  "cv_composer retrieves professionally similar CV examples from a vectorized corpus and uses them to ground, generate, and validate new CV content.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
