// Package main provides the entry point for the signalscore CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "signalscore",
	Short: "AI readiness scorer",
	Long:  "signalscore crawls a company's public web presence, extracts AI adoption signals from its pages and job postings, and computes a weighted readiness score.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
