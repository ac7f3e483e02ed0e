// Package main is the entry point for the campaign API server
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "campaign-api",
	Short: "Five Parsecs campaign API server",
	Long:  `Campaign API provides a REST interface for managing Five Parsecs From Home campaigns, crews, and characters.`,
}

func main() {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
}
