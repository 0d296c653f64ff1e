// Package main provides the entry point for the resume screener.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_screener",
	Short: "Resume Screener web application",
	Long:  "Resume Screener filters uploaded resumes against job requirements — mandatory and optional keywords plus a minimum-experience threshold — and serves a ranked results page with keyword context and download links.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
