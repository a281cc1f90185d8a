// Package main provides the entry point for the ResumeForge CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumeforge",
	Short: "ResumeForge resume tailoring service",
	Long:  "ResumeForge stores a career profile and generates one-page resumes tailored to job postings, with Gemini-assisted summaries and cover letters.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
