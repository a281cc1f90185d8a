package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harshtikone/resumeforge/internal/db"
	"github.com/harshtikone/resumeforge/internal/export"
	"github.com/harshtikone/resumeforge/internal/ingestion"
	"github.com/harshtikone/resumeforge/internal/keywords"
	"github.com/harshtikone/resumeforge/internal/llm"
	"github.com/harshtikone/resumeforge/internal/pagefit"
	"github.com/harshtikone/resumeforge/internal/rendering"
	"github.com/harshtikone/resumeforge/internal/selection"
	"github.com/harshtikone/resumeforge/internal/types"
)

var (
	genConfigPath  string
	genUserID      string
	genJobTitle    string
	genCompany     string
	genJobFile     string
	genJobURL      string
	genDatabaseURL string
	genAPIKey      string
	genOutDir      string
	genTailor      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored resume from the command line",
	Long: `Generate a resume for a stored user against a job posting without running the server.
The posting text comes from --job (a text file) or --job-url. With --tailor the
Gemini collaborator rewrites the summary and bullets and produces a cover letter.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file")
	generateCmd.Flags().StringVarP(&genUserID, "user", "u", "", "User ID (required)")
	generateCmd.Flags().StringVar(&genJobTitle, "job-title", "", "Target job title")
	generateCmd.Flags().StringVarP(&genCompany, "company", "c", "", "Target company name")
	generateCmd.Flags().StringVarP(&genJobFile, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	generateCmd.Flags().StringVar(&genJobURL, "job-url", "", "URL to fetch the job posting from (mutually exclusive with --job)")
	generateCmd.Flags().StringVar(&genDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY env var)")
	generateCmd.Flags().StringVarP(&genOutDir, "out", "o", ".", "Directory to write artifacts into")
	generateCmd.Flags().BoolVar(&genTailor, "tailor", false, "Rewrite summary and bullets with the Gemini collaborator")

	_ = generateCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(genConfigPath)
	if err != nil {
		return err
	}
	if genDatabaseURL != "" {
		cfg.DatabaseURL = genDatabaseURL
	}
	if genAPIKey != "" {
		cfg.GeminiAPIKey = genAPIKey
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	userID, err := uuid.Parse(genUserID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	jobDescription, err := loadJobDescription(ctx)
	if err != nil {
		return err
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	profile, err := database.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("no profile found for user %s", userID)
	}

	experiences, err := database.ListExperiences(ctx, userID)
	if err != nil {
		return err
	}
	projects, err := database.ListProjects(ctx, userID)
	if err != nil {
		return err
	}
	skills, err := database.ListSkills(ctx, userID)
	if err != nil {
		return err
	}
	education, err := database.ListEducation(ctx, userID)
	if err != nil {
		return err
	}
	certifications, err := database.ListCertifications(ctx, userID)
	if err != nil {
		return err
	}

	kws := keywords.ExtractTop(jobDescription, cfg.MaxKeywords)
	caps := cfg.Caps()
	selectedExps := selection.Experiences(experiences, kws, caps)
	selectedProjs := selection.Projects(projects, kws, caps)
	selectedCerts := selection.Certifications(certifications, kws, caps)

	summaryOverride := ""
	coverLetter := ""
	if genTailor {
		if cfg.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required with --tailor")
		}
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		defer client.Close()

		result, err := llm.Tailor(ctx, client, llm.TailorRequest{
			Profile:        profile,
			Experiences:    selectedExps,
			Projects:       selectedProjs,
			JobTitle:       genJobTitle,
			CompanyName:    genCompany,
			JobDescription: jobDescription,
		})
		if err != nil {
			return fmt.Errorf("tailoring failed: %w", err)
		}

		selectedExps = llm.ApplyOptimizedExperiences(selectedExps, result.OptimizedExperiences)
		selectedProjs = llm.ApplyOptimizedProjects(selectedProjs, result.OptimizedProjects)
		summaryOverride = result.Summary
		coverLetter = result.CoverLetter
	}

	in := rendering.Input{
		Profile:         profile,
		Experiences:     selectedExps,
		Projects:        selectedProjs,
		Skills:          skills,
		Education:       education,
		Certifications:  selectedCerts,
		SummaryOverride: summaryOverride,
		JobTitle:        genJobTitle,
		CompanyName:     genCompany,
	}
	fitted := pagefit.Fit(in, cfg.FitOptions())
	in.Experiences = fitted.Experiences
	in.Projects = fitted.Projects
	lines := rendering.ResumeLines(in)

	if err := os.MkdirAll(genOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	resume := export.ResumeArtifact(lines, genCompany)
	if err := writeArtifact(resume); err != nil {
		return err
	}
	if coverLetter != "" {
		if err := writeArtifact(export.CoverLetterArtifact(coverLetter, genCompany)); err != nil {
			return err
		}
	}

	if genTailor {
		record := &types.HistoryRecord{
			UserID:         userID,
			JobTitle:       genJobTitle,
			CompanyName:    genCompany,
			JobDescription: jobDescription,
			SummaryUsed:    summaryOverride,
			MatchScore:     types.ApproxMatchScore(kws),
			Keywords:       kws,
		}
		for _, e := range fitted.Experiences {
			record.SelectedExperienceIDs = append(record.SelectedExperienceIDs, e.ID)
		}
		for _, p := range fitted.Projects {
			record.SelectedProjectIDs = append(record.SelectedProjectIDs, p.ID)
		}
		if _, err := database.InsertHistory(ctx, record); err != nil {
			return err
		}
	}

	log.Printf("Rendered %d lines (%d keywords matched)", fitted.Lines, len(kws))
	return nil
}

func loadJobDescription(ctx context.Context) (string, error) {
	switch {
	case genJobFile != "" && genJobURL != "":
		return "", fmt.Errorf("--job and --job-url are mutually exclusive")
	case genJobFile != "":
		data, err := os.ReadFile(genJobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(data), nil
	case genJobURL != "":
		return ingestion.FetchJobDescription(ctx, genJobURL)
	default:
		return "", nil
	}
}

func writeArtifact(a export.Artifact) error {
	path := filepath.Join(genOutDir, a.Filename)
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Printf("Wrote %s", path)
	return nil
}
