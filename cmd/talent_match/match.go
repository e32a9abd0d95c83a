package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hire3x/talent-match/internal/config"
	"github.com/hire3x/talent-match/internal/matching"
	"github.com/hire3x/talent-match/internal/observability"
	"github.com/hire3x/talent-match/internal/outreach"
	"github.com/hire3x/talent-match/internal/sample"
	"github.com/hire3x/talent-match/internal/types"
)

var (
	matchConfigPath         string
	matchJobPath            string
	matchJobURL             string
	matchJobTitle           string
	matchJobCompany         string
	matchExperienceLevel    string
	matchTopK               int
	matchMinExperience      float64
	matchLocation           string
	matchMinAssessmentScore float64
	matchCandidatesPath     string
	matchSampleCount        int
	matchSampleSeed         int64
	matchUseBrowser         bool
	matchVerbose            bool
	matchJSON               bool
	matchEmail              bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank candidates against a job description",
	Long: `Rank stored candidate profiles against a job description.

The job comes from a JSON file (--job) or a job board URL (--job-url).
Candidates come from the configured PostgreSQL database, from a JSON file
(--candidates), or from the sample generator (--sample).`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to JSON config file")
	matchCmd.Flags().StringVar(&matchJobPath, "job", "", "Path to job description JSON file")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL of a job posting to fetch")
	matchCmd.Flags().StringVar(&matchJobTitle, "title", "", "Job title (required with --job-url)")
	matchCmd.Flags().StringVar(&matchJobCompany, "company", "", "Company name (required with --job-url)")
	matchCmd.Flags().StringVar(&matchExperienceLevel, "experience-level", "Mid-Level", "Experience level for --job-url jobs")
	matchCmd.Flags().IntVar(&matchTopK, "top-k", 0, "Number of matches to return (default 10)")
	matchCmd.Flags().Float64Var(&matchMinExperience, "min-experience", 0, "Hard filter: minimum years of experience")
	matchCmd.Flags().StringVar(&matchLocation, "location", "", "Hard filter: exact location")
	matchCmd.Flags().Float64Var(&matchMinAssessmentScore, "min-assessment-score", 0, "Hard filter: minimum average assessment score (0-100)")
	matchCmd.Flags().StringVar(&matchCandidatesPath, "candidates", "", "Path to a JSON array of candidate profiles to load before matching")
	matchCmd.Flags().IntVar(&matchSampleCount, "sample", 0, "Generate this many sample candidates before matching")
	matchCmd.Flags().Int64Var(&matchSampleSeed, "seed", 42, "Random seed for --sample")
	matchCmd.Flags().BoolVar(&matchUseBrowser, "use-browser", false, "Render --job-url pages in a headless browser")
	matchCmd.Flags().BoolVar(&matchVerbose, "verbose", false, "Print per-factor scores")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print results as JSON")
	matchCmd.Flags().BoolVar(&matchEmail, "email", false, "Also draft an outreach email for the top match")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Job:                matchJobPath,
		JobURL:             matchJobURL,
		TopK:               matchTopK,
		MinExperience:      matchMinExperience,
		Location:           matchLocation,
		MinAssessmentScore: matchMinAssessmentScore,
		APIKey:             os.Getenv("GEMINI_API_KEY"),
		EmbeddingModel:     os.Getenv("EMBEDDING_MODEL"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		UseBrowser:         matchUseBrowser,
		Verbose:            matchVerbose,
	}
	if matchConfigPath != "" {
		fileCfg, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if cfg.JobURL != "" && (matchJobTitle == "" || matchJobCompany == "") {
		return fmt.Errorf("--title and --company are required with --job-url")
	}

	ctx := cmd.Context()

	embedder, err := newEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		return err
	}
	defer func() { _ = embedder.Close() }()

	candidateStore, closeStore, err := openStore(ctx, cfg.DatabaseURL, embedder)
	if err != nil {
		return err
	}
	defer closeStore()

	if matchCandidatesPath != "" {
		candidates, err := loadCandidates(matchCandidatesPath)
		if err != nil {
			return err
		}
		if err := candidateStore.AddCandidates(ctx, candidates); err != nil {
			return err
		}
	}
	if matchSampleCount > 0 {
		generated := sample.New(matchSampleSeed).Candidates(matchSampleCount)
		if err := candidateStore.AddCandidates(ctx, generated); err != nil {
			return err
		}
	}

	var job *types.JobDescription
	if cfg.Job != "" {
		job, err = loadJob(cfg.Job)
	} else {
		job, err = jobFromURL(ctx, cfg.JobURL, matchJobTitle, matchJobCompany, matchExperienceLevel, cfg.UseBrowser, cfg.Verbose)
	}
	if err != nil {
		return err
	}

	opts := matching.Options{Location: cfg.Location}
	if cmd.Flags().Changed("min-experience") || cfg.MinExperience > 0 {
		minExp := cfg.MinExperience
		opts.MinExperience = &minExp
	}
	if cmd.Flags().Changed("min-assessment-score") || cfg.MinAssessmentScore > 0 {
		minScore := cfg.MinAssessmentScore
		opts.MinAssessmentScore = &minScore
	}

	matcher, err := matching.New(candidateStore)
	if err != nil {
		return err
	}
	matches, err := matcher.Match(ctx, job, cfg.TopK, opts)
	if err != nil {
		return err
	}

	if matchJSON {
		return printMatchesJSON(job, matches)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintJob(job)
		printer.PrintMatches(matches)
		if len(matches) > 0 {
			printer.PrintFactors(&matches[0])
		}
	} else {
		printMatches(job, matches)
	}

	if matchEmail && len(matches) > 0 {
		email, err := outreach.Generate(&matches[0], job)
		if err != nil {
			return err
		}
		if cfg.Verbose {
			observability.NewPrinter(os.Stdout).PrintEmail(email)
		} else {
			fmt.Printf("\n--- Outreach email for %s ---\n", matches[0].CandidateName)
			fmt.Printf("To: %s\nSubject: %s\n\n%s", email.To, email.Subject, email.Body)
		}
	}
	return nil
}

func printMatchesJSON(job *types.JobDescription, matches []types.CandidateMatch) error {
	output := map[string]any{
		"job_id":    job.ID,
		"job_title": job.Title,
		"total":     len(matches),
		"matches":   matches,
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func printMatches(job *types.JobDescription, matches []types.CandidateMatch) {
	if len(matches) == 0 {
		fmt.Printf("No candidates matched %q at %s.\n", job.Title, job.Company)
		return
	}

	fmt.Printf("Top %d matches for %q at %s:\n\n", len(matches), job.Title, job.Company)
	for i, m := range matches {
		fmt.Printf("%2d. %s  (overall %.3f)\n", i+1, m.CandidateName, m.OverallScore)
		fmt.Printf("    %s, %.1f years, %s\n", m.CurrentRole, m.YearsOfExperience, m.Location)
		if len(m.MatchingSkills) > 0 {
			fmt.Printf("    Matching skills: %s\n", strings.Join(m.MatchingSkills, ", "))
		}
	}
}
