package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Analyze one or more resume files",
	Long: `Runs the full analysis pipeline over resume files (.pdf, .docx or plain text):
extraction -> classification -> fraud detection, plus eligibility scoring and a
hiring decision when --department is given. Files are processed concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeDepartment  string
	analyzeCriteria    string
	analyzeWorkers     int
	analyzeTop         int
	analyzeJSON        bool
	analyzeSave        bool
	analyzeDatabaseURL string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeDepartment, "department", "d", "", "Department to score eligibility against (e.g. \"Software Engineering\")")
	analyzeCmd.Flags().StringVar(&analyzeCriteria, "criteria", "", "Path to a departments JSON file (defaults to built-in criteria)")
	analyzeCmd.Flags().IntVarP(&analyzeWorkers, "workers", "w", 4, "Number of files to process concurrently")
	analyzeCmd.Flags().IntVarP(&analyzeTop, "top", "t", 0, "Rank and print the top N candidates after analysis")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print results as JSON instead of formatted boxes")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Persist results to PostgreSQL")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	departments, err := loadCriteria(analyzeCriteria)
	if err != nil {
		return err
	}

	if analyzeDepartment != "" {
		if _, ok := departments.Get(analyzeDepartment); !ok {
			return fmt.Errorf("unknown department %q (available: %v)", analyzeDepartment, departments.Names())
		}
	}

	var database *db.DB
	if analyzeSave {
		url := analyzeDatabaseURL
		if url == "" {
			url = os.Getenv("DATABASE_URL")
		}
		if url == "" {
			return fmt.Errorf("--save requires --db-url or the DATABASE_URL environment variable")
		}
		database, err = db.Connect(ctx, url)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
	}

	analyzer := pipeline.NewAnalyzer(departments)
	printer := observability.NewPrinter(os.Stdout)

	results := analyzer.AnalyzeFiles(ctx, args, analyzeDepartment, analyzeWorkers, func(result pipeline.FileResult) {
		if result.Err != nil {
			fmt.Fprintf(os.Stderr, "failed: %s: %v\n", result.Path, result.Err)
		}
	})

	succeeded, failed, shortlisted := 0, 0, 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			continue
		}
		succeeded++
		if result.Analysis.Decision != nil && result.Analysis.Decision.Verdict == types.VerdictShortlisted {
			shortlisted++
		}

		if analyzeJSON {
			if err := printJSON(result.Analysis); err != nil {
				return err
			}
		} else {
			printer.PrintAnalysis(result.Analysis)
		}

		if database != nil {
			if err := database.SaveAnalysis(ctx, result.Analysis); err != nil {
				return fmt.Errorf("failed to save analysis for %s: %w", result.Path, err)
			}
		}
	}

	if !analyzeJSON {
		shown := shortlisted
		if analyzeDepartment == "" {
			shown = -1 // no decisions were made without a target department
		}
		printer.PrintBatchSummary(len(results), succeeded, failed, shown)
	}

	if analyzeTop > 0 {
		candidates := acceptedCandidates(results)
		ranked := ranking.Overall(candidates, analyzeTop)
		if analyzeJSON {
			if err := printJSON(ranked); err != nil {
				return err
			}
		} else {
			printer.PrintRankings("", ranked)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// loadCriteria resolves the department criteria registry.
func loadCriteria(path string) (*config.Registry, error) {
	if path == "" {
		return config.DefaultDepartments(), nil
	}
	registry, err := config.LoadDepartments(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load criteria: %w", err)
	}
	return registry, nil
}

// acceptedCandidates projects accepted analyses of a batch into ranker input.
func acceptedCandidates(results []pipeline.FileResult) []types.Candidate {
	candidates := make([]types.Candidate, 0, len(results))
	for _, result := range results {
		if result.Err != nil || result.Analysis == nil {
			continue
		}
		if result.Analysis.Classification.Status != types.StatusAccepted {
			continue
		}
		candidates = append(candidates, result.Analysis.Candidate())
	}
	return candidates
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
