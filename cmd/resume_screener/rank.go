package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank stored candidates",
	Long: `Ranks accepted candidates from previously saved analyses. With --department,
candidates assigned to that department are ranked by department fit; otherwise
all candidates are ranked by blended overall score.`,
	RunE: runRank,
}

var (
	rankDepartment  string
	rankTop         int
	rankLimit       int
	rankJSON        bool
	rankDatabaseURL string
)

func init() {
	rankCmd.Flags().StringVarP(&rankDepartment, "department", "d", "", "Classifier department to rank within (e.g. IT, HR, Finance)")
	rankCmd.Flags().IntVarP(&rankTop, "top", "t", 10, "Number of candidates to show")
	rankCmd.Flags().IntVar(&rankLimit, "limit", 500, "Maximum stored analyses to load")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Print results as JSON instead of formatted boxes")
	rankCmd.Flags().StringVar(&rankDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	url := rankDatabaseURL
	if url == "" {
		url = os.Getenv("DATABASE_URL")
	}
	if url == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	var analyses []*types.Analysis
	if rankDepartment != "" {
		analyses, err = database.ListByDepartment(ctx, rankDepartment, rankLimit)
	} else {
		analyses, err = database.ListAnalyses(ctx, rankLimit)
	}
	if err != nil {
		return err
	}

	candidates := make([]types.Candidate, 0, len(analyses))
	for _, analysis := range analyses {
		if analysis.Classification.Status != types.StatusAccepted {
			continue
		}
		candidates = append(candidates, analysis.Candidate())
	}

	var ranked []types.Candidate
	if rankDepartment != "" {
		ranked = ranking.ByDepartment(candidates, rankDepartment, rankTop)
	} else {
		ranked = ranking.Overall(candidates, rankTop)
	}

	if rankJSON {
		return printJSON(ranked)
	}

	observability.NewPrinter(os.Stdout).PrintRankings(rankDepartment, ranked)
	return nil
}
