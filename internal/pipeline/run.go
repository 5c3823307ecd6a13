// Package pipeline provides the high-level orchestration for resume
// analysis: extraction, classification, fraud detection and, when a
// target department is given, eligibility scoring and the final
// decision.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/classification"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/decision"
	"github.com/jonathan/resume-screener/internal/eligibility"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/fraud"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/types"
)

// Analyzer runs the analysis stages over resume text. It is immutable
// after construction and safe for concurrent use.
type Analyzer struct {
	classifier  *classification.Classifier
	departments *config.Registry
}

// NewAnalyzer builds an analyzer over the given department criteria.
// A nil registry uses the embedded defaults.
func NewAnalyzer(departments *config.Registry) *Analyzer {
	if departments == nil {
		departments = config.DefaultDepartments()
	}
	return &Analyzer{
		classifier:  classification.NewClassifier(),
		departments: departments,
	}
}

// Departments exposes the criteria registry the analyzer scores against.
func (a *Analyzer) Departments() *config.Registry {
	return a.departments
}

// Analyze runs extraction, classification and fraud detection over
// resume text. Eligibility and decision are left unset; they require a
// target department.
func (a *Analyzer) Analyze(text, filename string) *types.Analysis {
	start := time.Now()

	analysis := &types.Analysis{
		ID:           uuid.New(),
		Filename:     filename,
		PersonalInfo: extraction.PersonalInfo(text),
		Skills:       extraction.Skills(text),
		Experience:   extraction.Experience(text),
		Education:    extraction.Education(text),
		CreatedAt:    start.UTC(),
	}

	analysis.Classification = a.classifier.Classify(text, analysis.Skills)
	analysis.Fraud = fraud.Detect(text, analysis.Skills, analysis.Experience)
	analysis.ProcessingTime = time.Since(start)
	return analysis
}

// AnalyzeForDepartment runs the full pipeline including eligibility
// scoring against the named department and the final hiring decision.
func (a *Analyzer) AnalyzeForDepartment(text, filename, department string) *types.Analysis {
	analysis := a.Analyze(text, filename)

	start := time.Now()
	elig := eligibility.Score(analysis.Profile(), a.departments, department)
	dec := decision.Decide(analysis.Fraud.Score, analysis.Fraud, elig)

	analysis.Eligibility = &elig
	analysis.Decision = &dec
	analysis.ProcessingTime += time.Since(start)
	return analysis
}

// AnalyzeFile ingests a resume file and analyzes it. An empty
// department skips eligibility and decision.
func (a *Analyzer) AnalyzeFile(path, department string) (*types.Analysis, error) {
	doc, err := ingestion.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if department == "" {
		return a.Analyze(doc.Text, doc.Filename), nil
	}
	return a.AnalyzeForDepartment(doc.Text, doc.Filename, department), nil
}

// FileResult pairs one batch input with its outcome. Exactly one of
// Analysis and Err is set.
type FileResult struct {
	Path     string
	Analysis *types.Analysis
	Err      error
}

// ProgressFunc receives each file's result as it completes. Calls are
// serialized; implementations need no locking.
type ProgressFunc func(result FileResult)

// AnalyzeFiles processes resume files concurrently, at most workers at
// a time. Results are returned in input order; per-file failures are
// recorded in the result rather than aborting the batch. The context
// cancels any files not yet started.
func (a *Analyzer) AnalyzeFiles(ctx context.Context, paths []string, department string, workers int, onProgress ProgressFunc) []FileResult {
	if workers < 1 {
		workers = 1
	}

	results := make([]FileResult, len(paths))
	progress := make(chan int)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range progress {
			if onProgress != nil {
				onProgress(results[i])
			}
		}
	}()

	for i, path := range paths {
		g.Go(func() error {
			result := FileResult{Path: path}
			if err := ctx.Err(); err != nil {
				result.Err = fmt.Errorf("analysis canceled: %w", err)
			} else if analysis, err := a.AnalyzeFile(path, department); err != nil {
				result.Err = err
			} else {
				result.Analysis = analysis
			}
			results[i] = result
			progress <- i
			return nil
		})
	}

	g.Wait() //nolint:errcheck // workers only report through results
	close(progress)
	<-done

	return results
}

// Candidates projects the successful analyses of a batch into ranker
// input.
func Candidates(results []FileResult) []types.Candidate {
	candidates := make([]types.Candidate, 0, len(results))
	for _, result := range results {
		if result.Err != nil || result.Analysis == nil {
			continue
		}
		candidates = append(candidates, result.Analysis.Candidate())
	}
	return candidates
}
