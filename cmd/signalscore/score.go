package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dutchdutchdutch/signalscore/internal/harvest"
	"github.com/dutchdutchdutch/signalscore/internal/observability"
	"github.com/dutchdutchdutch/signalscore/internal/scoring"
	"github.com/dutchdutchdutch/signalscore/internal/sources"
)

var (
	scoreConfigPath string
	scoreURLs       []string
	scoreFiles      []string
	scoreName       string
	scoreJSON       bool
)

var scoreCmd = &cobra.Command{
	Use:   "score <company-url>",
	Short: "Score a single company",
	Long: `Crawl a company's site starting from the given URL, extract AI adoption
signals and print the readiness score. With --url flags the crawl is skipped
and only the listed pages are harvested. With --file flags no network access
happens at all; each flag supplies one pre-fetched text segment as
label:path, e.g. --file homepage:acme.txt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to JSON config file")
	scoreCmd.Flags().StringSliceVar(&scoreURLs, "url", nil, "Harvest only these URLs instead of crawling")
	scoreCmd.Flags().StringSliceVar(&scoreFiles, "file", nil, "Score a local text segment given as label:path")
	scoreCmd.Flags().StringVar(&scoreName, "name", "", "Company name (required with --file)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the full score record as JSON")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, args []string) error {
	if len(args) == 0 && len(scoreURLs) == 0 && len(scoreFiles) == 0 {
		return fmt.Errorf("a company URL argument, --url flags or --file flags are required")
	}

	cfg, err := resolveConfig(scoreConfigPath)
	if err != nil {
		return err
	}

	scoringCfg := scoring.DefaultConfig()
	if cfg.ScoringConfig != "" {
		scoringCfg, err = scoring.LoadConfig(cfg.ScoringConfig)
		if err != nil {
			return fmt.Errorf("failed to load scoring config: %w", err)
		}
	}

	analyzer, err := scoring.NewAnalyzer(scoringCfg)
	if err != nil {
		return err
	}
	calculator, err := scoring.NewCalculator(scoringCfg.Weights, scoringCfg.Caps, scoringCfg.Thresholds)
	if err != nil {
		return err
	}

	harvester := harvest.New(crawlOptions(cfg), cfg.MaxSatellites)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var result *harvest.Result
	switch {
	case len(scoreFiles) > 0:
		result, err = loadSegmentFiles(scoreName, scoreFiles)
	case len(scoreURLs) > 0:
		result, err = harvester.HarvestURLs(ctx, scoreURLs)
	default:
		if _, parseErr := url.ParseRequestURI(args[0]); parseErr != nil {
			return fmt.Errorf("invalid company URL %q: %w", args[0], parseErr)
		}
		result, err = harvester.Harvest(ctx, args[0])
	}
	if err != nil {
		return fmt.Errorf("harvest failed: %w", err)
	}

	signals := analyzer.Analyze(result.Segments)
	score := calculator.Calculate(result.CompanyName, signals)

	if scoreJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(score)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintHarvestSummary(result)
	}
	printer.PrintScoreReport(&score)
	return nil
}

// loadSegmentFiles builds a harvest result from local label:path pairs.
func loadSegmentFiles(name string, specs []string) (*harvest.Result, error) {
	if name == "" {
		return nil, fmt.Errorf("--name is required when scoring local files")
	}

	result := &harvest.Result{
		CompanyName: name,
		Segments:    make(map[sources.Label]string),
	}

	for _, spec := range specs {
		labelStr, path, ok := strings.Cut(spec, ":")
		if !ok {
			return nil, fmt.Errorf("invalid --file %q, expected label:path", spec)
		}
		label := sources.Parse(labelStr)
		if label == sources.Unknown {
			return nil, fmt.Errorf("unknown source label %q", labelStr)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read segment file: %w", err)
		}
		// Same-label segments concatenate on newlines, matching how the
		// harvester merges multiple pages into one segment.
		if existing := result.Segments[label]; existing != "" {
			result.Segments[label] = existing + "\n" + string(data)
		} else {
			result.Segments[label] = string(data)
		}
		result.Sources = append(result.Sources, harvest.SourceRecord{URL: "file://" + path, Label: label})
	}

	return result, nil
}
