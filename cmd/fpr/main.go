package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/fpr/internal/config"
	"github.com/standardbeagle/fpr/internal/corpus"
	"github.com/standardbeagle/fpr/internal/metrics"
	"github.com/standardbeagle/fpr/internal/resolver"
	"github.com/standardbeagle/fpr/internal/types"
	"github.com/standardbeagle/fpr/internal/version"
)

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")

	// If root is specified and config path is default, look for config in root directory
	if rootFlag := c.String("root"); rootFlag != "" && configPath == config.DefaultConfigFile {
		configPath = filepath.Join(rootFlag, config.DefaultConfigFile)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	if includeFlags := c.StringSlice("include"); len(includeFlags) > 0 {
		cfg.Corpus.Include = includeFlags
	}
	if excludeFlags := c.StringSlice("exclude"); len(excludeFlags) > 0 {
		cfg.Corpus.Exclude = append(cfg.Corpus.Exclude, excludeFlags...)
	}
	if rootFlag := c.String("root"); rootFlag != "" {
		absRoot, err := filepath.Abs(rootFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path %q: %w", rootFlag, err)
		}
		cfg.Project.Root = absRoot
	}

	return cfg, nil
}

// buildBatchResolver scans the project corpus and assembles the resolution
// stack from configuration.
func buildBatchResolver(ctx context.Context, cfg *config.Config) (*corpus.Memory, *resolver.BatchResolver, error) {
	scanner := corpus.NewScanner(cfg.Project.Root, cfg.Corpus.Include, cfg.Corpus.Exclude)
	mem, err := scanner.Scan(ctx)
	if err != nil {
		return nil, nil, err
	}

	res, err := resolver.New(cfg.Thresholds())
	if err != nil {
		return nil, nil, err
	}

	batch := resolver.NewBatchResolver(mem, res)
	batch.SetWorkers(cfg.Resolver.Workers)
	return mem, batch, nil
}

func main() {
	app := &cli.App{
		Name:                   "fpr",
		Usage:                  "Fuzzy path resolution for navigation APIs and AI assistants",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultConfigFile,
			},
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Project root directory to scan (overrides config)",
			},
			&cli.StringSliceFlag{
				Name:  "include",
				Usage: "Include files matching glob patterns (e.g., --include 'src/**/*.ts')",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Exclude files matching glob patterns (e.g., --exclude '**/node_modules/**')",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "resolve",
				Aliases:   []string{"r"},
				Usage:     "Resolve one or more requested paths against the project corpus",
				ArgsUsage: "PATH [PATH...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
				},
				Action: resolveCommand,
			},
			{
				Name:   "scan",
				Usage:  "List the identifiers the corpus would contain",
				Action: scanCommand,
			},
			{
				Name:   "serve",
				Usage:  "Serve resolution as MCP tools over stdio",
				Action: serveCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func resolveCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("resolve requires at least one path argument")
	}

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	_, batch, err := buildBatchResolver(c.Context, cfg)
	if err != nil {
		return err
	}

	stats := metrics.NewResolutionStats()
	batch.SetStats(stats)

	report, err := batch.ResolveAll(c.Context, c.Args().Slice())
	if err != nil {
		return err
	}

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printReport(report)
	return nil
}

// printReport renders a batch report for humans.
func printReport(report *types.BatchReport) {
	for _, item := range report.Items {
		switch item.Kind {
		case types.MatchExact:
			fmt.Printf("%s\n", item.Requested)
		case types.MatchFuzzy:
			fmt.Printf("%s -> %s (%.0f%% confidence)\n",
				item.Requested, item.Result.Matched, item.Result.Confidence*100)
		default:
			if len(item.Result.Alternatives) > 0 {
				fmt.Printf("%s: not found, did you mean:\n", item.Requested)
				for _, alt := range item.Result.Alternatives {
					fmt.Printf("  %s\n", alt)
				}
			} else {
				fmt.Printf("%s: not found\n", item.Requested)
			}
		}
	}

	for _, record := range report.FuzzyMatches {
		fmt.Printf("Note: path %s was interpreted as %s (%.0f%% confidence)\n",
			record.Requested, record.Actual, record.Confidence*100)
	}
}

func scanCommand(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	scanner := corpus.NewScanner(cfg.Project.Root, cfg.Corpus.Include, cfg.Corpus.Exclude)
	mem, err := scanner.Scan(c.Context)
	if err != nil {
		return err
	}

	ids, err := mem.List(c.Context)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	fmt.Fprintf(os.Stderr, "%d identifiers (fingerprint %016x)\n", len(ids), mem.Fingerprint())
	return nil
}
