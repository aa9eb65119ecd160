// Command closedcheck runs the closed type checks on Go packages.
//
// It reports declarations of closed types that are not interfaces,
// variants declared away from their closed type,
// and type switches and assertion chains over closed types that miss variants.
//
// It also runs implswitch, a check that knows nothing of closed types,
// and hides its findings on dispatches the closed checks show to be exhaustive.
//
// Settings are read from the nearest .closed.yaml unless --config is given.
// Flags override the file.
// The exit status is 1 if there are findings that are not suppressed.
//
// On Linux hosts without cgroup pressure files the metrics package logs
// that it disables PSI metrics when the command starts.
// The line is harmless and does not change the findings or the exit status.
package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/tools/go/analysis/checker"

	"github.com/sumcheck/closed"
	"github.com/sumcheck/closed/cmds/internal/closedutil"
	"github.com/sumcheck/closed/internal/config"
	"github.com/sumcheck/closed/internal/report"
	"github.com/sumcheck/closed/passes/closedfact"
	"github.com/sumcheck/closed/passes/closedsuppress"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("closedcheck: ")

	cmd := &cli.Command{
		Name:        "closedcheck",
		Usage:       "check closed types and exhaustive type switches",
		ArgsUsage:   "[packages]",
		Description: rules(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "read settings from `FILE` instead of the nearest " + config.FileName,
			},
			&cli.StringFlag{
				Name:  "marker",
				Usage: "`directive` that marks a closed type",
			},
			&cli.BoolFlag{
				Name:  "generated",
				Usage: "also check generated files",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "skip files matching the doublestar `PATTERN`, may be repeated",
			},
			&cli.BoolFlag{
				Name:  "tests",
				Usage: "also check test files",
			},
			&cli.BoolFlag{
				Name:  "show-suppressed",
				Usage: "print suppressed findings with their justification",
			},
			&cli.BoolFlag{
				Name:  "fix-preview",
				Usage: "print the suggested fixes",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "write counters in Prometheus text format to stderr",
			},
		},
		Action:                    check,
		DisableSliceFlagSeparator: true,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func rules() string {
	var b strings.Builder
	b.WriteString("rules:")
	for _, r := range closed.Rules {
		b.WriteString("\n  " + r.String())
	}
	b.WriteString("\n  implswitch warning: Type switch on a sealed interface misses implementations")
	return b.String()
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		p, ok := config.Find(wd)
		if !ok {
			return config.Default(), nil
		}
		path = p
	}
	return config.Load(path)
}

func check(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.IsSet("marker") {
		cfg.Marker = cmd.String("marker")
	}
	if cmd.IsSet("generated") {
		cfg.Generated = cmd.Bool("generated")
	}
	if cmd.IsSet("exclude") {
		cfg.Exclude = cmd.StringSlice("exclude")
	}
	if cmd.IsSet("tests") {
		cfg.Tests = cmd.Bool("tests")
	}
	if cmd.IsSet("show-suppressed") {
		cfg.ShowSuppressed = cmd.Bool("show-suppressed")
	}
	if err := cfg.Apply(&closedfact.Analyzer.Flags); err != nil {
		return err
	}

	patterns := cmd.Args().Slice()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	pkgs, err := closedutil.Load(ctx, cfg.Tests, patterns...)
	if err != nil {
		return err
	}

	graph, err := checker.Analyze(closedutil.Analyzers, pkgs, nil)
	if err != nil {
		return err
	}
	findings, err := report.Collect(graph, closedsuppress.Analyzer)
	if err != nil {
		return err
	}

	n := report.Print(os.Stdout, findings, report.Options{
		ShowSuppressed: cfg.ShowSuppressed,
		ShowFixes:      cmd.Bool("fix-preview"),
	})

	if cmd.Bool("stats") {
		st := report.NewStats()
		st.Packages(len(pkgs))
		st.Add(findings...)
		st.Write(os.Stderr)
	}

	if n > 0 {
		return cli.Exit("", 1)
	}
	return nil
}
