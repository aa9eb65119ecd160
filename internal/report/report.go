// Package report turns the actions of an analysis run into printed findings.
package report

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"

	"github.com/sumcheck/closed"
)

// A Finding is one diagnostic of a root action.
type Finding struct {
	Position token.Position
	// Category is the rule ID, or the host check's ID.
	Category string
	// Severity is that of the rule, or warning for host checks.
	Severity closed.Severity
	Message  string
	// Suppressed holds the justification of a suppressed finding.
	Suppressed string
	// Fixes are the suggested fixes, rendered.
	Fixes []string
}

func (f Finding) String() string {
	s := fmt.Sprintf("%s: %s [%s] %s", f.Position, f.Severity, f.Category, f.Message)
	if f.Suppressed != "" {
		s += " (suppressed: " + f.Suppressed + ")"
	}
	return s
}

// Collect the findings of the root actions of g, sorted by position.
//
// The result of suppressor, a closed.Suppressions,
// marks the findings of the same package that it suppresses.
// Duplicates, as from a package and its test variant, are dropped.
// Errors of root actions are joined.
func Collect(g *checker.Graph, suppressor *analysis.Analyzer) ([]Finding, error) {
	sups := map[string]closed.Suppressions{}
	var errs []error
	for _, a := range g.Roots {
		if a.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %s: %w", a.Package.ID, a.Analyzer.Name, a.Err))
			continue
		}
		if a.Analyzer == suppressor {
			if s, ok := a.Result.(closed.Suppressions); ok {
				sups[a.Package.ID] = s
			}
		}
	}

	type key struct {
		pos      token.Position
		category string
		message  string
	}
	seen := map[key]bool{}

	var acc []Finding
	for _, a := range g.Roots {
		fset := a.Package.Fset
		for _, d := range a.Diagnostics {
			f := Finding{
				Position: fset.Position(d.Pos),
				Category: d.Category,
				Severity: severity(d.Category),
				Message:  d.Message,
				Fixes:    renderFixes(fset, d.SuggestedFixes),
			}
			k := key{f.Position, f.Category, f.Message}
			if seen[k] {
				continue
			}
			seen[k] = true

			at := closed.Location{Position: f.Position, Pos: d.Pos}
			if s, ok := sups[a.Package.ID].Find(d.Category, at); ok {
				f.Suppressed = s.Justification
			}
			acc = append(acc, f)
		}
	}

	sort.SliceStable(acc, func(i, j int) bool {
		p, q := acc[i].Position, acc[j].Position
		if p.Filename != q.Filename {
			return p.Filename < q.Filename
		}
		if p.Line != q.Line {
			return p.Line < q.Line
		}
		return p.Column < q.Column
	})
	return acc, errors.Join(errs...)
}

func severity(category string) closed.Severity {
	if r, ok := closed.RuleByID(category); ok {
		return r.Severity
	}
	return closed.SeverityWarning
}

func renderFixes(fset *token.FileSet, fixes []analysis.SuggestedFix) []string {
	var acc []string
	for _, fix := range fixes {
		var b strings.Builder
		b.WriteString(fix.Message)
		for _, e := range fix.TextEdits {
			fmt.Fprintf(&b, "\n\t%s:", fset.Position(e.Pos))
			for _, ln := range strings.Split(strings.TrimRight(string(e.NewText), " \t\n"), "\n") {
				b.WriteString("\n\t+ " + strings.TrimSpace(ln))
			}
		}
		acc = append(acc, b.String())
	}
	return acc
}

// Options for Print.
type Options struct {
	ShowSuppressed bool
	ShowFixes      bool
}

// Print the findings to w and return how many are not suppressed.
func Print(w io.Writer, fs []Finding, opts Options) int {
	n := 0
	for _, f := range fs {
		if f.Suppressed == "" {
			n++
		} else if !opts.ShowSuppressed {
			continue
		}
		fmt.Fprintln(w, f)
		if opts.ShowFixes {
			for _, fix := range f.Fixes {
				fmt.Fprintln(w, "\tfix: "+fix)
			}
		}
	}
	return n
}
