// Package closedfact finds the closed types of a package
// and shares them with its importers as facts.
//
// The other closed analyzers require this one
// and use the *gosym.Graph it returns.
package closedfact

import (
	"go/types"
	"reflect"

	"golang.org/x/tools/go/analysis"

	"github.com/sumcheck/closed"
	"github.com/sumcheck/closed/gosym"
)

const Doc = `find closed types and export them as facts

A closed type is an interface whose declaration carries the directive
//closed:union (see -marker). Its variants are the types of its
package that implement it.

Generated files are skipped unless -generated is set.
Files matching any of the -exclude patterns are skipped.`

var opts gosym.Options

var Analyzer = &analysis.Analyzer{
	Name:       "closedfact",
	Doc:        Doc,
	URL:        "https://pkg.go.dev/github.com/sumcheck/closed/passes/closedfact",
	Run:        run,
	FactTypes:  []analysis.Fact{new(gosym.Marked)},
	ResultType: reflect.TypeOf(new(gosym.Graph)),
}

func init() {
	opts.Bind(&Analyzer.Flags)
}

func run(pass *analysis.Pass) (any, error) {
	imported := map[*types.TypeName][]string{}
	for _, f := range pass.AllObjectFacts() {
		tn, ok := f.Object.(*types.TypeName)
		if !ok {
			continue
		}
		if m, ok := f.Fact.(*gosym.Marked); ok {
			imported[tn] = m.Directives
		}
	}

	g, err := gosym.New(pass.Fset, pass.Files, pass.Pkg, pass.TypesInfo, imported, opts)
	if err != nil {
		return nil, err
	}

	for _, tn := range g.Closed() {
		pass.ExportObjectFact(tn, &gosym.Marked{Directives: g.Directives(tn)})
	}
	return g, nil
}

// Graph returns the result of Analyzer for pass.
// The calling analyzer must require Analyzer.
func Graph(pass *analysis.Pass) *gosym.Graph {
	return pass.ResultOf[Analyzer].(*gosym.Graph)
}

// Report d on pass.
// The category of the analysis.Diagnostic is the rule ID.
func Report(pass *analysis.Pass, d *closed.Diagnostic, fixes ...analysis.SuggestedFix) {
	pass.Report(analysis.Diagnostic{
		Pos:            d.Location.Pos,
		End:            d.Location.End,
		Category:       d.Rule.ID,
		Message:        d.Message(),
		SuggestedFixes: fixes,
	})
}
