// Package closedsuppress finds the implswitch diagnostics
// that are false because the type switch is exhaustive over a closed type.
//
// The analyzer reports nothing.
// Its result is the closed.Suppressions for the package,
// which a driver uses to filter the implswitch diagnostics.
package closedsuppress

import (
	"go/ast"
	"reflect"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sumcheck/closed"
	"github.com/sumcheck/closed/passes/closedfact"
	"github.com/sumcheck/closed/passes/implswitch"
)

const Doc = `find implswitch diagnostics made moot by closed types

An implswitch diagnostic on a type switch over a closed type is
suppressed when the switch handles every variant or has a default case.`

var Analyzer = &analysis.Analyzer{
	Name:       "closedsuppress",
	Doc:        Doc,
	URL:        "https://pkg.go.dev/github.com/sumcheck/closed/passes/closedsuppress",
	Requires:   []*analysis.Analyzer{inspect.Analyzer, closedfact.Analyzer, implswitch.Analyzer},
	Run:        run,
	ResultType: reflect.TypeOf(closed.Suppressions(nil)),
}

func run(pass *analysis.Pass) (any, error) {
	findings := pass.ResultOf[implswitch.Analyzer].([]implswitch.Finding)
	if len(findings) == 0 {
		return closed.Suppressions(nil), nil
	}

	g := closedfact.Graph(pass)
	host := make([]closed.HostDiagnostic, len(findings))
	for i, f := range findings {
		host[i] = closed.HostDiagnostic{
			ID:       implswitch.Category,
			Location: g.Location(f.Pos, f.End),
		}
	}

	c := g.Checker()
	c.HostID = implswitch.Category

	var acc closed.Suppressions
	in := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	in.WithStack([]ast.Node{(*ast.TypeSwitchStmt)(nil)}, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push || g.Skip(n.Pos()) {
			return true
		}
		if d, ok := g.Dispatch(n, stack); ok {
			acc = append(acc, c.Suppress(d, host)...)
		}
		return true
	})
	return acc, nil
}
