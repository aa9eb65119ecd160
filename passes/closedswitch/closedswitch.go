// Package closedswitch checks that type switches and assertion chains
// over closed types handle every variant.
package closedswitch

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sumcheck/closed/passes/closedfact"
)

const Doc = `check that dispatches over closed types are exhaustive

A dispatch is a type switch, or an if/else if chain of at least two
comma-ok type assertions, on a parameter whose type is a closed interface.
It is exhaustive if it has a default case or final else,
or if it tests exactly the variants of the interface.

Dispatches on anything other than a parameter are not checked.

For type switches a fix is suggested that adds a case for each
missing variant that can be named.`

var Analyzer = &analysis.Analyzer{
	Name:     "closedswitch",
	Doc:      Doc,
	URL:      "https://pkg.go.dev/github.com/sumcheck/closed/passes/closedswitch",
	Requires: []*analysis.Analyzer{inspect.Analyzer, closedfact.Analyzer},
	Run:      run,
}

var filter = []ast.Node{
	(*ast.TypeSwitchStmt)(nil),
	(*ast.IfStmt)(nil),
}

func run(pass *analysis.Pass) (any, error) {
	g := closedfact.Graph(pass)
	c := g.Checker()
	in := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	in.WithStack(filter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push || g.Skip(n.Pos()) {
			return true
		}
		d, ok := g.Dispatch(n, stack)
		if !ok {
			return true
		}
		diag := c.Exhaustive(d)
		if diag == nil {
			return true
		}

		var fixes []analysis.SuggestedFix
		if sw, ok := n.(*ast.TypeSwitchStmt); ok {
			cov, _ := c.Coverage(d)
			fixes = fillCases(pass, stack[0].(*ast.File), sw, cov)
		}
		closedfact.Report(pass, diag, fixes...)
		return true
	})
	return nil, nil
}
