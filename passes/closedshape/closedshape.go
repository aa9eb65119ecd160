// Package closedshape checks that closed types are interfaces.
package closedshape

import (
	"golang.org/x/tools/go/analysis"

	"github.com/sumcheck/closed/passes/closedfact"
)

const Doc = `check that closed types cannot be instantiated

A type marked closed must be an interface.
Structs and other defined types have values of their own
so they cannot be the base of a closed hierarchy.`

var Analyzer = &analysis.Analyzer{
	Name:     "closedshape",
	Doc:      Doc,
	URL:      "https://pkg.go.dev/github.com/sumcheck/closed/passes/closedshape",
	Requires: []*analysis.Analyzer{closedfact.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	g := closedfact.Graph(pass)
	c := g.Checker()
	for _, s := range g.Decls() {
		if d := c.Shape(s); d != nil {
			closedfact.Report(pass, d)
		}
	}
	return nil, nil
}
