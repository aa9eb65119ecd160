// Package closedfile checks that variants are declared next to their closed type.
package closedfile

import (
	"golang.org/x/tools/go/analysis"

	"github.com/sumcheck/closed/passes/closedfact"
)

const Doc = `check that variants share a file with their closed type

Every type that implements a closed interface of its package
must be declared in the file that declares the interface.`

var Analyzer = &analysis.Analyzer{
	Name:     "closedfile",
	Doc:      Doc,
	URL:      "https://pkg.go.dev/github.com/sumcheck/closed/passes/closedfile",
	Requires: []*analysis.Analyzer{closedfact.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	g := closedfact.Graph(pass)
	c := g.Checker()
	for _, s := range g.Decls() {
		for _, d := range c.Colocation(s) {
			closedfact.Report(pass, d)
		}
	}
	return nil, nil
}
