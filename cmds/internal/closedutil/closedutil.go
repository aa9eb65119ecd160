package closedutil

import (
	"context"
	"fmt"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sumcheck/closed"
	"github.com/sumcheck/closed/gosym"
	"github.com/sumcheck/closed/passes/closedfile"
	"github.com/sumcheck/closed/passes/closedshape"
	"github.com/sumcheck/closed/passes/closedsuppress"
	"github.com/sumcheck/closed/passes/closedswitch"
	"github.com/sumcheck/closed/passes/implswitch"
)

// Analyzers run by the commands, reporting ones first.
var Analyzers = []*analysis.Analyzer{
	closedshape.Analyzer,
	closedfile.Analyzer,
	closedswitch.Analyzer,
	implswitch.Analyzer,
	closedsuppress.Analyzer,
}

// Load type checks the packages matching patterns from source.
func Load(ctx context.Context, tests bool, patterns ...string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.LoadAllSyntax,
		Tests:   tests,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, err
	}
	if n := packages.PrintErrors(pkgs); n > 0 {
		return nil, fmt.Errorf("%d errors loading packages", n)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages match %q", patterns)
	}
	return pkgs, nil
}

// Graph of p.
func Graph(p *packages.Package, opts gosym.Options) (*gosym.Graph, error) {
	return gosym.New(p.Fset, p.Syntax, p.Types, p.TypesInfo, nil, opts)
}

// VariantType returns the type to use in a case for v:
// a pointer if only the pointer implements base.
func VariantType(base, v closed.Symbol) types.Type {
	t := gosym.Type(v)
	iface, ok := gosym.Type(base).Underlying().(*types.Interface)
	if !ok || types.IsInterface(t) {
		return t
	}
	if n, ok := t.(*types.Named); ok && n.TypeParams().Len() > 0 {
		// generic methods are not instantiated so only receivers can tell
		if ptrOnly(n) {
			return types.NewPointer(t)
		}
		return t
	}
	if !types.Implements(t, iface) {
		return types.NewPointer(t)
	}
	return t
}

func ptrOnly(n *types.Named) bool {
	for i := 0; i < n.NumMethods(); i++ {
		sig := n.Method(i).Type().(*types.Signature)
		if _, ok := sig.Recv().Type().(*types.Pointer); ok {
			return true
		}
	}
	return false
}

// ExternallyExhaustible is true if every variant of h is exported
// so that packages other than its own can handle each one.
func ExternallyExhaustible(h *closed.Hierarchy) bool {
	for _, v := range h.Variants {
		tn, ok := gosym.TypeName(v)
		if !ok || !tn.Exported() {
			return false
		}
	}
	return true
}

// Find the hierarchy of t in hs or return nil.
func Find(t *types.TypeName, hs []*closed.Hierarchy) *closed.Hierarchy {
	for _, h := range hs {
		if tn, ok := gosym.TypeName(h.Base); ok && tn == t {
			return h
		}
	}
	return nil
}

// Hierarchies of the closed types declared in g's package.
func Hierarchies(g *gosym.Graph) []*closed.Hierarchy {
	c := g.Checker()
	var acc []*closed.Hierarchy
	for _, tn := range g.Closed() {
		if h := c.Hierarchy(g.Lookup(tn)); h != nil {
			acc = append(acc, h)
		}
	}
	return acc
}
