// Package gosym presents the named types and dispatches of type checked Go code
// to the checks of package closed.
//
// A closed type is an interface marked with a directive.
// Its variants are the types of its package that implement it,
// directly or through a pointer.
package gosym

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sumcheck/closed"
)

// A Graph presents the named types of a type checked package,
// and those of the packages it imports, as closed.Symbols.
//
// A Graph is immutable once built and computes everything on demand.
type Graph struct {
	fset     *token.FileSet
	pkg      *types.Package
	info     *types.Info
	opts     Options
	local    map[*types.TypeName][]string
	imported map[*types.TypeName][]string
	skip     map[*token.File]bool
}

// New builds the Graph of pkg.
//
// imported holds the directives of closed types from other packages,
// usually recovered from facts.
func New(fset *token.FileSet, files []*ast.File, pkg *types.Package, info *types.Info, imported map[*types.TypeName][]string, opts Options) (*Graph, error) {
	for _, pat := range opts.Exclude {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("bad exclude pattern %q", pat)
		}
	}

	g := &Graph{
		fset:     fset,
		pkg:      pkg,
		info:     info,
		opts:     opts,
		local:    typeDirectives(files, info),
		imported: imported,
		skip:     map[*token.File]bool{},
	}

	for _, f := range files {
		tf := fset.File(f.Pos())
		if tf == nil {
			continue
		}
		if (!opts.Generated && ast.IsGenerated(f)) || excluded(opts.Exclude, tf.Name()) {
			g.skip[tf] = true
		}
	}
	return g, nil
}

// Package being analyzed.
func (g *Graph) Package() *types.Package {
	return g.pkg
}

// Checker configured with the Graph's marker.
func (g *Graph) Checker() *closed.Checker {
	return &closed.Checker{Marker: g.opts.marker()}
}

// Skip reports whether pos is in a generated or excluded file.
func (g *Graph) Skip(pos token.Pos) bool {
	tf := g.fset.File(pos)
	return tf == nil || g.skip[tf]
}

// Directives attached to the declaration of t.
func (g *Graph) Directives(t *types.TypeName) []string {
	if t.Pkg() == g.pkg {
		return g.local[t]
	}
	return g.imported[t]
}

func (g *Graph) marked(t *types.TypeName) bool {
	return hasDirective(g.Directives(t), g.opts.marker())
}

// Closed returns the marked types declared in the package, in source order.
func (g *Graph) Closed() []*types.TypeName {
	var acc []*types.TypeName
	for tn, ds := range g.local {
		if hasDirective(ds, g.opts.marker()) {
			acc = append(acc, tn)
		}
	}
	sort.Slice(acc, func(i, j int) bool {
		return acc[i].Pos() < acc[j].Pos()
	})
	return acc
}

// Decls returns the package level types declared in checked files.
func (g *Graph) Decls() []closed.Symbol {
	var acc []closed.Symbol
	for _, tn := range typeNames(g.pkg) {
		if g.Skip(tn.Pos()) {
			continue
		}
		acc = append(acc, g.Lookup(tn))
	}
	return acc
}

// Lookup the Symbol of t.
func (g *Graph) Lookup(t *types.TypeName) closed.Symbol {
	return typeSymbol{g: g, obj: t}
}

// Symbol of the named type t, or nil if t is not a named type.
func (g *Graph) Symbol(t types.Type) closed.Symbol {
	if t == nil {
		return nil
	}
	n, ok := types.Unalias(t).(*types.Named)
	if !ok || n.Obj().IsAlias() {
		return nil
	}
	if n.Origin() == n {
		return typeSymbol{g: g, obj: n.Obj()}
	}
	return typeSymbol{g: g, obj: n.Obj(), inst: n}
}

// Location of the source range [pos, end).
func (g *Graph) Location(pos, end token.Pos) closed.Location {
	return closed.Location{
		Position: g.fset.Position(pos),
		Pos:      pos,
		End:      end,
	}
}
