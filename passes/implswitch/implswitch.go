// Package implswitch reports type switches that do not list every
// implementation of a sealed interface.
//
// An interface is sealed when it has an unexported method,
// so only its own package can implement it.
// The check is structural: it lists the concrete types of that package
// that satisfy the interface and knows nothing about closed types.
// The closedsuppress analyzer finds which of its diagnostics
// the closed checks have shown to be false.
// Both skip the files closedfact skips.
package implswitch

import (
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sumcheck/closed/passes/closedfact"
)

// Category of every diagnostic reported by Analyzer.
const Category = "implswitch"

const Doc = `report type switches missing implementations of a sealed interface

A type switch without a default case on a value whose type is an
interface with an unexported method should list every concrete type
of the interface's package that implements it.

Files skipped by closedfact, generated or matching -exclude, are not checked.`

var Analyzer = &analysis.Analyzer{
	Name:       "implswitch",
	Doc:        Doc,
	URL:        "https://pkg.go.dev/github.com/sumcheck/closed/passes/implswitch",
	Requires:   []*analysis.Analyzer{inspect.Analyzer, closedfact.Analyzer},
	Run:        run,
	ResultType: reflect.TypeOf([]Finding(nil)),
}

// A Finding is a type switch that misses implementations.
type Finding struct {
	Pos, End token.Pos
	// Type is the interface switched on.
	Type types.Type
	// Missing implementations, as named in the switch's package.
	Missing []string
}

func run(pass *analysis.Pass) (any, error) {
	in := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	g := closedfact.Graph(pass)

	var acc []Finding
	in.Preorder([]ast.Node{(*ast.TypeSwitchStmt)(nil)}, func(n ast.Node) {
		sw := n.(*ast.TypeSwitchStmt)
		if g.Skip(sw.Pos()) {
			return
		}
		f, ok := check(pass, sw)
		if !ok {
			return
		}
		acc = append(acc, f)
		pass.Report(analysis.Diagnostic{
			Pos:      f.Pos,
			End:      f.End,
			Category: Category,
			Message:  "type switch on " + types.TypeString(f.Type, types.RelativeTo(pass.Pkg)) + " is missing cases for " + strings.Join(f.Missing, ", "),
		})
	})
	return acc, nil
}

func subject(sw *ast.TypeSwitchStmt) ast.Expr {
	switch s := sw.Assign.(type) {
	case *ast.ExprStmt:
		return s.X.(*ast.TypeAssertExpr).X
	case *ast.AssignStmt:
		return s.Rhs[0].(*ast.TypeAssertExpr).X
	}
	return nil
}

func check(pass *analysis.Pass, sw *ast.TypeSwitchStmt) (Finding, bool) {
	x := subject(sw)
	if x == nil {
		return Finding{}, false
	}
	named, ok := types.Unalias(pass.TypesInfo.TypeOf(x)).(*types.Named)
	if !ok || named.TypeArgs().Len() > 0 {
		return Finding{}, false
	}
	iface, ok := named.Underlying().(*types.Interface)
	if !ok || !sealed(iface) {
		return Finding{}, false
	}

	listed := map[*types.TypeName]bool{}
	for _, s := range sw.Body.List {
		cc := s.(*ast.CaseClause)
		if cc.List == nil {
			return Finding{}, false
		}
		for _, e := range cc.List {
			t := pass.TypesInfo.TypeOf(e)
			if p, ok := t.(*types.Pointer); ok {
				t = p.Elem()
			}
			if n, ok := types.Unalias(t).(*types.Named); ok {
				listed[n.Origin().Obj()] = true
			}
		}
	}

	var missing []string
	for _, tn := range satisfiers(named.Obj().Pkg(), iface) {
		if listed[tn] || (!tn.Exported() && tn.Pkg() != pass.Pkg) {
			continue
		}
		missing = append(missing, types.TypeString(tn.Type(), types.RelativeTo(pass.Pkg)))
	}
	if len(missing) == 0 {
		return Finding{}, false
	}
	return Finding{
		Pos:     sw.Pos(),
		End:     sw.End(),
		Type:    named,
		Missing: missing,
	}, true
}

// sealed reports whether i has an unexported method.
func sealed(i *types.Interface) bool {
	for j := 0; j < i.NumMethods(); j++ {
		if !i.Method(j).Exported() {
			return true
		}
	}
	return false
}

// satisfiers of iface among the concrete types of pkg.
func satisfiers(pkg *types.Package, iface *types.Interface) []*types.TypeName {
	if pkg == nil {
		return nil
	}
	s := pkg.Scope()
	var acc []*types.TypeName
	for _, nm := range s.Names() {
		tn, ok := s.Lookup(nm).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		T := tn.Type()
		if types.IsInterface(T) {
			continue
		}
		if n, ok := T.(*types.Named); ok && n.TypeParams().Len() > 0 {
			continue
		}
		if types.Implements(T, iface) || types.Implements(types.NewPointer(T), iface) {
			acc = append(acc, tn)
		}
	}
	return acc
}
