package gosym

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/sumcheck/closed"
)

// Dispatch decodes n into a closed.Dispatch.
//
// Type switches decode to *closed.SwitchStmt.
// An if statement whose condition is a comma-ok type assertion
// and whose else branches test the same value the same way
// decodes to *closed.AssertChain,
// provided there are at least two assertions.
// A chain is decoded from its first assertion on the value,
// so the branches before it may test anything.
//
// stack is the path from the file to n, inclusive,
// as supplied by (*inspector.Inspector).WithStack.
func (g *Graph) Dispatch(n ast.Node, stack []ast.Node) (closed.Dispatch, bool) {
	switch n := n.(type) {
	case *ast.TypeSwitchStmt:
		return g.typeSwitch(n, stack), true
	case *ast.IfStmt:
		x, _, _, ok := g.commaOk(n)
		if !ok || g.assertedAbove(x, stack) {
			return nil, false
		}
		d := g.assertChain(n, stack)
		if d == nil {
			return nil, false
		}
		return d, true
	}
	return nil, false
}

// switchSubject returns the expression a type switch is on
// and whether the switch binds it to a name.
func switchSubject(n *ast.TypeSwitchStmt) (ast.Expr, bool) {
	switch s := n.Assign.(type) {
	case *ast.ExprStmt:
		return s.X.(*ast.TypeAssertExpr).X, false
	case *ast.AssignStmt:
		return s.Rhs[0].(*ast.TypeAssertExpr).X, true
	}
	return nil, false
}

func (g *Graph) typeSwitch(n *ast.TypeSwitchStmt, stack []ast.Node) *closed.SwitchStmt {
	x, bound := switchSubject(n)
	kind := closed.TypeTest
	if bound {
		kind = closed.BindingTest
	}

	d := &closed.SwitchStmt{
		At:      g.Location(n.Pos(), n.End()),
		Subject: g.scrutinee(x, stack),
	}
	for _, s := range n.Body.List {
		cc := s.(*ast.CaseClause)
		if cc.List == nil {
			d.Cases = append(d.Cases, closed.Arm{
				Kind:     closed.Wildcard,
				Location: g.Location(cc.Pos(), cc.Colon),
			})
			continue
		}
		for _, e := range cc.List {
			d.Cases = append(d.Cases, g.arm(e, kind))
		}
	}
	return d
}

// arm classifies the type expression e.
// Pointers to named types test the named type.
func (g *Graph) arm(e ast.Expr, kind closed.ArmKind) closed.Arm {
	a := closed.Arm{
		Kind:     closed.OtherArm,
		Location: g.Location(e.Pos(), e.End()),
	}
	tv, ok := g.info.Types[e]
	if !ok || tv.IsNil() || !tv.IsType() {
		return a
	}
	t := tv.Type
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		t = p.Elem()
	}
	if s := g.Symbol(t); s != nil {
		a.Kind = kind
		a.Type = s
	}
	return a
}

// commaOk matches if v, ok := x.(T); ok and returns x, T,
// and whether v binds a name.
func (g *Graph) commaOk(n *ast.IfStmt) (x, typ ast.Expr, bound, ok bool) {
	as, isAssign := n.Init.(*ast.AssignStmt)
	if !isAssign || len(as.Lhs) != 2 || len(as.Rhs) != 1 {
		return nil, nil, false, false
	}
	if as.Tok != token.DEFINE && as.Tok != token.ASSIGN {
		return nil, nil, false, false
	}
	ta, isAssert := ast.Unparen(as.Rhs[0]).(*ast.TypeAssertExpr)
	if !isAssert || ta.Type == nil {
		return nil, nil, false, false
	}

	okID, isID := as.Lhs[1].(*ast.Ident)
	cond, isCond := ast.Unparen(n.Cond).(*ast.Ident)
	if !isID || !isCond || okID.Name == "_" {
		return nil, nil, false, false
	}
	if o := g.info.ObjectOf(okID); o == nil || o != g.info.ObjectOf(cond) {
		return nil, nil, false, false
	}

	v, isV := as.Lhs[0].(*ast.Ident)
	bound = !isV || v.Name != "_"
	return ta.X, ta.Type, bound, true
}

// assertedAbove reports whether an earlier if of the else if chain
// ending at the top of stack asserts on x.
func (g *Graph) assertedAbove(x ast.Expr, stack []ast.Node) bool {
	for i := len(stack) - 1; i >= 1; i-- {
		p, ok := stack[i-1].(*ast.IfStmt)
		if !ok || p.Else != stack[i] {
			return false
		}
		if y, _, _, ok := g.commaOk(p); ok && g.same(x, y) {
			return true
		}
	}
	return false
}

func (g *Graph) assertChain(head *ast.IfStmt, stack []ast.Node) *closed.AssertChain {
	x, _, _, ok := g.commaOk(head)
	if !ok {
		return nil
	}

	d := &closed.AssertChain{
		At:      g.Location(head.Pos(), head.End()),
		Subject: g.scrutinee(x, stack),
	}

	tests := 0
	for cur := head; cur != nil; {
		y, typ, bound, ok := g.commaOk(cur)
		if ok && g.same(x, y) {
			kind := closed.TypeTest
			if bound {
				kind = closed.BindingTest
			}
			d.Links = append(d.Links, g.arm(typ, kind))
			tests++
		} else {
			d.Links = append(d.Links, closed.Arm{
				Kind:     closed.OtherArm,
				Location: g.Location(cur.Pos(), cur.Body.Lbrace),
			})
		}

		switch el := cur.Else.(type) {
		case *ast.IfStmt:
			cur = el
		case *ast.BlockStmt:
			d.Links = append(d.Links, closed.Arm{
				Kind:     closed.Wildcard,
				Location: g.Location(el.Pos(), el.End()),
			})
			cur = nil
		default:
			cur = nil
		}
	}

	if tests < 2 {
		return nil
	}
	return d
}

// same reports whether x and y are the same value.
func (g *Graph) same(x, y ast.Expr) bool {
	x, y = ast.Unparen(x), ast.Unparen(y)
	xi, xok := x.(*ast.Ident)
	yi, yok := y.(*ast.Ident)
	if xok && yok {
		o := g.info.ObjectOf(xi)
		return o != nil && o == g.info.ObjectOf(yi)
	}
	return types.ExprString(x) == types.ExprString(y)
}

func (g *Graph) scrutinee(x ast.Expr, stack []ast.Node) closed.Scrutinee {
	x = ast.Unparen(x)
	sc := closed.Scrutinee{
		Name: types.ExprString(x),
		Type: g.Symbol(g.info.TypeOf(x)),
	}
	if id, ok := x.(*ast.Ident); ok {
		if v, ok := g.info.Uses[id].(*types.Var); ok {
			sc.Param = g.isParam(v, stack)
		}
	}
	return sc
}

// isParam reports whether v is a parameter of a function enclosing the top of stack.
// Receivers and results are not parameters.
func (g *Graph) isParam(v *types.Var, stack []ast.Node) bool {
	for i := len(stack) - 1; i >= 0; i-- {
		var ft *ast.FuncType
		switch f := stack[i].(type) {
		case *ast.FuncDecl:
			ft = f.Type
		case *ast.FuncLit:
			ft = f.Type
		default:
			continue
		}
		if ft.Params == nil {
			continue
		}
		for _, fld := range ft.Params.List {
			for _, nm := range fld.Names {
				if g.info.Defs[nm] == v {
					return true
				}
			}
		}
	}
	return false
}
