package closedswitch

import (
	"bytes"
	"go/ast"
	"go/token"
	"go/types"
	"path"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/sumcheck/closed"
	"github.com/sumcheck/closed/gosym"
)

// importsOfFile returns the imports of f as a map
// from the import path to the local name (or "" for the default).
func importsOfFile(f *ast.File) map[string]string {
	m := make(map[string]string, len(f.Imports))
	for _, is := range f.Imports {
		var nm string
		if is.Name != nil {
			nm = is.Name.Name
		}

		p, err := strconv.Unquote(is.Path.Value)
		if err != nil {
			continue
		}

		m[p] = nm
	}
	return m
}

type typeSerializer struct {
	buf  bytes.Buffer
	pkg  *types.Package
	imps map[string]string
	// scope of the switch, for names a new import would shadow.
	scope *types.Scope
	pos   token.Pos
	// adds are the imports needed by every type printed so far.
	adds    []*types.Package
	pending []*types.Package
	// ok is cleared when a package in the type is not nameable in the file.
	ok bool
}

func (p *typeSerializer) qualify(pkg *types.Package) string {
	if p.pkg == pkg {
		return ""
	}
	nm, imported := p.imps[pkg.Path()]
	switch {
	case !imported:
		if p.scope != nil {
			if _, o := p.scope.LookupParent(pkg.Name(), p.pos); o != nil {
				p.ok = false
			}
		}
		p.pending = append(p.pending, pkg)
		return pkg.Name()
	case nm == "_":
		p.ok = false
		return pkg.Name()
	case nm == ".":
		return ""
	case nm == "":
		return pkg.Name()
	}
	return nm
}

func (p *typeSerializer) print(t types.Type) (string, bool) {
	p.buf.Reset()
	p.ok = true
	p.pending = p.pending[:0]
	types.WriteType(&p.buf, t, p.qualify)
	if p.ok {
		for _, pkg := range p.pending {
			if _, ok := p.imps[pkg.Path()]; !ok {
				p.imps[pkg.Path()] = ""
				p.adds = append(p.adds, pkg)
			}
		}
	}
	return p.buf.String(), p.ok
}

// importEdit adds the imports of pkgs to f.
// A package whose name is not the last element of its path is imported by name.
func importEdit(f *ast.File, pkgs []*types.Package) analysis.TextEdit {
	spec := func(pkg *types.Package) string {
		if pkg.Name() == path.Base(pkg.Path()) {
			return strconv.Quote(pkg.Path())
		}
		return pkg.Name() + " " + strconv.Quote(pkg.Path())
	}

	for _, d := range f.Decls {
		gd, ok := d.(*ast.GenDecl)
		if !ok || gd.Tok != token.IMPORT || !gd.Lparen.IsValid() {
			continue
		}
		var b strings.Builder
		for _, pkg := range pkgs {
			b.WriteString("\t" + spec(pkg) + "\n")
		}
		return analysis.TextEdit{Pos: gd.Rparen, End: gd.Rparen, NewText: []byte(b.String())}
	}

	at := f.Name.End()
	if n := len(f.Imports); n > 0 {
		at = f.Imports[n-1].End()
	}
	var b strings.Builder
	for _, pkg := range pkgs {
		b.WriteString("\nimport " + spec(pkg))
	}
	if len(f.Imports) == 0 {
		return analysis.TextEdit{Pos: at, End: at, NewText: []byte("\n" + b.String())}
	}
	return analysis.TextEdit{Pos: at, End: at, NewText: []byte(b.String())}
}

// fillCases suggests a case clause at the end of sw
// for each missing variant that can be named in f,
// importing the variant's package if needed.
//
// Generic variants are left out since their type arguments are unknown.
func fillCases(pass *analysis.Pass, f *ast.File, sw *ast.TypeSwitchStmt, cov *closed.Coverage) []analysis.SuggestedFix {
	if cov == nil {
		return nil
	}
	iface, ok := gosym.Type(cov.Base).Underlying().(*types.Interface)
	if !ok {
		return nil
	}

	p := &typeSerializer{
		pkg:   pass.Pkg,
		imps:  importsOfFile(f),
		scope: pass.TypesInfo.Scopes[sw],
		pos:   sw.Pos(),
	}
	// the closing brace is indented by tabs, as gofmt leaves it
	indent := strings.Repeat("\t", pass.Fset.Position(sw.Body.Rbrace).Column-1)

	var buf strings.Builder
	for _, v := range cov.Missing {
		tn, ok := gosym.TypeName(v)
		if !ok || (!tn.Exported() && tn.Pkg() != pass.Pkg) {
			continue
		}
		t := gosym.Type(v)
		if n, ok := t.(*types.Named); ok && n.TypeParams().Len() > 0 {
			continue
		}
		if !types.IsInterface(t) && !types.Implements(t, iface) {
			t = types.NewPointer(t)
		}

		s, ok := p.print(t)
		if !ok {
			continue
		}
		buf.WriteString("case " + s + ":\n" + indent)
	}
	if buf.Len() == 0 {
		return nil
	}

	edits := []analysis.TextEdit{{
		Pos:     sw.Body.Rbrace,
		End:     sw.Body.Rbrace,
		NewText: []byte(buf.String()),
	}}
	if len(p.adds) > 0 {
		edits = append([]analysis.TextEdit{importEdit(f, p.adds)}, edits...)
	}
	return []analysis.SuggestedFix{{
		Message:   "Add cases for missing variants",
		TextEdits: edits,
	}}
}
