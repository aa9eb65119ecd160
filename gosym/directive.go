package gosym

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"
)

// directives returns the names of the //name:arg directives in cg.
//
// A directive has no space after the //
// and its name contains a colon, as in //closed:union or //go:generate.
func directives(cg *ast.CommentGroup) []string {
	if cg == nil {
		return nil
	}
	var acc []string
	for _, c := range cg.List {
		text, ok := strings.CutPrefix(c.Text, "//")
		if !ok || text == "" || text[0] == ' ' || text[0] == '\t' {
			continue
		}
		nm := text
		if i := strings.IndexAny(text, " \t"); i >= 0 {
			nm = text[:i]
		}
		if strings.Contains(nm, ":") {
			acc = append(acc, nm)
		}
	}
	return acc
}

// typeDirectives finds the directives attached to each package level type declaration.
//
// Both the doc of the type keyword and the doc of the TypeSpec count,
// but the doc of a parenthesized group only counts for a group of one.
func typeDirectives(files []*ast.File, info *types.Info) map[*types.TypeName][]string {
	m := map[*types.TypeName][]string{}
	for _, f := range files {
		for _, d := range f.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			shared := gd.Doc
			if gd.Lparen.IsValid() && len(gd.Specs) != 1 {
				shared = nil
			}

			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				tn, ok := info.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}

				ds := append(directives(shared), directives(ts.Doc)...)
				if len(ds) > 0 {
					m[tn] = ds
				}
			}
		}
	}
	return m
}

func hasDirective(ds []string, name string) bool {
	for _, d := range ds {
		if d == name {
			return true
		}
	}
	return false
}
