package gosym

import (
	"go/types"
)

// typeNames declared at package level in pkg, in scope order, without aliases.
func typeNames(pkg *types.Package) []*types.TypeName {
	if pkg == nil {
		return nil
	}
	s := pkg.Scope()
	var acc []*types.TypeName
	for _, n := range s.Names() {
		tn, ok := s.Lookup(n).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		acc = append(acc, tn)
	}
	return acc
}

// closedIn returns the marked interfaces declared in pkg.
func (g *Graph) closedIn(pkg *types.Package) []*types.TypeName {
	var acc []*types.TypeName
	for _, tn := range typeNames(pkg) {
		if types.IsInterface(tn.Type()) && g.marked(tn) {
			acc = append(acc, tn)
		}
	}
	return acc
}

// supertypes returns the closed interfaces directly above t.
//
// Go has no declared subtyping so a type is below a closed interface
// when it or a pointer to it has all the interface's methods.
// Only interfaces declared in t's package are considered
// and of those only the most specific are direct.
// Interfaces that are not themselves closed have no supertypes.
func (g *Graph) supertypes(t *types.TypeName) []*types.TypeName {
	if t.Pkg() == nil || t.IsAlias() {
		return nil
	}
	if types.IsInterface(t.Type()) && !g.marked(t) {
		return nil
	}

	tms := methodSetsOf(t)
	var cands []*types.TypeName
	var sets []methodSets
	for _, b := range g.closedIn(t.Pkg()) {
		if b == t {
			continue
		}
		bms := methodSetsOf(b)
		if len(bms.T) == 0 || !implements(tms, bms) {
			continue
		}
		if g.falseMember(t, bms) {
			continue
		}
		cands = append(cands, b)
		sets = append(sets, bms)
	}

	var acc []*types.TypeName
outer:
	for i, b := range cands {
		for j := range cands {
			// j is strictly below b
			if i != j && implements(sets[j], sets[i]) && !implements(sets[i], sets[j]) {
				continue outer
			}
		}
		acc = append(acc, b)
	}
	return acc
}

// falseMember reports whether t only has the methods of the interface
// so that it can be embedded in the real members.
//
// Such types are unexported and zero sized
// and embedded in another type below the interface.
func (g *Graph) falseMember(t *types.TypeName, ims methodSets) bool {
	if t.Exported() || !zeroSized(t) {
		return false
	}
	for _, o := range typeNames(t.Pkg()) {
		if o == t || !embeds(o, t) {
			continue
		}
		if implements(methodSetsOf(o), ims) {
			return true
		}
	}
	return false
}

// embeds reports whether o is a struct with an embedded field of type t or *t.
func embeds(o, t *types.TypeName) bool {
	s, ok := o.Type().Underlying().(*types.Struct)
	if !ok {
		return false
	}
	for i := 0; i < s.NumFields(); i++ {
		f := s.Field(i)
		if !f.Anonymous() {
			continue
		}
		ft := f.Type()
		if p, ok := ft.(*types.Pointer); ok {
			ft = p.Elem()
		}
		if n, ok := ft.(*types.Named); ok && n.Origin().Obj() == t {
			return true
		}
	}
	return false
}

// sizer is only used to test for zero sized types so arch is irrelevant.
var sizer = types.SizesFor("gc", "amd64")

func zeroSized(t *types.TypeName) bool {
	n, ok := t.Type().(*types.Named)
	if !ok || n.TypeParams().Len() > 0 || types.IsInterface(n) {
		return false
	}
	return sizer.Sizeof(n) == 0
}

// FalseMembers of the closed interface base:
// the types that implement it only to be embedded in its variants.
func (g *Graph) FalseMembers(base *types.TypeName) []*types.TypeName {
	if !types.IsInterface(base.Type()) || !g.marked(base) {
		return nil
	}
	ims := methodSetsOf(base)
	var acc []*types.TypeName
	for _, tn := range typeNames(base.Pkg()) {
		if types.IsInterface(tn.Type()) || !implements(methodSetsOf(tn), ims) {
			continue
		}
		if g.falseMember(tn, ims) {
			acc = append(acc, tn)
		}
	}
	return acc
}
