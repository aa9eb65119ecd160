package gosym

import (
	"go/token"
	"go/types"
)

type name struct {
	pkg string
	nm  string
}

type duble struct {
	token.Pos
	in, out  *types.Tuple
	variadic bool
	// generic is set when the receiver has type parameters.
	// Signatures mentioning type parameters are only compared by arity.
	generic bool
}

type methodSet map[name]duble

func computeMethodSet(t types.Type, generic bool) methodSet {
	ms := methodSet{}
	m := types.NewMethodSet(t)
	for i := 0; i < m.Len(); i++ {
		s := m.At(i)
		o := s.Obj().(*types.Func)
		sig := o.Type().(*types.Signature)
		var pkg string
		if !o.Exported() && o.Pkg() != nil {
			pkg = o.Pkg().Path()
		}
		ms[name{
			pkg: pkg,
			nm:  o.Name(),
		}] = duble{
			Pos:      o.Pos(),
			in:       sig.Params(),
			out:      sig.Results(),
			variadic: sig.Variadic(),
			generic:  generic,
		}
	}
	return ms
}

// satisfies reports whether m satisfies i.
func (m methodSet) satisfies(i methodSet) bool {
	for nm, db := range i {
		S, ok := m[nm]
		if !ok {
			return false
		}

		// they both have methods with the same name, check that they have the same signature
		if db.variadic != S.variadic {
			return false
		}
		if db.generic || S.generic {
			if db.in.Len() != S.in.Len() || db.out.Len() != S.out.Len() {
				return false
			}
			continue
		}
		if !tupEqual(db.in, S.in) || !tupEqual(db.out, S.out) {
			return false
		}
	}
	return true
}

func tupEqual(a, b *types.Tuple) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !types.Identical(a.At(i).Type(), b.At(i).Type()) {
			return false
		}
	}
	return true
}

type methodSets struct {
	// ptrT always nil if method set of interface/ptr type
	T, ptrT methodSet
}

func methodSetsOf(t *types.TypeName) methodSets {
	T := t.Type()
	generic := false
	if n, ok := T.(*types.Named); ok {
		generic = n.TypeParams().Len() > 0
	}

	var ms methodSets
	ms.T = computeMethodSet(T, generic)

	switch T.Underlying().(type) {
	case *types.Interface, *types.Pointer:
	default:
		ms.ptrT = computeMethodSet(types.NewPointer(T), generic)
	}
	return ms
}

// implements reports whether t, or a pointer to t, has every method of i.
func implements(t, i methodSets) bool {
	if t.T.satisfies(i.T) {
		return true
	}
	return t.ptrT != nil && t.ptrT.satisfies(i.T)
}
