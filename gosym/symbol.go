package gosym

import (
	"go/token"
	"go/types"

	"github.com/sumcheck/closed"
)

// typeSymbol is a closed.Symbol for a named type.
// It is comparable so equal declarations give equal symbols.
type typeSymbol struct {
	g   *Graph
	obj *types.TypeName
	// inst is the instantiation of a generic obj, if any.
	inst *types.Named
}

func (s typeSymbol) typ() types.Type {
	if s.inst != nil {
		return s.inst
	}
	return s.obj.Type()
}

func (s typeSymbol) Name() string {
	if s.inst == nil {
		return s.obj.Name()
	}
	return types.TypeString(s.inst, types.RelativeTo(s.obj.Pkg()))
}

func (s typeSymbol) FullName() string {
	return types.TypeString(s.typ(), func(p *types.Package) string {
		return p.Name()
	})
}

func (s typeSymbol) Kind() closed.Kind {
	switch s.obj.Type().Underlying().(type) {
	case *types.Interface:
		return closed.KindInterface
	case *types.Struct:
		return closed.KindStruct
	}
	return closed.KindType
}

// Abstract is true for interfaces, which have no values of their own.
func (s typeSymbol) Abstract() bool {
	return types.IsInterface(s.obj.Type())
}

// Reference is true for interfaces, the only types with subtypes.
func (s typeSymbol) Reference() bool {
	return types.IsInterface(s.obj.Type())
}

func (s typeSymbol) Erased() closed.Symbol {
	if s.inst == nil {
		return s
	}
	return typeSymbol{g: s.g, obj: s.obj}
}

func (s typeSymbol) Supertypes() []closed.Symbol {
	sups := s.g.supertypes(s.obj)
	acc := make([]closed.Symbol, len(sups))
	for i, sup := range sups {
		acc[i] = s.g.Lookup(sup)
	}
	return acc
}

func (s typeSymbol) Markers() []string {
	return s.g.Directives(s.obj)
}

func (s typeSymbol) Locations() []closed.Location {
	pos := s.obj.Pos()
	if !pos.IsValid() {
		return nil
	}
	return []closed.Location{s.g.Location(pos, pos+token.Pos(len(s.obj.Name())))}
}

func (s typeSymbol) Members() []closed.Symbol {
	tns := typeNames(s.obj.Pkg())
	acc := make([]closed.Symbol, len(tns))
	for i, tn := range tns {
		acc[i] = s.g.Lookup(tn)
	}
	return acc
}

func (s typeSymbol) String() string {
	return s.FullName()
}

// TypeName of s, or false if s did not come from a Graph.
func TypeName(s closed.Symbol) (*types.TypeName, bool) {
	ts, ok := s.(typeSymbol)
	if !ok {
		return nil, false
	}
	return ts.obj, true
}

// Type of s, including any type arguments, or nil if s did not come from a Graph.
func Type(s closed.Symbol) types.Type {
	ts, ok := s.(typeSymbol)
	if !ok {
		return nil
	}
	return ts.typ()
}
