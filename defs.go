package closed

import (
	"go/token"
)

// DefaultMarker is the directive that marks a closed base.
const DefaultMarker = "closed:union"

// Kind is the syntactic kind of a declaration, such as "interface" or "struct".
type Kind string

const (
	KindInterface Kind = "interface"
	KindStruct    Kind = "struct"
	KindType      Kind = "type"
)

// Location is where a declaration or construct appears in source.
type Location struct {
	token.Position
	Pos, End token.Pos
}

// A Symbol is a named type as seen by the checks.
//
// Symbols are compared with ==,
// so implementations must return the same value for the same declaration.
// Erased Symbols in particular are used as set keys.
type Symbol interface {
	// Name is the unqualified name.
	Name() string
	// FullName is the name qualified by its namespace.
	FullName() string
	Kind() Kind
	// Abstract reports whether the type cannot be instantiated directly.
	Abstract() bool
	// Reference reports whether the type can have subtypes.
	// Closed bases that are not reference types are value types.
	Reference() bool
	// Erased returns the unbound generic form, or the Symbol itself
	// if it is not generic.
	Erased() Symbol
	// Supertypes are the direct supertypes.
	Supertypes() []Symbol
	// Markers are the names of the directives attached to the declaration.
	Markers() []string
	// Locations are the declaration sites.
	Locations() []Location
	// Members are the types declared in the same namespace.
	Members() []Symbol
}

// ArmKind classifies an arm of a dispatch.
type ArmKind int

const (
	// OtherArm tests something that is not a type, like case nil.
	OtherArm ArmKind = iota
	// TypeTest matches a type without binding a name.
	TypeTest
	// BindingTest matches a type and binds the value to a name.
	BindingTest
	// Wildcard matches anything.
	Wildcard
)

func (k ArmKind) String() string {
	switch k {
	case OtherArm:
		return "other"
	case TypeTest:
		return "type test"
	case BindingTest:
		return "binding type test"
	case Wildcard:
		return "wildcard"
	}
	return "unknown"
}

// An Arm is a single test in a dispatch.
type Arm struct {
	Kind ArmKind
	// Type is the tested type for TypeTest and BindingTest,
	// and nil otherwise.
	Type     Symbol
	Location Location
}

// Scrutinee is the value a dispatch tests.
type Scrutinee struct {
	// Name is the source text of the value.
	Name string
	// Type is the static type, or nil if it is not a named type.
	Type Symbol
	// Param is true if the value is a direct reference to a parameter.
	Param bool
}

// A Dispatch is a multi-way branch on the dynamic type of one value.
type Dispatch interface {
	Location() Location
	Scrutinee() Scrutinee
	Arms() []Arm
	dispatch()
}

type isDispatch struct{}

func (isDispatch) dispatch() {}

// SwitchStmt is the statement form of a dispatch, such as a Go type switch.
type SwitchStmt struct {
	isDispatch
	At      Location
	Subject Scrutinee
	Cases   []Arm
}

func (s *SwitchStmt) Location() Location {
	return s.At
}

func (s *SwitchStmt) Scrutinee() Scrutinee {
	return s.Subject
}

func (s *SwitchStmt) Arms() []Arm {
	return s.Cases
}

// AssertChain is the expression form of a dispatch:
// a chain of conditional type assertions on the same value,
// optionally ending in an unconditional branch.
type AssertChain struct {
	isDispatch
	At      Location
	Subject Scrutinee
	Links   []Arm
}

func (a *AssertChain) Location() Location {
	return a.At
}

func (a *AssertChain) Scrutinee() Scrutinee {
	return a.Subject
}

func (a *AssertChain) Arms() []Arm {
	return a.Links
}
