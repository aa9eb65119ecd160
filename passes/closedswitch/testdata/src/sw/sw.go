package sw

import "lib"

//closed:union
type Expr interface{ expr() }

type Num struct{ V int }

func (Num) expr() {}

type Add struct{ L, R Expr }

func (*Add) expr() {}

type Neg struct{ X Expr }

func (Neg) expr() {}

// Other is not closed so it is not a variant.
type Other interface {
	expr()
	other()
}

func Eval(e Expr) int {
	switch e := e.(type) { // want `dispatch over closed type sw\.Expr is not exhaustive: missing Neg`
	case Num:
		return e.V
	case *Add:
		return Eval(e.L) + Eval(e.R)
	}
	return 0
}

func Full(e Expr) int {
	switch e.(type) {
	case Num, *Add, Neg:
		return 1
	}
	return 0
}

func Default(e Expr) int {
	switch e.(type) {
	case Num:
		return 1
	default:
		return 0
	}
}

func Nil(e Expr) int {
	switch e.(type) { // want `missing Add, Neg, Num`
	case nil:
		return 1
	}
	return 0
}

func Empty(e Expr) {
	switch e.(type) { // want `missing Add, Neg, Num`
	}
}

func Foreign(e Expr) int {
	switch e.(type) { // want `tests types outside the hierarchy Other`
	case Num, *Add, Neg, Other:
		return 1
	}
	return 0
}

func Chain(e Expr) string {
	if _, ok := e.(Num); ok { // want `dispatch over closed type sw\.Expr is not exhaustive: missing Neg`
		return "num"
	} else if a, ok := e.(*Add); ok {
		return Chain(a.L)
	}
	return ""
}

func ChainElse(e Expr) string {
	if _, ok := e.(Num); ok {
		return "num"
	} else if _, ok := e.(*Add); ok {
		return "add"
	} else {
		return "other"
	}
}

func MidChain(e Expr, verbose bool) string {
	if verbose {
		return "verbose"
	} else if _, ok := e.(Num); ok { // want `dispatch over closed type sw\.Expr is not exhaustive: missing Add`
		return "num"
	} else if _, ok := e.(Neg); ok {
		return "neg"
	}
	return ""
}

func TwoValues(e, f Expr) string {
	if _, ok := f.(Num); ok { // want `missing Add`
		return "f"
	} else if _, ok := e.(Num); ok { // want `missing Neg`
		return "num"
	} else if _, ok := f.(Neg); ok {
		return "neg"
	} else if _, ok := e.(*Add); ok {
		return "add"
	}
	return ""
}

func Single(e Expr) bool {
	if _, ok := e.(Num); ok {
		return true
	}
	return false
}

func Local() int {
	var e Expr = Num{}
	switch e.(type) {
	case Num:
		return 1
	}
	return 0
}

func Closure() func(Expr) int {
	return func(e Expr) int {
		switch e.(type) { // want `missing Add, Neg`
		case Num:
			return 1
		}
		return 0
	}
}

func Area(s lib.Shape) int {
	switch s := s.(type) { // want `dispatch over closed type lib\.Shape is not exhaustive: missing Square`
	case lib.Circle:
		return s.R
	}
	return 0
}

func AreaFull(s lib.Shape) int {
	switch s := s.(type) {
	case lib.Circle:
		return s.R
	case *lib.Square:
		return s.S
	}
	return 0
}

//closed:union
type Option[T any] interface{ option() }

type Some[T any] struct{ V T }

func (Some[T]) option() {}

type None[T any] struct{}

func (None[T]) option() {}

func Get(o Option[int]) int {
	switch o := o.(type) {
	case Some[int]:
		return o.V
	case None[int]:
	}
	return 0
}

func Has(o Option[string]) bool {
	switch o.(type) { // want `dispatch over closed type sw\.Option\[string\] is not exhaustive: missing None`
	case Some[string]:
		return true
	}
	return false
}

// Some[string] and Some[int] are the same variant.
func Erased(o Option[int]) int {
	switch o.(type) {
	case Some[int], Some[string], None[int]:
		return 1
	}
	return 0
}
