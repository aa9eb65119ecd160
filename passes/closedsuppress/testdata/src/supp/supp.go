package supp

//closed:union
type Shape interface{ shape() }

type Circle struct{}

func (Circle) shape() {}

type tag struct{}

func (tag) shape() {}

// Tagged gets its shape method from tag,
// so tag is not a variant of its own.
type Tagged struct {
	tag
	N int
}

func Full(s Shape) int {
	switch s.(type) {
	case Circle, Tagged:
		return 1
	}
	return 0
}

func Partial(s Shape) int {
	switch s.(type) {
	case Circle:
		return 1
	}
	return 0
}

func Defaulted(s Shape) int {
	switch s.(type) {
	case Circle:
		return 1
	default:
		return 0
	}
}

func Local() int {
	var s Shape = Circle{}
	switch s.(type) {
	case Circle, Tagged:
		return 1
	}
	return 0
}

// Sealed is not closed.
type Sealed interface{ sealed() }

type A struct{}

func (A) sealed() {}

func Unmarked(s Sealed) {
	switch s.(type) {
	}
}
