package impl

type Sealed interface{ sealed() }

type A struct{}

func (A) sealed() {}

type B struct{}

func (*B) sealed() {}

type Open interface{ Open() }

type C struct{}

func (C) Open() {}

func Missing(s Sealed) {
	switch s.(type) { // want `type switch on Sealed is missing cases for B`
	case A:
	}
}

func Listed(s Sealed) {
	switch s.(type) {
	case A, *B:
	}
}

func Defaulted(s Sealed) {
	switch s.(type) {
	case A:
	default:
	}
}

func NotSealed(o Open) {
	switch o.(type) {
	}
}

func Local() {
	var s Sealed = A{}
	switch s.(type) { // want `missing cases for A, B`
	}
}
