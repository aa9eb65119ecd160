package excl

type Sealed interface{ sealed() }

type A struct{}

func (A) sealed() {}

type B struct{}

func (B) sealed() {}

func Missing(s Sealed) {
	switch s.(type) { // want `missing cases for B`
	case A:
	}
}
