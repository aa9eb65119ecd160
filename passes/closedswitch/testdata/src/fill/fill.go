package fill

import "lib"

//closed:union
type Shape interface{ shape() }

type Circle struct{}

func (Circle) shape() {}

type Square struct{}

func (*Square) shape() {}

type triangle struct{}

func (triangle) shape() {}

func Name(s Shape) string {
	switch s.(type) { // want `missing Square, triangle`
	case Circle:
		return "circle"
	}
	return ""
}

func Nested(s Shape, t lib.Shape) {
	if s != nil {
		switch t.(type) { // want `missing Circle`
		case *lib.Square:
		}
	}
}
