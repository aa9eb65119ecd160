package wrap

import "lib"

type (
	Shape  = lib.Shape
	Circle = lib.Circle
)
