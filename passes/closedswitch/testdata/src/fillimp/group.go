package fillimp

import (
	"wrap"
)

func Area(s wrap.Shape) int {
	switch s.(type) { // want `missing Square`
	case wrap.Circle:
		return 1
	}
	return 0
}
