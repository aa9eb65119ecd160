package fillimp

import "wrap"

func Kind(s wrap.Shape) string {
	switch s.(type) { // want `dispatch over closed type lib\.Shape is not exhaustive: missing Circle, Square`
	}
	return ""
}
