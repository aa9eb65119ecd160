package use

import "lib"

//closed:union
type Local interface{ local() } // want Local:`marked\(closed:union\)`

func Area(s lib.Shape) int {
	switch s := s.(type) {
	case lib.Circle:
		return s.R
	}
	return 0
}
