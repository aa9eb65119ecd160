package excl

func mockMissing(s Sealed) {
	switch s.(type) {
	case B:
	}
}
