package gosym

import (
	"strings"
)

// Marked is exported on the closed types of a package
// so that its importers know about them.
type Marked struct {
	Directives []string
}

func (*Marked) AFact() {}

func (m *Marked) String() string {
	return "marked(" + strings.Join(m.Directives, " ") + ")"
}
