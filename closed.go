package closed

// A Checker runs the closed type checks.
//
// A Checker holds only configuration and is safe for concurrent use.
// Every method is a pure function of its arguments.
type Checker struct {
	// Marker is the directive that marks a closed base.
	// If empty, DefaultMarker is used.
	Marker string
	// HostID is the ID of the host's generic incomplete coverage diagnostic
	// that Suppress may suppress.
	HostID string
}

func (c *Checker) marker() string {
	if c.Marker == "" {
		return DefaultMarker
	}
	return c.Marker
}

// IsClosed reports whether s carries the closed marker.
func (c *Checker) IsClosed(s Symbol) bool {
	if s == nil {
		return false
	}
	m := c.marker()
	for _, n := range s.Markers() {
		if n == m {
			return true
		}
	}
	return false
}

// closedSupertypes of s.
func (c *Checker) closedSupertypes(s Symbol) []Symbol {
	var acc []Symbol
	for _, sup := range s.Supertypes() {
		if c.IsClosed(sup) {
			acc = append(acc, sup)
		}
	}
	return acc
}

// Shape checks that a closed base cannot be instantiated.
//
// Declarations whose own supertype is closed are variants
// and are left to Colocation.
func (c *Checker) Shape(s Symbol) *Diagnostic {
	if len(c.closedSupertypes(s)) > 0 {
		return nil
	}
	if !c.IsClosed(s) || s.Abstract() {
		return nil
	}
	return newDiagnostic(ShapeRule, at(s), s.Kind(), s.FullName())
}

// Colocation checks that s is declared in the same file as each of its closed supertypes.
//
// Symbols that do not have exactly one location are skipped.
func (c *Checker) Colocation(s Symbol) []*Diagnostic {
	bases := c.closedSupertypes(s)
	if len(bases) == 0 {
		return nil
	}
	variantFile, ok := singleFile(s)
	if !ok {
		return nil
	}

	var acc []*Diagnostic
	for _, base := range bases {
		baseFile, ok := singleFile(base)
		if !ok || variantFile == baseFile {
			continue
		}
		acc = append(acc, newDiagnostic(FileRule, at(s), s.Name(), base.Name()))
	}
	return acc
}

func singleFile(s Symbol) (string, bool) {
	locs := s.Locations()
	if len(locs) != 1 || locs[0].Filename == "" {
		return "", false
	}
	return locs[0].Filename, true
}

// at returns the first location of s.
func at(s Symbol) Location {
	if locs := s.Locations(); len(locs) > 0 {
		return locs[0]
	}
	return Location{}
}
