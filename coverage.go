package closed

import (
	"fmt"
	"strings"
)

// Coverage compares the variants of a closed type
// with the types tested by a dispatch on it.
type Coverage struct {
	Base Symbol
	// Variants of Base, erased.
	Variants []Symbol
	// Tested types, erased and without duplicates, in arm order.
	Tested []Symbol
	// Missing are Variants that are not Tested.
	Missing []Symbol
	// Foreign are Tested types that are not Variants.
	Foreign []Symbol
	// Defaulted is true if the dispatch has a wildcard arm.
	Defaulted bool
	// Arms counts the type tests and wildcards.
	Arms int
}

// Exhaustive reports whether the dispatch handles every variant:
// either it has a wildcard arm
// or its tested types are exactly the variants.
func (c *Coverage) Exhaustive() bool {
	if c.Defaulted {
		return true
	}
	return c.Arms > 0 && len(c.Missing) == 0 && len(c.Foreign) == 0
}

// gap describes why c is not exhaustive.
func (c *Coverage) gap() string {
	var parts []string
	if len(c.Missing) > 0 {
		parts = append(parts, "missing "+names(c.Missing))
	}
	if len(c.Foreign) > 0 {
		parts = append(parts, "tests types outside the hierarchy "+names(c.Foreign))
	}
	if len(parts) == 0 {
		return "no cases"
	}
	return strings.Join(parts, "; ")
}

func names(ss []Symbol) string {
	acc := make([]string, len(ss))
	for i, s := range ss {
		acc[i] = s.Name()
	}
	return strings.Join(acc, ", ")
}

// Coverage computes the Coverage of d.
//
// It reports false if d is not a dispatch on a parameter
// whose type is a closed reference type.
// Such dispatches cannot be checked without data flow analysis
// and are ignored.
func (c *Checker) Coverage(d Dispatch) (*Coverage, bool) {
	sc := d.Scrutinee()
	base := sc.Type
	if !sc.Param || base == nil || !base.Reference() || !c.IsClosed(base) {
		return nil, false
	}

	cov := &Coverage{
		Base:     base,
		Variants: Variants(base),
	}

	tested := map[Symbol]bool{}
	for _, arm := range d.Arms() {
		switch arm.Kind {
		case Wildcard:
			cov.Defaulted = true
			cov.Arms++

		case TypeTest, BindingTest:
			cov.Arms++
			if arm.Type == nil {
				continue
			}
			k := arm.Type.Erased()
			if tested[k] {
				continue
			}
			tested[k] = true
			cov.Tested = append(cov.Tested, k)

		default:
			// not a type, nothing to cover
		}
	}

	variants := make(map[Symbol]bool, len(cov.Variants))
	for _, v := range cov.Variants {
		variants[v] = true
		if !tested[v] {
			cov.Missing = append(cov.Missing, v)
		}
	}
	for _, t := range cov.Tested {
		if !variants[t] {
			cov.Foreign = append(cov.Foreign, t)
		}
	}

	return cov, true
}

// Exhaustive checks that d handles every variant of its scrutinee's closed type.
func (c *Checker) Exhaustive(d Dispatch) *Diagnostic {
	cov, ok := c.Coverage(d)
	if !ok || cov.Exhaustive() {
		return nil
	}
	return newDiagnostic(SwitchRule, d.Location(), cov.Base.FullName(), cov.gap())
}

// Suppress returns a Suppression for each diagnostic in host
// that has c.HostID and is located at d,
// provided d is exhaustive.
//
// If d is not exhaustive, the host diagnostics stand
// and Exhaustive reports the gap as well.
func (c *Checker) Suppress(d Dispatch, host []HostDiagnostic) []Suppression {
	if c.HostID == "" || len(host) == 0 {
		return nil
	}
	cov, ok := c.Coverage(d)
	if !ok || !cov.Exhaustive() {
		return nil
	}

	why := fmt.Sprintf("every variant of closed type %s is handled", cov.Base.FullName())
	if cov.Defaulted {
		why = fmt.Sprintf("dispatch over closed type %s has a fallback arm", cov.Base.FullName())
	}

	var acc []Suppression
	at := d.Location()
	for _, h := range host {
		if h.ID != c.HostID || !sameLocation(h.Location, at) {
			continue
		}
		acc = append(acc, Suppression{
			ID:            h.ID,
			Location:      h.Location,
			Justification: why,
		})
	}
	return acc
}

func sameLocation(a, b Location) bool {
	if a.Pos.IsValid() && b.Pos.IsValid() {
		return a.Pos == b.Pos
	}
	return a.Filename == b.Filename && a.Line == b.Line && a.Column == b.Column
}

// Suppressions collected from any number of dispatches.
type Suppressions []Suppression

// Find the Suppression for the diagnostic with id at pos.
func (s Suppressions) Find(id string, at Location) (Suppression, bool) {
	for _, x := range s {
		if x.ID == id && sameLocation(x.Location, at) {
			return x, true
		}
	}
	return Suppression{}, false
}
