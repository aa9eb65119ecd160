package closed

// A Hierarchy is a closed base and its variants.
//
// Hierarchies are derived on demand and never stored.
type Hierarchy struct {
	Base Symbol
	// Variants are erased and in the order of the Base's Members.
	Variants []Symbol
}

// Hierarchy returns the hierarchy rooted at base
// or nil if base is not closed.
func (c *Checker) Hierarchy(base Symbol) *Hierarchy {
	if !c.IsClosed(base) {
		return nil
	}
	return &Hierarchy{
		Base:     base,
		Variants: Variants(base),
	}
}

// Variants returns the erased members of base's namespace
// whose direct supertype is base, under erasure.
func Variants(base Symbol) []Symbol {
	is := variantOf(base)
	seen := map[Symbol]bool{}
	var acc []Symbol
	for _, m := range base.Members() {
		if !is(m) {
			continue
		}
		k := m.Erased()
		if seen[k] {
			continue
		}
		seen[k] = true
		acc = append(acc, k)
	}
	return acc
}

// variantOf returns the membership predicate for base.
func variantOf(base Symbol) func(Symbol) bool {
	if !base.Reference() {
		return valueVariant
	}
	key := base.Erased()
	return func(s Symbol) bool {
		if s.Erased() == key {
			return false
		}
		for _, sup := range s.Supertypes() {
			if sup.Erased() == key {
				return true
			}
		}
		return false
	}
}

// valueVariant rejects everything: a value type has no subtypes,
// so closed value types are not supported.
func valueVariant(Symbol) bool {
	return false
}
