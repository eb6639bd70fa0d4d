package chain

import "sort"

// ListMethods returns the sorted, deduplicated set of method names visible
// on obj: object-declared names, mixin names, then the linearized class
// hierarchy (including object_class), each contributing only names it
// declares directly. modes selects among the three enumeration modes: 0
// (public and protected names, excluding per-instance private ones),
// ModePublic (public names only), and ModePrivate (also surface
// per-instance private names that 0 would otherwise hide).
func ListMethods(f *Foundation, obj *Object, modes ModeSet) ([]string, error) {
	seen := make(map[string]bool)

	walkOneClassNames(nil, obj.methods, modes, seen)

	for _, mixin := range obj.Mixins {
		if err := walkClassNames(f, mixin, modes, seen); err != nil {
			return nil, err
		}
	}

	if err := walkClassNames(f, obj.SelfClass, modes, seen); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// walkClassNames folds in c's own hierarchy (and each ancestor's mixins).
func walkClassNames(f *Foundation, c *Class, modes ModeSet, seen map[string]bool) error {
	hierarchy, err := BuildHierarchy(f, c)
	if err != nil {
		return err
	}
	for _, anc := range hierarchy {
		for _, mixin := range anc.Mixins {
			walkOneClassNames(mixin, mixin.methodTable(), modes, seen)
		}
		walkOneClassNames(anc, anc.methods, modes, seen)
	}
	return nil
}

// methodTable exposes a Class's private method map to the enumerator
// without making the field itself exported.
func (c *Class) methodTable() map[string]*Method {
	return c.methods
}

// walkOneClassNames records every non-placeholder method name in table that
// satisfies the visibility filter, regardless of where it was already seen
// (the caller already deduplicates by name across the whole walk). declarer
// is nil for an object's own per-instance methods; a per-instance private
// method is hidden unless modes explicitly asks for private methods, per
// the rule that private names are never part of the default listing.
func walkOneClassNames(declarer *Class, table map[string]*Method, modes ModeSet, seen map[string]bool) {
	for name, m := range table {
		if m.IsPlaceholder() {
			continue
		}
		if modes.Has(ModePublic) && m.Visibility != Public {
			continue
		}
		if declarer == nil && m.Visibility == Private && !modes.Has(ModePrivate) {
			continue
		}
		seen[name] = true
	}
}
