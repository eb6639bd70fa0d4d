package chain

// BuildHierarchy returns c's linearized ancestor list: c itself first, then
// ancestors in depth-first superclass order with right-preserving
// deduplication (the last occurrence of a repeated ancestor wins its
// position), and finally the Foundation's object_class appended once, never
// duplicated even if it appears directly as a declared superclass.
//
// Results are cached on c and rebuilt lazily whenever the Foundation's
// global epoch has advanced since the last build.
func BuildHierarchy(f *Foundation, c *Class) ([]*Class, error) {
	if c.hierarchy != nil && c.hierarchyEpoch == f.globalEpoch {
		return c.hierarchy, nil
	}

	raw, err := buildHierarchy(f, c, make(map[*Class]bool))
	if err != nil {
		return nil, err
	}
	merged := dedupKeepLast(raw)

	c.hierarchy = merged
	c.hierarchyEpoch = f.globalEpoch
	return merged, nil
}

// buildHierarchy performs the depth-first walk, collecting every visited
// class (including duplicates); dedup happens afterward in dedupKeepLast.
func buildHierarchy(f *Foundation, c *Class, visiting map[*Class]bool) ([]*Class, error) {
	if visiting[c] {
		return nil, wrapCycle(c.Name)
	}
	visiting[c] = true
	defer delete(visiting, c)

	list := []*Class{c}
	for _, super := range c.Superclasses {
		if f.ObjectClass != nil && super == f.ObjectClass {
			continue
		}
		sub, err := buildHierarchy(f, super, visiting)
		if err != nil {
			return nil, err
		}
		list = append(list, sub...)
	}

	if f.ObjectClass != nil {
		list = append(list, f.ObjectClass)
	}

	return list, nil
}

// dedupKeepLast walks list left to right, keeping only the last occurrence
// of each class, preserving the relative order of surviving entries by
// their last position.
func dedupKeepLast(list []*Class) []*Class {
	lastIndex := make(map[*Class]int, len(list))
	for i, c := range list {
		lastIndex[c] = i
	}

	out := make([]*Class, 0, len(lastIndex))
	seen := make(map[*Class]bool, len(lastIndex))
	for i, c := range list {
		if lastIndex[c] != i {
			continue
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
