package chain

// buildCallContext resolves (obj, name, modes) into a fresh CallContext, or
// returns (nil, nil) if no implementation exists (the "absent" outcome).
// Filters are collected first (unless the resolution is a constructor or
// destructor, modes marks it as filter handling, or obj is already inside
// filter handling), then the primary chain is built for name; if that yields
// nothing beyond the filter section, a constructor/destructor resolution is
// absent, and any other is retried for the Foundation's unknown-method name
// and the result is stamped non-cacheable.
func buildCallContext(f *Foundation, obj *Object, name string, modes ModeSet) (*CallContext, error) {
	special := modes.Has(ModeConstructor) || modes.Has(ModeDestructor)

	var chain []CallChainEntry
	filterLength := 0
	if !special && !modes.Has(ModeFilterHandling) && !obj.filterHandling {
		var err error
		chain, filterLength, err = collectFilters(f, obj, nil)
		if err != nil {
			return nil, err
		}
	}

	chain, err := simpleChainBuild(f, obj, name, modes, filterLength, chain, false, nil)
	if err != nil {
		return nil, err
	}

	unknown := false
	globalEpoch := f.globalEpoch
	if len(chain) == filterLength {
		if special {
			return nil, nil
		}
		chain, err = simpleChainBuild(f, obj, f.UnknownMethodName, modes, filterLength, chain, false, nil)
		if err != nil {
			return nil, err
		}
		if len(chain) == filterLength {
			return nil, nil
		}
		unknown = true
		globalEpoch = -1
	}

	return &CallContext{
		Name:        name,
		Chain:       chain,
		Skip:        2,
		Modes:       modes,
		Outcome:     Outcome{Unknown: unknown},
		GlobalEpoch: globalEpoch,
		LocalEpoch:  obj.localEpoch,
		Object:      obj,
	}, nil
}

// collectFilters discovers filter names in the order: each object mixin's
// linearization, each object-declared filter, then the self class's own
// linearization, deduplicated by name (first occurrence wins). Each
// discovered name is then resolved via a full simple-chain build (as if it
// were an ordinary method name), with every resulting entry marked as a
// filter and stamped with the class that declared the filter name (unset
// for an object-declared filter). The final chain length is filter_length.
func collectFilters(f *Foundation, obj *Object, chain []CallChainEntry) ([]CallChainEntry, int, error) {
	type discoveredFilter struct {
		name     string
		declarer *Class
	}

	seen := make(map[string]bool)
	var discovered []discoveredFilter
	record := func(name string, declarer *Class) {
		if seen[name] {
			return
		}
		seen[name] = true
		discovered = append(discovered, discoveredFilter{name: name, declarer: declarer})
	}

	for _, mixin := range obj.Mixins {
		hierarchy, err := BuildHierarchy(f, mixin)
		if err != nil {
			return nil, 0, err
		}
		for _, anc := range hierarchy {
			for _, name := range anc.Filters {
				record(name, anc)
			}
		}
	}
	for _, name := range obj.Filters {
		record(name, nil)
	}
	hierarchy, err := BuildHierarchy(f, obj.SelfClass)
	if err != nil {
		return nil, 0, err
	}
	for _, anc := range hierarchy {
		for _, name := range anc.Filters {
			record(name, anc)
		}
	}

	if chain == nil {
		chain = make([]CallChainEntry, 0, inlineChainCapacity)
	}
	for _, d := range discovered {
		chain, err = simpleChainBuild(f, obj, d.name, 0, 0, chain, true, d.declarer)
		if err != nil {
			return nil, 0, err
		}
	}

	return chain, len(chain), nil
}

// simpleChainBuild appends every declaration of name reachable from obj. It
// first probes obj's own per-instance method: if the caller requires public
// visibility and that method isn't public, the build aborts with no entries
// added at all (a non-public per-instance method hides everything else).
// Otherwise, in order: each of obj's own mixins, each of the self class's
// own mixins, each further ancestor's mixins, then obj's own per-instance
// method (appended, not merely probed); finally, unconditionally, the self
// class's own linearized hierarchy. isFilter/filterDeclarer are threaded
// through unchanged; they are non-zero only while collectFilters is
// resolving one filter name's own chain.
func simpleChainBuild(f *Foundation, obj *Object, name string, modes ModeSet, dedupFrom int, chain []CallChainEntry, isFilter bool, filterDeclarer *Class) ([]CallChainEntry, error) {
	special := modes.Has(ModeConstructor) || modes.Has(ModeDestructor)
	state := visibilityUnknown

	if !special {
		if m, ok := obj.Method(name); ok && !m.IsPlaceholder() {
			state = promote(state, m)
			if modes.Has(ModePublic) && m.Visibility != Public {
				return chain, nil
			}
		}

		var err error
		for _, mixin := range obj.Mixins {
			chain, state, err = classSimpleChain(f, mixin, name, modes, dedupFrom, chain, state, obj.SelfClass, isFilter, filterDeclarer)
			if err != nil {
				return nil, err
			}
		}
		for _, mixin := range obj.SelfClass.Mixins {
			chain, state, err = classSimpleChain(f, mixin, name, modes, dedupFrom, chain, state, obj.SelfClass, isFilter, filterDeclarer)
			if err != nil {
				return nil, err
			}
		}
		hierarchy, err := BuildHierarchy(f, obj.SelfClass)
		if err != nil {
			return nil, err
		}
		for _, super := range hierarchy {
			if super == obj.SelfClass {
				continue
			}
			for _, mixin := range super.Mixins {
				chain, state, err = classSimpleChain(f, mixin, name, modes, dedupFrom, chain, state, obj.SelfClass, isFilter, filterDeclarer)
				if err != nil {
					return nil, err
				}
			}
		}

		if m, ok := obj.Method(name); ok && !m.IsPlaceholder() {
			chain = appendMethod(chain, dedupFrom, m, modes, obj.SelfClass, isFilter, filterDeclarer)
		}
	}

	chain, _, err := classSimpleChain(f, obj.SelfClass, name, modes, dedupFrom, chain, state, obj.SelfClass, isFilter, filterDeclarer)
	if err != nil {
		return nil, err
	}
	return chain, nil
}

// classSimpleChain walks root's linearized hierarchy, appending whatever
// name resolves to on each ancestor in turn — the ancestor's constructor or
// destructor when modes requires one, otherwise its declared method. It
// never looks at an ancestor's mixins: those are folded in exactly once, by
// the caller, per simpleChainBuild's step 3 (§4.3.1) — doing it here too
// would process every ancestor's mixins twice and, because appendMethod
// relocates duplicates late-as-possible, reorder the chain. If modes
// requires public visibility and an ancestor's method isn't public,
// traversal returns immediately: a more-derived non-public method hides
// every further ancestor's same-named method.
func classSimpleChain(f *Foundation, root *Class, name string, modes ModeSet, dedupFrom int, chain []CallChainEntry, state visibilityState, selfClass *Class, isFilter bool, filterDeclarer *Class) ([]CallChainEntry, visibilityState, error) {
	hierarchy, err := BuildHierarchy(f, root)
	if err != nil {
		return chain, state, err
	}

	for _, anc := range hierarchy {
		switch {
		case modes.Has(ModeConstructor):
			if anc.Constructor != nil {
				chain = appendMethod(chain, dedupFrom, anc.Constructor, modes, selfClass, isFilter, filterDeclarer)
			}
			continue
		case modes.Has(ModeDestructor):
			if anc.Destructor != nil {
				chain = appendMethod(chain, dedupFrom, anc.Destructor, modes, selfClass, isFilter, filterDeclarer)
			}
			continue
		}

		m, ok := anc.Method(name)
		if !ok || m.IsPlaceholder() {
			continue
		}
		if state == visibilityUnknown {
			state = promote(state, m)
		}
		if modes.Has(ModePublic) && m.Visibility != Public {
			return chain, state, nil
		}

		chain = appendMethod(chain, dedupFrom, m, modes, selfClass, isFilter, filterDeclarer)
	}

	return chain, state, nil
}

// promote folds m's visibility into state, preferring the first (most
// derived) visibility observed for a given name.
func promote(state visibilityState, m *Method) visibilityState {
	if state != visibilityUnknown {
		return state
	}
	if m.Visibility == Public {
		return visibilityPublic
	}
	return visibilityProtected
}

// appendMethod appends m to chain as one call-chain entry, subject to two
// rules. First, private filtering: unless modes explicitly asks for private
// methods, a private method declared on some ancestor class other than
// selfClass is invisible and silently dropped (an ancestor's private method
// is never inherited; only that class's own private methods, requested
// directly against an instance of exactly that class, are visible). Second,
// come-as-late-as-possible deduplication: chain[dedupFrom:] is scanned for
// an entry with the same *Method and the same is_filter flag — reached
// again via a second hierarchy path — and if found, that entry is removed
// and the new one appended in its place, preserving its original
// FilterDeclarer. Distinct methods that merely share a name (an override in
// a different class) are never merged this way; both remain so Next can
// walk from the most- to the least-derived implementation.
func appendMethod(chain []CallChainEntry, dedupFrom int, m *Method, modes ModeSet, selfClass *Class, isFilter bool, filterDeclarer *Class) []CallChainEntry {
	if m == nil || m.Implementor == nil {
		return chain
	}
	if !modes.Has(ModePrivate) && m.Visibility == Private && m.DeclaringClass != nil && m.DeclaringClass != selfClass {
		return chain
	}

	entry := CallChainEntry{Method: m, IsFilter: isFilter, FilterDeclarer: filterDeclarer}
	for i := dedupFrom; i < len(chain); i++ {
		if chain[i].Method == m && chain[i].IsFilter == isFilter {
			entry.FilterDeclarer = chain[i].FilterDeclarer
			chain = append(chain[:i], chain[i+1:]...)
			break
		}
	}
	return append(chain, entry)
}
