package chain

// InvokeStep runs ctx's current chain entry and advances the cursor.
//
// Two things happen around every single step, not just the outermost one:
// the object's filter-handling bit is saved, set to
// entry.IsFilter || ctx.Modes.Has(ModeFilterHandling), and restored once the
// implementor returns — so a non-filter entry reached from inside a filter
// body (e.g. a filter's Next landing on an ordinary method) correctly clears
// the bit for the duration of its own call, and a resolve performed from
// within that body sees filter handling off again.
//
// Pinning is different: only the outermost call (ctx.Index == 0 on entry)
// pins every method referenced by the chain before running the implementor
// and unpins them after it returns, even if the implementor recursively
// calls Next/InvokeStep again on the same ctx. The "first" flag is captured
// before the implementor runs: a nested recursive call mutates ctx.Index
// while the outer call is still on the stack, so re-reading ctx.Index
// afterward would see the wrong value.
func InvokeStep(env *InvocationEnv, ctx *CallContext) (Status, error) {
	if ctx.Index >= len(ctx.Chain) {
		return StatusError, ErrChainExhausted
	}

	first := ctx.Index == 0
	entry := ctx.Chain[ctx.Index]

	if first {
		pinAll(ctx)
	}

	var savedFilterHandling bool
	if ctx.Object != nil {
		savedFilterHandling = ctx.Object.filterHandling
		if entry.IsFilter || ctx.Modes.Has(ModeFilterHandling) {
			ctx.Object.filterHandling = true
		} else {
			ctx.Object.filterHandling = false
		}
	}

	ctx.Index++
	status, err := entry.Method.Implementor(env, ctx)

	if ctx.Object != nil {
		ctx.Object.filterHandling = savedFilterHandling
	}

	if first {
		unpinAll(ctx)
	}

	return status, err
}

// Next advances ctx and invokes the next chain entry, the mechanism a
// Method Implementor uses to call its next most-general namesake (or the
// next filter in the filter section). It returns ErrChainExhausted once
// every entry has run; callers of the outermost implementor treat that as
// "no further implementation".
func Next(env *InvocationEnv, ctx *CallContext) (Status, error) {
	return InvokeStep(env, ctx)
}
