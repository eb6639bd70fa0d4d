package chain

// Resolve produces a CallContext for (obj, name, modes). A cached context
// matching the current (global epoch, local epoch) pair is detached from
// the cache and returned directly; otherwise a fresh context is built. A
// fresh build is never installed into the cache here — only Release, when
// handed a context no longer in use, decides whether it is eligible to be
// cached, mirroring the single-owner refcount discipline an active
// CallContext needs while it is being invoked.
func Resolve(f *Foundation, obj *Object, name string, modes ModeSet) (*CallContext, error) {
	cache := cacheFor(obj, modes)
	if ctx, ok := cache.get(name, f.globalEpoch, obj.localEpoch); ok {
		return ctx, nil
	}
	return buildCallContext(f, obj, name, modes)
}

// Release returns ctx to its object's cache once the caller is done driving
// it, provided ctx is unexpired, non-special, not released while obj is
// inside filter handling, and was not resolved via the unknown-method
// fallback (those are permanently non-cacheable, signaled by
// GlobalEpoch == -1). A context built under an epoch pair that has since
// advanced is simply dropped rather than cached stale.
func Release(f *Foundation, obj *Object, ctx *CallContext) {
	if ctx == nil {
		return
	}
	if ctx.GlobalEpoch < 0 {
		return
	}
	if ctx.Modes.Special() {
		return
	}
	if ctx.Outcome.Unknown {
		return
	}
	if ctx.GlobalEpoch != f.globalEpoch {
		return
	}
	if ctx.LocalEpoch != obj.localEpoch {
		return
	}
	cacheFor(obj, ctx.Modes).put(ctx)
}

// cacheFor selects the discard strategy for special resolutions and for any
// lookup or release made while obj is inside filter handling (where filters
// are left out of the chain), and the live per-object cache otherwise.
func cacheFor(obj *Object, modes ModeSet) contextCache {
	if modes.Special() || obj.filterHandling {
		return newDiscardCache()
	}
	return obj.cache
}
