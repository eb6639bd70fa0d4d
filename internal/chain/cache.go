package chain

// contextCache stores built CallContexts keyed by method name, validated
// against the epoch pair they were built under. Two strategies satisfy it:
// liveCache (a real per-object cache) and discardCache (always misses,
// never stores — used for contexts that must never be reused).
type contextCache interface {
	get(name string, globalEpoch, localEpoch int64) (*CallContext, bool)
	put(ctx *CallContext)
	invalidate()
}

// discardCache never retains anything; Resolve and Release fall back to it
// for constructor, destructor and filter-handling resolutions, which must
// not be shared across callers. Unknown-method contexts still go through the
// live cache's lookup but are never stored, because Release refuses them.
type discardCache struct{}

func newDiscardCache() contextCache { return discardCache{} }

func (discardCache) get(string, int64, int64) (*CallContext, bool) { return nil, false }
func (discardCache) put(*CallContext)                              {}
func (discardCache) invalidate()                                   {}

// liveCache is a real, epoch-validated per-object cache: one slot per
// method name, holding at most one detachable CallContext at a time.
type liveCache struct {
	entries map[string]*CallContext
}

func newLiveCache() contextCache {
	return &liveCache{entries: make(map[string]*CallContext)}
}

func (lc *liveCache) get(name string, globalEpoch, localEpoch int64) (*CallContext, bool) {
	ctx, ok := lc.entries[name]
	if !ok {
		return nil, false
	}
	if ctx.GlobalEpoch != globalEpoch || ctx.LocalEpoch != localEpoch {
		delete(lc.entries, name)
		return nil, false
	}
	delete(lc.entries, name) // detach: a cached context in use can't also sit in the cache
	return ctx, true
}

func (lc *liveCache) put(ctx *CallContext) {
	ctx.Index = 0
	lc.entries[ctx.Name] = ctx
}

func (lc *liveCache) invalidate() {
	lc.entries = make(map[string]*CallContext)
}
