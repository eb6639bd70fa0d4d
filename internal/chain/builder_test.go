package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopImpl(*InvocationEnv, *CallContext) (Status, error) {
	return StatusOK, nil
}

func chainNames(ctx *CallContext) []string {
	names := make([]string, len(ctx.Chain))
	for i, e := range ctx.Chain {
		names[i] = e.Method.Name
	}
	return names
}

func chainDeclarers(ctx *CallContext) []string {
	names := make([]string, len(ctx.Chain))
	for i, e := range ctx.Chain {
		if e.Method.DeclaringClass == nil {
			names[i] = "<object>"
		} else {
			names[i] = e.Method.DeclaringClass.Name
		}
	}
	return names
}

func TestSimpleChainLinearOverride(t *testing.T) {
	f := NewFoundation("unknown")
	a := NewClass("A")
	a.SetMethod(NewMethod("greet", Public, noopImpl))
	b := NewClass("B")
	b.AddSuperclass(a)
	b.SetMethod(NewMethod("greet", Public, noopImpl))

	obj := NewObject(b)
	ctx, err := buildCallContext(f, obj, "greet", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A"}, chainDeclarers(ctx))
}

func TestSimpleChainDiamondDedupKeepsMostDerived(t *testing.T) {
	f := NewFoundation("unknown")
	a := NewClass("A")
	a.SetMethod(NewMethod("m", Public, noopImpl))
	b := NewClass("B")
	b.AddSuperclass(a)
	c := NewClass("C")
	c.AddSuperclass(a)
	d := NewClass("D")
	d.AddSuperclass(b)
	d.AddSuperclass(c)

	obj := NewObject(d)
	ctx, err := buildCallContext(f, obj, "m", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, chainDeclarers(ctx))
}

func TestSimpleChainPrivateMethodHidesAncestors(t *testing.T) {
	f := NewFoundation("unknown")
	a := NewClass("A")
	a.SetMethod(NewMethod("m", Public, noopImpl))
	b := NewClass("B")
	b.AddSuperclass(a)
	b.SetMethod(NewMethod("m", Private, noopImpl))

	obj := NewObject(b)
	ctx, err := buildCallContext(f, obj, "m", ModePublic)
	require.NoError(t, err)

	assert.Nil(t, ctx, "no public implementation resolves and there is no unknown-method handler either")
}

func TestSimpleChainPrivateMethodVisibleWithoutPublicMode(t *testing.T) {
	f := NewFoundation("unknown")
	a := NewClass("A")
	a.SetMethod(NewMethod("m", Public, noopImpl))
	b := NewClass("B")
	b.AddSuperclass(a)
	b.SetMethod(NewMethod("m", Private, noopImpl))

	obj := NewObject(b)
	ctx, err := buildCallContext(f, obj, "m", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A"}, chainDeclarers(ctx))
}

func TestFilterOrderingPrecedesMainChain(t *testing.T) {
	f := NewFoundation("unknown")
	a := NewClass("A")
	a.AddFilter("logAccess")
	a.SetMethod(NewMethod("logAccess", Public, noopImpl))
	a.SetMethod(NewMethod("m", Public, noopImpl))

	obj := NewObject(a)
	ctx, err := buildCallContext(f, obj, "m", 0)
	require.NoError(t, err)

	require.Len(t, ctx.Chain, 2)
	assert.True(t, ctx.Chain[0].IsFilter)
	assert.Equal(t, "logAccess", ctx.Chain[0].Method.Name)
	assert.False(t, ctx.Chain[1].IsFilter)
	assert.Equal(t, "m", ctx.Chain[1].Method.Name)
}

func TestMixinPrecedesSelfClass(t *testing.T) {
	f := NewFoundation("unknown")
	mixin := NewClass("Logged")
	mixin.SetMethod(NewMethod("m", Public, noopImpl))
	self := NewClass("Widget")
	self.SetMethod(NewMethod("m", Public, noopImpl))

	obj := NewObject(self)
	obj.AddMixin(mixin)

	ctx, err := buildCallContext(f, obj, "m", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"Logged", "Widget"}, chainDeclarers(ctx))
}

func TestUnknownMethodFallback(t *testing.T) {
	f := NewFoundation("unknown")
	a := NewClass("A")
	a.SetMethod(NewMethod("unknown", Public, noopImpl))

	obj := NewObject(a)
	ctx, err := buildCallContext(f, obj, "doesNotExist", 0)
	require.NoError(t, err)

	assert.True(t, ctx.Outcome.Unknown)
	assert.Equal(t, int64(-1), ctx.GlobalEpoch)
	assert.Equal(t, []string{"unknown"}, chainNames(ctx))
}

func TestOverrideChainExcludesOtherAncestorMethods(t *testing.T) {
	f := NewFoundation("unknown")
	a := NewClass("A")
	a.SetMethod(NewMethod("m", Public, noopImpl))
	a.SetMethod(NewMethod("n", Public, noopImpl))
	b := NewClass("B")
	b.AddSuperclass(a)
	b.SetMethod(NewMethod("m", Public, noopImpl))

	obj := NewObject(b)
	ctx, err := buildCallContext(f, obj, "m", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, chainDeclarers(ctx))
}

func TestAncestorPrivateMethodHiddenUnlessRequested(t *testing.T) {
	f := NewFoundation("unknown")
	a := NewClass("A")
	a.SetMethod(NewMethod("m", Private, noopImpl))
	b := NewClass("B")
	b.AddSuperclass(a)

	obj := NewObject(b)

	ctx, err := buildCallContext(f, obj, "m", 0)
	require.NoError(t, err)
	assert.Nil(t, ctx, "A's private method is not inherited by B, so nothing resolves at all")

	ctx, err = buildCallContext(f, obj, "m", ModePrivate)
	require.NoError(t, err)
	require.NotNil(t, ctx)
	assert.Equal(t, []string{"A"}, chainDeclarers(ctx), "explicit ModePrivate surfaces it")
}

func TestObjectOwnPrivateMethodAbortsEntireBuildWhenPublicRequired(t *testing.T) {
	f := NewFoundation("unknown")
	a := NewClass("A")
	a.SetMethod(NewMethod("m", Public, noopImpl))

	obj := NewObject(a)
	obj.SetMethod(NewMethod("m", Private, noopImpl))

	ctx, err := buildCallContext(f, obj, "m", ModePublic)
	require.NoError(t, err)
	assert.Nil(t, ctx, "a non-public per-instance method hides every ancestor too, so nothing resolves")
}

func TestClassSimpleChainDoesNotReprocessAncestorMixins(t *testing.T) {
	f := NewFoundation("unknown")

	ma := NewClass("MA")
	ma.SetMethod(NewMethod("m", Public, noopImpl))
	mb := NewClass("MB")
	mb.SetMethod(NewMethod("m", Public, noopImpl))

	b := NewClass("B")
	b.AddMixin(mb)
	b.SetMethod(NewMethod("m", Public, noopImpl))

	a := NewClass("A")
	a.AddSuperclass(b)
	a.AddMixin(ma)
	a.SetMethod(NewMethod("m", Public, noopImpl))

	obj := NewObject(a)
	ctx, err := buildCallContext(f, obj, "m", 0)
	require.NoError(t, err)

	// MA and MB are distinct methods (not reachable twice), so none of them
	// dedupe away; each ancestor's mixins are folded in exactly once, by
	// simpleChainBuild's own step 3, not again inside classSimpleChain.
	assert.Equal(t, []string{"MA", "MB", "A", "B"}, chainDeclarers(ctx))
}

func TestComeAsLateAsPossibleRelocatesRepeatedMixin(t *testing.T) {
	f := NewFoundation("unknown")
	mixin := NewClass("Logged")
	mixin.SetMethod(NewMethod("m", Public, noopImpl))

	base := NewClass("Base")
	base.AddMixin(mixin)

	self := NewClass("Widget")
	self.AddSuperclass(base)

	obj := NewObject(self)
	obj.AddMixin(mixin)

	ctx, err := buildCallContext(f, obj, "m", 0)
	require.NoError(t, err)

	// Logged::m is reachable both directly through obj's own mixin list and
	// through Base's mixin list; it must appear exactly once, relocated to
	// the latest point it was reached.
	assert.Equal(t, []string{"Logged"}, chainDeclarers(ctx))
}
