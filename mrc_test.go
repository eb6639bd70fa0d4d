package mrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoImplementor(env *InvocationEnv, ctx *CallContext) (Status, error) {
	return StatusOK, nil
}

func TestResolveInvokeReleaseEndToEnd(t *testing.T) {
	f := NewFoundation("unknown")
	base := NewClass("Base")
	base.SetMethod(NewMethod("greet", Public, echoImplementor))

	derived := NewClass("Derived")
	derived.AddSuperclass(base)
	derived.SetMethod(NewMethod("greet", Public, echoImplementor))

	obj := NewObject(derived)

	ctx, err := Resolve(f, obj, "greet", ModePublic)
	require.NoError(t, err)
	require.Len(t, ctx.Chain, 2)

	status, err := InvokeStep(&InvocationEnv{}, ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusOK, status)

	Release(f, obj, ctx)

	second, err := Resolve(f, obj, "greet", ModePublic)
	require.NoError(t, err)
	assert.Same(t, ctx, second)
}

func TestListMethodsThroughFacade(t *testing.T) {
	f := NewFoundation("unknown")
	c := NewClass("Widget")
	c.SetMethod(NewMethod("render", Public, echoImplementor))
	obj := NewObject(c)

	names, err := ListMethods(f, obj, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"render"}, names)
}
