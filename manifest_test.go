package mrc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `
[[classes]]
name = "Base"
methods = ["greet"]

[[classes]]
name = "Derived"
superclasses = ["Base"]
methods = ["greet", "farewell"]
constructor = "init"

[[objects]]
name = "widget"
class = "Derived"
`

func TestReadManifestParsesClassesAndObjects(t *testing.T) {
	m, err := ReadManifest(strings.NewReader(testManifest))
	require.NoError(t, err)
	require.Len(t, m.Classes, 2)
	require.Len(t, m.Objects, 1)

	assert.Equal(t, "Derived", m.Classes[1].Name)
	assert.Equal(t, []string{"Base"}, m.Classes[1].Superclasses)
	assert.Equal(t, "init", m.Classes[1].Constructor)
}

func TestManifestBuildWiresClassGraph(t *testing.T) {
	m, err := ReadManifest(strings.NewReader(testManifest))
	require.NoError(t, err)

	impl := func(env *InvocationEnv, ctx *CallContext) (Status, error) {
		return StatusOK, nil
	}

	f, classes, objects, err := m.Build("unknown", impl)
	require.NoError(t, err)

	widget, ok := objects["widget"]
	require.True(t, ok)
	assert.Same(t, classes["Derived"], widget.SelfClass)

	ctx, err := Resolve(f, widget, "greet", ModePublic)
	require.NoError(t, err)
	assert.Len(t, ctx.Chain, 2)

	ctorClass := classes["Derived"]
	require.NotNil(t, ctorClass.Constructor)
	assert.Equal(t, "init", ctorClass.Constructor.Name)
}

func TestManifestBuildRejectsUndefinedSuperclass(t *testing.T) {
	bad := `
[[classes]]
name = "Derived"
superclasses = ["Ghost"]
`
	m, err := ReadManifest(strings.NewReader(bad))
	require.NoError(t, err)

	_, _, _, err = m.Build("unknown", func(*InvocationEnv, *CallContext) (Status, error) {
		return StatusOK, nil
	})
	assert.Error(t, err)
}
