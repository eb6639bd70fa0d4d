package visualize

import (
	"bytes"
	"testing"

	"github.com/coreobj/mrc/internal/chain"
	"github.com/stretchr/testify/assert"
)

func TestBuildHierarchyTreeReflectsDeclaredSupersAndMixins(t *testing.T) {
	mixin := chain.NewClass("Logged")
	base := chain.NewClass("Base")
	derived := chain.NewClass("Derived")
	derived.AddSuperclass(base)
	derived.AddMixin(mixin)

	tree := BuildHierarchyTree(derived)

	assert.Equal(t, "Derived", tree.Root.Name)
	assert.Equal(t, []string{"Logged"}, tree.Root.Mixins)
	assert.Len(t, tree.Root.Supers, 1)
	assert.Equal(t, "Base", tree.Root.Supers[0].Name)

	var buf bytes.Buffer
	tree.WriteTree(&buf)
	assert.Contains(t, buf.String(), "Derived (mixins: Logged)")
	assert.Contains(t, buf.String(), "  Base")
}
