package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPinRegistryRefcounts(t *testing.T) {
	r := &pinRegistry{counts: make(map[*Method]int)}
	m := &Method{Name: "m"}

	assert.False(t, r.isPinned(m))

	r.preserve(m)
	r.preserve(m)
	assert.True(t, r.isPinned(m))

	r.release(m)
	assert.True(t, r.isPinned(m))

	r.release(m)
	assert.False(t, r.isPinned(m))
}
