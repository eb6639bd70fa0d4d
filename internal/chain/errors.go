package chain

import "github.com/pkg/errors"

// ErrHierarchyCycle is returned when a class's superclass graph contains a
// cycle; the Hierarchy Cache refuses to linearize it.
var ErrHierarchyCycle = errors.New("chain: cyclic superclass graph")

// ErrChainExhausted is returned by Next when InvokeStep is called past the
// end of a call chain.
var ErrChainExhausted = errors.New("chain: call chain exhausted")

// wrapCycle names the offending class in a cycle-detection failure.
func wrapCycle(className string) error {
	return errors.Wrapf(ErrHierarchyCycle, "class %q", className)
}
