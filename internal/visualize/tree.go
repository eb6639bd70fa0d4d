// Package visualize renders class hierarchies and call chains as indented
// trees for CLI debug output.
package visualize

import (
	"fmt"
	"io"
	"strings"

	"github.com/coreobj/mrc/internal/chain"
)

// HierarchyTree is a node-keyed tree mirroring a class's declared
// superclass graph, repurposed from a dependency-resolution tree into a
// class-hierarchy tree.
type HierarchyTree struct {
	NodeList map[string]*TreeNode
	Root     *TreeNode
}

// TreeNode holds one class's name and the classes it directly depends on
// for linearization: its superclasses and mixins.
type TreeNode struct {
	Name   string
	Mixins []string
	Supers []*TreeNode
}

// BuildHierarchyTree walks c's declared superclasses (not the linearized,
// deduplicated form BuildHierarchy produces) so the printed tree shows the
// raw shape of the class graph a reader would recognize from its
// definitions.
func BuildHierarchyTree(c *chain.Class) *HierarchyTree {
	tree := &HierarchyTree{NodeList: make(map[string]*TreeNode)}
	tree.Root = tree.node(c)
	return tree
}

func (t *HierarchyTree) node(c *chain.Class) *TreeNode {
	if existing, ok := t.NodeList[c.Name]; ok {
		return existing
	}
	n := &TreeNode{Name: c.Name}
	t.NodeList[c.Name] = n
	for _, mixin := range c.Mixins {
		n.Mixins = append(n.Mixins, mixin.Name)
	}
	for _, super := range c.Superclasses {
		n.Supers = append(n.Supers, t.node(super))
	}
	return n
}

// WriteTree prints the tree rooted at t.Root as indented lines.
func (t *HierarchyTree) WriteTree(w io.Writer) {
	writeNode(w, t.Root, 0)
}

func writeNode(w io.Writer, n *TreeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	if len(n.Mixins) == 0 {
		fmt.Fprintf(w, "%s%s\n", indent, n.Name)
	} else {
		fmt.Fprintf(w, "%s%s (mixins: %s)\n", indent, n.Name, strings.Join(n.Mixins, ", "))
	}
	for _, super := range n.Supers {
		writeNode(w, super, depth+1)
	}
}

// WriteChain prints a resolved call chain in invocation order, marking
// filter entries and the declaring class of each step.
func WriteChain(w io.Writer, ctx *chain.CallContext) {
	for i, entry := range ctx.Chain {
		declarer := "<object>"
		if entry.Method.DeclaringClass != nil {
			declarer = entry.Method.DeclaringClass.Name
		}
		marker := ""
		if entry.IsFilter {
			marker = " [filter]"
		}
		fmt.Fprintf(w, "%2d: %s::%s%s\n", i, declarer, entry.Method.Name, marker)
	}
}
