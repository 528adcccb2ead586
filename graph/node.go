package graph

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Hanlos/BigDL/nn"
	"github.com/Hanlos/BigDL/tensor"
)

// Node is a graph vertex: a module plus directed edges to its predecessor
// and successor nodes. An edge A -> B means B consumes A's output.
//
// prevs is the canonical predecessor list: both the forward pass (when it
// assembles a multi-predecessor node's input table) and the backward pass
// (when it picks this node's share out of a successor's gradient table)
// index into the same slice, so the two orderings can never diverge.
//
// Node identity is stable for the lifetime of the graph. Once a node is
// part of a built graph it is frozen and its edges can no longer change.
type Node[B tensor.Backend] struct {
	name   string
	module nn.Module[B] // nil only for the planner's synthetic sink
	prevs  []*Node[B]
	nexts  []*Node[B]
	frozen bool

	output    *nn.Activity[B] // last forward output, read by successors
	gradInput *nn.Activity[B] // last backward gradient, read by predecessors
}

// NewNode creates a node wrapping the given module, with a generated name.
func NewNode[B tensor.Backend](module nn.Module[B]) *Node[B] {
	if module == nil {
		panic("graph.NewNode: nil module")
	}
	return &Node[B]{
		name:   uuid.NewString()[:8],
		module: module,
	}
}

// NewNamedNode creates a node wrapping the given module with an explicit
// name. Names appear in plan dumps and error messages.
func NewNamedNode[B tensor.Backend](name string, module nn.Module[B]) *Node[B] {
	n := NewNode(module)
	n.name = name
	return n
}

// Input creates a node wrapping an nn.Input placeholder, marking a graph
// entry point.
func Input[B tensor.Backend]() *Node[B] {
	return NewNode[B](nn.NewInput[B]())
}

// Apply creates a node for the given module and connects every listed
// input node to it, in order. The order determines the layout of the
// node's input table when it has more than one predecessor.
func Apply[B tensor.Backend](module nn.Module[B], inputs ...*Node[B]) *Node[B] {
	n := NewNode(module)
	for _, in := range inputs {
		in.Connect(n)
	}
	return n
}

// Connect adds a directed edge from n to the given node, declaring that it
// consumes n's output.
//
// Panics if either node already belongs to a built graph: graphs are
// immutable after construction.
func (n *Node[B]) Connect(to *Node[B]) {
	if n.frozen || to.frozen {
		panic(fmt.Sprintf("graph: cannot connect %s -> %s: node already belongs to a built graph", n, to))
	}
	n.connect(to)
}

// connect links the edge without the freeze check. Used internally by the
// planner for the synthetic sink.
func (n *Node[B]) connect(to *Node[B]) {
	n.nexts = append(n.nexts, to)
	to.prevs = append(to.prevs, n)
}

// disconnect removes the edge n -> to, if present.
func (n *Node[B]) disconnect(to *Node[B]) {
	for i, next := range n.nexts {
		if next == to {
			n.nexts = append(n.nexts[:i], n.nexts[i+1:]...)
			break
		}
	}
	for i, prev := range to.prevs {
		if prev == n {
			to.prevs = append(to.prevs[:i], to.prevs[i+1:]...)
			break
		}
	}
}

// prevIndex returns the position of p in n's canonical predecessor list.
func (n *Node[B]) prevIndex(p *Node[B]) int {
	for i, prev := range n.prevs {
		if prev == p {
			return i
		}
	}
	panic(fmt.Sprintf("graph: %s is not a predecessor of %s", p, n))
}

// Name returns the node's name.
func (n *Node[B]) Name() string {
	return n.name
}

// Module returns the node's module.
func (n *Node[B]) Module() nn.Module[B] {
	return n.module
}

// Output returns the node's last forward output, or nil before the first
// forward pass.
func (n *Node[B]) Output() *nn.Activity[B] {
	return n.output
}

// GradInput returns the node's last backward gradient, or nil before the
// first backward pass.
func (n *Node[B]) GradInput() *nn.Activity[B] {
	return n.gradInput
}

// String returns a human-readable representation of the node.
func (n *Node[B]) String() string {
	if n.module == nil {
		return fmt.Sprintf("Node(%s)", n.name)
	}
	return fmt.Sprintf("Node(%s, %T)", n.name, n.module)
}
