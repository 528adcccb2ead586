// Package graph executes a fixed directed acyclic graph of nn modules.
//
// A Graph is built once from declared input and output nodes. Construction
// derives a single linear execution plan (a topological order with the
// declared inputs fixed at the front and the declared outputs at the back)
// and validates the graph: cycles, undeclared sources and dead entry points
// are configuration errors. After construction the graph is immutable;
// every forward and backward call replays the same plan over per-position
// caches.
//
// Gradients fan in: when a node's output is consumed by several
// successors, the backward pass sums the per-successor gradient shares
// element-wise before invoking the node's UpdateGradInput.
//
// A Graph itself satisfies nn.Module, so a built graph can serve as the
// element of a node in a larger graph.
//
// Graphs are not safe for concurrent use: all caches are mutated in place,
// and the expected pattern is one graph instance per worker.
package graph
