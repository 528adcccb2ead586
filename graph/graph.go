package graph

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/Hanlos/BigDL/nn"
	"github.com/Hanlos/BigDL/tensor"
)

// Graph executes a fixed DAG of modules over a precomputed execution plan.
//
// The plan and the per-position caches are created once at construction and
// reused on every pass; forward and backward calls overwrite the caches in
// place. The three passes are:
//
//	UpdateOutput:      forward evaluation in plan order
//	UpdateGradInput:   gradient w.r.t. the graph input, reverse plan order
//	AccGradParameters: parameter-gradient accumulation, reverse plan order
//
// UpdateGradInput must be called with the same input as the most recent
// UpdateOutput: the forward cache is reused, not rebuilt. AccGradParameters
// must follow an UpdateGradInput call, whose per-position gradients it
// replays. Violating this ordering is a usage error; beyond a nil-cache
// panic it is not guarded on the hot path.
//
// Graph itself satisfies nn.Module, so a built graph can be the element of
// a node in a larger graph.
type Graph[B tensor.Backend] struct {
	inputs  []*Node[B]
	outputs []*Node[B]
	plan    []*Node[B]
	inPlan  map[*Node[B]]bool

	// Per-position caches, indexed by plan position.
	forwardCache []*nn.Activity[B]            // input fed to each node
	gradCache    []*tensor.Tensor[float32, B] // summed gradient fed to each node
}

// New builds a graph from its declared input and output nodes.
//
// Construction derives the execution plan: a synthetic sink is attached
// after every output, the sub-graph that reaches the sink is sorted
// topologically (anything that cannot reach an output is silently
// excluded), and the plan is repositioned so declared inputs occupy the
// leading slots and declared outputs the trailing slots, in declared
// order.
//
// Fails with a configuration error on an empty input or output list, a
// cycle, a node reused from another built graph, duplicate declarations,
// or a mismatch between the declared inputs and the actual source nodes of
// the plan. All nodes in the plan are frozen on success.
func New[B tensor.Backend](inputs, outputs []*Node[B]) (*Graph[B], error) {
	if len(inputs) == 0 {
		return nil, errors.New("graph: at least one input node is required")
	}
	if len(outputs) == 0 {
		return nil, errors.New("graph: at least one output node is required")
	}
	seen := make(map[*Node[B]]bool, len(outputs))
	for _, out := range outputs {
		if seen[out] {
			return nil, errors.Errorf("graph: output node %s declared twice", out)
		}
		seen[out] = true
	}

	// The sink turns "reaches some output" into "reaches the sink", so one
	// traversal covers every output.
	sink := &Node[B]{name: "sink"}
	for _, out := range outputs {
		out.connect(sink)
	}
	defer func() {
		for _, out := range outputs {
			out.disconnect(sink)
		}
	}()

	plan, err := sortTopologically(sink)
	if err != nil {
		return nil, errors.Wrap(err, "graph")
	}
	plan = plan[:len(plan)-1] // drop the sink, always last

	for _, n := range plan {
		if n.frozen {
			return nil, errors.Errorf("graph: node %s already belongs to a built graph", n)
		}
	}
	if err := checkRoots(plan, inputs); err != nil {
		return nil, errors.Wrap(err, "graph")
	}
	if err := reposition(plan, inputs, outputs); err != nil {
		return nil, errors.Wrap(err, "graph")
	}

	inPlan := make(map[*Node[B]]bool, len(plan))
	for _, n := range plan {
		n.frozen = true
		inPlan[n] = true
	}

	if klog.V(2).Enabled() {
		names := make([]string, len(plan))
		for i, n := range plan {
			names[i] = n.String()
		}
		klog.V(2).Infof("graph: execution plan: %s", strings.Join(names, " -> "))
	}

	return &Graph[B]{
		inputs:       append([]*Node[B](nil), inputs...),
		outputs:      append([]*Node[B](nil), outputs...),
		plan:         plan,
		inPlan:       inPlan,
		forwardCache: make([]*nn.Activity[B], len(plan)),
		gradCache:    make([]*tensor.Tensor[float32, B], len(plan)),
	}, nil
}

// UpdateOutput runs the forward pass over the execution plan.
//
// With one declared input the activity must be a plain tensor; with n > 1
// declared inputs it must be a table of exactly n tensors, distributed to
// the input nodes in declared order. The result follows the same rule for
// the declared outputs.
func (g *Graph[B]) UpdateOutput(input *nn.Activity[B]) *nn.Activity[B] {
	// Feed the declared inputs, which occupy the leading plan positions.
	if len(g.inputs) == 1 {
		act := nn.FromTensor(input.Tensor())
		g.forwardCache[0] = act
		g.plan[0].output = g.plan[0].module.UpdateOutput(act)
	} else {
		table := input.Table()
		if len(table) != len(g.inputs) {
			panic(fmt.Sprintf("graph: expected an input table of %d tensors, got %d", len(g.inputs), len(table)))
		}
		for i := range g.inputs {
			act := nn.FromTensor(table[i])
			g.forwardCache[i] = act
			g.plan[i].output = g.plan[i].module.UpdateOutput(act)
		}
	}

	// Interior and output nodes read their predecessors' live outputs.
	for i := len(g.inputs); i < len(g.plan); i++ {
		node := g.plan[i]
		var act *nn.Activity[B]
		if len(node.prevs) == 1 {
			act = nn.FromTensor(node.prevs[0].output.Tensor())
		} else {
			ts := make([]*tensor.Tensor[float32, B], len(node.prevs))
			for j, prev := range node.prevs {
				ts[j] = prev.output.Tensor()
			}
			act = nn.FromTable(ts...)
		}
		g.forwardCache[i] = act
		node.output = node.module.UpdateOutput(act)
	}

	if len(g.outputs) == 1 {
		return nn.FromTensor(g.outputs[0].output.Tensor())
	}
	ts := make([]*tensor.Tensor[float32, B], len(g.outputs))
	for i, out := range g.outputs {
		ts[i] = out.output.Tensor()
	}
	return nn.FromTable(ts...)
}

// UpdateGradInput runs the backward pass in reverse plan order and returns
// the gradient with respect to the graph input.
//
// Output positions are seeded directly from gradOutput (a tensor for one
// declared output, a table of matching length otherwise). Every other
// node's incoming gradient is summed over its successors before its module
// runs; the summed gradient is cached per position for the subsequent
// AccGradParameters pass.
func (g *Graph[B]) UpdateGradInput(input, gradOutput *nn.Activity[B]) *nn.Activity[B] {
	// Seed the trailing output positions.
	if len(g.outputs) == 1 {
		g.seedGradient(len(g.plan)-1, gradOutput.Tensor())
	} else {
		table := gradOutput.Table()
		if len(table) != len(g.outputs) {
			panic(fmt.Sprintf("graph: expected a gradOutput table of %d tensors, got %d", len(g.outputs), len(table)))
		}
		for i, t := range table {
			g.seedGradient(len(g.plan)-len(g.outputs)+i, t)
		}
	}

	// Walk the interior and input positions in reverse.
	for i := len(g.plan) - len(g.outputs) - 1; i >= 0; i-- {
		node := g.plan[i]
		sum := g.incomingGradient(node)
		g.gradCache[i] = sum
		node.gradInput = node.module.UpdateGradInput(g.forwardCache[i], nn.FromTensor(sum))
	}

	if len(g.inputs) == 1 {
		return nn.FromTensor(g.inputs[0].gradInput.Tensor())
	}
	ts := make([]*tensor.Tensor[float32, B], len(g.inputs))
	for i, in := range g.inputs {
		ts[i] = in.gradInput.Tensor()
	}
	return nn.FromTable(ts...)
}

// seedGradient assigns an output position's gradient and runs its module's
// backward step.
func (g *Graph[B]) seedGradient(pos int, grad *tensor.Tensor[float32, B]) {
	node := g.plan[pos]
	g.gradCache[pos] = grad
	node.gradInput = node.module.UpdateGradInput(g.forwardCache[pos], nn.FromTensor(grad))
}

// incomingGradient sums the gradient shares arriving from a node's
// successors.
//
// A successor with a single predecessor contributes its whole gradInput
// tensor; one with several contributes the element at this node's position
// in its canonical predecessor list. Shares are summed element-wise: the
// fan-in accumulation that makes backpropagation through shared
// sub-computations correct.
//
// Successors outside the plan (heads of dead branches) carry no gradient
// and contribute nothing.
func (g *Graph[B]) incomingGradient(node *Node[B]) *tensor.Tensor[float32, B] {
	var sum *tensor.Tensor[float32, B]
	for _, next := range node.nexts {
		if !g.inPlan[next] {
			continue
		}
		var share *tensor.Tensor[float32, B]
		if len(next.prevs) == 1 {
			share = next.gradInput.Tensor()
		} else {
			share = next.gradInput.Table()[next.prevIndex(node)]
		}
		if sum == nil {
			sum = share
		} else {
			sum = sum.Add(share)
		}
	}
	if sum == nil {
		panic(fmt.Sprintf("graph: node %s has no successors in the plan", node))
	}
	return sum
}

// AccGradParameters replays the reverse plan order, feeding every module
// its cached forward input and cached gradient, scaled by scale.
//
// Must follow an UpdateGradInput call: it consumes the per-position
// gradients that pass produced.
func (g *Graph[B]) AccGradParameters(input, gradOutput *nn.Activity[B], scale float32) {
	for i := len(g.plan) - 1; i >= 0; i-- {
		grad := g.gradCache[i]
		if grad == nil {
			panic("graph: AccGradParameters called before UpdateGradInput")
		}
		g.plan[i].module.AccGradParameters(g.forwardCache[i], nn.FromTensor(grad), scale)
	}
}

// Forward is an alias for UpdateOutput.
func (g *Graph[B]) Forward(input *nn.Activity[B]) *nn.Activity[B] {
	return g.UpdateOutput(input)
}

// Backward computes the input gradient and accumulates parameter gradients
// with scale 1, the common training step.
func (g *Graph[B]) Backward(input, gradOutput *nn.Activity[B]) *nn.Activity[B] {
	gradInput := g.UpdateGradInput(input, gradOutput)
	g.AccGradParameters(input, gradOutput, 1)
	return gradInput
}

// Parameters returns the trainable parameters of every module in the plan,
// in plan order.
func (g *Graph[B]) Parameters() []*nn.Parameter[B] {
	var params []*nn.Parameter[B]
	for _, n := range g.plan {
		params = append(params, n.module.Parameters()...)
	}
	return params
}

// Plan returns a copy of the execution plan.
func (g *Graph[B]) Plan() []*Node[B] {
	return append([]*Node[B](nil), g.plan...)
}
