package graph

import (
	"github.com/pkg/errors"

	"github.com/Hanlos/BigDL/tensor"
)

// DFS visit marks for the topological sort.
const (
	unvisited = iota
	visiting
	visited
)

// sortTopologically walks predecessor edges backwards from sink and returns
// the reachable nodes in dependency order: for every edge A -> B among
// them, A appears strictly before B. The sink itself is the last element.
//
// Nodes that cannot reach the sink are simply never visited, which is how
// dead branches fall out of the plan.
//
// Returns an error if the reachable subgraph contains a cycle.
func sortTopologically[B tensor.Backend](sink *Node[B]) ([]*Node[B], error) {
	marks := make(map[*Node[B]]int)
	order := make([]*Node[B], 0)

	var visit func(n *Node[B]) error
	visit = func(n *Node[B]) error {
		switch marks[n] {
		case visited:
			return nil
		case visiting:
			return errors.Errorf("cycle detected through node %s", n)
		}
		marks[n] = visiting
		for _, prev := range n.prevs {
			if err := visit(prev); err != nil {
				return err
			}
		}
		marks[n] = visited
		order = append(order, n)
		return nil
	}

	if err := visit(sink); err != nil {
		return nil, err
	}
	return order, nil
}

// checkRoots verifies that the nodes with zero predecessors in the plan are
// exactly the declared inputs. This catches callers that forgot to declare
// an input, declared a node that is not actually a source, or declared an
// input whose entire subtree is dead.
func checkRoots[B tensor.Backend](plan []*Node[B], inputs []*Node[B]) error {
	declared := make(map[*Node[B]]bool, len(inputs))
	for _, in := range inputs {
		if declared[in] {
			return errors.Errorf("input node %s declared twice", in)
		}
		declared[in] = true
	}

	roots := 0
	for _, n := range plan {
		if len(n.prevs) > 0 {
			continue
		}
		roots++
		if !declared[n] {
			return errors.Errorf("node %s has no predecessors but is not a declared input", n)
		}
	}

	if roots != len(inputs) {
		return errors.Errorf("declared %d inputs but the graph has %d source nodes reaching an output",
			len(inputs), roots)
	}
	return nil
}

// reposition permutes the plan in place so that the first len(inputs)
// positions are the declared inputs in declared order and the last
// len(outputs) positions are the declared outputs in declared order.
//
// All moves are adjacent pairwise swaps, preserving the relative order of
// every other node; since inputs have no predecessors and outputs have no
// successors inside the plan, the result is still a valid topological
// order. The executor relies on this boundary layout to address its
// per-position caches.
func reposition[B tensor.Backend](plan []*Node[B], inputs, outputs []*Node[B]) error {
	// Inputs drift left into the leading slots, in declared order.
	for i, in := range inputs {
		pos := indexOf(plan, in, i)
		if pos < 0 {
			return errors.Errorf("input node %s is not part of the execution plan", in)
		}
		for j := pos; j > i; j-- {
			plan[j], plan[j-1] = plan[j-1], plan[j]
		}
	}

	// Outputs drift right into the trailing slots, filled right to left so
	// already-placed outputs stay put.
	for i := len(outputs) - 1; i >= 0; i-- {
		target := len(plan) - len(outputs) + i
		pos := -1
		for j := target; j >= 0; j-- {
			if plan[j] == outputs[i] {
				pos = j
				break
			}
		}
		if pos < 0 {
			return errors.Errorf("output node %s is not part of the execution plan", outputs[i])
		}
		for j := pos; j < target; j++ {
			plan[j], plan[j+1] = plan[j+1], plan[j]
		}
	}
	return nil
}

// indexOf returns the position of n in plan at or after from, or -1.
func indexOf[B tensor.Backend](plan []*Node[B], n *Node[B], from int) int {
	for i := from; i < len(plan); i++ {
		if plan[i] == n {
			return i
		}
	}
	return -1
}
