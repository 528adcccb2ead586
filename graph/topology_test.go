package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hanlos/BigDL/backend/cpu"
	"github.com/Hanlos/BigDL/nn"
)

type testBackend = *cpu.CPUBackend

func idNode(name string) *Node[testBackend] {
	return NewNamedNode(name, nn.NewIdentity[testBackend]())
}

// planPositions maps each node to its plan index.
func planPositions(plan []*Node[testBackend]) map[*Node[testBackend]]int {
	pos := make(map[*Node[testBackend]]int, len(plan))
	for i, n := range plan {
		pos[n] = i
	}
	return pos
}

// TestSortTopologically_Diamond checks dependency order on a diamond:
// every edge's source must precede its target, and the sink comes last.
func TestSortTopologically_Diamond(t *testing.T) {
	in := idNode("in")
	left := idNode("left")
	right := idNode("right")
	join := idNode("join")

	in.Connect(left)
	in.Connect(right)
	left.Connect(join)
	right.Connect(join)

	sink := &Node[testBackend]{name: "sink"}
	join.connect(sink)

	plan, err := sortTopologically(sink)
	require.NoError(t, err)
	require.Len(t, plan, 5)
	assert.Same(t, sink, plan[4])

	pos := planPositions(plan)
	for _, n := range plan {
		for _, next := range n.nexts {
			assert.Less(t, pos[n], pos[next], "%s must precede %s", n, next)
		}
	}
}

// TestSortTopologically_DeadBranch verifies nodes that cannot reach the sink
// are excluded from the plan.
func TestSortTopologically_DeadBranch(t *testing.T) {
	in := idNode("in")
	live := idNode("live")
	dead := idNode("dead")

	in.Connect(live)
	in.Connect(dead) // no path from dead to the sink

	sink := &Node[testBackend]{name: "sink"}
	live.connect(sink)

	plan, err := sortTopologically(sink)
	require.NoError(t, err)

	assert.NotContains(t, plan, dead)
	assert.Contains(t, plan, in)
	assert.Contains(t, plan, live)
}

// TestSortTopologically_Cycle verifies cycle detection.
func TestSortTopologically_Cycle(t *testing.T) {
	a := idNode("a")
	b := idNode("b")
	out := idNode("out")

	a.Connect(b)
	b.Connect(a)
	b.Connect(out)

	sink := &Node[testBackend]{name: "sink"}
	out.connect(sink)

	_, err := sortTopologically(sink)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

// TestCheckRoots covers the source-node/declared-input agreement checks.
func TestCheckRoots(t *testing.T) {
	in := idNode("in")
	mid := idNode("mid")
	in.Connect(mid)
	plan := []*Node[testBackend]{in, mid}

	assert.NoError(t, checkRoots(plan, []*Node[testBackend]{in}))

	// A source node that was never declared.
	err := checkRoots(plan, []*Node[testBackend]{mid})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a declared input")

	// The same input declared twice.
	err = checkRoots(plan, []*Node[testBackend]{in, in})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declared twice")

	// A declared input that is not a source of the plan.
	stray := idNode("stray")
	err = checkRoots(plan, []*Node[testBackend]{in, stray})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source nodes")
}

// TestReposition verifies inputs land in the leading slots and outputs in
// the trailing slots, in declared order, without breaking dependency order.
func TestReposition(t *testing.T) {
	in0 := idNode("in0")
	in1 := idNode("in1")
	mid := idNode("mid")
	out0 := idNode("out0")
	out1 := idNode("out1")

	in0.Connect(mid)
	in1.Connect(mid)
	mid.Connect(out0)
	mid.Connect(out1)

	// A valid topological order with the boundary nodes out of place.
	plan := []*Node[testBackend]{in1, in0, mid, out1, out0}

	err := reposition(plan,
		[]*Node[testBackend]{in0, in1},
		[]*Node[testBackend]{out0, out1})
	require.NoError(t, err)

	assert.Equal(t, []*Node[testBackend]{in0, in1, mid, out0, out1}, plan)

	pos := planPositions(plan)
	for _, n := range plan {
		for _, next := range n.nexts {
			assert.Less(t, pos[n], pos[next])
		}
	}
}

// TestReposition_MissingNode verifies boundary nodes absent from the plan
// are reported.
func TestReposition_MissingNode(t *testing.T) {
	in := idNode("in")
	out := idNode("out")
	in.Connect(out)
	stray := idNode("stray")

	plan := []*Node[testBackend]{in, out}

	err := reposition(plan, []*Node[testBackend]{stray}, []*Node[testBackend]{out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not part of the execution plan")

	plan = []*Node[testBackend]{in, out}
	err = reposition(plan, []*Node[testBackend]{in}, []*Node[testBackend]{stray})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not part of the execution plan")
}
