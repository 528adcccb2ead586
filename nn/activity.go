package nn

import (
	"fmt"
	"strings"

	"github.com/Hanlos/BigDL/tensor"
)

// Activity is the value type flowing along graph edges: either a single
// tensor or an ordered table of tensors.
//
// The two cases are deliberately explicit. Consumers that require one case
// call Tensor or Table, which panic on the wrong variant; code that handles
// both branches on IsTable. There are no implicit conversions between a
// one-element table and a tensor.
type Activity[B tensor.Backend] struct {
	tensor *tensor.Tensor[float32, B]
	table  []*tensor.Tensor[float32, B]
}

// FromTensor wraps a single tensor as an Activity.
func FromTensor[B tensor.Backend](t *tensor.Tensor[float32, B]) *Activity[B] {
	if t == nil {
		panic("nn.FromTensor: nil tensor")
	}
	return &Activity[B]{tensor: t}
}

// FromTable wraps an ordered sequence of tensors as a table Activity.
// Element order is significant: it must match the edge declaration order of
// the consuming node.
func FromTable[B tensor.Backend](ts ...*tensor.Tensor[float32, B]) *Activity[B] {
	for i, t := range ts {
		if t == nil {
			panic(fmt.Sprintf("nn.FromTable: nil tensor at index %d", i))
		}
	}
	return &Activity[B]{table: ts}
}

// IsTensor reports whether the activity holds a single tensor.
func (a *Activity[B]) IsTensor() bool {
	return a.tensor != nil
}

// IsTable reports whether the activity holds a table of tensors.
func (a *Activity[B]) IsTable() bool {
	return a.table != nil
}

// Tensor returns the single tensor.
// Panics if the activity is a table.
func (a *Activity[B]) Tensor() *tensor.Tensor[float32, B] {
	if a.tensor == nil {
		panic(fmt.Sprintf("nn.Activity: expected a tensor, got a table of length %d", len(a.table)))
	}
	return a.tensor
}

// Table returns the ordered table of tensors.
// Panics if the activity is a single tensor.
func (a *Activity[B]) Table() []*tensor.Tensor[float32, B] {
	if a.table == nil {
		panic("nn.Activity: expected a table, got a tensor")
	}
	return a.table
}

// Len returns the table length, or 1 for a single tensor.
func (a *Activity[B]) Len() int {
	if a.IsTable() {
		return len(a.table)
	}
	return 1
}

// String returns a human-readable representation of the activity.
func (a *Activity[B]) String() string {
	if a.IsTensor() {
		return a.tensor.String()
	}
	parts := make([]string, len(a.table))
	for i, t := range a.table {
		parts[i] = t.String()
	}
	return "Table{" + strings.Join(parts, ", ") + "}"
}
