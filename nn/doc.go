// Package nn defines the module contract computational graph elements
// satisfy, and a set of concrete modules.
//
// The contract (Module) is the classic three-operation one:
//
//   - UpdateOutput: forward evaluation
//   - UpdateGradInput: gradient with respect to the module input
//   - AccGradParameters: accumulation of parameter gradients
//
// Module inputs and outputs are Activity values: either a single tensor or
// an ordered table of tensors, so the same contract serves single-input and
// multi-input graph nodes.
//
// Concrete modules here: Identity, Input (graph entry marker), Linear,
// ReLU, Sigmoid, Tanh, CAddTable, and the Sequential chain container.
// Loss functions live behind the Criterion interface (MSE).
package nn
