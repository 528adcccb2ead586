// Package cpu implements the pure-Go CPU compute backend.
//
// It satisfies tensor.Backend plus the activation capability interfaces
// declared in the nn package (ReLU, Sigmoid, Tanh and their gradients).
// All operations allocate a fresh result tensor; nothing here mutates its
// inputs.
package cpu
