// Package tensor provides the dense tensor type that flows through the
// computation graph.
//
// The package is split into three layers:
//
//   - RawTensor: untyped dense storage (flat buffer + shape + strides).
//     Backends operate on RawTensors.
//   - Tensor[T, B]: a typed, backend-bound view over a RawTensor with
//     method-style operations (Add, MatMul, ...).
//   - Backend: the interface compute backends implement. The only backend
//     shipped here is the pure-Go CPU backend in backend/cpu.
//
// Tensors are plain values with no graph bookkeeping of their own; gradient
// propagation is the job of the graph executor, not the tensor layer.
package tensor
