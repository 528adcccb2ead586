// Package optim implements optimizers over nn parameter gradient
// accumulators.
//
// The training loop contract: run a graph's backward pass (which calls
// AccGradParameters into each parameter's gradient buffer), call Step to
// apply the update, then ZeroGrad before the next iteration.
package optim
