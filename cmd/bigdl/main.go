// Package main provides the BigDL-Go command line interface.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/Hanlos/BigDL/backend/cpu"
	"github.com/Hanlos/BigDL/graph"
	"github.com/Hanlos/BigDL/nn"
	"github.com/Hanlos/BigDL/optim"
	"github.com/Hanlos/BigDL/tensor"
)

const version = "v0.1.0-dev"

// B is the backend used by the CLI.
type B = *cpu.CPUBackend

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		return
	}

	switch args[0] {
	case "version":
		fmt.Printf("BigDL-Go %s\n", version)
	case "xor":
		runXOR()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("BigDL-Go - DAG module executor for neural networks")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  xor        Train a small graph model on the XOR problem")
}

// runXOR trains input -> Linear(2,8) -> Tanh -> Linear(8,1) -> Sigmoid on
// the four XOR rows, demonstrating the full graph/criterion/optimizer loop.
func runXOR() {
	const epochs = 3000

	backend := cpu.New()

	in := graph.Input[B]()
	hidden := graph.Apply(nn.NewLinear(2, 8, backend), in)
	act := graph.Apply[B](nn.NewTanh[B](), hidden)
	out := graph.Apply(nn.NewLinear(8, 1, backend), act)
	pred := graph.Apply[B](nn.NewSigmoid[B](), out)

	model, err := graph.New([]*graph.Node[B]{in}, []*graph.Node[B]{pred})
	if err != nil {
		klog.Exitf("failed to build graph: %v", err)
	}

	x, err := tensor.FromSlice([]float32{0, 0, 0, 1, 1, 0, 1, 1}, tensor.Shape{4, 2}, backend)
	if err != nil {
		klog.Exitf("failed to build dataset: %v", err)
	}
	y, err := tensor.FromSlice([]float32{0, 1, 1, 0}, tensor.Shape{4, 1}, backend)
	if err != nil {
		klog.Exitf("failed to build targets: %v", err)
	}

	criterion := nn.NewMSE[B]()
	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.5, Momentum: 0.9})

	bar := progressbar.Default(epochs, "training xor")
	var loss float32
	for epoch := 0; epoch < epochs; epoch++ {
		output := model.Forward(nn.FromTensor(x)).Tensor()
		loss = criterion.Forward(output, y)

		grad := criterion.Backward(output, y)
		model.Backward(nn.FromTensor(x), nn.FromTensor(grad))

		sgd.Step()
		sgd.ZeroGrad()

		_ = bar.Add(1)
		if epoch%500 == 0 {
			klog.V(1).Infof("epoch %d: loss %.6f", epoch, loss)
		}
	}

	fmt.Printf("\nfinal loss: %.6f\n", loss)
	output := model.Forward(nn.FromTensor(x)).Tensor()
	for i := 0; i < 4; i++ {
		fmt.Printf("xor(%.0f, %.0f) = %.3f (want %.0f)\n",
			x.At(i, 0), x.At(i, 1), output.At(i, 0), y.At(i, 0))
	}
}
