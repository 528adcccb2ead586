package nn

import (
	"math"

	"github.com/Hanlos/BigDL/tensor"
)

// Xavier initializes a tensor with Xavier/Glorot uniform distribution.
//
// Values are sampled uniformly from [-bound, bound] where
// bound = sqrt(6 / (fanIn + fanOut)). This keeps activation variance
// stable across layers at the start of training.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	bound := float32(math.Sqrt(6.0 / float64(fanIn+fanOut)))
	return tensor.Rand[float32](shape, -bound, bound, backend)
}
