package linear

import "github.com/neurlang/regression/parallel"

// ChunkSize is the number of samples one goroutine accumulates in GradientParallel
const ChunkSize = 4096

// ParallelThreshold is the smallest sample count GradientParallel splits across goroutines
const ParallelThreshold = 16 * ChunkSize

// accumulate returns the unscaled gradient sums over the samples
func accumulate(inputs, targets []int, ws Weights) (sum Weights) {
	for i := range inputs {
		x := float64(inputs[i])
		r := ws.W*x + ws.B - float64(targets[i])
		sum.W += r * x
		sum.B += r
	}
	return
}

// Gradient returns the gradient of the cost with respect to w and b, averaged over the samples.
// The factor 2 of the squared error derivative is left to the learning rate.
func Gradient(inputs, targets []int, ws Weights) Weights {
	sum := accumulate(inputs, targets, ws)
	n := float64(len(inputs))
	return Weights{W: sum.W / n, B: sum.B / n}
}

// GradientParallel computes Gradient using up to workers goroutines.
// Chunk partial sums are added in chunk order, so the result does not depend on workers.
func GradientParallel(inputs, targets []int, ws Weights, workers int) Weights {
	if workers <= 1 || len(inputs) < ParallelThreshold {
		return Gradient(inputs, targets, ws)
	}
	partial := make([]Weights, parallel.Chunks(len(inputs), ChunkSize))
	parallel.ForEachChunk(len(inputs), ChunkSize, workers, func(n, begin, end int) {
		partial[n] = accumulate(inputs[begin:end], targets[begin:end], ws)
	})
	var sum Weights
	for _, p := range partial {
		sum.W += p.W
		sum.B += p.B
	}
	n := float64(len(inputs))
	return Weights{W: sum.W / n, B: sum.B / n}
}
