package trainer

import "fmt"
import "io"

import "github.com/pkg/errors"

import "github.com/neurlang/regression/datasets"
import "github.com/neurlang/regression/learning"
import "github.com/neurlang/regression/net/linear"

// LogLine writes one progress line in the training log format
func LogLine(w io.Writer, iteration int, ws linear.Weights) error {
	_, err := fmt.Fprintf(w, "iteration: %d, %s\n", iteration, ws)
	return err
}

// NewLoopFunc returns the training loop. The loop starts from the initial weights of h,
// runs iterations 0..h.Iterations and writes a log line to out whenever the iteration
// is a multiple of h.LogEvery.
func NewLoopFunc(dataset datasets.Dataset, h learning.HyperParameters, out io.Writer) func() (linear.Weights, error) {
	return func() (linear.Weights, error) {
		var ws = linear.Weights{W: h.W, B: h.B}

		if err := dataset.Validate(); err != nil {
			return ws, err
		}
		if err := h.Validate(); err != nil {
			return ws, err
		}

		var workers = h.Workers()

		for i := 0; i <= h.Iterations; i++ {
			grad := linear.GradientParallel(dataset.Inputs, dataset.Targets, ws, workers)
			ws = linear.Step(ws, grad, h.Alpha)

			if i%h.LogEvery == 0 {
				if err := LogLine(out, i, ws); err != nil {
					return ws, errors.Wrapf(err, "writing iteration %d", i)
				}
			}
		}
		return ws, nil
	}
}
