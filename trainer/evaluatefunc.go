package trainer

import "fmt"

import "gonum.org/v1/gonum/stat"

import "github.com/neurlang/regression/datasets"
import "github.com/neurlang/regression/net/linear"

// Evaluation compares trained weights with the closed form least squares line
type Evaluation struct {
	Cost float64 // halved mean squared error of the trained weights

	LeastSquares     linear.Weights // closed form fit of the same dataset
	LeastSquaresCost float64

	RSquared float64 // coefficient of determination of the trained weights
}

func (e Evaluation) String() string {
	return fmt.Sprintf("cost: %f, least squares %s (cost: %f), r2: %f",
		e.Cost, e.LeastSquares, e.LeastSquaresCost, e.RSquared)
}

func floats(values []int) []float64 {
	var out = make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// NewEvaluateFunc returns a function evaluating weights against dataset
func NewEvaluateFunc(dataset datasets.Dataset) func(linear.Weights) Evaluation {
	xs := floats(dataset.Inputs)
	ys := floats(dataset.Targets)
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	ls := linear.Weights{W: slope, B: intercept}
	lsCost := linear.Cost(dataset.Inputs, dataset.Targets, ls)

	return func(ws linear.Weights) Evaluation {
		return Evaluation{
			Cost:             linear.Cost(dataset.Inputs, dataset.Targets, ws),
			LeastSquares:     ls,
			LeastSquaresCost: lsCost,
			RSquared:         stat.RSquared(xs, ys, nil, ws.B, ws.W),
		}
	}
}
