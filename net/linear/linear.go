// Package linear implements the univariate linear model y = w*x + b
package linear

import "fmt"

// Weights is the model, also used to carry the gradient of the model
type Weights struct {
	W float64 // weight of the input
	B float64 // bias
}

// Infer predicts the target of input x
func (ws Weights) Infer(x int) float64 {
	return ws.W*float64(x) + ws.B
}

// String formats the weights the way the training log does
func (ws Weights) String() string {
	return fmt.Sprintf("w: %f, b: %f", ws.W, ws.B)
}

// Step applies one gradient descent update. Both weights move using the same gradient,
// computed from the weights before the update.
func Step(ws, grad Weights, alpha float64) Weights {
	return Weights{
		W: ws.W - alpha*grad.W,
		B: ws.B - alpha*grad.B,
	}
}

// Cost is the halved mean squared error (1/2N)*sum((w*x+b-y)^2)
func Cost(inputs, targets []int, ws Weights) float64 {
	var sum float64
	for i := range inputs {
		r := ws.Infer(inputs[i]) - float64(targets[i])
		sum += r * r
	}
	return sum / float64(2*len(inputs))
}
