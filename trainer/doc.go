// Package trainer provides the batch gradient descent training loop for the linear model.
// It runs a fixed number of iterations over the whole dataset and logs the weights
// at a fixed cadence, without any convergence check.
package trainer
