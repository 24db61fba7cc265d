// Package learning holds the gradient descent hyperparameters and where training output goes
package learning

import "runtime"
import "strconv"

import "github.com/klauspost/cpuid/v2"
import "github.com/pkg/errors"

type HyperParameters struct {
	W float64 // initial weight
	B float64 // initial bias

	Alpha float64 // learning rate

	Iterations int // last iteration index, training runs 0..Iterations inclusive
	LogEvery   int // log every this many iterations, starting at 0

	// Threads is the number of goroutines computing the gradient (default: 1)
	// Zero picks the number of logical cores
	Threads int

	Output string // file to write the log to, empty means standard output
}

// Defaults returns the hyperparameters used when no settings file overrides them
func Defaults() HyperParameters {
	return HyperParameters{
		Alpha:      0.00001,
		Iterations: 100000,
		LogEvery:   100,
		Threads:    1,
	}
}

// Validate reports the first hyperparameter that training cannot run with
func (h HyperParameters) Validate() error {
	if h.LogEvery <= 0 {
		return &SettingError{Key: "log-every", Value: strconv.Itoa(h.LogEvery), Msg: "must be greater than zero"}
	}
	if h.Iterations < 0 {
		return &SettingError{Key: "iterations", Value: strconv.Itoa(h.Iterations), Msg: "must not be negative"}
	}
	if h.Iterations > MaxInt {
		return &SettingError{Key: "iterations", Value: strconv.Itoa(h.Iterations), Msg: "out of range"}
	}
	if h.Threads < 0 {
		return &SettingError{Key: "threads", Value: strconv.Itoa(h.Threads), Msg: "must not be negative"}
	}
	if len(h.Output) > MaxValueLen {
		return errors.Errorf("output path longer than %d bytes", MaxValueLen)
	}
	return nil
}

// Workers returns the number of goroutines to use for the gradient
func (h HyperParameters) Workers() int {
	if h.Threads > 0 {
		return h.Threads
	}
	// NumCPU honours the affinity mask, cpuid counts every core
	n := runtime.NumCPU()
	if cores := cpuid.CPU.LogicalCores; cores > 0 && cores < n {
		return cores
	}
	return n
}
