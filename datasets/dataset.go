// Package datasets implements the input-target sample set and its text loader
package datasets

import "github.com/pkg/errors"

// InitialCapacity is the number of samples reserved by New before the first growth
const InitialCapacity = 256

// Dataset holds integer inputs paired positionally with integer targets
type Dataset struct {
	Inputs  []int
	Targets []int
}

// New returns an empty dataset with InitialCapacity reserved
func New() Dataset {
	return Dataset{
		Inputs:  make([]int, 0, InitialCapacity),
		Targets: make([]int, 0, InitialCapacity),
	}
}

// Append adds one input-target pair to the end of the dataset
func (d *Dataset) Append(x, y int) {
	d.Inputs = append(d.Inputs, x)
	d.Targets = append(d.Targets, y)
}

// Len returns the number of samples
func (d Dataset) Len() int {
	return len(d.Inputs)
}

// At returns the n-th input and target
func (d Dataset) At(n int) (x, y int) {
	return d.Inputs[n], d.Targets[n]
}

// ErrEmpty is returned by Validate for a dataset without samples
var ErrEmpty = errors.New("dataset has no samples")

// Validate reports whether the dataset can be trained on
func (d Dataset) Validate() error {
	if len(d.Inputs) != len(d.Targets) {
		return errors.Errorf("dataset has %d inputs but %d targets", len(d.Inputs), len(d.Targets))
	}
	if len(d.Inputs) == 0 {
		return ErrEmpty
	}
	return nil
}
