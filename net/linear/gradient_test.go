package linear

import "fmt"
import "math"
import rand "math/rand/v2"
import "testing"

// bruteGradient recomputes the gradient one partial derivative at a time
func bruteGradient(inputs, targets []int, ws Weights) (dw, db float64) {
	for i := range inputs {
		dw += (ws.W*float64(inputs[i]) + ws.B - float64(targets[i])) * float64(inputs[i])
	}
	for i := range inputs {
		db += ws.W*float64(inputs[i]) + ws.B - float64(targets[i])
	}
	n := float64(len(inputs))
	return dw / n, db / n
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func randomSamples(r *rand.Rand, n int) (inputs, targets []int) {
	for i := 0; i < n; i++ {
		inputs = append(inputs, r.IntN(2001)-1000)
		targets = append(targets, r.IntN(2001)-1000)
	}
	return
}

func TestGradientKnown(t *testing.T) {
	g := Gradient([]int{1, 2, 3}, []int{2, 4, 6}, Weights{})
	if !near(g.W, -28.0/3) || !near(g.B, -4) {
		t.Errorf("gradient %+v", g)
	}
	g = Gradient([]int{1, 2, 3}, []int{2, 4, 6}, Weights{W: 2})
	if g.W != 0 || g.B != 0 {
		t.Errorf("gradient at the optimum %+v", g)
	}
}

func TestGradientBruteForce(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 50; trial++ {
		inputs, targets := randomSamples(r, 1+r.IntN(300))
		ws := Weights{W: r.Float64()*4 - 2, B: r.Float64()*20 - 10}
		g := Gradient(inputs, targets, ws)
		dw, db := bruteGradient(inputs, targets, ws)
		if !near(g.W, dw) || !near(g.B, db) {
			t.Fatalf("trial %d: gradient %+v, brute force (%v, %v)", trial, g, dw, db)
		}
	}
}

func TestGradientScaledTargets(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	inputs, targets := randomSamples(r, 100)
	ws := Weights{W: 0.75, B: -3}
	for _, k := range []int{-3, 0, 1, 2, 10} {
		scaled := make([]int, len(targets))
		var mean float64
		for i, y := range targets {
			scaled[i] = k * y
			mean += float64(y)
		}
		mean /= float64(len(targets))

		g := Gradient(inputs, scaled, ws)
		dw, db := bruteGradient(inputs, scaled, ws)
		if !near(g.W, dw) || !near(g.B, db) {
			t.Errorf("k=%d: gradient %+v, brute force (%v, %v)", k, g, dw, db)
		}
		base := Gradient(inputs, targets, ws)
		if shift := g.B - base.B; math.Abs(shift+float64(k-1)*mean) > 1e-9*math.Max(1, math.Abs(shift)) {
			t.Errorf("k=%d: bias gradient shifted by %v, want %v", k, shift, -float64(k-1)*mean)
		}
	}
}

func TestGradientParallel(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	inputs, targets := randomSamples(r, ParallelThreshold+ChunkSize/2+7)
	ws := Weights{W: 0.3, B: 1.5}

	want := Gradient(inputs, targets, ws)
	one := GradientParallel(inputs, targets, ws, 2)
	if !near(one.W, want.W) || !near(one.B, want.B) {
		t.Errorf("parallel %+v, sequential %+v", one, want)
	}
	for _, workers := range []int{3, 4, 16} {
		if g := GradientParallel(inputs, targets, ws, workers); g != one {
			t.Errorf("%d workers: %+v, 2 workers: %+v", workers, g, one)
		}
	}

	small, smallTargets := inputs[:100], targets[:100]
	if GradientParallel(small, smallTargets, ws, 8) != Gradient(small, smallTargets, ws) {
		t.Error("small dataset not computed sequentially")
	}
}

func TestStepIsSimultaneous(t *testing.T) {
	ws := Weights{W: 1, B: 1}
	next := Step(ws, Weights{W: 10, B: 20}, 0.1)
	if next.W != 0 || next.B != -1 {
		t.Errorf("step %+v", next)
	}
}

func TestCost(t *testing.T) {
	if c := Cost([]int{1, 2, 3}, []int{2, 4, 6}, Weights{W: 2}); c != 0 {
		t.Errorf("cost at the optimum %v", c)
	}
	if c := Cost([]int{1, 2}, []int{0, 0}, Weights{B: 2}); c != 2 {
		t.Errorf("cost %v, want 2", c)
	}
}

func BenchmarkGradient(b *testing.B) {
	inputs, targets := randomSamples(rand.New(rand.NewPCG(7, 8)), ParallelThreshold)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Gradient(inputs, targets, Weights{W: 1, B: 1})
	}
}

func BenchmarkGradientParallel(b *testing.B) {
	inputs, targets := randomSamples(rand.New(rand.NewPCG(7, 8)), ParallelThreshold)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GradientParallel(inputs, targets, Weights{W: 1, B: 1}, 4)
	}
}

func ExampleGradient() {
	grad := Gradient([]int{1, 2, 3}, []int{2, 4, 6}, Weights{})
	ws := Step(Weights{}, grad, 0.1)
	fmt.Println(ws)
	// Output: w: 0.933333, b: 0.400000
}
