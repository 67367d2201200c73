package spline_test

import (
	"fmt"
	"log"

	"github.com/cwbudde/algo-spline/spline"
)

func Example() {
	// Eleven unit-spaced samples of a constant signal.
	x := make([]float64, 11)
	y := make([]float64, 11)
	for i := range x {
		x[i] = float64(i)
		y[i] = 2.5
	}

	base, err := spline.New(x, 3, spline.BoundaryZeroFirst)
	if err != nil {
		log.Fatal(err)
	}
	fit, err := base.Fit(y)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("intervals: %d, spacing: %g\n", base.Intervals(), base.Spacing())
	fmt.Printf("value at 4.2: %.1f\n", fit.Evaluate(4.2))
	// Output:
	// intervals: 10, spacing: 1
	// value at 4.2: 2.5
}

func ExampleBase_Nodes() {
	// A zero wavelength disables the roughness penalty; the grid then has
	// one interval per sample.
	x := make([]float64, 10)
	for i := range x {
		x[i] = float64(i)
	}

	base, err := spline.New(x, 0, spline.BoundaryZeroSecond)
	if err != nil {
		log.Fatal(err)
	}

	nodes := base.Nodes()
	fmt.Printf("%d nodes: %.1f %.1f %.1f ... %.1f\n",
		len(nodes), nodes[0], nodes[1], nodes[2], nodes[len(nodes)-1])
	// Output:
	// 11 nodes: 0.0 0.9 1.8 ... 9.0
}
