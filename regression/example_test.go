package regression_test

import (
	"fmt"
	"log"

	"github.com/arloliu/pkoffee/dataset"
	"github.com/arloliu/pkoffee/regression"
)

// ExampleFitter_Fit fits a subset of the built-in models and prints the ranking.
func ExampleFitter_Fit() {
	sample, err := dataset.NewSample(
		[]float64{0, 1, 2, 3, 4, 5},
		[]float64{1, 2, 5, 10, 17, 26},
	)
	if err != nil {
		log.Fatal(err)
	}

	reg, err := regression.DefaultRegistry().Select("quadratic", "linear")
	if err != nil {
		log.Fatal(err)
	}

	fitter, err := regression.NewFitter()
	if err != nil {
		log.Fatal(err)
	}

	fits, err := fitter.Fit(reg, sample)
	if err != nil {
		log.Fatal(err)
	}

	for _, fit := range regression.Rank(fits) {
		fmt.Printf("%s: %s\n", fit.Label(), fit.Status)
	}

	// Output:
	// Quadratic (R²=1.000): converged
	// Linear (R²=0.921): converged
}

// ExampleRegistry_Select shows how unknown model names are reported.
func ExampleRegistry_Select() {
	_, err := regression.DefaultRegistry().Select("cubic")
	fmt.Println(err)

	// Output:
	// unknown model: "cubic" (supported: exponential-rise, linear, logarithmic, michaelis-menten, quadratic)
}
