package fuzzy_test

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleUnion
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two overlapping age groups evaluated over the same ages.
//	  young  = trapezoid(0, 0, 10, 15)
//	  young+ = trapezoid(10, 15, 25, 30)
//
// The union keeps the larger degree at every age and joins the titles.
func ExampleUnion() {
	young, _ := fuzzy.NewTrapezoidal("young", 0, 0, 10, 15)
	youngPlus, _ := fuzzy.NewTrapezoidal("young+", 10, 15, 25, 30)

	recs, err := fuzzy.Union([]float64{10, 20, 30}, young, youngPlus)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, r := range recs {
		fmt.Printf("%s  x=%v  μ=%.1f\n", r.Title, r.Value, r.Degree)
	}
	// Output:
	// young ∪ young+  x=10  μ=1.0
	// young ∪ young+  x=20  μ=1.0
	// young ∪ young+  x=30  μ=0.0
}

// ExampleIntersect shows the overlap of two triangles.
func ExampleIntersect() {
	warm, _ := fuzzy.NewTriangular("warm", 10, 20, 30)
	hot, _ := fuzzy.NewTriangular("hot", 20, 30, 40)

	recs, _ := fuzzy.Intersect([]float64{20, 25, 30}, warm, hot)
	fmt.Println(recs[0].Title, fuzzy.Degrees(recs))
	// Output:
	// warm ∪ hot [0 0.5 0]
}

// ExampleComplement negates a triangle.
func ExampleComplement() {
	mid, _ := fuzzy.NewTriangular("mid", 0, 5, 10)

	recs, _ := fuzzy.Complement([]float64{0, 2.5, 5}, mid)
	fmt.Println(recs[0].Title, fuzzy.Degrees(recs))
	// Output:
	// complement mid [1 0.5 0]
}

// ExampleTrapezoidal_AlphaCut shows support, nucleus and a 0.5-cut.
func ExampleTrapezoidal_AlphaCut() {
	adult, _ := fuzzy.NewTrapezoidal("adult", 18, 25, 55, 65)

	sup, _ := adult.Support()
	nuc, _ := adult.Nucleus()
	cut, _ := adult.AlphaCut(0.5)
	fmt.Println("support:", sup)
	fmt.Println("nucleus:", nuc)
	fmt.Println("0.5-cut:", cut)
	// Output:
	// support: [18, 65]
	// nucleus: [25, 55]
	// 0.5-cut: [21.5, 60]
}

// ExampleNewGaussian shows construction-time validation.
func ExampleNewGaussian() {
	_, err := fuzzy.NewGaussian("flat", 0, 0)
	fmt.Println(err)
	// Output:
	// NewGaussian: sd must be > 0, got 0: fuzzy: invalid parameters
}
