package triplet_test

import (
	"fmt"

	"github.com/katalvlaran/lvpuzzle/triplet"
)

// ExampleMaximumTripletValue shows the best value for a small input:
// (12 - 1) * 7 = 77.
func ExampleMaximumTripletValue() {
	fmt.Println(triplet.MaximumTripletValue([]int{12, 6, 1, 2, 7}))
	fmt.Println(triplet.MaximumTripletValue([]int{1, 2, 3}))
	// Output:
	// 77
	// 0
}

// ExampleBest reports the indices alongside the value.
func ExampleBest() {
	t := triplet.Best([]int{1, 10, 3, 4, 19})
	fmt.Printf("i=%d j=%d k=%d value=%d\n", t.I, t.J, t.K, t.Value)
	// Output:
	// i=1 j=2 k=4 value=133
}
