package detgen_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fixturegen/detgen"
	"github.com/katalvlaran/fixturegen/matrix"
)

// ExampleApply starts from diag(2, 3) (det 6), adds row 1 to row 0 and then
// swaps the two rows. The tracked determinant follows without any solver.
func ExampleApply() {
	m, _ := matrix.NewDiagonal([]int64{2, 3})
	tr := detgen.NewTracker[int64](6)

	_ = detgen.Apply(m, tr, detgen.AddRow(0, 1, 1))
	fmt.Println(m.Rows(), tr.Value())

	_ = detgen.Apply(m, tr, detgen.SwapRows(0, 1))
	fmt.Println(m.Rows(), tr.Value())

	tc := detgen.Format(m, tr.Value(), detgen.DefaultFormatOptions())
	for _, line := range strings.Split(strings.TrimSuffix(tc.Input, "\n"), "\n") {
		fmt.Printf("%q\n", line)
	}
	fmt.Println(tc.Answer)
	// Output:
	// [[2 3] [0 3]] 6
	// [[0 3] [2 3]] -6
	// "2"
	// "0     \t3     \t"
	// "2     \t3     \t"
	// -6
}
