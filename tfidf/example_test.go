package tfidf_test

import (
	"fmt"

	"github.com/katalvlaran/textnet/tfidf"
)

// pear occurs in a single document and falls under the default floor of two.
// Every document keeps its row, even D3 with nothing but fig.
func ExampleBuild() {
	wm, rows, err := tfidf.Build([]tfidf.Count{
		{Doc: "D1", Term: "apple", N: 10},
		{Doc: "D1", Term: "pear", N: 1},
		{Doc: "D2", Term: "apple", N: 1},
		{Doc: "D2", Term: "fig", N: 2},
		{Doc: "D3", Term: "fig", N: 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(len(rows), "rows", wm.Rows(), wm.Cols())
	for _, d := range wm.Rows() {
		fmt.Print(d)
		for _, t := range wm.Cols() {
			w, _ := wm.Value(d, t)
			fmt.Printf(" %.3f", w)
		}
		fmt.Println()
	}
	// Output:
	// 4 rows [D1 D2 D3] [apple fig]
	// D1 0.352 0.000
	// D2 0.176 0.229
	// D3 0.000 0.176
}
