// Command textnet builds a document–term network from a tidy count table and
// prints its weights, graph, projections, clusters or formal context as JSON.
//
//	textnet clusters -i counts.csv --config textnet.yaml
//	textnet project --type term -i counts.xlsx
//	textnet context --cxt -i counts.tsv > context.cxt
package main

import (
	"os"

	"github.com/katalvlaran/textnet/internal/logging"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		logging.New(string(logging.LevelError)).Fatal(err)
	}
}
