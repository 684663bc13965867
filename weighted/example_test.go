package weighted_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmatch/digraph"
	"github.com/katalvlaran/lvmatch/weighted"
)

// ExampleMaxWeight contrasts the heaviest matching with the heaviest
// maximum-cardinality one on a path whose middle edge dominates.
func ExampleMaxWeight() {
	edges, _ := digraph.ReadEdges(strings.NewReader("0 1 1\n1 2 10\n2 3 1\n"))
	g, _ := digraph.FromEdges(edges, true)

	m, err := weighted.MaxWeight(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m)

	m, _ = weighted.MaxWeightMaxCardinality(g)
	fmt.Println(m)
	// Output:
	// {(1,2)} count=1 weight=10
	// {(0,1) (2,3)} count=2 weight=2
}

// ExampleMinWeightPerfect picks the cheapest perfect matching of K4.
func ExampleMinWeightPerfect() {
	edges, _ := digraph.ReadEdges(strings.NewReader(`
# u v w
0 1 1
2 3 2
0 2 7
1 3 7
0 3 9
1 2 9
`))
	g, _ := digraph.FromEdges(edges, true)
	m, err := weighted.MinWeightPerfect(g, weighted.WithVerify())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m)
	// Output: {(0,1) (2,3)} count=2 weight=3
}
