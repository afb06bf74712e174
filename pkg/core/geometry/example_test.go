package geometry_test

import (
	"fmt"

	"github.com/matzehuels/chartgeom/pkg/core/coord"
	"github.com/matzehuels/chartgeom/pkg/core/geometry"
)

func Example() {
	e := geometry.New(
		geometry.WithData([]map[string]any{
			{"genre": "Sports", "sold": 275},
			{"genre": "Strategy", "sold": 115},
			{"genre": "Action", "sold": 120},
		}),
		geometry.WithCoordinate(coord.NewCartesian(coord.Point{X: 0, Y: 300}, coord.Point{X: 300, Y: 0})),
	)
	if err := e.Position("genre*sold"); err != nil {
		panic(err)
	}
	e.Initial()
	fmt.Println("y min:", e.YScale().Min)

	for _, el := range e.Paint() {
		b := el.Shape.BBox()
		fmt.Printf("%s x=%.0f w=%.0f h=%.0f\n", el.Record.Origin["genre"], b.MinX, b.Width(), b.Height())
	}
	// Output:
	// y min: 0
	// Sports x=25 w=50 h=300
	// Strategy x=125 w=50 h=125
	// Action x=225 w=50 h=131
}
