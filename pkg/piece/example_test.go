package piece_test

import (
	"fmt"

	"github.com/matzehuels/triangulator/pkg/grid"
	"github.com/matzehuels/triangulator/pkg/piece"
)

func ExampleRotationCW() {
	cw := piece.RotationCW(0, 0, grid.HalfA)
	fmt.Println(cw, piece.ToCCW(cw))
	fmt.Println(piece.RotationCW(0, 1, grid.HalfB))
	// Output:
	// 90 270
	// 180
}

func ExampleID() {
	fmt.Println(piece.ID(4, 7))
	// Output: 407
}
