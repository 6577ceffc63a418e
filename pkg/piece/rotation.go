package piece

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/triangulator/pkg/grid"
)

// RotationCW returns the clockwise rotation, in degrees, for the triangle
// (row, col, half).
//
// On even rows, even columns map to {90, 270} and odd columns to {0, 180};
// odd rows swap the two pairs. Half A takes the first value of the pair and
// half B the second.
func RotationCW(row, col int, half grid.Half) int {
	quarter := [2]int{90, 270}
	straight := [2]int{0, 180}

	pair := straight
	if (row%2 == 0) == (col%2 == 0) {
		pair = quarter
	}
	return pair[half&1]
}

// ToCCW converts a clockwise angle into the equivalent counter-clockwise one
// for the quarter turns: 90 and 270 swap, 0 and 180 are unchanged. Angles are
// normalised into [0, 360) first.
func ToCCW(angle int) int {
	m := ((angle % 360) + 360) % 360
	switch m {
	case 270:
		return 90
	case 90:
		return 270
	}
	return m
}

// RotateCW turns img clockwise by a multiple of 90 degrees about its centre.
// Other angles are snapped down to the previous quarter turn.
func RotateCW(img image.Image, angle int) *image.NRGBA {
	switch ((angle % 360) + 360) % 360 / 90 {
	case 1:
		return imaging.Rotate270(img)
	case 2:
		return imaging.Rotate180(img)
	case 3:
		return imaging.Rotate90(img)
	}
	return imaging.Clone(img)
}
