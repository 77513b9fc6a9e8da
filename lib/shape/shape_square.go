package shape

import (
	"fmt"
	"io"
	"os"
)

type shapeSquare struct {
	shapeRectangle

	diag io.Writer
}

// NewSquare delegates to rectangle construction with both sides equal. The
// diag writer receives a line naming the side length on every area query;
// nil defaults to stdout.
func NewSquare(name string, side float64, diag io.Writer) Polygon {
	if diag == nil {
		diag = os.Stdout
	}
	return shapeSquare{
		shapeRectangle: newRectangle(SQUARE_TYPE, name, side, side),
		diag:           diag,
	}
}

// GetArea returns the stored rectangle area, announcing itself first.
// Perimeter is not shadowed here; see shapeRectangle.GetPerimeter.
func (s shapeSquare) GetArea() float64 {
	fmt.Fprintf(s.diag, "The square of %v!\n", s.Side1)
	return s.Area
}
