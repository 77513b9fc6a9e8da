package shape

import "math"

type shapeCircle struct {
	*baseShape

	Radius    float64
	Area      float64
	Perimeter float64
}

// NewCircle computes the circle's area and perimeter eagerly from the
// radius. Nothing mutates afterwards.
func NewCircle(name string, radius float64) Shape {
	return shapeCircle{
		baseShape: &baseShape{
			Type: CIRCLE_TYPE,
			Name: name,
		},
		Radius:    radius,
		Area:      radius * radius * math.Pi,
		Perimeter: 2 * radius * math.Pi,
	}
}

func (s shapeCircle) GetArea() float64 {
	return s.Area
}

func (s shapeCircle) GetPerimeter() float64 {
	return s.Perimeter
}
