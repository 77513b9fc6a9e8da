package shape

type shapeRectangle struct {
	*polygon

	Side1 float64
	Side2 float64
}

func newRectangle(shapeType, name string, side1, side2 float64) shapeRectangle {
	return shapeRectangle{
		polygon: &polygon{
			baseShape: &baseShape{
				Type: shapeType,
				Name: name,
			},
			Sides:     4,
			Area:      side1 * side2,
			Perimeter: 2 * (side1 + side2),
		},
		Side1: side1,
		Side2: side2,
	}
}

func NewRectangle(name string, side1, side2 float64) Polygon {
	return newRectangle(RECTANGLE_TYPE, name, side1, side2)
}

// GetPerimeter is final for every rectangle specialization: 2*(side1+side2)
// already degenerates correctly to 4*side when the sides are equal, so
// Square reuses this method and must not shadow it.
func (s shapeRectangle) GetPerimeter() float64 {
	return s.polygon.Perimeter
}
