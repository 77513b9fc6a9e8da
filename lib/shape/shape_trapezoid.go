package shape

import "oss.terrastruct.com/shapes/lib/geo"

type shapeTrapezoid struct {
	*polygon

	LongSide  float64
	ShortSide float64
	Height    float64

	// leg is the length of each slanted side, derived once at construction
	// and owned by the trapezoid for its whole lifetime.
	leg float64
}

// NewTrapezoid derives the slanted side from the half-difference of the
// parallel sides and the height, then folds it into the stored perimeter.
// The trapezoid adds no query capability of its own; the stored-value
// accessors cover it.
func NewTrapezoid(name string, longSide, shortSide, height float64) Polygon {
	leg := geo.EuclideanDistance(0, 0, (longSide-shortSide)/2, height)
	return shapeTrapezoid{
		polygon: &polygon{
			baseShape: &baseShape{
				Type: TRAPEZOID_TYPE,
				Name: name,
			},
			Sides:     4,
			Area:      height * (longSide + shortSide) / 2,
			Perimeter: shortSide + longSide + 2*leg,
		},
		LongSide:  longSide,
		ShortSide: shortSide,
		Height:    height,
		leg:       leg,
	}
}
