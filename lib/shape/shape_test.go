package shape

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/shapes/lib/geo"
)

// close enough for the π and sqrt derived values
const epsilon = 0.0001

func TestCircle(t *testing.T) {
	for _, radius := range []float64{0.5, 1, 2, 10, 123.45} {
		c := NewCircle("the hole", radius)
		assert.True(t, c.Is(CIRCLE_TYPE))
		assert.Equal(t, "the hole", c.GetName())
		assert.True(t, geo.PrecisionEquals(radius*radius*math.Pi, c.GetArea(), epsilon))
		assert.True(t, geo.PrecisionEquals(2*radius*math.Pi, c.GetPerimeter(), epsilon))
	}

	// the fixed scenario
	c := NewCircle("the hole", 2)
	assert.True(t, geo.PrecisionEquals(12.56637, c.GetArea(), epsilon))
	assert.True(t, geo.PrecisionEquals(12.56637, c.GetPerimeter(), epsilon))
}

func TestRectangle(t *testing.T) {
	r := NewRectangle("the table", 3, 4)
	assert.True(t, r.Is(RECTANGLE_TYPE))
	assert.Equal(t, 4, r.GetSides())
	assert.Equal(t, 12.0, r.GetArea())
	assert.Equal(t, 14.0, r.GetPerimeter())
}

func TestSquare(t *testing.T) {
	var diag bytes.Buffer
	q := NewSquare("the box", 1, &diag)
	assert.True(t, q.Is(SQUARE_TYPE))
	assert.Equal(t, 4, q.GetSides())

	// a square of side s reduces to the rectangle formulas: s² and 4s
	assert.Equal(t, 1.0, q.GetArea())
	assert.Equal(t, 1, strings.Count(diag.String(), "The square of 1!\n"))

	assert.Equal(t, 1.0, q.GetArea())
	assert.Equal(t, 2, strings.Count(diag.String(), "The square of 1!\n"))

	// perimeter is the sealed rectangle implementation, no diagnostic
	diag.Reset()
	assert.Equal(t, 4.0, q.GetPerimeter())
	assert.Equal(t, 0, diag.Len())
}

func TestSquareMatchesRectangle(t *testing.T) {
	q := NewSquare("the box", 3, io.Discard)
	r := NewRectangle("the table", 3, 3)
	assert.Equal(t, r.GetArea(), q.GetArea())
	assert.Equal(t, r.GetPerimeter(), q.GetPerimeter())
}

func TestTrapezoid(t *testing.T) {
	tr := NewTrapezoid("the stand", 4, 2, 1)
	assert.True(t, tr.Is(TRAPEZOID_TYPE))
	assert.Equal(t, 4, tr.GetSides())
	assert.Equal(t, 3.0, tr.GetArea())

	// leg = sqrt(((4-2)/2)² + 1²) = sqrt(2)
	leg := tr.(shapeTrapezoid).leg
	assert.True(t, geo.PrecisionEquals(math.Sqrt2, leg, epsilon))
	assert.True(t, geo.PrecisionEquals(2+4+2*math.Sqrt2, tr.GetPerimeter(), epsilon))
}

// Querying through a general handle must land on the same implementation as
// querying the construction-time handle, for every kind in the catalog.
func TestDispatchEquivalence(t *testing.T) {
	c := NewCircle("the hole", 2)
	var s Shape = c
	assert.Equal(t, c.GetArea(), s.GetArea())
	assert.Equal(t, c.GetPerimeter(), s.GetPerimeter())

	for _, p := range []Polygon{
		NewRectangle("the table", 3, 4),
		NewSquare("the box", 1, io.Discard),
		NewTrapezoid("the stand", 4, 2, 1),
	} {
		s = p
		assert.Equal(t, p.GetArea(), s.GetArea(), s.GetType())
		assert.Equal(t, p.GetPerimeter(), s.GetPerimeter(), s.GetType())
		assert.Equal(t, p.GetName(), s.GetName(), s.GetType())
	}
}

func TestSetName(t *testing.T) {
	s := NewCircle("the hole", 2)
	s.SetName("the well")
	assert.Equal(t, "the well", s.GetName())
}

func TestNewShape(t *testing.T) {
	for shapeType, dims := range map[string][]float64{
		CIRCLE_TYPE:    {2},
		RECTANGLE_TYPE: {3, 4},
		SQUARE_TYPE:    {1},
		TRAPEZOID_TYPE: {4, 2, 1},
	} {
		s := NewShape(shapeType, "s", dims...)
		assert.NotNil(t, s, shapeType)
		assert.True(t, s.Is(shapeType))

		// wrong dimension count
		assert.Nil(t, NewShape(shapeType, "s", append(dims, 1)...), shapeType)
	}
	assert.Nil(t, NewShape("Pentagon", "s", 1))
}
