package shape

const (
	CIRCLE_TYPE    = "Circle"
	RECTANGLE_TYPE = "Rectangle"
	SQUARE_TYPE    = "Square"
	TRAPEZOID_TYPE = "Trapezoid"
)

// Shape is the capability set shared by every shape in the catalog. Area and
// perimeter are computed once, at construction; the accessors never
// recompute.
type Shape interface {
	Is(shapeType string) bool
	GetType() string

	GetName() string
	SetName(name string)

	GetArea() float64
	GetPerimeter() float64
}

// Polygon is a Shape with a fixed number of straight sides.
type Polygon interface {
	Shape

	GetSides() int
}

type baseShape struct {
	Type string
	Name string
}

func (s *baseShape) Is(shapeType string) bool {
	return s.Type == shapeType
}

func (s *baseShape) GetType() string {
	return s.Type
}

func (s *baseShape) GetName() string {
	return s.Name
}

func (s *baseShape) SetName(name string) {
	s.Name = name
}

// polygon carries the state shared by the straight-sided shapes. Area and
// Perimeter are populated by each concrete constructor; the accessors only
// return what was stored.
type polygon struct {
	*baseShape

	Sides     int
	Area      float64
	Perimeter float64
}

func (p *polygon) GetSides() int {
	return p.Sides
}

func (p *polygon) GetArea() float64 {
	return p.Area
}

func (p *polygon) GetPerimeter() float64 {
	return p.Perimeter
}

// NewShape constructs one of the known shape kinds by type constant. The
// dims are the radius for circles, side1 and side2 for rectangles, the side
// for squares, and the long side, short side and height for trapezoids.
// Unknown kinds and wrong dimension counts yield nil; the set of kinds is
// closed and known at design time.
func NewShape(shapeType, name string, dims ...float64) Shape {
	switch shapeType {
	case CIRCLE_TYPE:
		if len(dims) != 1 {
			return nil
		}
		return NewCircle(name, dims[0])
	case RECTANGLE_TYPE:
		if len(dims) != 2 {
			return nil
		}
		return NewRectangle(name, dims[0], dims[1])
	case SQUARE_TYPE:
		if len(dims) != 1 {
			return nil
		}
		return NewSquare(name, dims[0], nil)
	case TRAPEZOID_TYPE:
		if len(dims) != 3 {
			return nil
		}
		return NewTrapezoid(name, dims[0], dims[1], dims[2])
	default:
		return nil
	}
}
