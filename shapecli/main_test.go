package shapecli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/shapes/lib/log"
)

func TestShowcase(t *testing.T) {
	ctx := log.WithTB(context.Background(), t)

	var b bytes.Buffer
	err := showcase(ctx, &b)
	require.NoError(t, err)

	want := `Using Shape interface to Circle value:
The area of the hole is: 12.5664
The perimeter of the hole is: 12.5664

Using Shape interface to Rectangle value:
The area of the table is: 12
The perimeter of the table is: 14

Calling from Square value:
The square of 1!
The area of the box is: 1
The perimeter of the box is: 4

Calling from Polygon interface to Square value:
The square of 1!
The area of the box is: 1
The perimeter of the box is: 4

Calling from Polygon interface to Trapezoid value:
The area of the stand is: 3
The perimeter of the stand is: 8.82843

`
	require.Equal(t, want, b.String())
}
