package shapecli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"cdr.dev/slog"

	"oss.terrastruct.com/util-go/xdefer"
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/shapes/lib/log"
	"oss.terrastruct.com/shapes/lib/shape"
	"oss.terrastruct.com/shapes/lib/version"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "print version information and exit.")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}
	if len(ms.Opts.Flags.Args()) > 0 {
		return xmain.UsageErrorf("%s takes no arguments", ms.Name)
	}

	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}
	if *debugFlag {
		ms.Env.Setenv("DEBUG", "1")
	}

	ctx = log.WithDefault(ctx)
	log.Debug(ctx, "starting shape showcase", slog.F("version", version.Version))

	return showcase(ctx, ms.Stdout)
}

// showcase runs the fixed scenario: each shape is constructed as its
// concrete kind, then queried through a more general handle, so the printed
// values come from whichever implementation the handle dispatches to. Values
// are released by scope exit alone; there is no manual release to pair.
func showcase(ctx context.Context, w io.Writer) (err error) {
	defer xdefer.Errorf(&err, "failed to write shape showcase")

	var s shape.Shape = shape.NewCircle("the hole", 2)
	log.Debug(ctx, "constructed", slog.F("type", s.GetType()), slog.F("name", s.GetName()))
	err = printShape(w, "Using Shape interface to Circle value:", s)
	if err != nil {
		return err
	}

	s = shape.NewRectangle("the table", 3, 4)
	log.Debug(ctx, "constructed", slog.F("type", s.GetType()), slog.F("name", s.GetName()))
	err = printShape(w, "Using Shape interface to Rectangle value:", s)
	if err != nil {
		return err
	}

	// The square's diagnostic line shares the showcase writer so its output
	// interleaves deterministically with the query results.
	q := shape.NewSquare("the box", 1, w)
	log.Debug(ctx, "constructed", slog.F("type", q.GetType()), slog.F("name", q.GetName()))
	err = printShape(w, "Calling from Square value:", q)
	if err != nil {
		return err
	}

	// Same value, more general handle: the queries land on the same
	// implementations.
	var p shape.Polygon = q
	err = printShape(w, "Calling from Polygon interface to Square value:", p)
	if err != nil {
		return err
	}

	p = shape.NewTrapezoid("the stand", 4, 2, 1)
	log.Debug(ctx, "constructed", slog.F("type", p.GetType()), slog.F("name", p.GetName()))
	return printShape(w, "Calling from Polygon interface to Trapezoid value:", p)
}

// printShape queries area then perimeter through whatever handle it was
// given. The heading goes out before the area query so any diagnostic the
// query emits lands under the right section.
func printShape(w io.Writer, heading string, s shape.Shape) error {
	_, err := fmt.Fprintln(w, heading)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "The area of %s is: %.6g\n", s.GetName(), s.GetArea())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "The perimeter of %s is: %.6g\n\n", s.GetName(), s.GetPerimeter())
	return err
}
