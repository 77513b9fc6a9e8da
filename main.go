package main

import (
	"context"

	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/shapes/shapecli"
)

func main() {
	xmain.Main(run)
}

func run(ctx context.Context, ms *xmain.State) error {
	return shapecli.Run(ctx, ms)
}
