// Command widgetdsl compiles widget DSL source into previews and data.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
)

const appName = "widgetdsl"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], streams{in: os.Stdin, out: os.Stdout, err: os.Stderr})
	stop()
	os.Exit(code)
}

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func run(ctx context.Context, args []string, std streams) int {
	root := newRootCmd(std, nil)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(std.err, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}
