// Command filecov prints a coverage line for every tracked file of istanbul or Go coverage data.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fatih/color"
)

var (
	osExiter            = os.Exit
	osErr     io.Writer = os.Stderr
	colorOnce sync.Once
)

func setColorOnce(shouldColor bool) {
	colorOnce.Do(func() {
		color.NoColor = !shouldColor
	})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd(os.Stdout, osErr)
	cmd.SetArgs(os.Args[1:])
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(osErr, err)
		stop()
		osExiter(1)
		return
	}
}
