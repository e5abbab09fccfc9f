package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vk/samcase/internal/app"
	"github.com/vk/samcase/internal/cli"
	"github.com/vk/samcase/internal/hcl"
)

// main is the entrypoint for the samcase binary.
func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors; recover into a clean
	// error so the user gets a message instead of a stack trace.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("a critical startup error occurred: %v", r)
		}
	}()

	loader := hcl.NewLoader()
	samcaseApp := app.NewApp(outW, appConfig, loader)

	return samcaseApp.Run(context.Background(), appConfig)
}
