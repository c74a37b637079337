// Command rpinject prepares a project's test-output directory and build
// descriptor for Report Portal before the test suite runs.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/rpinject/internal/app"
	"github.com/specialistvlad/rpinject/internal/cli"
	"github.com/specialistvlad/rpinject/internal/localsession"
)

func main() {
	// Only the CLI parser logs through the default logger; the App builds
	// its own from the flags.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	err := run(os.Stdout, os.Args[1:])
	if err == nil {
		return
	}
	code, msg := exitStatus(err)
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}

// exitStatus maps a run error to the process exit code and the message
// printed for it. Usage errors exit with their own code, everything else
// with 1.
func exitStatus(err error) (int, string) {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, exitErr.Message
	}
	return 1, "rpinject: " + err.Error()
}

// run parses args and runs the App. Panics raised while wiring the App are
// programmer errors; they come back as an ordinary error.
func run(outW io.Writer, args []string) (err error) {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil || shouldExit {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	return app.NewApp(outW, cfg, &localsession.SessionFactory{}).Run(context.Background())
}
