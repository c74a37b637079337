package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/rpinject/internal/app"
	"github.com/specialistvlad/rpinject/internal/inject"
	"github.com/spf13/pflag"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("rpinject", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, `
rpinject - Prepares a test-output directory and build descriptor for Report Portal.

Usage:
  rpinject [options] [DESCRIPTOR]

Arguments:
  DESCRIPTOR
    Path to the build descriptor (.hcl, .yaml, .yml, .toml, .json, .jsonc).

Options:
`)
		flagSet.PrintDefaults()
	}

	modeNames := make([]string, len(inject.Modes))
	for i, m := range inject.Modes {
		modeNames[i] = string(m)
	}

	descriptorFlag := flagSet.StringP("descriptor", "d", "", "Path to the build descriptor.")
	artifactsFlag := flagSet.StringP("artifacts", "a", "", "Path to the resolved-artifact manifest (YAML).")
	testOutputFlag := flagSet.String("test-output", "", "Test output directory. Defaults to the descriptor's test output directory.")
	modeFlag := flagSet.String("mode", string(inject.ModeAuto), "Injection mode. Options: "+strings.Join(modeNames, ", ")+".")
	dedupeFlag := flagSet.Bool("dedupe", false, "Skip classpath elements and dependencies that are already present.")
	outputFlag := flagSet.StringP("output", "o", "", "Write the effective descriptor (HCL) to this path.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := *descriptorFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 || (*descriptorFlag != "" && flagSet.NArg() > 0) {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}
	slog.Debug("Descriptor path determined.", "path", path)

	if path == "" {
		slog.Debug("No descriptor provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		DescriptorPath: path,
		ArtifactsPath:  *artifactsFlag,
		TestOutputDir:  *testOutputFlag,
		OutputPath:     *outputFlag,
		Mode:           inject.Mode(*modeFlag),
		Dedupe:         *dedupeFlag,
		LogFormat:      strings.ToLower(*logFormatFlag),
		LogLevel:       strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
