// numsanitize reduces the numeric precision of one column of a CSV or JSON
// file, rounding every value to an integer or to a fixed number of decimal
// places. Coarser values make records harder to re-identify while keeping
// aggregates approximately right.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/leengari/numsanitize/internal/config"
	domainerrors "github.com/leengari/numsanitize/internal/domain/errors"
	"github.com/leengari/numsanitize/internal/engine"
	"github.com/leengari/numsanitize/internal/logging"
	"github.com/leengari/numsanitize/internal/precision"
	"github.com/leengari/numsanitize/internal/report"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		precisionFlag string
		outputFile    string
		fileType      string
		rounding      string
		configFile    string
		maxWarnings   int
		quiet         bool
	)

	flagSet := pflag.NewFlagSet("numsanitize", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "-", "_"))
	})
	flagSet.StringVar(&precisionFlag, "precision", "0", "decimal places to round to, or 'integer' (0 rounds to the nearest integer)")
	flagSet.StringVar(&outputFile, "output_file", "", "output file (default: overwrite the input file)")
	flagSet.StringVar(&fileType, "file_type", "", "file type, csv or json (default: inferred from the input extension)")
	flagSet.StringVar(&rounding, "rounding", "", "tie-breaking rule, half_away or half_even (default from config: half_away)")
	flagSet.StringVar(&configFile, "config", "", "YAML config file (default: $NUMSANITIZE_CONFIG or ./numsanitize.yaml)")
	flagSet.IntVar(&maxWarnings, "max_warnings", 0, "maximum number of warnings to list, 0 lists all (default from config: 20)")
	flagSet.BoolVarP(&quiet, "quiet", "q", false, "do not print the warning table or the summary")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(stdout, flagSet)
			return exitOK
		}
		fmt.Fprintf(stderr, "error: %v\nRun 'numsanitize --help' for usage.\n", err)
		return exitUsage
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return exitOK
	}

	positional := flagSet.Args()
	if len(positional) != 2 {
		fmt.Fprintf(stderr, "error: expected <input_file> <column_name>, got %d argument(s)\nRun 'numsanitize --help' for usage.\n", len(positional))
		return exitUsage
	}
	inputFile, columnName := positional[0], positional[1]

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}

	logger, closeFn := logging.SetupLogger(cfg.Logging, stderr)
	defer closeFn()
	slog.SetDefault(logger)

	if rounding == "" {
		rounding = cfg.Sanitize.Rounding
	}
	if !flagSet.Changed("max_warnings") {
		maxWarnings = cfg.Sanitize.MaxWarnings
	}

	spec, err := precision.ParseSpec(precisionFlag, rounding)
	if err != nil {
		return fail(logger, err)
	}

	eng := engine.New(logger)
	eng.AddObserver(engine.NewLoggingObserver(logger))

	result, err := eng.Run(engine.Request{
		InputPath:  inputFile,
		OutputPath: outputFile,
		Column:     columnName,
		FileType:   fileType,
		Precision:  spec,
	})
	if err != nil {
		return fail(logger, err)
	}

	if !quiet {
		report.PrintWarnings(stderr, result.Warnings, maxWarnings)
		report.PrintSummary(stdout, result)
	}
	return exitOK
}

// fail logs err under a message naming its kind and returns the exit code
func fail(logger *slog.Logger, err error) int {
	logger.Error(describe(err), "error", err)
	return exitFailure
}

func describe(err error) string {
	var (
		notFound    *domainerrors.ColumnNotFoundError
		invalid     *domainerrors.InvalidPrecisionError
		unsupported *domainerrors.UnsupportedFormatError
		parseErr    *domainerrors.ParseError
	)

	switch {
	case errors.As(err, &notFound):
		return "column not found"
	case errors.As(err, &invalid):
		return "invalid precision"
	case errors.As(err, &unsupported):
		return "unsupported file type"
	case errors.As(err, &parseErr):
		return "malformed input file"
	case errors.Is(err, os.ErrNotExist):
		return "file not found"
	default:
		return "sanitization failed"
	}
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `numsanitize reduces the precision of a numeric column in a CSV or JSON file.

Usage:
  numsanitize [flags] <input_file> <column_name>

Values in <column_name> are rounded to --precision decimal places. Empty or
null cells are left alone; cells that are not numbers are left unchanged and
listed as warnings. Other columns are copied as they are.

Examples:
  numsanitize data.csv transaction_amount
  numsanitize data.json latitude --precision 2 --output_file sanitized_data.json
  numsanitize data sales --file_type csv --rounding half_even

Flags:
%s
Configuration is read from the YAML file given by --config, then from
NUMSANITIZE_* environment variables (e.g. NUMSANITIZE_LOGGING_LEVEL=debug).
`, flagSet.FlagUsages())
}
