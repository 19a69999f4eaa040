package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/MoustaphaSaad/taha2/lexico/internal/lexico"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("lexico", flag.ContinueOnError)
	flags.SetOutput(stderr)
	helpFlag := flags.Bool("help", false, "Display help message")
	verboseFlag := flags.Bool("v", false, "Log scan statistics")
	singleQuotesFlag := flags.Bool("single-quotes", false, "Accept ' as a string delimiter")
	errorsOnlyFlag := flags.Bool("errors-only", false, "Print only the errors of each file")
	tabWidthFlag := flags.Int("tab-width", 0, "Expand tabs in error carets, 0 keeps them")
	jobsFlag := flags.Int("jobs", runtime.NumCPU(), "Number of files scanned concurrently")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(stderr, *verboseFlag)
	cfg := lexico.Config{
		SingleQuotes: *singleQuotesFlag,
		TabWidth:     *tabWidthFlag,
	}

	rest := flags.Args()
	var command string
	var files []string
	if len(rest) > 0 {
		command = rest[0]
		files = rest[1:]
	}

	switch command {
	case "":
		if *helpFlag {
			displayGeneralHelp(stdout)
			return 0
		}
		fmt.Fprintln(stderr, "no command found")
		return 1
	case "scan":
		return scan(ctx, logger, stdout, stderr, cfg, files, *jobsFlag, *errorsOnlyFlag)
	case "repl":
		if err := repl(logger, stdout, cfg); err != nil {
			fmt.Fprintf(stderr, "repl failed, %v\n", err)
			return 1
		}
		return 0
	default:
		if *helpFlag {
			displayGeneralHelp(stdout)
		}
		fmt.Fprintf(stderr, "unknown command: %s\n", command)
		return 1
	}
}

func scan(ctx context.Context, logger *slog.Logger, stdout, stderr io.Writer, cfg lexico.Config, files []string, jobs int, errorsOnly bool) int {
	if len(files) == 0 {
		fmt.Fprintln(stderr, "no files to scan")
		return 1
	}

	start := time.Now()
	units, err := lexico.ScanFiles(ctx, files, cfg, jobs)
	logger.Debug("scanned files", "files", len(files), "jobs", jobs, "elapsed", time.Since(start))

	code := 0
	for i, unit := range units {
		if unit == nil {
			code = 1
			continue
		}
		logger.Debug("scanned unit", "file", files[i], "tokens", len(unit.Tokens), "errors", len(unit.Errors))

		if !errorsOnly {
			fmt.Fprint(stdout, unit.DumpTokens())
		}
		if unit.HasErrors() {
			fmt.Fprintln(stderr, unit.DumpErrors())
			code = 1
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		code = 1
	}
	return code
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func displayGeneralHelp(w io.Writer) {
	fmt.Fprint(w, `lexico usage:
lexico [OPTIONS] COMMAND [files...]
COMMANDS:
	scan: scans the given files and prints the found tokens and errors
	repl: scans each line typed at the prompt
OPTIONS:
	--help: Display this help message
	-v: Log scan statistics
	-single-quotes: Accept ' as a string delimiter
	-errors-only: Print only the errors of each file
	-tab-width N: Expand tabs in error carets
	-jobs N: Number of files scanned concurrently
`)
}
