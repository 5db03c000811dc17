package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mkorrel/libraryrecon/pkg/enginelog"
	"github.com/mkorrel/libraryrecon/pkg/engineerr"
	"github.com/mkorrel/libraryrecon/pkg/explorer"
	"github.com/mkorrel/libraryrecon/pkg/invariants"
	"github.com/mkorrel/libraryrecon/pkg/oracle"
	"github.com/mkorrel/libraryrecon/pkg/runconfig"
)

const version = "1.0.0"

var (
	rooms      = flag.Int("rooms", 0, "Number of rooms in the selected library instance (required)")
	paramsPath = flag.String("params", "", "Path to YAML run-parameter file (optional, defaults apply)")
	timeout    = flag.Duration("timeout", 0, "Overall run timeout, e.g. 5m (0 = no timeout)")
	verbose    = flag.Bool("verbose", false, "Enable debug-level logging")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("libraryrecon version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *rooms <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -rooms flag is required and must be positive")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// nolint:gocyclo // Complexity acceptable: CLI wiring and outcome reporting
func run() error {
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	enginelog.Setup(level)

	env, err := runconfig.LoadEnv()
	if err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}

	params := runconfig.DefaultRunParams()
	if *paramsPath != "" {
		loaded, err := runconfig.LoadRunParams(*paramsPath)
		if err != nil {
			return fmt.Errorf("failed to load run params: %w", err)
		}
		params = *loaded
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if *timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	ctx = enginelog.WithRunFields(ctx, enginelog.RunFields{
		RunID:   runID(),
		Problem: env.Problem,
	})

	client, err := oracle.NewHTTPClient(oracle.Config{
		BaseURL: env.BaseURL,
		TeamID:  env.TeamID,
		Timeout: 30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to build oracle client: %w", err)
	}

	if _, err := client.Select(ctx, env.Problem); err != nil {
		return fmt.Errorf("failed to select problem %q: %w", env.Problem, err)
	}
	slog.InfoContext(ctx, "selected problem", "problem", env.Problem, "rooms", *rooms)

	engine := explorer.NewEngine(*rooms, client, params)

	start := time.Now()
	desc, stats, runErr := engine.Run(ctx)
	elapsed := time.Since(start)

	var budgetErr *engineerr.BudgetError
	var inconsistentErr *engineerr.InconsistencyError
	switch {
	case runErr == nil:
		slog.InfoContext(ctx, "reconstruction terminated normally", "elapsed", elapsed)
	case errors.As(runErr, &budgetErr):
		slog.WarnContext(ctx, "hard iteration limit reached, submitting best-effort guess",
			"elapsed", elapsed, "iterations", budgetErr.Iterations, "best_effort", budgetErr.BestEffort)
		if !budgetErr.BestEffort {
			return fmt.Errorf("exploration exhausted its budget and could not assemble even a best-effort guess: %w", runErr)
		}
	case errors.As(runErr, &inconsistentErr):
		fmt.Fprintf(os.Stderr, "Internal inconsistency (%s) detected; diagnostic snapshot:\n%s\n",
			inconsistentErr.Kind, inconsistentErr.Report.Summary())
		return fmt.Errorf("exploration aborted on an internal inconsistency: %w", runErr)
	default:
		return fmt.Errorf("exploration failed: %w", runErr)
	}

	if *verbose {
		printStats(stats, desc, elapsed)
	}

	report := invariants.CheckAll(engine.Graph())
	if !report.Passed {
		slog.WarnContext(ctx, "submitting a guess that fails its own internal consistency checks", "summary", report.Summary())
	}

	result, err := client.Guess(ctx, desc)
	if err != nil {
		return fmt.Errorf("failed to submit guess: %w", err)
	}

	if result.Correct {
		fmt.Printf("Correct: reconstructed %d-room library in %v (%d iterations, %d queries)\n",
			len(desc.Labels), elapsed, stats.Iterations, stats.QueriesSent)
		return nil
	}

	fmt.Printf("Incorrect: submitted guess did not match (%d iterations, %d queries, %v elapsed)\n",
		stats.Iterations, stats.QueriesSent, elapsed)
	os.Exit(2)
	return nil
}

// runID derives a short, process-local identifier for log correlation. It
// need not be globally unique, only distinct enough to separate concurrent
// log streams from different invocations in the same aggregated log sink.
func runID() string {
	return fmt.Sprintf("pid-%d-%d", os.Getpid(), time.Now().UnixNano())
}

func printStats(stats explorer.Stats, desc oracle.MapDescription, elapsed time.Duration) {
	fmt.Println("\nReconstruction statistics:")
	fmt.Printf("  Iterations:   %d\n", stats.Iterations)
	fmt.Printf("  Queries sent: %d\n", stats.QueriesSent)
	fmt.Printf("  Ping queries: %d\n", stats.PingQueries)
	fmt.Printf("  Elapsed:      %v\n", elapsed)
	fmt.Printf("  Rooms guessed: %d\n", len(desc.Labels))
	fmt.Printf("  Connections:   %d\n", len(desc.Connections))
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: libraryrecon -rooms <n> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'libraryrecon -help' for detailed help")
}

func printHelp() {
	fmt.Printf("libraryrecon version %s\n\n", version)
	fmt.Println("Reconstructs an unknown room library by issuing walk queries against an oracle.")
	fmt.Println("\nUsage:")
	fmt.Println("  libraryrecon -rooms <n> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -rooms int")
	fmt.Println("        Number of rooms in the selected library instance")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -params string")
	fmt.Println("        Path to YAML run-parameter file (default: built-in defaults)")
	fmt.Println("  -timeout duration")
	fmt.Println("        Overall run timeout, e.g. 5m (default: no timeout)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable debug-level logging and a final statistics dump")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nEnvironment:")
	fmt.Println("  LIBRARYRECON_PROBLEM     Problem instance name to select")
	fmt.Println("  LIBRARYRECON_ORACLE_URL  Base URL of the oracle server")
	fmt.Println("  LIBRARYRECON_TEAM_ID     Team credential sent with every request")
	fmt.Println("\nExamples:")
	fmt.Println("  # Reconstruct a known 12-room instance")
	fmt.Println("  libraryrecon -rooms 12")
	fmt.Println("\n  # Verbose run with a tuned parameter file and a 10 minute timeout")
	fmt.Println("  libraryrecon -rooms 30 -params tuning.yaml -verbose -timeout 10m")
}
