// SPDX-License-Identifier: MIT

// Command revcalc computes the optimal train runs of the companies in a
// scenario file and prints them.
//
// Usage:
//
//	revcalc -scenario game.yaml [-company PRR] [-phase 5] [-log-level debug]
//	        [-timeout 30s] [-metrics-out revcalc.prom]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvrail/metrics"
	"github.com/katalvlaran/lvrail/scenario"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit; it returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("revcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("scenario", "", "scenario YAML file (required)")
	company := fs.String("company", "", "company to calculate; every company when empty")
	phase := fs.String("phase", "", "phase overriding the scenario file")
	level := fs.String("log-level", "info", "debug, info, warn or error")
	timeout := fs.Duration("timeout", 0, "abort each calculation after this long; 0 waits")
	metricsOut := fs.String("metrics-out", "", "write Prometheus metrics to this textfile")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *path == "" {
		fmt.Fprintln(stderr, "revcalc: -scenario is required")
		fs.Usage()
		return 2
	}
	lvl, err := parseLevel(*level)
	if err != nil {
		fmt.Fprintln(stderr, "revcalc:", err)
		return 2
	}
	slog.SetDefault(slog.New(NewLogHandler(stderr, lvl)))

	if *metricsOut != "" {
		metrics.RegisterDefault()
	}
	if err = calculate(stdout, *path, *company, *phase, *timeout); err != nil {
		slog.Error("calculation failed", "err", err)
		return 1
	}
	if *metricsOut != "" {
		if err = metrics.WriteTextfile(*metricsOut); err != nil {
			slog.Error("writing metrics", "path", *metricsOut, "err", err)
			return 1
		}
	}

	return 0
}

func calculate(out io.Writer, path, company, phase string, timeout time.Duration) error {
	s, err := scenario.LoadFile(path)
	if err != nil {
		return err
	}
	if phase != "" {
		s.SetPhase(phase)
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var results []*scenario.Result
	if company != "" {
		var r *scenario.Result
		if r, err = s.Calculate(ctx, company); err == nil {
			results = []*scenario.Result{r}
		}
	} else {
		results, err = s.CalculateAll(ctx)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("timed out after %s: %w", timeout, err)
	}
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Fprintf(out, "%s (phase %s): %d\n", r.Company, r.Phase, r.Value)
		fmt.Fprint(out, r.Text)
	}

	return nil
}
