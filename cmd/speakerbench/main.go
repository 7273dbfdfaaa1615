package main

import (
	"flag"
	"fmt"
	"github.com/gostonefire/speakerid/internal/cli"
	"github.com/gostonefire/speakerid/internal/perf"
	"os"
	"text/tabwriter"
)

func main() {
	fileA := flag.String("a", "", "file with the sample text of speaker A")
	fileB := flag.String("b", "", "file with the sample text of speaker B")
	fileUnknown := flag.String("u", "", "file with the unattributed text")
	maxK := flag.Int("max-k", 6, "highest Markov order to measure")
	runs := flag.Int("runs", 3, "number of runs per backend and order")
	out := flag.String("out", "execution_times.csv", "CSV file to write measurements to")
	logLevel := flag.String("log-level", "info", "log level, one of debug, info, warn or error")
	flag.Parse()

	logger := cli.NewLogger(os.Stderr, *logLevel)

	texts, err := cli.ReadTexts(*fileA, *fileB, *fileUnknown)
	if err != nil {
		logger.Error("Failed to read texts", "error", err)
		flag.Usage()
		os.Exit(1)
	}

	logger.Info("Starting measurements", "max_k", *maxK, "runs", *runs)
	measurements, err := perf.Run(perf.Texts{A: texts[0], B: texts[1], Unknown: texts[2]}, perf.Conf{MaxK: *maxK, Runs: *runs})
	if err != nil {
		logger.Error("Measurement failed", "error", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "Implementation\tK\tRun\tTime")
	for _, m := range measurements {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%.6f\n", perf.Label(m.Backend), m.K, m.Run, m.Elapsed.Seconds())
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Implementation\tK\tRuns\tMean\tMin\tMax")
	for _, s := range perf.Summarize(measurements) {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\n", perf.Label(s.Backend), s.K, s.Runs, s.Mean, s.Min, s.Max)
	}
	_ = w.Flush()

	if err = perf.WriteCSV(*out, measurements); err != nil {
		logger.Error("Failed to write measurements", "error", err)
		os.Exit(1)
	}
	logger.Info("Measurements written", "file", *out, "count", len(measurements))
}
