package main

import (
	"flag"
	"fmt"
	"github.com/gostonefire/speakerid"
	"github.com/gostonefire/speakerid/internal/cli"
	"github.com/gostonefire/speakerid/markov"
	"os"
)

func main() {
	fileA := flag.String("a", "", "file with the sample text of speaker A")
	fileB := flag.String("b", "", "file with the sample text of speaker B")
	fileUnknown := flag.String("u", "", "file with the unattributed text")
	order := flag.Int("k", 2, "Markov order, the number of preceding characters to condition on")
	backendName := flag.String("backend", "hashtable", "counter backend, 'hashtable' or 'dict'")
	logLevel := flag.String("log-level", "warn", "log level, one of debug, info, warn or error")
	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s -a <fileA> -b <fileB> -u <fileUnknown> [-k <k>] [-backend hashtable|dict]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := cli.NewLogger(os.Stderr, *logLevel)

	backend, err := markov.ParseBackend(*backendName)
	if err != nil {
		logger.Error("Invalid backend", "error", err)
		flag.Usage()
		os.Exit(2)
	}

	texts, err := cli.ReadTexts(*fileA, *fileB, *fileUnknown)
	if err != nil {
		logger.Error("Failed to read texts", "error", err)
		flag.Usage()
		os.Exit(1)
	}
	logger.Debug("Texts read", "a", len(texts[0]), "b", len(texts[1]), "unknown", len(texts[2]))

	result, err := speakerid.IdentifySpeaker(texts[0], texts[1], texts[2], *order, backend)
	if err != nil {
		logger.Error("Failed to identify speaker", "error", err)
		os.Exit(1)
	}
	logger.Info("Speaker identified", "k", *order, "backend", backend, "verdict", result.Verdict)

	fmt.Println(result)
}
