// Package perf times speaker identification over a grid of backends, Markov orders and repeated runs, and
// exports the measurements as CSV for plotting.
package perf

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"github.com/gostonefire/speakerid"
	"github.com/gostonefire/speakerid/markov"
	"github.com/natefinch/atomic"
	"strconv"
	"time"
)

// Texts - The three texts every run identifies
type Texts struct {
	A       string
	B       string
	Unknown string
}

// Conf - Is a struct to be passed in the call to Run and contains the grid to measure.
//   - MaxK is the highest Markov order, orders 1 -> MaxK (inclusive) are measured
//   - Runs is the number of repeated runs per backend and order
//   - Backends is the backends to measure, nil measures all of them
type Conf struct {
	MaxK     int
	Runs     int
	Backends []markov.Backend
}

// Measurement - The outcome of one timed run
type Measurement struct {
	Backend markov.Backend
	K       int
	Run     int
	Elapsed time.Duration
	Result  speakerid.Result
}

// Summary - Aggregated timings for one backend and order
type Summary struct {
	Backend markov.Backend
	K       int
	Runs    int
	Mean    time.Duration
	Min     time.Duration
	Max     time.Duration
}

// AllBackends - The backends measured when Conf.Backends is nil
var AllBackends = []markov.Backend{markov.BackendHashTable, markov.BackendMap}

// Label - Returns the name of the backend as used in result tables
func Label(backend markov.Backend) string {
	switch backend {
	case markov.BackendHashTable:
		return "Hashtable"
	case markov.BackendMap:
		return "Dictionary"
	default:
		return backend.String()
	}
}

// Run - Runs speakerid.IdentifySpeaker once per backend, order and run, backend being the outermost loop.
//   - texts is the texts to identify
//   - runConf is the grid to measure
//
// It returns:
//   - measurements holds one entry per run in execution order
//   - err is a standard error if runConf is invalid or an identification failed
func Run(texts Texts, runConf Conf) (measurements []Measurement, err error) {
	if runConf.MaxK < 1 {
		err = fmt.Errorf("max k must be a positive value higher than 0 (zero)")
		return
	}
	if runConf.Runs < 1 {
		err = fmt.Errorf("runs must be a positive value higher than 0 (zero)")
		return
	}

	backends := runConf.Backends
	if backends == nil {
		backends = AllBackends
	}

	measurements = make([]Measurement, 0, len(backends)*runConf.MaxK*runConf.Runs)
	for _, backend := range backends {
		for k := 1; k <= runConf.MaxK; k++ {
			for run := 1; run <= runConf.Runs; run++ {
				start := time.Now()
				var result speakerid.Result
				result, err = speakerid.IdentifySpeaker(texts.A, texts.B, texts.Unknown, k, backend)
				elapsed := time.Since(start)
				if err != nil {
					err = fmt.Errorf("error in run %d with %s and k=%d: %w", run, backend, k, err)
					return
				}

				measurements = append(measurements, Measurement{
					Backend: backend,
					K:       k,
					Run:     run,
					Elapsed: elapsed,
					Result:  result,
				})
			}
		}
	}

	return
}

// Summarize - Aggregates measurements per backend and order, in order of first appearance
func Summarize(measurements []Measurement) (summaries []Summary) {
	type cell struct {
		backend markov.Backend
		k       int
	}

	index := make(map[cell]int)
	totals := make([]time.Duration, 0)

	for _, m := range measurements {
		c := cell{backend: m.Backend, k: m.K}
		i, ok := index[c]
		if !ok {
			i = len(summaries)
			index[c] = i
			summaries = append(summaries, Summary{Backend: m.Backend, K: m.K, Min: m.Elapsed, Max: m.Elapsed})
			totals = append(totals, 0)
		}

		s := &summaries[i]
		s.Runs++
		totals[i] += m.Elapsed
		if m.Elapsed < s.Min {
			s.Min = m.Elapsed
		}
		if m.Elapsed > s.Max {
			s.Max = m.Elapsed
		}
	}

	for i := range summaries {
		summaries[i].Mean = totals[i] / time.Duration(summaries[i].Runs)
	}

	return
}

// WriteCSV - Writes measurements as CSV with the columns Implementation, K, Run and Time (seconds).
// The file is replaced atomically, readers never see a partially written table.
func WriteCSV(fileName string, measurements []Measurement) (err error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	err = w.Write([]string{"Implementation", "K", "Run", "Time"})
	if err != nil {
		return
	}

	for _, m := range measurements {
		err = w.Write([]string{
			Label(m.Backend),
			strconv.Itoa(m.K),
			strconv.Itoa(m.Run),
			strconv.FormatFloat(m.Elapsed.Seconds(), 'f', -1, 64),
		})
		if err != nil {
			return
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		return
	}

	err = atomic.WriteFile(fileName, &buf)
	if err != nil {
		err = fmt.Errorf("error while writing result file: %w", err)
	}

	return
}
