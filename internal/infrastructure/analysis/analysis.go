package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/lelegard/rsabench/internal/pkg/config"
	"github.com/lelegard/rsabench/internal/pkg/logger"
)

// Metric selects one of the two normalized values computed per operation.
type Metric int

const (
	// MetricOpsPerSecond ranks machines by raw operation rate.
	MetricOpsPerSecond Metric = iota
	// MetricOpsPerGigacycle ranks machines by operations per 1e9 CPU cycles,
	// removing the frequency difference between machines.
	MetricOpsPerGigacycle
)

// Name returns the human-readable metric name used in table titles.
func (m Metric) Name() string {
	if m == MetricOpsPerGigacycle {
		return "operations per 10^9 cycles"
	}
	return "operations per second"
}

// Analysis holds the parsed results of all machines taking part in a comparison.
type Analysis struct {
	Machines []*MachineResult
	Labels   []string // union of benchmark labels, first-seen order
}

// Load parses the result file of every configured machine. Machines whose
// file does not exist are skipped with a warning, mirroring the convention
// that one shared machine list covers files collected so far.
func Load(settings *config.AnalysisSettings, inputDir string, log logger.Logger) (*Analysis, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	a := &Analysis{}
	seen := make(map[string]bool)

	for _, entry := range settings.Machines {
		path := entry.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(inputDir, path)
		}
		if _, err := os.Stat(path); err != nil {
			log.Warn("Skipping ", entry.CPU, ": no result file at ", path)
			continue
		}

		result, err := ParseResultFile(path, entry)
		if err != nil {
			return nil, err
		}
		a.Machines = append(a.Machines, result)

		for _, label := range result.Labels {
			if !seen[label] {
				seen[label] = true
				a.Labels = append(a.Labels, label)
			}
		}
	}

	if len(a.Machines) == 0 {
		return nil, fmt.Errorf("no result file found for any configured machine under %s", inputDir)
	}

	return a, nil
}

// Operations returns the union of operation names present for a label, in the
// canonical report order when known, alphabetical otherwise.
func (a *Analysis) Operations(label string) []string {
	canonical := map[string]int{
		"oaep-encrypt": 0,
		"oaep-decrypt": 1,
		"pss-sign":     2,
		"pss-verify":   3,
	}

	seen := make(map[string]bool)
	var ops []string
	for _, m := range a.Machines {
		for op := range m.Cells[label] {
			if !seen[op] {
				seen[op] = true
				ops = append(ops, op)
			}
		}
	}

	sort.Slice(ops, func(i, j int) bool {
		ri, iKnown := canonical[ops[i]]
		rj, jKnown := canonical[ops[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return ops[i] < ops[j]
		}
	})
	return ops
}

// value returns the selected metric for one machine/label/operation.
func (a *Analysis) value(m *MachineResult, label, op string, metric Metric) (float64, bool) {
	if metric == MetricOpsPerGigacycle {
		return m.OpsPerGigacycle(label, op)
	}
	return m.OpsPerSecond(label, op)
}

// Ranks computes per-machine ranks (1 = fastest) for one label/operation
// column. Machines without a value get rank 0.
func (a *Analysis) Ranks(label, op string, metric Metric) []int {
	type indexed struct {
		machine int
		value   float64
	}

	var values []indexed
	for i, m := range a.Machines {
		if v, ok := a.value(m, label, op, metric); ok && v > 0 {
			values = append(values, indexed{machine: i, value: v})
		}
	}
	sort.Slice(values, func(i, j int) bool { return values[i].value > values[j].value })

	ranks := make([]int, len(a.Machines))
	for rank, entry := range values {
		ranks[entry.machine] = rank + 1
	}
	return ranks
}
