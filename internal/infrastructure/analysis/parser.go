// Package analysis aggregates benchmark result files from several machines
// into ranked comparison tables.
package analysis

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lelegard/rsabench/internal/pkg/config"
)

// Cell holds the raw counters of one operation in one result file.
type Cell struct {
	Microsec float64
	Count    float64
}

// MachineResult is the parsed content of one machine's result file.
type MachineResult struct {
	Entry  config.MachineEntry
	Engine string
	Labels []string // benchmark labels ("RSA-2048", ...) in file order
	Cells  map[string]map[string]Cell
}

// OpsPerSecond returns the mean operation rate for a label/operation pair.
func (r *MachineResult) OpsPerSecond(label, op string) (float64, bool) {
	cell, ok := r.Cells[label][op]
	if !ok || cell.Microsec <= 0 {
		return 0, false
	}
	return cell.Count * 1e6 / cell.Microsec, true
}

// OpsPerGigacycle returns operations per 1e9 CPU cycles, normalized by the
// machine's nominal frequency in GHz.
func (r *MachineResult) OpsPerGigacycle(label, op string) (float64, bool) {
	cell, ok := r.Cells[label][op]
	if !ok || cell.Microsec <= 0 || r.Entry.Frequency <= 0 {
		return 0, false
	}
	return cell.Count * 1e9 / (1000 * cell.Microsec * r.Entry.Frequency), true
}

// ParseResultFile parses the "key: value" lines of a benchmark result file.
// Each "algo:" line opens a new block; the following "key-size:" line extends
// the block label with the key size, so that several runs of the same
// algorithm at different sizes stay distinct. Unknown keys are ignored.
func ParseResultFile(path string, entry config.MachineEntry) (*MachineResult, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("unable to read result file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	result := &MachineResult{
		Entry: entry,
		Cells: make(map[string]map[string]Cell),
	}

	var label string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch {
		case key == "algo":
			label = value
			if _, ok := result.Cells[label]; !ok {
				result.Cells[label] = make(map[string]Cell)
				result.Labels = append(result.Labels, label)
			}
		case key == "key-size" && label != "":
			// Relabel the current block from "RSA" to "RSA-2048".
			relabeled := label + "-" + value
			if _, ok := result.Cells[relabeled]; !ok {
				result.Cells[relabeled] = result.Cells[label]
				result.Labels[len(result.Labels)-1] = relabeled
			} else {
				// Duplicate block for the same algorithm and size: merge into it.
				result.Labels = result.Labels[:len(result.Labels)-1]
			}
			delete(result.Cells, label)
			label = relabeled
		case (key == "engine" || key == "openssl") && result.Engine == "":
			result.Engine = value
		case strings.HasSuffix(key, "-microsec") && label != "":
			op := strings.TrimSuffix(key, "-microsec")
			microsec, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s in %s: %w", key, path, err)
			}
			cell := result.Cells[label][op]
			cell.Microsec = microsec
			result.Cells[label][op] = cell
		case strings.HasSuffix(key, "-count") && label != "":
			op := strings.TrimSuffix(key, "-count")
			count, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s in %s: %w", key, path, err)
			}
			cell := result.Cells[label][op]
			cell.Count = count
			result.Cells[label][op] = cell
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read result file %s: %w", path, err)
	}

	return result, nil
}
