package bench

import (
	"fmt"
	"io"
	"strings"
)

// Measurement holds the raw counters of one timed operation loop.
type Measurement struct {
	Operation string
	Count     int64
	Bytes     int64
	Elapsed   int64 // CPU microseconds
}

// OpsPerSecond returns the mean number of operations per CPU second.
func (m *Measurement) OpsPerSecond() float64 {
	if m.Elapsed <= 0 {
		return 0
	}
	return float64(m.Count) * MicrosecondsPerSecond / float64(m.Elapsed)
}

// BitsPerSecond returns the mean processed data rate in bits per CPU second.
func (m *Measurement) BitsPerSecond() float64 {
	if m.Elapsed <= 0 {
		return 0
	}
	return float64(m.Bytes) * 8 * MicrosecondsPerSecond / float64(m.Elapsed)
}

// Report describes one benchmark run for a single key size.
type Report struct {
	RunID        string
	Algorithm    string
	KeyBits      int
	DataSize     int
	OutputSize   int
	Measurements []Measurement
}

// Write renders the report as "key: value" lines. The format is consumed by
// humans, log scrapers and the analyze subcommand: per operation, the
// "<op>-microsec" and "<op>-count" pair carries the raw counters, the rate
// lines are derived conveniences.
func (r *Report) Write(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "run-id: %s\n", r.RunID)
	fmt.Fprintf(&b, "algo: %s\n", r.Algorithm)
	fmt.Fprintf(&b, "key-size: %d\n", r.KeyBits)
	fmt.Fprintf(&b, "data-size: %d\n", r.DataSize)
	fmt.Fprintf(&b, "output-size: %d\n", r.OutputSize)
	for i := range r.Measurements {
		m := &r.Measurements[i]
		fmt.Fprintf(&b, "%s-microsec: %d\n", m.Operation, m.Elapsed)
		fmt.Fprintf(&b, "%s-count: %d\n", m.Operation, m.Count)
		fmt.Fprintf(&b, "%s-rate: %.2f\n", m.Operation, m.OpsPerSecond())
		fmt.Fprintf(&b, "%s-bitrate: %.2f\n", m.Operation, m.BitsPerSecond())
	}
	b.WriteString("\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
