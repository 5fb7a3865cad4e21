package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// RenderTables writes one comparison table per benchmark label and metric.
// Each cell shows the metric value followed by the machine's rank in that
// column, 1 being the fastest.
func (a *Analysis) RenderTables(w io.Writer) error {
	for _, label := range a.Labels {
		ops := a.Operations(label)
		if len(ops) == 0 {
			continue
		}

		for _, metric := range []Metric{MetricOpsPerSecond, MetricOpsPerGigacycle} {
			if _, err := fmt.Fprintf(w, "\n%s, %s\n\n", label, metric.Name()); err != nil {
				return fmt.Errorf("failed to write analysis table: %w", err)
			}
			a.renderOne(w, label, ops, metric)
		}
	}
	return nil
}

func (a *Analysis) renderOne(w io.Writer, label string, ops []string, metric Metric) {
	table := tablewriter.NewWriter(w)

	header := []string{"CPU", "CPU core", "Frequency", "Engine"}
	header = append(header, ops...)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	ranks := make(map[string][]int, len(ops))
	for _, op := range ops {
		ranks[op] = a.Ranks(label, op, metric)
	}

	for i, m := range a.Machines {
		row := []string{
			m.Entry.CPU,
			m.Entry.Core,
			fmt.Sprintf("%.2f GHz", m.Entry.Frequency),
			m.Engine,
		}
		for _, op := range ops {
			value, ok := a.value(m, label, op, metric)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprintf("%s (%d)", formatNum(value), ranks[op][i]))
		}
		table.Append(row)
	}

	table.Render()
}

// formatNum formats a value with a precision that shrinks as the value grows,
// using thousands separators for large integers.
func formatNum(value float64) string {
	switch {
	case value >= 100.0 || value == float64(int64(value)):
		return groupThousands(int64(value))
	case value >= 10.0:
		return fmt.Sprintf("%.1f", value)
	case value >= 1.0:
		return fmt.Sprintf("%.2f", value)
	default:
		return fmt.Sprintf("%.3f", value)
	}
}

func groupThousands(v int64) string {
	s := fmt.Sprintf("%d", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	out := strings.Join(groups, ",")
	if neg {
		out = "-" + out
	}
	return out
}
