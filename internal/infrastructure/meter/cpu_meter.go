//go:build linux || darwin

// Package meter samples process CPU time, the timing basis of all throughput
// numbers. User and system time are accumulated, wall-clock time is never used.
package meter

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/lelegard/rsabench/internal/domain/bench"
)

// rusageMeter struct that implements the CPUMeter interface
type rusageMeter struct{}

// NewCPUMeter creates and returns a new instance of rusageMeter
func NewCPUMeter() bench.CPUMeter {
	return &rusageMeter{}
}

// CPUTime returns the user+system CPU time consumed by the current process,
// in microseconds, from getrusage(RUSAGE_SELF).
func (m *rusageMeter) CPUTime() (int64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, fmt.Errorf("failed to read resource usage: %w", err)
	}

	user := int64(ru.Utime.Sec)*bench.MicrosecondsPerSecond + int64(ru.Utime.Usec)
	system := int64(ru.Stime.Sec)*bench.MicrosecondsPerSecond + int64(ru.Stime.Usec)
	return user + system, nil
}
