package monitor

import (
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Monitor tracks process-level runtime facts for the health and info
// endpoints. All fields are written once at construction, so reads need
// no synchronization.
type Monitor struct {
	startedAt time.Time
	pid       int
	hostname  string
	logger    *zap.Logger
}

// Snapshot represents the process state at a point in time
type Snapshot struct {
	Uptime    float64
	PID       int
	OS        string
	Arch      string
	Hostname  string
	GoVersion string
	Timestamp time.Time
}

// New creates a monitor anchored at the current instant. Call it once,
// when the service starts listening.
func New(logger *zap.Logger) *Monitor {
	hostname, err := os.Hostname()
	if err != nil {
		logger.Warn("could not resolve hostname", zap.Error(err))
		hostname = "unknown"
	}

	return &Monitor{
		startedAt: time.Now(),
		pid:       os.Getpid(),
		hostname:  hostname,
		logger:    logger,
	}
}

// Uptime returns elapsed seconds since the monitor was created. The value
// is non-negative and non-decreasing for the lifetime of the process.
func (m *Monitor) Uptime() float64 {
	return time.Since(m.startedAt).Seconds()
}

// Snapshot returns the current process state
func (m *Monitor) Snapshot() Snapshot {
	return Snapshot{
		Uptime:    m.Uptime(),
		PID:       m.pid,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Hostname:  m.hostname,
		GoVersion: runtime.Version(),
		Timestamp: time.Now(),
	}
}
