package monitor

import (
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestUptimeNonDecreasing(t *testing.T) {
	m := New(zap.NewNop())

	first := m.Uptime()
	assert.GreaterOrEqual(t, first, 0.0)

	time.Sleep(10 * time.Millisecond)

	second := m.Uptime()
	assert.GreaterOrEqual(t, second, first)
}

func TestSnapshotProcessIdentity(t *testing.T) {
	m := New(zap.NewNop())

	snap := m.Snapshot()
	assert.Equal(t, os.Getpid(), snap.PID)
	assert.Positive(t, snap.PID)
	assert.Equal(t, runtime.GOOS, snap.OS)
	assert.Equal(t, runtime.GOARCH, snap.Arch)
	assert.NotEmpty(t, snap.Hostname)
	assert.NotEmpty(t, snap.GoVersion)
}

func TestSnapshotPIDStable(t *testing.T) {
	m := New(zap.NewNop())

	assert.Equal(t, m.Snapshot().PID, m.Snapshot().PID)
}
