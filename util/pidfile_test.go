package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hetarchief/aip-services/util"
)

func TestWriteAndReadPidFile(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "aip_creator.pid")
	require.Nil(t, util.WritePidFile(pidFile))
	assert.Equal(t, os.Getpid(), util.ReadPidFile(pidFile))
}

func TestReadPidFileMissing(t *testing.T) {
	assert.Equal(t, 0, util.ReadPidFile(filepath.Join(t.TempDir(), "absent.pid")))
}

func TestIsRunningInOtherProcess(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "aip_creator.pid")
	assert.False(t, util.IsRunningInOtherProcess(pidFile))

	// Our own pid in the file does not count as another process.
	require.Nil(t, util.WritePidFile(pidFile))
	assert.False(t, util.IsRunningInOtherProcess(pidFile))
}

func TestProcessIsRunning(t *testing.T) {
	assert.True(t, util.ProcessIsRunning(os.Getpid()))
	assert.False(t, util.ProcessIsRunning(999999999))
}
