package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aluno_ai_backend/internal/config"
)

func TestInitLoggerWritesDomainLogFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	InitLogger(&config.Config{Server: config.ServerConfig{Mode: "debug"}})
	require.NotNil(t, Log)

	Log.Info("logger smoke test")
	_ = Log.Sync()

	info, err := os.Stat(filepath.Join("logs", "aluno_ai.log"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
