package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceLog_WritesStreamName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, closer := NewServiceLog("EntityCopy", FileOptions{Path: path, MaxSizeMB: 1, MaxBackups: 1})
	log.Debug().Msg("copy helper")
	log.Info().Msg("begin transaction")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"log":"EntityCopy"`)
	assert.Contains(t, string(data), `"message":"begin transaction"`)
	assert.Contains(t, string(data), `"level":"info"`)
	assert.NotContains(t, string(data), "copy helper")
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))

	ctx := WithRequestID(context.Background(), "req-7")
	assert.Equal(t, "req-7", RequestID(ctx))
}
