package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DisabledDiscards(t *testing.T) {
	require.NoError(t, Init(Options{Enabled: false}))
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestInit_Writer(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	var out bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Writer: &out, Level: slog.LevelDebug}))

	Debug("new allocation", "offset", 64, "size", 128)
	assert.Contains(t, out.String(), "new allocation")
	assert.Contains(t, out.String(), "offset=64")
}

func TestInit_LogDirRemovesExpiredFiles(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	dir := t.TempDir()
	old := filepath.Join(dir, logPrefix+time.Now().AddDate(0, 0, -(retentionDays+5)).Format("2006-01-02")+logSuffix)
	unrelated := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(old, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(unrelated, []byte("x"), 0644))

	require.NoError(t, Init(Options{Enabled: true, LogDir: dir}))
	Info("freed block", "offset", 0)

	_, err := os.Stat(old)
	assert.True(t, os.IsNotExist(err), "expired log should be removed")
	_, err = os.Stat(unrelated)
	assert.NoError(t, err, "unrelated files are left alone")

	today := filepath.Join(dir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	data, err := os.ReadFile(today)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"freed block"`)
}

func TestClose(t *testing.T) {
	require.NoError(t, Close(), "nothing open")

	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, LogDir: dir}))
	require.NotNil(t, file)
	f := file

	// Re-initializing releases the previous file.
	require.NoError(t, Init(Options{Enabled: true, LogDir: dir}))
	_, err := f.Write([]byte("x"))
	require.ErrorIs(t, err, os.ErrClosed)

	require.NoError(t, Close())
	assert.Nil(t, file)
	assert.False(t, L.Enabled(t.Context(), slog.LevelError), "closed logger discards")
	require.NoError(t, Close(), "second close is a no-op")
}
