package xlog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, data string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestNewDomain(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewDomain("hosts.test", buf)
	logger.Info().Str("host", "a.b.c").Msg("entry added")

	events := decodeLines(t, buf.String())
	require.Len(t, events, 1)
	assert.Equal(t, "hosts.test", events[0][DomainFieldName])
	assert.Equal(t, "entry added", events[0]["msg"])
	assert.Equal(t, "a.b.c", events[0]["host"])
	assert.Contains(t, events[0], "t")
}

func TestTextWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewDomain("text", buf)
	w := ToTextWriter(logger, LevelWarn)

	_, err := w.Write([]byte("first line\nsecond "))
	require.NoError(t, err)
	_, err = w.Write([]byte("line\r\n\n"))
	require.NoError(t, err)

	events := decodeLines(t, buf.String())
	require.Len(t, events, 2)
	assert.Equal(t, "first line", events[0]["msg"])
	assert.Equal(t, "second line", events[1]["msg"])
	assert.Equal(t, "warn", events[1]["l"])
}

func TestSetupLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hosts.log")
	closer := Setup(path)
	t.Cleanup(func() { Setup("") })

	Info().Str("address", "1.2.3.4").Msg("written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	events := decodeLines(t, string(data))
	require.Len(t, events, 1)
	assert.Equal(t, "written", events[0]["msg"])
	assert.Equal(t, "hosts", events[0][DomainFieldName])
}
