package foodist

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodist/ingredient"
)

func TestNewParseLog(t *testing.T) {
	t.Run("successful parse", func(t *testing.T) {
		ing, err := ingredient.Parse("2 apples 3")
		require.NoError(t, err)

		entry := NewParseLog("2 apples 3", ing, nil)
		assert.Equal(t, "Apples", entry.Name)
		assert.Equal(t, "2", entry.Quantity)
		assert.Equal(t, "3", entry.Discarded)
		assert.Empty(t, entry.Error)
	})

	t.Run("failed parse", func(t *testing.T) {
		_, err := ingredient.Parse("20foo apples")
		require.Error(t, err)

		entry := NewParseLog("20foo apples", ingredient.Ingredient{}, err)
		assert.Empty(t, entry.Name)
		assert.Contains(t, entry.Error, "invalid unit")
		assert.Equal(t, ingredient.MessageInvalidUnit, entry.Message)
	})
}

func TestFileParseLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFileParseLogger(&buf)

	require.NoError(t, logger.LogParse(ParseLog{Input: "350g flour", Name: "Flour", Quantity: "350 g"}))
	require.NoError(t, logger.LogParse(ParseLog{Input: "", Error: "no valid match"}))
	assert.Zero(t, buf.Len(), "entries are buffered until Flush")

	require.NoError(t, logger.Flush())

	var decoded struct {
		Session struct {
			Entries []ParseLog `json:"entries"`
		} `json:"parse_session"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Session.Entries, 2)
	assert.Equal(t, "Flour", decoded.Session.Entries[0].Name)
	assert.Equal(t, "no valid match", decoded.Session.Entries[1].Error)
	assert.Empty(t, logger.entries)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFileParseLogger_WriteError(t *testing.T) {
	logger := NewFileParseLogger(failingWriter{})
	require.NoError(t, logger.LogParse(ParseLog{Input: "x"}))
	err := logger.Flush()
	assert.ErrorContains(t, err, "failed to write parse log")

	assert.NoError(t, NewFileParseLogger(nil).Flush())
}

func TestStdoutParseLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := &StdoutParseLogger{out: &buf}

	require.NoError(t, logger.LogParse(ParseLog{Input: "a"}))
	require.NoError(t, logger.LogParse(ParseLog{Input: "b"}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"input":"b"`)
}

func TestNoOpParseLogger(t *testing.T) {
	assert.NoError(t, NewNoOpParseLogger().LogParse(ParseLog{Input: "a"}))
}

func TestNewParseLogFilePath(t *testing.T) {
	path := NewParseLogFilePath("logs", "parse")
	assert.Equal(t, "logs", filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".parse.json"))
}

func TestDump(t *testing.T) {
	ing, err := ingredient.Parse("350g flour")
	require.NoError(t, err)

	var buf bytes.Buffer
	Dump(&buf, ing)
	assert.Contains(t, buf.String(), "logger_test.go:")
	assert.Contains(t, buf.String(), "Flour")
}
