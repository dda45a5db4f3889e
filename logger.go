package foodist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"foodist/ingredient"
)

// ParseLogger records ingredient parse attempts.
type ParseLogger interface {
	LogParse(entry ParseLog) error
}

// NewParseLogFilePath returns a timestamped log file path for a command.
func NewParseLogFilePath(dir, command string) string {
	return filepath.Join(dir, fmt.Sprintf("%d.%s.json", time.Now().Unix(), command))
}

// ParseLog is one parse attempt.
type ParseLog struct {
	Timestamp time.Time `json:"timestamp"`
	Input     string    `json:"input"`
	Name      string    `json:"name,omitempty"`
	Quantity  string    `json:"quantity,omitempty"`
	Discarded string    `json:"discarded,omitempty"`
	Error     string    `json:"error,omitempty"`
	Message   string    `json:"message,omitempty"`
}

// NewParseLog builds a log entry from the result of ingredient.Parse.
func NewParseLog(input string, ing ingredient.Ingredient, err error) ParseLog {
	entry := ParseLog{Timestamp: time.Now(), Input: input}
	if err != nil {
		entry.Error = err.Error()
		entry.Message = ingredient.Message(err)
		return entry
	}
	entry.Name = ing.Name
	entry.Quantity = ing.Qty.String()
	entry.Discarded = ing.Discarded
	return entry
}

// FileParseLogger accumulates entries and writes them on Flush.
type FileParseLogger struct {
	entries []ParseLog
	writer  io.Writer
}

// NewFileParseLogger creates a new file-based parse logger
func NewFileParseLogger(writer io.Writer) *FileParseLogger {
	return &FileParseLogger{
		entries: make([]ParseLog, 0),
		writer:  writer,
	}
}

// LogParse buffers the entry (does not flush immediately)
func (l *FileParseLogger) LogParse(entry ParseLog) error {
	l.entries = append(l.entries, entry)
	return nil
}

// Flush writes all buffered entries to the writer.
func (l *FileParseLogger) Flush() error {
	if l.writer == nil {
		return nil
	}

	data, err := json.MarshalIndent(map[string]any{
		"parse_session": map[string]any{
			"timestamp": time.Now(),
			"entries":   l.entries,
		},
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal parse log: %w", err)
	}

	if _, err := l.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write parse log: %w", err)
	}

	l.entries = l.entries[:0]
	return nil
}

// NoOpParseLogger discards all entries
type NoOpParseLogger struct{}

func NewNoOpParseLogger() *NoOpParseLogger {
	return &NoOpParseLogger{}
}

func (nop *NoOpParseLogger) LogParse(entry ParseLog) error {
	return nil
}

// StdoutParseLogger writes each entry as a JSON line (for Lambda/CloudWatch).
type StdoutParseLogger struct {
	out io.Writer
}

func NewStdoutParseLogger() *StdoutParseLogger {
	return &StdoutParseLogger{out: os.Stdout}
}

func (l *StdoutParseLogger) LogParse(entry ParseLog) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(l.out, string(data))
	return err
}
