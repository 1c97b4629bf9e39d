// Package logging builds the slog logger used by the clock commands.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	maxLogSizeBytes  = 6 * 1024 * 1024
	keepLogSizeBytes = 5 * 1024 * 1024
)

// New returns a text logger at level writing to path, or to stderr when
// path is empty. The returned closer releases the log file.
func New(level, path string) (*slog.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if path != "" {
		fileWriter, err := NewFileWriter(path)
		if err != nil {
			return nil, nil, err
		}
		w = fileWriter
		closer = fileWriter
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
	return logger, closer, nil
}

// ParseLevel maps debug/info/warn/error to a slog level; anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// FileWriter appends to a log file and, once the file exceeds its limit,
// cuts it down to the most recent bytes.
type FileWriter struct {
	path     string
	file     *os.File
	maxBytes int64
	keep     int64
	mu       sync.Mutex
}

// NewFileWriter opens path for appending, creating parent directories.
func NewFileWriter(path string) (*FileWriter, error) {
	return newFileWriter(path, maxLogSizeBytes, keepLogSizeBytes)
}

func newFileWriter(path string, maxBytes, keep int64) (*FileWriter, error) {
	if err := ensureLogDir(path); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	writer := &FileWriter{path: path, file: file, maxBytes: maxBytes, keep: keep}
	if err := writer.truncateIfNeeded(); err != nil {
		file.Close()
		return nil, err
	}
	return writer, nil
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (w *FileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := w.file.Write(p)
	if err != nil {
		return n, err
	}
	if err := w.truncateIfNeeded(); err != nil {
		return n, err
	}
	return n, nil
}

// Close closes the underlying file.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

func (w *FileWriter) truncateIfNeeded() error {
	info, err := w.file.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	if size <= w.maxBytes {
		return nil
	}

	buf := make([]byte, w.keep)
	if _, err := w.file.ReadAt(buf, size-w.keep); err != nil && err != io.EOF {
		return err
	}

	if err := w.file.Truncate(0); err != nil {
		return err
	}
	// O_APPEND writes land at the new end of file.
	_, err = w.file.Write(buf)
	return err
}
