package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// rotatingFile appends to a log file and shifts it to path.1, path.2, ...
// once it exceeds maxSize bytes. At most maxFiles old files are kept.
type rotatingFile struct {
	path     string
	maxSize  int64
	maxFiles int

	mu      sync.Mutex
	file    *os.File
	written int64
}

func newRotatingFile(path string, maxSizeMB, maxFiles int) (*rotatingFile, error) {
	if maxSizeMB <= 0 {
		maxSizeMB = 5
	}
	if maxFiles < 0 {
		maxFiles = 0
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	w := &rotatingFile{
		path:     path,
		maxSize:  int64(maxSizeMB) * 1024 * 1024,
		maxFiles: maxFiles,
	}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

// Write implements io.Writer. A record is never split across files.
func (w *rotatingFile) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return 0, os.ErrClosed
	}
	if w.written > 0 && w.written+int64(len(p)) > w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := w.file.Write(p)
	w.written += int64(n)
	return n, err
}

// Close closes the underlying file. Further writes fail with os.ErrClosed.
func (w *rotatingFile) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

func (w *rotatingFile) open() error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	w.file = f
	w.written = info.Size()
	return nil
}

// rotate renames yfoil.log.(n-1) to yfoil.log.n down to yfoil.log to
// yfoil.log.1, dropping whatever falls off the end, then reopens path.
func (w *rotatingFile) rotate() error {
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	w.file = nil

	if w.maxFiles == 0 {
		_ = os.Remove(w.path)
	} else {
		_ = os.Remove(w.backupPath(w.maxFiles))
		for n := w.maxFiles - 1; n >= 1; n-- {
			_ = os.Rename(w.backupPath(n), w.backupPath(n+1))
		}
		if err := os.Rename(w.path, w.backupPath(1)); err != nil {
			return fmt.Errorf("rotate log file: %w", err)
		}
	}
	return w.open()
}

func (w *rotatingFile) backupPath(n int) string {
	return fmt.Sprintf("%s.%d", w.path, n)
}
