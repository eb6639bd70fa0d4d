// Package telemetry provides the run-scoped, leveled logging used by
// cmd/mrc and available to any other collaborator exercising the
// resolution core.
package telemetry

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/xid"
)

const (
	resolvePrefix = "[RESOLVE] "
	debugPrefix   = "[DEBUG]   "
	cachePrefix   = "[CACHE]   "
)

// Logger fans a resolution run's output across three leveled loggers: a
// human-facing resolve logger mirrored to stdout, and debug/cache loggers
// kept in the log file only.
type Logger struct {
	RunID string

	Resolve *log.Logger
	Debug   *log.Logger
	Cache   *log.Logger

	file *os.File
}

// New opens a fresh run log under dir (one file per run, named by the run
// id) and wires up the three leveled loggers against it.
func New(dir string) (*Logger, error) {
	runID := xid.New().String()
	path := logPath(dir, runID)

	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	return &Logger{
		RunID:   runID,
		Resolve: log.New(io.MultiWriter(os.Stdout, file), resolvePrefix, 0),
		Debug:   log.New(file, debugPrefix, log.Lmicroseconds|log.LUTC),
		Cache:   log.New(file, cachePrefix, log.Lmicroseconds|log.LUTC),
		file:    file,
	}, nil
}

// Close flushes and closes the run's log file.
func (l *Logger) Close() error {
	return l.file.Close()
}

func logPath(dir, runID string) string {
	name := fmt.Sprintf("%s-%s.log", time.Now().Format("2006/01/02/run-150405"), runID)
	return filepath.Join(dir, "logs", name)
}
