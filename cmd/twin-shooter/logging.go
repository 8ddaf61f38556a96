package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "twin-shooter.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a logger writing to logs/ when debug is set, or discarding everything.
// The returned file is nil when logging is disabled; the caller closes it on exit.
func setupLogging(debug bool) (*slog.Logger, *os.File) {
	if !debug {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateErr := rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil
	}

	log.SetOutput(f)
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Info("logging started", "pid", os.Getpid())
	if rotateErr != nil {
		logger.Warn("log rotation failed", "err", rotateErr)
	}
	return logger, f
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(logPath string) error {
	info, err := os.Stat(logPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", logPath, err)
	}
	if info.Size() <= maxLogSize {
		return nil
	}
	rotated := filepath.Join(filepath.Dir(logPath), fmt.Sprintf("twin-shooter-%s.log", time.Now().Format("20060102-150405")))
	if err := os.Rename(logPath, rotated); err != nil {
		return fmt.Errorf("rotate %s: %w", logPath, err)
	}
	return nil
}
