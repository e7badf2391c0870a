package logger

import (
	"io"

	"go.trai.ch/relink/internal/core/domain"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 7
)

// newRotatingFile returns a size-rotated writer for cfg.File.
func newRotatingFile(cfg domain.LogConfig) io.WriteCloser {
	lj := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    defaultMaxSizeMB,
		MaxBackups: defaultMaxBackups,
		MaxAge:     defaultMaxAgeDays,
	}
	if cfg.MaxSizeMB > 0 {
		lj.MaxSize = cfg.MaxSizeMB
	}
	if cfg.MaxBackups > 0 {
		lj.MaxBackups = cfg.MaxBackups
	}
	if cfg.MaxAgeDays > 0 {
		lj.MaxAge = cfg.MaxAgeDays
	}
	return lj
}
