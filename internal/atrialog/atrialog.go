// Package atrialog provides the minimal leveled logging façade used for
// ATRIA's non-fatal diagnostic paths: a leveled wrapper over the standard
// log.Logger.
//
// This package is not exercised on any per-query or per-comparison hot
// path — atriatree and atriapool call it only for rare, coarse-grained
// events (a degenerate split during a build, an oversized Context being
// discarded instead of pooled), preserving the allocation-free query
// contract.
package atrialog

import (
	"log"
	"os"
)

// Level selects which messages Debugf, Infof and Warnf actually emit.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	currentLevel = LevelWarn
	logger       = log.New(os.Stderr, "atria: ", log.LstdFlags)
)

// SetLevel changes the minimum level that gets logged. Intended to be
// called once during test or application setup, not from query paths.
func SetLevel(l Level) {
	currentLevel = l
}

// Debugf logs a debug-level message.
func Debugf(format string, args ...any) {
	if currentLevel <= LevelDebug {
		logger.Printf("DEBUG "+format, args...)
	}
}

// Infof logs an info-level message.
func Infof(format string, args ...any) {
	if currentLevel <= LevelInfo {
		logger.Printf("INFO "+format, args...)
	}
}

// Warnf logs a warn-level message.
func Warnf(format string, args ...any) {
	if currentLevel <= LevelWarn {
		logger.Printf("WARN "+format, args...)
	}
}
