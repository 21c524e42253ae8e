package common

import (
	"log"

	"github.com/google/uuid"
)

// NewInstanceID returns a fresh identifier for a constructed service
func NewInstanceID() string {
	return uuid.New().String()
}

// LoggerOrDefault returns logger, or the standard logger when nil
func LoggerOrDefault(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.Default()
	}
	return logger
}
