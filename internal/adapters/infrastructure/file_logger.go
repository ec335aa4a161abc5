package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

var levelRank = map[string]int{"DEBUG": 0, "INFO": 1, "WARN": 2, "ERROR": 3}

// FileLoggerAdapter writes structured JSON lines to a file
type FileLoggerAdapter struct {
	filePath string
	minRank  int
	mutex    sync.Mutex
}

// NewFileLoggerAdapter creates a file logger that drops entries below level
func NewFileLoggerAdapter(logPath, level string) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	rank, ok := levelRank[strings.ToUpper(strings.TrimSpace(level))]
	if !ok {
		rank = levelRank["INFO"]
	}

	return &FileLoggerAdapter{
		filePath: logPath,
		minRank:  rank,
	}, nil
}

func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.writeLogEntry("DEBUG", msg, fields...)
}

func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.writeLogEntry("INFO", msg, fields...)
}

func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.writeLogEntry("WARN", msg, fields...)
}

func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.writeLogEntry("ERROR", msg, fields...)
}

func (f *FileLoggerAdapter) writeLogEntry(level, msg string, fields ...ports.Field) {
	if levelRank[level] < f.minRank {
		return
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	logEntry := map[string]interface{}{
		"timestamp": time.Now().Format(time.RFC3339),
		"level":     level,
		"message":   msg,
	}

	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			logEntry[field.Key] = err.Error()
			continue
		}
		logEntry[field.Key] = field.Value
	}

	jsonData, err := json.Marshal(logEntry)
	if err != nil {
		f.writeRawLog(fmt.Sprintf(`{"level":"ERROR","message":"failed to marshal log entry: %v"}`, err))
		return
	}

	f.writeRawLog(string(jsonData))
}

func (f *FileLoggerAdapter) writeRawLog(data string) {
	file, err := os.OpenFile(f.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", closeErr)
		}
	}()

	if _, err := file.WriteString(data + "\n"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}
