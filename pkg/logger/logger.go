package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	once         sync.Once
)

// Init builds the process-wide logger once; later calls are no-ops.
func Init(level string) error {
	var err error
	once.Do(func() {
		globalLogger, err = New(level)
	})
	return err
}

// Get returns the global logger, initialising it from LOG_LEVEL if needed.
func Get() *zap.Logger {
	if globalLogger == nil {
		_ = Init(getDefaultLevel())
	}
	return globalLogger
}

// Named returns a child of the global logger tagged with a component name.
func Named(component string) *zap.Logger {
	return Get().Named(component)
}

func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}

// New builds a JSON production logger. Unknown levels fall back to info.
func New(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.CallerKey = "caller"

	return config.Build()
}

func getDefaultLevel() string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	return "info"
}
