// pkg/logger/logger.go
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger
}

// NewForMode picks the logger flavor from the server's gin mode: human
// readable console output in debug, JSON production logging otherwise.
func NewForMode(mode string) *Logger {
	if mode == "debug" {
		return NewDevelopment()
	}
	return New()
}

// New returns the JSON production logger with ISO8601 timestamps.
func New() *Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, _ := cfg.Build()
	return &Logger{l.Sugar()}
}

// NewDevelopment returns a colored console logger for local runs.
func NewDevelopment() *Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stdout), zapcore.DebugLevel)
	return &Logger{zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).Sugar()}
}
