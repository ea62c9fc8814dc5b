// Package logging builds the zap loggers used across assetkraft.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFormat represents the logging format.
type LogFormat string

const (
	// FormatConsole indicates human-readable console format.
	FormatConsole LogFormat = "CONSOLE"
	// FormatJSON indicates structured JSON format.
	FormatJSON LogFormat = "JSON"
)

// Environment variables consulted when no explicit value is given.
const (
	EnvLevel  = "ASSETKRAFT_LOG_LEVEL"
	EnvFormat = "ASSETKRAFT_LOG_FORMAT"
)

// Component names for Named loggers.
const (
	ComponentValidation = "validation"
	ComponentMainThread = "mainthread"
	ComponentMCP        = "mcp"
	ComponentCLI        = "cli"
)

// ParseLevel converts a level name to a zapcore.Level, defaulting to warn so that
// command output is not interleaved with routine logs.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// ParseFormat returns the named format, or FormatConsole for anything unknown.
func ParseFormat(format string) LogFormat {
	if LogFormat(strings.ToUpper(strings.TrimSpace(format))) == FormatJSON {
		return FormatJSON
	}
	return FormatConsole
}

// FromEnv fills empty level/format values from the environment.
func FromEnv(level, format string) (string, string) {
	if level == "" {
		level = os.Getenv(EnvLevel)
	}
	if format == "" {
		format = os.Getenv(EnvFormat)
	}
	return level, format
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05 MST"))
}

// New creates a logger writing to w with the given level and format.
func New(w io.Writer, level string, format LogFormat) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "component",
		CallerKey:      zapcore.OmitKey,
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var encoder zapcore.Encoder
	if format == FormatJSON {
		encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeTime = timeEncoder
		encoderConfig.ConsoleSeparator = " | "
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(ParseLevel(level)))
	return zap.New(core)
}

// NewStderr creates a logger on stderr, taking unset values from the environment.
func NewStderr(level, format string) *zap.Logger {
	level, format = FromEnv(level, format)
	return New(os.Stderr, level, ParseFormat(format))
}
