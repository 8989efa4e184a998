package logger

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements the Logger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	atom   zap.AtomicLevel
	level  atomic.Int32
}

// NewZapLogger builds a logger from the logger section of the configuration.
// Production defaults to JSON, everything else to a coloured console.
func NewZapLogger(conf config.LoggerConfig, isProduction bool) (core.Logger, error) {
	var encCfg zapcore.EncoderConfig
	if isProduction {
		encCfg = zap.NewProductionEncoderConfig()
	} else {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "timestamp"
	encCfg.MessageKey = "message"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if conf.TimeFormat != "" {
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(conf.TimeFormat)
	}

	var encoder zapcore.Encoder
	switch strings.ToLower(conf.Format) {
	case "console":
		if !isProduction {
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(encCfg)
	case "json", "":
		encoder = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unsupported log format %q", conf.Format)
	}

	sink, err := openSink(conf.Output)
	if err != nil {
		return nil, err
	}

	level := core.ParseLogLevel(conf.Level)
	atom := zap.NewAtomicLevelAt(toZapLevel(level))

	var opts []zap.Option
	if conf.CallerInfo {
		// Skip this adapter's frame so the caller is the code that logged
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	l := NewZapLoggerFromCore(zapcore.NewCore(encoder, sink, atom), opts...)
	zl := l.(*ZapLogger)
	zl.atom = atom
	zl.level.Store(int32(level))
	return zl, nil
}

// NewZapLoggerFromCore wraps an existing zap core, mainly for tests that
// observe log output
func NewZapLoggerFromCore(c zapcore.Core, opts ...zap.Option) core.Logger {
	l := &ZapLogger{
		logger: zap.New(c, opts...),
		atom:   zap.NewAtomicLevelAt(zap.DebugLevel),
	}
	l.level.Store(int32(core.LogLevelDebug))
	return l
}

// NewDefaultLogger creates a development console logger at info level
func NewDefaultLogger() core.Logger {
	l, err := NewZapLogger(config.LoggerConfig{Level: "info", Format: "console", Output: "stdout"}, false)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return l
}

func openSink(output string) (zapcore.WriteSyncer, error) {
	switch strings.ToLower(output) {
	case "", "stdout":
		return zapcore.Lock(os.Stdout), nil
	case "stderr":
		return zapcore.Lock(os.Stderr), nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", output, err)
		}
		return zapcore.Lock(f), nil
	}
}

func toZapLevel(level core.LogLevel) zapcore.Level {
	switch level {
	case core.LogLevelDebug:
		return zap.DebugLevel
	case core.LogLevelWarn:
		return zap.WarnLevel
	case core.LogLevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// SetLevel sets the minimum log level
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.level.Store(int32(level))
	l.atom.SetLevel(toZapLevel(level))
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() core.LogLevel {
	return core.LogLevel(l.level.Load())
}

// mapToZapFields converts a map of fields to zap fields
func mapToZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		if err, ok := v.(error); ok {
			zapFields = append(zapFields, zap.NamedError(k, err))
			continue
		}
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	if l.GetLevel() > core.LogLevelDebug {
		return
	}
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	if l.GetLevel() > core.LogLevelInfo {
		return
	}
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	if l.GetLevel() > core.LogLevelWarn {
		return
	}
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	err := l.logger.Sync()
	// Syncing a terminal returns EINVAL on Linux
	if err != nil && (strings.Contains(err.Error(), "invalid argument") ||
		strings.Contains(err.Error(), "inappropriate ioctl")) {
		return nil
	}
	return err
}
