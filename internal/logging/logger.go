package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	// Env selects JSON output on stdout when set to "production".
	Env   string
	Level string
	// File enables a rotating log file at this path.
	File string
	// LogstashAddr enables the Logstash TCP sink.
	LogstashAddr string
}

// Logger bundles the zap logger with the sinks that must be closed on exit.
type Logger struct {
	*zap.Logger
	closers []io.Closer
}

// New builds a logger writing to stdout and, when configured, to a rotating
// file and a Logstash input. File and Logstash always receive JSON.
func New(opts Options) (*Logger, error) {
	level, err := zapcore.ParseLevel(strings.TrimSpace(opts.Level))
	if err != nil || opts.Level == "" {
		level = zapcore.InfoLevel
	}

	production := strings.EqualFold(opts.Env, "production")
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	if production {
		encoderCfg = zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "timestamp"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	jsonCfg := zap.NewProductionEncoderConfig()
	jsonCfg.TimeKey = "timestamp"
	jsonCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	stdoutEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	if production {
		stdoutEncoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(stdoutEncoder, zapcore.Lock(os.Stdout), level),
	}
	var closers []io.Closer

	if path := strings.TrimSpace(opts.File); path != "" {
		file := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10,
			MaxBackups: 7,
			MaxAge:     28,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(jsonCfg), zapcore.AddSync(file), level))
		closers = append(closers, file)
	}

	if addr := strings.TrimSpace(opts.LogstashAddr); addr != "" {
		writer, err := NewLogstashWriter(LogstashConfig{Addr: addr})
		if err != nil {
			return nil, fmt.Errorf("logstash sink: %w", err)
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(jsonCfg), writer, level))
		closers = append(closers, writer)
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return &Logger{Logger: logger, closers: closers}, nil
}

// Close flushes the logger and releases file and network sinks.
func (l *Logger) Close() error {
	_ = l.Logger.Sync()
	var first error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
