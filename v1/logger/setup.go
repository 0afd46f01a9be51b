package logger

import (
	"context"
	"log"
	"os"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper around Uber's Zap logger.
// It provides a simplified interface to the underlying Zap logger,
// with additional functionality specific to the application's needs.
type Logger struct {
	// Zap is the underlying zap.Logger instance
	// This is exposed to allow direct access to Zap-specific functionality
	// when needed, but most logging should go through the wrapper methods.
	Zap *zap.Logger

	// tracingEnabled indicates whether tracing integration is enabled
	// When true, logging methods will automatically extract trace context
	// and include trace/span IDs in log entries
	tracingEnabled bool
}

// NewLoggerClient initializes and returns a new instance of the logger based on configuration.
// This function creates a configured Zap logger with appropriate encoding, log levels,
// and output destinations.
//
// The logger is configured with:
//   - JSON encoding for structured logging
//   - ISO8601 timestamp format
//   - Capital letter level encoding (e.g., "INFO", "ERROR")
//   - Process ID and service name as default fields
//   - Caller information (file and line) included in log entries
//   - Output directed to stderr
//
// If initialization fails, the function will call log.Fatal to terminate the application.
//
// Example:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level: logger.Info,
//	})
//	log.Info("Client started", nil, nil)
func NewLoggerClient(cfg Config) *Logger {

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderCfg.EncodeCaller = zapcore.FullCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel

	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(logLevel),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: false,
		Sampling:          nil,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths: []string{
			"stderr",
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	logger, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(2))

	if err != nil {
		log.Fatal(err)
	}

	return &Logger{
		Zap:            logger,
		tracingEnabled: cfg.EnableTracing,
	}
}

// Debug logs a message at debug level with optional trace context and fields.
func (l *Logger) Debug(msg string, ctx context.Context, fields map[string]interface{}) {
	l.Zap.Debug(msg, l.zapFields(ctx, fields)...)
}

// Info logs a message at info level with optional trace context and fields.
//
// The ctx parameter may be nil; when tracing is enabled and ctx carries an
// active span, the entry includes trace_id and span_id fields.
func (l *Logger) Info(msg string, ctx context.Context, fields map[string]interface{}) {
	l.Zap.Info(msg, l.zapFields(ctx, fields)...)
}

// Warn logs a message at warning level with optional trace context and fields.
func (l *Logger) Warn(msg string, ctx context.Context, fields map[string]interface{}) {
	l.Zap.Warn(msg, l.zapFields(ctx, fields)...)
}

// Error logs a message at error level with optional trace context and fields.
func (l *Logger) Error(msg string, ctx context.Context, fields map[string]interface{}) {
	l.Zap.Error(msg, l.zapFields(ctx, fields)...)
}

// zapFields converts the field map to zap fields and, when tracing is enabled,
// appends the trace and span IDs found in ctx.
func (l *Logger) zapFields(ctx context.Context, fields map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields)+2)

	if l.tracingEnabled && ctx != nil {
		spanCtx := trace.SpanContextFromContext(ctx)
		if spanCtx.IsValid() {
			out = append(out,
				zap.String("trace_id", spanCtx.TraceID().String()),
				zap.String("span_id", spanCtx.SpanID().String()),
			)
		}
	}

	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}

	return out
}
