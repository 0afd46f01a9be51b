// Package logger provides structured logging for the schema registry client.
//
// The package wraps Uber's Zap logger with a small method surface used across
// this repository: each logging method takes a message, an optional context
// for distributed tracing integration, and a map of structured fields.
//
// Core Features:
//   - Structured JSON logging with key-value pairs
//   - Configurable log levels (Debug, Info, Warning, Error)
//   - Automatic trace and span ID extraction from context when tracing is enabled
//   - Integration with the fx dependency injection framework
//
// # Direct Usage (Without FX)
//
//	import "github.com/seriouslag/confluent-schema-registry/v1/logger"
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "my-service",
//	})
//
//	log.Info("schema registered", nil, map[string]interface{}{
//	    "subject": "payments-value",
//	    "id":      42,
//	})
//
// # FX Module Integration
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: logger.Info, ServiceName: "my-service"}
//	    }),
//	)
//
// When EnableTracing is set and the context passed to a logging method carries
// an active OpenTelemetry span, the emitted entry includes trace_id and
// span_id fields so log entries can be correlated with traces.
package logger
