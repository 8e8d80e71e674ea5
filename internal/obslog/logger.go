// Package obslog builds the process-wide structured logger shared by the
// lowerer, the CLI and the demo server. Quiet unless asked for, emitting
// ECS-shaped JSON fields via ecszap, since this tool's own job is
// producing Elasticsearch-flavoured documents.
package obslog

import (
	"os"

	"go.elastic.co/ecszap"
	"go.uber.org/zap"
)

const envvar = "NESTQL_DEBUG"

var logger *zap.Logger

func init() {
	level := zap.WarnLevel
	if enabled() {
		level = zap.DebugLevel
	}
	encoderConfig := ecszap.NewDefaultEncoderConfig()
	core := ecszap.NewCore(encoderConfig, os.Stderr, level)
	logger = zap.New(core, zap.AddCaller()).Named("nestql")
}

func enabled() bool {
	val, exists := os.LookupEnv(envvar)
	return exists && val != "" && val != "0" && val != "false"
}

// Warn logs a structural warning, e.g. the lowerer hitting an AST shape it
// does not recognise. Never returns an error; logging failures are not the
// caller's problem.
func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

// Debug logs a debug-level diagnostic, suppressed unless NESTQL_DEBUG is set
// to a value other than "", "0" or "false".
func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}
