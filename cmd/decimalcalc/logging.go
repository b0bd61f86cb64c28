package main

import "go.uber.org/zap"

// newLogger builds a production zap logger. The core package never logs
// (spec §1 places overflow-diagnostic logging outside its boundary); this
// is the one place in the repository that does, matching the structured,
// leveled logging matrixorigin-matrixone and vitessio-vitess both build on
// zap for.
func newLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func logOverflow(op string, args ...zap.Field) {
	logger.Warn("decimal operation overflowed", append([]zap.Field{zap.String("op", op)}, args...)...)
}

func logNaN(op string, args ...zap.Field) {
	logger.Warn("decimal operation produced NaN (division by zero)", append([]zap.Field{zap.String("op", op)}, args...)...)
}

func logUnderflow(op string, args ...zap.Field) {
	logger.Info("decimal parse underflowed (fractional digits truncated)", append([]zap.Field{zap.String("op", op)}, args...)...)
}
