package logger

import (
	"go.uber.org/zap"
)

// NewLogger builds the production logger used across the service.
func NewLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return l
}
