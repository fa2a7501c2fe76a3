package util

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Development config is used unless env is "production". Verbose lowers the level to debug.
func NewLogger(env string, verbose bool) *zap.SugaredLogger {
	var cfg zap.Config

	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	// stdout is reserved for the form front end
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return zap.Must(cfg.Build()).Sugar()
}
