// Package logging builds the application's zap logger from configuration.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/brendanbates89/dot/framework/config"
)

// New constructs a logger from cfg: human-readable development output when
// App.Debug is set, JSON production output otherwise, at Log.Level.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.App.Debug {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	if cfg.Log.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: level %q: %w", cfg.Log.Level, err)
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}

	return zc.Build()
}
