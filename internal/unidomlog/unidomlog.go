// Package unidomlog builds the *zap.Logger the CLI hands to
// internal/bbt.FrameworkState, following the same construct-once-in-main,
// pass-by-pointer pattern Navigatorx's cmd/engine uses for its own
// logger.New() call.
package unidomlog

import "go.uber.org/zap"

// New builds a logger for the given verbosity flags:
//   - quiet takes precedence and returns zap.NewNop(), silencing search
//     depth logging entirely.
//   - verbose returns zap.NewDevelopment(), human-readable and unsampled.
//   - otherwise, a production config with the timestamp key removed, since
//     depth-log lines are meaningful by call count, not wall-clock time.
func New(verbose, quiet bool) (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = ""
	return cfg.Build()
}
