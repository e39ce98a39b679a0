// Package logging builds the device logger. The TUI owns the terminal, so
// log output goes to a file under the data directory.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// New returns a production zap logger writing to amar.log under basePath.
// An empty basePath yields a no-op logger (used by tests).
func New(basePath string) (*zap.Logger, error) {
	if basePath == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(basePath, "amar.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	return cfg.Build()
}
