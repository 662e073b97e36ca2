// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides per-invocation context loading for CLI
// commands: optional configuration defaults plus the process logger.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dacolabs/davro/internal/config"
)

// ErrInvalidConfig indicates the config file exists but is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigFileName is the name of the davro configuration file.
const ConfigFileName = "davro.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds what every command needs at run time. Config is nil when
// no davro.yaml exists in the working directory.
type Context struct {
	Config *config.Config
	Logger *zap.Logger
}

// Load resolves the session from the current working directory and returns
// a new context.Context with it stored.
func Load(ctx context.Context, verbose bool) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	var cfg *config.Config
	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); statErr == nil {
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if validateErr := cfg.Validate(); validateErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
		}
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	sess := &Context{
		Config: cfg,
		Logger: logger,
	}

	return context.WithValue(ctx, contextKey{}, sess), nil
}

// newLogger builds the process logger. Output goes to stderr only; stdout
// may carry container bytes.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sess, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sess
	}
	return nil
}
