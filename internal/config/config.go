// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

// Package config loads application configuration with Koanf v2 layering:
// built-in defaults, then an optional YAML config file, then environment
// variables. Validation runs after unmarshaling.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/streamwarden/streamwarden/internal/logging"
	"github.com/streamwarden/streamwarden/internal/rules"
	"github.com/streamwarden/streamwarden/internal/session"
)

// SessionLimitsConfig is the SESSION_LIMITS configuration surface consumed
// by the session state tracker. Every limit can also be overridden per call.
type SessionLimitsConfig struct {
	// StaleSessionTimeout is how long a session may go without telemetry
	// before being force-stopped.
	StaleSessionTimeout time.Duration `koanf:"stale_session_timeout" validate:"gt=0"`

	// MinPlayTime is the minimum watch duration for a session to be
	// recorded. Zero records everything.
	MinPlayTime time.Duration `koanf:"min_play_time" validate:"gte=0"`

	// WatchCompletionThreshold is the progress ratio at which an item
	// counts as watched.
	WatchCompletionThreshold float64 `koanf:"watch_completion_threshold" validate:"gt=0,lte=1"`

	// ContinuedSessionThreshold is the maximum stop-to-start gap for
	// continuation grouping. The 24h hard cap applies on top regardless.
	ContinuedSessionThreshold time.Duration `koanf:"continued_session_threshold" validate:"gt=0"`
}

// Config holds all application configuration.
type Config struct {
	Session SessionLimitsConfig `koanf:"session"`
	Engine  rules.EngineConfig  `koanf:"engine" validate:"required"`
	Logging logging.Config      `koanf:"logging"`
}

// Default returns a Config with all default values.
func Default() *Config {
	return &Config{
		Session: SessionLimitsConfig{
			StaleSessionTimeout:       session.DefaultStaleTimeout,
			MinPlayTime:               time.Duration(session.DefaultMinPlayTimeMs) * time.Millisecond,
			WatchCompletionThreshold:  session.DefaultWatchCompletionThreshold,
			ContinuedSessionThreshold: session.DefaultContinuedThreshold,
		},
		Engine:  rules.DefaultEngineConfig(),
		Logging: logging.DefaultConfig(),
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Engine.Parallelism < 0 {
		return fmt.Errorf("engine.parallelism cannot be negative")
	}
	return nil
}
