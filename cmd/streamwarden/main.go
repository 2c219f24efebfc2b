// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

// Command streamwarden dry-runs detection rules against a captured session
// snapshot. Administrators use it to test rule changes offline: feed it a
// rules file and an evaluation context fixture, and it prints the matched
// results with their declared actions.
//
//	streamwarden -rules rules.json -context snapshot.json
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/streamwarden/streamwarden/internal/config"
	"github.com/streamwarden/streamwarden/internal/logging"
	"github.com/streamwarden/streamwarden/internal/models"
	"github.com/streamwarden/streamwarden/internal/rules"
)

func main() {
	rulesPath := flag.String("rules", "", "path to a JSON file containing an array of rules")
	contextPath := flag.String("context", "", "path to a JSON evaluation context fixture")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logging.Init(cfg.Logging)

	if *rulesPath == "" || *contextPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	runID := uuid.NewString()
	logger := logging.With().Str("run_id", runID).Logger()

	candidates, err := loadRules(*rulesPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *rulesPath).Msg("failed to load rules")
	}

	ec, err := loadContext(*contextPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *contextPath).Msg("failed to load evaluation context")
	}
	if ec.Now.IsZero() {
		ec.Now = time.Now()
	}

	engine := rules.NewEngine(cfg.Engine, logger)
	results := engine.EvaluateRules(context.Background(), ec, candidates)

	logger.Info().
		Int("candidates", len(candidates)).
		Int("matched", len(results)).
		Msg("evaluation complete")

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to encode results")
	}
	fmt.Println(string(out))
}

func loadRules(path string) ([]models.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var candidates []models.Rule
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("invalid rules file: %w", err)
	}
	return candidates, nil
}

func loadContext(path string) (*models.EvaluationContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ec := &models.EvaluationContext{}
	if err := json.Unmarshal(data, ec); err != nil {
		return nil, fmt.Errorf("invalid context fixture: %w", err)
	}
	if ec.Session == nil {
		return nil, fmt.Errorf("context fixture has no session")
	}
	return ec, nil
}
