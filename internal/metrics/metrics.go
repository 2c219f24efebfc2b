// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

// Package metrics provides Prometheus collectors for rule evaluation
// observability. Collectors are registered with the default registry via
// promauto; an embedding application exposes them on its own /metrics
// endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RuleEvaluations counts evaluated rules by outcome.
	RuleEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamwarden_rule_evaluations_total",
			Help: "Total rule evaluations by outcome",
		},
		[]string{"outcome"}, // matched, unmatched, skipped_legacy
	)

	// ConditionEvaluations counts individual condition evaluations by field.
	ConditionEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamwarden_condition_evaluations_total",
			Help: "Total condition evaluations by field",
		},
		[]string{"field"},
	)

	// EvaluatorErrors counts condition evaluations that degraded to
	// non-match because of a missing or failing evaluator.
	EvaluatorErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamwarden_evaluator_errors_total",
			Help: "Condition evaluations degraded to non-match",
		},
		[]string{"field", "reason"}, // reason: not_found, error
	)

	// RuleEvaluationDuration observes wall time per rule evaluation.
	RuleEvaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "streamwarden_rule_evaluation_duration_seconds",
			Help:    "Duration of single rule evaluations in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Outcome labels for RuleEvaluations.
const (
	OutcomeMatched       = "matched"
	OutcomeUnmatched     = "unmatched"
	OutcomeSkippedLegacy = "skipped_legacy"
)

// Reason labels for EvaluatorErrors.
const (
	ReasonNotFound = "not_found"
	ReasonError    = "error"
)
