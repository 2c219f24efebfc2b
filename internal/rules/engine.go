// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

package rules

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/streamwarden/streamwarden/internal/metrics"
	"github.com/streamwarden/streamwarden/internal/models"
)

// EngineConfig configures the rule engine.
type EngineConfig struct {
	// Parallelism bounds how many conditions of one group evaluate
	// concurrently. 1 (or less) evaluates sequentially. Groups themselves
	// always evaluate sequentially because the AND chain short-circuits in
	// declared order.
	Parallelism int `json:"parallelism" koanf:"parallelism"`
}

// DefaultEngineConfig returns sensible defaults.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{Parallelism: 1}
}

// Engine evaluates V2 rules against evaluation contexts. It is stateless
// apart from its configuration and safe for concurrent use.
type Engine struct {
	registry    map[models.ConditionField]EvaluatorFunc
	logger      zerolog.Logger
	parallelism int
}

// NewEngine creates a rule engine with the built-in evaluator registry.
func NewEngine(cfg EngineConfig, logger zerolog.Logger) *Engine {
	parallelism := cfg.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}
	return &Engine{
		registry:    defaultRegistry(),
		logger:      logger,
		parallelism: parallelism,
	}
}

// RegisterEvaluator adds or replaces the evaluator for a field. Intended for
// evaluators that need external lookups; call before the engine is shared
// across goroutines.
func (e *Engine) RegisterEvaluator(field models.ConditionField, fn EvaluatorFunc) {
	e.registry[field] = fn
}

// EvaluateCondition evaluates a single condition. Every failure mode
// degrades to "did not match": an unknown field and an evaluator error are
// logged with the offending field name and counted, never propagated.
func (e *Engine) EvaluateCondition(ctx context.Context, ec *models.EvaluationContext, cond models.Condition) bool {
	eval, ok := e.registry[cond.Field]
	if !ok {
		e.logger.Warn().
			Str("field", string(cond.Field)).
			Msg("no evaluator registered for condition field")
		metrics.EvaluatorErrors.WithLabelValues(string(cond.Field), metrics.ReasonNotFound).Inc()
		return false
	}

	matched, err := eval(ctx, ec, cond)
	if err != nil {
		e.logger.Warn().
			Err(err).
			Str("field", string(cond.Field)).
			Str("operator", string(cond.Operator)).
			Msg("condition evaluator failed")
		metrics.EvaluatorErrors.WithLabelValues(string(cond.Field), metrics.ReasonError).Inc()
		return false
	}

	metrics.ConditionEvaluations.WithLabelValues(string(cond.Field)).Inc()
	return matched
}

// evaluateGroup ORs the conditions of one group. An empty group is vacuously
// true. With parallelism above 1 the conditions fan out concurrently; they
// are independent reads against the same immutable context, so order does
// not affect the result.
func (e *Engine) evaluateGroup(ctx context.Context, ec *models.EvaluationContext, group models.ConditionGroup) bool {
	if len(group.Conditions) == 0 {
		return true
	}

	if e.parallelism > 1 && len(group.Conditions) > 1 {
		return e.evaluateGroupParallel(ctx, ec, group)
	}

	for _, cond := range group.Conditions {
		if e.EvaluateCondition(ctx, ec, cond) {
			return true
		}
	}
	return false
}

// evaluateGroupParallel fans the group's conditions out with bounded
// parallelism. Goroutines never return errors; evaluator failures already
// degraded to non-match inside EvaluateCondition, so one bad condition
// cannot cancel its siblings.
func (e *Engine) evaluateGroupParallel(ctx context.Context, ec *models.EvaluationContext, group models.ConditionGroup) bool {
	var matched atomic.Bool

	g := new(errgroup.Group)
	g.SetLimit(e.parallelism)
	for _, cond := range group.Conditions {
		g.Go(func() error {
			if e.EvaluateCondition(ctx, ec, cond) {
				matched.Store(true)
			}
			return nil
		})
	}
	_ = g.Wait()

	return matched.Load()
}

// evaluateGroups ANDs the groups in declared order, short-circuiting on the
// first failure. On success it returns the index of every group that held;
// an empty group list matches vacuously with an empty index list.
func (e *Engine) evaluateGroups(ctx context.Context, ec *models.EvaluationContext, conditions *models.RuleConditions) ([]int, bool) {
	matchedGroups := make([]int, 0, len(conditions.Groups))
	for i, group := range conditions.Groups {
		if !e.evaluateGroup(ctx, ec, group) {
			return nil, false
		}
		matchedGroups = append(matchedGroups, i)
	}
	return matchedGroups, true
}

// EvaluateRule evaluates the context's rule and returns a fresh result.
// Rules without V2 conditions (unconverted legacy rules) never match. On
// match the rule's declared actions are copied into the result.
func (e *Engine) EvaluateRule(ctx context.Context, ec *models.EvaluationContext) models.EvaluationResult {
	result := models.EvaluationResult{
		MatchedGroups: []int{},
		Actions:       []models.Action{},
	}
	if ec == nil || ec.Rule == nil {
		return result
	}
	rule := ec.Rule
	result.RuleID = rule.ID
	result.RuleName = rule.Name

	if rule.Conditions == nil {
		e.logger.Debug().
			Str("rule_id", rule.ID).
			Msg("rule has no v2 conditions, skipping")
		metrics.RuleEvaluations.WithLabelValues(metrics.OutcomeSkippedLegacy).Inc()
		return result
	}

	start := time.Now()
	matchedGroups, matched := e.evaluateGroups(ctx, ec, rule.Conditions)
	metrics.RuleEvaluationDuration.Observe(time.Since(start).Seconds())

	if !matched {
		metrics.RuleEvaluations.WithLabelValues(metrics.OutcomeUnmatched).Inc()
		return result
	}

	metrics.RuleEvaluations.WithLabelValues(metrics.OutcomeMatched).Inc()
	result.Matched = true
	result.MatchedGroups = matchedGroups
	result.Actions = append(result.Actions, rule.Actions.Actions...)
	return result
}

// EvaluateRules evaluates every candidate rule against the base context and
// returns the results that matched, preserving rule order. Inactive rules
// and rules scoped to a different server are filtered out; rules with an
// empty server id are global and apply everywhere.
func (e *Engine) EvaluateRules(ctx context.Context, base *models.EvaluationContext, candidates []models.Rule) []models.EvaluationResult {
	if base == nil {
		return nil
	}

	serverID := ""
	switch {
	case base.Server != nil && base.Server.ID != "":
		serverID = base.Server.ID
	case base.Session != nil:
		serverID = base.Session.ServerID
	}

	results := make([]models.EvaluationResult, 0, len(candidates))
	for i := range candidates {
		rule := &candidates[i]
		if !rule.IsActive || !rule.AppliesTo(serverID) {
			continue
		}
		if result := e.EvaluateRule(ctx, base.WithRule(rule)); result.Matched {
			results = append(results, result)
		}
	}
	return results
}
