// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

package models

import "time"

// EvaluationContext is the ephemeral input for one rule evaluation. It is
// constructed per (session, rule) pair by the caller and treated as a
// read-only snapshot for the duration of the evaluation; the core never
// mutates it.
type EvaluationContext struct {
	// Session is the session being evaluated.
	Session *Session `json:"session"`

	// ServerUser is the identity the session belongs to.
	ServerUser *ServerUser `json:"server_user,omitempty"`

	// Server is the media server the session is playing on.
	Server *Server `json:"server,omitempty"`

	// ActiveSessions are all currently playing sessions across the
	// deployment, used for concurrency and co-location checks.
	ActiveSessions []Session `json:"active_sessions,omitempty"`

	// RecentSessions is a bounded recent history window for the same user,
	// used for travel-speed and velocity checks.
	RecentSessions []Session `json:"recent_sessions,omitempty"`

	// Rule is the rule under evaluation. EvaluateRules swaps this per rule.
	Rule *Rule `json:"-"`

	// Now is the evaluation clock, explicit so evaluation is pure and
	// replayable against captured snapshots.
	Now time.Time `json:"now,omitempty"`
}

// WithRule returns a shallow copy of the context scoped to the given rule.
// The session and history slices are shared; they are immutable for the
// duration of one evaluation.
func (ec *EvaluationContext) WithRule(rule *Rule) *EvaluationContext {
	cp := *ec
	cp.Rule = rule
	return &cp
}
