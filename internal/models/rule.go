// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

package models

import (
	"github.com/goccy/go-json"
)

// ConditionField selects which field evaluator a condition runs against.
type ConditionField string

// Session behavior fields.
const (
	FieldConcurrentStreams       ConditionField = "concurrent_streams"
	FieldActiveSessionDistanceKm ConditionField = "active_session_distance_km"
	FieldTravelSpeedKmh          ConditionField = "travel_speed_kmh"
	FieldUniqueIPsInWindow       ConditionField = "unique_ips_in_window"
	FieldUniqueDevicesInWindow   ConditionField = "unique_devices_in_window"
	FieldInactiveDays            ConditionField = "inactive_days"
)

// Stream quality fields.
const (
	FieldSourceResolution     ConditionField = "source_resolution"
	FieldOutputResolution     ConditionField = "output_resolution"
	FieldIsTranscoding        ConditionField = "is_transcoding"
	FieldIsTranscodeDowngrade ConditionField = "is_transcode_downgrade"
	FieldSourceBitrateMbps    ConditionField = "source_bitrate_mbps"
)

// User, device, and network fields.
const (
	FieldUserID         ConditionField = "user_id"
	FieldTrustScore     ConditionField = "trust_score"
	FieldAccountAgeDays ConditionField = "account_age_days"
	FieldDeviceType     ConditionField = "device_type"
	FieldClientName     ConditionField = "client_name"
	FieldPlatform       ConditionField = "platform"
	FieldIsLocalNetwork ConditionField = "is_local_network"
	FieldCountry        ConditionField = "country"
	FieldIPInRange      ConditionField = "ip_in_range"
	FieldServerID       ConditionField = "server_id"
	FieldLibraryID      ConditionField = "library_id"
	FieldMediaType      ConditionField = "media_type"
)

// Operator is a comparison operator applied by the comparator.
type Operator string

const (
	OpEq          Operator = "eq"
	OpNeq         Operator = "neq"
	OpGt          Operator = "gt"
	OpGte         Operator = "gte"
	OpLt          Operator = "lt"
	OpLte         Operator = "lte"
	OpIn          Operator = "in"
	OpNotIn       Operator = "not_in"
	OpContains    Operator = "contains"
	OpNotContains Operator = "not_contains"
)

// IsRelational reports whether the operator orders two numeric values.
func (o Operator) IsRelational() bool {
	switch o {
	case OpGt, OpGte, OpLt, OpLte:
		return true
	}
	return false
}

// ConditionParams carries evaluator-specific tuning for a condition.
type ConditionParams struct {
	// WindowHours overrides the trailing window for the windowed uniqueness
	// evaluators. Zero means use the engine default.
	WindowHours float64 `json:"window_hours,omitempty"`
}

// Condition tests one field against an expected value.
type Condition struct {
	Field    ConditionField   `json:"field"`
	Operator Operator         `json:"operator"`
	Value    ConditionValue   `json:"value"`
	Params   *ConditionParams `json:"params,omitempty"`
}

// ConditionGroup is a set of conditions OR'd together. An empty group is
// vacuously true.
type ConditionGroup struct {
	Conditions []Condition `json:"conditions"`
}

// RuleConditions is the V2 condition tree: groups are AND'd. An empty group
// list is a vacuous match.
type RuleConditions struct {
	Groups []ConditionGroup `json:"groups"`
}

// Severity indicates the severity attached to a triggered action.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// ActionType identifies what the external action dispatcher should do.
type ActionType string

const (
	ActionCreateViolation ActionType = "create_violation"
	ActionNotify          ActionType = "notify"
	ActionLogOnly         ActionType = "log_only"
)

// Action is a declared consequence of a matching rule. This core only
// extracts actions; delivery belongs to the external dispatcher.
type Action struct {
	Type     ActionType      `json:"type"`
	Severity Severity        `json:"severity,omitempty"`
	Channel  string          `json:"channel,omitempty"`
	Message  string          `json:"message,omitempty"`
	Params   json.RawMessage `json:"params,omitempty"`
}

// RuleActions holds the ordered action list declared on a rule.
type RuleActions struct {
	Actions []Action `json:"actions"`
}

// Rule is an administrator-authored V2 detection rule. Rules are read-only
// at evaluation time.
//
// Conditions == nil marks a legacy rule that was never converted to the V2
// format; such rules are never evaluated by the engine. A non-nil Conditions
// with an empty Groups slice is a V2 rule that always matches.
type Rule struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	IsActive   bool            `json:"is_active"`
	ServerID   string          `json:"server_id,omitempty"` // empty = global
	Conditions *RuleConditions `json:"conditions,omitempty"`
	Actions    RuleActions     `json:"actions"`
}

// AppliesTo reports whether the rule is in scope for the given server.
// Global rules (empty ServerID) apply to every server.
func (r *Rule) AppliesTo(serverID string) bool {
	return r.ServerID == "" || r.ServerID == serverID
}

// EvaluationResult is the outcome of evaluating one rule against one
// context. Produced fresh per call, never persisted by this core.
type EvaluationResult struct {
	RuleID        string   `json:"rule_id"`
	RuleName      string   `json:"rule_name"`
	Matched       bool     `json:"matched"`
	MatchedGroups []int    `json:"matched_groups"`
	Actions       []Action `json:"actions"`
}
