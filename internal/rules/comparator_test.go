// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

package rules

import (
	"math"
	"testing"

	"github.com/streamwarden/streamwarden/internal/models"
)

func TestCompareEquality(t *testing.T) {
	tests := []struct {
		name     string
		actual   models.ConditionValue
		op       models.Operator
		expected models.ConditionValue
		want     bool
	}{
		{"string eq match", models.StringValue("tv"), models.OpEq, models.StringValue("tv"), true},
		{"string eq mismatch", models.StringValue("tv"), models.OpEq, models.StringValue("mobile"), false},
		{"string eq is case sensitive", models.StringValue("TV"), models.OpEq, models.StringValue("tv"), false},
		{"number eq match", models.NumberValue(3), models.OpEq, models.NumberValue(3), true},
		{"bool eq match", models.BoolValue(true), models.OpEq, models.BoolValue(true), true},
		{"cross-kind eq never matches", models.NumberValue(1), models.OpEq, models.StringValue("1"), false},
		{"absent never equals absent", models.ConditionValue{}, models.OpEq, models.ConditionValue{}, false},
		{"neq match", models.StringValue("tv"), models.OpNeq, models.StringValue("mobile"), true},
		{"neq mismatch", models.StringValue("tv"), models.OpNeq, models.StringValue("tv"), false},
		{"neq on absent actual fails", models.ConditionValue{}, models.OpNeq, models.StringValue("tv"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.actual, tt.op, tt.expected); got != tt.want {
				t.Errorf("Compare(%v, %s, %v) = %v, want %v", tt.actual, tt.op, tt.expected, got, tt.want)
			}
		})
	}
}

func TestCompareNumeric(t *testing.T) {
	tests := []struct {
		name     string
		actual   models.ConditionValue
		op       models.Operator
		expected models.ConditionValue
		want     bool
	}{
		{"gt true", models.NumberValue(5), models.OpGt, models.NumberValue(3), true},
		{"gt false at boundary", models.NumberValue(3), models.OpGt, models.NumberValue(3), false},
		{"gte true at boundary", models.NumberValue(3), models.OpGte, models.NumberValue(3), true},
		{"lt true", models.NumberValue(2), models.OpLt, models.NumberValue(3), true},
		{"lte true at boundary", models.NumberValue(3), models.OpLte, models.NumberValue(3), true},
		{"infinite speed exceeds any threshold", models.NumberValue(math.Inf(1)), models.OpGt, models.NumberValue(900), true},
		{"non-numeric actual fails", models.StringValue("5"), models.OpGt, models.NumberValue(3), false},
		{"non-numeric expected fails", models.NumberValue(5), models.OpGt, models.StringValue("3"), false},
		{"bool operands fail", models.BoolValue(true), models.OpGte, models.BoolValue(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.actual, tt.op, tt.expected); got != tt.want {
				t.Errorf("Compare(%v, %s, %v) = %v, want %v", tt.actual, tt.op, tt.expected, got, tt.want)
			}
		})
	}
}

func TestCompareMembership(t *testing.T) {
	countries := models.StringListValue("US", "CA", "GB")

	tests := []struct {
		name     string
		actual   models.ConditionValue
		op       models.Operator
		expected models.ConditionValue
		want     bool
	}{
		{"in match", models.StringValue("CA"), models.OpIn, countries, true},
		{"in mismatch", models.StringValue("DE"), models.OpIn, countries, false},
		{"in with non-list expected fails", models.StringValue("US"), models.OpIn, models.StringValue("US"), false},
		{"not_in match", models.StringValue("DE"), models.OpNotIn, countries, true},
		{"not_in mismatch", models.StringValue("US"), models.OpNotIn, countries, false},
		{"not_in with non-list expected fails", models.StringValue("DE"), models.OpNotIn, models.StringValue("US"), false},
		{"numeric membership", models.NumberValue(2), models.OpIn, models.ListValue(models.NumberValue(1), models.NumberValue(2)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.actual, tt.op, tt.expected); got != tt.want {
				t.Errorf("Compare(%v, %s, %v) = %v, want %v", tt.actual, tt.op, tt.expected, got, tt.want)
			}
		})
	}
}

func TestCompareSubstring(t *testing.T) {
	tests := []struct {
		name     string
		actual   models.ConditionValue
		op       models.Operator
		expected models.ConditionValue
		want     bool
	}{
		{"contains match", models.StringValue("Plex for Roku"), models.OpContains, models.StringValue("roku"), true},
		{"contains is case insensitive", models.StringValue("ANDROID TV"), models.OpContains, models.StringValue("android"), true},
		{"contains mismatch", models.StringValue("Plex Web"), models.OpContains, models.StringValue("roku"), false},
		{"contains requires strings", models.NumberValue(42), models.OpContains, models.StringValue("4"), false},
		{"not_contains match", models.StringValue("Plex Web"), models.OpNotContains, models.StringValue("roku"), true},
		{"not_contains mismatch", models.StringValue("Plex for Roku"), models.OpNotContains, models.StringValue("Roku"), false},
		{"not_contains requires strings", models.NumberValue(42), models.OpNotContains, models.StringValue("4"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.actual, tt.op, tt.expected); got != tt.want {
				t.Errorf("Compare(%v, %s, %v) = %v, want %v", tt.actual, tt.op, tt.expected, got, tt.want)
			}
		})
	}
}

func TestCompareUnknownOperator(t *testing.T) {
	if Compare(models.NumberValue(1), models.Operator("matches"), models.NumberValue(1)) {
		t.Error("unknown operator must fail to match")
	}
}
