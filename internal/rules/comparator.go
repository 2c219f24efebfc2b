// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

package rules

import (
	"strings"

	"github.com/streamwarden/streamwarden/internal/models"
)

// Compare applies an operator to an actual and an expected value. It
// type-checks before comparing and never errors:
//
//   - relational operators require both operands to be numbers;
//   - in/not_in require the expected value to be a list and test membership;
//   - contains/not_contains require both operands to be strings and test
//     case-insensitive substring containment;
//   - an unrecognized operator fails to match.
//
// A malformed condition therefore degrades to "did not match" instead of
// aborting evaluation of other rules. Note that not_in and not_contains also
// fail to match on malformed input; they negate only a well-formed test.
func Compare(actual models.ConditionValue, op models.Operator, expected models.ConditionValue) bool {
	switch op {
	case models.OpEq:
		return actual.Equal(expected)
	case models.OpNeq:
		return !actual.Equal(expected) && !actual.IsAbsent()
	case models.OpGt, models.OpGte, models.OpLt, models.OpLte:
		return compareNumeric(actual, op, expected)
	case models.OpIn:
		return listContains(expected, actual)
	case models.OpNotIn:
		if _, ok := expected.AsList(); !ok {
			return false
		}
		return !listContains(expected, actual)
	case models.OpContains:
		return stringContains(actual, expected)
	case models.OpNotContains:
		if !bothStrings(actual, expected) {
			return false
		}
		return !stringContains(actual, expected)
	default:
		return false
	}
}

func compareNumeric(actual models.ConditionValue, op models.Operator, expected models.ConditionValue) bool {
	a, ok := actual.AsNumber()
	if !ok {
		return false
	}
	e, ok := expected.AsNumber()
	if !ok {
		return false
	}

	switch op {
	case models.OpGt:
		return a > e
	case models.OpGte:
		return a >= e
	case models.OpLt:
		return a < e
	case models.OpLte:
		return a <= e
	}
	return false
}

func listContains(list, needle models.ConditionValue) bool {
	items, ok := list.AsList()
	if !ok {
		return false
	}
	for _, item := range items {
		if needle.Equal(item) {
			return true
		}
	}
	return false
}

func bothStrings(a, b models.ConditionValue) bool {
	_, aok := a.AsString()
	_, bok := b.AsString()
	return aok && bok
}

func stringContains(actual, expected models.ConditionValue) bool {
	a, ok := actual.AsString()
	if !ok {
		return false
	}
	e, ok := expected.AsString()
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(a), strings.ToLower(e))
}
