// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

package rules

import (
	"context"

	"github.com/streamwarden/streamwarden/internal/models"
)

// EvaluatorFunc derives a comparable value for one condition field from the
// evaluation context and delegates to the comparator. Evaluators take a
// context.Context so implementations that need an external lookup (e.g. a
// reverse geocode) fit the same signature; the built-in evaluators are pure
// and ignore it. Evaluators must not panic; an error degrades to non-match.
type EvaluatorFunc func(ctx context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error)

// defaultRegistry maps every condition field to its evaluator. Built once;
// the engine copies it at construction so callers can register custom
// evaluators without affecting other engines.
func defaultRegistry() map[models.ConditionField]EvaluatorFunc {
	return map[models.ConditionField]EvaluatorFunc{
		// Session behavior
		models.FieldConcurrentStreams:       evalConcurrentStreams,
		models.FieldActiveSessionDistanceKm: evalActiveSessionDistance,
		models.FieldTravelSpeedKmh:          evalTravelSpeed,
		models.FieldUniqueIPsInWindow:       evalUniqueIPs,
		models.FieldUniqueDevicesInWindow:   evalUniqueDevices,
		models.FieldInactiveDays:            evalInactiveDays,

		// Stream quality
		models.FieldSourceResolution:     evalSourceResolution,
		models.FieldOutputResolution:     evalOutputResolution,
		models.FieldIsTranscoding:        evalIsTranscoding,
		models.FieldIsTranscodeDowngrade: evalIsTranscodeDowngrade,
		models.FieldSourceBitrateMbps:    evalSourceBitrate,

		// User, device, network
		models.FieldUserID:         evalUserID,
		models.FieldTrustScore:     evalTrustScore,
		models.FieldAccountAgeDays: evalAccountAgeDays,
		models.FieldDeviceType:     evalDeviceType,
		models.FieldClientName:     evalClientName,
		models.FieldPlatform:       evalPlatform,
		models.FieldIsLocalNetwork: evalIsLocalNetwork,
		models.FieldCountry:        evalCountry,
		models.FieldIPInRange:      evalIPInRange,
		models.FieldServerID:       evalServerID,
		models.FieldLibraryID:      evalLibraryID,
		models.FieldMediaType:      evalMediaType,
	}
}
