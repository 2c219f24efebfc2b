// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

package rules

import (
	"context"

	"github.com/streamwarden/streamwarden/internal/models"
)

// evalSourceResolution compares the normalized source resolution tier.
func evalSourceResolution(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.Session == nil {
		return false, nil
	}
	label := resolutionLabel(ec.Session.SourceWidth, ec.Session.SourceHeight)
	return compareResolution(label, cond), nil
}

// evalOutputResolution compares the normalized output (stream) resolution
// tier.
func evalOutputResolution(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.Session == nil {
		return false, nil
	}
	label := resolutionLabel(ec.Session.StreamWidth, ec.Session.StreamHeight)
	return compareResolution(label, cond), nil
}

// compareResolution compares a tier label against the condition: relational
// operators order the numeric tier ranks, everything else compares the
// literal label.
func compareResolution(label string, cond models.Condition) bool {
	if !cond.Operator.IsRelational() {
		return Compare(models.StringValue(label), cond.Operator, cond.Value)
	}

	expectedRank, ok := expectedResolutionRank(cond.Value)
	if !ok {
		return false
	}
	return Compare(
		models.IntValue(int64(resolutionRank(label))),
		cond.Operator,
		models.IntValue(int64(expectedRank)),
	)
}

// expectedResolutionRank maps the expected value onto the tier ordering:
// a label like "1080p" by lookup, a number like 1080 as a pixel height.
func expectedResolutionRank(v models.ConditionValue) (int, bool) {
	if s, ok := v.AsString(); ok {
		return resolutionRank(s), true
	}
	if n, ok := v.AsNumber(); ok {
		return resolutionRankForHeight(int(n)), true
	}
	return 0, false
}

// evalIsTranscoding compares the transcode decision flag.
func evalIsTranscoding(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.Session == nil {
		return false, nil
	}
	return Compare(models.BoolValue(ec.Session.IsTranscode), cond.Operator, cond.Value), nil
}

// evalIsTranscodeDowngrade derives whether the session is transcoding to a
// lower tier than the source. An unknown source tier can never be
// downgraded from.
func evalIsTranscodeDowngrade(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.Session == nil {
		return false, nil
	}
	s := ec.Session
	sourceRank := resolutionRank(resolutionLabel(s.SourceWidth, s.SourceHeight))
	outputRank := resolutionRank(resolutionLabel(s.StreamWidth, s.StreamHeight))
	downgrade := s.IsTranscode && outputRank < sourceRank
	return Compare(models.BoolValue(downgrade), cond.Operator, cond.Value), nil
}

// evalSourceBitrate compares the source bitrate in Mbps.
func evalSourceBitrate(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.Session == nil {
		return false, nil
	}
	mbps := float64(ec.Session.SourceBitrateKbps) / 1000.0
	return Compare(models.NumberValue(mbps), cond.Operator, cond.Value), nil
}
