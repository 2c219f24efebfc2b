// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

package rules

import (
	"context"
	"math"
	"time"

	"github.com/streamwarden/streamwarden/internal/models"
)

// DefaultUniqueWindow is the trailing window for the windowed uniqueness
// evaluators when a condition does not carry a window_hours param.
const DefaultUniqueWindow = 24 * time.Hour

// conditionWindow resolves the trailing window for a windowed evaluator.
func conditionWindow(cond models.Condition) time.Duration {
	if cond.Params != nil && cond.Params.WindowHours > 0 {
		return time.Duration(cond.Params.WindowHours * float64(time.Hour))
	}
	return DefaultUniqueWindow
}

// evalConcurrentStreams counts the user's entries in the active session set.
func evalConcurrentStreams(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.Session == nil {
		return false, nil
	}
	count := 0
	for i := range ec.ActiveSessions {
		if ec.ActiveSessions[i].ServerUserID == ec.Session.ServerUserID {
			count++
		}
	}
	return Compare(models.IntValue(int64(count)), cond.Operator, cond.Value), nil
}

// evalActiveSessionDistance derives the maximum haversine distance from the
// current session to any other active session of the same user. Sessions
// without coordinates contribute nothing.
func evalActiveSessionDistance(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.Session == nil {
		return false, nil
	}
	maxKm := 0.0
	for i := range ec.ActiveSessions {
		other := &ec.ActiveSessions[i]
		if other.ID == ec.Session.ID || other.ServerUserID != ec.Session.ServerUserID {
			continue
		}
		if km, ok := sessionDistanceKm(ec.Session, other); ok && km > maxKm {
			maxKm = km
		}
	}
	return Compare(models.NumberValue(maxKm), cond.Operator, cond.Value), nil
}

// evalTravelSpeed derives the speed the user would have needed to reach the
// current session's location from their most recent prior session. Zero
// distance is zero speed; positive distance over non-positive elapsed time
// is infinite speed, which flows through numeric comparison naturally.
func evalTravelSpeed(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.Session == nil {
		return false, nil
	}

	prev := mostRecentPriorSession(ec)
	if prev == nil {
		return Compare(models.NumberValue(0), cond.Operator, cond.Value), nil
	}

	km, ok := sessionDistanceKm(ec.Session, prev)
	if !ok || km == 0 {
		return Compare(models.NumberValue(0), cond.Operator, cond.Value), nil
	}

	speed := math.Inf(1)
	if hours := ec.Session.StartedAt.Sub(prev.LastKnownAt()).Hours(); hours > 0 {
		speed = km / hours
	}
	return Compare(models.NumberValue(speed), cond.Operator, cond.Value), nil
}

// mostRecentPriorSession picks the user's latest recent session whose last
// known time does not postdate the current session's start.
func mostRecentPriorSession(ec *models.EvaluationContext) *models.Session {
	var prev *models.Session
	for i := range ec.RecentSessions {
		candidate := &ec.RecentSessions[i]
		if candidate.ID == ec.Session.ID {
			continue
		}
		if candidate.LastKnownAt().After(ec.Session.StartedAt) {
			continue
		}
		if prev == nil || candidate.LastKnownAt().After(prev.LastKnownAt()) {
			prev = candidate
		}
	}
	return prev
}

// evalUniqueIPs counts distinct IP addresses, including the current
// session's, within the trailing window.
func evalUniqueIPs(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	return evalUniqueInWindow(ec, cond, func(s *models.Session) string { return s.IPAddress })
}

// evalUniqueDevices counts distinct device identifiers, including the
// current session's, within the trailing window.
func evalUniqueDevices(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	return evalUniqueInWindow(ec, cond, func(s *models.Session) string { return s.DeviceID })
}

func evalUniqueInWindow(ec *models.EvaluationContext, cond models.Condition, key func(*models.Session) string) (bool, error) {
	if ec.Session == nil {
		return false, nil
	}

	cutoff := ec.Now.Add(-conditionWindow(cond))
	seen := make(map[string]struct{})
	if k := key(ec.Session); k != "" {
		seen[k] = struct{}{}
	}
	for i := range ec.RecentSessions {
		s := &ec.RecentSessions[i]
		if s.LastKnownAt().Before(cutoff) {
			continue
		}
		if k := key(s); k != "" {
			seen[k] = struct{}{}
		}
	}
	return Compare(models.IntValue(int64(len(seen))), cond.Operator, cond.Value), nil
}

// evalInactiveDays derives the days since the user's last activity, or the
// account age when the user has never been active.
func evalInactiveDays(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.ServerUser == nil {
		return false, nil
	}
	anchor := ec.ServerUser.CreatedAt
	if ec.ServerUser.LastActivityAt != nil {
		anchor = *ec.ServerUser.LastActivityAt
	}
	days := ec.Now.Sub(anchor).Hours() / 24
	if days < 0 {
		days = 0
	}
	return Compare(models.NumberValue(days), cond.Operator, cond.Value), nil
}
