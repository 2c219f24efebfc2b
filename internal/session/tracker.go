// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

package session

import (
	"time"

	"github.com/streamwarden/streamwarden/internal/models"
)

// SESSION_LIMITS defaults. Callers may override any of these per call; the
// config package exposes them as the deployment-wide configuration surface.
const (
	// DefaultStaleTimeout is how long a session may go without telemetry
	// before it is force-stopped.
	DefaultStaleTimeout = 300 * time.Second

	// DefaultMinPlayTimeMs is the minimum watch duration for a session to be
	// recorded as a play.
	DefaultMinPlayTimeMs int64 = 120_000

	// DefaultWatchCompletionThreshold is the progress ratio at which an item
	// counts as watched.
	DefaultWatchCompletionThreshold = 0.85

	// DefaultContinuedThreshold is the maximum gap between a stop and a new
	// start for the new session to continue the old one.
	DefaultContinuedThreshold = 60 * time.Second

	// MaxContinuationGap is the absolute ceiling on continuation grouping.
	// Past this, sessions are never grouped regardless of any configured
	// threshold.
	MaxContinuationGap = 24 * time.Hour
)

// PauseState is the pause-accounting slice of a session row.
type PauseState struct {
	LastPausedAt     *time.Time
	PausedDurationMs int64
}

// AccumulatePause applies a state transition to the pause accounting.
//
// playing -> paused opens a pause interval: LastPausedAt is set to now and
// PausedDurationMs resets to zero. paused -> playing closes it: the open
// interval is added to PausedDurationMs and LastPausedAt clears. Every other
// transition leaves the state untouched.
func AccumulatePause(prev, next models.SessionState, ps PauseState, now time.Time) PauseState {
	switch {
	case prev == models.StatePlaying && next == models.StatePaused:
		t := now
		return PauseState{LastPausedAt: &t, PausedDurationMs: 0}
	case prev == models.StatePaused && next == models.StatePlaying:
		out := PauseState{PausedDurationMs: ps.PausedDurationMs}
		if ps.LastPausedAt != nil {
			if d := now.Sub(*ps.LastPausedAt); d > 0 {
				out.PausedDurationMs += d.Milliseconds()
			}
		}
		return out
	default:
		return ps
	}
}

// StopResult is the settled accounting of a stopped session.
type StopResult struct {
	// DurationMs is the actual watch time: wall time minus pauses, floored
	// at zero so clock skew can never produce a negative duration.
	DurationMs int64

	// PausedDurationMs is the total accumulated pause time, including the
	// open pause interval if the session stopped while paused.
	PausedDurationMs int64
}

// FinalizeStop settles a session's duration accounting at stop time.
func FinalizeStop(sess *models.Session, stoppedAt time.Time) StopResult {
	if sess == nil {
		return StopResult{}
	}

	paused := sess.PausedDurationMs
	if sess.LastPausedAt != nil {
		// Stopped while paused: close the open interval at the stop time.
		if d := stoppedAt.Sub(*sess.LastPausedAt); d > 0 {
			paused += d.Milliseconds()
		}
	}

	duration := stoppedAt.Sub(sess.StartedAt).Milliseconds() - paused
	if duration < 0 {
		duration = 0
	}

	return StopResult{DurationMs: duration, PausedDurationMs: paused}
}

// IsStale reports whether a session's telemetry has gone silent past the
// timeout. The comparison is strict: a session seen exactly timeout ago is
// not yet stale. A zero lastSeenAt (never seen) is treated as not stale.
func IsStale(lastSeenAt, now time.Time, timeout time.Duration) bool {
	if lastSeenAt.IsZero() {
		return false
	}
	if timeout <= 0 {
		timeout = DefaultStaleTimeout
	}
	return now.Sub(lastSeenAt) > timeout
}

// ShouldRecord reports whether a settled session meets the minimum play time
// to be recorded. A zero or negative minimum records everything. The
// boundary is inclusive: a session exactly at the minimum is recorded.
func ShouldRecord(durationMs, minPlayTimeMs int64) bool {
	if minPlayTimeMs <= 0 {
		return true
	}
	return durationMs >= minPlayTimeMs
}

// IsWatchComplete reports whether playback progress crossed the completion
// threshold. Unknown progress or duration is never complete. The boundary is
// inclusive: exactly at the threshold counts as watched. Threshold is
// configurable per caller (e.g. per media type); zero or negative falls back
// to the default.
func IsWatchComplete(progressMs, totalDurationMs int64, threshold float64) bool {
	if progressMs <= 0 || totalDurationMs <= 0 {
		return false
	}
	if threshold <= 0 {
		threshold = DefaultWatchCompletionThreshold
	}
	return float64(progressMs)/float64(totalDurationMs) >= threshold
}

// ContinuationReference decides whether a new session continues a previous
// one, and if so returns the id of the chain root to link it to. Chains stay
// flat: the returned id is always the root, never an intermediate link.
//
// All of the following must hold, or the sessions are not grouped:
//
//   - the previous session has actually stopped;
//   - the stop is within MaxContinuationGap of now (hard cap, independent of
//     the configured threshold);
//   - the gap between now and the stop is at most the threshold;
//   - the previous session was not fully watched (a rewatch is a new chain);
//   - the new progress is at or past the previous progress (a lower position
//     is a restart, not a resume).
func ContinuationReference(prev *models.Session, newProgressMs int64, now time.Time, threshold time.Duration) (string, bool) {
	if prev == nil || prev.StoppedAt == nil {
		return "", false
	}
	if threshold <= 0 {
		threshold = DefaultContinuedThreshold
	}

	gap := now.Sub(*prev.StoppedAt)
	if gap > MaxContinuationGap {
		return "", false
	}
	if gap > threshold {
		return "", false
	}
	if prev.Watched {
		return "", false
	}
	if newProgressMs < prev.ProgressMs {
		return "", false
	}

	if prev.ReferenceID != "" {
		return prev.ReferenceID, true
	}
	return prev.ID, true
}
