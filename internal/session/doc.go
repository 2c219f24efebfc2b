// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

/*
Package session implements the session state tracker: pure functions that
convert raw playback telemetry into well-formed session lifecycle facts.

Every function takes all of its inputs explicitly, including the current
clock, holds no internal state, and never fails: missing or malformed data
resolves to the safe default ("no match", "not stale", "do not record")
rather than an error. The functions are reentrant and may be called from any
number of goroutines; serialization of updates to one session row is the
ingest pipeline's responsibility.

The exported defaults (DefaultStaleTimeout and friends) are the SESSION_LIMITS
configuration surface; every function also accepts a per-call override.
*/
package session
