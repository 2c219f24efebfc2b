// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

/*
Package models defines the shared data model for session tracking and rule
evaluation.

The model is split in two halves:

  - Playback state: Session, ServerUser, and Server describe one playback
    attempt and the identity it belongs to. Sessions are snapshots; nothing
    in this package mutates them.

  - Rule definitions: Rule, RuleConditions, ConditionGroup, and Condition
    describe the administrator-authored V2 rule format. Conditions within a
    group are OR'd, groups are AND'd. Condition values are a closed tagged
    union (ConditionValue) so the comparator can pattern-match on the kind
    instead of relying on dynamic type assertions.

Evaluation itself lives in the rules package; this package only carries the
data. EvaluationContext bundles everything a single rule evaluation may read,
including an explicit Now timestamp so evaluation stays pure and replayable.

Nullable fields from upstream telemetry are represented as pointers
(StoppedAt, LastPausedAt, LastActivityAt) or zero-value sentinels
(TotalDurationMs == 0, coordinates within epsilon of the origin). Helpers such
as Session.HasCoordinates encapsulate the sentinel checks.
*/
package models
