// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

/*
Package rules implements the rule evaluation engine: the comparator, the
field evaluators, and the group/rule combinators that turn an
EvaluationContext and a set of V2 rules into triggered actions.

# Structure

Compare applies one of the ten condition operators to a pair of tagged
ConditionValues. It type-checks before comparing and never errors; a
malformed condition simply fails to match.

Each condition field has an evaluator: a pure function deriving a comparable
value from the context (current concurrent stream count, haversine distance
between active sessions, normalized device type, ...) and delegating to the
comparator. Evaluators take a context.Context so implementations that need
an external lookup fit the same signature; the built-in ones are pure. Each
engine gets its own copy of the field-to-evaluator table so registered custom
evaluators stay local to it.

The Engine combines evaluators with group logic: conditions within a group
are OR'd, groups are AND'd with short-circuit in declared order. Empty
groups and empty group lists match vacuously. Rules without V2 conditions
(unconverted legacy rules) never match.

# Failure semantics

No call into this package panics or aborts sibling evaluation. An unknown
field, an evaluator error, or a corrupt rule degrades to "did not match" and
is logged with the offending field name. One bad rule cannot prevent the
others from being evaluated.

# Concurrency

Everything here is reentrant over immutable snapshots. The engine's
parallelism setting bounds how many of a group's conditions evaluate
concurrently; groups themselves always evaluate sequentially because the AND
chain must short-circuit in declared order.
*/
package rules
