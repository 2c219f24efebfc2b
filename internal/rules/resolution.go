// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

package rules

// Resolution tier labels, ordered by resolutionRank. Labels are used for
// equality and set operators; ranks only for ordering.
const (
	Resolution4K      = "4K"
	Resolution1080p   = "1080p"
	Resolution720p    = "720p"
	Resolution480p    = "480p"
	ResolutionSD      = "SD"
	ResolutionUnknown = "unknown"
)

// resolutionRanks orders the tiers for relational operators.
var resolutionRanks = map[string]int{
	Resolution4K:      2160,
	Resolution1080p:   1080,
	Resolution720p:    720,
	Resolution480p:    480,
	ResolutionSD:      360,
	ResolutionUnknown: 0,
}

// resolutionLabel normalizes pixel dimensions into a tier label. Width is
// consulted as well as height so anamorphic and cropped streams still land
// in the right tier.
func resolutionLabel(width, height int) string {
	switch {
	case height >= 2160 || width >= 3840:
		return Resolution4K
	case height >= 1080 || width >= 1920:
		return Resolution1080p
	case height >= 720 || width >= 1280:
		return Resolution720p
	case height >= 480 || width >= 640:
		return Resolution480p
	case height > 0 || width > 0:
		return ResolutionSD
	default:
		return ResolutionUnknown
	}
}

// resolutionRank returns the ordering rank for a tier label. Unrecognized
// labels rank as unknown (0).
func resolutionRank(label string) int {
	return resolutionRanks[label]
}

// resolutionRankForHeight maps a raw pixel height onto the tier ordering, so
// numeric expected values like 1080 order correctly against labels.
func resolutionRankForHeight(height int) int {
	return resolutionRank(resolutionLabel(0, height))
}
