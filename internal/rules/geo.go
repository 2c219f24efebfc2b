// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

package rules

import (
	"math"

	"github.com/streamwarden/streamwarden/internal/models"
)

// haversineKm calculates the great-circle distance between two points on
// Earth using the Haversine formula. Returns distance in kilometers.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0

	lat1Rad := lat1 * math.Pi / 180.0
	lon1Rad := lon1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	lon2Rad := lon2 * math.Pi / 180.0

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// sessionDistanceKm returns the haversine distance between two sessions, or
// ok=false when either side is missing coordinates. Callers propagate the
// missing case as "distance 0 / speed not evaluable".
func sessionDistanceKm(a, b *models.Session) (float64, bool) {
	if a == nil || b == nil || !a.HasCoordinates() || !b.HasCoordinates() {
		return 0, false
	}
	return haversineKm(a.GeoLat, a.GeoLon, b.GeoLat, b.GeoLon), true
}
