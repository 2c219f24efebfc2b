// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

package models

import (
	"math"
	"time"
)

// CoordinateEpsilon is the threshold for considering coordinates as
// effectively zero. A coordinate pair is "unknown" (sentinel value 0,0) if
// both latitude and longitude are within this epsilon of zero.
//
// 1e-7 degrees is roughly 1.1cm at the equator, well below GPS accuracy and
// any meaningful coordinate difference, while avoiding direct float equality.
const CoordinateEpsilon = 1e-7

// IsUnknownLocation returns true if the coordinates represent an unknown
// location. Uses epsilon comparison instead of direct float equality.
func IsUnknownLocation(lat, lon float64) bool {
	return math.Abs(lat) < CoordinateEpsilon && math.Abs(lon) < CoordinateEpsilon
}

// SessionState is the playback state reported by the media server.
type SessionState string

const (
	StatePlaying   SessionState = "playing"
	StatePaused    SessionState = "paused"
	StateStopped   SessionState = "stopped"
	StateBuffering SessionState = "buffering"
)

// Session is one playback attempt on a media server. Sessions are treated as
// immutable snapshots by the tracker and the rule engine; the ingest pipeline
// owns mutation and serializes it per session id.
type Session struct {
	ID           string       `json:"id"`
	ServerUserID string       `json:"server_user_id"`
	ServerID     string       `json:"server_id"`
	State        SessionState `json:"state"`

	StartedAt  time.Time  `json:"started_at"`
	StoppedAt  *time.Time `json:"stopped_at,omitempty"`
	LastSeenAt time.Time  `json:"last_seen_at"`

	// Playback position. TotalDurationMs == 0 means the duration is not yet
	// known; ProgressMs never exceeds TotalDurationMs once it is.
	ProgressMs      int64 `json:"progress_ms"`
	TotalDurationMs int64 `json:"total_duration_ms,omitempty"`

	// Pause accounting. LastPausedAt is set while a pause interval is open.
	LastPausedAt     *time.Time `json:"last_paused_at,omitempty"`
	PausedDurationMs int64      `json:"paused_duration_ms"`

	// ReferenceID links a continuation chain to its first session. Chains are
	// flat: every continuation points at the root, never at an intermediate
	// link.
	ReferenceID string `json:"reference_id,omitempty"`
	Watched     bool   `json:"watched"`

	// Geo fields. (0,0) within CoordinateEpsilon means unknown.
	GeoLat     float64 `json:"geo_lat,omitempty"`
	GeoLon     float64 `json:"geo_lon,omitempty"`
	GeoCountry string  `json:"geo_country,omitempty"`
	IPAddress  string  `json:"ip_address,omitempty"`

	// Device fields as reported by the client.
	Device     string `json:"device,omitempty"`
	Platform   string `json:"platform,omitempty"`
	Product    string `json:"product,omitempty"`
	DeviceID   string `json:"device_id,omitempty"`
	PlayerName string `json:"player_name,omitempty"`

	// Quality fields. Zero width/height means unknown resolution.
	SourceWidth       int   `json:"source_width,omitempty"`
	SourceHeight      int   `json:"source_height,omitempty"`
	StreamWidth       int   `json:"stream_width,omitempty"`
	StreamHeight      int   `json:"stream_height,omitempty"`
	SourceBitrateKbps int64 `json:"source_bitrate_kbps,omitempty"`
	IsTranscode       bool  `json:"is_transcode"`

	MediaType string `json:"media_type,omitempty"`
	LibraryID string `json:"library_id,omitempty"`
}

// HasCoordinates reports whether the session carries usable geolocation.
func (s *Session) HasCoordinates() bool {
	return !IsUnknownLocation(s.GeoLat, s.GeoLon)
}

// LastKnownAt returns the most recent timestamp at which the session was
// known to be at its recorded state: the stop time if stopped, otherwise the
// start time. Used as the anchor for travel-speed and window calculations.
func (s *Session) LastKnownAt() time.Time {
	if s.StoppedAt != nil {
		return *s.StoppedAt
	}
	return s.StartedAt
}

// ServerUser is a user identity on one media server. Trust score and
// activity timestamps are maintained by external systems; this core only
// reads them.
type ServerUser struct {
	ID             string     `json:"id"`
	Username       string     `json:"username,omitempty"`
	TrustScore     int        `json:"trust_score"` // 0-100
	CreatedAt      time.Time  `json:"created_at"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
}

// Server identifies a media server instance.
type Server struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}
