// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

package rules

import "strings"

// Normalized device type labels.
const (
	DeviceTV      = "tv"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
	DeviceBrowser = "browser"
	DeviceUnknown = "unknown"
)

// tvMarkers match living-room players. Checked before mobile markers so
// "Android TV" classifies as tv, not mobile.
var tvMarkers = []string{
	"tv", "roku", "chromecast", "shield", "kodi", "tizen", "webos",
	"vidaa", "bravia",
}

var tabletMarkers = []string{"tablet", "ipad"}

var mobileMarkers = []string{"mobile", "iphone", "ipod", "android", "ios"}

var browserMarkers = []string{
	"chrome", "chromium", "firefox", "safari", "edge", "opera", "browser", "web",
}

var desktopMarkers = []string{
	"windows", "macos", "mac os", "osx", "os x", "linux", "desktop", "htpc",
}

// NormalizeDeviceType folds the free-form device and platform strings
// reported by clients into a small closed vocabulary:
// tv|mobile|tablet|desktop|browser|unknown. Matching is substring-based and
// case-insensitive; the first family to match wins, in the order tv, tablet,
// mobile, browser, desktop.
func NormalizeDeviceType(device, platform string) string {
	haystack := strings.ToLower(device + " " + platform)
	if strings.TrimSpace(haystack) == "" {
		return DeviceUnknown
	}

	families := []struct {
		label   string
		markers []string
	}{
		{DeviceTV, tvMarkers},
		{DeviceTablet, tabletMarkers},
		{DeviceMobile, mobileMarkers},
		{DeviceBrowser, browserMarkers},
		{DeviceDesktop, desktopMarkers},
	}
	for _, fam := range families {
		for _, marker := range fam.markers {
			if strings.Contains(haystack, marker) {
				return fam.label
			}
		}
	}
	return DeviceUnknown
}

// platformAliases maps raw platform spellings to canonical labels.
var platformAliases = map[string]string{
	"osx":        "macos",
	"os x":       "macos",
	"mac os":     "macos",
	"mac os x":   "macos",
	"macosx":     "macos",
	"iphone os":  "ios",
	"ipados":     "ios",
	"android tv": "android",
	"androidtv":  "android",
	"apple tv":   "tvos",
	"appletv":    "tvos",
}

// NormalizePlatform lowercases and canonicalizes an OS/platform label.
// Unrecognized platforms pass through lowercased; empty input is "unknown".
func NormalizePlatform(platform string) string {
	p := strings.ToLower(strings.TrimSpace(platform))
	if p == "" {
		return "unknown"
	}
	if alias, ok := platformAliases[p]; ok {
		return alias
	}
	return p
}
