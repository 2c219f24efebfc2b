// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

package rules

import "net/netip"

// isPrivateAddress reports whether the address is on a private or local
// network (RFC 1918/4193 ranges, loopback, link-local). Malformed addresses
// are not private.
func isPrivateAddress(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	return addr.IsPrivate() || addr.IsLoopback() || addr.IsLinkLocalUnicast()
}

// parseAddr4 parses a dotted-quad IPv4 address. IPv6 and malformed input
// fail; rule evaluation must never fail on bad network data, so callers
// treat a failed parse as non-matching.
func parseAddr4(ip string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(ip)
	if err != nil || !addr.Is4() {
		return netip.Addr{}, false
	}
	return addr, true
}

// parseCIDR4 parses an IPv4 CIDR range. IPv6 prefixes and malformed input
// fail.
func parseCIDR4(cidr string) (netip.Prefix, bool) {
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil || !prefix.Addr().Is4() {
		return netip.Prefix{}, false
	}
	return prefix, true
}

// ipInCIDR reports whether an IPv4 address falls inside an IPv4 CIDR range.
func ipInCIDR(ip, cidr string) bool {
	addr, ok := parseAddr4(ip)
	if !ok {
		return false
	}
	prefix, ok := parseCIDR4(cidr)
	if !ok {
		return false
	}
	return prefix.Contains(addr)
}
