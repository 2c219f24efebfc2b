// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

package rules

import (
	"context"

	"github.com/streamwarden/streamwarden/internal/models"
)

// evalUserID compares the user identity the session belongs to.
func evalUserID(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	id := ""
	switch {
	case ec.ServerUser != nil && ec.ServerUser.ID != "":
		id = ec.ServerUser.ID
	case ec.Session != nil:
		id = ec.Session.ServerUserID
	}
	return Compare(models.StringValue(id), cond.Operator, cond.Value), nil
}

// evalTrustScore compares the user's trust score (0-100).
func evalTrustScore(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.ServerUser == nil {
		return false, nil
	}
	return Compare(models.IntValue(int64(ec.ServerUser.TrustScore)), cond.Operator, cond.Value), nil
}

// evalAccountAgeDays compares the age of the user account in days.
func evalAccountAgeDays(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.ServerUser == nil || ec.ServerUser.CreatedAt.IsZero() {
		return false, nil
	}
	days := ec.Now.Sub(ec.ServerUser.CreatedAt).Hours() / 24
	if days < 0 {
		days = 0
	}
	return Compare(models.NumberValue(days), cond.Operator, cond.Value), nil
}

// evalDeviceType compares the normalized device type.
func evalDeviceType(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.Session == nil {
		return false, nil
	}
	label := NormalizeDeviceType(ec.Session.Device, ec.Session.Platform)
	return Compare(models.StringValue(label), cond.Operator, cond.Value), nil
}

// evalClientName compares the player/client name, falling back to the
// product string when the player name is absent.
func evalClientName(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.Session == nil {
		return false, nil
	}
	name := ec.Session.PlayerName
	if name == "" {
		name = ec.Session.Product
	}
	return Compare(models.StringValue(name), cond.Operator, cond.Value), nil
}

// evalPlatform compares the normalized OS/platform label.
func evalPlatform(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.Session == nil {
		return false, nil
	}
	return Compare(models.StringValue(NormalizePlatform(ec.Session.Platform)), cond.Operator, cond.Value), nil
}

// evalIsLocalNetwork compares whether the session originates from a private
// or local network address.
func evalIsLocalNetwork(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.Session == nil {
		return false, nil
	}
	return Compare(models.BoolValue(isPrivateAddress(ec.Session.IPAddress)), cond.Operator, cond.Value), nil
}

// evalCountry compares the session's geolocated country code.
func evalCountry(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.Session == nil {
		return false, nil
	}
	return Compare(models.StringValue(ec.Session.GeoCountry), cond.Operator, cond.Value), nil
}

// evalIPInRange tests IPv4 CIDR containment. The derived value is the
// containment fact itself, so eq/in assert containment and neq/not_in assert
// non-containment. IPv6 addresses and malformed CIDRs never match under any
// operator.
func evalIPInRange(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.Session == nil {
		return false, nil
	}
	addr, ok := parseAddr4(ec.Session.IPAddress)
	if !ok {
		return false, nil
	}

	var cidrs []string
	if s, strOK := cond.Value.AsString(); strOK {
		cidrs = []string{s}
	} else if list, listOK := cond.Value.AsList(); listOK {
		for _, item := range list {
			s, itemOK := item.AsString()
			if !itemOK {
				return false, nil
			}
			cidrs = append(cidrs, s)
		}
	} else {
		return false, nil
	}

	contained := false
	for _, cidr := range cidrs {
		prefix, prefixOK := parseCIDR4(cidr)
		if !prefixOK {
			return false, nil
		}
		if prefix.Contains(addr) {
			contained = true
		}
	}

	switch cond.Operator {
	case models.OpEq, models.OpIn:
		return contained, nil
	case models.OpNeq, models.OpNotIn:
		return !contained, nil
	default:
		return false, nil
	}
}

// evalServerID compares the server the session is playing on.
func evalServerID(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	id := ""
	switch {
	case ec.Session != nil && ec.Session.ServerID != "":
		id = ec.Session.ServerID
	case ec.Server != nil:
		id = ec.Server.ID
	}
	return Compare(models.StringValue(id), cond.Operator, cond.Value), nil
}

// evalLibraryID compares the library the media item belongs to. Sessions
// without a library reference carry an empty id, which never equals a
// configured value.
func evalLibraryID(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.Session == nil {
		return false, nil
	}
	return Compare(models.StringValue(ec.Session.LibraryID), cond.Operator, cond.Value), nil
}

// evalMediaType compares the media type (movie, episode, track, ...).
func evalMediaType(_ context.Context, ec *models.EvaluationContext, cond models.Condition) (bool, error) {
	if ec.Session == nil {
		return false, nil
	}
	return Compare(models.StringValue(ec.Session.MediaType), cond.Operator, cond.Value), nil
}
