// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// ValueKind tags the variant held by a ConditionValue.
type ValueKind uint8

const (
	// KindAbsent marks a ConditionValue that carries nothing (JSON null or
	// the zero value). Absent values never compare equal to anything.
	KindAbsent ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindList
)

// ConditionValue is the tagged union a condition's expected value and an
// evaluator's derived value are expressed in: string, number, bool, or a
// list of values. The comparator switches on the kind instead of performing
// dynamic type tests.
type ConditionValue struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
	list []ConditionValue
}

// StringValue returns a string-kinded value.
func StringValue(s string) ConditionValue {
	return ConditionValue{kind: KindString, str: s}
}

// NumberValue returns a number-kinded value.
func NumberValue(f float64) ConditionValue {
	return ConditionValue{kind: KindNumber, num: f}
}

// IntValue returns a number-kinded value from an integer.
func IntValue(i int64) ConditionValue {
	return ConditionValue{kind: KindNumber, num: float64(i)}
}

// BoolValue returns a bool-kinded value.
func BoolValue(b bool) ConditionValue {
	return ConditionValue{kind: KindBool, b: b}
}

// ListValue returns a list-kinded value.
func ListValue(items ...ConditionValue) ConditionValue {
	return ConditionValue{kind: KindList, list: items}
}

// StringListValue returns a list of string-kinded values.
func StringListValue(items ...string) ConditionValue {
	vs := make([]ConditionValue, len(items))
	for i, s := range items {
		vs[i] = StringValue(s)
	}
	return ConditionValue{kind: KindList, list: vs}
}

// Kind returns the variant tag.
func (v ConditionValue) Kind() ValueKind { return v.kind }

// IsAbsent reports whether the value carries nothing.
func (v ConditionValue) IsAbsent() bool { return v.kind == KindAbsent }

// AsString returns the string payload, if string-kinded.
func (v ConditionValue) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsNumber returns the numeric payload, if number-kinded.
func (v ConditionValue) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsBool returns the bool payload, if bool-kinded.
func (v ConditionValue) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsList returns the list payload, if list-kinded.
func (v ConditionValue) AsList() ([]ConditionValue, bool) {
	return v.list, v.kind == KindList
}

// Equal reports strict equality: same kind and same payload. Lists compare
// element-wise in order. Absent values are never equal, including to each
// other, so a missing evaluator result cannot satisfy an eq condition.
func (v ConditionValue) Equal(other ConditionValue) bool {
	if v.kind != other.kind || v.kind == KindAbsent {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the value for log output.
func (v ConditionValue) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return fmt.Sprintf("%g", v.num)
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindList:
		return fmt.Sprintf("list(%d)", len(v.list))
	}
	return "<absent>"
}

// UnmarshalJSON decodes any scalar or array JSON value into the matching
// variant. JSON null decodes to an absent value. Nested objects are not part
// of the condition vocabulary and are rejected.
func (v *ConditionValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := fromJSONValue(raw)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

func fromJSONValue(raw interface{}) (ConditionValue, error) {
	switch t := raw.(type) {
	case nil:
		return ConditionValue{}, nil
	case string:
		return StringValue(t), nil
	case float64:
		return NumberValue(t), nil
	case bool:
		return BoolValue(t), nil
	case []interface{}:
		items := make([]ConditionValue, 0, len(t))
		for _, el := range t {
			item, err := fromJSONValue(el)
			if err != nil {
				return ConditionValue{}, err
			}
			items = append(items, item)
		}
		return ListValue(items...), nil
	default:
		return ConditionValue{}, fmt.Errorf("unsupported condition value type %T", raw)
	}
}

// MarshalJSON encodes the variant back to its natural JSON form.
func (v ConditionValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindAbsent:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindList:
		return json.Marshal(v.list)
	}
	return nil, fmt.Errorf("unknown value kind %d", v.kind)
}
