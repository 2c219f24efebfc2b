// StreamWarden - Media Server Session Monitoring and Rule Evaluation
// Copyright 2026 StreamWarden contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamwarden/streamwarden

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestConditionValueUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ConditionValue
	}{
		{"string", `"4K"`, StringValue("4K")},
		{"number", `42.5`, NumberValue(42.5)},
		{"integer number", `3`, NumberValue(3)},
		{"bool", `true`, BoolValue(true)},
		{"null is absent", `null`, ConditionValue{}},
		{"string list", `["US","CA"]`, StringListValue("US", "CA")},
		{"number list", `[1,2]`, ListValue(NumberValue(1), NumberValue(2))},
		{"mixed list", `["a",1,true]`, ListValue(StringValue("a"), NumberValue(1), BoolValue(true))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ConditionValue
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if got.Kind() != tt.want.Kind() {
				t.Fatalf("kind = %d, want %d", got.Kind(), tt.want.Kind())
			}
			if !got.IsAbsent() && !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConditionValueUnmarshalRejectsObjects(t *testing.T) {
	var v ConditionValue
	if err := json.Unmarshal([]byte(`{"nested":1}`), &v); err == nil {
		t.Error("expected an error for a JSON object value")
	}
}

func TestConditionValueRoundTrip(t *testing.T) {
	values := []ConditionValue{
		StringValue("tv"),
		NumberValue(2.5),
		BoolValue(false),
		StringListValue("US", "CA", "GB"),
		ListValue(NumberValue(1), NumberValue(2)),
	}

	for _, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %v: %v", v, err)
		}
		var back ConditionValue
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if !v.Equal(back) {
			t.Errorf("round trip changed %v to %v", v, back)
		}
	}
}

func TestConditionValueAbsentMarshalsAsNull(t *testing.T) {
	data, err := json.Marshal(ConditionValue{})
	if err != nil {
		t.Fatalf("marshal absent: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("absent marshals to %s, want null", data)
	}
}

func TestConditionValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b ConditionValue
		want bool
	}{
		{"equal strings", StringValue("x"), StringValue("x"), true},
		{"different strings", StringValue("x"), StringValue("y"), false},
		{"cross kind", NumberValue(1), StringValue("1"), false},
		{"absent never equal", ConditionValue{}, ConditionValue{}, false},
		{"equal lists", StringListValue("a", "b"), StringListValue("a", "b"), true},
		{"list order matters", StringListValue("a", "b"), StringListValue("b", "a"), false},
		{"list length matters", StringListValue("a"), StringListValue("a", "a"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConditionUnmarshalWithParams(t *testing.T) {
	raw := `{"field":"unique_ips_in_window","operator":"gte","value":3,"params":{"window_hours":48}}`
	var c Condition
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("unmarshal condition: %v", err)
	}
	if c.Field != FieldUniqueIPsInWindow || c.Operator != OpGte {
		t.Errorf("field/operator = %s/%s", c.Field, c.Operator)
	}
	if !c.Value.Equal(NumberValue(3)) {
		t.Errorf("value = %v, want 3", c.Value)
	}
	if c.Params == nil || c.Params.WindowHours != 48 {
		t.Errorf("params = %+v, want window_hours 48", c.Params)
	}
}
