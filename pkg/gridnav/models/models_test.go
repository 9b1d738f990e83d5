package models

import (
	"encoding/json"
	"testing"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		input    string
		expected Address
	}{
		{"A1", Address{Row: 0, Col: 0}},
		{"C6", Address{Row: 5, Col: 2}},
		{"G6", Address{Row: 5, Col: 6}},
		{"C29", Address{Row: 28, Col: 2}},
		{"AA10", Address{Row: 9, Col: 26}},
	}

	for _, tt := range tests {
		result, err := ParseAddress(tt.input)
		if err != nil {
			t.Errorf("ParseAddress(%q) failed: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseAddress(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
		if result.String() != tt.input {
			t.Errorf("Address.String() = %q, expected %q", result.String(), tt.input)
		}
	}

	if _, err := ParseAddress("not a cell"); err == nil {
		t.Errorf("Expected error for invalid reference")
	}
}

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys("RIGHT, left,Tab,shift+tab,,return")
	if err != nil {
		t.Fatalf("ParseKeys failed: %v", err)
	}
	expected := []Key{KeyArrowRight, KeyArrowLeft, KeyTab, KeyShiftTab, KeyEnter}
	if len(keys) != len(expected) {
		t.Fatalf("Expected %d keys, got %d", len(expected), len(keys))
	}
	for i := range keys {
		if keys[i] != expected[i] {
			t.Errorf("key %d = %v, expected %v", i, keys[i], expected[i])
		}
	}

	if _, err := ParseKeys("tab,escape"); err == nil {
		t.Errorf("Expected error for unknown key")
	}
}

func TestKeyJSON(t *testing.T) {
	data, err := json.Marshal(Step{Key: KeyShiftTab})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var step Step
	if err := json.Unmarshal(data, &step); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if step.Key != KeyShiftTab {
		t.Errorf("Key = %v, expected %v", step.Key, KeyShiftTab)
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{Rows: 10, Cols: 5}
	tests := []struct {
		input    Address
		expected Address
	}{
		{Address{Row: -1, Col: 2}, Address{Row: 0, Col: 2}},
		{Address{Row: 12, Col: 9}, Address{Row: 9, Col: 4}},
		{Address{Row: 3, Col: 3}, Address{Row: 3, Col: 3}},
	}

	for _, tt := range tests {
		if result := b.Clamp(tt.input); result != tt.expected {
			t.Errorf("Clamp(%+v) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}

func TestSpanValid(t *testing.T) {
	tests := []struct {
		span     Span
		expected bool
	}{
		{Span{StartRow: 5, StartCol: 2, EndCol: 6}, true},
		{Span{StartRow: 0, StartCol: 3, EndCol: 3}, true},
		{Span{StartRow: 0, StartCol: 4, EndCol: 3}, false},
		{Span{StartRow: -1, StartCol: 0, EndCol: 3}, false},
	}

	for _, tt := range tests {
		if result := tt.span.Valid(); result != tt.expected {
			t.Errorf("%+v.Valid() = %v, expected %v", tt.span, result, tt.expected)
		}
	}
}
