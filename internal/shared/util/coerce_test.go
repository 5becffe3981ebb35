package util

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNumberOr(t *testing.T) {
	tests := []struct {
		name  string
		value any
		def   float64
		want  float64
	}{
		{name: "float64", value: 42.5, def: 0, want: 42.5},
		{name: "int", value: 7, def: 0, want: 7},
		{name: "json number", value: json.Number("61.2"), def: 0, want: 61.2},
		{name: "numeric string", value: " 88 ", def: 0, want: 88},
		{name: "nil", value: nil, def: 0, want: 0},
		{name: "non numeric string", value: "n/a", def: 0, want: 0},
		{name: "bool", value: true, def: 5, want: 5},
		{name: "nan", value: math.NaN(), def: 3, want: 3},
		{name: "inf", value: math.Inf(1), def: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumberOr(tt.value, tt.def); got != tt.want {
				t.Fatalf("NumberOr(%v, %v) = %v, want %v", tt.value, tt.def, got, tt.want)
			}
		})
	}
}

func TestNonEmptyStringOr(t *testing.T) {
	if got := NonEmptyStringOr("  hello ", "fallback"); got != "hello" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if got := NonEmptyStringOr("   ", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{value: -10, want: 0},
		{value: 0, want: 0},
		{value: 58.4, want: 58.4},
		{value: 100, want: 100},
		{value: 250, want: 100},
		{value: math.NaN(), want: 0},
	}
	for _, tt := range tests {
		if got := ClampScore(tt.value); got != tt.want {
			t.Fatalf("ClampScore(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
