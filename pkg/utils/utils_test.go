package utils

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCeilCents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "rounds fraction of a cent up",
			input: "33.333333",
			want:  "33.34",
		},
		{
			name:  "rounds up even below half a cent",
			input: "12.001",
			want:  "12.01",
		},
		{
			name:  "already whole cents",
			input: "62.50",
			want:  "62.5",
		},
		{
			name:  "integer",
			input: "60",
			want:  "60",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CeilCents(decimal.RequireFromString(tt.input))
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("CeilCents() = %v, want %v", got, want)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  bool
	}{
		{
			name:  "finite number",
			input: 123.45,
			want:  true,
		},
		{
			name:  "infinity",
			input: math.Inf(1),
			want:  false,
		},
		{
			name:  "negative infinity",
			input: math.Inf(-1),
			want:  false,
		},
		{
			name:  "NaN",
			input: math.NaN(),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsFinite(tt.input)
			if got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}
