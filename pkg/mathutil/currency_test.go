package mathutil

import (
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative value rounds away from zero", -1.235, -1.24},
		{"Zero", 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if result != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Exact zero", 0.0, true},
		{"Within tolerance", 0.005, true},
		{"Negative within tolerance", -0.005, true},
		{"Above tolerance", 0.02, false},
		{"Clearly nonzero", 1.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsZero(tt.input); result != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{"Standard LTV", 380000, 400000, 95.0},
		{"Full value", 400000, 400000, 100.0},
		{"Zero total", 100, 0, 0.0},
		{"Zero value", 0, 400000, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := CalculatePercentage(tt.value, tt.total); result != tt.expected {
				t.Errorf("CalculatePercentage(%v, %v) = %v, expected %v", tt.value, tt.total, result, tt.expected)
			}
		})
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		percentage float64
		expected   float64
	}{
		{"Five percent down", 400000, 5, 20000},
		{"Zero percent", 400000, 0, 0},
		{"Full percent", 250000, 100, 250000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ApplyPercentage(tt.value, tt.percentage); result != tt.expected {
				t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v", tt.value, tt.percentage, result, tt.expected)
			}
		})
	}
}
