package loans

import (
	"math"
	"testing"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name          string
		loanAmount    float64
		annualRate    float64
		termYears     int
		expectedRange []float64 // [min, max] expected range
	}{
		{
			name:          "Standard 30-year mortgage",
			loanAmount:    240000,
			annualRate:    6.0,
			termYears:     30,
			expectedRange: []float64{1400, 1500}, // Around $1439
		},
		{
			name:          "VA loan with financed funding fee",
			loanAmount:    408600,
			annualRate:    6.5,
			termYears:     30,
			expectedRange: []float64{2575, 2590}, // Around $2583
		},
		{
			name:          "15-year term",
			loanAmount:    200000,
			annualRate:    5.5,
			termYears:     15,
			expectedRange: []float64{1625, 1645}, // Around $1634
		},
		{
			name:          "Zero loan amount",
			loanAmount:    0,
			annualRate:    6.0,
			termYears:     30,
			expectedRange: []float64{0, 0},
		},
		{
			name:          "High interest loan",
			loanAmount:    10000,
			annualRate:    18.0,
			termYears:     3,
			expectedRange: []float64{360, 380}, // Around $372
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyPayment(tt.loanAmount, tt.annualRate, tt.termYears)

			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("MonthlyPayment() = %.2f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestMonthlyPaymentZeroRate(t *testing.T) {
	// With zero interest the payment is exactly principal over term.
	tests := []struct {
		name       string
		loanAmount float64
		termYears  int
		expected   float64
	}{
		{"30-year zero interest", 360000, 30, 1000.0},
		{"15-year zero interest", 180000, 15, 1000.0},
		{"Single year", 12000, 1, 1000.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyPayment(tt.loanAmount, 0, tt.termYears)
			if result != tt.expected {
				t.Errorf("MonthlyPayment(%v, 0, %v) = %v, expected exactly %v",
					tt.loanAmount, tt.termYears, result, tt.expected)
			}
		})
	}
}

func TestMonthlyPaymentMonotonicity(t *testing.T) {
	// Payment strictly increases with loan amount at a fixed rate.
	previous := 0.0
	for _, amount := range []float64{100000, 200000, 300000, 400000} {
		payment := MonthlyPayment(amount, 6.5, 30)
		if payment <= previous {
			t.Errorf("payment %.2f for amount %.0f not greater than %.2f", payment, amount, previous)
		}
		previous = payment
	}

	// Payment strictly increases with rate at a fixed loan amount.
	previous = 0.0
	for _, rate := range []float64{1.0, 3.0, 5.0, 7.0, 9.0} {
		payment := MonthlyPayment(300000, rate, 30)
		if payment <= previous {
			t.Errorf("payment %.2f for rate %.2f not greater than %.2f", payment, rate, previous)
		}
		previous = payment
	}
}

func TestEstimatedMonthlyPrincipal(t *testing.T) {
	result := EstimatedMonthlyPrincipal(2000)
	if math.Abs(result-600) > 0.001 {
		t.Errorf("EstimatedMonthlyPrincipal(2000) = %v, expected 600", result)
	}
}

func TestMonthsToReachBalance(t *testing.T) {
	tests := []struct {
		name             string
		balance          float64
		targetBalance    float64
		monthlyPrincipal float64
		maxMonths        int
		expected         int
	}{
		{
			name:             "Already at target",
			balance:          100000,
			targetBalance:    100000,
			monthlyPrincipal: 500,
			maxMonths:        360,
			expected:         0,
		},
		{
			name:             "Exact multiple",
			balance:          101000,
			targetBalance:    100000,
			monthlyPrincipal: 500,
			maxMonths:        360,
			expected:         2,
		},
		{
			name:             "Capped at max months",
			balance:          500000,
			targetBalance:    100000,
			monthlyPrincipal: 100,
			maxMonths:        360,
			expected:         360,
		},
		{
			name:             "Zero principal never converges",
			balance:          200000,
			targetBalance:    100000,
			monthlyPrincipal: 0,
			maxMonths:        360,
			expected:         360,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthsToReachBalance(tt.balance, tt.targetBalance, tt.monthlyPrincipal, tt.maxMonths)
			if result != tt.expected {
				t.Errorf("MonthsToReachBalance() = %d, expected %d", result, tt.expected)
			}
		})
	}
}
