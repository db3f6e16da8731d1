package engine

import (
	"testing"

	"github.com/iwvelando/loan-compare/internal/config"
	"github.com/iwvelando/loan-compare/pkg/mathutil"
)

func TestCalculateConventionalNoPMIAtLowLTV(t *testing.T) {
	eng := newTestEngine(t)

	inputs := baseInputs()
	inputs.DownPayment = 20
	inputs.DownPaymentType = config.DownPaymentPercent
	result := eng.CalculateConventional(inputs)

	if result.LoanAmount != 320000 {
		t.Errorf("loan amount = %v, expected 320000", result.LoanAmount)
	}
	if result.PMI.MonthlyAmount != 0 {
		t.Errorf("PMI = %v, expected exactly 0 at 80%% LTV", result.PMI.MonthlyAmount)
	}
	if result.PMI.CanDrop {
		t.Error("canDrop should be false when no PMI applies")
	}
	if result.MonthlyPayment.MortgageInsurance != 0 {
		t.Errorf("payment mortgage insurance = %v, expected 0", result.MonthlyPayment.MortgageInsurance)
	}
}

func TestCalculateConventionalPMITier(t *testing.T) {
	eng := newTestEngine(t)

	// Credit 700 with 5% down: LTV 95 reads the 95-97% by 700-719 cell
	// verbatim from the PMI table.
	inputs := baseInputs()
	inputs.CreditScore = 700
	inputs.DownPayment = 5
	inputs.DownPaymentType = config.DownPaymentPercent
	result := eng.CalculateConventional(inputs)

	loanAmount := 380000.0
	if result.LoanAmount != loanAmount {
		t.Fatalf("loan amount = %v, expected %v", result.LoanAmount, loanAmount)
	}

	expectedRate := eng.Rates().PMIRate(700, 95)
	expectedPMI := loanAmount * expectedRate / 12
	if !mathutil.WithinTolerance(result.PMI.MonthlyAmount, expectedPMI, 0.01) {
		t.Errorf("monthly PMI = %v, expected %v", result.PMI.MonthlyAmount, expectedPMI)
	}
	if result.PMI.MonthlyAmount <= 0 {
		t.Error("PMI should be positive above 80% LTV")
	}
	if !result.PMI.CanDrop {
		t.Error("canDrop should be true above 80% LTV")
	}
}

func TestCalculateConventionalPMIAppliesAboveThreshold(t *testing.T) {
	eng := newTestEngine(t)

	tests := []struct {
		name        string
		downPercent float64
		expectPMI   bool
	}{
		{"Three percent down", 3, true},
		{"Ten percent down", 10, true},
		{"Nineteen percent down", 19, true},
		{"Twenty percent down", 20, false},
		{"Thirty percent down", 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := baseInputs()
			inputs.DownPayment = tt.downPercent
			inputs.DownPaymentType = config.DownPaymentPercent

			result := eng.CalculateConventional(inputs)
			hasPMI := result.PMI.MonthlyAmount > 0
			if hasPMI != tt.expectPMI {
				t.Errorf("PMI present = %v, expected %v (monthly %v)",
					hasPMI, tt.expectPMI, result.PMI.MonthlyAmount)
			}
		})
	}
}

func TestCalculateConventionalDropMonths(t *testing.T) {
	eng := newTestEngine(t)

	inputs := baseInputs()
	inputs.DownPayment = 5
	inputs.DownPaymentType = config.DownPaymentPercent
	result := eng.CalculateConventional(inputs)

	if result.PMI.RequestedDropMonth <= 0 {
		t.Error("requested drop month should be positive at 95% LTV")
	}
	if result.PMI.ScheduledDropMonth < result.PMI.RequestedDropMonth {
		t.Errorf("scheduled drop (78%% target, month %d) should not precede requested drop (80%% target, month %d)",
			result.PMI.ScheduledDropMonth, result.PMI.RequestedDropMonth)
	}
	if result.PMI.ScheduledDropMonth > 360 {
		t.Errorf("scheduled drop month %d exceeds the 360-month cap", result.PMI.ScheduledDropMonth)
	}
}

func TestCalculateConventionalDTIIncludesPMI(t *testing.T) {
	eng := newTestEngine(t)

	inputs := baseInputs()
	inputs.DownPayment = 5
	inputs.DownPaymentType = config.DownPaymentPercent
	result := eng.CalculateConventional(inputs)

	expectedTotal := result.MonthlyPayment.PrincipalInterest + inputs.PropertyTaxMonthly +
		inputs.HomeInsuranceMonthly + inputs.HOAMonthly + result.PMI.MonthlyAmount
	if !mathutil.WithinTolerance(result.MonthlyPayment.Total, expectedTotal, 0.01) {
		t.Errorf("total = %v, expected %v including PMI", result.MonthlyPayment.Total, expectedTotal)
	}

	expectedDTI := (inputs.MonthlyDebts + expectedTotal) / inputs.GrossMonthlyIncome
	if !mathutil.WithinTolerance(result.DTI, expectedDTI, 1e-9) {
		t.Errorf("DTI = %v, expected %v", result.DTI, expectedDTI)
	}
}

func TestCalculateConventionalRoundsCurrencyToCents(t *testing.T) {
	eng := newTestEngine(t)

	inputs := baseInputs()
	inputs.HomePrice = 333333
	inputs.DownPayment = 5
	inputs.DownPaymentType = config.DownPaymentPercent
	result := eng.CalculateConventional(inputs)

	for name, value := range map[string]float64{
		"principal & interest": result.MonthlyPayment.PrincipalInterest,
		"monthly PMI":          result.PMI.MonthlyAmount,
		"total payment":        result.MonthlyPayment.Total,
	} {
		if value != mathutil.Round(value) {
			t.Errorf("%s = %v, expected a whole number of cents", name, value)
		}
	}
}
