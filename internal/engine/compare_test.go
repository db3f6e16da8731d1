package engine

import (
	"reflect"
	"testing"
)

func TestCompareMatchesIndividualCalculators(t *testing.T) {
	eng := newTestEngine(t)
	inputs := baseInputs()

	result := eng.Compare(inputs)

	if !reflect.DeepEqual(result.VA, eng.CalculateVA(inputs)) {
		t.Error("comparison VA result differs from the standalone calculator")
	}
	if !reflect.DeepEqual(result.Conventional, eng.CalculateConventional(inputs)) {
		t.Error("comparison conventional result differs from the standalone calculator")
	}
	if !reflect.DeepEqual(result.FHA, eng.CalculateFHA(inputs)) {
		t.Error("comparison FHA result differs from the standalone calculator")
	}
}

func TestCompareIsDeterministic(t *testing.T) {
	eng := newTestEngine(t)
	inputs := baseInputs()

	first := eng.Compare(inputs)
	second := eng.Compare(inputs)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated comparisons over the same snapshot should be identical")
	}
}

func TestCompareDoesNotMutateInputs(t *testing.T) {
	eng := newTestEngine(t)
	inputs := baseInputs()
	original := inputs

	eng.Compare(inputs)

	if !reflect.DeepEqual(inputs, original) {
		t.Error("comparison must not mutate the input snapshot")
	}
}

func TestCompareProgramContrasts(t *testing.T) {
	eng := newTestEngine(t)
	result := eng.Compare(baseInputs())

	// Zero-down VA carries a funding fee but no monthly insurance; FHA
	// always carries both UFMIP and MIP; conventional at 100% LTV carries PMI.
	if result.VA.MonthlyPayment.MortgageInsurance != 0 {
		t.Error("VA result should carry no monthly mortgage insurance")
	}
	if result.FHA.MIP.MonthlyAmount <= 0 {
		t.Error("FHA result should carry monthly MIP")
	}
	if result.Conventional.PMI.MonthlyAmount <= 0 {
		t.Error("conventional result at 100% LTV should carry PMI")
	}
	if result.FHA.LoanAmount <= result.Conventional.LoanAmount {
		t.Error("FHA loan amount should exceed conventional due to financed UFMIP")
	}
}
