package config

import (
	"math"
	"testing"

	"github.com/iwvelando/loan-compare/internal/rates"
)

func TestApplyStateDefaults(t *testing.T) {
	provider, err := rates.LoadDefault()
	if err != nil {
		t.Fatalf("failed to load default rate tables: %v", err)
	}

	t.Run("Fills omitted tax and insurance", func(t *testing.T) {
		inputs := LoanInputs{State: "TX", HomePrice: 400000}
		ApplyStateDefaults(nil, &inputs, provider)

		expectedTax := 400000 * provider.PropertyTaxRate("TX") / 12
		if math.Abs(inputs.PropertyTaxMonthly-expectedTax) > 0.01 {
			t.Errorf("PropertyTaxMonthly = %v, expected %v", inputs.PropertyTaxMonthly, expectedTax)
		}

		expectedInsurance := provider.HomeInsuranceAnnual("TX") / 12
		if math.Abs(inputs.HomeInsuranceMonthly-expectedInsurance) > 0.01 {
			t.Errorf("HomeInsuranceMonthly = %v, expected %v", inputs.HomeInsuranceMonthly, expectedInsurance)
		}
	})

	t.Run("Preserves caller-supplied figures", func(t *testing.T) {
		inputs := LoanInputs{
			State:                "TX",
			HomePrice:            400000,
			PropertyTaxMonthly:   275,
			HomeInsuranceMonthly: 120,
		}
		ApplyStateDefaults(nil, &inputs, provider)

		if inputs.PropertyTaxMonthly != 275 {
			t.Errorf("PropertyTaxMonthly = %v, expected caller's 275", inputs.PropertyTaxMonthly)
		}
		if inputs.HomeInsuranceMonthly != 120 {
			t.Errorf("HomeInsuranceMonthly = %v, expected caller's 120", inputs.HomeInsuranceMonthly)
		}
	})

	t.Run("Unknown state uses fallback rates", func(t *testing.T) {
		inputs := LoanInputs{State: "ZZ", HomePrice: 300000}
		ApplyStateDefaults(nil, &inputs, provider)

		// Default property tax fallback is 1.0% annual.
		if math.Abs(inputs.PropertyTaxMonthly-250) > 0.01 {
			t.Errorf("PropertyTaxMonthly = %v, expected 250 from the 1%% fallback", inputs.PropertyTaxMonthly)
		}
		if inputs.HomeInsuranceMonthly <= 0 {
			t.Error("HomeInsuranceMonthly should fall back to the national average")
		}
	})

	t.Run("Zero price skips tax defaulting", func(t *testing.T) {
		inputs := LoanInputs{State: "TX"}
		ApplyStateDefaults(nil, &inputs, provider)

		if inputs.PropertyTaxMonthly != 0 {
			t.Errorf("PropertyTaxMonthly = %v, expected 0 for zero price", inputs.PropertyTaxMonthly)
		}
	})
}
