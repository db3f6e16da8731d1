package config

import (
	"fmt"

	"github.com/iwvelando/loan-compare/internal/rates"
	"github.com/iwvelando/loan-compare/pkg/constants"
	"go.uber.org/zap"
)

// ApplyStateDefaults fills omitted monthly property tax and home insurance
// figures from the state reference tables: tax from the state's effective
// annual rate applied to the home price, insurance from the state's average
// annual premium. This runs once at the boundary, before any calculation, so
// the figures stay fixed for the whole snapshot (the max-price solver depends
// on that).
func ApplyStateDefaults(logger *zap.Logger, inputs *LoanInputs, provider *rates.Provider) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if inputs.PropertyTaxMonthly == 0 && inputs.HomePrice > 0 {
		rate := provider.PropertyTaxRate(inputs.State)
		inputs.PropertyTaxMonthly = inputs.HomePrice * rate / constants.MonthsPerYear
		logger.Debug(fmt.Sprintf("defaulted monthly property tax to %.2f for state %s",
			inputs.PropertyTaxMonthly, inputs.State),
			zap.String("op", "config.ApplyStateDefaults"),
		)
	}

	if inputs.HomeInsuranceMonthly == 0 {
		annual := provider.HomeInsuranceAnnual(inputs.State)
		inputs.HomeInsuranceMonthly = annual / constants.MonthsPerYear
		logger.Debug(fmt.Sprintf("defaulted monthly home insurance to %.2f for state %s",
			inputs.HomeInsuranceMonthly, inputs.State),
			zap.String("op", "config.ApplyStateDefaults"),
		)
	}
}
