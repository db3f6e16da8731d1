package engine

import (
	"github.com/iwvelando/loan-compare/internal/config"
	"github.com/iwvelando/loan-compare/pkg/constants"
	"github.com/iwvelando/loan-compare/pkg/loans"
	"github.com/iwvelando/loan-compare/pkg/mathutil"
)

// CalculateConventional produces the conventional loan estimate with
// LTV/credit-tiered PMI and the estimated PMI drop-off months.
func (e *Engine) CalculateConventional(inputs config.LoanInputs) ConventionalResult {
	downPaymentAmount := inputs.DownPaymentAmount()
	loanAmount := inputs.HomePrice - downPaymentAmount
	ltvPercent := mathutil.CalculatePercentage(loanAmount, inputs.HomePrice)

	monthlyPI := mathutil.Round(loans.MonthlyPayment(loanAmount, inputs.InterestRate, inputs.LoanTermYears))

	// PMI applies only above the LTV threshold.
	monthlyPMI := 0.0
	if ltvPercent > constants.PMIRequiredLTV {
		pmiRate := e.rates.PMIRate(inputs.CreditScore, ltvPercent)
		monthlyPMI = mathutil.Round(loanAmount * pmiRate / constants.MonthsPerYear)
	}

	// Both drop months come from the fixed principal-portion heuristic, not
	// a true amortization split.
	estimatedPrincipal := loans.EstimatedMonthlyPrincipal(monthlyPI)
	scheduledDropMonth := loans.MonthsToReachBalance(loanAmount,
		mathutil.ApplyPercentage(inputs.HomePrice, constants.PMIScheduledCancelLTV),
		estimatedPrincipal, constants.MaxPMIDropMonths)
	requestedDropMonth := loans.MonthsToReachBalance(loanAmount,
		mathutil.ApplyPercentage(inputs.HomePrice, constants.PMIRequestCancelLTV),
		estimatedPrincipal, constants.MaxPMIDropMonths)

	totalMonthly := mathutil.Round(monthlyPI + inputs.PropertyTaxMonthly + inputs.HomeInsuranceMonthly +
		inputs.HOAMonthly + monthlyPMI)

	return ConventionalResult{
		LoanAmount: loanAmount,
		MonthlyPayment: PaymentBreakdown{
			PrincipalInterest: monthlyPI,
			PropertyTax:       inputs.PropertyTaxMonthly,
			HomeInsurance:     inputs.HomeInsuranceMonthly,
			HOA:               inputs.HOAMonthly,
			MortgageInsurance: monthlyPMI,
			Total:             totalMonthly,
		},
		PMI: PMI{
			MonthlyAmount:      monthlyPMI,
			CanDrop:            mathutil.IsPositive(monthlyPMI),
			RequestedDropMonth: requestedDropMonth,
			ScheduledDropMonth: scheduledDropMonth,
		},
		DTI: dti(inputs.MonthlyDebts, totalMonthly, inputs.GrossMonthlyIncome),
	}
}
