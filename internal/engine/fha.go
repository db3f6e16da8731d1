package engine

import (
	"github.com/iwvelando/loan-compare/internal/config"
	"github.com/iwvelando/loan-compare/pkg/constants"
	"github.com/iwvelando/loan-compare/pkg/loans"
	"github.com/iwvelando/loan-compare/pkg/mathutil"
)

// CalculateFHA produces the FHA loan estimate. The upfront premium is always
// financed into the principal; the annual MIP tier is selected on the base
// loan's LTV, not the premium-inflated one.
func (e *Engine) CalculateFHA(inputs config.LoanInputs) FHAResult {
	downPaymentAmount := inputs.DownPaymentAmount()
	baseLoanAmount := inputs.HomePrice - downPaymentAmount
	ltvPercent := mathutil.CalculatePercentage(baseLoanAmount, inputs.HomePrice)

	ufmipAmount := mathutil.Round(baseLoanAmount * constants.UFMIPRate)
	finalLoanAmount := baseLoanAmount + ufmipAmount

	monthlyPI := mathutil.Round(loans.MonthlyPayment(finalLoanAmount, inputs.InterestRate, inputs.LoanTermYears))

	mipRate := e.rates.FHAMIPRate(inputs.LoanTermYears, ltvPercent)
	monthlyMIP := mathutil.Round(finalLoanAmount * mipRate / constants.MonthsPerYear)

	cancellationRule := MIPCancelElevenYears
	if inputs.LoanTermYears == constants.FHALifeOfLoanTerm && ltvPercent >= constants.FHALifeOfLoanLTV {
		cancellationRule = MIPCancelLifeOfLoan
	}

	totalMonthly := mathutil.Round(monthlyPI + inputs.PropertyTaxMonthly + inputs.HomeInsuranceMonthly +
		inputs.HOAMonthly + monthlyMIP)

	return FHAResult{
		LoanAmount: finalLoanAmount,
		UFMIP: UFMIP{
			Rate:     constants.UFMIPRate,
			Amount:   ufmipAmount,
			Financed: true,
		},
		MonthlyPayment: PaymentBreakdown{
			PrincipalInterest: monthlyPI,
			PropertyTax:       inputs.PropertyTaxMonthly,
			HomeInsurance:     inputs.HomeInsuranceMonthly,
			HOA:               inputs.HOAMonthly,
			MortgageInsurance: monthlyMIP,
			Total:             totalMonthly,
		},
		MIP: MIP{
			MonthlyAmount:    monthlyMIP,
			CancellationRule: cancellationRule,
		},
		DTI: dti(inputs.MonthlyDebts, totalMonthly, inputs.GrossMonthlyIncome),
	}
}
