package engine

import (
	"fmt"

	"github.com/iwvelando/loan-compare/internal/config"
	"github.com/iwvelando/loan-compare/pkg/constants"
	"github.com/iwvelando/loan-compare/pkg/loans"
	"github.com/iwvelando/loan-compare/pkg/mathutil"
	"go.uber.org/zap"
)

// CalculateVA produces the VA loan estimate: loan sizing with the tiered
// funding fee, monthly payment, DTI, the residual income verdict, and the
// eligibility classification.
func (e *Engine) CalculateVA(inputs config.LoanInputs) VAResult {
	downPaymentAmount := inputs.DownPaymentAmount()
	baseLoanAmount := inputs.HomePrice - downPaymentAmount

	// Disabled veterans are exempt from the funding fee.
	downPaymentPercent := inputs.DownPaymentPercentOfPrice()
	fundingFeeRate := 0.0
	if !inputs.DisabledVeteran {
		fundingFeeRate = e.rates.FundingFeeRate(!inputs.PriorVAUse, downPaymentPercent)
	}
	fundingFeeAmount := mathutil.Round(baseLoanAmount * fundingFeeRate)

	// The fee joins the principal only when financed; otherwise it is paid
	// out of pocket and excluded.
	finalLoanAmount := baseLoanAmount
	if inputs.FinanceFundingFee {
		finalLoanAmount += fundingFeeAmount
	}

	if mathutil.IsPositive(fundingFeeAmount) {
		e.logger.Debug(fmt.Sprintf("applying funding fee %.2f at rate %.4f (financed=%v)",
			fundingFeeAmount, fundingFeeRate, inputs.FinanceFundingFee),
			zap.String("op", "engine.CalculateVA"),
		)
	}

	monthlyPI := mathutil.Round(loans.MonthlyPayment(finalLoanAmount, inputs.InterestRate, inputs.LoanTermYears))

	// VA loans never carry mortgage insurance.
	totalMonthly := mathutil.Round(monthlyPI + inputs.PropertyTaxMonthly + inputs.HomeInsuranceMonthly + inputs.HOAMonthly)

	ratio := dti(inputs.MonthlyDebts, totalMonthly, inputs.GrossMonthlyIncome)

	region := e.rates.RegionForState(inputs.State)
	requiredResidual := e.rates.ResidualIncomeRequired(region, inputs.FamilySize, finalLoanAmount)

	// The living-expense allowance is a flat fraction of gross income, a
	// deliberate simplification standing in for a full expense table.
	estimatedLivingExpenses := inputs.GrossMonthlyIncome * constants.LivingExpenseRate
	actualResidual := mathutil.Round(inputs.GrossMonthlyIncome - inputs.MonthlyDebts - totalMonthly - estimatedLivingExpenses)

	residualPasses := actualResidual >= requiredResidual

	// Residual scrutiny tightens once the standard DTI ceiling is exceeded.
	enhancedRequired := requiredResidual
	if ratio > constants.StandardDTICeiling {
		enhancedRequired = requiredResidual * constants.ResidualEnhancementFactor
	}
	enhancedPasses := actualResidual >= enhancedRequired

	qualified := QualifiedNotYet
	switch {
	case ratio <= constants.StandardDTICeiling && residualPasses:
		qualified = QualifiedLikely
	case ratio > constants.StandardDTICeiling && enhancedPasses:
		qualified = QualifiedMaybe
	case residualPasses:
		qualified = QualifiedMaybe
	}

	return VAResult{
		LoanAmount: finalLoanAmount,
		FundingFee: FundingFee{
			Rate:     fundingFeeRate,
			Amount:   fundingFeeAmount,
			Financed: inputs.FinanceFundingFee,
			Exempt:   inputs.DisabledVeteran,
		},
		MonthlyPayment: PaymentBreakdown{
			PrincipalInterest: monthlyPI,
			PropertyTax:       inputs.PropertyTaxMonthly,
			HomeInsurance:     inputs.HomeInsuranceMonthly,
			HOA:               inputs.HOAMonthly,
			MortgageInsurance: 0,
			Total:             totalMonthly,
		},
		DTI: ratio,
		ResidualIncome: ResidualIncome{
			Required: enhancedRequired,
			Actual:   actualResidual,
			Passes:   enhancedPasses,
			Region:   region,
		},
		Eligibility: Eligibility{
			VAEligible: serviceStatusEligible(inputs.ServiceStatus),
			Qualified:  qualified,
			NeedsCOE:   inputs.COEStatus != config.COEYes,
		},
	}
}

// serviceStatusEligible reports whether a service status can carry VA loan
// entitlement. Every recognized status currently qualifies; finer gating on
// service history is an extension point.
func serviceStatusEligible(status config.ServiceStatus) bool {
	switch status {
	case config.StatusVeteran, config.StatusActiveDuty, config.StatusNationalGuard,
		config.StatusReserve, config.StatusSurvivingSpouse:
		return true
	}
	return false
}
