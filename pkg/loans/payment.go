// Package loans provides the shared loan payment primitives used by all three
// loan program calculators.
package loans

import (
	"math"

	"github.com/iwvelando/loan-compare/pkg/constants"
)

// MonthlyPayment calculates the monthly principal and interest payment for a
// fixed-rate loan using the standard amortization formula.
func MonthlyPayment(loanAmount, annualRatePercent float64, termYears int) float64 {
	termMonths := termYears * constants.MonthsPerYear

	if annualRatePercent == 0 {
		// For zero interest, simply divide the principal by term
		return loanAmount / float64(termMonths)
	}

	periodicRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return loanAmount * periodicRate / discountFactor
}

// EstimatedMonthlyPrincipal approximates the principal portion of a monthly
// P&I payment with a fixed fraction. This is a deliberate simplification used
// by the PMI drop-off estimate rather than a true amortization split.
func EstimatedMonthlyPrincipal(monthlyPI float64) float64 {
	return monthlyPI * constants.PMIPrincipalPortion
}

// MonthsToReachBalance simulates monthly balance reduction at a fixed
// principal payment and returns the first month the balance falls to or below
// the target, capped at maxMonths. A non-positive principal payment never
// reduces the balance, so the cap is returned.
func MonthsToReachBalance(balance, targetBalance, monthlyPrincipal float64, maxMonths int) int {
	if monthlyPrincipal <= 0 && balance > targetBalance {
		return maxMonths
	}

	month := 0
	for balance > targetBalance && month < maxMonths {
		balance -= monthlyPrincipal
		month++
	}
	return month
}
