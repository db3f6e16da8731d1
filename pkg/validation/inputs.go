// Package validation provides boundary validation utilities. The calculation
// engine itself never validates; these checks produce non-fatal warnings for
// callers to surface before computing.
package validation

import (
	"fmt"

	"github.com/iwvelando/loan-compare/internal/config"
	"github.com/iwvelando/loan-compare/pkg/constants"
)

// Credit score bounds of the standard scoring models.
const (
	MinCreditScore = 300
	MaxCreditScore = 850
)

// ValidateOutputFormat checks that the requested output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("invalid output format %s; expected %s, %s, or %s",
		format, constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON)
}

// ValidateInputs inspects a borrower profile and returns warnings for values
// outside the expected domain. The engine will still compute with these
// inputs; results may be nonsensical.
func ValidateInputs(in config.LoanInputs) []string {
	var warnings []string

	if in.HomePrice <= 0 {
		warnings = append(warnings, fmt.Sprintf("home price %.2f is not positive", in.HomePrice))
	}
	if in.GrossMonthlyIncome <= 0 {
		warnings = append(warnings, fmt.Sprintf("gross monthly income %.2f is not positive", in.GrossMonthlyIncome))
	}
	if in.DownPaymentType == config.DownPaymentDollar && in.DownPayment > in.HomePrice {
		warnings = append(warnings, fmt.Sprintf("down payment %.2f exceeds home price %.2f",
			in.DownPayment, in.HomePrice))
	}
	if in.DownPaymentType == config.DownPaymentPercent && in.DownPayment > 100 {
		warnings = append(warnings, fmt.Sprintf("down payment %.2f%% exceeds 100%% of the home price", in.DownPayment))
	}
	if in.CreditScore < MinCreditScore || in.CreditScore > MaxCreditScore {
		warnings = append(warnings, fmt.Sprintf("credit score %d outside the %d-%d range",
			in.CreditScore, MinCreditScore, MaxCreditScore))
	}
	if in.InterestRate < 0 {
		warnings = append(warnings, fmt.Sprintf("interest rate %.2f is negative", in.InterestRate))
	}
	if in.LoanTermYears <= 0 {
		warnings = append(warnings, fmt.Sprintf("loan term %d years is not positive", in.LoanTermYears))
	} else if in.LoanTermYears != 15 && in.LoanTermYears != 30 {
		warnings = append(warnings, fmt.Sprintf("loan term %d years is unusual; rate tables tier on 15 and 30 year terms",
			in.LoanTermYears))
	}
	if in.FamilySize < 1 {
		warnings = append(warnings, fmt.Sprintf("family size %d is below 1", in.FamilySize))
	}
	if in.MonthlyDebts < 0 {
		warnings = append(warnings, fmt.Sprintf("monthly debts %.2f is negative", in.MonthlyDebts))
	}

	return warnings
}
