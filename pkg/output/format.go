// Package output provides utilities for formatting and displaying loan
// comparison results.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iwvelando/loan-compare/internal/engine"
	"github.com/iwvelando/loan-compare/pkg/format"
	"github.com/iwvelando/loan-compare/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable comparison table.
func PrettyFormat(result engine.ComparisonResult) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Loan program comparison ---\n")
	fmt.Printf("%-22s | %14s | %14s | %14s\n", "", "VA", "Conventional", "FHA")
	fmt.Printf("%-22s | %14s | %14s | %14s\n", "______________________",
		"______________", "______________", "______________")

	rows := []struct {
		label  string
		values [3]float64
	}{
		{"Loan amount", [3]float64{result.VA.LoanAmount, result.Conventional.LoanAmount, result.FHA.LoanAmount}},
		{"Principal & interest", [3]float64{
			result.VA.MonthlyPayment.PrincipalInterest,
			result.Conventional.MonthlyPayment.PrincipalInterest,
			result.FHA.MonthlyPayment.PrincipalInterest,
		}},
		{"Property tax", [3]float64{
			result.VA.MonthlyPayment.PropertyTax,
			result.Conventional.MonthlyPayment.PropertyTax,
			result.FHA.MonthlyPayment.PropertyTax,
		}},
		{"Home insurance", [3]float64{
			result.VA.MonthlyPayment.HomeInsurance,
			result.Conventional.MonthlyPayment.HomeInsurance,
			result.FHA.MonthlyPayment.HomeInsurance,
		}},
		{"HOA", [3]float64{
			result.VA.MonthlyPayment.HOA,
			result.Conventional.MonthlyPayment.HOA,
			result.FHA.MonthlyPayment.HOA,
		}},
		{"Mortgage insurance", [3]float64{
			result.VA.MonthlyPayment.MortgageInsurance,
			result.Conventional.MonthlyPayment.MortgageInsurance,
			result.FHA.MonthlyPayment.MortgageInsurance,
		}},
		{"Total monthly", [3]float64{
			result.VA.MonthlyPayment.Total,
			result.Conventional.MonthlyPayment.Total,
			result.FHA.MonthlyPayment.Total,
		}},
	}

	for _, row := range rows {
		_, _ = p.Printf("%-22s | $%12.2f | $%12.2f | $%12.2f\n",
			row.label, row.values[0], row.values[1], row.values[2])
	}

	_, _ = p.Printf("%-22s | %13.1f%% | %13.1f%% | %13.1f%%\n", "DTI",
		result.VA.DTI*100, result.Conventional.DTI*100, result.FHA.DTI*100)

	fmt.Printf("\n--- VA details ---\n")
	fmt.Printf("Funding fee: %s (%s", format.Currency(result.VA.FundingFee.Amount),
		format.Percent(result.VA.FundingFee.Rate))
	if result.VA.FundingFee.Exempt {
		fmt.Printf(", exempt")
	}
	if result.VA.FundingFee.Financed {
		fmt.Printf(", financed")
	}
	fmt.Printf(")\n")
	fmt.Printf("Residual income: %s actual vs %s required (%s region) - pass=%v\n",
		format.Currency(result.VA.ResidualIncome.Actual),
		format.Currency(result.VA.ResidualIncome.Required),
		result.VA.ResidualIncome.Region,
		result.VA.ResidualIncome.Passes)
	fmt.Printf("Financially qualified: %s; needs COE: %v\n",
		result.VA.Eligibility.Qualified, result.VA.Eligibility.NeedsCOE)

	fmt.Printf("\n--- Mortgage insurance details ---\n")
	if mathutil.IsZero(result.Conventional.PMI.MonthlyAmount) {
		fmt.Printf("Conventional PMI: none\n")
	} else {
		fmt.Printf("Conventional PMI: %s/month, droppable at month %d (requested) or %d (scheduled)\n",
			format.Currency(result.Conventional.PMI.MonthlyAmount),
			result.Conventional.PMI.RequestedDropMonth,
			result.Conventional.PMI.ScheduledDropMonth)
	}
	fmt.Printf("FHA UFMIP: %s financed; MIP %s/month, cancellation: %s\n",
		format.Currency(result.FHA.UFMIP.Amount),
		format.Currency(result.FHA.MIP.MonthlyAmount),
		result.FHA.MIP.CancellationRule)
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result engine.ComparisonResult) {
	fmt.Printf(`"program","loanAmount","principalInterest","propertyTax","homeInsurance","hoa","mortgageInsurance","total","dti"`)
	fmt.Printf("\n")

	programs := []struct {
		name       string
		loanAmount float64
		payment    engine.PaymentBreakdown
		dti        float64
	}{
		{"va", result.VA.LoanAmount, result.VA.MonthlyPayment, result.VA.DTI},
		{"conventional", result.Conventional.LoanAmount, result.Conventional.MonthlyPayment, result.Conventional.DTI},
		{"fha", result.FHA.LoanAmount, result.FHA.MonthlyPayment, result.FHA.DTI},
	}

	for _, program := range programs {
		fmt.Printf(`"%s","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.4f"`,
			program.name, program.loanAmount, program.payment.PrincipalInterest,
			program.payment.PropertyTax, program.payment.HomeInsurance, program.payment.HOA,
			program.payment.MortgageInsurance, program.payment.Total, program.dti)
		fmt.Printf("\n")
	}
}

// JSONFormat outputs the full comparison result as indented JSON.
func JSONFormat(result engine.ComparisonResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// MaxPriceFormat outputs the max-affordable-price solver result.
func MaxPriceFormat(targetPayment, price float64) {
	fmt.Printf("Max affordable home price for a %s monthly VA payment: %s\n",
		format.Currency(targetPayment), format.WholeCurrency(price))
}
