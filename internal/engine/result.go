// Package engine implements the loan program calculators: VA, conventional,
// and FHA affordability estimates computed from one immutable input snapshot
// and the tiered reference tables. Every operation is a pure function of its
// inputs; results are plain values, never mutated after return.
package engine

// Qualification is the three-way financial qualification verdict for a VA loan.
type Qualification string

const (
	QualifiedLikely Qualification = "likely"
	QualifiedMaybe  Qualification = "maybe"
	QualifiedNotYet Qualification = "not-yet"
)

// MIP cancellation rules for FHA loans.
const (
	MIPCancelLifeOfLoan  = "Life of loan"
	MIPCancelElevenYears = "11 years"
)

// PaymentBreakdown itemizes a monthly housing payment. MortgageInsurance is
// PMI for conventional loans, MIP for FHA, and always zero for VA.
type PaymentBreakdown struct {
	PrincipalInterest float64 `json:"principalInterest"`
	PropertyTax       float64 `json:"propertyTax"`
	HomeInsurance     float64 `json:"homeInsurance"`
	HOA               float64 `json:"hoa"`
	MortgageInsurance float64 `json:"mortgageInsurance"`
	Total             float64 `json:"total"`
}

// FundingFee describes the one-time VA funding fee.
type FundingFee struct {
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
	Financed bool    `json:"financed"`
	Exempt   bool    `json:"exempt"`
}

// ResidualIncome is the VA residual income verdict. Required reflects the
// enhanced requirement when DTI exceeds the standard ceiling.
type ResidualIncome struct {
	Required float64 `json:"required"`
	Actual   float64 `json:"actual"`
	Passes   bool    `json:"passes"`
	Region   string  `json:"region"`
}

// Eligibility classifies the borrower's VA loan eligibility.
type Eligibility struct {
	VAEligible bool          `json:"vaEligible"`
	Qualified  Qualification `json:"financiallyQualified"`
	NeedsCOE   bool          `json:"needsCOE"`
}

// VAResult is the VA loan estimate.
type VAResult struct {
	LoanAmount     float64          `json:"loanAmount"`
	FundingFee     FundingFee       `json:"fundingFee"`
	MonthlyPayment PaymentBreakdown `json:"monthlyPayment"`
	DTI            float64          `json:"dti"`
	ResidualIncome ResidualIncome   `json:"residualIncome"`
	Eligibility    Eligibility      `json:"eligibility"`
}

// PMI describes conventional private mortgage insurance and its estimated
// drop-off timing. Drop months are approximations from a fixed
// principal-portion heuristic, capped at the simulation limit.
type PMI struct {
	MonthlyAmount      float64 `json:"monthlyAmount"`
	CanDrop            bool    `json:"canDrop"`
	RequestedDropMonth int     `json:"dropMonth"`
	ScheduledDropMonth int     `json:"scheduledDropMonth"`
}

// ConventionalResult is the conventional loan estimate.
type ConventionalResult struct {
	LoanAmount     float64          `json:"loanAmount"`
	MonthlyPayment PaymentBreakdown `json:"monthlyPayment"`
	PMI            PMI              `json:"pmi"`
	DTI            float64          `json:"dti"`
}

// UFMIP describes the FHA upfront mortgage insurance premium, which is always
// financed into the principal.
type UFMIP struct {
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
	Financed bool    `json:"financed"`
}

// MIP describes the FHA annual mortgage insurance premium.
type MIP struct {
	MonthlyAmount    float64 `json:"monthlyAmount"`
	CancellationRule string  `json:"cancellationRule"`
}

// FHAResult is the FHA loan estimate.
type FHAResult struct {
	LoanAmount     float64          `json:"loanAmount"`
	UFMIP          UFMIP            `json:"ufmip"`
	MonthlyPayment PaymentBreakdown `json:"monthlyPayment"`
	MIP            MIP              `json:"mip"`
	DTI            float64          `json:"dti"`
}

// ComparisonResult is a point-in-time snapshot of all three program
// estimates computed from one input set.
type ComparisonResult struct {
	VA           VAResult           `json:"va"`
	Conventional ConventionalResult `json:"conventional"`
	FHA          FHAResult          `json:"fha"`
}
