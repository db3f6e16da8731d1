// Package constants provides shared constants for the loan-compare application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Program policy constants
const (
	// UFMIPRate is the FHA upfront mortgage insurance premium rate; the
	// premium is always financed into the loan amount.
	UFMIPRate = 0.0175

	// StandardDTICeiling is the DTI above which VA residual income scrutiny
	// tightens.
	StandardDTICeiling = 0.41

	// ResidualEnhancementFactor scales the required residual income when DTI
	// exceeds StandardDTICeiling.
	ResidualEnhancementFactor = 1.2

	// LivingExpenseRate estimates monthly living expenses as a fraction of
	// gross income for the residual income calculation.
	LivingExpenseRate = 0.40

	// PMIRequiredLTV is the LTV percent above which conventional loans carry PMI.
	PMIRequiredLTV = 80.0

	// PMIScheduledCancelLTV is the LTV percent at which PMI cancels automatically.
	PMIScheduledCancelLTV = 78.0

	// PMIRequestCancelLTV is the LTV percent at which the borrower may request
	// PMI cancellation.
	PMIRequestCancelLTV = 80.0

	// PMIPrincipalPortion estimates the principal share of a P&I payment for
	// the PMI drop-off simulation.
	PMIPrincipalPortion = 0.30

	// MaxPMIDropMonths caps the PMI drop-off simulation.
	MaxPMIDropMonths = 360

	// FHALifeOfLoanTerm and FHALifeOfLoanLTV select the "Life of loan" MIP
	// cancellation rule.
	FHALifeOfLoanTerm = 30
	FHALifeOfLoanLTV  = 90.0

	// ResidualLoanTierThreshold splits residual income requirements by loan size.
	ResidualLoanTierThreshold = 80000.0

	// ResidualMaxTableFamilySize is the largest family size with an explicit
	// residual income table entry; larger families add a per-dependent increment.
	ResidualMaxTableFamilySize = 5
)

// Max-affordable-price solver bounds
const (
	// MinSearchPrice is the lower bound of the price search.
	MinSearchPrice = 100000

	// MaxSearchPrice is the upper bound of the price search.
	MaxSearchPrice = 2000000

	// MaxSolverIterations caps the binary search.
	MaxSolverIterations = 50
)

// Reference data fallbacks used when a lookup key is missing; an estimate with
// a generic default is preferred over a failed calculation.
const (
	// DefaultPropertyTaxRate is the effective annual rate for unknown states.
	DefaultPropertyTaxRate = 0.01

	// DefaultResidualIncome is the required monthly residual income for
	// unmapped regions.
	DefaultResidualIncome = 1000.0

	// DefaultPMIRate is the annual PMI rate for absent PMI cells.
	DefaultPMIRate = 0.005

	// DefaultRegion is the region for states not in any membership list.
	DefaultRegion = "South"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default borrower profile file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestBytes is the default maximum request body size (256 KB)
	DefaultMaxRequestBytes int64 = 256 * 1024
)
