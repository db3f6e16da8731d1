package rates

import (
	"sort"
	"strings"

	"github.com/iwvelando/loan-compare/pkg/constants"
)

// Provider answers tiered rate lookups against an immutable reference
// dataset. Missing keys resolve to documented fallbacks rather than errors;
// reference-data gaps must never abort a calculation. A Provider is built
// once at load time and is safe for concurrent use.
type Provider struct {
	tables        Tables
	stateToRegion map[string]string
}

// NewProvider builds a Provider from a decoded dataset. Band lists are sorted
// highest-threshold-first and the region membership lists are inverted into a
// state-to-region index.
func NewProvider(tables Tables) *Provider {
	sortBandsDescending(tables.FundingFee.Purchase.FirstUse)
	sortBandsDescending(tables.FundingFee.Purchase.Subsequent)
	sortBandsDescending(tables.FHAMIP.Term15)
	sortBandsDescending(tables.FHAMIP.Term30)
	sort.Slice(tables.PMI.Factors, func(i, j int) bool {
		return tables.PMI.Factors[i].MinLTV > tables.PMI.Factors[j].MinLTV
	})
	for i := range tables.PMI.Factors {
		sortBandsDescending(tables.PMI.Factors[i].Credit)
	}

	tables.PropertyTax.Rates = normalizeStateKeys(tables.PropertyTax.Rates)
	tables.HomeInsurance.States = normalizeStateKeys(tables.HomeInsurance.States)

	stateToRegion := make(map[string]string)
	for region, states := range tables.Residual.Membership {
		for _, state := range states {
			stateToRegion[normalizeState(state)] = region
		}
	}

	return &Provider{
		tables:        tables,
		stateToRegion: stateToRegion,
	}
}

// Metadata returns the dataset provenance.
func (p *Provider) Metadata() Metadata {
	return p.tables.Metadata
}

// PropertyTaxRate returns the effective annual property tax rate for a state,
// or the default rate for unknown states.
func (p *Provider) PropertyTaxRate(state string) float64 {
	if rate, ok := p.tables.PropertyTax.Rates[normalizeState(state)]; ok {
		return rate
	}
	return constants.DefaultPropertyTaxRate
}

// HomeInsuranceAnnual returns the average annual home insurance premium for a
// state, falling back to the national average.
func (p *Provider) HomeInsuranceAnnual(state string) float64 {
	if premium, ok := p.tables.HomeInsurance.States[normalizeState(state)]; ok && premium > 0 {
		return premium
	}
	return p.tables.HomeInsurance.NationalAvgAnnual
}

// RegionForState classifies a state into a residual-income region. States not
// in any membership list classify as the default region.
func (p *Provider) RegionForState(state string) string {
	if region, ok := p.stateToRegion[normalizeState(state)]; ok {
		return region
	}
	return constants.DefaultRegion
}

// FundingFeeRate returns the VA funding fee rate for a purchase by usage and
// down payment percent.
func (p *Provider) FundingFeeRate(firstUse bool, downPaymentPercent float64) float64 {
	bands := p.tables.FundingFee.Purchase.Subsequent
	if firstUse {
		bands = p.tables.FundingFee.Purchase.FirstUse
	}
	return resolveBand(bands, downPaymentPercent, 0)
}

// PMIRate returns the annual PMI rate for a credit score and LTV percent,
// falling back to the default PMI rate when no cell matches.
func (p *Provider) PMIRate(creditScore int, ltvPercent float64) float64 {
	for _, factor := range p.tables.PMI.Factors {
		if ltvPercent >= factor.MinLTV {
			return resolveBand(factor.Credit, float64(creditScore), constants.DefaultPMIRate)
		}
	}
	return constants.DefaultPMIRate
}

// FHAMIPRate returns the annual MIP rate for a loan term and LTV percent.
// Terms other than 15 years use the 30-year table.
func (p *Provider) FHAMIPRate(termYears int, ltvPercent float64) float64 {
	bands := p.tables.FHAMIP.Term30
	if termYears == 15 {
		bands = p.tables.FHAMIP.Term15
	}
	return resolveBand(bands, ltvPercent, 0)
}

// ResidualIncomeRequired returns the required monthly residual income for a
// region, family size, and loan amount. Family sizes beyond the table's
// explicit range add a per-dependent increment to the largest tabulated
// amount. Unmapped regions and malformed tiers resolve to the default
// requirement.
func (p *Provider) ResidualIncomeRequired(region string, familySize int, loanAmount float64) float64 {
	regionData, ok := p.tables.Residual.Regions[region]
	if !ok {
		return constants.DefaultResidualIncome
	}

	amounts := regionData.Under80K
	if loanAmount >= constants.ResidualLoanTierThreshold {
		amounts = regionData.Over80K
	}

	if familySize < 1 {
		familySize = 1
	}
	tableSize := familySize
	if tableSize > constants.ResidualMaxTableFamilySize {
		tableSize = constants.ResidualMaxTableFamilySize
	}
	if len(amounts) < tableSize {
		return constants.DefaultResidualIncome
	}

	required := amounts[tableSize-1]
	if familySize > constants.ResidualMaxTableFamilySize {
		extraDependents := familySize - constants.ResidualMaxTableFamilySize
		required += float64(extraDependents) * p.tables.Residual.PerDependent
	}
	return required
}

func normalizeState(state string) string {
	return strings.ToUpper(strings.TrimSpace(state))
}

func normalizeStateKeys(m map[string]float64) map[string]float64 {
	normalized := make(map[string]float64, len(m))
	for state, value := range m {
		normalized[normalizeState(state)] = value
	}
	return normalized
}
