// Package rates provides read-only access to the tiered reference tables used
// by the loan calculators: property tax, home insurance, VA funding fee,
// conventional PMI, FHA MIP, and VA residual income, plus the state-to-region
// classifier.
package rates

import "sort"

// Band is one tier of a threshold-based lookup table. A band matches any
// value at or above Min; resolution scans from the highest Min down and the
// first matching band wins.
type Band struct {
	Min  float64 `yaml:"min"`
	Rate float64 `yaml:"rate"`
}

// PMIFactor holds the credit-score bands for one LTV band of the PMI table.
type PMIFactor struct {
	MinLTV float64 `yaml:"minLtv"`
	Credit []Band  `yaml:"credit"`
}

// ResidualRegion holds the residual income requirements for one region, split
// by loan amount tier. Amounts are indexed by family size starting at 1.
type ResidualRegion struct {
	Under80K []float64 `yaml:"under80k"`
	Over80K  []float64 `yaml:"over80k"`
}

// Metadata describes the provenance of a reference dataset; the tables
// version independently of the engine.
type Metadata struct {
	DataYear    int    `yaml:"dataYear"`
	LastUpdated string `yaml:"lastUpdated"`
	Source      string `yaml:"source"`
}

// Tables is the YAML shape of the full reference dataset.
type Tables struct {
	Metadata      Metadata           `yaml:"metadata"`
	PropertyTax   PropertyTaxTable   `yaml:"propertyTax"`
	HomeInsurance HomeInsuranceTable `yaml:"homeInsurance"`
	FundingFee    FundingFeeTable    `yaml:"fundingFee"`
	PMI           PMITable           `yaml:"pmi"`
	FHAMIP        FHAMIPTable        `yaml:"fhaMip"`
	Residual      ResidualTable      `yaml:"residualIncome"`
}

// PropertyTaxTable maps state codes to effective annual rates.
type PropertyTaxTable struct {
	Rates map[string]float64 `yaml:"rates"`
}

// HomeInsuranceTable maps state codes to average annual premiums with a
// national-average fallback.
type HomeInsuranceTable struct {
	NationalAvgAnnual float64            `yaml:"nationalAvgAnnual"`
	States            map[string]float64 `yaml:"states"`
}

// FundingFeeTable holds the VA purchase funding fee rates by usage and
// down-payment percent band.
type FundingFeeTable struct {
	Purchase FundingFeeUsage `yaml:"purchase"`
}

// FundingFeeUsage splits funding fee bands by first versus subsequent use.
type FundingFeeUsage struct {
	FirstUse   []Band `yaml:"firstUse"`
	Subsequent []Band `yaml:"subsequent"`
}

// PMITable holds annual PMI rates by LTV band and credit score band.
type PMITable struct {
	Factors []PMIFactor `yaml:"factors"`
}

// FHAMIPTable holds annual MIP rates by loan term and LTV band.
type FHAMIPTable struct {
	Term15 []Band `yaml:"term15"`
	Term30 []Band `yaml:"term30"`
}

// ResidualTable holds the VA residual income requirements keyed by region,
// plus the region membership lists used to classify states.
type ResidualTable struct {
	PerDependent float64                   `yaml:"perDependent"`
	Regions      map[string]ResidualRegion `yaml:"regions"`
	Membership   map[string][]string       `yaml:"membership"`
}

// resolveBand returns the rate of the first band, scanning from the highest
// Min down, whose lower bound the value meets. Bands must already be sorted
// descending by Min. The fallback is returned when no band matches.
func resolveBand(bands []Band, value, fallback float64) float64 {
	for _, band := range bands {
		if value >= band.Min {
			return band.Rate
		}
	}
	return fallback
}

// sortBandsDescending orders bands from the highest lower bound down so that
// resolveBand can take the first match.
func sortBandsDescending(bands []Band) {
	sort.Slice(bands, func(i, j int) bool {
		return bands[i].Min > bands[j].Min
	})
}
