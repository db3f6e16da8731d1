package rates

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/rates.yaml
var defaultData embed.FS

// Load reads a reference dataset from a YAML file and builds a Provider. An
// empty path loads the embedded default dataset. Loading fails only when a
// required table is entirely absent; individual missing leaf values resolve
// to fallbacks at lookup time.
func Load(path string) (*Provider, error) {
	if path == "" {
		return LoadDefault()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate tables at %s: %w", path, err)
	}
	return loadBytes(data)
}

// LoadDefault builds a Provider from the dataset embedded in the binary.
func LoadDefault() (*Provider, error) {
	data, err := defaultData.ReadFile("data/rates.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded rate tables: %w", err)
	}
	return loadBytes(data)
}

func loadBytes(data []byte) (*Provider, error) {
	var tables Tables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse rate tables: %w", err)
	}

	if err := validateTables(tables); err != nil {
		return nil, err
	}

	return NewProvider(tables), nil
}

// validateTables checks that every required key space is present. A dataset
// missing an entire table is a contract violation, unlike a missing leaf.
func validateTables(tables Tables) error {
	if len(tables.PropertyTax.Rates) == 0 {
		return fmt.Errorf("rate tables missing propertyTax.rates")
	}
	if tables.HomeInsurance.NationalAvgAnnual <= 0 {
		return fmt.Errorf("rate tables missing homeInsurance.nationalAvgAnnual")
	}
	if len(tables.FundingFee.Purchase.FirstUse) == 0 || len(tables.FundingFee.Purchase.Subsequent) == 0 {
		return fmt.Errorf("rate tables missing fundingFee.purchase bands")
	}
	if len(tables.PMI.Factors) == 0 {
		return fmt.Errorf("rate tables missing pmi.factors")
	}
	if len(tables.FHAMIP.Term15) == 0 || len(tables.FHAMIP.Term30) == 0 {
		return fmt.Errorf("rate tables missing fhaMip term bands")
	}
	if len(tables.Residual.Regions) == 0 {
		return fmt.Errorf("rate tables missing residualIncome.regions")
	}
	if len(tables.Residual.Membership) == 0 {
		return fmt.Errorf("rate tables missing residualIncome.membership")
	}
	return nil
}
