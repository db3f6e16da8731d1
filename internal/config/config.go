// Package config defines the borrower profile and runtime configuration for
// loan-compare and includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/iwvelando/loan-compare/pkg/constants"
	"github.com/iwvelando/loan-compare/pkg/mathutil"
	"github.com/spf13/viper"
)

// ServiceStatus identifies the borrower's military service category.
type ServiceStatus string

const (
	StatusVeteran         ServiceStatus = "veteran"
	StatusActiveDuty      ServiceStatus = "active-duty"
	StatusNationalGuard   ServiceStatus = "national-guard"
	StatusReserve         ServiceStatus = "reserve"
	StatusSurvivingSpouse ServiceStatus = "surviving-spouse"
)

// COEStatus tracks whether the borrower holds a Certificate of Eligibility.
type COEStatus string

const (
	COEYes     COEStatus = "yes"
	COENo      COEStatus = "no"
	COENotSure COEStatus = "not-sure"
)

// DownPaymentType tags whether the down payment figure is a dollar amount or
// a percent of the home price.
type DownPaymentType string

const (
	DownPaymentDollar  DownPaymentType = "dollar"
	DownPaymentPercent DownPaymentType = "percent"
)

// Configuration holds all configuration for loan-compare.
type Configuration struct {
	Borrower LoanInputs    `yaml:"borrower"`
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" json:"level,omitempty"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" json:"format,omitempty"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" json:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty"` // pretty, csv, json
}

// LoanInputs is the complete immutable input snapshot the calculators consume.
// The engine performs no validation beyond numeric fallbacks; callers are
// responsible for sane values (see pkg/validation for boundary warnings).
type LoanInputs struct {
	ServiceStatus ServiceStatus `yaml:"serviceStatus" json:"serviceStatus"`
	PriorVAUse    bool          `yaml:"priorVAUse" json:"priorVAUse"`
	State         string        `yaml:"state" json:"state"`
	FamilySize    int           `yaml:"familySize" json:"familySize"`
	COEStatus     COEStatus     `yaml:"coeStatus" json:"coeStatus"`

	HomePrice            float64         `yaml:"homePrice" json:"homePrice"`
	DownPayment          float64         `yaml:"downPayment" json:"downPayment"`
	DownPaymentType      DownPaymentType `yaml:"downPaymentType" json:"downPaymentType"`
	PropertyTaxMonthly   float64         `yaml:"propertyTaxMonthly" json:"propertyTaxMonthly"`
	HomeInsuranceMonthly float64         `yaml:"homeInsuranceMonthly" json:"homeInsuranceMonthly"`
	HOAMonthly           float64         `yaml:"hoaMonthly" json:"hoaMonthly"`
	GrossMonthlyIncome   float64         `yaml:"grossMonthlyIncome" json:"grossMonthlyIncome"`
	MonthlyDebts         float64         `yaml:"monthlyDebts" json:"monthlyDebts"`
	CreditScore          int             `yaml:"creditScore" json:"creditScore"`
	InterestRate         float64         `yaml:"interestRate" json:"interestRate"`
	LoanTermYears        int             `yaml:"loanTermYears" json:"loanTermYears"`

	DisabledVeteran   bool `yaml:"disabledVeteran" json:"disabledVeteran"`
	FinanceFundingFee bool `yaml:"financeFundingFee" json:"financeFundingFee"`
}

// DownPaymentAmount resolves the down payment to dollars per the unit tag.
func (in LoanInputs) DownPaymentAmount() float64 {
	if in.DownPaymentType == DownPaymentPercent {
		return mathutil.ApplyPercentage(in.HomePrice, in.DownPayment)
	}
	return in.DownPayment
}

// DownPaymentPercentOfPrice returns the down payment as a percent of the home
// price.
func (in LoanInputs) DownPaymentPercentOfPrice() float64 {
	return mathutil.CalculatePercentage(in.DownPaymentAmount(), in.HomePrice)
}

// WithHomePrice returns a copy of the inputs at a different home price. Tax
// and insurance figures are carried over unchanged; the max-price solver
// relies on them staying fixed across candidate prices.
func (in LoanInputs) WithHomePrice(price float64) LoanInputs {
	in.HomePrice = price
	return in
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

// applyDefaults fills unset enum tags with their conventional values.
func (conf *Configuration) applyDefaults() {
	if conf.Borrower.ServiceStatus == "" {
		conf.Borrower.ServiceStatus = StatusVeteran
	}
	if conf.Borrower.COEStatus == "" {
		conf.Borrower.COEStatus = COENotSure
	}
	if conf.Borrower.DownPaymentType == "" {
		conf.Borrower.DownPaymentType = DownPaymentDollar
	}
	if conf.Borrower.FamilySize < 1 {
		conf.Borrower.FamilySize = 1
	}
	if conf.Output.Format == "" {
		conf.Output.Format = constants.OutputFormatPretty
	}
}
