package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/gonzalestax/taxengine/internal/domain"
)

// TaxBracket is one rung of a progressive schedule: the marginal rate applies
// to income up to UpperBound. A zero UpperBound marks the terminal bracket,
// whose bound is effectively infinite.
type TaxBracket struct {
	UpperBound decimal.Decimal `yaml:"upper_bound" json:"upper_bound"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"`
}

// BracketSchedule is an ordered list of brackets, lowest bound first.
type BracketSchedule []TaxBracket

// StatusBrackets holds one schedule per filing status. Struct fields rather
// than a keyed map: adding a filing status is a compile-time-visible gap.
type StatusBrackets struct {
	Single                  BracketSchedule `yaml:"single" json:"single"`
	MarriedFilingJointly    BracketSchedule `yaml:"married_filing_jointly" json:"married_filing_jointly"`
	MarriedFilingSeparately BracketSchedule `yaml:"married_filing_separately" json:"married_filing_separately"`
	HeadOfHousehold         BracketSchedule `yaml:"head_of_household" json:"head_of_household"`
	QualifyingWidow         BracketSchedule `yaml:"qualifying_widow" json:"qualifying_widow"`
}

// For selects the schedule for a filing status.
func (b StatusBrackets) For(fs domain.FilingStatus) (BracketSchedule, error) {
	switch fs {
	case domain.Single:
		return b.Single, nil
	case domain.MarriedFilingJointly:
		return b.MarriedFilingJointly, nil
	case domain.MarriedFilingSeparately:
		return b.MarriedFilingSeparately, nil
	case domain.HeadOfHousehold:
		return b.HeadOfHousehold, nil
	case domain.QualifyingWidow:
		return b.QualifyingWidow, nil
	default:
		return nil, fmt.Errorf("no bracket schedule for filing status %q", fs)
	}
}

// StatusAmounts holds one dollar amount per filing status.
type StatusAmounts struct {
	Single                  decimal.Decimal `yaml:"single" json:"single"`
	MarriedFilingJointly    decimal.Decimal `yaml:"married_filing_jointly" json:"married_filing_jointly"`
	MarriedFilingSeparately decimal.Decimal `yaml:"married_filing_separately" json:"married_filing_separately"`
	HeadOfHousehold         decimal.Decimal `yaml:"head_of_household" json:"head_of_household"`
	QualifyingWidow         decimal.Decimal `yaml:"qualifying_widow" json:"qualifying_widow"`
}

// For selects the amount for a filing status.
func (a StatusAmounts) For(fs domain.FilingStatus) (decimal.Decimal, error) {
	switch fs {
	case domain.Single:
		return a.Single, nil
	case domain.MarriedFilingJointly:
		return a.MarriedFilingJointly, nil
	case domain.MarriedFilingSeparately:
		return a.MarriedFilingSeparately, nil
	case domain.HeadOfHousehold:
		return a.HeadOfHousehold, nil
	case domain.QualifyingWidow:
		return a.QualifyingWidow, nil
	default:
		return decimal.Zero, fmt.Errorf("no amount for filing status %q", fs)
	}
}

// AdditionalStdDeduction is the age-65/blindness add-on; single-type statuses
// (Single, HeadOfHousehold) use the single amount, the rest the married one.
type AdditionalStdDeduction struct {
	Single  decimal.Decimal `yaml:"single" json:"single"`
	Married decimal.Decimal `yaml:"married" json:"married"`
}

// For selects the add-on amount for a filing status.
func (a AdditionalStdDeduction) For(fs domain.FilingStatus) decimal.Decimal {
	if fs.UsesMarriedAdditionalDeduction() {
		return a.Married
	}
	return a.Single
}

// CapitalGainsTiers are the two taxable-income cutoffs of the 0/15/20% step
// function for long-term gains.
type CapitalGainsTiers struct {
	ZeroRateMax    decimal.Decimal `yaml:"zero_rate_max" json:"zero_rate_max"`
	FifteenRateMax decimal.Decimal `yaml:"fifteen_rate_max" json:"fifteen_rate_max"`
}

// StatusCapitalGains holds the tier cutoffs per filing status.
type StatusCapitalGains struct {
	Single                  CapitalGainsTiers `yaml:"single" json:"single"`
	MarriedFilingJointly    CapitalGainsTiers `yaml:"married_filing_jointly" json:"married_filing_jointly"`
	MarriedFilingSeparately CapitalGainsTiers `yaml:"married_filing_separately" json:"married_filing_separately"`
	HeadOfHousehold         CapitalGainsTiers `yaml:"head_of_household" json:"head_of_household"`
	QualifyingWidow         CapitalGainsTiers `yaml:"qualifying_widow" json:"qualifying_widow"`
}

// For selects the tiers for a filing status.
func (c StatusCapitalGains) For(fs domain.FilingStatus) (CapitalGainsTiers, error) {
	switch fs {
	case domain.Single:
		return c.Single, nil
	case domain.MarriedFilingJointly:
		return c.MarriedFilingJointly, nil
	case domain.MarriedFilingSeparately:
		return c.MarriedFilingSeparately, nil
	case domain.HeadOfHousehold:
		return c.HeadOfHousehold, nil
	case domain.QualifyingWidow:
		return c.QualifyingWidow, nil
	default:
		return CapitalGainsTiers{}, fmt.Errorf("no capital gains tiers for filing status %q", fs)
	}
}

// EICParams is one row of the simplified earned-income-credit table.
type EICParams struct {
	MaxAGI    decimal.Decimal `yaml:"max_agi" json:"max_agi"`
	MaxCredit decimal.Decimal `yaml:"max_credit" json:"max_credit"`
}

// EICTable is the simplified earned-income-credit table, indexed by the
// number of qualifying children (capped at three). This is a linear
// approximation of the IRS lookup table, not a statutory reproduction.
type EICTable struct {
	Joint [4]EICParams `yaml:"joint" json:"joint"`
	Other [4]EICParams `yaml:"other" json:"other"`
}

// For selects the table row for a filing status and child count.
func (t EICTable) For(fs domain.FilingStatus, children int) EICParams {
	if children > 3 {
		children = 3
	}
	if children < 0 {
		children = 0
	}
	if fs == domain.MarriedFilingJointly {
		return t.Joint[children]
	}
	return t.Other[children]
}

// TaxYearConfig is the immutable rate-table bundle for one tax year. It is
// constructed once at startup or year selection, shared by reference, and
// never mutated, so concurrent readers need no locking.
type TaxYearConfig struct {
	Year int `yaml:"year" json:"year"`

	Brackets                    StatusBrackets         `yaml:"brackets" json:"brackets"`
	StandardDeduction           StatusAmounts          `yaml:"standard_deduction" json:"standard_deduction"`
	AdditionalStandardDeduction AdditionalStdDeduction `yaml:"additional_standard_deduction" json:"additional_standard_deduction"`
	SeniorDeduction             decimal.Decimal        `yaml:"senior_deduction" json:"senior_deduction"`
	SeniorAge                   int                    `yaml:"senior_age" json:"senior_age"`

	EducatorExpenseCap     decimal.Decimal `yaml:"educator_expense_cap" json:"educator_expense_cap"`
	StudentLoanInterestCap decimal.Decimal `yaml:"student_loan_interest_cap" json:"student_loan_interest_cap"`

	SALTCap                decimal.Decimal `yaml:"salt_cap" json:"salt_cap"`
	AutoLoanInterestCap    decimal.Decimal `yaml:"auto_loan_interest_cap" json:"auto_loan_interest_cap"`
	MedicalAGIFloorRate    decimal.Decimal `yaml:"medical_agi_floor_rate" json:"medical_agi_floor_rate"`
	CharitableAGILimitRate decimal.Decimal `yaml:"charitable_agi_limit_rate" json:"charitable_agi_limit_rate"`

	TipsDeductionMax      decimal.Decimal `yaml:"tips_deduction_max" json:"tips_deduction_max"`
	TipsPhaseoutThreshold StatusAmounts   `yaml:"tips_phaseout_threshold" json:"tips_phaseout_threshold"`
	TipsPhaseoutRate      decimal.Decimal `yaml:"tips_phaseout_rate" json:"tips_phaseout_rate"`
	OvertimeDeductionMax  decimal.Decimal `yaml:"overtime_deduction_max" json:"overtime_deduction_max"`
	OvertimeWageCliff     decimal.Decimal `yaml:"overtime_wage_cliff" json:"overtime_wage_cliff"`

	QBIRate              decimal.Decimal `yaml:"qbi_rate" json:"qbi_rate"`
	QBIPhaseoutThreshold StatusAmounts   `yaml:"qbi_phaseout_threshold" json:"qbi_phaseout_threshold"`

	SENetEarningsRate        decimal.Decimal `yaml:"se_net_earnings_rate" json:"se_net_earnings_rate"`
	SESocialSecurityRate     decimal.Decimal `yaml:"se_social_security_rate" json:"se_social_security_rate"`
	SESocialSecurityWageBase decimal.Decimal `yaml:"se_social_security_wage_base" json:"se_social_security_wage_base"`
	SEMedicareRate           decimal.Decimal `yaml:"se_medicare_rate" json:"se_medicare_rate"`

	CapitalGains        StatusCapitalGains `yaml:"capital_gains" json:"capital_gains"`
	CapitalGainsMidRate decimal.Decimal    `yaml:"capital_gains_mid_rate" json:"capital_gains_mid_rate"`
	CapitalGainsTopRate decimal.Decimal    `yaml:"capital_gains_top_rate" json:"capital_gains_top_rate"`

	NIITRate      decimal.Decimal `yaml:"niit_rate" json:"niit_rate"`
	NIITThreshold StatusAmounts   `yaml:"niit_threshold" json:"niit_threshold"`

	AdditionalMedicareRate      decimal.Decimal `yaml:"additional_medicare_rate" json:"additional_medicare_rate"`
	AdditionalMedicareThreshold StatusAmounts   `yaml:"additional_medicare_threshold" json:"additional_medicare_threshold"`

	CTCPerChild           decimal.Decimal `yaml:"ctc_per_child" json:"ctc_per_child"`
	CTCRefundablePerChild decimal.Decimal `yaml:"ctc_refundable_per_child" json:"ctc_refundable_per_child"`
	CTCPhaseoutThreshold  StatusAmounts   `yaml:"ctc_phaseout_threshold" json:"ctc_phaseout_threshold"`
	CTCPhaseoutPer1000    decimal.Decimal `yaml:"ctc_phaseout_per_1000" json:"ctc_phaseout_per_1000"`
	ODCPerDependent       decimal.Decimal `yaml:"odc_per_dependent" json:"odc_per_dependent"`

	EIC EICTable `yaml:"eic" json:"eic"`
}

// ForYear returns the built-in rate tables for a supported tax year.
func ForYear(year int) (*TaxYearConfig, error) {
	builder, ok := supportedYears[year]
	if !ok {
		return nil, &ConfigurationError{Year: year, Reason: "unsupported tax year"}
	}
	return builder(), nil
}

// SupportedYears lists the tax years with built-in tables.
func SupportedYears() []int {
	years := make([]int, 0, len(supportedYears))
	for y := range supportedYears {
		years = append(years, y)
	}
	return years
}

// LoadTaxYearFile reads a rate-table bundle from a YAML file, for years or
// jurisdiction overrides that have no built-in tables. An incomplete bundle
// is rejected here rather than surfacing mid-pipeline.
func LoadTaxYearFile(filename string) (*TaxYearConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("failed to read rate table file %s: %v", filename, err)}
	}
	var cfg TaxYearConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("failed to parse rate table file %s: %v", filename, err)}
	}
	if cfg.Year == 0 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("rate table file %s does not declare a year", filename)}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the bundle carries the tables every computation
// needs: a bracket schedule and a standard deduction per filing status, and
// a positive AGI ceiling in every EIC row.
func (c *TaxYearConfig) Validate() error {
	statuses := []domain.FilingStatus{
		domain.Single,
		domain.MarriedFilingJointly,
		domain.MarriedFilingSeparately,
		domain.HeadOfHousehold,
		domain.QualifyingWidow,
	}
	for _, fs := range statuses {
		schedule, err := c.Brackets.For(fs)
		if err != nil {
			return err
		}
		if len(schedule) == 0 {
			return &ConfigurationError{Year: c.Year, Reason: fmt.Sprintf("no bracket schedule for filing status %q", fs)}
		}
		deduction, err := c.StandardDeduction.For(fs)
		if err != nil {
			return err
		}
		if !deduction.GreaterThan(decimal.Zero) {
			return &ConfigurationError{Year: c.Year, Reason: fmt.Sprintf("no standard deduction for filing status %q", fs)}
		}
	}
	for i, row := range c.EIC.Joint {
		if !row.MaxAGI.GreaterThan(decimal.Zero) {
			return &ConfigurationError{Year: c.Year, Reason: fmt.Sprintf("eic joint row %d has no AGI ceiling", i)}
		}
	}
	for i, row := range c.EIC.Other {
		if !row.MaxAGI.GreaterThan(decimal.Zero) {
			return &ConfigurationError{Year: c.Year, Reason: fmt.Sprintf("eic other row %d has no AGI ceiling", i)}
		}
	}
	return nil
}

var supportedYears = map[int]func() *TaxYearConfig{
	2025: TaxYear2025,
}
