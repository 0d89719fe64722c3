package domain

import "fmt"

// FilingStatus is the closed set of federal filing statuses. Every table
// lookup in the rate configuration switches exhaustively over these values;
// an unknown status is an input error, never a silent default.
type FilingStatus string

const (
	Single                  FilingStatus = "single"
	MarriedFilingJointly    FilingStatus = "married_filing_jointly"
	MarriedFilingSeparately FilingStatus = "married_filing_separately"
	HeadOfHousehold         FilingStatus = "head_of_household"
	QualifyingWidow         FilingStatus = "qualifying_widow"
)

// ParseFilingStatus converts a string into a FilingStatus.
func ParseFilingStatus(s string) (FilingStatus, error) {
	fs := FilingStatus(s)
	if !fs.Valid() {
		return "", fmt.Errorf("unknown filing status: %q", s)
	}
	return fs, nil
}

// Valid reports whether the status is one of the five recognized values.
func (fs FilingStatus) Valid() bool {
	switch fs {
	case Single, MarriedFilingJointly, MarriedFilingSeparately, HeadOfHousehold, QualifyingWidow:
		return true
	}
	return false
}

// RequiresSpouse reports whether a spouse profile must accompany the status.
func (fs FilingStatus) RequiresSpouse() bool {
	return fs == MarriedFilingJointly
}

// UsesMarriedAdditionalDeduction reports whether the married additional
// standard-deduction amount applies rather than the single amount.
func (fs FilingStatus) UsesMarriedAdditionalDeduction() bool {
	return fs != Single && fs != HeadOfHousehold
}
