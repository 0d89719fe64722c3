package config

import "github.com/shopspring/decimal"

// TaxYear2025 builds the 2025 rate tables, including the OBBBA provisions
// (tips/overtime/senior deductions, revised child tax credit, raised SALT
// cap). The qualifying-widow column reuses the married-filing-jointly
// figures throughout, which is the statutory treatment.
func TaxYear2025() *TaxYearConfig {
	bracketsSingle := BracketSchedule{
		{UpperBound: decimal.NewFromInt(11600), Rate: decimal.NewFromFloat(0.10)},
		{UpperBound: decimal.NewFromInt(47150), Rate: decimal.NewFromFloat(0.12)},
		{UpperBound: decimal.NewFromInt(100525), Rate: decimal.NewFromFloat(0.22)},
		{UpperBound: decimal.NewFromInt(191950), Rate: decimal.NewFromFloat(0.24)},
		{UpperBound: decimal.NewFromInt(243725), Rate: decimal.NewFromFloat(0.32)},
		{UpperBound: decimal.NewFromInt(609350), Rate: decimal.NewFromFloat(0.35)},
		{Rate: decimal.NewFromFloat(0.37)}, // terminal bracket, no upper bound
	}
	bracketsJoint := BracketSchedule{
		{UpperBound: decimal.NewFromInt(23200), Rate: decimal.NewFromFloat(0.10)},
		{UpperBound: decimal.NewFromInt(94300), Rate: decimal.NewFromFloat(0.12)},
		{UpperBound: decimal.NewFromInt(201050), Rate: decimal.NewFromFloat(0.22)},
		{UpperBound: decimal.NewFromInt(383900), Rate: decimal.NewFromFloat(0.24)},
		{UpperBound: decimal.NewFromInt(487450), Rate: decimal.NewFromFloat(0.32)},
		{UpperBound: decimal.NewFromInt(731200), Rate: decimal.NewFromFloat(0.35)},
		{Rate: decimal.NewFromFloat(0.37)},
	}
	bracketsSeparate := BracketSchedule{
		{UpperBound: decimal.NewFromInt(11600), Rate: decimal.NewFromFloat(0.10)},
		{UpperBound: decimal.NewFromInt(47150), Rate: decimal.NewFromFloat(0.12)},
		{UpperBound: decimal.NewFromInt(100525), Rate: decimal.NewFromFloat(0.22)},
		{UpperBound: decimal.NewFromInt(191950), Rate: decimal.NewFromFloat(0.24)},
		{UpperBound: decimal.NewFromInt(243725), Rate: decimal.NewFromFloat(0.32)},
		{UpperBound: decimal.NewFromInt(365600), Rate: decimal.NewFromFloat(0.35)},
		{Rate: decimal.NewFromFloat(0.37)},
	}
	bracketsHead := BracketSchedule{
		{UpperBound: decimal.NewFromInt(16550), Rate: decimal.NewFromFloat(0.10)},
		{UpperBound: decimal.NewFromInt(63100), Rate: decimal.NewFromFloat(0.12)},
		{UpperBound: decimal.NewFromInt(100500), Rate: decimal.NewFromFloat(0.22)},
		{UpperBound: decimal.NewFromInt(191950), Rate: decimal.NewFromFloat(0.24)},
		{UpperBound: decimal.NewFromInt(243700), Rate: decimal.NewFromFloat(0.32)},
		{UpperBound: decimal.NewFromInt(609350), Rate: decimal.NewFromFloat(0.35)},
		{Rate: decimal.NewFromFloat(0.37)},
	}

	return &TaxYearConfig{
		Year: 2025,

		Brackets: StatusBrackets{
			Single:                  bracketsSingle,
			MarriedFilingJointly:    bracketsJoint,
			MarriedFilingSeparately: bracketsSeparate,
			HeadOfHousehold:         bracketsHead,
			QualifyingWidow:         bracketsJoint,
		},

		StandardDeduction: StatusAmounts{
			Single:                  decimal.NewFromInt(14600),
			MarriedFilingJointly:    decimal.NewFromInt(29200),
			MarriedFilingSeparately: decimal.NewFromInt(14600),
			HeadOfHousehold:         decimal.NewFromInt(21900),
			QualifyingWidow:         decimal.NewFromInt(29200),
		},
		AdditionalStandardDeduction: AdditionalStdDeduction{
			Single:  decimal.NewFromInt(1950),
			Married: decimal.NewFromInt(1550),
		},
		SeniorDeduction: decimal.NewFromInt(6000),
		SeniorAge:       65,

		EducatorExpenseCap:     decimal.NewFromInt(300),
		StudentLoanInterestCap: decimal.NewFromInt(2500),

		SALTCap:                decimal.NewFromInt(40000),
		AutoLoanInterestCap:    decimal.NewFromInt(10000),
		MedicalAGIFloorRate:    decimal.NewFromFloat(0.075),
		CharitableAGILimitRate: decimal.NewFromFloat(0.60),

		TipsDeductionMax: decimal.NewFromInt(25000),
		TipsPhaseoutThreshold: StatusAmounts{
			Single:                  decimal.NewFromInt(160000),
			MarriedFilingJointly:    decimal.NewFromInt(320000),
			MarriedFilingSeparately: decimal.NewFromInt(160000),
			HeadOfHousehold:         decimal.NewFromInt(160000),
			QualifyingWidow:         decimal.NewFromInt(320000),
		},
		TipsPhaseoutRate:     decimal.NewFromFloat(0.10),
		OvertimeDeductionMax: decimal.NewFromInt(10000),
		OvertimeWageCliff:    decimal.NewFromInt(100000),

		QBIRate: decimal.NewFromFloat(0.20),
		QBIPhaseoutThreshold: StatusAmounts{
			Single:                  decimal.NewFromInt(191950),
			MarriedFilingJointly:    decimal.NewFromInt(383900),
			MarriedFilingSeparately: decimal.NewFromInt(191950),
			HeadOfHousehold:         decimal.NewFromInt(191950),
			QualifyingWidow:         decimal.NewFromInt(383900),
		},

		SENetEarningsRate:        decimal.NewFromFloat(0.9235),
		SESocialSecurityRate:     decimal.NewFromFloat(0.124),
		SESocialSecurityWageBase: decimal.NewFromInt(168600),
		SEMedicareRate:           decimal.NewFromFloat(0.029),

		CapitalGains: StatusCapitalGains{
			Single: CapitalGainsTiers{
				ZeroRateMax:    decimal.NewFromInt(47025),
				FifteenRateMax: decimal.NewFromInt(518900),
			},
			MarriedFilingJointly: CapitalGainsTiers{
				ZeroRateMax:    decimal.NewFromInt(94050),
				FifteenRateMax: decimal.NewFromInt(583750),
			},
			MarriedFilingSeparately: CapitalGainsTiers{
				ZeroRateMax:    decimal.NewFromInt(47025),
				FifteenRateMax: decimal.NewFromInt(291850),
			},
			HeadOfHousehold: CapitalGainsTiers{
				ZeroRateMax:    decimal.NewFromInt(47025),
				FifteenRateMax: decimal.NewFromInt(291850),
			},
			QualifyingWidow: CapitalGainsTiers{
				ZeroRateMax:    decimal.NewFromInt(94050),
				FifteenRateMax: decimal.NewFromInt(583750),
			},
		},
		CapitalGainsMidRate: decimal.NewFromFloat(0.15),
		CapitalGainsTopRate: decimal.NewFromFloat(0.20),

		NIITRate: decimal.NewFromFloat(0.038),
		NIITThreshold: StatusAmounts{
			Single:                  decimal.NewFromInt(200000),
			MarriedFilingJointly:    decimal.NewFromInt(250000),
			MarriedFilingSeparately: decimal.NewFromInt(250000),
			HeadOfHousehold:         decimal.NewFromInt(250000),
			QualifyingWidow:         decimal.NewFromInt(250000),
		},

		AdditionalMedicareRate: decimal.NewFromFloat(0.009),
		AdditionalMedicareThreshold: StatusAmounts{
			Single:                  decimal.NewFromInt(200000),
			MarriedFilingJointly:    decimal.NewFromInt(250000),
			MarriedFilingSeparately: decimal.NewFromInt(250000),
			HeadOfHousehold:         decimal.NewFromInt(250000),
			QualifyingWidow:         decimal.NewFromInt(250000),
		},

		CTCPerChild:           decimal.NewFromInt(2200),
		CTCRefundablePerChild: decimal.NewFromInt(1700),
		CTCPhaseoutThreshold: StatusAmounts{
			Single:                  decimal.NewFromInt(200000),
			MarriedFilingJointly:    decimal.NewFromInt(400000),
			MarriedFilingSeparately: decimal.NewFromInt(200000),
			HeadOfHousehold:         decimal.NewFromInt(200000),
			QualifyingWidow:         decimal.NewFromInt(400000),
		},
		CTCPhaseoutPer1000: decimal.NewFromInt(50),
		ODCPerDependent:    decimal.NewFromInt(500),

		EIC: EICTable{
			Joint: [4]EICParams{
				{MaxAGI: decimal.NewFromInt(24210), MaxCredit: decimal.NewFromInt(632)},
				{MaxAGI: decimal.NewFromInt(53120), MaxCredit: decimal.NewFromInt(4213)},
				{MaxAGI: decimal.NewFromInt(59478), MaxCredit: decimal.NewFromInt(6960)},
				{MaxAGI: decimal.NewFromInt(63398), MaxCredit: decimal.NewFromInt(7830)},
			},
			Other: [4]EICParams{
				{MaxAGI: decimal.NewFromInt(17640), MaxCredit: decimal.NewFromInt(632)},
				{MaxAGI: decimal.NewFromInt(46560), MaxCredit: decimal.NewFromInt(4213)},
				{MaxAGI: decimal.NewFromInt(52918), MaxCredit: decimal.NewFromInt(6960)},
				{MaxAGI: decimal.NewFromInt(56838), MaxCredit: decimal.NewFromInt(7830)},
			},
		},
	}
}
