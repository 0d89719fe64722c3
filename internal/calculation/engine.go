package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gonzalestax/taxengine/internal/config"
	"github.com/gonzalestax/taxengine/internal/domain"
	"github.com/gonzalestax/taxengine/pkg/money"
)

// Engine runs the tax computation pipeline for one tax year. It is the
// single authoritative implementation: the CLI, the formatters, and the
// quick-estimate surface all call the same entry point rather than
// re-deriving brackets or phaseouts.
//
// The pipeline is strictly sequential: gross income, adjustments, AGI,
// deduction, taxable income, liability, credits, settlement. Each stage
// reads only the raw return and earlier stage outputs. The engine holds no
// mutable state of its own, so one Engine may compute many returns
// concurrently.
type Engine struct {
	Config    *config.TaxYearConfig
	Adjust    *AdjustmentCalculator
	Deduct    *DeductionCalculator
	Liability *LiabilityCalculator
	Credit    *CreditCalculator
	Logger    Logger
	Debug     bool
}

// NewEngine creates an engine bound to one year's rate tables.
func NewEngine(cfg *config.TaxYearConfig) *Engine {
	return &Engine{
		Config:    cfg,
		Adjust:    NewAdjustmentCalculator(cfg),
		Deduct:    NewDeductionCalculator(cfg),
		Liability: NewLiabilityCalculator(cfg),
		Credit:    NewCreditCalculator(cfg),
		Logger:    NopLogger{},
	}
}

// NewEngineForYear creates an engine from the built-in tables for a year.
func NewEngineForYear(year int) (*Engine, error) {
	cfg, err := config.ForYear(year)
	if err != nil {
		return nil, err
	}
	return NewEngine(cfg), nil
}

// SetLogger sets a custom logger; nil restores the no-op logger.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = logger
}

// Calculate validates the return, runs the full pipeline, writes the
// derived fields back onto the return, and reports the complete outcome.
// Raw input fields are never touched.
func (e *Engine) Calculate(ret *domain.TaxReturn) (*domain.TaxResult, error) {
	if err := config.ValidateReturn(ret); err != nil {
		return nil, err
	}

	fs := ret.FilingStatus

	grossIncome := GrossIncome(ret)

	// SE tax is computed before the adjustments because half of it is an
	// above-the-line deduction.
	seTax := e.Liability.SelfEmploymentTax(ret)

	tipsDeduction, err := e.Adjust.TipsDeduction(ret.TipIncome, grossIncome, fs)
	if err != nil {
		return nil, err
	}
	overtimeDeduction := e.Adjust.OvertimeDeduction(ret.OvertimeIncome, ret.TotalW2Wages())
	adjustments := e.Adjust.Adjustments(ret, seTax, tipsDeduction, overtimeDeduction)

	agi := money.Round(grossIncome.Sub(adjustments))

	deduction, deductionKind, err := e.Deduct.Deduction(ret, agi)
	if err != nil {
		return nil, err
	}
	qbiDeduction := e.Deduct.QBIDeduction(ret)

	taxableIncome := money.Round(decimal.Max(agi.Sub(deduction).Sub(qbiDeduction), decimal.Zero))

	taxLiability, err := e.Liability.TaxLiability(ret, taxableIncome, agi, seTax)
	if err != nil {
		return nil, err
	}

	credits, err := e.Credit.Credits(ret, agi)
	if err != nil {
		return nil, err
	}
	totalNonrefundable := credits.TotalNonrefundable()
	totalRefundable := credits.TotalRefundable()

	// Nonrefundable credits can only reduce the tax to zero.
	taxAfterCredits := decimal.Max(taxLiability.Sub(totalNonrefundable), decimal.Zero)

	federalWithheld := ret.TotalFederalWithheld()
	totalPayments := money.Round(federalWithheld.
		Add(ret.EstimatedPayments).
		Add(ret.AmountPaidWithExtension).
		Add(totalRefundable))

	refund, owed := Settle(taxAfterCredits, totalPayments)

	if e.Debug {
		e.Logger.Debugf("gross=%s adjustments=%s agi=%s deduction=%s(%s) taxable=%s liability=%s afterCredits=%s payments=%s",
			grossIncome, adjustments, agi, deduction, deductionKind, taxableIncome, taxLiability, taxAfterCredits, totalPayments)
	}

	result := &domain.TaxResult{
		TaxYear:      ret.TaxYear,
		FilingStatus: fs,

		GrossIncome:         grossIncome,
		Adjustments:         adjustments,
		AdjustedGrossIncome: agi,
		DeductionAmount:     deduction,
		DeductionKind:       deductionKind,
		QBIDeduction:        qbiDeduction,
		TaxableIncome:       taxableIncome,
		TaxLiability:        taxLiability,

		TotalNonrefundableCredits: totalNonrefundable,
		TotalRefundableCredits:    totalRefundable,
		TaxAfterCredits:           taxAfterCredits,

		FederalWithheld:   federalWithheld,
		EstimatedPayments: ret.EstimatedPayments,
		TotalPayments:     totalPayments,
		RefundAmount:      refund,
		AmountOwed:        owed,

		TipsDeduction:     tipsDeduction,
		OvertimeDeduction: overtimeDeduction,
		ChildTaxCredit:    money.Round(credits.ChildTaxCredit.Add(credits.ChildTaxCreditRefundable)),

		Credits: *credits,
	}

	e.writeBack(ret, result)
	return result, nil
}

// writeBack overwrites the return's derived block with the new outcome.
func (e *Engine) writeBack(ret *domain.TaxReturn, res *domain.TaxResult) {
	ret.GrossIncome = res.GrossIncome
	ret.Adjustments = res.Adjustments
	ret.AdjustedGrossIncome = res.AdjustedGrossIncome
	ret.DeductionAmount = res.DeductionAmount
	ret.DeductionKind = res.DeductionKind
	ret.TaxableIncome = res.TaxableIncome
	ret.TaxLiability = res.TaxLiability
	ret.TotalCredits = money.Round(res.TotalNonrefundableCredits.Add(res.TotalRefundableCredits))
	ret.TotalPayments = res.TotalPayments
	ret.RefundAmount = res.RefundAmount
	ret.AmountOwed = res.AmountOwed
}

// EstimateRequest is the input to the quick-estimate surface: a handful of
// scalars instead of a fully populated return.
type EstimateRequest struct {
	FilingStatus       domain.FilingStatus
	AnnualIncome       decimal.Decimal
	FederalWithheld    decimal.Decimal
	QualifyingChildren int
	Age                int
}

// QuickEstimate builds a minimal W-2-only return from the request and runs
// it through the same pipeline as a full return, so the estimate can never
// drift from the authoritative computation.
func (e *Engine) QuickEstimate(req EstimateRequest) (*domain.TaxResult, error) {
	age := req.Age
	if age <= 0 {
		age = 40
	}

	ret := &domain.TaxReturn{
		TaxYear:      e.Config.Year,
		FilingStatus: req.FilingStatus,
		Taxpayer: domain.TaxpayerProfile{
			BirthDate: time.Date(e.Config.Year-age, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		W2Income: []domain.W2Income{{
			Box1Wages:           req.AnnualIncome,
			Box2FederalWithheld: req.FederalWithheld,
		}},
	}
	if req.FilingStatus.RequiresSpouse() {
		ret.Spouse = &domain.TaxpayerProfile{BirthDate: ret.Taxpayer.BirthDate}
	}
	for i := 0; i < req.QualifyingChildren; i++ {
		ret.Dependents = append(ret.Dependents, domain.Dependent{
			BirthDate:               time.Date(e.Config.Year-10, time.January, 1, 0, 0, 0, 0, time.UTC),
			Relationship:            "child",
			MonthsLivedWithTaxpayer: 12,
			QualifiesForChildCredit: true,
		})
	}

	return e.Calculate(ret)
}
