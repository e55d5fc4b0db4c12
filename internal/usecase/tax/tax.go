// Package tax implements the progressive bracket walker and the two
// estimates built on it: inheritance tax and earned-income tax.
package tax

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/fincompass/fincompass-backend/internal/domain"
	"github.com/fincompass/fincompass-backend/internal/policy"
)

// Progressive walks the taxable base through the bracket schedule, taxing
// only the slice of the base inside each bracket at that bracket's marginal
// rate. Brackets must be in ascending upper-bound order with the open-ended
// bracket (nil upper) last. A non-positive base yields {0, 0, "-"}.
func Progressive(base decimal.Decimal, brackets []domain.TaxBracket) domain.TaxResult {
	if base.LessThanOrEqual(decimal.Zero) || len(brackets) == 0 {
		return domain.TaxResult{Tax: decimal.Zero, MarginalRate: 0, BracketLabel: "-"}
	}

	tax := decimal.Zero
	prev := decimal.Zero
	for _, bracket := range brackets {
		rate := decimal.NewFromFloat(bracket.Rate)

		if bracket.Upper == nil {
			// Open-ended final bracket takes everything above the last
			// finite bound.
			tax = tax.Add(base.Sub(prev).Mul(rate))
			return domain.TaxResult{
				Tax:          tax,
				MarginalRate: bracket.Rate,
				BracketLabel: "exceeds " + prev.String(),
			}
		}

		if base.LessThanOrEqual(*bracket.Upper) {
			tax = tax.Add(base.Sub(prev).Mul(rate))
			return domain.TaxResult{
				Tax:          tax,
				MarginalRate: bracket.Rate,
				BracketLabel: bracket.Upper.String() + " or below",
			}
		}

		tax = tax.Add(bracket.Upper.Sub(prev).Mul(rate))
		prev = *bracket.Upper
	}

	// Schedule ended without an open bracket; the base tops out in the last
	// finite one.
	last := brackets[len(brackets)-1]
	return domain.TaxResult{
		Tax:          tax,
		MarginalRate: last.Rate,
		BracketLabel: "exceeds " + prev.String(),
	}
}

// Brackets converts a policy schedule into the domain representation, with
// Upper == 0 mapping to the open-ended bracket.
func Brackets(src []policy.Bracket) []domain.TaxBracket {
	out := make([]domain.TaxBracket, 0, len(src))
	for _, b := range src {
		bracket := domain.TaxBracket{Rate: b.Rate}
		if b.Upper > 0 {
			upper := decimal.NewFromInt(b.Upper)
			bracket.Upper = &upper
		}
		out = append(out, bracket)
	}
	return out
}

// Inheritance estimates the inheritance tax on the reported estate. The
// taxable base is the gross estate net of debts and the fixed deductions,
// floored at zero.
func Inheritance(input domain.InheritanceTaxInput, p policy.Policy) domain.InheritanceTaxResult {
	deductions := decimal.NewFromInt(p.Inheritance.BasicDeduction)
	if input.HasSpouse {
		deductions = deductions.Add(decimal.NewFromInt(p.Inheritance.SpouseDeduction))
	}
	if input.ChildrenCount > 0 {
		deductions = deductions.Add(
			decimal.NewFromInt(p.Inheritance.ChildDeduction).
				Mul(decimal.NewFromInt(int64(input.ChildrenCount))),
		)
	}

	gross := input.TotalAssets.Sub(input.TotalDebts)
	base := decimal.Max(decimal.Zero, gross.Sub(deductions))

	return domain.InheritanceTaxResult{
		TaxResult:       Progressive(base, Brackets(p.Inheritance.Brackets)),
		GrossEstate:     input.TotalAssets,
		TotalDeductions: deductions,
		TaxableBase:     base,
	}
}

// Income estimates the earned-income tax from the annual salary through the
// same walker, and derives the settlement refund (prepaid minus determined;
// negative means additional tax due).
func Income(input domain.IncomeTaxInput, p policy.Policy) domain.IncomeTaxResult {
	result := Progressive(input.AnnualSalary, Brackets(p.IncomeTax.Brackets))

	effective := 0.0
	if !input.AnnualSalary.IsZero() {
		v, _ := result.Tax.Div(input.AnnualSalary).Mul(decimal.NewFromInt(100)).Float64()
		effective = math.Round(v*10) / 10
	}

	return domain.IncomeTaxResult{
		TaxResult:     result,
		EffectiveRate: effective,
		Refund:        input.PrepaidTax.Sub(input.DeterminedTax),
	}
}
