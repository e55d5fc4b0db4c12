// Package renderer turns a snapshot into the plain-text report surface.
package renderer

import (
	"fmt"
	"strings"

	"github.com/fincompass/fincompass-backend/internal/domain"
)

// Report renders the full text report for a snapshot. The snapshot is
// self-contained, so rendering needs no further lookups.
func Report(snap *domain.FinancialSnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Financial snapshot for %s", snap.Model.Profile.Name)
	if snap.Model.Profile.Age > 0 {
		fmt.Fprintf(&b, " (age %d)", snap.Model.Profile.Age)
	}
	fmt.Fprintf(&b, "\nComputed at %s\n", snap.ComputedAt.Format("2006-01-02 15:04"))

	fmt.Fprintf(&b, "\n== Position ==\n")
	fmt.Fprintf(&b, "Net worth:         %s\n", snap.Metrics.NetWorth.Round(0))
	fmt.Fprintf(&b, "Debt ratio:        %.0f%%  [%s]\n", snap.Metrics.DebtRatio, snap.Grades.DebtRatio.Label)
	fmt.Fprintf(&b, "Savings rate:      %.0f%%  [%s]\n", snap.Metrics.SavingsRate, snap.Grades.SavingsRate.Label)
	fmt.Fprintf(&b, "Emergency fund:    %.1f months  [%s]\n", snap.Metrics.EmergencyMonths, snap.Grades.EmergencyFund.Label)
	fmt.Fprintf(&b, "DSR:               %.0f%%\n", snap.Metrics.DSR)
	fmt.Fprintf(&b, "Wealth index:      %.0f\n", snap.Metrics.WealthIndex)

	fmt.Fprintf(&b, "\n== Retirement ==\n")
	fmt.Fprintf(&b, "Required monthly:  %s\n", snap.Metrics.RetirementRequired.Round(0))
	fmt.Fprintf(&b, "Prepared monthly:  %s\n", snap.Metrics.RetirementPrepared.Round(0))
	fmt.Fprintf(&b, "Readiness:         %.0f%%  [%s]\n", snap.Metrics.RetirementReadyRate, snap.Grades.Retirement.Label)
	if snap.Metrics.MonthlyShortfall.IsPositive() {
		fmt.Fprintf(&b, "Monthly shortfall: %s (extra saving needed: %s/month)\n",
			snap.Metrics.MonthlyShortfall.Round(0), snap.Metrics.AdditionalMonthlySaving.Round(0))
	}

	fmt.Fprintf(&b, "\n== Insurance ==\n")
	fmt.Fprintf(&b, "Coverage rate:     %.0f%%  [%s], %d item(s) lacking\n",
		snap.Metrics.InsuranceCoverageRate, snap.Grades.Insurance.Label, snap.Metrics.InsuranceLackCount)
	for _, item := range snap.Metrics.InsuranceItems {
		mark := "ok"
		if item.Lacking {
			mark = "LACKING"
		}
		if item.Binary {
			fmt.Fprintf(&b, "  - %-18s subscribed=%v  %s\n", item.Label, !item.Prepared.IsZero(), mark)
		} else {
			fmt.Fprintf(&b, "  - %-18s needed=%s prepared=%s  %s\n",
				item.Label, item.Needed.Round(0), item.Prepared.Round(0), mark)
		}
	}

	fmt.Fprintf(&b, "\n== Taxes ==\n")
	fmt.Fprintf(&b, "Inheritance: taxable base %s, tax %s (marginal %.0f%%, bracket %s)\n",
		snap.Inheritance.TaxableBase.Round(0), snap.Inheritance.Tax.Round(0),
		snap.Inheritance.MarginalRate*100, snap.Inheritance.BracketLabel)
	fmt.Fprintf(&b, "Income: estimated tax %s (effective %.1f%%), settlement refund %s\n",
		snap.IncomeTax.Tax.Round(0), snap.IncomeTax.EffectiveRate, snap.IncomeTax.Refund.Round(0))

	fmt.Fprintf(&b, "\n== Stage ==\n")
	fmt.Fprintf(&b, "%s Stage %d/6 %s: %s\n",
		snap.Stage.Icon, snap.Stage.Seq, snap.Stage.Name, snap.Stage.Description)
	fmt.Fprintf(&b, "Overall grade: %s (score %.0f)\n", snap.Grades.Overall.Label, snap.Grades.OverallScore)

	fmt.Fprintf(&b, "\n== Action plan ==\n")
	for _, item := range snap.ActionPlan {
		fmt.Fprintf(&b, "%d. [%s] %s\n   %s\n", item.Priority, item.Domain, item.Action, item.Detail)
	}

	return b.String()
}
