package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/rgehrsitz/contribcalc/pkg/currency"
)

// ConsoleFormatter renders a plain text report for terminals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	y := r.ThisYear

	title := fmt.Sprintf("%d CONTRIBUTION LIMITS", r.TaxYear)
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", 48))
	fmt.Fprintf(&buf, "Age %d | Salary %s | %s | MAGI %s\n\n",
		y.Age, currency.Whole(y.Salary), r.Profile.FilingStatus.Label(), currency.Whole(r.Profile.MAGI))

	fmt.Fprintln(&buf, "401(k)")
	row(&buf, "Deferral limit", currency.Whole(y.Plan401k.MaxDeferral)+catchUpNote(y.Plan401k))
	row(&buf, "Your max deferral", currency.Whole(y.Plan401k.YourMaxDeferral))
	row(&buf, "Employer match", currency.Whole(y.Plan401k.EmployerMatch))
	row(&buf, "415(c) total limit", currency.Whole(y.Plan401k.Total415c))
	if y.MegaBackdoor.Available {
		row(&buf, "Mega backdoor room", currency.Whole(y.MegaBackdoor.Room))
	} else {
		row(&buf, "Mega backdoor room", "not available")
	}
	row(&buf, "Total 401(k) savings", currency.Whole(y.Plan401k.TotalSavings))

	fmt.Fprintln(&buf, "\nRoth IRA")
	row(&buf, "Limit", currency.Whole(y.IRA.MaxLimit))
	switch {
	case y.IRA.SuggestBackdoor:
		row(&buf, "Direct contribution", "phased out, consider a backdoor Roth")
		row(&buf, "Backdoor contribution", currency.Whole(y.IRA.EffectiveContribution))
	case y.IRA.AllowedContribution.LessThan(y.IRA.MaxLimit):
		row(&buf, "Direct contribution", currency.Whole(y.IRA.AllowedContribution)+" (reduced by phase-out)")
	default:
		row(&buf, "Direct contribution", currency.Whole(y.IRA.AllowedContribution))
	}
	row(&buf, "Phase-out range", currency.Whole(y.IRA.PhaseOutStart)+" - "+currency.Whole(y.IRA.PhaseOutEnd))

	fmt.Fprintln(&buf, "\nHSA")
	if y.HSA.Eligible {
		row(&buf, "Limit", currency.Whole(y.HSA.MaxLimit))
		row(&buf, "Contribution", currency.Whole(y.HSA.TotalContribution))
	} else {
		row(&buf, "Limit", "no HDHP coverage")
	}

	fmt.Fprintln(&buf, "\nCatch-up")
	row(&buf, "Roth requirement", y.RothCatchUp.Reason)

	fmt.Fprintln(&buf, "\nTotals")
	row(&buf, "Your contributions", currency.Whole(y.Totals.YourContributions))
	row(&buf, "Employer match", currency.Whole(y.Totals.EmployerMatch))
	row(&buf, "Total with match", currency.Whole(y.Totals.TotalWithMatch))
	row(&buf, "Per paycheck (biweekly)", currency.Cents(y.Paycheck.Biweekly))
	row(&buf, "Per paycheck (semimonthly)", currency.Cents(y.Paycheck.Semimonthly))
	row(&buf, "Per month", currency.Cents(y.Paycheck.Monthly))

	fmt.Fprintln(&buf)
	if r.Error != "" {
		fmt.Fprintf(&buf, "Projection unavailable: %s\n", r.Error)
		return buf.Bytes(), nil
	}
	if !r.HasProjection() {
		return buf.Bytes(), nil
	}

	p := r.Projection
	fmt.Fprintf(&buf, "PROJECTION TO %d (%d years)\n", p.RetirementYear, p.YearsToRetirement)
	fmt.Fprintln(&buf, strings.Repeat("=", 48))
	fmt.Fprintln(&buf, r.Headline.Main)
	fmt.Fprintln(&buf, r.Headline.Subtitle)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "%-14s %7s %16s %16s\n", "Scenario", "Return", "Nominal", "Today's $")
	for _, s := range domain.Scenarios {
		fb := p.FinalBalances[s]
		fmt.Fprintf(&buf, "%-14s %7s %16s %16s\n", s, currency.Percent(p.ReturnRates[s]), currency.Whole(fb.Nominal), currency.Whole(fb.Real))
	}
	return buf.Bytes(), nil
}

func row(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "  %-28s %s\n", label+":", value)
}

func catchUpNote(k domain.Plan401kResult) string {
	switch k.CatchUpKind {
	case domain.CatchUpSuper:
		return fmt.Sprintf(" (includes %s super catch-up)", currency.Whole(k.CatchUp))
	case domain.CatchUpStandard:
		return fmt.Sprintf(" (includes %s catch-up)", currency.Whole(k.CatchUp))
	}
	return ""
}
