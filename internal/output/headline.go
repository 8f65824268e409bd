package output

import (
	"fmt"

	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/rgehrsitz/contribcalc/pkg/currency"
	"github.com/shopspring/decimal"
)

var (
	oneMillion  = decimal.NewFromInt(1_000_000)
	oneThousand = decimal.NewFromInt(1_000)
)

// Headline is the one-line summary of a projection
type Headline struct {
	Main     string `json:"main"`
	Subtitle string `json:"subtitle"`
}

// FormatAbbreviated formats an amount with a magnitude suffix:
// $1.2M at or above a million, $350K at or above a thousand, $999 below.
// Halves round to even.
func FormatAbbreviated(amount decimal.Decimal) string {
	switch {
	case amount.GreaterThanOrEqual(oneMillion):
		return "$" + amount.Div(oneMillion).RoundBank(1).StringFixed(1) + "M"
	case amount.GreaterThanOrEqual(oneThousand):
		return "$" + amount.Div(oneThousand).RoundBank(0).StringFixed(0) + "K"
	default:
		return currency.Whole(amount)
	}
}

// FormatHeadline renders the nominal and inflation-adjusted range of a projection
func FormatHeadline(series *domain.ProjectionSeries) Headline {
	if series == nil {
		return Headline{}
	}
	h := series.Headline
	return Headline{
		Main: fmt.Sprintf("By %d, you could have between %s and %s",
			h.RetirementYear, FormatAbbreviated(h.LowNominal), FormatAbbreviated(h.HighNominal)),
		Subtitle: fmt.Sprintf("(~%s to %s in today's dollars)",
			FormatAbbreviated(h.LowReal), FormatAbbreviated(h.HighReal)),
	}
}
