package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/contribcalc/internal/domain"
)

// CSVFormatter exports the projection series, one row per scenario and year.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(r *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Age", "Nominal", "Real", "Balance401k", "BalanceIRA", "BalanceHSA", "AnnualContribution", "Salary"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if r.HasProjection() {
		for _, s := range domain.Scenarios {
			for _, snap := range r.Projection.Series(s) {
				row := []string{
					s.String(),
					strconv.Itoa(snap.Year),
					strconv.Itoa(snap.Age),
					snap.Nominal.StringFixed(0),
					snap.Real.StringFixed(0),
					snap.Balance401k.StringFixed(0),
					snap.BalanceIRA.StringFixed(0),
					snap.BalanceHSA.StringFixed(0),
					snap.AnnualContribution.StringFixed(0),
					snap.Salary.StringFixed(0),
				}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
