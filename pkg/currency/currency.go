// Package currency formats decimal dollar amounts for display.
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	wholeDollars = money.NewFormatter(0, ".", ",", "$", "$1")
	dollarsCents = money.NewFormatter(2, ".", ",", "$", "$1")
)

// Whole formats an amount as whole dollars, e.g. $1,234. Halves round to even.
func Whole(d decimal.Decimal) string {
	return wholeDollars.Format(d.RoundBank(0).IntPart())
}

// Cents formats an amount with cents, e.g. $1,234.56
func Cents(d decimal.Decimal) string {
	return dollarsCents.Format(d.Shift(2).RoundBank(0).IntPart())
}

// Plain formats an amount as whole dollars with thousands separators and no symbol
func Plain(d decimal.Decimal) string {
	return money.NewFormatter(0, ".", ",", "", "1").Format(d.RoundBank(0).IntPart())
}

// Percent formats a fraction as a percentage with up to two decimals, e.g. 0.065 -> 6.5%
func Percent(rate decimal.Decimal) string {
	return rate.Shift(2).Round(2).String() + "%"
}
