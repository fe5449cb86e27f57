package commands

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer       = message.NewPrinter(language.English)
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
	headerStyle   = lipgloss.NewStyle().Bold(true)
)

// money formats d with grouped thousands, two decimals and the currency
// symbol, e.g. "1,234.50€".
func money(d decimal.Decimal, currency string) string {
	return printer.Sprintf("%.2f", d.Round(2).InexactFloat64()) + currency
}

// styledMoney is money, rendered red when d is negative.
func styledMoney(d decimal.Decimal, currency string) string {
	s := money(d, currency)
	if d.IsNegative() {
		return negativeStyle.Render(s)
	}
	return s
}
