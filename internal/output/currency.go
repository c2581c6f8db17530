package output

import (
	"os"

	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

var mxPrinter = message.NewPrinter(language.MustParse("es-MX"))

// FormatCurrency formats a decimal as Mexican pesos, e.g. $69,326.54
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + mxPrinter.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}

// FormatWholeCurrency formats a decimal as whole pesos, e.g. $69,327
func FormatWholeCurrency(amount decimal.Decimal) string {
	return "$" + mxPrinter.Sprintf("%d", amount.Round(0).IntPart())
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// SaveConfiguration saves a configuration to a file
func SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}
