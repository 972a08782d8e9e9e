// Package moneda formatea importes en soles peruanos (PEN) con las convenciones es-PE.
package moneda

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const simbolo = "S/"

var (
	locale  = language.MustParse("es-PE")
	printer = message.NewPrinter(locale)
	pen     = currency.MustParseISO("PEN")
)

// Format devuelve el importe con símbolo y dos decimales, p. ej. "S/ 1,234.50".
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	s := printer.Sprintf("%.2f", f)
	if strings.HasPrefix(s, "-") {
		return "-" + simbolo + " " + strings.TrimPrefix(s, "-")
	}
	return simbolo + " " + s
}

// Code devuelve el código ISO 4217 de la moneda.
func Code() string { return pen.String() }

// Locale devuelve la etiqueta de idioma usada para formatear.
func Locale() language.Tag { return locale }
