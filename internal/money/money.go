package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency represents an ISO 4217 currency code
type Currency string

const (
	USD Currency = "USD"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
	NZD Currency = "NZD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

// CurrencyInfo contains metadata about a currency
type CurrencyInfo struct {
	Code        Currency
	MinorUnits  int // Number of decimal places
	Symbol      string
	SymbolFirst bool
}

var currencies = map[Currency]CurrencyInfo{
	USD: {Code: USD, MinorUnits: 2, Symbol: "$", SymbolFirst: true},
	CAD: {Code: CAD, MinorUnits: 2, Symbol: "$", SymbolFirst: true},
	AUD: {Code: AUD, MinorUnits: 2, Symbol: "$", SymbolFirst: true},
	NZD: {Code: NZD, MinorUnits: 2, Symbol: "$", SymbolFirst: true},
	EUR: {Code: EUR, MinorUnits: 2, Symbol: "€", SymbolFirst: true},
	GBP: {Code: GBP, MinorUnits: 2, Symbol: "£", SymbolFirst: true},
}

// GetCurrencyInfo returns info about a currency
func GetCurrencyInfo(c Currency) (CurrencyInfo, bool) {
	info, ok := currencies[Currency(strings.ToUpper(string(c)))]
	return info, ok
}

// Formatter renders amounts for display in one currency and locale
type Formatter struct {
	info      CurrencyInfo
	printer   *message.Printer
	separator string
}

// NewFormatter creates a formatter for an ISO 4217 code and a BCP 47 locale
func NewFormatter(code, locale string) (*Formatter, error) {
	info, ok := GetCurrencyInfo(Currency(code))
	if !ok {
		return nil, fmt.Errorf("unsupported currency: %q", code)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	printer := message.NewPrinter(tag)
	return &Formatter{
		info:      info,
		printer:   printer,
		separator: strings.Trim(printer.Sprint(number.Decimal(0.5, number.Scale(1))), "05"),
	}, nil
}

// Currency returns the formatter's currency
func (f *Formatter) Currency() Currency {
	return f.info.Code
}

// FormatNumber renders the amount with locale grouping and the currency's
// minor units, without a symbol. Only the integer part goes through the locale
// printer, so the digits stay exact.
func (f *Formatter) FormatNumber(amount decimal.Decimal) string {
	places := int32(f.info.MinorUnits)
	rounded := amount.Round(places)

	abs := rounded.Abs()
	s := f.printer.Sprint(number.Decimal(abs.IntPart()))
	if places > 0 {
		fixed := abs.StringFixed(places)
		s += f.separator + fixed[len(fixed)-int(places):]
	}
	if rounded.IsNegative() {
		return "-" + s
	}
	return s
}

// Format renders the amount with its currency symbol, e.g. "$1,234.50"
func (f *Formatter) Format(amount decimal.Decimal) string {
	digits := f.FormatNumber(amount)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if f.info.SymbolFirst {
		return sign + f.info.Symbol + digits
	}
	return sign + digits + f.info.Symbol
}
