package utils

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
}

// minorDigits lists ISO 4217 exponents that differ from the default of 2.
var minorDigits = map[string]int{
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
	"CLP": 0,
	"ISK": 0,
	"BHD": 3,
	"KWD": 3,
	"OMR": 3,
	"JOD": 3,
	"TND": 3,
}

// CurrencyFormatter renders amounts stored in minor units (cents) as display prices.
type CurrencyFormatter struct {
	code    string
	digits  int
	printer *message.Printer
}

// NewCurrencyFormatter builds a formatter for an ISO 4217 code; empty means USD.
func NewCurrencyFormatter(code string) *CurrencyFormatter {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = "USD"
	}
	digits, ok := minorDigits[code]
	if !ok {
		digits = 2
	}
	return &CurrencyFormatter{
		code:    code,
		digits:  digits,
		printer: message.NewPrinter(language.English),
	}
}

// Code returns the ISO currency code.
func (f *CurrencyFormatter) Code() string {
	return f.code
}

// Format turns 123456 into "$1,234.56"; zero-decimal currencies such as JPY
// print the amount as is ("¥1,000").
func (f *CurrencyFormatter) Format(amount int64) string {
	sign := ""
	abs := uint64(amount)
	if amount < 0 {
		sign = "-"
		abs = -abs
	}

	value := f.printer.Sprintf("%d", abs)
	if f.digits > 0 {
		scale := uint64(1)
		for i := 0; i < f.digits; i++ {
			scale *= 10
		}
		value = fmt.Sprintf("%s.%0*d", f.printer.Sprintf("%d", abs/scale), f.digits, abs%scale)
	}

	if symbol, ok := currencySymbols[f.code]; ok {
		return sign + symbol + value
	}
	return sign + f.code + " " + value
}
