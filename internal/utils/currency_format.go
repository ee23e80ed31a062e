package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// wonSuffix is appended to amounts quoted in Korean won.
const wonSuffix = " 원"

var koreanPrinter = message.NewPrinter(language.Korean)

// FormatGrouped formats an amount with two decimals and thousands separators.
// Example: 1250.75 returns "1,250.75"
func FormatGrouped(amount decimal.Decimal) string {
	return koreanPrinter.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}

// FormatWon formats an amount as a won quote.
// Example: 1250.75 returns "1,250.75 원"
func FormatWon(amount decimal.Decimal) string {
	return FormatGrouped(amount) + wonSuffix
}
