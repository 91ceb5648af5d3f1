package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders whole rupees with Indian digit grouping, e.g. "₹1,239".
func FormatINR(rupees int) string {
	return inr.Sprintf("₹%d", rupees)
}
