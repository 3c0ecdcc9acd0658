package models

import (
	"fmt"
	"strings"
)

// FormatCurrency renders an amount in BDT for display. Whole amounts drop
// the fraction, matching how prices are shown on the order screens.
func FormatCurrency(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("৳%d", int64(amount))
	}
	return fmt.Sprintf("৳%.2f", amount)
}

// FormatPhoneNumber renders a stored mobile number with the +88 prefix and
// spacing for display.
func FormatPhoneNumber(phone string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	if strings.HasPrefix(cleaned, "88") {
		cleaned = cleaned[2:]
	}
	if len(cleaned) != 11 {
		return phone
	}
	return fmt.Sprintf("+88 %s %s %s", cleaned[:2], cleaned[2:6], cleaned[6:])
}
