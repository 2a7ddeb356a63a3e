package utils

import "fmt"

// Dollars formats integer cents as a dollar string for display. Prices stay in
// cents everywhere else; no floating point is involved.
func Dollars(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
