package gst

import (
	"strings"

	"github.com/shopspring/decimal"
)

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// AmountInWords renders a non-negative rupee amount as English words using
// the Indian crore/lakh/thousand grouping, e.g.
//
//	AmountInWords(decimal.NewFromFloat(12345678.50))
//	// "Indian Rupee One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight and Fifty Paise Only"
//
// A zero amount yields "Zero Only". A non-zero paise fraction is always
// rendered. Any rupee amount representable as an int64 is supported; crore
// counts of 1000 and above group recursively ("One Thousand Crore").
func AmountInWords(amount decimal.Decimal) string {
	if amount.IsZero() {
		return "Zero Only"
	}

	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(hundred).Round(0).IntPart()
	if paise >= 100 {
		rupees++
		paise = 0
	}

	var parts []string
	if rupees > 0 {
		parts = indianGroups(rupees)
	} else {
		parts = []string{"Zero"}
	}

	out := "Indian Rupee " + strings.Join(parts, " ")
	if paise > 0 {
		out += " and " + belowHundred(paise) + " Paise"
	}
	return out + " Only"
}

// indianGroups decomposes n into crore/lakh/thousand groups. A crore count of
// 1000 or more recurses, so totals keep reading naturally past the usual
// enterprise range ("One Thousand Crore", "One Crore Crore") instead of
// overflowing the three-digit group converter.
func indianGroups(n int64) []string {
	var parts []string

	crore := n / 1e7
	rem := n % 1e7
	lakh := rem / 1e5
	rem %= 1e5
	thousand := rem / 1e3
	rem %= 1e3

	if crore > 0 {
		if crore >= 1000 {
			parts = append(parts, indianGroups(crore)...)
		} else {
			parts = append(parts, belowThousand(crore))
		}
		parts = append(parts, "Crore")
	}
	if lakh > 0 {
		parts = append(parts, belowThousand(lakh), "Lakh")
	}
	if thousand > 0 {
		parts = append(parts, belowThousand(thousand), "Thousand")
	}
	if rem > 0 {
		parts = append(parts, belowThousand(rem))
	}
	return parts
}

func belowThousand(n int64) string {
	if n >= 100 {
		out := onesWords[n/100] + " Hundred"
		if n%100 > 0 {
			out += " " + belowHundred(n%100)
		}
		return out
	}
	return belowHundred(n)
}

func belowHundred(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	out := tensWords[n/10]
	if n%10 > 0 {
		out += " " + onesWords[n%10]
	}
	return out
}
