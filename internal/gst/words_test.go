package gst

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		amount   string
		expected string
	}{
		{"0", "Zero Only"},
		{"1", "Indian Rupee One Only"},
		{"19", "Indian Rupee Nineteen Only"},
		{"40", "Indian Rupee Forty Only"},
		{"99", "Indian Rupee Ninety Nine Only"},
		{"100", "Indian Rupee One Hundred Only"},
		{"512", "Indian Rupee Five Hundred Twelve Only"},
		{"1000", "Indian Rupee One Thousand Only"},
		{"100000", "Indian Rupee One Lakh Only"},
		{"10000000", "Indian Rupee One Crore Only"},
		{"12345678", "Indian Rupee One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Only"},
		// zero-valued groups are omitted entirely
		{"10000500", "Indian Rupee One Crore Five Hundred Only"},
		{"20000000", "Indian Rupee Two Crore Only"},
		// crore-scale enterprise totals, 11 rupee digits
		{"9999999999", "Indian Rupee Nine Hundred Ninety Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine Only"},
		// crore counts of 1000 and above group recursively
		{"10000000000", "Indian Rupee One Thousand Crore Only"},
		{"15000000000", "Indian Rupee One Thousand Five Hundred Crore Only"},
		{"20000000000", "Indian Rupee Two Thousand Crore Only"},
		{"123456789012345", "Indian Rupee One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Crore Ninety Lakh Twelve Thousand Three Hundred Forty Five Only"},
	}
	for _, tc := range cases {
		t.Run(tc.amount, func(t *testing.T) {
			assert.Equal(t, tc.expected, AmountInWords(d(tc.amount)))
		})
	}
}

func TestAmountInWords_Paise(t *testing.T) {
	t.Run("rendered_when_nonzero", func(t *testing.T) {
		assert.Equal(t, "Indian Rupee One Hundred and Fifty Paise Only", AmountInWords(d("100.50")))
		assert.Equal(t, "Indian Rupee One and One Paise Only", AmountInWords(d("1.01")))
	})

	t.Run("omitted_when_zero", func(t *testing.T) {
		assert.Equal(t, "Indian Rupee One Hundred Only", AmountInWords(d("100.00")))
	})

	t.Run("paise_only", func(t *testing.T) {
		assert.Equal(t, "Indian Rupee Zero and Fifty Paise Only", AmountInWords(d("0.50")))
	})
}

func TestAmountInWords_Shape(t *testing.T) {
	out := AmountInWords(d("10000000"))
	assert.Contains(t, out, "One Crore")
	assert.True(t, strings.HasSuffix(out, "Only"))
	assert.NotContains(t, out, "  ", "no redundant whitespace")
	assert.NotContains(t, out, "Zero Crore")
}
