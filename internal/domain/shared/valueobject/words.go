package valueobject

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fgnsb/backend/internal/domain/shared"
)

var (
	unitWords = [10]string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teenWords = [10]string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tenWords  = [10]string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

	// Scale words by 3-digit group, least significant first. There is
	// deliberately nothing beyond Billion; see MaxAmount.
	scaleWords = [4]string{"", "Thousand", "Million", "Billion"}
)

// NumberToWords converts a non-negative integer below one trillion to
// English words, e.g. 50000000 becomes "Fifty Million". Zero yields
// "Zero". Compound tens hyphenate ("Twenty-Five").
func NumberToWords(n int64) string {
	if n == 0 {
		return "Zero"
	}

	groups := make([]int64, 0, len(scaleWords))
	for v := n; v > 0; v /= 1000 {
		groups = append(groups, v%1000)
	}

	parts := make([]string, 0, len(groups))
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		part := groupToWords(groups[i])
		if scaleWords[i] != "" {
			part += " " + scaleWords[i]
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}

// AmountInWords spells a naira amount out in English, appending the
// kobo clause only when the fractional part is nonzero:
//
//	AmountInWords(decimal.NewFromFloat(50000000.25))
//	  -> "Fifty Million Naira and Twenty-Five Kobo"
//
// The amount is rounded to two decimal places before the naira/kobo
// split. Negative amounts and amounts that round to one trillion or
// beyond return shared.ErrAmountOutOfRange.
func AmountInWords(amount decimal.Decimal) (string, error) {
	rounded := amount.Round(2)
	if rounded.IsNegative() {
		return "", fmt.Errorf("amount %s is negative: %w", amount, shared.ErrAmountOutOfRange)
	}
	if rounded.GreaterThanOrEqual(MaxAmount) {
		return "", fmt.Errorf("amount %s is beyond the billions range: %w", amount, shared.ErrAmountOutOfRange)
	}

	naira := rounded.IntPart()
	kobo := rounded.Sub(decimal.NewFromInt(naira)).Mul(decimal.NewFromInt(100)).IntPart()

	result := NumberToWords(naira) + " Naira"
	if kobo > 0 {
		result += " and " + NumberToWords(kobo) + " Kobo"
	}
	return result, nil
}

// groupToWords spells a 3-digit group in [1, 999]; zero yields "".
func groupToWords(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 10:
		return unitWords[n]
	case n < 20:
		return teenWords[n-10]
	case n < 100:
		if n%10 == 0 {
			return tenWords[n/10]
		}
		return tenWords[n/10] + "-" + unitWords[n%10]
	default:
		hundreds := unitWords[n/100] + " Hundred"
		if n%100 == 0 {
			return hundreds
		}
		return hundreds + " and " + groupToWords(n%100)
	}
}
