package valueobject

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fgnsb/backend/internal/domain/shared"
)

// MaxAmount is the exclusive upper bound for representable amounts.
// The words formatter carries no scale word beyond Billion, so an
// amount at or above one trillion naira cannot be spelled out.
var MaxAmount = decimal.New(1, 12)

// Money is a value object representing an amount in Nigerian Naira.
// It is immutable - all operations return new Money instances.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates Money from a decimal naira amount.
// Negative amounts and amounts at or above one trillion are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("amount %s is negative: %w", amount, shared.ErrAmountOutOfRange)
	}
	if amount.GreaterThanOrEqual(MaxAmount) {
		return Money{}, fmt.Errorf("amount %s is beyond the billions range: %w", amount, shared.ErrAmountOutOfRange)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromFloat creates Money from a float64 value
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// NewMoneyFromString creates Money from a string representation
func NewMoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string: %w", err)
	}
	return NewMoney(d)
}

// ZeroMoney returns a zero-naira Money
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive returns true if the amount is positive
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Add returns a new Money with the sum of both amounts.
// The sum must stay inside the representable range.
func (m Money) Add(other Money) (Money, error) {
	return NewMoney(m.amount.Add(other.amount))
}

// Subtract returns a new Money with the difference.
// The difference must not go negative.
func (m Money) Subtract(other Money) (Money, error) {
	return NewMoney(m.amount.Sub(other.amount))
}

// Equals returns true if both amounts are equal
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan returns true if this Money is less than the other
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// GreaterThan returns true if this Money is greater than the other
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// NairaKobo splits the amount into whole naira and kobo parts.
// The amount is rounded to two decimal places first (half away from
// zero), so 1.999 splits as 2 naira 0 kobo rather than 1 naira 100
// kobo.
func (m Money) NairaKobo() (naira int64, kobo int64) {
	rounded := m.amount.Round(2)
	naira = rounded.IntPart()
	kobo = rounded.Sub(decimal.NewFromInt(naira)).Mul(decimal.NewFromInt(100)).IntPart()
	return naira, kobo
}

// InWords spells the amount out in English Naira and Kobo
func (m Money) InWords() (string, error) {
	return AmountInWords(m.amount)
}

// String returns the amount formatted the way the paper form prints
// it, e.g. "N50,000,000.00"
func (m Money) String() string {
	return "N" + m.FormatFixed()
}

// FormatFixed returns the amount with thousand separators and two
// decimal places, e.g. "50,000,000.00"
func (m Money) FormatFixed() string {
	fixed := m.amount.StringFixed(2)
	parts := strings.SplitN(fixed, ".", 2)
	return addThousandSeparators(parts[0]) + "." + parts[1]
}

// StringFixed returns the bare amount with the given decimal places
func (m Money) StringFixed(places int32) string {
	return m.amount.StringFixed(places)
}

// Float64 returns the amount as a float64 (may lose precision)
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// MarshalJSON implements json.Marshaler; Money serializes as its
// fixed two-decimal string, the currency being implicit.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.amount.StringFixed(2))
}

// UnmarshalJSON implements json.Unmarshaler. Values pass through the
// NewMoney validation, so out-of-range amounts fail to decode.
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewMoneyFromString(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func addThousandSeparators(intPart string) string {
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	if len(intPart) <= 3 {
		if neg {
			return "-" + intPart
		}
		return intPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
