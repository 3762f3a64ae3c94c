package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Money is an immutable amount in a single currency, held at two decimal
// places. Arithmetic returns new values; the amount can never go negative.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney rounds the amount half up to two decimals and rejects negatives
// and malformed currency codes.
func NewMoney(amount float64, currency string) (Money, error) {
	return newMoney(decimal.NewFromFloat(amount), currency)
}

func newMoney(amount decimal.Decimal, currency string) (Money, error) {
	if !currencyCodePattern.MatchString(currency) {
		return Money{}, fmt.Errorf("invalid currency code %q, expected 3 uppercase letters", currency)
	}
	amount = amount.Round(2)
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount, currency: currency}, nil
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() string        { return m.currency }
func (m Money) IsZero() bool            { return m.amount.IsZero() }
func (m Money) IsPositive() bool        { return m.amount.IsPositive() }

func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + m.currency
}

func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return newMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract fails before construction when the result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return newMoney(result, m.currency)
}

func (m Money) Multiply(factor float64) (Money, error) {
	if factor < 0 {
		return Money{}, ErrNegativeAmount
	}
	return newMoney(m.amount.Mul(decimal.NewFromFloat(factor)), m.currency)
}

func (m Money) Divide(divisor float64) (Money, error) {
	if divisor == 0 {
		return Money{}, errors.New("division by zero")
	}
	if divisor < 0 {
		return Money{}, ErrNegativeAmount
	}
	return newMoney(m.amount.Div(decimal.NewFromFloat(divisor)), m.currency)
}

type moneyJSON struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.Float64(), Currency: m.currency})
}

// UnmarshalJSON runs the decoded value through the constructor so a Money
// read off the wire carries the same guarantees as one built in code.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewMoney(raw.Amount, raw.Currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Money) sameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}
