package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validRentalParams(t *testing.T) NewRentalParams {
	t.Helper()
	rate, err := NewMoney(2000, "USD")
	assert.NoError(t, err)
	deposit, err := NewMoney(4000, "USD")
	assert.NoError(t, err)
	return NewRentalParams{
		EquipmentID:       "eq-1",
		ClientCompanyID:   "client-1",
		ProviderCompanyID: "provider-1",
		StartDate:         time.Now(),
		EndDate:           time.Now().AddDate(1, 0, 0),
		MonthlyRate:       rate,
		SecurityDeposit:   deposit,
		PaymentTerms:      "NET30",
	}
}

func TestNewRental(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		rental, err := NewRental(validRentalParams(t))
		assert.NoError(t, err)
		assert.NotEmpty(t, rental.ID)
		assert.Equal(t, RentalStatusActive, rental.Status)
	})

	t.Run("Reports All Violations At Once", func(t *testing.T) {
		_, err := NewRental(NewRentalParams{})
		assert.Error(t, err)

		var verr *ValidationErrors
		assert.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Violations, 5)
	})

	t.Run("Start Must Precede End", func(t *testing.T) {
		p := validRentalParams(t)
		p.EndDate = p.StartDate
		_, err := NewRental(p)
		assert.ErrorContains(t, err, "start date must be before end date")
	})

	t.Run("Deposit Currency Must Match Rate", func(t *testing.T) {
		p := validRentalParams(t)
		p.SecurityDeposit, _ = NewMoney(4000, "EUR")
		_, err := NewRental(p)
		assert.ErrorContains(t, err, "security deposit currency")
	})
}

func TestRental_TerminalStates(t *testing.T) {
	newActive := func() *Rental {
		rental, err := NewRental(validRentalParams(t))
		assert.NoError(t, err)
		return rental
	}

	t.Run("Complete Is One Way", func(t *testing.T) {
		rental := newActive()
		assert.NoError(t, rental.Complete())
		assert.Equal(t, RentalStatusCompleted, rental.Status)

		assert.ErrorIs(t, rental.Terminate("too late"), ErrInvalidTransition)
		assert.ErrorIs(t, rental.Complete(), ErrInvalidTransition)
	})

	t.Run("Terminate Records Reason", func(t *testing.T) {
		rental := newActive()
		assert.NoError(t, rental.Terminate("client insolvency"))
		assert.Equal(t, RentalStatusTerminated, rental.Status)
		assert.Contains(t, rental.Notes, "Terminated")
		assert.Contains(t, rental.Notes, "client insolvency")
	})

	t.Run("Terminated Cannot Be Extended Or Repriced", func(t *testing.T) {
		rental := newActive()
		assert.NoError(t, rental.Terminate("x"))

		assert.ErrorIs(t, rental.ExtendRental(rental.EndDate.AddDate(0, 1, 0)), ErrInvalidTransition)

		rate, _ := NewMoney(2500, "USD")
		assert.ErrorIs(t, rental.UpdateMonthlyRate(rate), ErrInvalidTransition)
	})
}

func TestRental_MarkExpired(t *testing.T) {
	t.Run("Requires Passed End Date", func(t *testing.T) {
		rental, _ := NewRental(validRentalParams(t))
		assert.Error(t, rental.MarkExpired())
		assert.Equal(t, RentalStatusActive, rental.Status)
	})

	t.Run("Success After End Date", func(t *testing.T) {
		p := validRentalParams(t)
		p.StartDate = time.Now().AddDate(0, -13, 0)
		p.EndDate = time.Now().AddDate(0, -1, 0)
		rental, err := NewRental(p)
		assert.NoError(t, err)

		assert.True(t, rental.HasExpired())
		assert.Negative(t, rental.DaysUntilExpiry())
		assert.NoError(t, rental.MarkExpired())
		assert.Equal(t, RentalStatusExpired, rental.Status)
	})
}

func TestRental_ExtendRental(t *testing.T) {
	rental, _ := NewRental(validRentalParams(t))

	t.Run("Must Be After Current End", func(t *testing.T) {
		assert.Error(t, rental.ExtendRental(rental.EndDate))
		assert.Error(t, rental.ExtendRental(rental.EndDate.AddDate(0, -1, 0)))
	})

	t.Run("Success", func(t *testing.T) {
		newEnd := rental.EndDate.AddDate(0, 6, 0)
		assert.NoError(t, rental.ExtendRental(newEnd))
		assert.Equal(t, newEnd, rental.EndDate)
		assert.Contains(t, rental.Notes, "Extended")
	})
}

func TestRental_UpdateMonthlyRate(t *testing.T) {
	rental, _ := NewRental(validRentalParams(t))

	zero, _ := NewMoney(0, "USD")
	assert.Error(t, rental.UpdateMonthlyRate(zero))

	newRate, _ := NewMoney(2500, "USD")
	assert.NoError(t, rental.UpdateMonthlyRate(newRate))
	assert.True(t, rental.MonthlyRate.Equals(newRate))
}

func TestRental_Revenue(t *testing.T) {
	usd := func(amount float64) Money {
		m, err := NewMoney(amount, "USD")
		assert.NoError(t, err)
		return m
	}

	makeRental := func(start, end time.Time) *Rental {
		p := validRentalParams(t)
		p.StartDate = start
		p.EndDate = end
		rental, err := NewRental(p)
		assert.NoError(t, err)
		return rental
	}

	t.Run("Whole Months", func(t *testing.T) {
		start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		rental := makeRental(start, start.AddDate(1, 0, 0))
		total, err := rental.CalculateTotalRevenue()
		assert.NoError(t, err)
		assert.True(t, total.Equals(usd(24000)))
	})

	t.Run("Partial Month Does Not Count", func(t *testing.T) {
		start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		rental := makeRental(start, time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC))
		total, err := rental.CalculateTotalRevenue()
		assert.NoError(t, err)
		assert.True(t, total.Equals(usd(4000)), "2 whole months, got %s", total)
	})

	t.Run("Minimum One Month", func(t *testing.T) {
		start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		rental := makeRental(start, start.AddDate(0, 0, 10))
		total, err := rental.CalculateTotalRevenue()
		assert.NoError(t, err)
		assert.True(t, total.Equals(usd(2000)))
	})

	t.Run("Actual Revenue Caps At Today While Active", func(t *testing.T) {
		rental := makeRental(time.Now().AddDate(0, -2, -5), time.Now().AddDate(1, 0, 0))
		actual, err := rental.CalculateActualRevenue()
		assert.NoError(t, err)
		assert.True(t, actual.Equals(usd(4000)), "2 months elapsed, got %s", actual)
	})
}
