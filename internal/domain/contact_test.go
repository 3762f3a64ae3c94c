package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validContact(t *testing.T) ContactInfo {
	t.Helper()
	c, err := NewContactInfo("ops@arcticfresh.example", "+1 (555) 123-4567",
		"12 Harbor Rd", "Boston", "MA", "USA", "02110")
	assert.NoError(t, err)
	return c
}

func TestNewContactInfo(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		c := validContact(t)
		assert.Equal(t, "Boston", c.City)
		assert.Equal(t, "+1 (555) 123-4567", c.Phone)
	})

	t.Run("Email And Phone Are Optional", func(t *testing.T) {
		_, err := NewContactInfo("", "", "12 Harbor Rd", "Boston", "MA", "USA", "02110")
		assert.NoError(t, err)
	})

	t.Run("Invalid Email", func(t *testing.T) {
		_, err := NewContactInfo("not-an-email", "", "12 Harbor Rd", "Boston", "MA", "USA", "02110")
		assert.ErrorContains(t, err, "invalid email")
	})

	t.Run("Invalid Phone", func(t *testing.T) {
		_, err := NewContactInfo("", "123", "12 Harbor Rd", "Boston", "MA", "USA", "02110")
		assert.ErrorContains(t, err, "invalid phone")
	})

	t.Run("Missing Address Fields", func(t *testing.T) {
		_, err := NewContactInfo("", "", "", "Boston", "MA", "USA", "02110")
		assert.ErrorContains(t, err, "address is required")

		_, err = NewContactInfo("", "", "12 Harbor Rd", "", "MA", "USA", "02110")
		assert.ErrorContains(t, err, "city is required")
	})

	t.Run("Invalid Postal Code", func(t *testing.T) {
		_, err := NewContactInfo("", "", "12 Harbor Rd", "Boston", "MA", "USA", "!!")
		assert.ErrorContains(t, err, "postal code")
	})

	t.Run("Trims Whitespace", func(t *testing.T) {
		c, err := NewContactInfo("", "", "  12 Harbor Rd ", " Boston ", "MA", "USA", "02110")
		assert.NoError(t, err)
		assert.Equal(t, "12 Harbor Rd", c.Address)
		assert.Equal(t, "Boston", c.City)
	})
}

func TestContactInfo_Update(t *testing.T) {
	t.Run("Merges Only Provided Fields", func(t *testing.T) {
		original := validContact(t)
		newCity := "Cambridge"
		updated, err := original.Update(ContactInfoUpdate{City: &newCity})
		assert.NoError(t, err)
		assert.Equal(t, "Cambridge", updated.City)
		assert.Equal(t, original.Address, updated.Address)
		// value semantics: the original is untouched
		assert.Equal(t, "Boston", original.City)
	})

	t.Run("Rejects Invalid Merge", func(t *testing.T) {
		original := validContact(t)
		badEmail := "nope"
		_, err := original.Update(ContactInfoUpdate{Email: &badEmail})
		assert.Error(t, err)
	})
}
