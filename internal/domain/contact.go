package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern      = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	postalCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{3,10}$`)
	phoneSeparators   = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

// ContactInfo is an immutable, self-validating address block. Email and phone
// are optional; the postal address fields are not.
type ContactInfo struct {
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

func NewContactInfo(email, phone, address, city, state, country, postalCode string) (ContactInfo, error) {
	c := ContactInfo{
		Email:      strings.TrimSpace(email),
		Phone:      strings.TrimSpace(phone),
		Address:    strings.TrimSpace(address),
		City:       strings.TrimSpace(city),
		State:      strings.TrimSpace(state),
		Country:    strings.TrimSpace(country),
		PostalCode: strings.TrimSpace(postalCode),
	}
	if err := c.validate(); err != nil {
		return ContactInfo{}, err
	}
	return c, nil
}

// ContactInfoUpdate carries optional overrides; nil fields keep the current value.
type ContactInfoUpdate struct {
	Email      *string
	Phone      *string
	Address    *string
	City       *string
	State      *string
	Country    *string
	PostalCode *string
}

// Update merges non-nil overrides into a new value, re-validating the result.
func (c ContactInfo) Update(u ContactInfoUpdate) (ContactInfo, error) {
	merged := c
	if u.Email != nil {
		merged.Email = strings.TrimSpace(*u.Email)
	}
	if u.Phone != nil {
		merged.Phone = strings.TrimSpace(*u.Phone)
	}
	if u.Address != nil {
		merged.Address = strings.TrimSpace(*u.Address)
	}
	if u.City != nil {
		merged.City = strings.TrimSpace(*u.City)
	}
	if u.State != nil {
		merged.State = strings.TrimSpace(*u.State)
	}
	if u.Country != nil {
		merged.Country = strings.TrimSpace(*u.Country)
	}
	if u.PostalCode != nil {
		merged.PostalCode = strings.TrimSpace(*u.PostalCode)
	}
	if err := merged.validate(); err != nil {
		return ContactInfo{}, err
	}
	return merged, nil
}

func (c ContactInfo) validate() error {
	if c.Email != "" && !emailPattern.MatchString(c.Email) {
		return fmt.Errorf("invalid email address %q", c.Email)
	}
	if c.Phone != "" && !phonePattern.MatchString(phoneSeparators.Replace(c.Phone)) {
		return fmt.Errorf("invalid phone number %q", c.Phone)
	}
	if c.Address == "" {
		return fmt.Errorf("address is required")
	}
	if c.City == "" {
		return fmt.Errorf("city is required")
	}
	if c.State == "" {
		return fmt.Errorf("state is required")
	}
	if c.Country == "" {
		return fmt.Errorf("country is required")
	}
	if !postalCodePattern.MatchString(c.PostalCode) {
		return fmt.Errorf("invalid postal code %q, expected 3-10 alphanumeric characters", c.PostalCode)
	}
	return nil
}
