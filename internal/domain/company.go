package domain

import (
	"time"

	"github.com/google/uuid"
)

type CompanyType string

const (
	CompanyTypeClient   CompanyType = "CLIENT"
	CompanyTypeProvider CompanyType = "PROVIDER"
)

func (t CompanyType) Valid() bool {
	return t == CompanyTypeClient || t == CompanyTypeProvider
}

// Company is a CLIENT or PROVIDER organization. Companies are never deleted
// physically; callers deactivate them instead.
type Company struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Type             CompanyType `json:"type"`
	Address          string      `json:"address"`
	Phone            string      `json:"phone"`
	Email            string      `json:"email"`
	ContactPerson    string      `json:"contact_person"`
	TaxID            string      `json:"tax_id"`
	IsActive         bool        `json:"is_active"`
	RegistrationDate time.Time   `json:"registration_date"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// NewCompany validates every field and reports all violations at once.
func NewCompany(name string, companyType CompanyType, address, phone, email, contactPerson, taxID string) (*Company, error) {
	verr := &ValidationErrors{}
	validateCompanyFields(verr, name, companyType, phone, email, contactPerson)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Company{
		ID:               uuid.NewString(),
		Name:             name,
		Type:             companyType,
		Address:          address,
		Phone:            phone,
		Email:            email,
		ContactPerson:    contactPerson,
		TaxID:            taxID,
		IsActive:         true,
		RegistrationDate: now,
		UpdatedAt:        now,
	}, nil
}

func validateCompanyFields(verr *ValidationErrors, name string, companyType CompanyType, phone, email, contactPerson string) {
	if len(name) < 2 {
		verr.Add("name must be at least 2 characters")
	}
	if !companyType.Valid() {
		verr.Add("type must be CLIENT or PROVIDER, got %q", companyType)
	}
	if len(phone) < 10 {
		verr.Add("phone must be at least 10 characters")
	}
	if !emailPattern.MatchString(email) {
		verr.Add("invalid email address %q", email)
	}
	if len(contactPerson) < 2 {
		verr.Add("contact person must be at least 2 characters")
	}
}

func (c *Company) Activate() {
	c.IsActive = true
	c.UpdatedAt = time.Now()
}

func (c *Company) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
}

// CompanyUpdate carries the fields callers are allowed to change.
// Type, registration date and active flag are deliberately absent.
type CompanyUpdate struct {
	Name          *string
	Address       *string
	Phone         *string
	Email         *string
	ContactPerson *string
	TaxID         *string
}

// Update applies the allowlisted overrides, re-validating the merged result
// before any field is committed.
func (c *Company) Update(u CompanyUpdate) error {
	merged := *c
	if u.Name != nil {
		merged.Name = *u.Name
	}
	if u.Address != nil {
		merged.Address = *u.Address
	}
	if u.Phone != nil {
		merged.Phone = *u.Phone
	}
	if u.Email != nil {
		merged.Email = *u.Email
	}
	if u.ContactPerson != nil {
		merged.ContactPerson = *u.ContactPerson
	}
	if u.TaxID != nil {
		merged.TaxID = *u.TaxID
	}

	verr := &ValidationErrors{}
	validateCompanyFields(verr, merged.Name, merged.Type, merged.Phone, merged.Email, merged.ContactPerson)
	if err := verr.OrNil(); err != nil {
		return err
	}

	merged.UpdatedAt = time.Now()
	*c = merged
	return nil
}
