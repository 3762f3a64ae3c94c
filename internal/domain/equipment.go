package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type EquipmentStatus string

const (
	EquipmentStatusAvailable    EquipmentStatus = "AVAILABLE"
	EquipmentStatusRented       EquipmentStatus = "RENTED"
	EquipmentStatusMaintenance  EquipmentStatus = "MAINTENANCE"
	EquipmentStatusOutOfService EquipmentStatus = "OUT_OF_SERVICE"
)

type EquipmentCondition string

const (
	EquipmentConditionNew  EquipmentCondition = "NEW"
	EquipmentConditionGood EquipmentCondition = "GOOD"
	EquipmentConditionFair EquipmentCondition = "FAIR"
	EquipmentConditionPoor EquipmentCondition = "POOR"
)

func (c EquipmentCondition) Valid() bool {
	switch c {
	case EquipmentConditionNew, EquipmentConditionGood, EquipmentConditionFair, EquipmentConditionPoor:
		return true
	}
	return false
}

// Equipment is a physical cold-chain asset owned by a PROVIDER company.
type Equipment struct {
	ID               string             `json:"id"`
	OwnerCompanyID   string             `json:"owner_company_id"`
	CurrentClientID  string             `json:"current_client_id,omitempty"`
	Type             string             `json:"type"`
	Status           EquipmentStatus    `json:"status"`
	Condition        EquipmentCondition `json:"condition"`
	PurchasePrice    *Money             `json:"purchase_price,omitempty"`
	RentalRate       *Money             `json:"rental_rate,omitempty"`
	InstallationDate *time.Time         `json:"installation_date,omitempty"`
	WarrantyMonths   int                `json:"warranty_months"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func NewEquipment(ownerCompanyID, equipmentType string, condition EquipmentCondition) (*Equipment, error) {
	if ownerCompanyID == "" {
		return nil, fmt.Errorf("owner company id is required")
	}
	if equipmentType == "" {
		return nil, fmt.Errorf("equipment type is required")
	}
	if !condition.Valid() {
		return nil, fmt.Errorf("invalid condition %q", condition)
	}
	now := time.Now()
	return &Equipment{
		ID:             uuid.NewString(),
		OwnerCompanyID: ownerCompanyID,
		Type:           equipmentType,
		Status:         EquipmentStatusAvailable,
		Condition:      condition,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func (e *Equipment) IsAvailable() bool    { return e.Status == EquipmentStatusAvailable }
func (e *Equipment) IsRented() bool       { return e.Status == EquipmentStatusRented }
func (e *Equipment) IsInMaintenance() bool { return e.Status == EquipmentStatusMaintenance }
func (e *Equipment) IsOutOfService() bool { return e.Status == EquipmentStatusOutOfService }

// IsUnderWarranty reports whether the installation-date warranty window is
// still open. Equipment without an installation date has no warranty.
func (e *Equipment) IsUnderWarranty() bool {
	if e.InstallationDate == nil || e.WarrantyMonths <= 0 {
		return false
	}
	return time.Now().Before(e.InstallationDate.AddDate(0, e.WarrantyMonths, 0))
}

// Rent binds the equipment to a client. Only AVAILABLE equipment can be rented.
func (e *Equipment) Rent(clientCompanyID string) error {
	if clientCompanyID == "" {
		return fmt.Errorf("client company id is required")
	}
	if e.Status != EquipmentStatusAvailable {
		return fmt.Errorf("%w: cannot rent %s equipment", ErrInvalidTransition, e.Status)
	}
	e.Status = EquipmentStatusRented
	e.CurrentClientID = clientCompanyID
	e.UpdatedAt = time.Now()
	return nil
}

func (e *Equipment) ReturnFromRental() error {
	if e.Status != EquipmentStatusRented {
		return fmt.Errorf("%w: cannot return %s equipment", ErrInvalidTransition, e.Status)
	}
	e.Status = EquipmentStatusAvailable
	e.CurrentClientID = ""
	e.UpdatedAt = time.Now()
	return nil
}

func (e *Equipment) SendToMaintenance() error {
	if e.Status != EquipmentStatusAvailable && e.Status != EquipmentStatusRented {
		return fmt.Errorf("%w: cannot send %s equipment to maintenance", ErrInvalidTransition, e.Status)
	}
	e.Status = EquipmentStatusMaintenance
	e.UpdatedAt = time.Now()
	return nil
}

// ReturnFromMaintenance puts the unit back in service with its post-service
// condition. A unit that was rented when serviced goes back to RENTED.
func (e *Equipment) ReturnFromMaintenance(condition EquipmentCondition) error {
	if e.Status != EquipmentStatusMaintenance {
		return fmt.Errorf("%w: equipment is not in maintenance", ErrInvalidTransition)
	}
	if !condition.Valid() {
		return fmt.Errorf("invalid condition %q", condition)
	}
	if e.CurrentClientID != "" {
		e.Status = EquipmentStatusRented
	} else {
		e.Status = EquipmentStatusAvailable
	}
	e.Condition = condition
	e.UpdatedAt = time.Now()
	return nil
}

func (e *Equipment) Decommission() error {
	if e.Status == EquipmentStatusOutOfService {
		return fmt.Errorf("%w: equipment is already out of service", ErrInvalidTransition)
	}
	e.Status = EquipmentStatusOutOfService
	e.CurrentClientID = ""
	e.UpdatedAt = time.Now()
	return nil
}

func (e *Equipment) UpdateCondition(condition EquipmentCondition) error {
	if !condition.Valid() {
		return fmt.Errorf("invalid condition %q", condition)
	}
	e.Condition = condition
	e.UpdatedAt = time.Now()
	return nil
}

func (e *Equipment) SetRentalRate(rate Money) error {
	if !rate.IsPositive() {
		return fmt.Errorf("rental rate must be positive")
	}
	e.RentalRate = &rate
	e.UpdatedAt = time.Now()
	return nil
}
