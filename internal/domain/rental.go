package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RentalStatus string

const (
	RentalStatusActive     RentalStatus = "ACTIVE"
	RentalStatusCompleted  RentalStatus = "COMPLETED"
	RentalStatusTerminated RentalStatus = "TERMINATED"
	RentalStatusExpired    RentalStatus = "EXPIRED"
)

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalStatusActive, RentalStatusCompleted, RentalStatusTerminated, RentalStatusExpired:
		return true
	}
	return false
}

type rentalAction string

const (
	rentalActionComplete  rentalAction = "complete"
	rentalActionTerminate rentalAction = "terminate"
	rentalActionExpire    rentalAction = "expire"
	rentalActionExtend    rentalAction = "extend"
	rentalActionReprice   rentalAction = "update rate"
)

// rentalTransitions is the single source of truth for the rental lifecycle:
// ACTIVE is the only non-terminal state, and every action is listed here.
var rentalTransitions = map[RentalStatus]map[rentalAction]RentalStatus{
	RentalStatusActive: {
		rentalActionComplete:  RentalStatusCompleted,
		rentalActionTerminate: RentalStatusTerminated,
		rentalActionExpire:    RentalStatusExpired,
		rentalActionExtend:    RentalStatusActive,
		rentalActionReprice:   RentalStatusActive,
	},
}

// Rental is the aggregate root binding one Equipment to one CLIENT company
// for a date range at a monthly rate.
type Rental struct {
	ID                string       `json:"id"`
	EquipmentID       string       `json:"equipment_id"`
	ClientCompanyID   string       `json:"client_company_id"`
	ProviderCompanyID string       `json:"provider_company_id"`
	StartDate         time.Time    `json:"start_date"`
	EndDate           time.Time    `json:"end_date"`
	MonthlyRate       Money        `json:"monthly_rate"`
	SecurityDeposit   Money        `json:"security_deposit"`
	Status            RentalStatus `json:"status"`
	PaymentTerms      string       `json:"payment_terms"`
	ContractTerms     string       `json:"contract_terms"`
	Notes             string       `json:"notes"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

type NewRentalParams struct {
	EquipmentID       string
	ClientCompanyID   string
	ProviderCompanyID string
	StartDate         time.Time
	EndDate           time.Time
	MonthlyRate       Money
	SecurityDeposit   Money
	PaymentTerms      string
	ContractTerms     string
	Notes             string
}

// NewRental validates the full contract and reports every violation at once.
func NewRental(p NewRentalParams) (*Rental, error) {
	verr := &ValidationErrors{}
	if p.EquipmentID == "" {
		verr.Add("equipment id is required")
	}
	if p.ClientCompanyID == "" {
		verr.Add("client company id is required")
	}
	if p.ProviderCompanyID == "" {
		verr.Add("provider company id is required")
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		verr.Add("start and end dates are required")
	} else if !p.StartDate.Before(p.EndDate) {
		verr.Add("start date must be before end date")
	}
	if !p.MonthlyRate.IsPositive() {
		verr.Add("monthly rate must be positive")
	}
	if p.SecurityDeposit.Currency() != "" && p.SecurityDeposit.Currency() != p.MonthlyRate.Currency() {
		verr.Add("security deposit currency must match monthly rate")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Rental{
		ID:                uuid.NewString(),
		EquipmentID:       p.EquipmentID,
		ClientCompanyID:   p.ClientCompanyID,
		ProviderCompanyID: p.ProviderCompanyID,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		MonthlyRate:       p.MonthlyRate,
		SecurityDeposit:   p.SecurityDeposit,
		Status:            RentalStatusActive,
		PaymentTerms:      p.PaymentTerms,
		ContractTerms:     p.ContractTerms,
		Notes:             p.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

func (r *Rental) transition(action rentalAction) error {
	next, ok := rentalTransitions[r.Status][action]
	if !ok {
		return fmt.Errorf("%w: cannot %s a %s rental", ErrInvalidTransition, action, r.Status)
	}
	r.Status = next
	r.UpdatedAt = time.Now()
	return nil
}

// Terminate ends the contract early, recording a timestamped reason note.
func (r *Rental) Terminate(reason string) error {
	if err := r.transition(rentalActionTerminate); err != nil {
		return err
	}
	r.appendNote("Terminated", reason)
	return nil
}

func (r *Rental) Complete() error {
	return r.transition(rentalActionComplete)
}

// MarkExpired flips the contract to EXPIRED once the end date has passed.
func (r *Rental) MarkExpired() error {
	if !r.HasExpired() {
		return fmt.Errorf("rental has not passed its end date %s", r.EndDate.Format("2006-01-02"))
	}
	return r.transition(rentalActionExpire)
}

// ExtendRental pushes the end date out. Only ACTIVE rentals can be extended,
// and only to a date strictly after the current end date.
func (r *Rental) ExtendRental(newEndDate time.Time) error {
	if _, ok := rentalTransitions[r.Status][rentalActionExtend]; !ok {
		return fmt.Errorf("%w: cannot extend a %s rental", ErrInvalidTransition, r.Status)
	}
	if !newEndDate.After(r.EndDate) {
		return fmt.Errorf("new end date must be after current end date %s", r.EndDate.Format("2006-01-02"))
	}
	r.EndDate = newEndDate
	r.appendNote("Extended", "new end date "+newEndDate.Format("2006-01-02"))
	r.UpdatedAt = time.Now()
	return nil
}

func (r *Rental) UpdateMonthlyRate(newRate Money) error {
	if _, ok := rentalTransitions[r.Status][rentalActionReprice]; !ok {
		return fmt.Errorf("%w: cannot update rate of a %s rental", ErrInvalidTransition, r.Status)
	}
	if !newRate.IsPositive() {
		return fmt.Errorf("monthly rate must be positive")
	}
	r.MonthlyRate = newRate
	r.UpdatedAt = time.Now()
	return nil
}

func (r *Rental) HasExpired() bool {
	return time.Now().After(r.EndDate)
}

// DaysUntilExpiry is negative once the rental is past its end date.
func (r *Rental) DaysUntilExpiry() int {
	return int(time.Until(r.EndDate).Hours() / 24)
}

// CalculateTotalRevenue is the monthly rate times the whole-month span of the
// contract, never less than one month.
func (r *Rental) CalculateTotalRevenue() (Money, error) {
	return r.revenueThrough(r.EndDate)
}

// CalculateActualRevenue caps the span at today while the rental is ACTIVE.
func (r *Rental) CalculateActualRevenue() (Money, error) {
	end := r.EndDate
	if r.Status == RentalStatusActive {
		if now := time.Now(); now.Before(end) {
			end = now
		}
	}
	return r.revenueThrough(end)
}

func (r *Rental) revenueThrough(end time.Time) (Money, error) {
	months := wholeMonthsBetween(r.StartDate, end)
	if months < 1 {
		months = 1
	}
	return r.MonthlyRate.Multiply(float64(months))
}

func wholeMonthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	return months
}

func (r *Rental) appendNote(event, detail string) {
	note := fmt.Sprintf("[%s] %s: %s", time.Now().Format(time.RFC3339), event, detail)
	if r.Notes == "" {
		r.Notes = note
	} else {
		r.Notes += "\n" + note
	}
}
