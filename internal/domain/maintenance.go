package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

type MaintenanceType string

const (
	MaintenanceTypePreventive MaintenanceType = "PREVENTIVE"
	MaintenanceTypeCorrective MaintenanceType = "CORRECTIVE"
	MaintenanceTypeEmergency  MaintenanceType = "EMERGENCY"
)

func (t MaintenanceType) Valid() bool {
	switch t {
	case MaintenanceTypePreventive, MaintenanceTypeCorrective, MaintenanceTypeEmergency:
		return true
	}
	return false
}

type MaintenanceStatus string

const (
	MaintenanceStatusScheduled  MaintenanceStatus = "SCHEDULED"
	MaintenanceStatusInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceStatusCompleted  MaintenanceStatus = "COMPLETED"
	MaintenanceStatusCancelled  MaintenanceStatus = "CANCELLED"
	MaintenanceStatusPostponed  MaintenanceStatus = "POSTPONED"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceStatusScheduled, MaintenanceStatusInProgress, MaintenanceStatusCompleted,
		MaintenanceStatusCancelled, MaintenanceStatusPostponed:
		return true
	}
	return false
}

type maintenanceAction string

const (
	maintenanceActionStart      maintenanceAction = "start"
	maintenanceActionComplete   maintenanceAction = "complete"
	maintenanceActionCancel     maintenanceAction = "cancel"
	maintenanceActionPostpone   maintenanceAction = "postpone"
	maintenanceActionReschedule maintenanceAction = "reschedule"
)

// maintenanceTransitions is the full lifecycle in one table. Postponement is
// a momentary audit state: the postpone action lands back on SCHEDULED and
// the hop through POSTPONED is recorded in the findings note instead of the
// durable status. POSTPONED itself stays reachable for records loaded from
// storage in that state.
var maintenanceTransitions = map[MaintenanceStatus]map[maintenanceAction]MaintenanceStatus{
	MaintenanceStatusScheduled: {
		maintenanceActionStart:      MaintenanceStatusInProgress,
		maintenanceActionCancel:     MaintenanceStatusCancelled,
		maintenanceActionPostpone:   MaintenanceStatusScheduled,
		maintenanceActionReschedule: MaintenanceStatusScheduled,
	},
	MaintenanceStatusInProgress: {
		maintenanceActionComplete:   MaintenanceStatusCompleted,
		maintenanceActionCancel:     MaintenanceStatusCancelled,
		maintenanceActionReschedule: MaintenanceStatusScheduled,
	},
	MaintenanceStatusPostponed: {
		maintenanceActionCancel:     MaintenanceStatusCancelled,
		maintenanceActionReschedule: MaintenanceStatusScheduled,
	},
	MaintenanceStatusCancelled: {
		maintenanceActionCancel: MaintenanceStatusCancelled,
	},
}

// Maintenance is a scheduled or performed service event on one Equipment.
type Maintenance struct {
	ID                     string            `json:"id"`
	Title                  string            `json:"title"`
	Description            string            `json:"description"`
	Type                   MaintenanceType   `json:"type"`
	Category               string            `json:"category"`
	ScheduledDate          time.Time         `json:"scheduled_date"`
	EstimatedDurationHours *float64          `json:"estimated_duration_hours,omitempty"`
	ActualStartTime        *time.Time        `json:"actual_start_time,omitempty"`
	ActualEndTime          *time.Time        `json:"actual_end_time,omitempty"`
	NextScheduledDate      *time.Time        `json:"next_scheduled_date,omitempty"`
	Status                 MaintenanceStatus `json:"status"`
	EquipmentID            string            `json:"equipment_id"`
	ServiceRequestID       string            `json:"service_request_id,omitempty"`
	TechnicianID           string            `json:"technician_id,omitempty"`
	ClientCompanyID        string            `json:"client_company_id,omitempty"`
	ProviderCompanyID      string            `json:"provider_company_id,omitempty"`
	EstimatedCost          *float64          `json:"estimated_cost,omitempty"`
	ActualCost             *float64          `json:"actual_cost,omitempty"`
	PartsCost              float64           `json:"parts_cost"`
	LaborCost              float64           `json:"labor_cost"`
	WorkPerformed          string            `json:"work_performed"`
	PartsUsed              []string          `json:"parts_used,omitempty"`
	Findings               string            `json:"findings"`
	Recommendations        string            `json:"recommendations"`
	QualityRating          *int              `json:"quality_rating,omitempty"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
}

type NewMaintenanceParams struct {
	Title                  string
	Description            string
	Type                   MaintenanceType
	Category               string
	ScheduledDate          time.Time
	EstimatedDurationHours *float64
	EquipmentID            string
	ServiceRequestID       string
	TechnicianID           string
	ClientCompanyID        string
	ProviderCompanyID      string
	EstimatedCost          *float64
}

// NewMaintenance rejects the first invariant violation it finds.
func NewMaintenance(p NewMaintenanceParams) (*Maintenance, error) {
	if !p.Type.Valid() {
		return nil, fmt.Errorf("invalid maintenance type %q", p.Type)
	}
	if p.ScheduledDate.IsZero() {
		return nil, fmt.Errorf("scheduled date is required")
	}
	if p.EquipmentID == "" {
		return nil, fmt.Errorf("equipment id is required")
	}
	if p.EstimatedDurationHours != nil && *p.EstimatedDurationHours <= 0 {
		return nil, fmt.Errorf("estimated duration must be positive")
	}
	if p.EstimatedCost != nil && *p.EstimatedCost < 0 {
		return nil, fmt.Errorf("estimated cost cannot be negative")
	}

	now := time.Now()
	return &Maintenance{
		ID:                     uuid.NewString(),
		Title:                  p.Title,
		Description:            p.Description,
		Type:                   p.Type,
		Category:               p.Category,
		ScheduledDate:          p.ScheduledDate,
		EstimatedDurationHours: p.EstimatedDurationHours,
		Status:                 MaintenanceStatusScheduled,
		EquipmentID:            p.EquipmentID,
		ServiceRequestID:       p.ServiceRequestID,
		TechnicianID:           p.TechnicianID,
		ClientCompanyID:        p.ClientCompanyID,
		ProviderCompanyID:      p.ProviderCompanyID,
		EstimatedCost:          p.EstimatedCost,
		CreatedAt:              now,
		UpdatedAt:              now,
	}, nil
}

func (m *Maintenance) transition(action maintenanceAction) error {
	next, ok := maintenanceTransitions[m.Status][action]
	if !ok {
		return fmt.Errorf("%w: cannot %s a %s maintenance", ErrInvalidTransition, action, m.Status)
	}
	m.Status = next
	m.UpdatedAt = time.Now()
	return nil
}

// Start begins the work: SCHEDULED only, stamps the actual start time.
func (m *Maintenance) Start() error {
	if err := m.transition(maintenanceActionStart); err != nil {
		return err
	}
	now := time.Now()
	m.ActualStartTime = &now
	return nil
}

// Complete finishes IN_PROGRESS work, recording costs and the work notes.
// Preventive maintenance with no follow-up yet gets its next occurrence
// scheduled three months after the original scheduled date.
func (m *Maintenance) Complete(workPerformed string, actualCost, partsCost, laborCost float64) error {
	if actualCost < 0 || partsCost < 0 || laborCost < 0 {
		return fmt.Errorf("costs cannot be negative")
	}
	if err := m.transition(maintenanceActionComplete); err != nil {
		return err
	}
	now := time.Now()
	m.ActualEndTime = &now
	m.WorkPerformed = workPerformed
	m.ActualCost = &actualCost
	m.PartsCost = partsCost
	m.LaborCost = laborCost

	if m.Type == MaintenanceTypePreventive && m.NextScheduledDate == nil {
		next := m.ScheduledDate.AddDate(0, 3, 0)
		m.NextScheduledDate = &next
	}
	return nil
}

// Cancel is valid from every state except COMPLETED.
func (m *Maintenance) Cancel(reason string) error {
	if err := m.transition(maintenanceActionCancel); err != nil {
		return err
	}
	m.appendFinding("Cancelled", reason)
	return nil
}

// Postpone moves a SCHEDULED event to a strictly future date. The record
// passes through POSTPONED only as an audit note; the durable status stays
// SCHEDULED.
func (m *Maintenance) Postpone(newScheduledDate time.Time, reason string) error {
	if m.Status != MaintenanceStatusScheduled {
		return fmt.Errorf("%w: cannot postpone a %s maintenance", ErrInvalidTransition, m.Status)
	}
	if !newScheduledDate.After(time.Now()) {
		return fmt.Errorf("new scheduled date must be in the future")
	}
	old := m.ScheduledDate
	if err := m.transition(maintenanceActionPostpone); err != nil {
		return err
	}
	m.ScheduledDate = newScheduledDate
	m.appendFinding("Postponed", fmt.Sprintf("from %s to %s: %s",
		old.Format("2006-01-02"), newScheduledDate.Format("2006-01-02"), reason))
	return nil
}

// Reschedule resets any non-terminal event back to SCHEDULED at a future date.
func (m *Maintenance) Reschedule(newScheduledDate time.Time) error {
	if !newScheduledDate.After(time.Now()) {
		return fmt.Errorf("new scheduled date must be in the future")
	}
	if err := m.transition(maintenanceActionReschedule); err != nil {
		return err
	}
	m.ScheduledDate = newScheduledDate
	m.ActualStartTime = nil
	return nil
}

// RateQuality accepts a 1-5 rating on completed work only.
func (m *Maintenance) RateQuality(rating int) error {
	if m.Status != MaintenanceStatusCompleted {
		return fmt.Errorf("%w: can only rate completed maintenance", ErrInvalidTransition)
	}
	if rating < 1 || rating > 5 {
		return fmt.Errorf("quality rating must be between 1 and 5")
	}
	m.QualityRating = &rating
	m.UpdatedAt = time.Now()
	return nil
}

func (m *Maintenance) UpdateCosts(actualCost, partsCost, laborCost float64) error {
	if actualCost < 0 || partsCost < 0 || laborCost < 0 {
		return fmt.Errorf("costs cannot be negative")
	}
	m.ActualCost = &actualCost
	m.PartsCost = partsCost
	m.LaborCost = laborCost
	m.UpdatedAt = time.Now()
	return nil
}

// IsDue reports whether a scheduled event has reached its scheduled date.
func (m *Maintenance) IsDue() bool {
	return m.Status == MaintenanceStatusScheduled && !m.ScheduledDate.After(time.Now())
}

// IsOverdue compares at day granularity: today's date is past the scheduled date.
func (m *Maintenance) IsOverdue() bool {
	if m.Status != MaintenanceStatusScheduled {
		return false
	}
	today := time.Now().Truncate(24 * time.Hour)
	scheduled := m.ScheduledDate.Truncate(24 * time.Hour)
	return today.After(scheduled)
}

// CalculateActualDuration returns the worked hours rounded to two decimals,
// or nil when start or end time is missing.
func (m *Maintenance) CalculateActualDuration() *float64 {
	if m.ActualStartTime == nil || m.ActualEndTime == nil {
		return nil
	}
	hours := m.ActualEndTime.Sub(*m.ActualStartTime).Hours()
	rounded := math.Round(hours*100) / 100
	return &rounded
}

// IsOnTime is nil unless completed. Work is on time when it finished within
// the estimated duration window after the scheduled date; without an
// estimate the window defaults to one day.
func (m *Maintenance) IsOnTime() *bool {
	if m.Status != MaintenanceStatusCompleted || m.ActualEndTime == nil {
		return nil
	}
	window := 24 * time.Hour
	if m.EstimatedDurationHours != nil {
		window = time.Duration(*m.EstimatedDurationHours * float64(time.Hour))
	}
	onTime := !m.ActualEndTime.After(m.ScheduledDate.Add(window))
	return &onTime
}

// IsOnBudget is nil unless completed with both estimated and actual cost set.
func (m *Maintenance) IsOnBudget() *bool {
	if m.Status != MaintenanceStatusCompleted || m.EstimatedCost == nil || m.ActualCost == nil {
		return nil
	}
	onBudget := *m.ActualCost <= *m.EstimatedCost
	return &onBudget
}

// ScheduleNextPreventiveMaintenance applies the 3-month offset rule.
func (m *Maintenance) ScheduleNextPreventiveMaintenance() (time.Time, error) {
	if m.Type != MaintenanceTypePreventive {
		return time.Time{}, fmt.Errorf("only preventive maintenance can be auto-scheduled, got %s", m.Type)
	}
	next := m.ScheduledDate.AddDate(0, 3, 0)
	m.NextScheduledDate = &next
	m.UpdatedAt = time.Now()
	return next, nil
}

func (m *Maintenance) appendFinding(event, detail string) {
	note := fmt.Sprintf("[%s] %s: %s", time.Now().Format(time.RFC3339), event, detail)
	if m.Findings == "" {
		m.Findings = note
	} else {
		m.Findings += "\n" + note
	}
}
