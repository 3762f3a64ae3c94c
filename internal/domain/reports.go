package domain

import "time"

// Read-model aggregates returned by repository queries. These carry no
// behavior; the persistence layer shapes them straight from SQL.

type RevenueStats struct {
	ProviderCompanyID string  `json:"provider_company_id"`
	ActiveRentals     int     `json:"active_rentals"`
	CompletedRentals  int     `json:"completed_rentals"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageMonthlyRate float64 `json:"average_monthly_rate"`
	Currency          string  `json:"currency"`
}

type MonthlyRevenue struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
	Rentals int     `json:"rentals"`
}

type MaintenanceKPIs struct {
	ProviderCompanyID string   `json:"provider_company_id"`
	Scheduled         int      `json:"scheduled"`
	InProgress        int      `json:"in_progress"`
	Completed         int      `json:"completed"`
	Cancelled         int      `json:"cancelled"`
	Overdue           int      `json:"overdue"`
	AverageCost       float64  `json:"average_cost"`
	AverageRating     *float64 `json:"average_rating,omitempty"`
}

type MaintenanceCalendarEntry struct {
	MaintenanceID string          `json:"maintenance_id"`
	EquipmentID   string          `json:"equipment_id"`
	Title         string          `json:"title"`
	Type          MaintenanceType `json:"type"`
	ScheduledDate time.Time       `json:"scheduled_date"`
	TechnicianID  string          `json:"technician_id,omitempty"`
}

type CompanyStatistics struct {
	CompanyID         string `json:"company_id"`
	EquipmentOwned    int    `json:"equipment_owned"`
	ActiveRentals     int    `json:"active_rentals"`
	CompletedRentals  int    `json:"completed_rentals"`
	OpenMaintenances  int    `json:"open_maintenances"`
}

// MaintenancePriority ranks how urgently a unit needs service.
type MaintenancePriority string

const (
	MaintenancePriorityLow      MaintenancePriority = "LOW"
	MaintenancePriorityMedium   MaintenancePriority = "MEDIUM"
	MaintenancePriorityHigh     MaintenancePriority = "HIGH"
	MaintenancePriorityCritical MaintenancePriority = "CRITICAL"
)
