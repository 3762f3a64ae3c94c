package service

import (
	"context"
	"time"

	"coldrent-backend/internal/domain"
)

type CompanyService interface {
	RegisterCompany(ctx context.Context, name string, companyType domain.CompanyType, address, phone, email, contactPerson, taxID string) (*domain.Company, error)
	GetCompany(ctx context.Context, id string) (*domain.Company, error)
	UpdateCompany(ctx context.Context, id string, update domain.CompanyUpdate) (*domain.Company, error)
	ActivateCompany(ctx context.Context, id string) error
	DeactivateCompany(ctx context.Context, id string) error
	ListCompaniesByType(ctx context.Context, companyType domain.CompanyType) ([]domain.Company, error)
	GetCompanyStatistics(ctx context.Context, id string) (*domain.CompanyStatistics, error)
}

type EquipmentService interface {
	RegisterEquipment(ctx context.Context, ownerCompanyID, equipmentType string, condition domain.EquipmentCondition) (*domain.Equipment, error)
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, error)
	ListEquipmentByOwner(ctx context.Context, ownerCompanyID string) ([]domain.Equipment, error)
	SetRentalRate(ctx context.Context, id string, rate domain.Money) (*domain.Equipment, error)
	// GetRentabilityReport bundles every domain-service decision for one unit.
	GetRentabilityReport(ctx context.Context, id string) (*EquipmentReport, error)
}

type RentalService interface {
	CreateRental(ctx context.Context, p domain.NewRentalParams) (*domain.Rental, error)
	GetRental(ctx context.Context, id string) (*domain.Rental, error)
	TerminateRental(ctx context.Context, id, reason string) (*domain.Rental, error)
	CompleteRental(ctx context.Context, id string) (*domain.Rental, error)
	ExtendRental(ctx context.Context, id string, newEndDate time.Time) (*domain.Rental, error)
	UpdateMonthlyRate(ctx context.Context, id string, newRate domain.Money) (*domain.Rental, error)
	ListRentalsByProvider(ctx context.Context, providerCompanyID string) ([]domain.Rental, error)
	ListRentalsByClient(ctx context.Context, clientCompanyID string) ([]domain.Rental, error)
	ListRentals(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	GetRevenueStats(ctx context.Context, providerCompanyID string) (*domain.RevenueStats, error)
	GetMonthlyRevenue(ctx context.Context, providerCompanyID string, year int) ([]domain.MonthlyRevenue, error)
}

type MaintenanceService interface {
	ScheduleMaintenance(ctx context.Context, p domain.NewMaintenanceParams) (*domain.Maintenance, error)
	GetMaintenance(ctx context.Context, id string) (*domain.Maintenance, error)
	StartMaintenance(ctx context.Context, id string) (*domain.Maintenance, error)
	CompleteMaintenance(ctx context.Context, id, workPerformed string, actualCost, partsCost, laborCost float64, postCondition domain.EquipmentCondition) (*domain.Maintenance, error)
	CancelMaintenance(ctx context.Context, id, reason string) (*domain.Maintenance, error)
	PostponeMaintenance(ctx context.Context, id string, newDate time.Time, reason string) (*domain.Maintenance, error)
	RescheduleMaintenance(ctx context.Context, id string, newDate time.Time) (*domain.Maintenance, error)
	RateMaintenance(ctx context.Context, id string, rating int) (*domain.Maintenance, error)
	ListMaintenanceByEquipment(ctx context.Context, equipmentID string) ([]domain.Maintenance, error)
	GetKPIs(ctx context.Context, providerCompanyID string) (*domain.MaintenanceKPIs, error)
	GetCalendar(ctx context.Context, providerCompanyID string, from, to time.Time) ([]domain.MaintenanceCalendarEntry, error)
}

type EmailService interface {
	SendRentalExpiryReminder(ctx context.Context, email, companyName, equipmentType string, daysLeft int) error
	SendRentalTerminationNotice(ctx context.Context, email, companyName, equipmentType, reason string) error
	SendMaintenanceDueReminder(ctx context.Context, email, title string, scheduledDate time.Time) error
	SendMaintenanceCompletedNotification(ctx context.Context, email, title string, totalCost float64) error
}
