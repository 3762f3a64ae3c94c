package repository

import (
	"context"
	"time"

	"coldrent-backend/internal/domain"
)

type RentalRepository interface {
	Save(ctx context.Context, rental *domain.Rental) error
	FindByID(ctx context.Context, id string) (*domain.Rental, error)
	FindByProvider(ctx context.Context, providerCompanyID string) ([]domain.Rental, error)
	FindByClient(ctx context.Context, clientCompanyID string) ([]domain.Rental, error)
	FindByEquipment(ctx context.Context, equipmentID string) ([]domain.Rental, error)
	FindActiveRentals(ctx context.Context) ([]domain.Rental, error)
	// FindActiveRentalByEquipment returns nil, nil when no active rental exists.
	FindActiveRentalByEquipment(ctx context.Context, equipmentID string) (*domain.Rental, error)
	FindExpiringRentals(ctx context.Context, within time.Duration) ([]domain.Rental, error)
	FindWithPagination(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	GetRevenueStats(ctx context.Context, providerCompanyID string) (*domain.RevenueStats, error)
	GetMonthlyRevenue(ctx context.Context, providerCompanyID string, year int) ([]domain.MonthlyRevenue, error)
	Delete(ctx context.Context, id string) error
}

type MaintenanceRepository interface {
	Save(ctx context.Context, maintenance *domain.Maintenance) error
	FindByID(ctx context.Context, id string) (*domain.Maintenance, error)
	FindByProvider(ctx context.Context, providerCompanyID string) ([]domain.Maintenance, error)
	FindByEquipment(ctx context.Context, equipmentID string) ([]domain.Maintenance, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]domain.Maintenance, error)
	GetKPIs(ctx context.Context, providerCompanyID string) (*domain.MaintenanceKPIs, error)
	GetCalendarView(ctx context.Context, providerCompanyID string, from, to time.Time) ([]domain.MaintenanceCalendarEntry, error)
	Delete(ctx context.Context, id string) error
}

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	Update(ctx context.Context, company *domain.Company) error
	FindByID(ctx context.Context, id string) (*domain.Company, error)
	FindByEmail(ctx context.Context, email string) (*domain.Company, error)
	FindByType(ctx context.Context, companyType domain.CompanyType) ([]domain.Company, error)
	GetStatistics(ctx context.Context, id string) (*domain.CompanyStatistics, error)
	Delete(ctx context.Context, id string) error
}

type EquipmentRepository interface {
	Save(ctx context.Context, equipment *domain.Equipment) error
	FindByID(ctx context.Context, id string) (*domain.Equipment, error)
	FindByOwner(ctx context.Context, ownerCompanyID string) ([]domain.Equipment, error)
	FindByTypeAndOwner(ctx context.Context, equipmentType, ownerCompanyID string) ([]domain.Equipment, error)
	FindByStatus(ctx context.Context, status domain.EquipmentStatus) ([]domain.Equipment, error)
}
