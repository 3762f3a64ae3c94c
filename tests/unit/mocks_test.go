package unit

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"coldrent-backend/internal/domain"
)

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Save(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) FindByID(ctx context.Context, id string) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) FindByProvider(ctx context.Context, providerCompanyID string) ([]domain.Rental, error) {
	args := m.Called(ctx, providerCompanyID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) FindByClient(ctx context.Context, clientCompanyID string) ([]domain.Rental, error) {
	args := m.Called(ctx, clientCompanyID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) FindByEquipment(ctx context.Context, equipmentID string) ([]domain.Rental, error) {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) FindActiveRentals(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) FindActiveRentalByEquipment(ctx context.Context, equipmentID string) (*domain.Rental, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) FindExpiringRentals(ctx context.Context, within time.Duration) ([]domain.Rental, error) {
	args := m.Called(ctx, within)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) FindWithPagination(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}
func (m *MockRentalRepo) GetRevenueStats(ctx context.Context, providerCompanyID string) (*domain.RevenueStats, error) {
	args := m.Called(ctx, providerCompanyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueStats), args.Error(1)
}
func (m *MockRentalRepo) GetMonthlyRevenue(ctx context.Context, providerCompanyID string, year int) ([]domain.MonthlyRevenue, error) {
	args := m.Called(ctx, providerCompanyID, year)
	return args.Get(0).([]domain.MonthlyRevenue), args.Error(1)
}
func (m *MockRentalRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Save(ctx context.Context, equipment *domain.Equipment) error {
	args := m.Called(ctx, equipment)
	return args.Error(0)
}
func (m *MockEquipmentRepo) FindByID(ctx context.Context, id string) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) FindByOwner(ctx context.Context, ownerCompanyID string) ([]domain.Equipment, error) {
	args := m.Called(ctx, ownerCompanyID)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) FindByTypeAndOwner(ctx context.Context, equipmentType, ownerCompanyID string) ([]domain.Equipment, error) {
	args := m.Called(ctx, equipmentType, ownerCompanyID)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) FindByStatus(ctx context.Context, status domain.EquipmentStatus) ([]domain.Equipment, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

// MockCompanyRepo
type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}
func (m *MockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}
func (m *MockCompanyRepo) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) FindByEmail(ctx context.Context, email string) (*domain.Company, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) FindByType(ctx context.Context, companyType domain.CompanyType) ([]domain.Company, error) {
	args := m.Called(ctx, companyType)
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) GetStatistics(ctx context.Context, id string) (*domain.CompanyStatistics, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyStatistics), args.Error(1)
}
func (m *MockCompanyRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMaintenanceRepo
type MockMaintenanceRepo struct {
	mock.Mock
}

func (m *MockMaintenanceRepo) Save(ctx context.Context, maintenance *domain.Maintenance) error {
	args := m.Called(ctx, maintenance)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) FindByID(ctx context.Context, id string) (*domain.Maintenance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Maintenance), args.Error(1)
}
func (m *MockMaintenanceRepo) FindByProvider(ctx context.Context, providerCompanyID string) ([]domain.Maintenance, error) {
	args := m.Called(ctx, providerCompanyID)
	return args.Get(0).([]domain.Maintenance), args.Error(1)
}
func (m *MockMaintenanceRepo) FindByEquipment(ctx context.Context, equipmentID string) ([]domain.Maintenance, error) {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).([]domain.Maintenance), args.Error(1)
}
func (m *MockMaintenanceRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]domain.Maintenance, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Maintenance), args.Error(1)
}
func (m *MockMaintenanceRepo) GetKPIs(ctx context.Context, providerCompanyID string) (*domain.MaintenanceKPIs, error) {
	args := m.Called(ctx, providerCompanyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceKPIs), args.Error(1)
}
func (m *MockMaintenanceRepo) GetCalendarView(ctx context.Context, providerCompanyID string, from, to time.Time) ([]domain.MaintenanceCalendarEntry, error) {
	args := m.Called(ctx, providerCompanyID, from, to)
	return args.Get(0).([]domain.MaintenanceCalendarEntry), args.Error(1)
}
func (m *MockMaintenanceRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalExpiryReminder(ctx context.Context, email, companyName, equipmentType string, daysLeft int) error {
	args := m.Called(ctx, email, companyName, equipmentType, daysLeft)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalTerminationNotice(ctx context.Context, email, companyName, equipmentType, reason string) error {
	args := m.Called(ctx, email, companyName, equipmentType, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendMaintenanceDueReminder(ctx context.Context, email, title string, scheduledDate time.Time) error {
	args := m.Called(ctx, email, title, scheduledDate)
	return args.Error(0)
}
func (m *MockEmailService) SendMaintenanceCompletedNotification(ctx context.Context, email, title string, totalCost float64) error {
	args := m.Called(ctx, email, title, totalCost)
	return args.Error(0)
}
