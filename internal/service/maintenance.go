package service

import (
	"context"
	"time"

	"coldrent-backend/internal/domain"
	"coldrent-backend/internal/logger"
	"coldrent-backend/internal/repository"
)

type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	equipmentRepo   repository.EquipmentRepository
	companyRepo     repository.CompanyRepository
	emailSvc        EmailService
}

func NewMaintenanceService(
	maintenanceRepo repository.MaintenanceRepository,
	equipmentRepo repository.EquipmentRepository,
	companyRepo repository.CompanyRepository,
	emailSvc EmailService,
) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		equipmentRepo:   equipmentRepo,
		companyRepo:     companyRepo,
		emailSvc:        emailSvc,
	}
}

func (s *maintenanceService) ScheduleMaintenance(ctx context.Context, p domain.NewMaintenanceParams) (*domain.Maintenance, error) {
	// The equipment must exist; the maintenance record only carries its id.
	if _, err := s.equipmentRepo.FindByID(ctx, p.EquipmentID); err != nil {
		return nil, err
	}
	m, err := domain.NewMaintenance(p)
	if err != nil {
		return nil, err
	}
	if err := s.maintenanceRepo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *maintenanceService) GetMaintenance(ctx context.Context, id string) (*domain.Maintenance, error) {
	return s.maintenanceRepo.FindByID(ctx, id)
}

func (s *maintenanceService) StartMaintenance(ctx context.Context, id string) (*domain.Maintenance, error) {
	m, err := s.maintenanceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := m.Start(); err != nil {
		return nil, err
	}

	eq, err := s.equipmentRepo.FindByID(ctx, m.EquipmentID)
	if err != nil {
		return nil, err
	}
	if err := eq.SendToMaintenance(); err != nil {
		return nil, err
	}

	if err := s.maintenanceRepo.Save(ctx, m); err != nil {
		return nil, err
	}
	if err := s.equipmentRepo.Save(ctx, eq); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *maintenanceService) CompleteMaintenance(ctx context.Context, id, workPerformed string, actualCost, partsCost, laborCost float64, postCondition domain.EquipmentCondition) (*domain.Maintenance, error) {
	m, err := s.maintenanceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := m.Complete(workPerformed, actualCost, partsCost, laborCost); err != nil {
		return nil, err
	}

	eq, err := s.equipmentRepo.FindByID(ctx, m.EquipmentID)
	if err != nil {
		return nil, err
	}
	if err := eq.ReturnFromMaintenance(postCondition); err != nil {
		return nil, err
	}

	if err := s.maintenanceRepo.Save(ctx, m); err != nil {
		return nil, err
	}
	if err := s.equipmentRepo.Save(ctx, eq); err != nil {
		return nil, err
	}

	s.notifyCompletion(ctx, m, actualCost)
	return m, nil
}

func (s *maintenanceService) CancelMaintenance(ctx context.Context, id, reason string) (*domain.Maintenance, error) {
	m, err := s.maintenanceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	wasInProgress := m.Status == domain.MaintenanceStatusInProgress
	if err := m.Cancel(reason); err != nil {
		return nil, err
	}
	if err := s.maintenanceRepo.Save(ctx, m); err != nil {
		return nil, err
	}
	if wasInProgress {
		s.releaseEquipment(ctx, m.EquipmentID)
	}
	return m, nil
}

func (s *maintenanceService) PostponeMaintenance(ctx context.Context, id string, newDate time.Time, reason string) (*domain.Maintenance, error) {
	m, err := s.maintenanceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := m.Postpone(newDate, reason); err != nil {
		return nil, err
	}
	if err := s.maintenanceRepo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *maintenanceService) RescheduleMaintenance(ctx context.Context, id string, newDate time.Time) (*domain.Maintenance, error) {
	m, err := s.maintenanceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	wasInProgress := m.Status == domain.MaintenanceStatusInProgress
	if err := m.Reschedule(newDate); err != nil {
		return nil, err
	}
	if err := s.maintenanceRepo.Save(ctx, m); err != nil {
		return nil, err
	}
	if wasInProgress {
		s.releaseEquipment(ctx, m.EquipmentID)
	}
	return m, nil
}

func (s *maintenanceService) RateMaintenance(ctx context.Context, id string, rating int) (*domain.Maintenance, error) {
	m, err := s.maintenanceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := m.RateQuality(rating); err != nil {
		return nil, err
	}
	if err := s.maintenanceRepo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *maintenanceService) ListMaintenanceByEquipment(ctx context.Context, equipmentID string) ([]domain.Maintenance, error) {
	return s.maintenanceRepo.FindByEquipment(ctx, equipmentID)
}

func (s *maintenanceService) GetKPIs(ctx context.Context, providerCompanyID string) (*domain.MaintenanceKPIs, error) {
	return s.maintenanceRepo.GetKPIs(ctx, providerCompanyID)
}

func (s *maintenanceService) GetCalendar(ctx context.Context, providerCompanyID string, from, to time.Time) ([]domain.MaintenanceCalendarEntry, error) {
	return s.maintenanceRepo.GetCalendarView(ctx, providerCompanyID, from, to)
}

// releaseEquipment moves a unit out of MAINTENANCE when work stops without a
// completion. The unit keeps its pre-service condition.
func (s *maintenanceService) releaseEquipment(ctx context.Context, equipmentID string) {
	eq, err := s.equipmentRepo.FindByID(ctx, equipmentID)
	if err != nil {
		logger.Warn("Failed to load equipment after maintenance stop", "equipment_id", equipmentID, "error", err)
		return
	}
	if err := eq.ReturnFromMaintenance(eq.Condition); err != nil {
		logger.Warn("Equipment not in maintenance on release", "equipment_id", equipmentID, "status", eq.Status)
		return
	}
	if err := s.equipmentRepo.Save(ctx, eq); err != nil {
		logger.Error("Failed to save equipment after maintenance stop", "equipment_id", equipmentID, "error", err)
	}
}

func (s *maintenanceService) notifyCompletion(ctx context.Context, m *domain.Maintenance, totalCost float64) {
	if m.ProviderCompanyID == "" {
		return
	}
	provider, err := s.companyRepo.FindByID(ctx, m.ProviderCompanyID)
	if err != nil {
		logger.Warn("Failed to load provider for completion notice", "maintenance_id", m.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendMaintenanceCompletedNotification(ctx, provider.Email, m.Title, totalCost); err != nil {
		logger.Warn("Failed to send maintenance completion notice", "maintenance_id", m.ID, "error", err)
	}
}
