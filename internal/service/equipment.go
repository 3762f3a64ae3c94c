package service

import (
	"context"
	"errors"

	"coldrent-backend/internal/domain"
	"coldrent-backend/internal/repository"
)

// EquipmentReport bundles every domain-service decision for one unit.
type EquipmentReport struct {
	Equipment        *domain.Equipment          `json:"equipment"`
	Rentability      *RentabilityCheck          `json:"rentability"`
	SuggestedRate    domain.Money               `json:"suggested_rate"`
	Depreciation     float64                    `json:"depreciation"`
	CurrentValue     domain.Money               `json:"current_value"`
	NeedsMaintenance bool                       `json:"needs_maintenance"`
	Priority         domain.MaintenancePriority `json:"priority"`
}

type equipmentService struct {
	equipmentRepo   repository.EquipmentRepository
	companyRepo     repository.CompanyRepository
	maintenanceRepo repository.MaintenanceRepository
	domainSvc       *EquipmentDomainService
}

func NewEquipmentService(
	equipmentRepo repository.EquipmentRepository,
	companyRepo repository.CompanyRepository,
	maintenanceRepo repository.MaintenanceRepository,
	domainSvc *EquipmentDomainService,
) EquipmentService {
	return &equipmentService{
		equipmentRepo:   equipmentRepo,
		companyRepo:     companyRepo,
		maintenanceRepo: maintenanceRepo,
		domainSvc:       domainSvc,
	}
}

func (s *equipmentService) RegisterEquipment(ctx context.Context, ownerCompanyID, equipmentType string, condition domain.EquipmentCondition) (*domain.Equipment, error) {
	owner, err := s.companyRepo.FindByID(ctx, ownerCompanyID)
	if err != nil {
		return nil, err
	}
	if owner.Type != domain.CompanyTypeProvider {
		return nil, errors.New("equipment owner must be a PROVIDER")
	}

	eq, err := domain.NewEquipment(ownerCompanyID, equipmentType, condition)
	if err != nil {
		return nil, err
	}
	if err := s.equipmentRepo.Save(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, id string) (*domain.Equipment, error) {
	return s.equipmentRepo.FindByID(ctx, id)
}

func (s *equipmentService) ListEquipmentByOwner(ctx context.Context, ownerCompanyID string) ([]domain.Equipment, error) {
	return s.equipmentRepo.FindByOwner(ctx, ownerCompanyID)
}

func (s *equipmentService) SetRentalRate(ctx context.Context, id string, rate domain.Money) (*domain.Equipment, error) {
	eq, err := s.equipmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := eq.SetRentalRate(rate); err != nil {
		return nil, err
	}
	if err := s.equipmentRepo.Save(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) GetRentabilityReport(ctx context.Context, id string) (*EquipmentReport, error) {
	eq, err := s.equipmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	history, err := s.maintenanceRepo.FindByEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	rentability, err := s.domainSvc.CanEquipmentBeRented(ctx, eq)
	if err != nil {
		return nil, err
	}
	suggestedRate, err := s.domainSvc.CalculateSuggestedRentalRate(ctx, eq)
	if err != nil {
		return nil, err
	}
	currentValue, err := s.domainSvc.CalculateCurrentValue(eq)
	if err != nil {
		return nil, err
	}

	return &EquipmentReport{
		Equipment:        eq,
		Rentability:      rentability,
		SuggestedRate:    suggestedRate,
		Depreciation:     s.domainSvc.CalculateDepreciation(eq),
		CurrentValue:     currentValue,
		NeedsMaintenance: s.domainSvc.NeedsMaintenance(eq, history),
		Priority:         s.domainSvc.GetMaintenancePriority(eq, history),
	}, nil
}
