package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coldrent-backend/internal/domain"
	"coldrent-backend/internal/logger"
	"coldrent-backend/internal/repository"
)

type rentalService struct {
	rentalRepo    repository.RentalRepository
	equipmentRepo repository.EquipmentRepository
	companyRepo   repository.CompanyRepository
	domainSvc     *EquipmentDomainService
	emailSvc      EmailService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	equipmentRepo repository.EquipmentRepository,
	companyRepo repository.CompanyRepository,
	domainSvc *EquipmentDomainService,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:    rentalRepo,
		equipmentRepo: equipmentRepo,
		companyRepo:   companyRepo,
		domainSvc:     domainSvc,
		emailSvc:      emailSvc,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, p domain.NewRentalParams) (*domain.Rental, error) {
	eq, err := s.equipmentRepo.FindByID(ctx, p.EquipmentID)
	if err != nil {
		return nil, err
	}

	client, err := s.companyRepo.FindByID(ctx, p.ClientCompanyID)
	if err != nil {
		return nil, err
	}
	if client.Type != domain.CompanyTypeClient {
		return nil, errors.New("renting company must be a CLIENT")
	}
	if !client.IsActive {
		return nil, errors.New("renting company is deactivated")
	}

	check, err := s.domainSvc.CanEquipmentBeRented(ctx, eq)
	if err != nil {
		return nil, err
	}
	if !check.CanRent {
		return nil, fmt.Errorf("equipment cannot be rented: %s", check.Reason)
	}

	rental, err := domain.NewRental(p)
	if err != nil {
		return nil, err
	}
	if err := eq.Rent(p.ClientCompanyID); err != nil {
		return nil, err
	}

	if err := s.rentalRepo.Save(ctx, rental); err != nil {
		return nil, err
	}
	if err := s.equipmentRepo.Save(ctx, eq); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id string) (*domain.Rental, error) {
	return s.rentalRepo.FindByID(ctx, id)
}

func (s *rentalService) TerminateRental(ctx context.Context, id, reason string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := rental.Terminate(reason); err != nil {
		return nil, err
	}
	if err := s.rentalRepo.Save(ctx, rental); err != nil {
		return nil, err
	}
	s.releaseEquipment(ctx, rental.EquipmentID)
	s.notifyTermination(ctx, rental, reason)
	return rental, nil
}

func (s *rentalService) CompleteRental(ctx context.Context, id string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := rental.Complete(); err != nil {
		return nil, err
	}
	if err := s.rentalRepo.Save(ctx, rental); err != nil {
		return nil, err
	}
	s.releaseEquipment(ctx, rental.EquipmentID)
	return rental, nil
}

func (s *rentalService) ExtendRental(ctx context.Context, id string, newEndDate time.Time) (*domain.Rental, error) {
	rental, err := s.rentalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := rental.ExtendRental(newEndDate); err != nil {
		return nil, err
	}
	if err := s.rentalRepo.Save(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) UpdateMonthlyRate(ctx context.Context, id string, newRate domain.Money) (*domain.Rental, error) {
	rental, err := s.rentalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := rental.UpdateMonthlyRate(newRate); err != nil {
		return nil, err
	}
	if err := s.rentalRepo.Save(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) ListRentalsByProvider(ctx context.Context, providerCompanyID string) ([]domain.Rental, error) {
	return s.rentalRepo.FindByProvider(ctx, providerCompanyID)
}

func (s *rentalService) ListRentalsByClient(ctx context.Context, clientCompanyID string) ([]domain.Rental, error) {
	return s.rentalRepo.FindByClient(ctx, clientCompanyID)
}

func (s *rentalService) ListRentals(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return s.rentalRepo.FindWithPagination(ctx, status, page, pageSize)
}

func (s *rentalService) GetRevenueStats(ctx context.Context, providerCompanyID string) (*domain.RevenueStats, error) {
	return s.rentalRepo.GetRevenueStats(ctx, providerCompanyID)
}

func (s *rentalService) GetMonthlyRevenue(ctx context.Context, providerCompanyID string, year int) ([]domain.MonthlyRevenue, error) {
	return s.rentalRepo.GetMonthlyRevenue(ctx, providerCompanyID, year)
}

// releaseEquipment puts the unit back in the pool after a contract ends.
// Failures are logged, not propagated: the rental state change is already
// committed and a stuck unit is fixed by the nightly reconciliation job.
func (s *rentalService) releaseEquipment(ctx context.Context, equipmentID string) {
	eq, err := s.equipmentRepo.FindByID(ctx, equipmentID)
	if err != nil {
		logger.Warn("Failed to load equipment for release", "equipment_id", equipmentID, "error", err)
		return
	}
	if err := eq.ReturnFromRental(); err != nil {
		logger.Warn("Equipment not in rented state on release", "equipment_id", equipmentID, "status", eq.Status)
		return
	}
	if err := s.equipmentRepo.Save(ctx, eq); err != nil {
		logger.Error("Failed to save released equipment", "equipment_id", equipmentID, "error", err)
	}
}

func (s *rentalService) notifyTermination(ctx context.Context, rental *domain.Rental, reason string) {
	client, err := s.companyRepo.FindByID(ctx, rental.ClientCompanyID)
	if err != nil {
		logger.Warn("Failed to load client for termination notice", "rental_id", rental.ID, "error", err)
		return
	}
	eq, err := s.equipmentRepo.FindByID(ctx, rental.EquipmentID)
	if err != nil {
		logger.Warn("Failed to load equipment for termination notice", "rental_id", rental.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendRentalTerminationNotice(ctx, client.Email, client.Name, eq.Type, reason); err != nil {
		logger.Warn("Failed to send termination notice", "rental_id", rental.ID, "error", err)
	}
}
