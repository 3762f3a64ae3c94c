package service

import (
	"context"

	"coldrent-backend/internal/domain"
	"coldrent-backend/internal/repository"
)

type companyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) RegisterCompany(ctx context.Context, name string, companyType domain.CompanyType, address, phone, email, contactPerson, taxID string) (*domain.Company, error) {
	company, err := domain.NewCompany(name, companyType, address, phone, email, contactPerson, taxID)
	if err != nil {
		return nil, err
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	return s.companyRepo.FindByID(ctx, id)
}

func (s *companyService) UpdateCompany(ctx context.Context, id string, update domain.CompanyUpdate) (*domain.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := company.Update(update); err != nil {
		return nil, err
	}
	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) ActivateCompany(ctx context.Context, id string) error {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	company.Activate()
	return s.companyRepo.Update(ctx, company)
}

// DeactivateCompany is the only removal path; company rows are never deleted.
func (s *companyService) DeactivateCompany(ctx context.Context, id string) error {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	company.Deactivate()
	return s.companyRepo.Update(ctx, company)
}

func (s *companyService) ListCompaniesByType(ctx context.Context, companyType domain.CompanyType) ([]domain.Company, error) {
	return s.companyRepo.FindByType(ctx, companyType)
}

func (s *companyService) GetCompanyStatistics(ctx context.Context, id string) (*domain.CompanyStatistics, error) {
	return s.companyRepo.GetStatistics(ctx, id)
}
