package postgres

import (
	"context"
	"database/sql"

	"coldrent-backend/internal/domain"
	"coldrent-backend/internal/repository"
)

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

const companyColumns = `id, name, type, address, phone, email, contact_person, tax_id, is_active, registration_date, updated_at`

func (r *companyRepository) Create(ctx context.Context, c *domain.Company) error {
	query := `INSERT INTO companies (` + companyColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Type, c.Address, c.Phone, c.Email,
		c.ContactPerson, c.TaxID, c.IsActive, c.RegistrationDate, c.UpdatedAt)
	return err
}

func (r *companyRepository) Update(ctx context.Context, c *domain.Company) error {
	query := `UPDATE companies
	          SET name=$1, address=$2, phone=$3, email=$4, contact_person=$5, tax_id=$6, is_active=$7, updated_at=$8
	          WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.Address, c.Phone, c.Email,
		c.ContactPerson, c.TaxID, c.IsActive, c.UpdatedAt, c.ID)
	return err
}

func (r *companyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return scanCompany(r.db.QueryRowContext(ctx, query, id))
}

func (r *companyRepository) FindByEmail(ctx context.Context, email string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE email = $1`
	return scanCompany(r.db.QueryRowContext(ctx, query, email))
}

func (r *companyRepository) FindByType(ctx context.Context, companyType domain.CompanyType) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE type = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, companyType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *c)
	}
	return companies, rows.Err()
}

func (r *companyRepository) GetStatistics(ctx context.Context, id string) (*domain.CompanyStatistics, error) {
	stats := &domain.CompanyStatistics{CompanyID: id}
	query := `
		SELECT
			(SELECT count(*) FROM equipment WHERE owner_company_id = $1),
			(SELECT count(*) FROM rentals WHERE (provider_company_id = $1 OR client_company_id = $1) AND status = 'ACTIVE'),
			(SELECT count(*) FROM rentals WHERE (provider_company_id = $1 OR client_company_id = $1) AND status = 'COMPLETED'),
			(SELECT count(*) FROM maintenance WHERE provider_company_id = $1 AND status IN ('SCHEDULED', 'IN_PROGRESS'))`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&stats.EquipmentOwned, &stats.ActiveRentals, &stats.CompletedRentals, &stats.OpenMaintenances)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *companyRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*domain.Company, error) {
	c := &domain.Company{}
	err := row.Scan(&c.ID, &c.Name, &c.Type, &c.Address, &c.Phone, &c.Email,
		&c.ContactPerson, &c.TaxID, &c.IsActive, &c.RegistrationDate, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}
