package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"coldrent-backend/internal/domain"
	"coldrent-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, equipment_id, client_company_id, provider_company_id, start_date, end_date,
	monthly_rate, rate_currency, security_deposit, status, payment_terms, contract_terms, notes,
	created_at, updated_at`

func (r *rentalRepository) Save(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (` + rentalColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	          ON CONFLICT (id) DO UPDATE SET
	            end_date=EXCLUDED.end_date, monthly_rate=EXCLUDED.monthly_rate,
	            rate_currency=EXCLUDED.rate_currency, status=EXCLUDED.status,
	            notes=EXCLUDED.notes, updated_at=EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		rt.ID, rt.EquipmentID, rt.ClientCompanyID, rt.ProviderCompanyID, rt.StartDate, rt.EndDate,
		rt.MonthlyRate.Float64(), rt.MonthlyRate.Currency(), rt.SecurityDeposit.Float64(),
		rt.Status, rt.PaymentTerms, rt.ContractTerms, rt.Notes, rt.CreatedAt, rt.UpdatedAt)
	return err
}

func (r *rentalRepository) FindByID(ctx context.Context, id string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	return scanRental(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentalRepository) FindByProvider(ctx context.Context, providerCompanyID string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE provider_company_id = $1 ORDER BY created_at DESC`
	return r.queryRentals(ctx, query, providerCompanyID)
}

func (r *rentalRepository) FindByClient(ctx context.Context, clientCompanyID string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE client_company_id = $1 ORDER BY created_at DESC`
	return r.queryRentals(ctx, query, clientCompanyID)
}

func (r *rentalRepository) FindByEquipment(ctx context.Context, equipmentID string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE equipment_id = $1 ORDER BY created_at DESC`
	return r.queryRentals(ctx, query, equipmentID)
}

func (r *rentalRepository) FindActiveRentals(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = 'ACTIVE' ORDER BY end_date`
	return r.queryRentals(ctx, query)
}

func (r *rentalRepository) FindActiveRentalByEquipment(ctx context.Context, equipmentID string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE equipment_id = $1 AND status = 'ACTIVE' LIMIT 1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, equipmentID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rt, err
}

func (r *rentalRepository) FindExpiringRentals(ctx context.Context, within time.Duration) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE status = 'ACTIVE' AND end_date BETWEEN $1 AND $2 ORDER BY end_date`
	now := time.Now()
	return r.queryRentals(ctx, query, now, now.Add(within))
}

func (r *rentalRepository) FindWithPagination(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + rentalColumns + ` FROM rentals`
	countQuery := `SELECT count(*) FROM rentals`

	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		countQuery += ` WHERE status = $1`
		args = append(args, status)
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rentals, err := r.queryRentals(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return rentals, count, nil
}

func (r *rentalRepository) GetRevenueStats(ctx context.Context, providerCompanyID string) (*domain.RevenueStats, error) {
	stats := &domain.RevenueStats{ProviderCompanyID: providerCompanyID}
	query := `
		SELECT
			count(*) FILTER (WHERE status = 'ACTIVE'),
			count(*) FILTER (WHERE status = 'COMPLETED'),
			COALESCE(sum(monthly_rate) FILTER (WHERE status IN ('ACTIVE', 'COMPLETED')), 0),
			COALESCE(avg(monthly_rate), 0),
			COALESCE(min(rate_currency), '')
		FROM rentals WHERE provider_company_id = $1`
	err := r.db.QueryRowContext(ctx, query, providerCompanyID).Scan(
		&stats.ActiveRentals, &stats.CompletedRentals, &stats.TotalRevenue,
		&stats.AverageMonthlyRate, &stats.Currency)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *rentalRepository) GetMonthlyRevenue(ctx context.Context, providerCompanyID string, year int) ([]domain.MonthlyRevenue, error) {
	query := `
		SELECT EXTRACT(MONTH FROM start_date)::int AS month, COALESCE(sum(monthly_rate), 0), count(*)
		FROM rentals
		WHERE provider_company_id = $1 AND EXTRACT(YEAR FROM start_date) = $2
		GROUP BY month ORDER BY month`
	rows, err := r.db.QueryContext(ctx, query, providerCompanyID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var months []domain.MonthlyRevenue
	for rows.Next() {
		m := domain.MonthlyRevenue{Year: year}
		if err := rows.Scan(&m.Month, &m.Revenue, &m.Rentals); err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, rows.Err()
}

func (r *rentalRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	return err
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...any) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var rateAmount, depositAmount float64
	var currency string

	err := row.Scan(&rt.ID, &rt.EquipmentID, &rt.ClientCompanyID, &rt.ProviderCompanyID,
		&rt.StartDate, &rt.EndDate, &rateAmount, &currency, &depositAmount,
		&rt.Status, &rt.PaymentTerms, &rt.ContractTerms, &rt.Notes, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if rt.MonthlyRate, err = domain.NewMoney(rateAmount, currency); err != nil {
		return nil, err
	}
	if rt.SecurityDeposit, err = domain.NewMoney(depositAmount, currency); err != nil {
		return nil, err
	}
	return rt, nil
}
