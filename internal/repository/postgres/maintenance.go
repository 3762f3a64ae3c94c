package postgres

import (
	"context"
	"database/sql"
	"time"

	"coldrent-backend/internal/domain"
	"coldrent-backend/internal/repository"

	"github.com/lib/pq"
)

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

const maintenanceColumns = `id, title, description, type, category, scheduled_date,
	estimated_duration_hours, actual_start_time, actual_end_time, next_scheduled_date, status,
	equipment_id, service_request_id, technician_id, client_company_id, provider_company_id,
	estimated_cost, actual_cost, parts_cost, labor_cost, work_performed, parts_used,
	findings, recommendations, quality_rating, created_at, updated_at`

func (r *maintenanceRepository) Save(ctx context.Context, m *domain.Maintenance) error {
	query := `INSERT INTO maintenance (` + maintenanceColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
	                  $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
	          ON CONFLICT (id) DO UPDATE SET
	            scheduled_date=EXCLUDED.scheduled_date, actual_start_time=EXCLUDED.actual_start_time,
	            actual_end_time=EXCLUDED.actual_end_time, next_scheduled_date=EXCLUDED.next_scheduled_date,
	            status=EXCLUDED.status, actual_cost=EXCLUDED.actual_cost, parts_cost=EXCLUDED.parts_cost,
	            labor_cost=EXCLUDED.labor_cost, work_performed=EXCLUDED.work_performed,
	            parts_used=EXCLUDED.parts_used, findings=EXCLUDED.findings,
	            recommendations=EXCLUDED.recommendations, quality_rating=EXCLUDED.quality_rating,
	            updated_at=EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Title, m.Description, m.Type, m.Category, m.ScheduledDate,
		m.EstimatedDurationHours, m.ActualStartTime, m.ActualEndTime, m.NextScheduledDate, m.Status,
		m.EquipmentID, nullableString(m.ServiceRequestID), nullableString(m.TechnicianID),
		nullableString(m.ClientCompanyID), nullableString(m.ProviderCompanyID),
		m.EstimatedCost, m.ActualCost, m.PartsCost, m.LaborCost, m.WorkPerformed,
		pq.Array(m.PartsUsed), m.Findings, m.Recommendations, m.QualityRating, m.CreatedAt, m.UpdatedAt)
	return err
}

func (r *maintenanceRepository) FindByID(ctx context.Context, id string) (*domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance WHERE id = $1`
	return scanMaintenance(r.db.QueryRowContext(ctx, query, id))
}

func (r *maintenanceRepository) FindByProvider(ctx context.Context, providerCompanyID string) ([]domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance WHERE provider_company_id = $1 ORDER BY scheduled_date DESC`
	return r.queryMaintenance(ctx, query, providerCompanyID)
}

func (r *maintenanceRepository) FindByEquipment(ctx context.Context, equipmentID string) ([]domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance WHERE equipment_id = $1 ORDER BY scheduled_date DESC`
	return r.queryMaintenance(ctx, query, equipmentID)
}

func (r *maintenanceRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance WHERE scheduled_date BETWEEN $1 AND $2 ORDER BY scheduled_date`
	return r.queryMaintenance(ctx, query, from, to)
}

func (r *maintenanceRepository) GetKPIs(ctx context.Context, providerCompanyID string) (*domain.MaintenanceKPIs, error) {
	kpis := &domain.MaintenanceKPIs{ProviderCompanyID: providerCompanyID}
	query := `
		SELECT
			count(*) FILTER (WHERE status = 'SCHEDULED'),
			count(*) FILTER (WHERE status = 'IN_PROGRESS'),
			count(*) FILTER (WHERE status = 'COMPLETED'),
			count(*) FILTER (WHERE status = 'CANCELLED'),
			count(*) FILTER (WHERE status = 'SCHEDULED' AND scheduled_date < now()),
			COALESCE(avg(actual_cost) FILTER (WHERE status = 'COMPLETED'), 0),
			avg(quality_rating)
		FROM maintenance WHERE provider_company_id = $1`
	err := r.db.QueryRowContext(ctx, query, providerCompanyID).Scan(
		&kpis.Scheduled, &kpis.InProgress, &kpis.Completed, &kpis.Cancelled,
		&kpis.Overdue, &kpis.AverageCost, &kpis.AverageRating)
	if err != nil {
		return nil, err
	}
	return kpis, nil
}

func (r *maintenanceRepository) GetCalendarView(ctx context.Context, providerCompanyID string, from, to time.Time) ([]domain.MaintenanceCalendarEntry, error) {
	query := `
		SELECT id, equipment_id, title, type, scheduled_date, COALESCE(technician_id, '')
		FROM maintenance
		WHERE provider_company_id = $1 AND scheduled_date BETWEEN $2 AND $3
		  AND status IN ('SCHEDULED', 'IN_PROGRESS')
		ORDER BY scheduled_date`
	rows, err := r.db.QueryContext(ctx, query, providerCompanyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.MaintenanceCalendarEntry
	for rows.Next() {
		var e domain.MaintenanceCalendarEntry
		if err := rows.Scan(&e.MaintenanceID, &e.EquipmentID, &e.Title, &e.Type, &e.ScheduledDate, &e.TechnicianID); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *maintenanceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM maintenance WHERE id = $1`, id)
	return err
}

func (r *maintenanceRepository) queryMaintenance(ctx context.Context, query string, args ...any) ([]domain.Maintenance, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Maintenance
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *m)
	}
	return records, rows.Err()
}

func scanMaintenance(row rowScanner) (*domain.Maintenance, error) {
	m := &domain.Maintenance{}
	var serviceRequestID, technicianID, clientCompanyID, providerCompanyID sql.NullString
	var partsUsed pq.StringArray

	err := row.Scan(&m.ID, &m.Title, &m.Description, &m.Type, &m.Category, &m.ScheduledDate,
		&m.EstimatedDurationHours, &m.ActualStartTime, &m.ActualEndTime, &m.NextScheduledDate, &m.Status,
		&m.EquipmentID, &serviceRequestID, &technicianID, &clientCompanyID, &providerCompanyID,
		&m.EstimatedCost, &m.ActualCost, &m.PartsCost, &m.LaborCost, &m.WorkPerformed,
		&partsUsed, &m.Findings, &m.Recommendations, &m.QualityRating, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}

	m.ServiceRequestID = serviceRequestID.String
	m.TechnicianID = technicianID.String
	m.ClientCompanyID = clientCompanyID.String
	m.ProviderCompanyID = providerCompanyID.String
	m.PartsUsed = partsUsed
	return m, nil
}
