package postgres

import (
	"context"
	"database/sql"

	"coldrent-backend/internal/domain"
	"coldrent-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `id, owner_company_id, current_client_id, type, status, condition,
	purchase_price, purchase_currency, rental_rate, rate_currency,
	installation_date, warranty_months, created_at, updated_at`

func (r *equipmentRepository) Save(ctx context.Context, e *domain.Equipment) error {
	purchasePrice, purchaseCurrency := nullableMoney(e.PurchasePrice)
	rentalRate, rateCurrency := nullableMoney(e.RentalRate)

	query := `INSERT INTO equipment (` + equipmentColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	          ON CONFLICT (id) DO UPDATE SET
	            current_client_id=EXCLUDED.current_client_id, status=EXCLUDED.status,
	            condition=EXCLUDED.condition, purchase_price=EXCLUDED.purchase_price,
	            purchase_currency=EXCLUDED.purchase_currency, rental_rate=EXCLUDED.rental_rate,
	            rate_currency=EXCLUDED.rate_currency, installation_date=EXCLUDED.installation_date,
	            warranty_months=EXCLUDED.warranty_months, updated_at=EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.OwnerCompanyID, nullableString(e.CurrentClientID), e.Type, e.Status, e.Condition,
		purchasePrice, purchaseCurrency, rentalRate, rateCurrency,
		e.InstallationDate, e.WarrantyMonths, e.CreatedAt, e.UpdatedAt)
	return err
}

func (r *equipmentRepository) FindByID(ctx context.Context, id string) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	return scanEquipment(r.db.QueryRowContext(ctx, query, id))
}

func (r *equipmentRepository) FindByOwner(ctx context.Context, ownerCompanyID string) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE owner_company_id = $1 ORDER BY created_at DESC`
	return r.queryEquipment(ctx, query, ownerCompanyID)
}

func (r *equipmentRepository) FindByTypeAndOwner(ctx context.Context, equipmentType, ownerCompanyID string) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE type = $1 AND owner_company_id = $2`
	return r.queryEquipment(ctx, query, equipmentType, ownerCompanyID)
}

func (r *equipmentRepository) FindByStatus(ctx context.Context, status domain.EquipmentStatus) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE status = $1`
	return r.queryEquipment(ctx, query, status)
}

func (r *equipmentRepository) queryEquipment(ctx context.Context, query string, args ...any) ([]domain.Equipment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var equipment []domain.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		equipment = append(equipment, *e)
	}
	return equipment, rows.Err()
}

func scanEquipment(row rowScanner) (*domain.Equipment, error) {
	e := &domain.Equipment{}
	var currentClient sql.NullString
	var purchasePrice, rentalRate sql.NullFloat64
	var purchaseCurrency, rateCurrency sql.NullString

	err := row.Scan(&e.ID, &e.OwnerCompanyID, &currentClient, &e.Type, &e.Status, &e.Condition,
		&purchasePrice, &purchaseCurrency, &rentalRate, &rateCurrency,
		&e.InstallationDate, &e.WarrantyMonths, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}

	e.CurrentClientID = currentClient.String
	if e.PurchasePrice, err = moneyFromColumns(purchasePrice, purchaseCurrency); err != nil {
		return nil, err
	}
	if e.RentalRate, err = moneyFromColumns(rentalRate, rateCurrency); err != nil {
		return nil, err
	}
	return e, nil
}

func nullableMoney(m *domain.Money) (sql.NullFloat64, sql.NullString) {
	if m == nil {
		return sql.NullFloat64{}, sql.NullString{}
	}
	return sql.NullFloat64{Float64: m.Float64(), Valid: true},
		sql.NullString{String: m.Currency(), Valid: true}
}

func moneyFromColumns(amount sql.NullFloat64, currency sql.NullString) (*domain.Money, error) {
	if !amount.Valid || !currency.Valid {
		return nil, nil
	}
	m, err := domain.NewMoney(amount.Float64, currency.String)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
