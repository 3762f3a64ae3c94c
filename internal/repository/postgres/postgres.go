package postgres

import (
	"database/sql"

	"coldrent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CompanyRepository
	repository.EquipmentRepository
	repository.RentalRepository
	repository.MaintenanceRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		CompanyRepository:     NewCompanyRepository(db),
		EquipmentRepository:   NewEquipmentRepository(db),
		RentalRepository:      NewRentalRepository(db),
		MaintenanceRepository: NewMaintenanceRepository(db),
	}
}
