package repos

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"coldrent-backend/internal/domain"
	"coldrent-backend/internal/repository/postgres"
)

var rentalRowColumns = []string{"id", "equipment_id", "client_company_id", "provider_company_id",
	"start_date", "end_date", "monthly_rate", "rate_currency", "security_deposit", "status",
	"payment_terms", "contract_terms", "notes", "created_at", "updated_at"}

func newTestRental(t *testing.T) *domain.Rental {
	t.Helper()
	rate, _ := domain.NewMoney(2000, "USD")
	deposit, _ := domain.NewMoney(4000, "USD")
	rental, err := domain.NewRental(domain.NewRentalParams{
		EquipmentID:       "eq-1",
		ClientCompanyID:   "client-1",
		ProviderCompanyID: "provider-1",
		StartDate:         time.Now(),
		EndDate:           time.Now().AddDate(1, 0, 0),
		MonthlyRate:       rate,
		SecurityDeposit:   deposit,
	})
	assert.NoError(t, err)
	return rental
}

func TestRentalRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rental := newTestRental(t)

		mock.ExpectExec("INSERT INTO rentals").
			WithArgs(rental.ID, "eq-1", "client-1", "provider-1",
				sqlmock.AnyArg(), sqlmock.AnyArg(), 2000.0, "USD", 4000.0,
				domain.RentalStatusActive, "", "", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Save(ctx, rental))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(rentalRowColumns).
		AddRow("r-1", "eq-1", "client-1", "provider-1", time.Now(), time.Now().AddDate(1, 0, 0),
			2000.0, "USD", 4000.0, "ACTIVE", "NET30", "", "", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
		WithArgs("r-1").
		WillReturnRows(rows)

	rental, err := repo.FindByID(ctx, "r-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.RentalStatusActive, rental.Status)
	assert.Equal(t, "2000.00 USD", rental.MonthlyRate.String())
	assert.Equal(t, "4000.00 USD", rental.SecurityDeposit.String())
}

func TestRentalRepository_FindActiveRentalByEquipment(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("No Active Rental Is Not An Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE equipment_id = \\$1 AND status = 'ACTIVE'").
			WithArgs("eq-1").
			WillReturnRows(sqlmock.NewRows(rentalRowColumns))

		rental, err := repo.FindActiveRentalByEquipment(ctx, "eq-1")
		assert.NoError(t, err)
		assert.Nil(t, rental)
	})

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows(rentalRowColumns).
			AddRow("r-1", "eq-1", "client-1", "provider-1", time.Now(), time.Now().AddDate(1, 0, 0),
				2000.0, "USD", 0.0, "ACTIVE", "", "", "", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE equipment_id = \\$1 AND status = 'ACTIVE'").
			WithArgs("eq-1").
			WillReturnRows(rows)

		rental, err := repo.FindActiveRentalByEquipment(ctx, "eq-1")
		assert.NoError(t, err)
		assert.NotNil(t, rental)
		assert.Equal(t, "r-1", rental.ID)
	})
}

func TestRentalRepository_FindWithPagination(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Filtered By Status", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM rentals WHERE status = \\$1").
			WithArgs("ACTIVE").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

		rows := sqlmock.NewRows(rentalRowColumns).
			AddRow("r-1", "eq-1", "client-1", "provider-1", time.Now(), time.Now().AddDate(1, 0, 0),
				2000.0, "USD", 0.0, "ACTIVE", "", "", "", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE status = \\$1 ORDER BY created_at DESC LIMIT \\$2 OFFSET \\$3").
			WithArgs("ACTIVE", int32(10), int32(10)).
			WillReturnRows(rows)

		rentals, total, err := repo.FindWithPagination(ctx, "ACTIVE", 2, 10)
		assert.NoError(t, err)
		assert.Equal(t, int32(25), total)
		assert.Len(t, rentals, 1)
	})

	t.Run("Unfiltered", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM rentals").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		mock.ExpectQuery("SELECT (.+) FROM rentals ORDER BY created_at DESC LIMIT \\$1 OFFSET \\$2").
			WithArgs(int32(20), int32(0)).
			WillReturnRows(sqlmock.NewRows(rentalRowColumns))

		rentals, total, err := repo.FindWithPagination(ctx, "", 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), total)
		assert.Empty(t, rentals)
	})
}

func TestRentalRepository_GetRevenueStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"active", "completed", "total", "average", "currency"}).
		AddRow(3, 7, 42000.0, 2100.0, "USD")

	mock.ExpectQuery("SELECT").
		WithArgs("provider-1").
		WillReturnRows(rows)

	stats, err := repo.GetRevenueStats(ctx, "provider-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.ActiveRentals)
	assert.Equal(t, 7, stats.CompletedRentals)
	assert.Equal(t, 42000.0, stats.TotalRevenue)
	assert.Equal(t, "USD", stats.Currency)
}

func TestRentalRepository_GetMonthlyRevenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"month", "revenue", "rentals"}).
		AddRow(1, 6000.0, 3).
		AddRow(3, 2000.0, 1)

	mock.ExpectQuery("SELECT EXTRACT\\(MONTH FROM start_date\\)").
		WithArgs("provider-1", 2026).
		WillReturnRows(rows)

	months, err := repo.GetMonthlyRevenue(ctx, "provider-1", 2026)
	assert.NoError(t, err)
	assert.Len(t, months, 2)
	assert.Equal(t, 2026, months[0].Year)
	assert.Equal(t, 1, months[0].Month)
	assert.Equal(t, 6000.0, months[0].Revenue)
}
