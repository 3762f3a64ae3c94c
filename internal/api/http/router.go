package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"coldrent-backend/internal/security"
	"coldrent-backend/internal/service"
)

// NewRouter wires every API endpoint under /api/v1. The token endpoint and
// health check are public; everything else sits behind the auth middleware.
func NewRouter(
	companySvc service.CompanyService,
	equipmentSvc service.EquipmentService,
	rentalSvc service.RentalService,
	maintenanceSvc service.MaintenanceService,
	tokens security.TokenManager,
) *mux.Router {
	authHandler := NewAuthHandler(companySvc, tokens)
	companyHandler := NewCompanyHandler(companySvc)
	equipmentHandler := NewEquipmentHandler(equipmentSvc)
	rentalHandler := NewRentalHandler(rentalSvc)
	maintenanceHandler := NewMaintenanceHandler(maintenanceSvc)

	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	router.HandleFunc("/api/v1/auth/token", authHandler.IssueToken).Methods("POST")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(NewAuthMiddleware(tokens).Handler)

	// Companies
	api.HandleFunc("/companies", companyHandler.Register).Methods("POST")
	api.HandleFunc("/companies", companyHandler.ListByType).Methods("GET")
	api.HandleFunc("/companies/{id}", companyHandler.Get).Methods("GET")
	api.HandleFunc("/companies/{id}", companyHandler.Update).Methods("PATCH")
	api.HandleFunc("/companies/{id}/activate", companyHandler.Activate).Methods("POST")
	api.HandleFunc("/companies/{id}/deactivate", companyHandler.Deactivate).Methods("POST")
	api.HandleFunc("/companies/{id}/statistics", companyHandler.Statistics).Methods("GET")

	// Equipment
	api.HandleFunc("/equipment", equipmentHandler.Register).Methods("POST")
	api.HandleFunc("/equipment", equipmentHandler.ListByOwner).Methods("GET")
	api.HandleFunc("/equipment/{id}", equipmentHandler.Get).Methods("GET")
	api.HandleFunc("/equipment/{id}/rate", equipmentHandler.SetRentalRate).Methods("PUT")
	api.HandleFunc("/equipment/{id}/report", equipmentHandler.RentabilityReport).Methods("GET")

	// Rentals
	api.HandleFunc("/rentals", rentalHandler.Create).Methods("POST")
	api.HandleFunc("/rentals", rentalHandler.List).Methods("GET")
	api.HandleFunc("/rentals/{id}", rentalHandler.Get).Methods("GET")
	api.HandleFunc("/rentals/{id}/terminate", rentalHandler.Terminate).Methods("POST")
	api.HandleFunc("/rentals/{id}/complete", rentalHandler.Complete).Methods("POST")
	api.HandleFunc("/rentals/{id}/extend", rentalHandler.Extend).Methods("POST")
	api.HandleFunc("/rentals/{id}/rate", rentalHandler.UpdateRate).Methods("PUT")
	api.HandleFunc("/providers/{id}/rentals", rentalHandler.ListByProvider).Methods("GET")
	api.HandleFunc("/clients/{id}/rentals", rentalHandler.ListByClient).Methods("GET")
	api.HandleFunc("/providers/{id}/revenue", rentalHandler.RevenueStats).Methods("GET")
	api.HandleFunc("/providers/{id}/revenue/monthly", rentalHandler.MonthlyRevenue).Methods("GET")

	// Maintenance
	api.HandleFunc("/maintenance", maintenanceHandler.Schedule).Methods("POST")
	api.HandleFunc("/maintenance", maintenanceHandler.ListByEquipment).Methods("GET")
	api.HandleFunc("/maintenance/{id}", maintenanceHandler.Get).Methods("GET")
	api.HandleFunc("/maintenance/{id}/start", maintenanceHandler.Start).Methods("POST")
	api.HandleFunc("/maintenance/{id}/complete", maintenanceHandler.Complete).Methods("POST")
	api.HandleFunc("/maintenance/{id}/cancel", maintenanceHandler.Cancel).Methods("POST")
	api.HandleFunc("/maintenance/{id}/postpone", maintenanceHandler.Postpone).Methods("POST")
	api.HandleFunc("/maintenance/{id}/reschedule", maintenanceHandler.Reschedule).Methods("POST")
	api.HandleFunc("/maintenance/{id}/rating", maintenanceHandler.Rate).Methods("PUT")
	api.HandleFunc("/providers/{id}/maintenance/kpis", maintenanceHandler.KPIs).Methods("GET")
	api.HandleFunc("/providers/{id}/maintenance/calendar", maintenanceHandler.Calendar).Methods("GET")

	return router
}
