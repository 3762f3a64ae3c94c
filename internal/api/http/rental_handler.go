package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"coldrent-backend/internal/domain"
	"coldrent-backend/internal/service"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

type createRentalRequest struct {
	EquipmentID       string       `json:"equipment_id"`
	ClientCompanyID   string       `json:"client_company_id"`
	ProviderCompanyID string       `json:"provider_company_id"`
	StartDate         time.Time    `json:"start_date"`
	EndDate           time.Time    `json:"end_date"`
	MonthlyRate       domain.Money `json:"monthly_rate"`
	SecurityDeposit   domain.Money `json:"security_deposit"`
	PaymentTerms      string       `json:"payment_terms"`
	ContractTerms     string       `json:"contract_terms"`
	Notes             string       `json:"notes"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	rental, err := h.rentals.CreateRental(r.Context(), domain.NewRentalParams{
		EquipmentID:       req.EquipmentID,
		ClientCompanyID:   req.ClientCompanyID,
		ProviderCompanyID: req.ProviderCompanyID,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		MonthlyRate:       req.MonthlyRate,
		SecurityDeposit:   req.SecurityDeposit,
		PaymentTerms:      req.PaymentTerms,
		ContractTerms:     req.ContractTerms,
		Notes:             req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentals.GetRental(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type terminateRentalRequest struct {
	Reason string `json:"reason"`
}

func (h *RentalHandler) Terminate(w http.ResponseWriter, r *http.Request) {
	var req terminateRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	rental, err := h.rentals.TerminateRental(r.Context(), mux.Vars(r)["id"], req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentals.CompleteRental(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type extendRentalRequest struct {
	NewEndDate time.Time `json:"new_end_date"`
}

func (h *RentalHandler) Extend(w http.ResponseWriter, r *http.Request) {
	var req extendRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	rental, err := h.rentals.ExtendRental(r.Context(), mux.Vars(r)["id"], req.NewEndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type updateRateRequest struct {
	NewRate domain.Money `json:"new_rate"`
}

func (h *RentalHandler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	var req updateRateRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	rental, err := h.rentals.UpdateMonthlyRate(r.Context(), mux.Vars(r)["id"], req.NewRate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type listRentalsResponse struct {
	Rentals    []domain.Rental `json:"rentals"`
	TotalCount int32           `json:"total_count"`
	Page       int32           `json:"page"`
	PageSize   int32           `json:"page_size"`
}

// List supports optional status filtering plus page/page_size pagination.
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := parseInt32(query.Get("page"), 1)
	pageSize := parseInt32(query.Get("page_size"), 20)

	rentals, total, err := h.rentals.ListRentals(r.Context(), query.Get("status"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listRentalsResponse{
		Rentals:    rentals,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	})
}

func (h *RentalHandler) ListByProvider(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentals.ListRentalsByProvider(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) ListByClient(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentals.ListRentalsByClient(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) RevenueStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.rentals.GetRevenueStats(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *RentalHandler) MonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "year query parameter is required"})
		return
	}

	revenue, err := h.rentals.GetMonthlyRevenue(r.Context(), mux.Vars(r)["id"], year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, revenue)
}

func parseInt32(raw string, fallback int32) int32 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 1 {
		return fallback
	}
	return int32(v)
}
