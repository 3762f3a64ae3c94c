package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"coldrent-backend/internal/domain"
	"coldrent-backend/internal/service"
)

type EquipmentHandler struct {
	equipment service.EquipmentService
}

func NewEquipmentHandler(equipment service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipment: equipment}
}

type registerEquipmentRequest struct {
	OwnerCompanyID string `json:"owner_company_id"`
	Type           string `json:"type"`
	Condition      string `json:"condition"`
}

func (h *EquipmentHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerEquipmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	eq, err := h.equipment.RegisterEquipment(r.Context(), req.OwnerCompanyID, req.Type,
		domain.EquipmentCondition(req.Condition))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, eq)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	eq, err := h.equipment.GetEquipment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "owner_id query parameter is required"})
		return
	}

	units, err := h.equipment.ListEquipmentByOwner(r.Context(), ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, units)
}

type setRentalRateRequest struct {
	Rate domain.Money `json:"rate"`
}

func (h *EquipmentHandler) SetRentalRate(w http.ResponseWriter, r *http.Request) {
	var req setRentalRateRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	eq, err := h.equipment.SetRentalRate(r.Context(), mux.Vars(r)["id"], req.Rate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) RentabilityReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.equipment.GetRentabilityReport(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
