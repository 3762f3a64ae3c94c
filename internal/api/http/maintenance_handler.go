package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"coldrent-backend/internal/domain"
	"coldrent-backend/internal/service"
)

type MaintenanceHandler struct {
	maintenance service.MaintenanceService
}

func NewMaintenanceHandler(maintenance service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance}
}

type scheduleMaintenanceRequest struct {
	Title                  string    `json:"title"`
	Description            string    `json:"description"`
	Type                   string    `json:"type"`
	Category               string    `json:"category"`
	ScheduledDate          time.Time `json:"scheduled_date"`
	EstimatedDurationHours *float64  `json:"estimated_duration_hours"`
	EquipmentID            string    `json:"equipment_id"`
	ServiceRequestID       string    `json:"service_request_id"`
	TechnicianID           string    `json:"technician_id"`
	ClientCompanyID        string    `json:"client_company_id"`
	ProviderCompanyID      string    `json:"provider_company_id"`
	EstimatedCost          *float64  `json:"estimated_cost"`
}

func (h *MaintenanceHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleMaintenanceRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	record, err := h.maintenance.ScheduleMaintenance(r.Context(), domain.NewMaintenanceParams{
		Title:                  req.Title,
		Description:            req.Description,
		Type:                   domain.MaintenanceType(req.Type),
		Category:               req.Category,
		ScheduledDate:          req.ScheduledDate,
		EstimatedDurationHours: req.EstimatedDurationHours,
		EquipmentID:            req.EquipmentID,
		ServiceRequestID:       req.ServiceRequestID,
		TechnicianID:           req.TechnicianID,
		ClientCompanyID:        req.ClientCompanyID,
		ProviderCompanyID:      req.ProviderCompanyID,
		EstimatedCost:          req.EstimatedCost,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *MaintenanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.maintenance.GetMaintenance(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *MaintenanceHandler) Start(w http.ResponseWriter, r *http.Request) {
	record, err := h.maintenance.StartMaintenance(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

type completeMaintenanceRequest struct {
	WorkPerformed string  `json:"work_performed"`
	ActualCost    float64 `json:"actual_cost"`
	PartsCost     float64 `json:"parts_cost"`
	LaborCost     float64 `json:"labor_cost"`
	PostCondition string  `json:"post_condition"`
}

func (h *MaintenanceHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req completeMaintenanceRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	record, err := h.maintenance.CompleteMaintenance(r.Context(), mux.Vars(r)["id"],
		req.WorkPerformed, req.ActualCost, req.PartsCost, req.LaborCost,
		domain.EquipmentCondition(req.PostCondition))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

type cancelMaintenanceRequest struct {
	Reason string `json:"reason"`
}

func (h *MaintenanceHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req cancelMaintenanceRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	record, err := h.maintenance.CancelMaintenance(r.Context(), mux.Vars(r)["id"], req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

type postponeMaintenanceRequest struct {
	NewDate time.Time `json:"new_date"`
	Reason  string    `json:"reason"`
}

func (h *MaintenanceHandler) Postpone(w http.ResponseWriter, r *http.Request) {
	var req postponeMaintenanceRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	record, err := h.maintenance.PostponeMaintenance(r.Context(), mux.Vars(r)["id"], req.NewDate, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

type rescheduleMaintenanceRequest struct {
	NewDate time.Time `json:"new_date"`
}

func (h *MaintenanceHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	var req rescheduleMaintenanceRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	record, err := h.maintenance.RescheduleMaintenance(r.Context(), mux.Vars(r)["id"], req.NewDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

type rateMaintenanceRequest struct {
	Rating int `json:"rating"`
}

func (h *MaintenanceHandler) Rate(w http.ResponseWriter, r *http.Request) {
	var req rateMaintenanceRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	record, err := h.maintenance.RateMaintenance(r.Context(), mux.Vars(r)["id"], req.Rating)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *MaintenanceHandler) ListByEquipment(w http.ResponseWriter, r *http.Request) {
	equipmentID := r.URL.Query().Get("equipment_id")
	if equipmentID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "equipment_id query parameter is required"})
		return
	}

	records, err := h.maintenance.ListMaintenanceByEquipment(r.Context(), equipmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *MaintenanceHandler) KPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.maintenance.GetKPIs(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, kpis)
}

// Calendar returns the provider's schedule between from and to (RFC 3339).
// Missing bounds default to a window one month either side of today.
func (h *MaintenanceHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	now := time.Now()
	from := now.AddDate(0, -1, 0)
	to := now.AddDate(0, 1, 0)

	if raw := query.Get("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "from must be RFC 3339"})
			return
		}
		from = parsed
	}
	if raw := query.Get("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "to must be RFC 3339"})
			return
		}
		to = parsed
	}

	entries, err := h.maintenance.GetCalendar(r.Context(), mux.Vars(r)["id"], from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
