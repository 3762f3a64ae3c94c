package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"coldrent-backend/internal/domain"
	"coldrent-backend/internal/service"
)

type CompanyHandler struct {
	companies service.CompanyService
}

func NewCompanyHandler(companies service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

type registerCompanyRequest struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ContactPerson string `json:"contact_person"`
	TaxID         string `json:"tax_id"`
}

func (h *CompanyHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerCompanyRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	company, err := h.companies.RegisterCompany(r.Context(), req.Name, domain.CompanyType(req.Type),
		req.Address, req.Phone, req.Email, req.ContactPerson, req.TaxID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, company)
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	company, err := h.companies.GetCompany(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

type updateCompanyRequest struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	ContactPerson *string `json:"contact_person"`
	TaxID         *string `json:"tax_id"`
}

func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCompanyRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	company, err := h.companies.UpdateCompany(r.Context(), mux.Vars(r)["id"], domain.CompanyUpdate{
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		ContactPerson: req.ContactPerson,
		TaxID:         req.TaxID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) Activate(w http.ResponseWriter, r *http.Request) {
	if err := h.companies.ActivateCompany(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *CompanyHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.companies.DeactivateCompany(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *CompanyHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	companyType := domain.CompanyType(r.URL.Query().Get("type"))
	companies, err := h.companies.ListCompaniesByType(r.Context(), companyType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, companies)
}

func (h *CompanyHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.companies.GetCompanyStatistics(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
