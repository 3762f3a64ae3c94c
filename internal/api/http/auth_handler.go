package http

import (
	"net/http"

	"coldrent-backend/internal/security"
	"coldrent-backend/internal/service"
)

// AuthHandler issues access tokens for registered companies. Identity
// verification happens upstream; this endpoint only mints the JWT a trusted
// caller asks for.
type AuthHandler struct {
	companies service.CompanyService
	tokens    security.TokenManager
}

func NewAuthHandler(companies service.CompanyService, tokens security.TokenManager) *AuthHandler {
	return &AuthHandler{companies: companies, tokens: tokens}
}

type tokenRequest struct {
	CompanyID string `json:"company_id"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	company, err := h.companies.GetCompany(r.Context(), req.CompanyID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !company.IsActive {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "company is deactivated"})
		return
	}

	token, err := h.tokens.GenerateAccessToken(company.ID, string(company.Type))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token})
}
