// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/lnrlnrleite/social/internal/logging"
	"github.com/lnrlnrleite/social/internal/secrets"
	"github.com/lnrlnrleite/social/internal/storage"
	"github.com/lnrlnrleite/social/internal/types"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = validator.New()
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/tenants", a.createTenant)
	mux.Get("/api/v0/tenants", a.listTenants)
	mux.Get("/api/v0/tenants/{id}", a.getTenant)
	mux.Patch("/api/v0/tenants/{id}", a.updateTenant)
}

type createTenantRequest struct {
	BusinessName         string  `json:"business_name" validate:"required"`
	Niche                *string `json:"niche"`
	BusinessDescription  *string `json:"business_description"`
	TargetAudience       *string `json:"target_audience"`
	ToneOfVoice          *string `json:"tone_of_voice"`
	MainProducts         *string `json:"main_products"`
	GeminiAPIKey         *string `json:"gemini_api_key"`
	InstagramAccessToken *string `json:"instagram_access_token"`
	InstagramBusinessID  *string `json:"instagram_business_id"`
}

type updateTenantRequest struct {
	BusinessName         *string `json:"business_name"`
	Niche                *string `json:"niche"`
	BusinessDescription  *string `json:"business_description"`
	TargetAudience       *string `json:"target_audience"`
	ToneOfVoice          *string `json:"tone_of_voice"`
	MainProducts         *string `json:"main_products"`
	GeminiAPIKey         *string `json:"gemini_api_key"`
	InstagramAccessToken *string `json:"instagram_access_token"`
	InstagramBusinessID  *string `json:"instagram_business_id"`
}

func (a *API) createTenant(w http.ResponseWriter, r *http.Request) {
	var req createTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := &types.TenantParams{
		BusinessName:         &req.BusinessName,
		Niche:                req.Niche,
		BusinessDescription:  req.BusinessDescription,
		TargetAudience:       req.TargetAudience,
		ToneOfVoice:          req.ToneOfVoice,
		MainProducts:         req.MainProducts,
		GeminiAPIKey:         req.GeminiAPIKey,
		InstagramAccessToken: req.InstagramAccessToken,
		InstagramBusinessID:  req.InstagramBusinessID,
	}

	tenant, err := a.service.CreateTenant(r.Context(), params)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	writeResponse(w, http.StatusCreated, tenant)
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := a.service.ListTenants(r.Context())
	if err != nil {
		a.serviceError(w, err)
		return
	}

	if tenants == nil {
		tenants = []*types.Tenant{}
	}

	writeResponse(w, http.StatusOK, tenants)
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	tenant, err := a.service.GetTenant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, tenant)
}

func (a *API) updateTenant(w http.ResponseWriter, r *http.Request) {
	var req updateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := &types.TenantParams{
		BusinessName:         req.BusinessName,
		Niche:                req.Niche,
		BusinessDescription:  req.BusinessDescription,
		TargetAudience:       req.TargetAudience,
		ToneOfVoice:          req.ToneOfVoice,
		MainProducts:         req.MainProducts,
		GeminiAPIKey:         req.GeminiAPIKey,
		InstagramAccessToken: req.InstagramAccessToken,
		InstagramBusinessID:  req.InstagramBusinessID,
	}

	tenant, err := a.service.UpdateSettings(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, tenant)
}

func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "Tenant not found")
	case errors.Is(err, storage.ErrDuplicateKey):
		writeError(w, http.StatusConflict, "Tenant already exists")
	case errors.Is(err, ErrMissingCredential), errors.Is(err, secrets.ErrInvalidCiphertext):
		writeError(w, http.StatusConflict, err.Error())
	default:
		a.logger.Errorf("Tenant API error: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

type apiResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Status  int         `json:"status"`
}

func writeResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiResponse{Data: data, Status: status})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiResponse{Message: message, Status: status})
}
