// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package publish

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/lnrlnrleite/social/internal/logging"
	"github.com/lnrlnrleite/social/internal/secrets"
	"github.com/lnrlnrleite/social/internal/storage"
	"github.com/lnrlnrleite/social/pkg/tenant"
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
	mux.Post("/api/v0/tenants/{id}/publish", a.publish)
	mux.Post("/api/v0/tenants/{id}/publish/{creationId}", a.publishExisting)
}

type publishRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
	Caption  string `json:"caption" validate:"required"`
}

func (a *API) publish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.service.PublishPost(r.Context(), chi.URLParam(r, "id"), req.ImageURL, req.Caption)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, result)
}

func (a *API) publishExisting(w http.ResponseWriter, r *http.Request) {
	result, err := a.service.PublishExisting(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "creationId"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, result)
}

func (a *API) serviceError(w http.ResponseWriter, err error) {
	var publishErr *PublishError

	switch {
	case errors.Is(err, ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "Tenant not found")
	case errors.Is(err, tenant.ErrMissingCredential), errors.Is(err, secrets.ErrInvalidCiphertext):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &publishErr):
		resp := apiResponse{Message: publishErr.Error(), Status: http.StatusBadGateway}
		if publishErr.CreationID != "" {
			// Surface the orphaned container so the caller can retry the
			// publish step instead of creating a duplicate.
			resp.Data = map[string]string{"creation_id": publishErr.CreationID}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(resp)
	default:
		a.logger.Errorf("Publish API error: %v", err)
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
