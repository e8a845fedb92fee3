// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lnrlnrleite/social/internal/logging"
	"github.com/lnrlnrleite/social/internal/secrets"
	"github.com/lnrlnrleite/social/internal/storage"
	"github.com/lnrlnrleite/social/pkg/tenant"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/tenants/{id}/generate", a.generate)
}

type generateRequest struct {
	Topic string `json:"topic"`
}

func (a *API) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := a.service.GeneratePostAndImage(r.Context(), chi.URLParam(r, "id"), req.Topic)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, result)
}

func (a *API) serviceError(w http.ResponseWriter, err error) {
	var generationErr *GenerationError

	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "Tenant not found")
	case errors.Is(err, tenant.ErrMissingCredential), errors.Is(err, secrets.ErrInvalidCiphertext):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &generationErr):
		writeError(w, http.StatusBadGateway, generationErr.Error())
	default:
		a.logger.Errorf("Content API error: %v", err)
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
