// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/lnrlnrleite/social/internal/db"
	"github.com/lnrlnrleite/social/internal/logging"
	"github.com/lnrlnrleite/social/internal/monitoring"
	"github.com/lnrlnrleite/social/internal/tracing"
	"github.com/lnrlnrleite/social/pkg/content"
	"github.com/lnrlnrleite/social/pkg/metrics"
	"github.com/lnrlnrleite/social/pkg/publish"
	"github.com/lnrlnrleite/social/pkg/status"
	"github.com/lnrlnrleite/social/pkg/tenant"
)

func NewRouter(
	tenantService tenant.ServiceInterface,
	contentService content.ServiceInterface,
	publishService publish.ServiceInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	tenant.NewAPI(tenantService, logger).RegisterEndpoints(router)
	content.NewAPI(contentService, logger).RegisterEndpoints(router)
	publish.NewAPI(publishService, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
