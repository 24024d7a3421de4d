// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/pkg/comment"
	"github.com/canonical/property-service/pkg/message"
	"github.com/canonical/property-service/pkg/metrics"
	"github.com/canonical/property-service/pkg/onboarding"
	"github.com/canonical/property-service/pkg/property"
	"github.com/canonical/property-service/pkg/rent"
	"github.com/canonical/property-service/pkg/status"
	"github.com/canonical/property-service/pkg/webhooks"
)

// Services groups the domain services exposed over HTTP.
type Services struct {
	Property   property.ServiceInterface
	Rent       rent.ServiceInterface
	Message    message.ServiceInterface
	Onboarding onboarding.ServiceInterface
	Comment    comment.ServiceInterface

	// Registration is guarded by RegistrationSecret instead of a bearer
	// token and is not routed when the secret is empty.
	Registration       webhooks.ServiceInterface
	RegistrationSecret string
}

// NewRouter serves metrics and status without authentication, everything
// else goes through authenticate first.
func NewRouter(
	services Services,
	authenticate func(http.Handler) http.Handler,
	checks map[string]status.PingerInterface,
	allowedOrigins []string,
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
		middlewareCORS(allowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(checks, tracer, monitor, logger).RegisterEndpoints(router)

	if services.Registration != nil && services.RegistrationSecret != "" {
		webhooks.NewAPI(services.Registration, services.RegistrationSecret, tracer, monitor, logger).RegisterEndpoints(router)
	}

	api := chi.NewMux()
	api.Use(authenticate)

	property.NewAPI(services.Property, tracer, monitor, logger).RegisterEndpoints(api)
	rent.NewAPI(services.Rent, tracer, monitor, logger).RegisterEndpoints(api)
	message.NewAPI(services.Message, tracer, monitor, logger).RegisterEndpoints(api)
	onboarding.NewAPI(services.Onboarding, tracer, monitor, logger).RegisterEndpoints(api)
	comment.NewAPI(services.Comment, tracer, monitor, logger).RegisterEndpoints(api)

	router.Mount("/", api)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
