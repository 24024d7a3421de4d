// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	// FrontendURL is the absolute origin used to build deep links in notifications
	FrontendURL string `envconfig:"frontend_url" required:"true"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AuthenticationEnabled   bool     `envconfig:"authentication_enabled" default:"false"`
	AuthenticationIssuer    string   `envconfig:"authentication_issuer"`
	AuthenticationJwksURL   string   `envconfig:"authentication_jwks_url"`
	AuthenticationJWTSecret string   `envconfig:"authentication_jwt_secret"`
	AllowedSubjects         []string `envconfig:"authentication_allowed_subjects"`
	RequiredScope           string   `envconfig:"authentication_required_scope" default:"property-service"`

	// AuthorizationRequiredRoles are the association roles granting property management
	AuthorizationRequiredRoles []string `envconfig:"authorization_required_roles" default:"landlord,propertymanager,admin_access"`

	// RegistrationWebhookSecret enables the identity provider registration hook
	RegistrationWebhookSecret string `envconfig:"registration_webhook_secret"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	BlobRoot string `envconfig:"blob_root" default:""`

	RedisAddr     string `envconfig:"redis_addr"`
	RedisPassword string `envconfig:"redis_password"`

	RentGenerationEnabled  bool          `envconfig:"rent_generation_enabled" default:"false"`
	RentGenerationInterval time.Duration `envconfig:"rent_generation_interval" default:"1h"`
	RentGenerationLockTTL  time.Duration `envconfig:"rent_generation_lock_ttl" default:"5m"`
}
