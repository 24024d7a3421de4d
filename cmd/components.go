// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"

	"github.com/canonical/property-service/internal/audit"
	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/blob"
	"github.com/canonical/property-service/internal/config"
	"github.com/canonical/property-service/internal/db"
	"github.com/canonical/property-service/internal/locking"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/monitoring/prometheus"
	"github.com/canonical/property-service/internal/notification"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
	"github.com/canonical/property-service/pkg/comment"
	"github.com/canonical/property-service/pkg/message"
	"github.com/canonical/property-service/pkg/onboarding"
	"github.com/canonical/property-service/pkg/property"
	"github.com/canonical/property-service/pkg/rent"
	"github.com/canonical/property-service/pkg/webhooks"
)

// loadSpecs reads an optional .env file before processing the environment.
func loadSpecs() (*config.EnvSpec, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	return specs, nil
}

// components holds everything built from the environment that both the
// server and the one-shot commands need.
type components struct {
	dbClient *db.DBClient
	storage  *storage.Storage
	locker   locking.LockerInterface
	redis    *redis.Client

	property   *property.Service
	rent       *rent.Service
	message    *message.Service
	onboarding *onboarding.Service
	comment    *comment.Service
	webhooks   *webhooks.Service

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *components) Close() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.logger.Errorf("failed to close redis client: %v", err)
		}
	}
	c.dbClient.Close()
}

func newComponents(specs *config.EnvSpec, logger logging.LoggerInterface) (*components, error) {
	c := new(components)
	c.logger = logger
	c.monitor = prometheus.NewMonitor("property-service", logger)
	c.tracer = tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	roles, ok := types.ParseRoleSet(specs.AuthorizationRequiredRoles)
	if !ok {
		return nil, fmt.Errorf("invalid authorization roles: %v", specs.AuthorizationRequiredRoles)
	}

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, c.tracer, c.monitor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %v", err)
	}
	c.dbClient = dbClient
	c.storage = storage.NewStorage(dbClient, c.tracer, c.monitor, logger)

	var blobs rent.BlobStoreInterface = blob.NewDisabledStore()
	if specs.BlobRoot != "" {
		fsStore, err := blob.NewFSStore(specs.BlobRoot, c.tracer, c.monitor, logger)
		if err != nil {
			dbClient.Close()
			return nil, fmt.Errorf("failed to create blob store: %v", err)
		}
		blobs = fsStore
		logger.Infof("Storing attachments under %s", specs.BlobRoot)
	} else {
		logger.Info("Attachments are disabled")
	}

	if specs.RedisAddr != "" {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     specs.RedisAddr,
			Password: specs.RedisPassword,
		})
		c.locker = locking.NewRedisLocker(c.redis, c.tracer, c.monitor, logger)
		logger.Infof("Using redis locks at %s", specs.RedisAddr)
	} else {
		c.locker = locking.NewLocalLocker()
		logger.Info("Using in-process locks")
	}

	authorizer := authorization.NewAuthorizer(c.storage, roles, c.tracer, c.monitor, logger)
	notifier := notification.NewNotifier(c.storage, dbClient, specs.FrontendURL, c.tracer, c.monitor, logger)
	auditor := audit.NewAuditor(c.storage, dbClient, c.tracer, c.monitor, logger)

	c.property = property.NewService(c.storage, authorizer, dbClient, notifier, auditor, c.tracer, c.monitor, logger)
	c.rent = rent.NewService(c.storage, authorizer, dbClient, blobs, notifier, auditor, c.tracer, c.monitor, logger)
	c.message = message.NewService(c.storage, authorizer, dbClient, notifier, auditor, c.tracer, c.monitor, logger)
	c.onboarding = onboarding.NewService(c.storage, authorizer, dbClient, blobs, notifier, auditor, c.tracer, c.monitor, logger)
	c.comment = comment.NewService(c.storage, authorizer, dbClient, auditor, c.tracer, c.monitor, logger)
	c.webhooks = webhooks.NewService(c.storage, dbClient, auditor, c.tracer, c.monitor, logger)

	return c, nil
}
