// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/jobs"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/pkg/authentication"
	"github.com/canonical/property-service/pkg/status"
	"github.com/canonical/property-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs, err := loadSpecs()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	c, err := newComponents(specs, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			ctx,
			specs.AuthenticationIssuer,
			specs.AuthenticationJwksURL,
			specs.AuthenticationJWTSecret,
			specs.AllowedSubjects,
			specs.RequiredScope,
			c.tracer,
			c.monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up authentication: %w", err)
		}
	} else {
		verifier = authentication.NewNoopVerifier()
		logger.Info("Authentication is disabled, bearer tokens are taken as user ids")
	}
	authMiddleware := authentication.NewMiddleware(verifier, c.storage, c.tracer, c.monitor, logger)

	checks := map[string]status.PingerInterface{"database": c.dbClient}
	if c.redis != nil {
		checks["redis"] = redisPinger{c.redis}
	}

	router := web.NewRouter(
		web.Services{
			Property:   c.property,
			Rent:       c.rent,
			Message:    c.message,
			Onboarding: c.onboarding,
			Comment:    c.comment,

			Registration:       c.webhooks,
			RegistrationSecret: specs.RegistrationWebhookSecret,
		},
		authMiddleware.Authenticate(),
		checks,
		specs.CORSAllowedOrigins,
		c.tracer,
		c.monitor,
		logger,
	)

	if specs.RentGenerationEnabled {
		job := jobs.NewJob(
			"rent-generation",
			specs.RentGenerationInterval,
			specs.RentGenerationLockTTL,
			scheduledRun(c),
			c.locker,
			c.tracer,
			c.monitor,
			logger,
		)
		job.Start(ctx)
		logger.Infof("Rent generation runs every %s", specs.RentGenerationInterval)
	}

	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			sig <- os.Interrupt
		}
	}()

	<-sig
	cancel()

	// Create a deadline to wait for.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

// scheduledRun expires ended leases first so generation never bills them.
func scheduledRun(c *components) jobs.Task {
	return func(ctx context.Context, now time.Time) error {
		expired, err := c.property.ExpireLeases(ctx, now)
		if err != nil {
			return fmt.Errorf("failed to expire leases: %w", err)
		}
		if expired > 0 {
			c.logger.Infof("expired %d leases", expired)
		}

		if _, err := c.rent.GenerateRentRecords(ctx, authorization.SystemPrincipal, now, false); err != nil {
			return fmt.Errorf("failed to generate rent records: %w", err)
		}

		return nil
	}
}
