// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package notification persists in-app notifications as part of the
// operation that caused them.
package notification

import (
	"context"
	"net/url"
	"strings"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

const (
	TypeAssignment = "assignment"
	TypeRemoval    = "removal"
	TypeMessage    = "message"
	TypeRent       = "rent"
	TypePayment    = "payment"
	TypeLease      = "lease"
	TypeOnboarding = "onboarding"
)

// Payload is a notification to deliver to a single user. Path is relative to
// the frontend origin.
type Payload struct {
	RecipientID string
	Type        string
	Message     string
	Path        string
	Context     *types.CommentContext
}

type Notifier struct {
	storage     StorageInterface
	savepoints  SavepointInterface
	frontendURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Notify writes the notification within the ambient transaction, so it is only
// visible if the operation commits. Failures are logged and never returned.
func (n *Notifier) Notify(ctx context.Context, p Payload) {
	ctx, span := n.tracer.Start(ctx, "notification.Notifier.Notify")
	defer span.End()

	if p.RecipientID == "" {
		return
	}

	err := n.savepoints.Savepoint(ctx, func(ctx context.Context) error {
		_, err := n.storage.CreateNotification(ctx, &types.Notification{
			RecipientID: p.RecipientID,
			Type:        p.Type,
			Message:     p.Message,
			Link:        n.Link(p.Path),
			Context:     p.Context,
		})
		return err
	})

	outcome := "ok"
	if err != nil {
		outcome = "error"
		n.logger.Warnf("failed to notify user %s: %v", p.RecipientID, err)
	}
	if merr := n.monitor.IncOperationCounter(map[string]string{"operation": "notify", "outcome": outcome}); merr != nil {
		n.logger.Debugf("failed to record notification outcome: %v", merr)
	}
}

// Link builds an absolute deep link to path on the frontend.
func (n *Notifier) Link(path string) string {
	if path == "" {
		return ""
	}
	if n.frontendURL == "" {
		return path
	}

	base, err := url.Parse(strings.TrimRight(n.frontendURL, "/") + "/")
	if err != nil {
		return path
	}
	ref, err := url.Parse(strings.TrimLeft(path, "/"))
	if err != nil {
		return path
	}

	return base.ResolveReference(ref).String()
}

func NewNotifier(storage StorageInterface, savepoints SavepointInterface, frontendURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Notifier {
	n := new(Notifier)
	n.storage = storage
	n.savepoints = savepoints
	n.frontendURL = frontendURL
	n.tracer = tracer
	n.monitor = monitor
	n.logger = logger

	return n
}
