// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rent

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/blob"
	"github.com/canonical/property-service/internal/notification"
	"github.com/canonical/property-service/internal/types"
)

// PaymentInput is a single payment against a rent. Proof is optional.
type PaymentInput struct {
	Amount        float64
	Date          time.Time
	Method        string
	TransactionID string
	Notes         string
	Proof         *blob.File
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// StatusFor derives the payment status from the amounts.
func StatusFor(paid, due float64) types.RentStatus {
	switch {
	case paid >= due:
		return types.RentPaid
	case paid > 0:
		return types.RentPartiallyPaid
	}
	return types.RentDue
}

// ApplyPayment appends the payment to the rent history and moves the rent
// along due, partially_paid and paid. Amounts are kept in cents.
func ApplyPayment(r *types.Rent, pay types.Payment) error {
	pay.Amount = roundCents(pay.Amount)
	if pay.Amount <= 0 {
		return apperrors.Validation("payment amount must be positive")
	}
	if pay.Date.IsZero() {
		return apperrors.Validation("payment date is required")
	}

	r.PaymentHistory = append(r.PaymentHistory, pay)
	r.AmountPaid = roundCents(r.AmountPaid + pay.Amount)

	date := pay.Date
	r.PaymentDate = &date
	r.Status = StatusFor(r.AmountPaid, r.AmountDue)

	return nil
}

// RecordPayment applies a payment to the rent. A proof file replaces the
// previous proof, whose blob is removed once the payment commits.
func (s *Service) RecordPayment(ctx context.Context, p authorization.Principal, rentID string, in *PaymentInput) (*types.Rent, error) {
	ctx, span := s.tracer.Start(ctx, "rent.Service.RecordPayment")
	defer span.End()

	if roundCents(in.Amount) <= 0 {
		return nil, apperrors.Validation("payment amount must be positive")
	}

	current, err := s.storage.GetRent(ctx, rentID)
	if err != nil {
		return nil, apperrors.FromStorage(err, "rent")
	}

	if !s.authz.CanManageProperty(ctx, p, current.PropertyID) {
		return nil, apperrors.Forbidden("not allowed to record payments on rent %s", rentID)
	}

	date := in.Date
	if date.IsZero() {
		date = s.now()
	}

	var updated *types.Rent
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		r, err := s.storage.GetRentForUpdate(ctx, rentID)
		if err != nil {
			return apperrors.FromStorage(err, "rent")
		}

		if err := ApplyPayment(r, types.Payment{
			Date:          date,
			Amount:        in.Amount,
			Method:        in.Method,
			TransactionID: in.TransactionID,
			Notes:         in.Notes,
			RecordedBy:    p.ID,
		}); err != nil {
			return err
		}
		if in.Notes != "" {
			r.Notes = in.Notes
		}

		if in.Proof != nil {
			if err := s.replaceProof(ctx, p, r, in.Proof); err != nil {
				return err
			}
		}

		updated, err = s.storage.UpdateRentPayment(ctx, r)
		if err != nil {
			return apperrors.FromStorage(err, "rent")
		}

		s.notifier.Notify(ctx, notification.Payload{
			RecipientID: updated.TenantID,
			Type:        notification.TypePayment,
			Message:     fmt.Sprintf("A payment of %.2f %s was recorded for %s", roundCents(in.Amount), updated.Currency, updated.BillingPeriod),
			Path:        "/rents/" + updated.ID,
			Context:     contextOf(types.RentContext(updated.ID)),
		})
		s.auditor.Record(ctx, p.ID, "rent.payment", "rent", rentID, map[string]interface{}{
			"amount":         roundCents(in.Amount),
			"amount_paid":    updated.AmountPaid,
			"status":         string(updated.Status),
			"transaction_id": in.TransactionID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.derive(updated), nil
}

func (s *Service) replaceProof(ctx context.Context, p authorization.Principal, r *types.Rent, proof *blob.File) error {
	key := blob.KeyFor("rents/"+r.ID+"/proofs", proof.Filename)

	size, err := blob.Stage(ctx, s.blobs, key, proof, s.logger)
	if err != nil {
		return uploadError(err)
	}

	media, err := s.storage.CreateMedia(ctx, &types.Media{
		Key:         key,
		Filename:    proof.Filename,
		ContentType: strings.TrimSpace(proof.ContentType),
		Size:        size,
		UploadedBy:  p.ID,
	})
	if err != nil {
		return apperrors.FromStorage(err, "payment proof")
	}

	previous := r.PaymentProofID
	r.PaymentProofID = &media.ID

	if previous == nil {
		return nil
	}

	old, err := s.storage.GetMedia(ctx, *previous)
	if err != nil {
		// the proof row is already gone, nothing to clean up
		s.logger.Warnf("previous payment proof %s of rent %s not found: %v", *previous, r.ID, err)
		return nil
	}

	if err := s.storage.DeleteMedia(ctx, old.ID); err != nil {
		return apperrors.FromStorage(err, "payment proof")
	}
	blob.DiscardOnCommit(ctx, s.blobs, old.Key, s.logger)

	return nil
}
