// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/property-service/internal/types"
)

var associationColumns = []string{
	"id", "user_id", "property_id", "unit_id", "roles", "is_active", "start_date", "end_date", "invited_by", "created_at", "updated_at",
}

// AssociationFilter narrows an association lookup. Empty fields are ignored,
// Roles matches associations carrying at least one of the listed roles.
type AssociationFilter struct {
	UserID        string
	PropertyID    string
	UnitID        *string
	ExcludeUnitID string
	Roles         types.RoleSet
	ActiveOnly    bool
}

func (f AssociationFilter) apply(q sq.SelectBuilder) sq.SelectBuilder {
	if f.UserID != "" {
		q = q.Where(sq.Eq{"user_id": f.UserID})
	}
	if f.PropertyID != "" {
		q = q.Where(sq.Eq{"property_id": f.PropertyID})
	}
	if f.UnitID != nil {
		q = q.Where(sq.Eq{"unit_id": *f.UnitID})
	}
	if f.ExcludeUnitID != "" {
		q = q.Where(sq.NotEq{"unit_id": f.ExcludeUnitID})
	}
	if len(f.Roles) > 0 {
		q = q.Where("roles && ?::text[]", f.Roles.Strings())
	}
	if f.ActiveOnly {
		q = q.Where(sq.Eq{"is_active": true})
	}
	return q
}

func (s *Storage) scanAssociation(row sq.RowScanner) (*types.PropertyUser, error) {
	var (
		a     types.PropertyUser
		roles []string
	)

	err := row.Scan(
		&a.ID, &a.UserID, &a.PropertyID, &a.UnitID, s.textArray(&roles), &a.IsActive, &a.StartDate, &a.EndDate, &a.InvitedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// unknown roles are dropped rather than granting anything
	for _, r := range roles {
		if role := types.AssociationRole(r); role.Valid() {
			a.Roles = append(a.Roles, role)
		}
	}

	return &a, nil
}

func (s *Storage) listAssociations(ctx context.Context, f AssociationFilter) ([]*types.PropertyUser, error) {
	rows, err := f.apply(
		s.db.Statement(ctx).
			Select(associationColumns...).
			From("property_users"),
	).
		OrderBy("created_at", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, classify(err, "list associations")
	}
	defer rows.Close()

	associations := make([]*types.PropertyUser, 0)
	for rows.Next() {
		a, err := s.scanAssociation(rows)
		if err != nil {
			return nil, classify(err, "scan association")
		}
		associations = append(associations, a)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate association rows")
	}

	return associations, nil
}

// AssociationsOf returns every association of the user.
func (s *Storage) AssociationsOf(ctx context.Context, userID string, activeOnly bool) ([]*types.PropertyUser, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AssociationsOf")
	defer span.End()

	return s.listAssociations(ctx, AssociationFilter{UserID: userID, ActiveOnly: activeOnly})
}

// ListPropertyUsers returns every association on the property.
func (s *Storage) ListPropertyUsers(ctx context.Context, propertyID string, activeOnly bool) ([]*types.PropertyUser, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPropertyUsers")
	defer span.End()

	return s.listAssociations(ctx, AssociationFilter{PropertyID: propertyID, ActiveOnly: activeOnly})
}

func (s *Storage) ExistsAssociation(ctx context.Context, f AssociationFilter) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ExistsAssociation")
	defer span.End()

	sub, args, err := f.apply(
		sq.Select("1").From("property_users"),
	).ToSql()
	if err != nil {
		return false, classify(err, "build association lookup")
	}

	var exists bool
	err = s.db.Statement(ctx).
		Select().
		Column(sq.Expr("EXISTS ("+sub+")", args...)).
		QueryRowContext(ctx).
		Scan(&exists)
	if err != nil {
		return false, classify(err, "check association")
	}

	return exists, nil
}

// CountAssociations counts the associations matching the filter.
func (s *Storage) CountAssociations(ctx context.Context, f AssociationFilter) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountAssociations")
	defer span.End()

	var count int
	err := f.apply(
		s.db.Statement(ctx).
			Select("count(*)").
			From("property_users"),
	).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, classify(err, "count associations")
	}

	return count, nil
}

// findAssociationForUpdate locks the (user, property, unit) record, a nil unit
// only matches property wide associations.
func (s *Storage) findAssociationForUpdate(ctx context.Context, userID, propertyID string, unitID *string) (*types.PropertyUser, error) {
	query := s.db.Statement(ctx).
		Select(associationColumns...).
		From("property_users").
		Where(sq.Eq{"user_id": userID, "property_id": propertyID}).
		Suffix("FOR UPDATE")

	if unitID == nil {
		query = query.Where(sq.Eq{"unit_id": nil})
	} else {
		query = query.Where(sq.Eq{"unit_id": *unitID})
	}

	a, err := s.scanAssociation(query.QueryRowContext(ctx))
	if err != nil {
		return nil, classify(err, "get association")
	}

	return a, nil
}

// grantRoles decides the roles an existing record holds after a grant. An
// inactive record starts over from the requested roles so nothing revoked
// earlier comes back.
func grantRoles(existing *types.PropertyUser, roles types.RoleSet) (types.RoleSet, error) {
	if !existing.IsActive {
		return types.NewRoleSet(roles...), nil
	}
	if existing.Roles.ContainsAll(roles) {
		return nil, ErrAlreadyActive
	}
	return existing.Roles.Union(roles), nil
}

// revocation is the outcome of removing roles from a record. Roles is empty
// when nothing is left, the stored roles are then kept on the inactive row.
type revocation struct {
	Roles      types.RoleSet
	Deactivate bool
}

// revokeRoles removes roles from an active record. Removing a tenant from a
// unit always deactivates the record.
func revokeRoles(existing *types.PropertyUser, roles types.RoleSet, unitID *string) (revocation, error) {
	if !existing.IsActive || !existing.Roles.HasAny(roles) {
		return revocation{}, ErrNotFound
	}

	remaining := existing.Roles.Without(roles)
	return revocation{
		Roles:      remaining,
		Deactivate: len(remaining) == 0 || (unitID != nil && roles.Has(types.AssocTenant)),
	}, nil
}

// UpsertAssociation grants roles to the user on the property and unit. An
// active record has the roles merged in, an inactive one is reactivated with
// exactly the requested roles, otherwise a new one is inserted.
// ErrAlreadyActive is returned when nothing would change.
func (s *Storage) UpsertAssociation(ctx context.Context, userID, propertyID string, unitID *string, roles types.RoleSet, invitedBy string) (*types.PropertyUser, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertAssociation")
	defer span.End()

	existing, err := s.findAssociationForUpdate(ctx, userID, propertyID, unitID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		granted, err := grantRoles(existing, roles)
		if err != nil {
			return nil, err
		}

		updated, err := s.scanAssociation(
			s.db.Statement(ctx).
				Update("property_users").
				Set("roles", granted.Strings()).
				Set("is_active", true).
				Set("end_date", nil).
				Set("updated_at", sq.Expr("now()")).
				Where(sq.Eq{"id": existing.ID}).
				Suffix("RETURNING "+joinColumns(associationColumns)).
				QueryRowContext(ctx),
		)
		if err != nil {
			return nil, classify(err, "reactivate association")
		}

		return updated, nil
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := s.scanAssociation(
		s.db.Statement(ctx).
			Insert("property_users").
			Columns("id", "user_id", "property_id", "unit_id", "roles", "is_active", "start_date", "invited_by").
			Values(id, userID, propertyID, unitID, types.NewRoleSet(roles...).Strings(), true, sq.Expr("now()"), invitedBy).
			Suffix("RETURNING "+joinColumns(associationColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "insert association")
	}

	return created, nil
}

// DeactivateRoles removes roles from the user's association on the property
// and unit. The record is deactivated when no role is left or when a tenant
// is removed from a unit.
func (s *Storage) DeactivateRoles(ctx context.Context, userID, propertyID string, roles types.RoleSet, unitID *string) (*types.PropertyUser, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeactivateRoles")
	defer span.End()

	existing, err := s.findAssociationForUpdate(ctx, userID, propertyID, unitID)
	if err != nil {
		return nil, err
	}

	outcome, err := revokeRoles(existing, roles, unitID)
	if err != nil {
		return nil, err
	}

	update := s.db.Statement(ctx).
		Update("property_users").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": existing.ID}).
		Suffix("RETURNING " + joinColumns(associationColumns))

	if len(outcome.Roles) > 0 {
		update = update.Set("roles", outcome.Roles.Strings())
	}
	if outcome.Deactivate {
		update = update.Set("is_active", false).Set("end_date", sq.Expr("now()"))
	}

	updated, err := s.scanAssociation(update.QueryRowContext(ctx))
	if err != nil {
		return nil, classify(err, "deactivate association roles")
	}

	return updated, nil
}
