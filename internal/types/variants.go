// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
)

// ContextType tags the entity a comment or notification points at.
type ContextType string

const (
	ContextProperty ContextType = "Property"
	ContextUnit     ContextType = "Unit"
	ContextLease    ContextType = "Lease"
	ContextRent     ContextType = "Rent"
	ContextMessage  ContextType = "Message"
)

// CommentContext is a reference to any entity that can carry comments or be
// the subject of a notification. Only the id travels with it, the entity is
// resolved at read time by dispatching on Type.
type CommentContext struct {
	Type ContextType `json:"type"`
	ID   string      `json:"id"`
}

func PropertyContext(id string) CommentContext { return CommentContext{Type: ContextProperty, ID: id} }
func UnitContext(id string) CommentContext     { return CommentContext{Type: ContextUnit, ID: id} }
func LeaseContext(id string) CommentContext    { return CommentContext{Type: ContextLease, ID: id} }
func RentContext(id string) CommentContext     { return CommentContext{Type: ContextRent, ID: id} }
func MessageContext(id string) CommentContext  { return CommentContext{Type: ContextMessage, ID: id} }

// ParseCommentContext validates a raw (type, id) pair.
func ParseCommentContext(contextType, id string) (CommentContext, error) {
	c := CommentContext{Type: ContextType(contextType), ID: id}
	switch c.Type {
	case ContextProperty, ContextUnit, ContextLease, ContextRent, ContextMessage:
	default:
		return CommentContext{}, fmt.Errorf("unknown context type %q", contextType)
	}
	if id == "" {
		return CommentContext{}, fmt.Errorf("context id is required")
	}
	return c, nil
}

type AssigneeKind string

const (
	AssigneeUser   AssigneeKind = "user"
	AssigneeVendor AssigneeKind = "vendor"
)

// Assignee is who scheduled maintenance is assigned to: a user or a vendor.
type Assignee struct {
	Kind AssigneeKind `json:"kind"`
	ID   string       `json:"id"`
}

func UserAssignee(id string) *Assignee   { return &Assignee{Kind: AssigneeUser, ID: id} }
func VendorAssignee(id string) *Assignee { return &Assignee{Kind: AssigneeVendor, ID: id} }
