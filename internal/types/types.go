// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Role is the global role of a user.
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleLandlord        Role = "landlord"
	RolePropertyManager Role = "propertymanager"
	RoleTenant          Role = "tenant"
	RoleVendor          Role = "vendor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLandlord, RolePropertyManager, RoleTenant, RoleVendor:
		return true
	}
	return false
}

type UnitStatus string

const (
	UnitVacant           UnitStatus = "vacant"
	UnitOccupied         UnitStatus = "occupied"
	UnitUnderMaintenance UnitStatus = "under_maintenance"
	UnitUnavailable      UnitStatus = "unavailable"
)

type LeaseStatus string

const (
	LeaseActive     LeaseStatus = "active"
	LeaseExpired    LeaseStatus = "expired"
	LeaseTerminated LeaseStatus = "terminated"
	LeasePending    LeaseStatus = "pending"
)

type RentStatus string

const (
	RentDue           RentStatus = "due"
	RentPartiallyPaid RentStatus = "partially_paid"
	RentPaid          RentStatus = "paid"
	RentOverdue       RentStatus = "overdue"
)

type User struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	Role      Role      `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Property struct {
	ID                string    `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Address           string    `db:"address" json:"address"`
	Type              string    `db:"type" json:"type"`
	CreatedBy         string    `db:"created_by" json:"created_by"`
	IsActive          bool      `db:"is_active" json:"is_active"`
	MainContactUserID *string   `db:"main_contact_user_id" json:"main_contact_user_id,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

type Unit struct {
	ID         string     `db:"id" json:"id"`
	PropertyID string     `db:"property_id" json:"property_id"`
	UnitName   string     `db:"unit_name" json:"unit_name"`
	Status     UnitStatus `db:"status" json:"status"`
	// MaintenanceFlag is the manually set status applied when the unit is
	// neither leased nor tenanted, empty when unset.
	MaintenanceFlag UnitStatus `db:"maintenance_flag" json:"maintenance_flag,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// PropertyUser associates a user with a property, and with a unit for tenants.
type PropertyUser struct {
	ID         string     `db:"id" json:"id"`
	UserID     string     `db:"user_id" json:"user_id"`
	PropertyID string     `db:"property_id" json:"property_id"`
	UnitID     *string    `db:"unit_id" json:"unit_id,omitempty"`
	Roles      RoleSet    `db:"roles" json:"roles"`
	IsActive   bool       `db:"is_active" json:"is_active"`
	StartDate  time.Time  `db:"start_date" json:"start_date"`
	EndDate    *time.Time `db:"end_date" json:"end_date,omitempty"`
	InvitedBy  string     `db:"invited_by" json:"invited_by"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

type Lease struct {
	ID          string      `db:"id" json:"id"`
	PropertyID  string      `db:"property_id" json:"property_id"`
	UnitID      string      `db:"unit_id" json:"unit_id"`
	TenantID    string      `db:"tenant_id" json:"tenant_id"`
	StartDate   time.Time   `db:"start_date" json:"start_date"`
	EndDate     time.Time   `db:"end_date" json:"end_date"`
	MonthlyRent float64     `db:"monthly_rent" json:"monthly_rent"`
	Currency    string      `db:"currency" json:"currency"`
	Status      LeaseStatus `db:"status" json:"status"`
	CreatedBy   string      `db:"created_by" json:"created_by"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

type RentSchedule struct {
	ID                string           `db:"id" json:"id"`
	LeaseID           string           `db:"lease_id" json:"lease_id"`
	Amount            float64          `db:"amount" json:"amount"`
	Currency          string           `db:"currency" json:"currency"`
	DueDateDay        int              `db:"due_date_day" json:"due_date_day"`
	BillingFrequency  BillingFrequency `db:"billing_frequency" json:"billing_period"`
	EffectiveStart    time.Time        `db:"effective_start" json:"effective_start"`
	EffectiveEnd      *time.Time       `db:"effective_end" json:"effective_end,omitempty"`
	AutoGenerate      bool             `db:"auto_generate" json:"auto_generate"`
	IsActive          bool             `db:"is_active" json:"is_active"`
	LastGeneratedDate *time.Time       `db:"last_generated_date" json:"last_generated_date,omitempty"`
	CreatedBy         string           `db:"created_by" json:"created_by"`
	CreatedAt         time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time        `db:"updated_at" json:"updated_at"`
}

// Overlaps reports whether the effective ranges of both schedules intersect.
// An open end extends to infinity; bounds are inclusive.
func (s *RentSchedule) Overlaps(start time.Time, end *time.Time) bool {
	if s.EffectiveEnd != nil && s.EffectiveEnd.Before(start) {
		return false
	}
	if end != nil && end.Before(s.EffectiveStart) {
		return false
	}
	return true
}

// Covers reports whether d falls inside the effective range of the schedule.
func (s *RentSchedule) Covers(d time.Time) bool {
	if d.Before(s.EffectiveStart) {
		return false
	}
	return s.EffectiveEnd == nil || !d.After(*s.EffectiveEnd)
}

type Payment struct {
	Date          time.Time `json:"date"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method,omitempty"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	RecordedBy    string    `json:"recorded_by"`
}

type Rent struct {
	ID             string     `db:"id" json:"id"`
	LeaseID        string     `db:"lease_id" json:"lease_id"`
	TenantID       string     `db:"tenant_id" json:"tenant_id"`
	PropertyID     string     `db:"property_id" json:"property_id"`
	UnitID         string     `db:"unit_id" json:"unit_id"`
	BillingPeriod  string     `db:"billing_period" json:"billing_period"`
	AmountDue      float64    `db:"amount_due" json:"amount_due"`
	AmountPaid     float64    `db:"amount_paid" json:"amount_paid"`
	Currency       string     `db:"currency" json:"currency"`
	DueDate        time.Time  `db:"due_date" json:"due_date"`
	PaymentDate    *time.Time `db:"payment_date" json:"payment_date,omitempty"`
	Status         RentStatus `db:"status" json:"status"`
	PaymentHistory []Payment  `db:"payment_history" json:"payment_history"`
	PaymentProofID *string    `db:"payment_proof_id" json:"payment_proof_id,omitempty"`
	Notes          string     `db:"notes" json:"notes,omitempty"`
	CreatedBy      string     `db:"created_by" json:"created_by"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at" json:"-"`

	// Overdue is derived when the rent is read
	Overdue bool `db:"-" json:"is_overdue"`
}

// IsOverdue is evaluated at read time and never persisted.
func (r *Rent) IsOverdue(now time.Time) bool {
	if r.Status != RentDue && r.Status != RentPartiallyPaid {
		return false
	}
	return StartOfDay(now).After(StartOfDay(r.DueDate))
}

type Message struct {
	ID              string     `db:"id" json:"id"`
	SenderID        string     `db:"sender_id" json:"sender_id"`
	RecipientID     string     `db:"recipient_id" json:"recipient_id"`
	PropertyID      *string    `db:"property_id" json:"property_id,omitempty"`
	UnitID          *string    `db:"unit_id" json:"unit_id,omitempty"`
	Category        string     `db:"category" json:"category"`
	Content         string     `db:"content" json:"content"`
	Attachments     []string   `db:"attachments" json:"attachments"`
	ParentMessageID *string    `db:"parent_message_id" json:"parent_message_id,omitempty"`
	IsRead          bool       `db:"is_read" json:"is_read"`
	ReadAt          *time.Time `db:"read_at" json:"read_at,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	DeletedAt       *time.Time `db:"deleted_at" json:"-"`
}

type Comment struct {
	ID        string         `db:"id" json:"id"`
	Context   CommentContext `json:"context"`
	AuthorID  string         `db:"author_id" json:"author_id"`
	Body      string         `db:"body" json:"body"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

type OnboardingVisibility string

const (
	VisibilityAllTenants      OnboardingVisibility = "all_tenants"
	VisibilityPropertyTenants OnboardingVisibility = "property_tenants"
	VisibilityUnitTenants     OnboardingVisibility = "unit_tenants"
	VisibilitySpecificTenant  OnboardingVisibility = "specific_tenant"
)

func (v OnboardingVisibility) Valid() bool {
	switch v {
	case VisibilityAllTenants, VisibilityPropertyTenants, VisibilityUnitTenants, VisibilitySpecificTenant:
		return true
	}
	return false
}

type OnboardingDocument struct {
	ID          string               `db:"id" json:"id"`
	Title       string               `db:"title" json:"title"`
	Description string               `db:"description" json:"description,omitempty"`
	Visibility  OnboardingVisibility `db:"visibility" json:"visibility"`
	PropertyID  *string              `db:"property_id" json:"property_id,omitempty"`
	UnitID      *string              `db:"unit_id" json:"unit_id,omitempty"`
	TenantID    *string              `db:"tenant_id" json:"tenant_id,omitempty"`
	MediaID     *string              `db:"media_id" json:"media_id,omitempty"`
	CreatedBy   string               `db:"created_by" json:"created_by"`
	CreatedAt   time.Time            `db:"created_at" json:"created_at"`
	DeletedAt   *time.Time           `db:"deleted_at" json:"-"`
}

type ScheduledMaintenance struct {
	ID          string     `db:"id" json:"id"`
	PropertyID  string     `db:"property_id" json:"property_id"`
	UnitID      *string    `db:"unit_id" json:"unit_id,omitempty"`
	Title       string     `db:"title" json:"title"`
	AssignedTo  *Assignee  `json:"assigned_to,omitempty"`
	ScheduledAt time.Time  `db:"scheduled_at" json:"scheduled_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
}

type Media struct {
	ID          string    `db:"id" json:"id"`
	Key         string    `db:"key" json:"key"`
	Filename    string    `db:"filename" json:"filename"`
	ContentType string    `db:"content_type" json:"content_type"`
	Size        int64     `db:"size" json:"size"`
	UploadedBy  string    `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Notification struct {
	ID          string          `db:"id" json:"id"`
	RecipientID string          `db:"recipient_id" json:"recipient_id"`
	Type        string          `db:"type" json:"type"`
	Message     string          `db:"message" json:"message"`
	Link        string          `db:"link" json:"link,omitempty"`
	Context     *CommentContext `json:"context,omitempty"`
	IsRead      bool            `db:"is_read" json:"is_read"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

type AuditLog struct {
	ID           string                 `db:"id" json:"id"`
	ActorID      string                 `db:"actor_id" json:"actor_id"`
	Action       string                 `db:"action" json:"action"`
	ResourceType string                 `db:"resource_type" json:"resource_type"`
	ResourceID   string                 `db:"resource_id" json:"resource_id"`
	Details      map[string]interface{} `db:"details" json:"details,omitempty"`
	CreatedAt    time.Time              `db:"created_at" json:"created_at"`
}
