package promotion

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("promotion name cannot be empty")
	ErrInvalidWindow      = errors.New("promotion validity window is invalid")
	ErrInvalidOwner       = errors.New("promotion must belong to a producer")
	ErrNotPending         = errors.New("promotion is not pending approval")
	ErrInvalidApproval    = errors.New("invalid approval status")
	ErrAlreadyDeactivated = errors.New("promotion is already deactivated")
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	default:
		return false
	}
}

func (s ApprovalStatus) String() string {
	return string(s)
}

func NewApprovalStatus(s string) (ApprovalStatus, error) {
	status := ApprovalStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidApproval
	}
	return status, nil
}

// Promotion is a producer-published code granting a Benefit on associated
// products, gated by an admin approval workflow and a validity window.
type Promotion struct {
	id         uuid.UUID
	code       Code
	name       string
	benefit    Benefit
	startsAt   time.Time
	endsAt     time.Time
	active     bool
	approval   ApprovalStatus
	producerID uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
}

// NewPromotion creates a promotion awaiting admin approval.
func NewPromotion(code Code, name string, benefit Benefit, startsAt, endsAt time.Time, producerID uuid.UUID) (*Promotion, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if startsAt.IsZero() || endsAt.IsZero() || endsAt.Before(startsAt) {
		return nil, ErrInvalidWindow
	}
	if producerID == uuid.Nil {
		return nil, ErrInvalidOwner
	}

	return &Promotion{
		id:         uuid.New(),
		code:       code,
		name:       name,
		benefit:    benefit,
		startsAt:   startsAt,
		endsAt:     endsAt,
		active:     true,
		approval:   ApprovalPending,
		producerID: producerID,
	}, nil
}

// Reconstruct rebuilds a promotion from persisted state. It does not reject
// malformed windows: IsValidAt fails closed on them instead, so one bad row
// degrades to an invisible code rather than a broken offers page.
func Reconstruct(
	id uuid.UUID,
	code Code,
	name string,
	benefit Benefit,
	startsAt, endsAt time.Time,
	active bool,
	approval ApprovalStatus,
	producerID uuid.UUID,
	createdAt, updatedAt time.Time,
) *Promotion {
	return &Promotion{
		id:         id,
		code:       code,
		name:       name,
		benefit:    benefit,
		startsAt:   startsAt,
		endsAt:     endsAt,
		active:     active,
		approval:   approval,
		producerID: producerID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (p *Promotion) ID() uuid.UUID            { return p.id }
func (p *Promotion) Code() Code               { return p.code }
func (p *Promotion) Name() string             { return p.name }
func (p *Promotion) Benefit() Benefit         { return p.benefit }
func (p *Promotion) StartsAt() time.Time      { return p.startsAt }
func (p *Promotion) EndsAt() time.Time        { return p.endsAt }
func (p *Promotion) IsActive() bool           { return p.active }
func (p *Promotion) Approval() ApprovalStatus { return p.approval }
func (p *Promotion) ProducerID() uuid.UUID    { return p.producerID }
func (p *Promotion) CreatedAt() time.Time     { return p.createdAt }
func (p *Promotion) UpdatedAt() time.Time     { return p.updatedAt }

// IsValidAt reports whether the code is redeemable at t: active, approved,
// and t within [startsAt, endsAt]. A zero start or end date never validates.
func (p *Promotion) IsValidAt(t time.Time) bool {
	if !p.active || p.approval != ApprovalApproved {
		return false
	}
	if p.startsAt.IsZero() || p.endsAt.IsZero() {
		return false
	}
	return !t.Before(p.startsAt) && !t.After(p.endsAt)
}

func (p *Promotion) IsExpiredAt(t time.Time) bool {
	return !p.endsAt.IsZero() && t.After(p.endsAt)
}

// DaysRemaining returns the number of whole or partial days until the
// promotion ends, never negative.
func (p *Promotion) DaysRemaining(now time.Time) int {
	if p.endsAt.IsZero() || !p.endsAt.After(now) {
		return 0
	}
	days := int(math.Ceil(p.endsAt.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

func (p *Promotion) Approve() error {
	if p.approval != ApprovalPending {
		return ErrNotPending
	}
	p.approval = ApprovalApproved
	return nil
}

func (p *Promotion) Reject() error {
	if p.approval != ApprovalPending {
		return ErrNotPending
	}
	p.approval = ApprovalRejected
	return nil
}

func (p *Promotion) Deactivate() error {
	if !p.active {
		return ErrAlreadyDeactivated
	}
	p.active = false
	return nil
}

func (p *Promotion) IsOwnedBy(producerID uuid.UUID) bool {
	return p.producerID == producerID
}
