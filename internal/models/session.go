package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the single ephemeral planning state per user. Writes merge onto
// the previous session instead of replacing it, and every write refreshes
// LastActiveAt.
//
// DateStartISO is an RFC 3339 timestamp with an explicit UTC offset, stored
// verbatim to preserve the user's local wall-clock intent.
type Session struct {
	ID                 string            `json:"id" validate:"required"`
	CreatedAt          int64             `json:"createdAt" validate:"required"`
	LastActiveAt       int64             `json:"lastActiveAt" validate:"required"`
	CurrentPartnerID   *string           `json:"currentPartnerId,omitempty"`
	SelectedPhase      RelationshipPhase `json:"selectedPhase,omitempty" validate:"omitempty,phase"`
	DesiredExperiences []DateExperience  `json:"desiredExperiences" validate:"dive,experience"`
	DateStartISO       string            `json:"dateStartISO,omitempty" validate:"omitempty,rfc3339"`
}

// Normalize replaces an absent experiences list with an empty one.
func (s *Session) Normalize() {
	if s.DesiredExperiences == nil {
		s.DesiredExperiences = []DateExperience{}
	}
}

// SessionPatch is a partial session update. Nil fields leave the previous
// value untouched; non-nil fields overwrite it.
type SessionPatch struct {
	CurrentPartnerID   *string
	SelectedPhase      *RelationshipPhase
	DesiredExperiences []DateExperience
	DateStartISO       *string
}

// MergeSession applies patch on top of prev using default-then-overlay: when
// prev is nil a fresh session is synthesized (new id, CreatedAt=now, empty
// experiences), then every set patch field overwrites the base value, and
// LastActiveAt is always stamped with now. The result still has to pass
// schema validation before being persisted.
func MergeSession(prev *Session, patch SessionPatch, now time.Time) Session {
	var next Session
	if prev != nil {
		next = *prev
	} else {
		next = Session{
			ID:                 uuid.NewString(),
			CreatedAt:          now.UnixMilli(),
			DesiredExperiences: []DateExperience{},
		}
	}

	if patch.CurrentPartnerID != nil {
		next.CurrentPartnerID = patch.CurrentPartnerID
	}
	if patch.SelectedPhase != nil {
		next.SelectedPhase = *patch.SelectedPhase
	}
	if patch.DesiredExperiences != nil {
		next.DesiredExperiences = patch.DesiredExperiences
	}
	if patch.DateStartISO != nil {
		next.DateStartISO = *patch.DateStartISO
	}

	next.LastActiveAt = now.UnixMilli()
	next.Normalize()
	return next
}
