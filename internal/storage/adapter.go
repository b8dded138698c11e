// Package storage defines the operation surface of the data layer and selects
// the backend implementation at startup.
//
// Two interchangeable backends implement Adapter: the on-device SQLite slot
// store (internal/storage/local) and the hosted REST store
// (internal/storage/remote). Which one a process uses is decided exactly once
// by Select, based on whether remote configuration is present, and the chosen
// instance is threaded through the application by constructor injection.
//
// The layer gives no cross-call atomicity: list operations are
// read-modify-write cycles, and two concurrent writers for overlapping state
// race with last-write-wins semantics. That is an accepted property of the
// single-user client model and is deliberately not papered over with locks.
package storage

import (
	"context"

	"github.com/dmitrijs2005/datekeeper/internal/models"
)

// Adapter is the storage entry point the rest of the application talks to.
// Every method validates entities against the schema layer; reads that hit
// corrupted stored data degrade to nil/empty instead of failing, writes never
// swallow errors. No method retries on its own.
type Adapter interface {
	// GetUser returns the single user record, or nil when absent or corrupt.
	GetUser(ctx context.Context) (*models.User, error)
	// UpsertUser validates user and replaces the single record wholesale.
	UpsertUser(ctx context.Context, user *models.User) error
	// DeleteUser removes the user record physically when hard is true, or
	// marks it soft-deleted otherwise. Soft delete is a no-op without a user.
	DeleteUser(ctx context.Context, hard bool) error

	// GetPartners returns active partners in insertion order.
	GetPartners(ctx context.Context) ([]models.PartnerProfile, error)
	// UpsertPartner merges partner into the list by id, last write wins.
	UpsertPartner(ctx context.Context, partner *models.PartnerProfile) error
	// SoftDeletePartner tombstones the partner in place; absent ids are a no-op.
	SoftDeletePartner(ctx context.Context, id string) error

	// GetRecommendations returns the accumulated recommendation list.
	GetRecommendations(ctx context.Context) ([]models.Recommendation, error)
	// AddRecommendations merges recs into the stored list deduplicated by id;
	// incoming entries win over same-id existing ones.
	AddRecommendations(ctx context.Context, recs []models.Recommendation) error

	// GetSession returns the current planning session, or nil when absent.
	GetSession(ctx context.Context) (*models.Session, error)
	// UpsertSession overlays patch onto the existing session (synthesizing a
	// fresh one when none exists) and stamps lastActiveAt.
	UpsertSession(ctx context.Context, patch models.SessionPatch) error
	// UpdateDesiredExperiences replaces the session's experience list.
	UpdateDesiredExperiences(ctx context.Context, exps []models.DateExperience) error
	// UpdateDateStartISO sets the planned start timestamp (RFC 3339, offset
	// preserved verbatim).
	UpdateDateStartISO(ctx context.Context, iso string) error

	// ClearAll wipes every entity slot/collection.
	ClearAll(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
