package local

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/datekeeper/internal/logging"
	"github.com/dmitrijs2005/datekeeper/internal/models"
	"github.com/dmitrijs2005/datekeeper/internal/schema"
)

// Slot names. These are part of the stored format; renaming them breaks
// existing on-device databases.
const (
	slotUser     = "user"
	slotPartners = "partners"
	slotRecs     = "recs"
	slotSession  = "session"
)

var allSlots = []string{slotUser, slotPartners, slotRecs, slotSession}

// Adapter implements storage.Adapter over an on-device SlotStore.
type Adapter struct {
	db     *sql.DB
	store  *SlotStore
	schema *schema.Validator
	log    logging.Logger

	now func() time.Time
}

// NewAdapter returns an Adapter over db. The database is expected to be
// opened via Open so the slots table exists.
func NewAdapter(db *sql.DB, log logging.Logger) *Adapter {
	return &Adapter{
		db:     db,
		store:  NewSlotStore(db),
		schema: schema.New(),
		log:    log,
		now:    time.Now,
	}
}

// Close closes the underlying database.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// GetUser returns the single user record, or nil when the slot is absent or
// holds a corrupt record.
func (a *Adapter) GetUser(ctx context.Context) (*models.User, error) {
	raw, ok, err := a.store.Get(ctx, slotUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	user, err := a.schema.ParseUser(raw)
	if err != nil {
		a.log.Warn(ctx, "corrupt user record, treating as absent", "error", err)
		return nil, nil
	}
	return user, nil
}

// UpsertUser validates user and unconditionally replaces the single-slot
// record. The single-user invariant is encoded by the slot itself.
func (a *Adapter) UpsertUser(ctx context.Context, user *models.User) error {
	if err := a.schema.Validate(user); err != nil {
		return err
	}
	return a.setJSON(ctx, slotUser, user)
}

// DeleteUser physically removes the record when hard is true; otherwise it
// marks the existing record soft-deleted and re-persists it. Soft delete
// without a stored user is a no-op.
func (a *Adapter) DeleteUser(ctx context.Context, hard bool) error {
	if hard {
		return a.store.Delete(ctx, slotUser)
	}
	user, err := a.GetUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	user.IsDeleted = true
	deletedAt := a.now().UnixMilli()
	user.DeletedAt = &deletedAt
	return a.UpsertUser(ctx, user)
}

// GetPartners returns active partners in insertion order.
func (a *Adapter) GetPartners(ctx context.Context) ([]models.PartnerProfile, error) {
	list, err := a.loadPartners(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]models.PartnerProfile, 0, len(list))
	for _, p := range list {
		if p.Active() {
			active = append(active, p)
		}
	}
	return active, nil
}

// UpsertPartner validates partner and merges it into the stored list by id.
// A previously soft-deleted partner re-upserted with IsDeleted unset becomes
// active again.
func (a *Adapter) UpsertPartner(ctx context.Context, partner *models.PartnerProfile) error {
	if err := a.schema.Validate(partner); err != nil {
		return err
	}
	list, err := a.loadPartners(ctx)
	if err != nil {
		return err
	}
	merged := mergeByID(list, []models.PartnerProfile{*partner}, partnerID)
	return a.setJSON(ctx, slotPartners, merged)
}

// SoftDeletePartner tombstones the matching partner in place. An absent id is
// a no-op, not an error.
func (a *Adapter) SoftDeletePartner(ctx context.Context, id string) error {
	list, err := a.loadPartners(ctx)
	if err != nil {
		return err
	}
	deletedAt := a.now().UnixMilli()
	for i := range list {
		if list[i].ID == id {
			list[i].IsDeleted = true
			list[i].DeletedAt = &deletedAt
		}
	}
	return a.setJSON(ctx, slotPartners, list)
}

// GetRecommendations returns the accumulated recommendation list.
func (a *Adapter) GetRecommendations(ctx context.Context) ([]models.Recommendation, error) {
	raw, ok, err := a.store.Get(ctx, slotRecs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Recommendation{}, nil
	}
	list, err := a.schema.ParseRecommendations(raw)
	if err != nil {
		a.log.Warn(ctx, "corrupt recommendations record, treating as empty", "error", err)
		return []models.Recommendation{}, nil
	}
	return list, nil
}

// AddRecommendations validates recs and merges them into the stored list,
// deduplicated by id with incoming entries winning.
func (a *Adapter) AddRecommendations(ctx context.Context, recs []models.Recommendation) error {
	if err := a.schema.ValidateRecommendations(recs); err != nil {
		return err
	}
	existing, err := a.GetRecommendations(ctx)
	if err != nil {
		return err
	}
	merged := mergeByID(existing, recs, recommendationID)
	return a.setJSON(ctx, slotRecs, merged)
}

// GetSession returns the current planning session, or nil when absent or
// corrupt.
func (a *Adapter) GetSession(ctx context.Context) (*models.Session, error) {
	raw, ok, err := a.store.Get(ctx, slotSession)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	sess, err := a.schema.ParseSession(raw)
	if err != nil {
		a.log.Warn(ctx, "corrupt session record, treating as absent", "error", err)
		return nil, nil
	}
	return sess, nil
}

// UpsertSession overlays patch onto the existing session, synthesizing a
// fresh one when none exists, stamps lastActiveAt, and persists the merged
// whole after re-validating it.
func (a *Adapter) UpsertSession(ctx context.Context, patch models.SessionPatch) error {
	prev, err := a.GetSession(ctx)
	if err != nil {
		return err
	}
	merged := models.MergeSession(prev, patch, a.now())
	if err := a.schema.Validate(&merged); err != nil {
		return err
	}
	return a.setJSON(ctx, slotSession, &merged)
}

// UpdateDesiredExperiences replaces the session's experience list, keeping
// everything else.
func (a *Adapter) UpdateDesiredExperiences(ctx context.Context, exps []models.DateExperience) error {
	if exps == nil {
		exps = []models.DateExperience{}
	}
	return a.UpsertSession(ctx, models.SessionPatch{DesiredExperiences: exps})
}

// UpdateDateStartISO sets the planned start timestamp, keeping everything
// else.
func (a *Adapter) UpdateDateStartISO(ctx context.Context, iso string) error {
	return a.UpsertSession(ctx, models.SessionPatch{DateStartISO: &iso})
}

// ClearAll removes every slot atomically.
func (a *Adapter) ClearAll(ctx context.Context) error {
	return a.store.DeleteAll(ctx, allSlots...)
}

// loadPartners returns the full stored list, tombstones included. A corrupt
// list degrades to empty.
func (a *Adapter) loadPartners(ctx context.Context) ([]models.PartnerProfile, error) {
	raw, ok, err := a.store.Get(ctx, slotPartners)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.PartnerProfile{}, nil
	}
	list, err := a.schema.ParsePartners(raw)
	if err != nil {
		a.log.Warn(ctx, "corrupt partners record, treating as empty", "error", err)
		return []models.PartnerProfile{}, nil
	}
	return list, nil
}

func (a *Adapter) setJSON(ctx context.Context, slot string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", slot, err)
	}
	return a.store.Set(ctx, slot, data)
}

func partnerID(p models.PartnerProfile) string        { return p.ID }
func recommendationID(r models.Recommendation) string { return r.ID }
