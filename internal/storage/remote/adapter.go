package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/datekeeper/internal/logging"
	"github.com/dmitrijs2005/datekeeper/internal/models"
	"github.com/dmitrijs2005/datekeeper/internal/schema"
)

// Table names on the remote backend.
const (
	tableUsers           = "users"
	tablePartners        = "partners"
	tableRecommendations = "recommendations"
	tableSessions        = "sessions"
)

const (
	preferRepresentation = "return=representation"
	preferUpsert         = "resolution=merge-duplicates,return=representation"
)

// Adapter implements storage.Adapter over the hosted REST backend.
type Adapter struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	schema  *schema.Validator
	log     logging.Logger

	now func() time.Time
}

// NewAdapter returns an Adapter for the given endpoint and access key. Both
// may be empty, in which case every call fails with ErrBackendUnavailable.
// Cancellation and timeouts are supplied per call through the context.
func NewAdapter(baseURL, apiKey string, log logging.Logger) *Adapter {
	return &Adapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{},
		schema:  schema.New(),
		log:     log,
		now:     time.Now,
	}
}

// Available reports whether the adapter has the configuration it needs to
// talk to the backend.
func (a *Adapter) Available() bool {
	return a.baseURL != "" && a.apiKey != ""
}

// Close implements storage.Adapter; the HTTP client holds no resources that
// outlive requests.
func (a *Adapter) Close() error {
	return nil
}

// GetUser returns the first user row, or nil when none exists. A row failing
// validation degrades to nil with a log line, same as the local adapter.
func (a *Adapter) GetUser(ctx context.Context) (*models.User, error) {
	rows, err := a.getRows(ctx, tableUsers, url.Values{
		"select": {"*"},
		"limit":  {"1"},
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	user, err := a.schema.ParseUser(rows[0])
	if err != nil {
		a.log.Warn(ctx, "invalid user row from backend, treating as absent", "error", err)
		return nil, nil
	}
	return user, nil
}

// UpsertUser validates user and writes it with the merge-duplicates
// preference, so an existing identity is updated in place.
func (a *Adapter) UpsertUser(ctx context.Context, user *models.User) error {
	if err := a.schema.Validate(user); err != nil {
		return err
	}
	_, err := a.do(ctx, http.MethodPost, tableUsers, nil, preferUpsert, user)
	return err
}

// DeleteUser hard-deletes the current user row, or marks it soft-deleted.
// Without a current user both modes are a no-op.
func (a *Adapter) DeleteUser(ctx context.Context, hard bool) error {
	current, err := a.GetUser(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		return nil
	}
	query := url.Values{"id": {"eq." + current.ID}}
	if hard {
		_, err = a.do(ctx, http.MethodDelete, tableUsers, query, preferRepresentation, nil)
		return err
	}
	_, err = a.do(ctx, http.MethodPatch, tableUsers, query, preferRepresentation, tombstone{
		IsDeleted: true,
		DeletedAt: a.now().UnixMilli(),
	})
	return err
}

// GetPartners returns active partners ordered by id ascending.
func (a *Adapter) GetPartners(ctx context.Context) ([]models.PartnerProfile, error) {
	rows, err := a.getRows(ctx, tablePartners, url.Values{
		"select":    {"*"},
		"isDeleted": {"eq.false"},
		"order":     {"id.asc"},
	})
	if err != nil {
		return nil, err
	}
	list := make([]models.PartnerProfile, 0, len(rows))
	for _, row := range rows {
		var p models.PartnerProfile
		if err := json.Unmarshal(row, &p); err != nil {
			a.log.Warn(ctx, "invalid partner row from backend, dropping", "error", err)
			continue
		}
		if err := a.schema.Validate(&p); err != nil {
			a.log.Warn(ctx, "invalid partner row from backend, dropping", "id", p.ID, "error", err)
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

// UpsertPartner validates partner and upserts it by identity.
func (a *Adapter) UpsertPartner(ctx context.Context, partner *models.PartnerProfile) error {
	if err := a.schema.Validate(partner); err != nil {
		return err
	}
	_, err := a.do(ctx, http.MethodPost, tablePartners, nil, preferUpsert, partner)
	return err
}

// SoftDeletePartner tombstones the matching row. The backend treats a filter
// matching nothing as a no-op, preserving local semantics.
func (a *Adapter) SoftDeletePartner(ctx context.Context, id string) error {
	_, err := a.do(ctx, http.MethodPatch, tablePartners, url.Values{"id": {"eq." + id}}, preferRepresentation, tombstone{
		IsDeleted: true,
		DeletedAt: a.now().UnixMilli(),
	})
	return err
}

// GetRecommendations returns all recommendations ordered by id ascending.
func (a *Adapter) GetRecommendations(ctx context.Context) ([]models.Recommendation, error) {
	rows, err := a.getRows(ctx, tableRecommendations, url.Values{
		"select": {"*"},
		"order":  {"id.asc"},
	})
	if err != nil {
		return nil, err
	}
	list := make([]models.Recommendation, 0, len(rows))
	for _, row := range rows {
		var r models.Recommendation
		if err := json.Unmarshal(row, &r); err != nil {
			a.log.Warn(ctx, "invalid recommendation row from backend, dropping", "error", err)
			continue
		}
		if err := a.schema.Validate(&r); err != nil {
			a.log.Warn(ctx, "invalid recommendation row from backend, dropping", "id", r.ID, "error", err)
			continue
		}
		list = append(list, r)
	}
	return list, nil
}

// AddRecommendations validates recs and writes them in one upsert batch;
// same-id rows on the server are updated in place.
func (a *Adapter) AddRecommendations(ctx context.Context, recs []models.Recommendation) error {
	if err := a.schema.ValidateRecommendations(recs); err != nil {
		return err
	}
	_, err := a.do(ctx, http.MethodPost, tableRecommendations, nil, preferUpsert, recs)
	return err
}

// GetSession returns the most recent session row (createdAt descending), or
// nil when none exists.
func (a *Adapter) GetSession(ctx context.Context) (*models.Session, error) {
	rows, err := a.getRows(ctx, tableSessions, url.Values{
		"select": {"*"},
		"limit":  {"1"},
		"order":  {"createdAt.desc"},
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	sess, err := a.schema.ParseSession(rows[0])
	if err != nil {
		a.log.Warn(ctx, "invalid session row from backend, treating as absent", "error", err)
		return nil, nil
	}
	return sess, nil
}

// UpsertSession merges patch onto the most recent session and upserts the
// result. The read-merge-write cycle is not atomic; see the storage package
// doc for the concurrency contract.
func (a *Adapter) UpsertSession(ctx context.Context, patch models.SessionPatch) error {
	prev, err := a.GetSession(ctx)
	if err != nil {
		return err
	}
	merged := models.MergeSession(prev, patch, a.now())
	if err := a.schema.Validate(&merged); err != nil {
		return err
	}
	_, err = a.do(ctx, http.MethodPost, tableSessions, nil, preferUpsert, &merged)
	return err
}

// UpdateDesiredExperiences replaces the session's experience list.
func (a *Adapter) UpdateDesiredExperiences(ctx context.Context, exps []models.DateExperience) error {
	if exps == nil {
		exps = []models.DateExperience{}
	}
	return a.UpsertSession(ctx, models.SessionPatch{DesiredExperiences: exps})
}

// UpdateDateStartISO sets the planned start timestamp.
func (a *Adapter) UpdateDateStartISO(ctx context.Context, iso string) error {
	return a.UpsertSession(ctx, models.SessionPatch{DateStartISO: &iso})
}

// ClearAll bulk-deletes every collection in dependency order: child records
// first, so a failure partway through cannot resurrect orphans. The first
// failing step aborts the rest.
func (a *Adapter) ClearAll(ctx context.Context) error {
	for _, table := range []string{tableRecommendations, tablePartners, tableSessions, tableUsers} {
		if _, err := a.do(ctx, http.MethodDelete, table, nil, preferRepresentation, nil); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// tombstone is the partial body for soft-delete PATCH requests.
type tombstone struct {
	IsDeleted bool  `json:"isDeleted"`
	DeletedAt int64 `json:"deletedAt"`
}

// getRows fetches and decodes a list response without validating rows; the
// callers decide between degrade-and-drop and degrade-to-absent.
func (a *Adapter) getRows(ctx context.Context, table string, query url.Values) ([]json.RawMessage, error) {
	body, err := a.do(ctx, http.MethodGet, table, query, preferRepresentation, nil)
	if err != nil {
		return nil, err
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", table, err)
	}
	return rows, nil
}

// do performs one HTTP request against {base}/rest/v1/{table}. It returns
// ErrBackendUnavailable before any network activity when configuration is
// missing, and *StoreError for non-2xx responses.
func (a *Adapter) do(ctx context.Context, method, table string, query url.Values, prefer string, body any) ([]byte, error) {
	if !a.Available() {
		return nil, ErrBackendUnavailable
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s", a.baseURL, table)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s request: %w", table, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", table, err)
	}
	req.Header.Set("apikey", a.apiKey)
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", prefer)

	resp, err := a.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, table, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", table, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StoreError{Status: resp.StatusCode, Body: string(data)}
	}

	return data, nil
}
