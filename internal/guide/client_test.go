package guide

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/datekeeper/internal/logging"
)

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, logging.New(testWriter{t}, "error", "text"))
}

func completionHandler(t *testing.T, completion string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload struct {
			Messages []Message `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.NotEmpty(t, payload.Messages)

		_ = json.NewEncoder(w).Encode(map[string]string{"completion": completion})
	}
}

func TestComplete_ReturnsCompletion(t *testing.T) {
	c := newTestClient(t, completionHandler(t, "hello"))

	got, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestComplete_Non2xxIsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestComplete_MissingCompletionField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"something":"else"}`))
	})

	_, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGenerateRecommendations_ShapesCompletion(t *testing.T) {
	completion := "Here you go:\n```json\n" + `[
		{"title":"Trattoria Sole","description":"Candlelit Italian spot","location":"Downtown","address":"12 Main St","estimatedCost":"$$","bestTime":"7:30 PM","tips":"Book the patio","reservationUrl":"https://example.com/r/sole"},
		{"id":"fixed-id","title":"River Walk","description":"Evening stroll by the water","location":"Riverside","estimatedCost":"$","bestTime":"6:00 PM"}
	]` + "\n```"
	c := newTestClient(t, completionHandler(t, completion))

	recs, err := c.GenerateRecommendations(context.Background(), GenerationRequest{
		Phase:   "courting",
		Goal:    GoalRomantic,
		City:    "Austin",
		Country: "USA",
		ZipCode: "78701",
		Budget:  "medium",
	})
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.NotEmpty(t, recs[0].ID, "entries without an id get a generated one")
	assert.Equal(t, "Trattoria Sole", recs[0].Title)
	assert.Equal(t, "fixed-id", recs[1].ID, "supplied ids are kept")
}

func TestGenerateRecommendations_ProseOnly(t *testing.T) {
	c := newTestClient(t, completionHandler(t, "Sorry, I cannot help with that."))

	_, err := c.GenerateRecommendations(context.Background(), GenerationRequest{})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGenerateRecommendations_InvalidEntries(t *testing.T) {
	c := newTestClient(t, completionHandler(t, `[{"title":"No other fields"}]`))

	_, err := c.GenerateRecommendations(context.Background(), GenerationRequest{})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGenerateRecommendations_EmptyArray(t *testing.T) {
	c := newTestClient(t, completionHandler(t, `[]`))

	_, err := c.GenerateRecommendations(context.Background(), GenerationRequest{})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestBuildVenuePrompt_IncludesPlannerState(t *testing.T) {
	prompt := buildVenuePrompt(GenerationRequest{
		Phase:        "exclusive",
		Goal:         GoalDeepTalk,
		City:         "Austin",
		Country:      "USA",
		ZipCode:      "78701",
		Budget:       "high",
		UserLikes:    []string{"jazz", "wine", "books", "hiking"},
		PartnerName:  "Alex",
		PartnerLikes: []string{"sushi"},
	})

	assert.Contains(t, prompt, "Relationship phase: exclusive")
	assert.Contains(t, prompt, "Goal: Deep Talk")
	assert.Contains(t, prompt, "Location: Austin, USA 78701")
	assert.Contains(t, prompt, "jazz, wine, books")
	assert.NotContains(t, prompt, "hiking", "likes are capped at three")
	assert.Contains(t, prompt, "Partner name: Alex")
	assert.Contains(t, prompt, "reservationUrl")
}
