package guide

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/datekeeper/internal/logging"
	"github.com/dmitrijs2005/datekeeper/internal/models"
	"github.com/dmitrijs2005/datekeeper/internal/schema"
)

// Message is one turn of the chat-style completion payload.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client calls the hosted text-completion collaborator.
type Client struct {
	endpoint string
	httpc    *http.Client
	schema   *schema.Validator
	log      logging.Logger
}

// NewClient returns a Client for the given completion endpoint.
func NewClient(endpoint string, log logging.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		httpc:    &http.Client{},
		schema:   schema.New(),
		log:      log,
	}
}

// Complete posts the messages and returns the completion string. A non-2xx
// response is an error carrying the status and body; a 2xx response without a
// completion field is ErrMalformedResponse.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	payload, err := json.Marshal(struct {
		Messages []Message `json:"messages"`
	}{Messages: messages})
	if err != nil {
		return "", fmt.Errorf("encoding completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling guide endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading guide response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("guide endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var decoded struct {
		Completion string `json:"completion"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedResponse, err)
	}
	if decoded.Completion == "" {
		return "", fmt.Errorf("%w: empty completion", ErrMalformedResponse)
	}
	return decoded.Completion, nil
}

// GenerationRequest carries the planner state the venue prompt is built from.
type GenerationRequest struct {
	Phase        models.RelationshipPhase
	Goal         string
	City         string
	Country      string
	ZipCode      string
	Budget       string
	UserLikes    []string
	PartnerName  string
	PartnerLikes []string
}

// GenerateRecommendations asks the collaborator for bookable venue
// suggestions and shapes the completion into validated Recommendations.
// Entries arriving without an id get a fresh one. Output that cannot be
// shaped is ErrMalformedResponse; the caller decides whether to try again.
func (c *Client) GenerateRecommendations(ctx context.Context, req GenerationRequest) ([]models.Recommendation, error) {
	completion, err := c.Complete(ctx, []Message{
		{Role: "system", Content: "You are a dating expert. Return ONLY valid JSON. No prose."},
		{Role: "user", Content: buildVenuePrompt(req)},
	})
	if err != nil {
		return nil, err
	}

	raw, err := extractJSONArray(completion)
	if err != nil {
		c.log.Warn(ctx, "guide completion had no JSON array", "error", err)
		return nil, err
	}

	var recs []models.Recommendation
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: empty recommendation array", ErrMalformedResponse)
	}

	for i := range recs {
		if recs[i].ID == "" {
			recs[i].ID = uuid.NewString()
		}
	}
	if err := c.schema.ValidateRecommendations(recs); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, err)
	}
	return recs, nil
}

func buildVenuePrompt(req GenerationRequest) string {
	var b strings.Builder
	b.WriteString("Generate 6 specific, real and bookable venue recommendations (only restaurants, bars, cafes, or activities with a physical address).\n")
	fmt.Fprintf(&b, "- Relationship phase: %s\n", req.Phase)
	fmt.Fprintf(&b, "- Goal: %s\n", req.Goal)
	fmt.Fprintf(&b, "- Location: %s, %s %s\n", req.City, req.Country, req.ZipCode)
	fmt.Fprintf(&b, "- Budget: %s\n", req.Budget)
	fmt.Fprintf(&b, "- User likes: %s\n", strings.Join(firstN(req.UserLikes, 3), ", "))
	fmt.Fprintf(&b, "- Partner name: %s\n", req.PartnerName)
	fmt.Fprintf(&b, "- Partner likes: %s\n", strings.Join(firstN(req.PartnerLikes, 3), ", "))
	b.WriteString("\nFor each item include: real venue name, neighborhood, full street address, estimated price level (use $, $$, $$$), and the best time to go. Prefer options that accept reservations.\n")
	b.WriteString("Include a direct reservationUrl if possible (OpenTable, Resy, SevenRooms, or venue website). If unknown, leave reservationUrl empty.\n")
	b.WriteString("Return ONLY a valid JSON array with objects: { title, description, location, address, estimatedCost, bestTime, tips, reservationUrl }")
	return b.String()
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
