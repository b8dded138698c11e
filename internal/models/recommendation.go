package models

// Recommendation is a generated or curated venue/activity suggestion.
// Recommendations are append-only, deduplicated by id, and only removed in a
// bulk clear. EstimatedCost is a categorical band such as "$" or "$$-$$$".
type Recommendation struct {
	ID             string `json:"id" validate:"required"`
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description" validate:"required"`
	Location       string `json:"location" validate:"required"`
	EstimatedCost  string `json:"estimatedCost" validate:"required"`
	BestTime       string `json:"bestTime" validate:"required"`
	Tips           string `json:"tips,omitempty"`
	Address        string `json:"address,omitempty"`
	ReservationURL string `json:"reservationUrl,omitempty" validate:"omitempty,url"`
}
