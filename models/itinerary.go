package models

// ItineraryDocument wraps the nested days/events blob produced by the travel
// planner agent. The blob is persisted as-is, keyed by user id, and merged at
// the top level only on save.
type ItineraryDocument struct {
	UserID    string         `json:"user_id" bson:"user_id"`
	Itinerary map[string]any `json:"itinerary" bson:"itinerary"`
	CreatedAt string         `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt string         `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// ItineraryDetails is the packing-oriented projection of an itinerary.
type ItineraryDetails struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Activities  []string `json:"activities"`
}
