package models

import "weathereats/models/venue"

// RankingResponse is the result returned to callers. When Ranked is false the
// venues are in distance order and Error explains why scoring was skipped.
type RankingResponse struct {
	Ranked     bool          `json:"ranked"`
	Categories []string      `json:"categories,omitempty"`
	Total      int           `json:"total"`
	Venues     []venue.Venue `json:"venues"`
	Error      string        `json:"error,omitempty"`
}
