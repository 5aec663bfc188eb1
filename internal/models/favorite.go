package models

import "time"

// FavoriteEdge links a user to a favorited station. At most one edge exists
// per (UserID, StationID) pair; duplicate creation is a no-op server-side.
type FavoriteEdge struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId" validate:"required"`
	StationID string    `json:"stationId" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
}
