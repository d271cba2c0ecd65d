package entity

import (
	"time"
)

// Brick is a single placed block. The server stores bricks as-is; overlap,
// bounds and structural validity are the client's concern.
type Brick struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Width    float64 `json:"width"`
	Depth    float64 `json:"depth"`
	Color    int     `json:"color"` // packed RGB
	Rotation float64 `json:"rotation"`
}

// Build is a collection of bricks saved by a user. Builds are write-once:
// every save creates a new row, nothing updates or deletes them.
type Build struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
	Bricks    []Brick
}
