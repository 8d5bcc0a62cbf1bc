package models

import (
	"time"

	"github.com/google/uuid"
)

// GridSize is the width and height of the square board.
const GridSize = 20

// DotSide is a cosmetic render hint that alternates along the snake body.
type DotSide string

// Dot sides
const (
	DotSideLeft  DotSide = "left"
	DotSideRight DotSide = "right"
)

// Opposite returns the other side.
func (d DotSide) Opposite() DotSide {
	if d == DotSideLeft {
		return DotSideRight
	}
	return DotSideLeft
}

// GameKind decides which update path owns an active game record.
type GameKind string

// Game kinds
const (
	GameKindLive GameKind = "live" // Driven by client pushes only
	GameKindDemo GameKind = "demo" // Advanced by the server on every observation
)

// Position is a cell on the board.
// swagger:model Position
type Position struct {
	// example: 6
	X int `json:"x"`
	// example: 5
	Y int `json:"y"`
}

// Segment is one cell of the snake body.
// swagger:model Segment
type Segment struct {
	// example: 5
	X int `json:"x"`
	// example: 5
	Y int `json:"y"`
	// example: left
	DotSide DotSide `json:"dotSide"`
}

// Position returns the cell occupied by the segment.
func (s Segment) Position() Position {
	return Position{X: s.X, Y: s.Y}
}

// ActiveGame is the current state of a game visible to spectators.
// swagger:model ActiveGame
type ActiveGame struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Score     int       `json:"score"`
	GameMode  GameMode  `json:"gameMode"`
	Kind      GameKind  `json:"kind"`
	Snake     []Segment `json:"snake"` // Head first
	Food      Position  `json:"food"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GameUpdate is a client-authoritative snapshot pushed by a live player.
type GameUpdate struct {
	Username string
	Score    int
	GameMode GameMode
	Snake    []Segment
	Food     Position
}
