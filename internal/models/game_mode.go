package models

import "fmt"

// GameMode is the ruleset a game is played with.
type GameMode string

// Supported game modes
const (
	GameModePassThrough GameMode = "pass-through" // Snake wraps around the board edges
	GameModeWalls       GameMode = "walls"        // Hitting an edge ends the game
)

// Valid reports whether m is one of the supported modes.
func (m GameMode) Valid() bool {
	switch m {
	case GameModePassThrough, GameModeWalls:
		return true
	}
	return false
}

// ParseGameMode converts s into a GameMode, rejecting unknown values.
func ParseGameMode(s string) (GameMode, error) {
	m := GameMode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown game mode %q", s)
	}
	return m, nil
}
