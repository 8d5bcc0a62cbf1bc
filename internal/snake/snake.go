// Package snake advances demo games one random step at a time.
package snake

import "github.com/sbilibin2017/snake-backend/internal/models"

// FoodReward is added to the score each time the snake eats.
const FoodReward = 10

// maxFoodAttempts bounds the search for a free cell when relocating food.
const maxFoodAttempts = 64

// Direction is a unit move on the board.
type Direction struct {
	DX, DY int
}

// Directions lists the four moves a tick picks from.
var Directions = [4]Direction{
	{DX: 0, DY: 1},
	{DX: 0, DY: -1},
	{DX: 1, DY: 0},
	{DX: -1, DY: 0},
}

// Tick moves the game one step in a uniformly random direction.
func Tick(game *models.ActiveGame, rnd Random) {
	Step(game, Directions[rnd.IntN(len(Directions))], rnd)
}

// Step moves the game one step in dir. The head always wraps around the
// board; the walls rule is not applied to simulated games.
func Step(game *models.ActiveGame, dir Direction, rnd Random) {
	if game == nil || len(game.Snake) == 0 {
		return
	}

	head := game.Snake[0]
	newHead := models.Segment{
		X:       wrap(head.X + dir.DX),
		Y:       wrap(head.Y + dir.DY),
		DotSide: head.DotSide.Opposite(),
	}

	body := make([]models.Segment, 0, len(game.Snake)+1)
	body = append(body, newHead)
	body = append(body, game.Snake...)

	if newHead.Position() == game.Food {
		game.Score += FoodReward
		game.Snake = body
		game.Food = RandomFood(game.Snake, rnd)
		return
	}

	game.Snake = body[:len(body)-1]
}

// RandomFood picks a random cell, retrying a bounded number of times when it
// lands on the snake.
func RandomFood(body []models.Segment, rnd Random) models.Position {
	occupied := make(map[models.Position]struct{}, len(body))
	for _, s := range body {
		occupied[s.Position()] = struct{}{}
	}

	var p models.Position
	for i := 0; i < maxFoodAttempts; i++ {
		p = models.Position{X: rnd.IntN(models.GridSize), Y: rnd.IntN(models.GridSize)}
		if _, ok := occupied[p]; !ok {
			return p
		}
	}
	return p
}

// NewSnake builds a horizontal snake of the given length with its head at
// (x, y), extending to the left.
func NewSnake(x, y, length int) []models.Segment {
	body := make([]models.Segment, 0, length)
	for i := 0; i < length; i++ {
		side := models.DotSideLeft
		if i%2 == 1 {
			side = models.DotSideRight
		}
		body = append(body, models.Segment{X: wrap(x - i), Y: wrap(y), DotSide: side})
	}
	return body
}

func wrap(v int) int {
	return ((v % models.GridSize) + models.GridSize) % models.GridSize
}
