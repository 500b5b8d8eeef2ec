// Package board indexes a game snapshot for occupancy queries and generates pseudo-legal
// moves: moves that respect piece geometry and blocking but ignore the mover's king safety.
package board

import "github.com/cricklet/chessmoves/internal/helpers"

type Square = helpers.Square
type Color = helpers.Color
type PieceType = helpers.PieceType
type BishopSquareColor = helpers.BishopSquareColor

const (
	White = helpers.White
	Black = helpers.Black
)

const (
	Light = helpers.Light
	Dark  = helpers.Dark
)

// delta is the signed file and rank distance from one square to another.
func delta(from Square, to Square) (int, int) {
	return int(to.File) - int(from.File), int(to.Rank) - int(from.Rank)
}
