package testutil

import (
	"math/rand"

	"github.com/unchess/sanmove/internal/chess"
	"github.com/unchess/sanmove/internal/notation"
)

// Generators for arbitrary, not-necessarily-legal domain values. Moves
// produced here respect the field-presence invariants of the ambiguous
// move model (coordinates in range, promotion targets promotable) but
// are not checked against any board, so round-trip properties can be
// tested over the whole value space.

// RandColour returns either colour.
func RandColour(r *rand.Rand) chess.Colour {
	if r.Intn(2) == 0 {
		return chess.Black
	}
	return chess.White
}

// RandPiece returns any of the six piece kinds.
func RandPiece(r *rand.Rand) chess.Piece {
	return chess.Piece(r.Intn(int(chess.NumPieces)))
}

// RandPromotablePiece returns a legal promotion target.
func RandPromotablePiece(r *rand.Rand) chess.Piece {
	promotable := []chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}
	return promotable[r.Intn(len(promotable))]
}

// RandBoardState returns any board state.
func RandBoardState(r *rand.Rand) chess.BoardState {
	states := []chess.BoardState{
		chess.StateNormal, chess.StateCheck, chess.StateStalemate, chess.StateCheckmate,
	}
	return states[r.Intn(len(states))]
}

// RandAction returns check or checkmate, never NoAction.
func RandAction(r *rand.Rand) chess.MoveAction {
	if r.Intn(2) == 0 {
		return chess.ActionCheck
	}
	return chess.ActionCheckmate
}

// RandCastlingSide returns either castling side.
func RandCastlingSide(r *rand.Rand) chess.CastlingSide {
	if r.Intn(2) == 0 {
		return chess.KingSide
	}
	return chess.QueenSide
}

// RandSquare returns a square with in-range coordinates.
func RandSquare(r *rand.Rand) chess.Square {
	return chess.Square{
		File: uint8(r.Intn(chess.BoardSize)),
		Rank: uint8(r.Intn(chess.BoardSize)),
	}
}

// maybeCoord returns NoCoord half the time, otherwise an in-range index.
func maybeCoord(r *rand.Rand) int8 {
	if r.Intn(2) == 0 {
		return notation.NoCoord
	}
	return int8(r.Intn(chess.BoardSize))
}

// maybeAction returns NoAction half the time, otherwise a random action.
func maybeAction(r *rand.Rand) chess.MoveAction {
	if r.Intn(2) == 0 {
		return chess.NoAction
	}
	return RandAction(r)
}

// RandAmbiguousMove returns an arbitrary ambiguous move: one time in
// four a castle, otherwise a normal move with every optional field
// independently present or absent.
func RandAmbiguousMove(r *rand.Rand) notation.AmbiguousMove {
	if r.Intn(4) == 0 {
		return notation.Castle{
			Side:   RandCastlingSide(r),
			Action: maybeAction(r),
		}
	}
	promote := chess.NoPiece
	if r.Intn(2) == 1 {
		promote = RandPromotablePiece(r)
	}
	return notation.Normal{
		Piece:     RandPiece(r),
		SrcFile:   maybeCoord(r),
		SrcRank:   maybeCoord(r),
		Takes:     r.Intn(2) == 0,
		Dest:      RandSquare(r),
		PromoteTo: promote,
		Action:    maybeAction(r),
	}
}
