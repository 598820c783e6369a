// Package chess provides the closed domain value types of SAN move
// notation: piece colour and kind, board outcome states, move-ending
// actions, castling sides, and the square/coordinate primitives.
package chess

import (
	"strconv"

	"github.com/unchess/sanmove/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece kind. The declaration order is the
// canonical ordering used by deterministic test fixtures.
type Piece int

const (
	King Piece = iota
	Queen
	Bishop
	Knight
	Rook
	Pawn
	NumPieces
)

// NoPiece marks an absent piece, e.g. a move without promotion.
const NoPiece Piece = -1

// String returns the string representation of a piece kind.
func (p Piece) String() string {
	names := []string{"King", "Queen", "Bishop", "Knight", "Rook", "Pawn"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter for a piece kind.
func (p Piece) Letter() byte {
	letters := []byte{'K', 'Q', 'B', 'N', 'R', 'P'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Promotable reports whether p is a legal promotion target.
// Kings and pawns are never promoted to.
func (p Piece) Promotable() bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// PieceFromLetter converts an uppercase piece letter to its piece kind.
// Exactly {K, Q, B, N, R, P} are accepted; anything else, including
// lowercase letters, fails with a notation error carrying the character.
func PieceFromLetter(c byte) (Piece, error) {
	switch c {
	case 'K':
		return King, nil
	case 'Q':
		return Queen, nil
	case 'B':
		return Bishop, nil
	case 'N':
		return Knight, nil
	case 'R':
		return Rook, nil
	case 'P':
		return Pawn, nil
	}
	return NoPiece, &errors.NotationError{Text: string(c)}
}

// BoardState represents the consequence of a move on overall game status.
type BoardState int

const (
	StateNormal BoardState = iota
	StateCheck
	StateStalemate
	StateCheckmate
)

// String returns the string representation of a board state.
func (s BoardState) String() string {
	names := []string{"Normal", "Check", "Stalemate", "Checkmate"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// MoveAction is the subset of board outcomes that have a textual
// move-suffix glyph. The zero value NoAction marks an absent annotation.
type MoveAction int

const (
	NoAction MoveAction = iota
	ActionCheck
	ActionCheckmate
)

// String returns the string representation of a move action.
func (a MoveAction) String() string {
	switch a {
	case ActionCheck:
		return "Check"
	case ActionCheckmate:
		return "Checkmate"
	case NoAction:
		return "None"
	}
	return "Unknown"
}

// Glyph returns the trailing annotation character for a move action:
// '+' for check, '#' for checkmate.
func (a MoveAction) Glyph() byte {
	switch a {
	case ActionCheck:
		return '+'
	case ActionCheckmate:
		return '#'
	}
	return '?'
}

// ActionFromGlyph converts a trailing annotation character to its action.
func ActionFromGlyph(c byte) (MoveAction, error) {
	switch c {
	case '+':
		return ActionCheck, nil
	case '#':
		return ActionCheckmate, nil
	}
	return NoAction, &errors.NotationError{Text: string(c)}
}

// ActionState embeds a move action into the board state type.
// The embedding is injective: check maps to check, checkmate to
// checkmate. NoAction maps to normal play.
func ActionState(a MoveAction) BoardState {
	switch a {
	case ActionCheck:
		return StateCheck
	case ActionCheckmate:
		return StateCheckmate
	}
	return StateNormal
}

// StateAction converts a board state to its move action. Only check and
// checkmate carry a glyph; normal play and stalemate fail with an action
// error carrying the rejected state.
func StateAction(s BoardState) (MoveAction, error) {
	switch s {
	case StateCheck:
		return ActionCheck, nil
	case StateCheckmate:
		return ActionCheckmate, nil
	}
	return NoAction, &errors.ActionError{State: s}
}

// CastlingSide represents the side of the board to castle on.
type CastlingSide int

const (
	KingSide CastlingSide = iota
	QueenSide
)

// String returns the string representation of a castling side.
func (cs CastlingSide) String() string {
	if cs == QueenSide {
		return "QueenSide"
	}
	return "KingSide"
}

// Notation returns the fixed SAN text for a castling side.
// Queen-side text is a strict extension of king-side text; decoders must
// match the longer form first.
func (cs CastlingSide) Notation() string {
	if cs == QueenSide {
		return "O-O-O"
	}
	return "O-O"
}

// indexError builds the notation error for an out-of-range coordinate index.
func indexError(i uint8) error {
	return &errors.NotationError{Text: strconv.Itoa(int(i))}
}
