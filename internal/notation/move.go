// Package notation implements the SAN move token codec: the ambiguous
// move model and its two-way conversion with text.
//
// An ambiguous move is a move exactly as it appears in a PGN move list,
// before board-state resolution decides which physical piece moved.
// Board legality, move resolution, and full PGN game parsing are the
// caller's concern; this package only converts between the structured
// form and the token text.
package notation

import (
	"fmt"
	"strings"

	"github.com/unchess/sanmove/internal/chess"
	"github.com/unchess/sanmove/internal/errors"
)

// NoCoord marks an absent source file or rank disambiguation index.
const NoCoord int8 = -1

// AmbiguousMove is the structured form of a single SAN move token.
// It is a closed union: exactly Normal and Castle implement it. Values
// are immutable and comparable; equality is structural.
type AmbiguousMove interface {
	fmt.Stringer

	// ambiguousMove seals the union.
	ambiguousMove()
}

// Normal is any non-castling move: an optionally disambiguated piece or
// pawn move with optional capture, promotion, and trailing action.
//
// SrcFile and SrcRank are zero-based indices 0-7, or NoCoord when the
// token carries no disambiguation on that axis; either, both, or
// neither may be present. PromoteTo is chess.NoPiece when the move is
// not a promotion. Action is chess.NoAction when the token has no
// trailing glyph. Whether a promotion is plausible for Dest is not
// enforced here; validation against a board is an external concern.
type Normal struct {
	Piece     chess.Piece
	SrcFile   int8
	SrcRank   int8
	Takes     bool
	Dest      chess.Square
	PromoteTo chess.Piece
	Action    chess.MoveAction
}

// Castle is a castling move. The side fixes the token text; a trailing
// check or checkmate glyph is kept in Action rather than discarded, so
// castle tokens round-trip like any other move.
type Castle struct {
	Side   chess.CastlingSide
	Action chess.MoveAction
}

func (Normal) ambiguousMove() {}
func (Castle) ambiguousMove() {}

// String returns the SAN text of the move, or a placeholder for values
// that violate the coordinate contract (fmt.Stringer cannot fail).
func (m Normal) String() string { return renderMove(m) }

// String returns the SAN text of the castle.
func (m Castle) String() string { return renderMove(m) }

func renderMove(m AmbiguousMove) string {
	s, err := Encode(m)
	if err != nil {
		return "<invalid move>"
	}
	return s
}

// Encode converts an ambiguous move to its canonical SAN text.
//
// Field order for a normal move is fixed: piece letter (omitted for
// pawns), source file, source rank, 'x', destination, "=<letter>",
// action glyph. The encoder is always minimal; it never emits redundant
// text for fields that are absent. Out-of-range coordinate indices are
// a caller contract violation and surface as a notation error rather
// than undefined behavior.
func Encode(m AmbiguousMove) (string, error) {
	switch mv := m.(type) {
	case Normal:
		return encodeNormal(mv)
	case Castle:
		return encodeCastle(mv)
	}
	return "", &errors.NotationError{Text: fmt.Sprintf("%v", m)}
}

func encodeNormal(mv Normal) (string, error) {
	if mv.Piece < chess.King || mv.Piece >= chess.NumPieces {
		return "", &errors.NotationError{Text: mv.Piece.String()}
	}

	var b strings.Builder
	if mv.Piece != chess.Pawn {
		b.WriteByte(mv.Piece.Letter())
	}
	if mv.SrcFile != NoCoord {
		c, err := chess.FileChar(uint8(mv.SrcFile))
		if err != nil {
			return "", err
		}
		b.WriteByte(c)
	}
	if mv.SrcRank != NoCoord {
		c, err := chess.RankChar(uint8(mv.SrcRank))
		if err != nil {
			return "", err
		}
		b.WriteByte(c)
	}
	if mv.Takes {
		b.WriteByte('x')
	}

	f, err := chess.FileChar(mv.Dest.File)
	if err != nil {
		return "", err
	}
	r, err := chess.RankChar(mv.Dest.Rank)
	if err != nil {
		return "", err
	}
	b.WriteByte(f)
	b.WriteByte(r)

	if mv.PromoteTo != chess.NoPiece {
		b.WriteByte('=')
		b.WriteByte(mv.PromoteTo.Letter())
	}
	if mv.Action != chess.NoAction {
		b.WriteByte(mv.Action.Glyph())
	}
	return b.String(), nil
}

func encodeCastle(mv Castle) (string, error) {
	if mv.Action == chess.NoAction {
		return mv.Side.Notation(), nil
	}
	return mv.Side.Notation() + string(mv.Action.Glyph()), nil
}
