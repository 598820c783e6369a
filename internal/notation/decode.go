package notation

import (
	"github.com/unchess/sanmove/internal/chess"
	"github.com/unchess/sanmove/internal/errors"
)

// Decode parses a single SAN move token into its structured form.
//
// Decoding is all-or-nothing: either the whole token parses into a
// fully populated move or the call fails with a notation error carrying
// the original text. The grammar is slightly liberal — it accepts an
// explicit 'P' pawn prefix and disambiguation a board would not require
// — while Encode stays minimal, so Encode(Decode(s)) == s only holds
// for canonical tokens. Decode(Encode(m)) == m holds for every move
// respecting the field-presence invariants.
//
// The token is consumed suffix-first: trailing glyph, castle text,
// promotion, destination, then the remaining prefix left to right. This
// makes the castle match longest-first by construction ("O-O-O" can
// never be read as "O-O" plus leftovers) and resolves the ambiguity
// between a disambiguation file and a destination file without
// backtracking.
func Decode(text string) (AmbiguousMove, error) {
	rest := text

	action := chess.NoAction
	if n := len(rest); n > 0 {
		if a, err := chess.ActionFromGlyph(rest[n-1]); err == nil {
			action = a
			rest = rest[:n-1]
		}
	}

	switch rest {
	case chess.QueenSide.Notation():
		return Castle{Side: chess.QueenSide, Action: action}, nil
	case chess.KingSide.Notation():
		return Castle{Side: chess.KingSide, Action: action}, nil
	}

	promote := chess.NoPiece
	if n := len(rest); n >= 2 && rest[n-2] == '=' {
		p, err := chess.PieceFromLetter(rest[n-1])
		if err != nil || !p.Promotable() {
			return nil, &errors.NotationError{Text: text}
		}
		promote = p
		rest = rest[:n-2]
	}

	// The destination square is mandatory.
	if len(rest) < 2 {
		return nil, &errors.NotationError{Text: text}
	}
	dest, err := chess.ParseSquare(rest[len(rest)-2:])
	if err != nil {
		return nil, &errors.NotationError{Text: text}
	}
	rest = rest[:len(rest)-2]

	// Prefix: optional piece letter, optional file and rank
	// disambiguation in that order, optional capture marker.
	mv := Normal{
		Piece:     chess.Pawn,
		SrcFile:   NoCoord,
		SrcRank:   NoCoord,
		Dest:      dest,
		PromoteTo: promote,
		Action:    action,
	}
	pos := 0
	if pos < len(rest) {
		if p, perr := chess.PieceFromLetter(rest[pos]); perr == nil {
			mv.Piece = p
			pos++
		}
	}
	if pos < len(rest) {
		if f, ferr := chess.FileIndex(rest[pos]); ferr == nil {
			mv.SrcFile = int8(f)
			pos++
		}
	}
	if pos < len(rest) {
		if r, rerr := chess.RankIndex(rest[pos]); rerr == nil {
			mv.SrcRank = int8(r)
			pos++
		}
	}
	if pos < len(rest) && rest[pos] == 'x' {
		mv.Takes = true
		pos++
	}
	if pos != len(rest) {
		return nil, &errors.NotationError{Text: text}
	}
	return mv, nil
}
