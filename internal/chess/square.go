package chess

import (
	"github.com/unchess/sanmove/internal/errors"
)

// Board coordinate constants. Files and ranks are zero-based indices
// 0-7; their textual forms are 'a'-'h' and '1'-'8'.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// FileChar converts a zero-based file index to its letter.
// Defined only for 0-7; anything else fails with a notation error.
func FileChar(f uint8) (byte, error) {
	if f >= BoardSize {
		return 0, indexError(f)
	}
	return FileBase + f, nil
}

// FileIndex converts a file letter 'a'-'h' to its zero-based index.
func FileIndex(c byte) (uint8, error) {
	if c < FileBase || c >= FileBase+BoardSize {
		return 0, &errors.NotationError{Text: string(c)}
	}
	return c - FileBase, nil
}

// RankChar converts a zero-based rank index to its digit.
// Defined only for 0-7; anything else fails with a notation error.
func RankChar(r uint8) (byte, error) {
	if r >= BoardSize {
		return 0, indexError(r)
	}
	return RankBase + r, nil
}

// RankIndex converts a rank digit '1'-'8' to its zero-based index.
func RankIndex(c byte) (uint8, error) {
	if c < RankBase || c >= RankBase+BoardSize {
		return 0, &errors.NotationError{Text: string(c)}
	}
	return c - RankBase, nil
}

// Square is a board square identified by zero-based file and rank
// indices. It is an immutable value; its canonical text form is the
// lowercase two-character SAN square, e.g. "e4".
type Square struct {
	File uint8
	Rank uint8
}

// String returns the canonical two-character square text, or "??" for a
// square with out-of-range coordinates.
func (s Square) String() string {
	f, errF := FileChar(s.File)
	r, errR := RankChar(s.Rank)
	if errF != nil || errR != nil {
		return "??"
	}
	return string([]byte{f, r})
}

// ParseSquare decodes the two-character text form of a square.
// Failure carries the offending text.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, &errors.NotationError{Text: text}
	}
	f, err := FileIndex(text[0])
	if err != nil {
		return Square{}, &errors.NotationError{Text: text}
	}
	r, err := RankIndex(text[1])
	if err != nil {
		return Square{}, &errors.NotationError{Text: text}
	}
	return Square{File: f, Rank: r}, nil
}

// MustSquare parses a square and panics on failure. For fixtures only.
func MustSquare(text string) Square {
	s, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return s
}
