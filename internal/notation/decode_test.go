package notation_test

import (
	stderrors "errors"
	"math/rand"
	"testing"

	"github.com/unchess/sanmove/internal/chess"
	"github.com/unchess/sanmove/internal/errors"
	"github.com/unchess/sanmove/internal/notation"
	"github.com/unchess/sanmove/internal/testutil"
)

func TestDecode(t *testing.T) {
	pawnPush := normal(chess.Pawn, "e4")

	queenCheck := normal(chess.Queen, "h5")
	queenCheck.Action = chess.ActionCheck

	knightTakes := normal(chess.Knight, "f3")
	knightTakes.SrcFile = 2
	knightTakes.Takes = true

	pawnPromotes := normal(chess.Pawn, "d8")
	pawnPromotes.SrcFile = 4
	pawnPromotes.Takes = true
	pawnPromotes.PromoteTo = chess.Queen
	pawnPromotes.Action = chess.ActionCheckmate

	rankDisambig := normal(chess.Rook, "e1")
	rankDisambig.SrcRank = 0

	underpromotion := normal(chess.Pawn, "b1")
	underpromotion.PromoteTo = chess.Knight

	tests := []struct {
		token string
		want  notation.AmbiguousMove
	}{
		{"e4", pawnPush},
		{"Qh5+", queenCheck},
		{"Ncxf3", knightTakes},
		{"exd8=Q#", pawnPromotes},
		{"R1e1", rankDisambig},
		{"b1=N", underpromotion},
		{"O-O", notation.Castle{Side: chess.KingSide}},
		{"O-O-O", notation.Castle{Side: chess.QueenSide}},
		{"O-O+", notation.Castle{Side: chess.KingSide, Action: chess.ActionCheck}},
		{"O-O-O#", notation.Castle{Side: chess.QueenSide, Action: chess.ActionCheckmate}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := notation.Decode(tt.token)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func asNotationError(err error, target **errors.NotationError) bool {
	return stderrors.As(err, target)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tokens := []string{
		"",
		"e",
		"Kx9",     // malformed destination
		"e9",      // rank out of range
		"i4",      // file out of range
		"Zf3",     // unknown piece letter as leftover prefix
		"Nf3!",    // trailing junk
		"Nf3++",   // only one trailing glyph is accepted
		"exd8=K",  // kings are not promotion targets
		"exd8=P",  // neither are pawns
		"e8=",     // dangling promotion marker
		"=Q",      // promotion with no destination
		"o-o",     // castle text is case-sensitive
		"0-0",     // digit zero is not castle notation
		"O-O-O-O", // no such castle
		"x",
		"xx4",
		"Nxx4",
	}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			_, err := notation.Decode(token)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation, "Decode(%q)", token)

			// The failure carries the whole original token
			var nerr *errors.NotationError
			testutil.AssertError(t, err)
			if !asNotationError(err, &nerr) {
				t.Fatalf("Decode(%q) error type = %T, want *NotationError", token, err)
			}
			testutil.AssertEqual(t, nerr.Text, token)
		})
	}
}

// TestDecodeLiberality verifies the grammar accepts non-canonical but
// well-formed tokens while the encoder stays minimal.
func TestDecodeLiberality(t *testing.T) {
	explicitPawn := normal(chess.Pawn, "e4")

	redundant := normal(chess.Knight, "f3")
	redundant.SrcFile = 6

	longAlgebraic := normal(chess.Pawn, "d4")
	longAlgebraic.SrcFile = 3
	longAlgebraic.SrcRank = 1

	tests := []struct {
		token     string
		want      notation.AmbiguousMove
		canonical string
	}{
		{"Pe4", explicitPawn, "e4"},
		{"Ngf3", redundant, "Ngf3"},
		{"d2d4", longAlgebraic, "d2d4"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := notation.Decode(tt.token)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)

			enc, err := notation.Encode(got)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, enc, tt.canonical)
		})
	}
}

// TestLongestMatchCastling pins down the queen-side/king-side prefix
// relation: "O-O-O" must never parse as "O-O" plus leftovers.
func TestLongestMatchCastling(t *testing.T) {
	mv, err := notation.Decode("O-O-O")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, mv, notation.Castle{Side: chess.QueenSide})

	mv, err = notation.Decode("O-O")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, mv, notation.Castle{Side: chess.KingSide})

	_, err = notation.Decode("O-O-")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation)
}

// TestRoundTrip is the codec's central property: decoding the encoding
// of any move respecting the field-presence invariants yields the move
// back unchanged.
func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(0x5a4e))

	for i := 0; i < 5000; i++ {
		mv := testutil.RandAmbiguousMove(r)

		text, err := notation.Encode(mv)
		testutil.AssertNoError(t, err, "Encode(%#v)", mv)

		back, err := notation.Decode(text)
		testutil.AssertNoError(t, err, "Decode(%q)", text)
		testutil.AssertEqual(t, back, mv, "round trip via %q", text)
	}
}

// TestCanonicalIdentity checks encode∘decode is the identity on
// canonical tokens (the converse of the round-trip law, promised only
// for canonical strings).
func TestCanonicalIdentity(t *testing.T) {
	tokens := []string{
		"e4", "d5", "exd5", "Nf3", "Nbd2", "N1d2", "Ncxf3", "Qh5+",
		"R1xe3", "Bb5", "Kd2", "a8=Q", "bxa1=N+", "exd8=Q#",
		"O-O", "O-O-O", "O-O+", "O-O-O#",
	}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			mv, err := notation.Decode(token)
			testutil.AssertNoError(t, err)
			enc, err := notation.Encode(mv)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, enc, token)
		})
	}
}
