package testutil

import (
	"math/rand"
	"testing"

	"github.com/unchess/sanmove/internal/chess"
	"github.com/unchess/sanmove/internal/notation"
)

// TestGeneratorsRespectInvariants checks that generated moves stay
// inside the field-presence invariants of the model: coordinates in
// range or absent, promotion targets promotable, castles both-sided.
func TestGeneratorsRespectInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	sawCastle := false
	sawNormal := false
	sawPromotion := false

	for i := 0; i < 2000; i++ {
		switch mv := RandAmbiguousMove(r).(type) {
		case notation.Castle:
			sawCastle = true
			if mv.Side != chess.KingSide && mv.Side != chess.QueenSide {
				t.Fatalf("generated castle with side %v", mv.Side)
			}
		case notation.Normal:
			sawNormal = true
			if mv.Piece < chess.King || mv.Piece >= chess.NumPieces {
				t.Fatalf("generated normal move with piece %v", mv.Piece)
			}
			for _, c := range []int8{mv.SrcFile, mv.SrcRank} {
				if c != notation.NoCoord && (c < 0 || c >= chess.BoardSize) {
					t.Fatalf("generated coordinate %d out of range", c)
				}
			}
			if mv.Dest.File >= chess.BoardSize || mv.Dest.Rank >= chess.BoardSize {
				t.Fatalf("generated destination %v out of range", mv.Dest)
			}
			if mv.PromoteTo != chess.NoPiece {
				sawPromotion = true
				if !mv.PromoteTo.Promotable() {
					t.Fatalf("generated promotion to %v", mv.PromoteTo)
				}
			}
		default:
			t.Fatalf("generated unknown move variant %T", mv)
		}
	}

	if !sawCastle || !sawNormal || !sawPromotion {
		t.Errorf("generator coverage too thin: castle=%v normal=%v promotion=%v",
			sawCastle, sawNormal, sawPromotion)
	}
}

func TestRandPromotablePiece(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		if p := RandPromotablePiece(r); !p.Promotable() {
			t.Fatalf("RandPromotablePiece returned %v", p)
		}
	}
}

func TestRandActionNeverAbsent(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		if a := RandAction(r); a != chess.ActionCheck && a != chess.ActionCheckmate {
			t.Fatalf("RandAction returned %v", a)
		}
	}
}
