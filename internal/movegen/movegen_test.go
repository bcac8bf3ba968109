package movegen

import (
	"testing"

	"github.com/hailam/draughts/internal/board"
)

func emptyBoard() [52]byte {
	var cells [52]byte
	cells[0], cells[51] = board.Sentinel, board.Sentinel
	for sq := 1; sq <= board.NumSquares; sq++ {
		cells[sq] = board.Empty
	}
	return cells
}

// S1: the initial position has exactly 9 legal non-capture moves, all
// forward from men on squares 31..35.
func TestS1InitialPositionMoveCount(t *testing.T) {
	pos := board.InitialPosition()
	moves := Generate(pos)

	if len(moves) != 9 {
		t.Fatalf("initial position: got %d moves, want 9", len(moves))
	}
	for _, m := range moves {
		if m.IsCapture() {
			t.Fatalf("initial position has no captures, got %v", m)
		}
		if m.From() < 31 || m.From() > 35 {
			t.Fatalf("move %v does not originate from squares 31..35", m)
		}
	}
}

// S2: a lone White man on 32 facing a lone Black man on 28 with 23
// empty has exactly one legal move: 32x23 taking 28.
func TestS2SingleCapture(t *testing.T) {
	cells := emptyBoard()
	cells[32] = board.Man
	cells[28] = board.EnemyMan

	pos := board.NewPosition(cells)
	moves := Generate(pos)

	if len(moves) != 1 {
		t.Fatalf("got %d moves, want 1: %v", len(moves), moves)
	}
	m := moves[0]
	if m.From() != 32 || m.To() != 23 {
		t.Fatalf("move = %v, want 32x23", m)
	}
	if len(m.Takes) != 1 || m.Takes[0] != 28 {
		t.Fatalf("takes = %v, want [28]", m.Takes)
	}
}

// S3: a lone White man on 32 with Black men on 28, 19, 20 and 18 must
// take the maximum chain 32x23x14x25 over 28, 19 and 20, not the
// shorter chain 32x23x12 over 28 and 18.
func TestS3MaximumCaptureChain(t *testing.T) {
	cells := emptyBoard()
	cells[32] = board.Man
	cells[28] = board.EnemyMan
	cells[19] = board.EnemyMan
	cells[20] = board.EnemyMan
	cells[18] = board.EnemyMan

	pos := board.NewPosition(cells)
	moves := Generate(pos)

	if len(moves) != 1 {
		t.Fatalf("got %d maximal moves, want 1: %v", len(moves), moves)
	}
	m := moves[0]
	if len(m.Takes) != 3 {
		t.Fatalf("takes = %v, want 3 captured pieces", m.Takes)
	}
	for _, sq := range []int{28, 19, 20} {
		found := false
		for _, t2 := range m.Takes {
			if t2 == sq {
				found = true
			}
		}
		if !found {
			t.Fatalf("takes %v missing expected square %d", m.Takes, sq)
		}
	}
}

// S6: a position where the side to move has no legal move at all
// generates an empty move list.
func TestS6TerminalPosition(t *testing.T) {
	cells := emptyBoard()
	cells[32] = board.Man
	cells[28] = board.EnemyMan
	cells[27] = board.EnemyMan
	cells[23] = board.EnemyMan
	cells[21] = board.EnemyMan

	pos := board.NewPosition(cells)
	moves := Generate(pos)

	if len(moves) != 0 {
		t.Fatalf("got %d moves, want 0 (terminal position): %v", len(moves), moves)
	}
	if HasCapture(pos) {
		t.Fatalf("HasCapture reported true for a terminal position")
	}
}

func TestManForwardOnlyForNonCaptures(t *testing.T) {
	cells := emptyBoard()
	cells[25] = board.Man

	pos := board.NewPosition(cells)
	moves := Generate(pos)

	for _, m := range moves {
		if m.To() >= m.From() {
			t.Fatalf("man non-capture move %v is not forward (lower square number)", m)
		}
	}
}

func TestNoDuplicateTakesWithinAChain(t *testing.T) {
	cells := emptyBoard()
	cells[32] = board.Man
	cells[28] = board.EnemyMan
	cells[19] = board.EnemyMan
	cells[18] = board.EnemyMan

	pos := board.NewPosition(cells)
	moves := Generate(pos)

	for _, m := range moves {
		seen := map[int]bool{}
		for _, t2 := range m.Takes {
			if seen[t2] {
				t.Fatalf("move %v takes square %d more than once", m, t2)
			}
			seen[t2] = true
		}
	}
}

// A king several squares down a diagonal from an otherwise-lone
// opponent man must be able to capture it and land on any empty
// square beyond, not only the square directly behind it.
func TestKingCaptureLandsPastTakenPiece(t *testing.T) {
	cells := emptyBoard()
	cells[3] = board.King
	cells[9] = board.EnemyMan

	pos := board.NewPosition(cells)
	moves := Generate(pos)

	if len(moves) == 0 {
		t.Fatalf("expected at least one king capture of the piece on 9")
	}
	for _, m := range moves {
		if !m.IsCapture() {
			t.Fatalf("expected only captures to be legal when one is available, got %v", m)
		}
		if len(m.Takes) != 1 || m.Takes[0] != 9 {
			t.Fatalf("takes = %v, want [9]", m.Takes)
		}
	}
	if len(moves) < 2 {
		t.Fatalf("expected multiple landing squares past the captured piece, got %d", len(moves))
	}
}
