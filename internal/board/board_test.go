package board

import "testing"

func TestRotateIsInvolution(t *testing.T) {
	p := InitialPosition()
	rr := p.Rotate().Rotate()

	if rr.Board() != p.Board() {
		t.Fatalf("Rotate twice changed the board:\ngot  %v\nwant %v", rr.Board(), p.Board())
	}
	if rr.Score() != p.Score() {
		t.Fatalf("Rotate twice changed the score: got %d, want %d", rr.Score(), p.Score())
	}
}

func TestRotateNegatesScore(t *testing.T) {
	p := InitialPosition()
	if got := p.Rotate().Score(); got != -p.Score() {
		t.Fatalf("Rotate().Score() = %d, want %d", got, -p.Score())
	}
}

func TestInitialPositionIsBalanced(t *testing.T) {
	p := InitialPosition()
	if p.Score() != 0 {
		t.Fatalf("initial position score = %d, want 0 (symmetric start)", p.Score())
	}
}

func TestEvalMoveMatchesDoMoveDelta(t *testing.T) {
	p := InitialPosition()
	m := NewNonCapture(33, 28)

	delta := p.EvalMove(m)
	next := p.DoMove(&m)

	// DoMove rotates into the opponent's frame, so undo that to compare
	// against the side-to-move-relative delta EvalMove promised.
	fromMoverFrame := next.Rotate()
	if got := fromMoverFrame.Score(); got != p.Score()+delta {
		t.Fatalf("after DoMove, mover-frame score = %d, want %d (= %d + %d)",
			got, p.Score()+delta, p.Score(), delta)
	}
}

func TestEvalMovePromotion(t *testing.T) {
	var cells [52]byte
	cells[0], cells[51] = Sentinel, Sentinel
	for sq := 1; sq <= NumSquares; sq++ {
		cells[sq] = Empty
	}
	cells[6] = Man

	p := NewPosition(cells)
	m := NewNonCapture(6, 1)
	delta := p.EvalMove(m)

	wantFrom := pst(Man, 6) + PMAT[Man]
	wantTo := pst(King, 1) + PMAT[King]
	if delta != wantTo-wantFrom {
		t.Fatalf("promotion delta = %d, want %d", delta, wantTo-wantFrom)
	}
}

func TestKeyStableAcrossEqualBoards(t *testing.T) {
	p1 := InitialPosition()
	p2 := InitialPosition()
	if p1.Key() != p2.Key() {
		t.Fatalf("identical boards hashed differently: %d != %d", p1.Key(), p2.Key())
	}
}

func TestKeyDiffersAfterMove(t *testing.T) {
	p := InitialPosition()
	m := NewNonCapture(33, 28)
	next := p.DoMove(&m)

	if next.Key() == p.Key() {
		t.Fatalf("position key unchanged after a move")
	}
}

func TestSignatureLength(t *testing.T) {
	p := InitialPosition()
	if got := len(p.Signature()); got != NumSquares {
		t.Fatalf("Signature() length = %d, want %d", got, NumSquares)
	}
}

func TestMoveEqualIgnoresTakesOrder(t *testing.T) {
	a := Move{Steps: []int{1, 12, 23}, Takes: []int{7, 17}}
	b := Move{Steps: []int{1, 12, 23}, Takes: []int{17, 7}}
	if !a.Equal(b) {
		t.Fatalf("moves with reordered takes should be equal")
	}
}

func TestMoveStringSeparator(t *testing.T) {
	nc := NewNonCapture(32, 28)
	if got, want := nc.String(), "32-28"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	c := Move{Steps: []int{1, 12}, Takes: []int{7}}
	if got, want := c.String(), "1x12"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
