package book

import (
	"strings"
	"testing"

	"github.com/hailam/draughts/internal/board"
)

func TestLoadReaderAndProbe(t *testing.T) {
	b, err := LoadReader(strings.NewReader("1. 32-28\n33-29\n"))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if b.Len() == 0 {
		t.Fatalf("expected at least one recorded position")
	}

	pos := board.InitialPosition()
	m, ok := b.Probe(pos.Key())
	if !ok {
		t.Fatalf("expected a book move for the initial position")
	}
	if m.String() != "32-28" {
		t.Fatalf("Probe() = %v, want 32-28", m)
	}
}

func TestLoadReaderSkipsCommentsAndBlankLines(t *testing.T) {
	b, err := LoadReader(strings.NewReader("\n# a comment\n\n1. 32-28\n"))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if b.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", b.Len())
	}
}

func TestLoadReaderRejectsIllegalMove(t *testing.T) {
	_, err := LoadReader(strings.NewReader("1. 1-2\n"))
	if err == nil {
		t.Fatalf("expected an error for an illegal opening move")
	}
}

func TestProbePrefersHigherFrequency(t *testing.T) {
	b, err := LoadReader(strings.NewReader("32-28\n32-28\n33-28\n"))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}

	pos := board.InitialPosition()
	m, ok := b.Probe(pos.Key())
	if !ok {
		t.Fatalf("expected a book move")
	}
	if m.String() != "32-28" {
		t.Fatalf("Probe() = %v, want the more frequent 32-28", m)
	}
}

func TestStripMoveNumber(t *testing.T) {
	cases := map[string]string{
		"1.":        "",
		"1.32-28":   "32-28",
		"12.32-28":  "32-28",
		"32-28":     "32-28",
		"a.b":       "a.b",
		"100.32-28": "100.32-28",
	}
	for in, want := range cases {
		if got := stripMoveNumber(in); got != want {
			t.Errorf("stripMoveNumber(%q) = %q, want %q", in, got, want)
		}
	}
}
