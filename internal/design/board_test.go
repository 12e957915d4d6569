package design

import (
	"errors"
	"slices"
	"testing"

	"chunk-life/internal/core"
	"chunk-life/internal/viewport"
)

func TestNewBoardRejectsTinySizes(t *testing.T) {
	for _, s := range []core.Size{{W: 2, H: 10}, {W: 10, H: 2}, {W: 0, H: 0}} {
		if _, err := NewBoard(s); !errors.Is(err, ErrBoardTooSmall) {
			t.Fatalf("NewBoard(%v) err=%v", s, err)
		}
	}
}

func TestCursorStaysOffFrame(t *testing.T) {
	b, err := NewBoard(core.Size{W: 5, H: 4})
	if err != nil {
		t.Fatal(err)
	}
	b.Move(viewport.Left)
	b.Move(viewport.Up)
	if b.Cursor() != (core.Coord{X: 1, Y: 1}) {
		t.Fatalf("cursor entered the frame: %v", b.Cursor())
	}
	for i := 0; i < 10; i++ {
		b.Move(viewport.Right)
		b.Move(viewport.Down)
	}
	if b.Cursor() != (core.Coord{X: 3, Y: 2}) {
		t.Fatalf("cursor=%v, want (3,2)", b.Cursor())
	}
	if !b.Frame(core.Coord{X: 4, Y: 0}) || b.Frame(core.Coord{X: 2, Y: 2}) || b.Frame(core.Coord{X: 9, Y: 9}) {
		t.Fatal("Frame misclassifies tiles")
	}
}

func TestToggleAndMarks(t *testing.T) {
	b, _ := NewBoard(core.Size{W: 6, H: 6})
	if !b.Toggle() {
		t.Fatal("first toggle should mark")
	}
	b.Move(viewport.Down)
	b.Move(viewport.Right)
	b.Toggle()
	b.Move(viewport.Left)
	b.Toggle()
	if want := []core.Coord{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}; !slices.Equal(b.Marks(), want) {
		t.Fatalf("Marks()=%v, want %v", b.Marks(), want)
	}
	if b.Toggle() {
		t.Fatal("second toggle should unmark")
	}
	if b.MarkCount() != 2 {
		t.Fatalf("MarkCount()=%d", b.MarkCount())
	}
	if b.Mark(core.Coord{X: 0, Y: 3}, true) {
		t.Fatal("Mark accepted a frame tile")
	}
	b.Clear()
	if b.MarkCount() != 0 {
		t.Fatal("Clear left marks behind")
	}
}

func TestBoardThroughEditorViewport(t *testing.T) {
	b, _ := NewBoard(core.Size{W: 4, H: 4})
	b.Mark(core.Coord{X: 2, Y: 1}, true)
	v, err := viewport.New(b.Size(), b.Size(), viewport.MissingDead)
	if err != nil {
		t.Fatal(err)
	}
	got := v.Fill(b, nil)
	want := []uint8{
		0, 0, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Fill=%v", got)
	}
	if alive, ok := b.Tile(core.Coord{X: 4, Y: 0}); alive || ok {
		t.Fatal("board reported a tile outside its bounds")
	}
}
