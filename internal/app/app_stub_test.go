//go:build !ebiten

package app

import "testing"

func TestHeadlessGameRefusesToRun(t *testing.T) {
	var g Game
	if err := g.Update(); err != errNoViewer {
		t.Fatalf("expected errNoViewer, got %v", err)
	}
	if w, h := g.Layout(640, 480); w != 0 || h != 0 {
		t.Fatalf("headless layout %dx%d, want 0x0", w, h)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("New should panic without the viewer")
		}
	}()
	New(nil, 1, 0)
}
