package life

import (
	"slices"
	"testing"
)

func TestNeighborCounts(t *testing.T) {
	for _, dims := range [][2]int{{3, 3}, {4, 3}, {5, 7}, {120, 80}} {
		w, h := dims[0], dims[1]
		r := NewResolver(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				edgeX := x == 0 || x == w-1
				edgeY := y == 0 || y == h-1
				want := 8
				switch {
				case edgeX && edgeY:
					want = 3
				case edgeX || edgeY:
					want = 5
				}
				if got := len(r.Neighbors(y*w + x)); got != want {
					t.Fatalf("%dx%d cell (%d,%d): %d neighbors, want %d", w, h, x, y, got, want)
				}
			}
		}
	}
}

func TestNeighborsDoNotWrap(t *testing.T) {
	r := NewResolver(4, 4)
	got := r.Neighbors(0)
	want := []int{1, 4, 5}
	if !slices.Equal(got, want) {
		t.Fatalf("corner neighbors = %v, want %v", got, want)
	}

	got = r.Neighbors(7) // (3,1), right edge
	want = []int{2, 3, 6, 10, 11}
	if !slices.Equal(got, want) {
		t.Fatalf("edge neighbors = %v, want %v", got, want)
	}
}

func TestNeighborsInteriorOrderDeterministic(t *testing.T) {
	r := NewResolver(5, 5)
	want := []int{6, 7, 8, 11, 13, 16, 17, 18}
	for i := 0; i < 3; i++ {
		if got := r.Neighbors(12); !slices.Equal(got, want) {
			t.Fatalf("interior neighbors = %v, want %v", got, want)
		}
	}
	if w, h := r.Size(); w != 5 || h != 5 {
		t.Fatalf("Size = %d,%d", w, h)
	}
}

func TestNeighborsSmallBoards(t *testing.T) {
	if got := len(NewResolver(1, 1).Neighbors(0)); got != 0 {
		t.Fatalf("1x1 board cell has %d neighbors", got)
	}
	r := NewResolver(3, 1)
	if got := r.Neighbors(1); !slices.Equal(got, []int{0, 2}) {
		t.Fatalf("3x1 middle neighbors = %v", got)
	}
}
