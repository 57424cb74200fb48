package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"lifeboard/internal/core"
)

func TestFillBinaryRGBA(t *testing.T) {
	g := core.NewGrid(3, 1)
	g.Set(1, true)
	buf := make([]byte, 4*g.Len())
	FillBinaryRGBA(buf, g, color.RGBA{R: 0xff, G: 0xff, A: 0xff}, color.RGBA{})
	want := []byte{0, 0, 0, 0, 0xff, 0xff, 0, 0xff, 0, 0, 0, 0}
	if !bytes.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{}, {R: 10, A: 20}, {R: 30, A: 40}}
	buf := make([]byte, 12)
	FillPaletteRGBA(buf, []uint8{0, 1, 8}, palette)
	want := []byte{0, 0, 0, 0, 10, 0, 0, 20, 30, 0, 0, 40}
	if !bytes.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}

	FillPaletteRGBA(buf, []uint8{1, 1, 1}, nil)
	if !bytes.Equal(buf, make([]byte, 12)) {
		t.Fatal("empty palette must clear the buffer")
	}
}

func TestRamp(t *testing.T) {
	r := Ramp(color.RGBA{R: 0xff, A: 0xff}, 3, 0xff)
	if len(r) != 3 {
		t.Fatalf("len = %d", len(r))
	}
	if r[0] != (color.RGBA{}) {
		t.Fatalf("first entry must be transparent, got %v", r[0])
	}
	if r[2] != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("last entry = %v", r[2])
	}
	if r[1].A != 127 || r[1].R != 127 {
		t.Fatalf("middle entry = %v", r[1])
	}
	if Ramp(color.RGBA{}, 0, 0xff) != nil {
		t.Fatal("zero-length ramp must be nil")
	}
}

func TestTerminalRasterizesCells(t *testing.T) {
	term := NewTerminal(4, 2, 10, false)
	term.Clear(color.Black)
	term.DrawFilledRect(10, 0, 10, 10, color.White)
	term.DrawFilledRect(30, 10, 10, 10, color.White)
	term.DrawLine(0, 10, 40, 10, color.White)

	want := "·█··\n···█\n"
	if got := term.String(); got != want {
		t.Fatalf("terminal =\n%s\nwant\n%s", got, want)
	}

	term.Clear(color.Black)
	if strings.Contains(term.String(), liveGlyph) {
		t.Fatal("Clear must reset every cell")
	}
}

func TestTerminalClipsRects(t *testing.T) {
	term := NewTerminal(2, 2, 5, false)
	term.DrawFilledRect(-5, -5, 100, 100, color.White)
	if got := term.String(); got != "██\n██\n" {
		t.Fatalf("terminal = %q", got)
	}
}

func TestTerminalColor(t *testing.T) {
	term := NewTerminal(1, 1, 1, true)
	term.DrawFilledRect(0, 0, 1, 1, color.White)
	var buf bytes.Buffer
	if _, err := term.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("colored output lacks escapes: %q", buf.String())
	}
	if plain := NewTerminal(1, 1, 1, false).Status("gen", 3); plain != "gen: 3" {
		t.Fatalf("Status = %q", plain)
	}
}
