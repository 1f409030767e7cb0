package glyph

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestShaperShape(t *testing.T) {
	s, err := NewShaper(goregular.TTF)
	if err != nil {
		t.Fatalf("new shaper: %v", err)
	}

	glyphs, err := s.Shape("LED", 100)
	if err != nil {
		t.Fatalf("shape: %v", err)
	}
	if len(glyphs) != 3 {
		t.Fatalf("got %d glyphs, expected 3", len(glyphs))
	}

	prevMinX := -1e9
	for i, g := range glyphs {
		if g.Outline == nil {
			t.Fatalf("glyph %d has no outline", i)
		}
		if g.Advance <= 0 {
			t.Errorf("glyph %d has advance %v, expected > 0", i, g.Advance)
		}
		minX := g.Outline.BoundingBox().MinX()
		if minX <= prevMinX {
			t.Errorf("glyph %d starts at x=%v, expected to the right of %v", i, minX, prevMinX)
		}
		prevMinX = minX
	}
}

func TestShaperBlankRuns(t *testing.T) {
	s, err := NewShaper(goregular.TTF)
	if err != nil {
		t.Fatalf("new shaper: %v", err)
	}

	glyphs, err := s.Shape("", 100)
	if err != nil {
		t.Fatalf("shape: %v", err)
	}
	if glyphs != nil {
		t.Errorf("got %v for empty text, expected nil", glyphs)
	}

	glyphs, err = s.Shape("a b", 100)
	if err != nil {
		t.Fatalf("shape: %v", err)
	}
	if len(glyphs) != 3 {
		t.Fatalf("got %d glyphs, expected 3", len(glyphs))
	}
	if glyphs[1].Outline != nil {
		t.Error("expected the space glyph to have no outline")
	}
}
