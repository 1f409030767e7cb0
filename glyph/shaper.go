package glyph

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/lumineer/ledlayout"
)

// Glyph is one shaped glyph of a text run: its flattened outline positioned
// at the pen, plus the advance to the next glyph. Blank glyphs (spaces) have
// a nil outline.
type Glyph struct {
	Outline *ledlayout.Polyline
	Advance float64
	Cluster int // rune index in the source text
}

// Shaper shapes text strings into positioned glyph outlines. Shaping runs
// through go-text/typesetting's HarfBuzz implementation, so ligatures,
// kerning, and complex scripts behave as they would in a browser; outlines
// are loaded from the same font bytes with x/image's sfnt parser.
//
// A Shaper is not safe for concurrent use: both the HarfBuzz buffer and the
// sfnt buffer are mutable scratch state.
type Shaper struct {
	sfnt *sfnt.Font
	face *font.Face
	hb   shaping.HarfbuzzShaper
	buf  sfnt.Buffer
}

// NewShaper parses the font once for both shaping and outline loading.
func NewShaper(fontData []byte) (*Shaper, error) {
	sf, err := sfnt.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := font.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("parse font for shaping: %w", err)
	}
	return &Shaper{
		sfnt: sf,
		face: face,
	}, nil
}

// Shape shapes text at the given pixel size and returns one Glyph per shaped
// glyph, outlines translated to their pen positions. The text is treated as
// a single left-to-right run; callers with mixed scripts should split runs
// first.
func (s *Shaper) Shape(text string, ppem float64) ([]Glyph, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, nil
	}

	out := s.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      fixed.Int26_6(ppem * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})

	var pen float64
	glyphs := make([]Glyph, 0, len(out.Glyphs))
	for _, g := range out.Glyphs {
		outline, err := Outline(s.sfnt, &s.buf, sfnt.GlyphIndex(g.GlyphID), ppem)
		if err != nil {
			return nil, fmt.Errorf("outline for cluster %d: %w", g.TextIndex(), err)
		}
		if outline != nil {
			// Shaping offsets are y-up, outline coordinates y-down.
			offset := ledlayout.Vec(
				pen+fixedToFloat(g.XOffset),
				-fixedToFloat(g.YOffset),
			)
			outline = outline.Translate(offset)
		}
		glyphs = append(glyphs, Glyph{
			Outline: outline,
			Advance: fixedToFloat(g.Advance),
			Cluster: g.TextIndex(),
		})
		pen += fixedToFloat(g.Advance)
	}
	return glyphs, nil
}

// detectScript returns the script of the first non-space rune, defaulting to
// Latin. Mixed-script text should be split into runs before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
