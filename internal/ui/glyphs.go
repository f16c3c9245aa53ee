package ui

import "github.com/litescript/ls-natal/internal/chart"

var bodyGlyphs = map[string]rune{
	chart.BodySun:        '☉',
	chart.BodyMoon:       '☽',
	chart.BodyMercury:    '☿',
	chart.BodyVenus:      '♀',
	chart.BodyMars:       '♂',
	chart.BodyJupiter:    '♃',
	chart.BodySaturn:     '♄',
	chart.BodyUranus:     '♅',
	chart.BodyNeptune:    '♆',
	chart.BodyPluto:      '♇',
	chart.PointAscendant: 'A',
	chart.PointMidheaven: 'M',
}

// signGlyphs follows chart.Signs order.
var signGlyphs = [12]rune{'♈', '♉', '♊', '♋', '♌', '♍', '♎', '♏', '♐', '♑', '♒', '♓'}

func bodyGlyph(name string) rune {
	if g, ok := bodyGlyphs[name]; ok {
		return g
	}
	return '•'
}

func signGlyph(s chart.Sign) rune {
	if i := s.Index(); i >= 0 && i < len(signGlyphs) {
		return signGlyphs[i]
	}
	return '?'
}
