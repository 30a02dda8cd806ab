package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Alignment places a line of spans inside its area.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

// Span is a run of text drawn with one style.
type Span struct {
	Text  string
	Style tcell.Style
}

var (
	styleBase   = tcell.StyleDefault
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle  = tcell.StyleDefault.Bold(true)
	styleKey    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGray)
	styleMuted  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGood   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleWarn   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBad    = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// spansWidth is the number of cells the spans occupy.
func spansWidth(spans []Span) int {
	w := 0
	for _, sp := range spans {
		w += runewidth.StringWidth(sp.Text)
	}
	return w
}

// fill paints every cell of r with a space in style.
func fill(s tcell.Screen, r Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawLine draws spans on row y of r, clipped to r's width.
func drawLine(s tcell.Screen, r Rect, y int, align Alignment, spans ...Span) {
	if y < r.Y || y >= r.Y+r.H || r.W <= 0 {
		return
	}
	x := r.X
	if align == AlignCenter {
		if pad := (r.W - spansWidth(spans)) / 2; pad > 0 {
			x += pad
		}
	}
	limit := r.X + r.W
	for _, sp := range spans {
		for _, ch := range sp.Text {
			w := runewidth.RuneWidth(ch)
			if w == 0 {
				continue
			}
			if x+w > limit {
				return
			}
			s.SetContent(x, y, ch, nil, sp.Style)
			x += w
		}
	}
}

// drawLines draws one line per row from the top of r, dropping what does not fit.
func drawLines(s tcell.Screen, r Rect, align Alignment, lines ...[]Span) {
	for i, line := range lines {
		drawLine(s, r, r.Y+i, align, line...)
	}
}

// drawBlock draws a rounded border with a title and returns the padded inside.
func drawBlock(s tcell.Screen, r Rect, title string, border, titleStyle tcell.Style) Rect {
	if r.W < 2 || r.H < 2 {
		return Rect{X: r.X, Y: r.Y}
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		s.SetContent(x, r.Y, tcell.RuneHLine, nil, border)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, border)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetContent(r.X, y, tcell.RuneVLine, nil, border)
		s.SetContent(right, y, tcell.RuneVLine, nil, border)
	}
	s.SetContent(r.X, r.Y, '╭', nil, border)
	s.SetContent(right, r.Y, '╮', nil, border)
	s.SetContent(r.X, bottom, '╰', nil, border)
	s.SetContent(right, bottom, '╯', nil, border)

	if title != "" {
		drawLine(s, Rect{X: r.X + 1, Y: r.Y, W: r.W - 2, H: 1}, r.Y, AlignLeft,
			Span{" " + title + " ", titleStyle})
	}
	return r.Inner(2, 1)
}

// controlSpans renders key hints as "[key] action" pairs.
func controlSpans(pairs ...[2]string) []Span {
	var spans []Span
	for i, p := range pairs {
		if i > 0 {
			spans = append(spans, Span{"  ", styleBase})
		}
		spans = append(spans, Span{" " + p[0] + " ", styleKey}, Span{" " + p[1], styleMuted})
	}
	return spans
}

// flow wraps items onto as many lines as needed to fit width, separated by gap cells.
func flow(width, gap int, items ...[]Span) [][]Span {
	var (
		lines [][]Span
		line  []Span
		used  int
	)
	for _, item := range items {
		w := spansWidth(item)
		if len(line) > 0 && used+gap+w > width {
			lines = append(lines, line)
			line, used = nil, 0
		}
		if len(line) > 0 {
			line = append(line, Span{Text: strings.Repeat(" ", gap), Style: styleBase})
			used += gap
		}
		line = append(line, item...)
		used += w
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

