package tui

// Rect is a cell area of the screen. X and Y are the top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Inner shrinks the area by mx columns on each side and my rows on top and bottom.
func (r Rect) Inner(mx, my int) Rect {
	in := Rect{X: r.X + mx, Y: r.Y + my, W: r.W - 2*mx, H: r.H - 2*my}
	if in.W < 0 {
		in.W = 0
	}
	if in.H < 0 {
		in.H = 0
	}
	return in
}

// Direction is the axis a Split runs along.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

type constraintKind int

const (
	kindLength constraintKind = iota
	kindMin
	kindPercentage
)

// Constraint sizes one segment of a Split.
type Constraint struct {
	kind  constraintKind
	value int
}

// Length is a fixed number of cells.
func Length(n int) Constraint { return Constraint{kindLength, n} }

// Min takes at least n cells plus whatever is left over.
func Min(n int) Constraint { return Constraint{kindMin, n} }

// Percentage takes p percent of the whole area.
func Percentage(p int) Constraint { return Constraint{kindPercentage, p} }

// Split divides r along dir. Fixed and percentage segments are sized first,
// then the leftover is shared by the Min segments (the last one absorbs the
// rounding). When space runs out, later segments are truncated to zero.
func Split(r Rect, dir Direction, cs ...Constraint) []Rect {
	total := r.H
	if dir == Horizontal {
		total = r.W
	}
	if total < 0 {
		total = 0
	}

	sizes := make([]int, len(cs))
	used, mins := 0, 0
	for i, c := range cs {
		switch c.kind {
		case kindLength, kindMin:
			sizes[i] = c.value
		case kindPercentage:
			sizes[i] = total * c.value / 100
		}
		if c.kind == kindMin {
			mins++
		}
		used += sizes[i]
	}

	if spare := total - used; spare > 0 && mins > 0 {
		share := spare / mins
		seen := 0
		for i, c := range cs {
			if c.kind != kindMin {
				continue
			}
			seen++
			if seen == mins {
				sizes[i] += spare - share*(mins-1)
			} else {
				sizes[i] += share
			}
		}
	}

	out := make([]Rect, len(cs))
	offset := 0
	for i, size := range sizes {
		if size > total-offset {
			size = total - offset
		}
		if size < 0 {
			size = 0
		}
		if dir == Vertical {
			out[i] = Rect{X: r.X, Y: r.Y + offset, W: r.W, H: size}
		} else {
			out[i] = Rect{X: r.X + offset, Y: r.Y, W: size, H: r.H}
		}
		offset += size
	}
	return out
}

// Centered returns a w by h area centered in r, clamped to fit inside it.
func Centered(r Rect, w, h int) Rect {
	if w > r.W {
		w = r.W
	}
	if h > r.H {
		h = r.H
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}
