package tui

import "testing"

func TestSplitVertical(t *testing.T) {
	got := Split(Rect{0, 0, 80, 24}, Vertical, Length(3), Min(0), Length(1))
	want := []Rect{
		{0, 0, 80, 3},
		{0, 3, 80, 20},
		{0, 23, 80, 1},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSplitHorizontalPercentages(t *testing.T) {
	got := Split(Rect{2, 5, 81, 10}, Horizontal, Percentage(50), Min(0))
	if got[0] != (Rect{2, 5, 40, 10}) {
		t.Errorf("left = %+v", got[0])
	}
	if got[1] != (Rect{42, 5, 41, 10}) {
		t.Errorf("right = %+v", got[1])
	}
}

func TestSplitSharesLeftoverBetweenMins(t *testing.T) {
	got := Split(Rect{0, 0, 10, 11}, Vertical, Min(2), Length(2), Min(2))
	if got[0].H != 4 || got[1].H != 2 || got[2].H != 5 {
		t.Errorf("heights = %d %d %d, want 4 2 5", got[0].H, got[1].H, got[2].H)
	}
	if got[2].Y != 6 {
		t.Errorf("last segment starts at %d", got[2].Y)
	}
}

func TestSplitTruncatesWhenTooSmall(t *testing.T) {
	got := Split(Rect{0, 0, 10, 4}, Vertical, Length(3), Length(3), Length(3))
	heights := []int{got[0].H, got[1].H, got[2].H}
	want := []int{3, 1, 0}
	for i := range want {
		if heights[i] != want[i] {
			t.Errorf("heights = %v, want %v", heights, want)
			break
		}
	}
}

func TestInnerNeverNegative(t *testing.T) {
	if got := (Rect{0, 0, 3, 1}).Inner(2, 1); got.W != 0 || got.H != 0 {
		t.Errorf("Inner = %+v", got)
	}
	if got := (Rect{1, 1, 10, 5}).Inner(2, 1); got != (Rect{3, 2, 6, 3}) {
		t.Errorf("Inner = %+v", got)
	}
}

func TestCentered(t *testing.T) {
	tests := []struct {
		r    Rect
		w, h int
		want Rect
	}{
		{Rect{0, 0, 80, 24}, 50, 9, Rect{15, 7, 50, 9}},
		{Rect{0, 0, 30, 5}, 50, 9, Rect{0, 0, 30, 5}},
		{Rect{10, 10, 20, 20}, 10, 10, Rect{15, 15, 10, 10}},
	}
	for _, tt := range tests {
		if got := Centered(tt.r, tt.w, tt.h); got != tt.want {
			t.Errorf("Centered(%+v, %d, %d) = %+v, want %+v", tt.r, tt.w, tt.h, got, tt.want)
		}
	}
}
