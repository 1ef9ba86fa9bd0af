package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 12, 12, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right inside", 14, 14, true},
		{"right edge (exclusive)", 15, 12, false},
		{"bottom edge (exclusive)", 12, 15, false},
		{"outside left", 9, 12, false},
		{"outside above", 12, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		n    int
		want Rect
	}{
		{"shrink", NewRect(0, 0, 10, 6), 1, NewRect(1, 1, 8, 4)},
		{"zero", NewRect(3, 4, 5, 6), 0, NewRect(3, 4, 5, 6)},
		{"collapse", NewRect(0, 0, 2, 2), 2, NewRect(2, 2, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Inset(tt.n); got != tt.want {
				t.Errorf("Inset(%d) = %+v, want %+v", tt.n, got, tt.want)
			}
		})
	}
}

func TestGrid(t *testing.T) {
	cells := Grid(NewRect(0, 0, 22, 9), 5, 3, 2)
	if len(cells) != 5 {
		t.Fatalf("Grid returned %d cells, want 5", len(cells))
	}

	// 3 columns of (22-4)/3 = 6, 2 rows of (9-2)/2 = 3
	want := []Rect{
		NewRect(0, 0, 6, 3),
		NewRect(8, 0, 6, 3),
		NewRect(16, 0, 6, 3),
		NewRect(0, 5, 6, 3),
		NewRect(8, 5, 6, 3),
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cell %d = %+v, want %+v", i, cells[i], want[i])
		}
	}
}

func TestGridDegenerate(t *testing.T) {
	if Grid(NewRect(0, 0, 10, 10), 0, 3, 1) != nil {
		t.Error("Grid with no cells should be nil")
	}

	cells := Grid(NewRect(0, 0, 10, 4), 2, 5, 0)
	if len(cells) != 2 || cells[0].W != 5 || cells[1].X != 5 {
		t.Errorf("Grid should cap columns at cell count, got %+v", cells)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min failed")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max failed")
	}
}

func TestTicksFor(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 30}
	if got := cfg.TicksFor(5); got != 150 {
		t.Errorf("TicksFor(5) = %d, want 150", got)
	}

	cfg.TickRate = 0
	if got := cfg.TicksFor(2); got != 60 {
		t.Errorf("TicksFor with zero rate = %d, want default-rate 60", got)
	}
}
