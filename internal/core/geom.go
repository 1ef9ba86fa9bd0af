// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
// The result never has negative dimensions.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: Max(0, r.W-2*n),
		H: Max(0, r.H-2*n),
	}
}

// Grid splits area into n cells laid out in cols columns, left to right and
// top to bottom, with gap cells between neighbours.
func Grid(area Rect, n, cols, gap int) []Rect {
	if n <= 0 || cols <= 0 {
		return nil
	}
	cols = Min(cols, n)
	rows := (n + cols - 1) / cols

	cellW := Max(1, (area.W-gap*(cols-1))/cols)
	cellH := Max(1, (area.H-gap*(rows-1))/rows)

	cells := make([]Rect, n)
	for i := range cells {
		col, row := i%cols, i/cols
		cells[i] = Rect{
			X: area.X + col*(cellW+gap),
			Y: area.Y + row*(cellH+gap),
			W: cellW,
			H: cellH,
		}
	}
	return cells
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
