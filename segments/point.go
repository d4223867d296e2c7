package segments

import "fmt"

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) GetX() float64 {
	return p.X
}

func (p Point) GetY() float64 {
	return p.Y
}

func (p *Point) SetLocation(x, y float64) {
	p.X = x
	p.Y = y
}

// Exact comparison on both coordinates. This is fragile for computed values
// (0.1+0.2 is not 0.3), but segment removal depends on it matching exactly what
// the user typed.
func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Formats as "(x, y)" with both coordinates rounded to two decimals
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", FormatNumber(p.X), FormatNumber(p.Y))
}
