package svg

import (
	"fmt"

	"braces.dev/errtrace"
	"golang.org/x/net/html"
)

// Axis describes a picture of a number line
// across the middle of a blank view.
type Axis struct {
	// Size of the view in user units.
	// The picture is displayed at this size in pixels.
	Width, Height float64

	// Lower and Upper are the first and last labeled integers.
	Lower, Upper int

	// Tick is the half-height of a tick at an integer.
	Tick float64
}

// Validate reports whether the axis can be drawn.
func (a *Axis) Validate() error {
	switch {
	case a.Width <= 0 || a.Height <= 0:
		return errtrace.Errorf("view size must be positive, got %vx%v", a.Width, a.Height)
	case a.Lower >= a.Upper:
		return errtrace.Errorf("lower bound %d must be less than upper bound %d", a.Lower, a.Upper)
	case a.Tick <= 0:
		return errtrace.Errorf("tick must be positive, got %v", a.Tick)
	}
	return nil
}

// Picture draws the axis on a white background.
// The line extends past both edges of the view.
func (a *Axis) Picture() (*Picture, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	pic := NewPicture(Num(a.Width)+"px", Num(a.Height)+"px", a.Width, a.Height)
	pic.Append(
		Rect(Point{}, a.Width, a.Height, "fill", "white", "stroke", "none"),
		AxisGroup(Point{X: -50, Y: a.Height / 2}, a.Width+100, a.Tick, a.Lower, a.Upper),
	)
	return pic, nil
}

// AxisGroup draws a horizontal number line from start,
// spanning width units and the integers lower through upper.
//
// Integers get ticks of half-height tick,
// except zero which is twice as tall.
// Quarter units between integers get thin ticks half as tall.
func AxisGroup(start Point, width, tick float64, lower, upper int) *html.Node {
	step := width / float64(upper-lower)
	g := Group("stroke", "black")

	g.AppendChild(Line(start, Point{X: start.X + width, Y: start.Y}, "stroke-width", "3"))

	vertical := func(x, half float64, strokeWidth int) *html.Node {
		return Line(
			Point{X: start.X + x, Y: start.Y - half},
			Point{X: start.X + x, Y: start.Y + half},
			"stroke-width", fmt.Sprint(strokeWidth),
		)
	}

	for i := 0; i <= upper-lower; i++ {
		half := tick
		if lower+i == 0 {
			half = 2 * tick
		}
		g.AppendChild(vertical(float64(i)*step, half, 3))
	}

	for i := 0; i < upper-lower; i++ {
		for q := 1; q < 4; q++ {
			x := (float64(i) + float64(q)/4) * step
			g.AppendChild(vertical(x, tick/2, 1))
		}
	}

	return g
}
