package render

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// MarkerStyle defines the parameters for drawing point markers and
// bounding boxes on an image
type MarkerStyle struct {
	Color     color.RGBA
	Radius    int
	Thickness int
}

// DefaultMarkerStyle returns default marker settings, a green circle of
// radius 1 with line thickness 1
func DefaultMarkerStyle() MarkerStyle {
	return MarkerStyle{
		Color:     Green,
		Radius:    1,
		Thickness: 1,
	}
}

// DefaultBoxStyle returns default bounding box settings, a green rectangle
// with line thickness 3
func DefaultBoxStyle() MarkerStyle {
	return MarkerStyle{
		Color:     Green,
		Thickness: 3,
	}
}

// resolve fills in the documented defaults for zero valued fields, a
// green marker of radius 1 with line thickness 1
func (s MarkerStyle) resolve() MarkerStyle {
	if s.Color == (color.RGBA{}) {
		s.Color = Green
	}

	if s.Radius == 0 {
		s.Radius = 1
	}

	if s.Thickness == 0 {
		s.Thickness = 1
	}

	return s
}

// resolveBox fills in the documented defaults for bounding box drawing
// where the line thickness defaults to 3
func (s MarkerStyle) resolveBox() MarkerStyle {
	if s.Color == (color.RGBA{}) {
		s.Color = Green
	}

	if s.Thickness == 0 {
		s.Thickness = 3
	}

	return s
}

// TextStyle defines the parameters for rendering overlay text on an image
// using GoCV
type TextStyle struct {
	// Pos is the overlay anchor.  The zero value places the overlay at
	// the default location documented on each overlay function.
	Pos image.Point
	// Size is the text height in pixels.  Zero means 16.
	Size int
	// Color of the text.  Zero means green.
	Color color.RGBA
	Face  gocv.HersheyFont
	// Thickness of the text strokes.  Zero means 1.
	Thickness int
}

// DefaultTextStyle returns default overlay text settings
func DefaultTextStyle() TextStyle {
	return TextStyle{
		Size:      16,
		Color:     Green,
		Face:      gocv.FontHersheySimplex,
		Thickness: 1,
	}
}

// resolve fills in the documented defaults for zero valued fields
func (s TextStyle) resolve() TextStyle {
	if s.Size == 0 {
		s.Size = 16
	}

	if s.Color == (color.RGBA{}) {
		s.Color = Green
	}

	if s.Thickness == 0 {
		s.Thickness = 1
	}

	return s
}
