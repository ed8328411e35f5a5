package render

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	tracklite "github.com/cvsuite/go-tracklite"
)

// anchorMargin is the column offset from the right frame edge used for the
// default overlay positions
const anchorMargin = 120

// anchor returns the default overlay position for a frame width and row
func anchor(width, y int) image.Point {
	return image.Pt(width-anchorMargin, y)
}

// putText renders a line of text at pos, sizing the Hershey font so the
// glyph height matches the pixel height given in the style
func putText(img *gocv.Mat, text string, pos image.Point, style TextStyle) {
	scale := fontScaleForHeight(style.Face, style.Size, style.Thickness)
	gocv.PutTextWithParams(img, text, pos, style.Face, scale, style.Color,
		style.Thickness, gocv.LineAA, false)
}

// fontScaleForHeight derives the Hershey font scale producing the given
// pixel height by measuring the font at scale 1.0.  Hershey glyphs scale
// linearly so a single reference measurement is enough.
func fontScaleForHeight(face gocv.HersheyFont, height, thickness int) float64 {
	size, baseline := gocv.GetTextSizeWithBaseline("Ag", face, 1.0, thickness)

	if h := size.Y + baseline; h > 0 {
		return float64(height) / float64(h)
	}

	return 1.0
}

func coordinatesText(c tracklite.Point) string {
	return fmt.Sprintf("x = %d  y = %d", int(c.X), int(c.Y))
}

func sizeRatioText(ratio float32) string {
	return fmt.Sprintf("size = %f", ratio)
}

func velocityText(vel tracklite.Point) string {
	return fmt.Sprintf("Vx = %.2f Vy = %.2f", vel.X, vel.Y)
}

func shiftText(shift float64) string {
	return fmt.Sprintf("Shift = %.2f", shift)
}

func predictedText(p tracklite.Point) string {
	return fmt.Sprintf("Predicted: x = %d  y = %d", int(p.X), int(p.Y))
}

func correctedText(p tracklite.Point) string {
	return fmt.Sprintf("Corrected: x = %d  y = %d", int(p.X), int(p.Y))
}

// Coordinates overlays the center coordinates of the tracked object as
// text.  The default position is 120 pixels in from the right frame edge
// at row 10.
func Coordinates(img *gocv.Mat, t tracklite.Result, style TextStyle) {
	style = style.resolve()

	pos := style.Pos
	if pos == (image.Point{}) {
		pos = anchor(img.Cols(), 10)
	}

	putText(img, coordinatesText(t.GetCenter()), pos, style)
}

// SizeRatio overlays the size ratio of the tracked object as text.  The
// default position is 120 pixels in from the right frame edge at row 30.
func SizeRatio(img *gocv.Mat, t tracklite.Result, style TextStyle) {
	style = style.resolve()

	pos := style.Pos
	if pos == (image.Point{}) {
		pos = anchor(img.Cols(), 30)
	}

	putText(img, sizeRatioText(t.GetSizeRatio()), pos, style)
}

// PixelVelocity overlays the object velocity in pixels/frame as text with
// a unit line below it.  The default position is 120 pixels in from the
// right frame edge at row 90.
func PixelVelocity(img *gocv.Mat, t tracklite.Result, style TextStyle) {
	style = style.resolve()

	pos := style.Pos
	if pos == (image.Point{}) {
		pos = anchor(img.Cols(), 90)
	}

	putText(img, velocityText(t.GetVelocity()), pos, style)
	putText(img, "in pixels/frame", image.Pt(pos.X, pos.Y+style.Size), style)
}

// PixelVelocityRT overlays the object velocity in pixels/second as text
// with a unit line below it.  The default position is 120 pixels in from
// the right frame edge at row 50.
func PixelVelocityRT(img *gocv.Mat, t tracklite.Result, style TextStyle) {
	style = style.resolve()

	pos := style.Pos
	if pos == (image.Point{}) {
		pos = anchor(img.Cols(), 50)
	}

	putText(img, velocityText(t.GetVelocityRT()), pos, style)
	putText(img, "in pixels/second", image.Pt(pos.X, pos.Y+style.Size), style)
}

// PredictedCoordinates overlays the predicted center point as text.  The
// default position is (5, 10).
func PredictedCoordinates(img *gocv.Mat, t tracklite.Result, style TextStyle) {
	style = style.resolve()

	pos := style.Pos
	if pos == (image.Point{}) {
		pos = image.Pt(5, 10)
	}

	putText(img, predictedText(t.GetPredictionPoint()), pos, style)
}

// CorrectedCoordinates overlays the corrected center point as text.  The
// default position is (5, 40).
func CorrectedCoordinates(img *gocv.Mat, t tracklite.Result, style TextStyle) {
	style = style.resolve()

	pos := style.Pos
	if pos == (image.Point{}) {
		pos = image.Pt(5, 40)
	}

	putText(img, correctedText(t.GetCorrectedPoint()), pos, style)
}

// Shift overlays the median flow shift magnitude as text with a unit line
// below it.  The default position is 120 pixels in from the right frame
// edge at row 50.
func Shift(img *gocv.Mat, t *tracklite.MFTrack, style TextStyle) {
	style = style.resolve()

	pos := style.Pos
	if pos == (image.Point{}) {
		pos = anchor(img.Cols(), 50)
	}

	putText(img, shiftText(t.GetShift()), pos, style)
	putText(img, "in pixels/second", image.Pt(pos.X, pos.Y+style.Size), style)
}
