package render

import (
	"image"

	"gocv.io/x/gocv"

	tracklite "github.com/cvsuite/go-tracklite"
)

// Center draws a circle marker on the center of the tracked object
func Center(img *gocv.Mat, t tracklite.Result, style MarkerStyle) {
	style = style.resolve()

	c := t.GetCenter()
	gocv.Circle(img, image.Pt(int(c.X), int(c.Y)), style.Radius,
		style.Color, style.Thickness)
}

// BoundingBox draws the bounding box around the tracked object
func BoundingBox(img *gocv.Mat, t tracklite.Result, style MarkerStyle) {
	style = style.resolveBox()

	r := t.GetRect()
	tlbr := r.GetTlbr()
	rect := image.Rect(int(tlbr[0]), int(tlbr[1]), int(tlbr[2]), int(tlbr[3]))
	gocv.Rectangle(img, rect, style.Color, style.Thickness)
}

// Predicted draws a circle marker on the predicted center point
func Predicted(img *gocv.Mat, t tracklite.Result, style MarkerStyle) {
	style = style.resolve()

	p := t.GetPredictionPoint()
	gocv.Circle(img, image.Pt(int(p.X), int(p.Y)), style.Radius,
		style.Color, style.Thickness)
}

// Corrected draws a circle marker on the corrected center point
func Corrected(img *gocv.Mat, t tracklite.Result, style MarkerStyle) {
	style = style.resolve()

	p := t.GetCorrectedPoint()
	gocv.Circle(img, image.Pt(int(p.X), int(p.Y)), style.Radius,
		style.Color, style.Thickness)
}

// TrackerPoints draws a circle marker on every tracked point of an LK or
// SURF result.  An empty or nil point set draws nothing.
func TrackerPoints(img *gocv.Mat, t tracklite.PointsResult, style MarkerStyle) {
	style = style.resolve()

	for _, pt := range t.GetTrackedPoints() {
		gocv.Circle(img, image.Pt(int(pt.X), int(pt.Y)), style.Radius,
			style.Color, style.Thickness)
	}
}

// TrackEllipse draws the fitted ellipse of a CAMShift result
func TrackEllipse(img *gocv.Mat, t *tracklite.CAMShiftTrack, style MarkerStyle) {
	style = style.resolve()

	e := t.GetEllipse()
	axes := image.Pt(e.Width/2, e.Height/2)
	gocv.Ellipse(img, e.Center, axes, e.Angle, 0, 360,
		style.Color, style.Thickness)
}
