package tracklite

import (
	"gocv.io/x/gocv"
)

// CAMShiftTrack is the result of CAMShift color histogram tracking for one
// frame.  On top of the base Track fields it carries the fitted ellipse
// returned by gocv.CamShift.
type CAMShiftTrack struct {
	Track
	ellipse gocv.RotatedRect
}

// NewCAMShiftTrack creates a CAMShift result from the source frame, the
// tracked bounding box and the fitted ellipse
func NewCAMShiftTrack(img *gocv.Mat, rect Rect, ellipse gocv.RotatedRect) *CAMShiftTrack {
	return &CAMShiftTrack{
		Track:   *NewTrack(img, rect),
		ellipse: ellipse,
	}
}

// Kind returns the algorithm tag of the result
func (t *CAMShiftTrack) Kind() TrackKind {
	return KindCAMShift
}

// GetEllipse returns the fitted ellipse of the tracked object
func (t *CAMShiftTrack) GetEllipse() gocv.RotatedRect {
	return t.ellipse
}
