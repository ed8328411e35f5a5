package tracklite

import (
	"gocv.io/x/gocv"
)

// MFTrack is the result of median flow tracking for one frame.  On top of
// the base Track fields it carries the object shift magnitude the median
// flow computation produced from forward/backward optical flow.
type MFTrack struct {
	Track
	shift float64
}

// NewMFTrack creates a median flow result from the source frame, the
// tracked bounding box and the computed shift magnitude
func NewMFTrack(img *gocv.Mat, rect Rect, shift float64) *MFTrack {
	return &MFTrack{
		Track: *NewTrack(img, rect),
		shift: shift,
	}
}

// Kind returns the algorithm tag of the result
func (t *MFTrack) Kind() TrackKind {
	return KindMedianFlow
}

// GetShift returns the object shift magnitude calculated by median flow
func (t *MFTrack) GetShift() float64 {
	return t.shift
}
