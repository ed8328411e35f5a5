package tracklite

import (
	"gocv.io/x/gocv"
)

// LKTrack is the result of Lucas-Kanade optical flow tracking for one
// frame.  On top of the base Track fields it carries the point coordinates
// the flow calculation followed into this frame.  An empty or nil point
// set is legal and drawing it is a no-op.
type LKTrack struct {
	Track
	pts []gocv.Point2f
}

// NewLKTrack creates a Lucas-Kanade result from the source frame, the
// tracked bounding box and the tracked points
func NewLKTrack(img *gocv.Mat, rect Rect, pts []gocv.Point2f) *LKTrack {
	return &LKTrack{
		Track: *NewTrack(img, rect),
		pts:   pts,
	}
}

// Kind returns the algorithm tag of the result
func (t *LKTrack) Kind() TrackKind {
	return KindLK
}

// GetTrackedPoints returns the points being tracked, may be nil
func (t *LKTrack) GetTrackedPoints() []gocv.Point2f {
	return t.pts
}
