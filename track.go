package tracklite

import (
	"time"

	"gocv.io/x/gocv"
)

// TrackKind identifies which tracking algorithm produced a result
type TrackKind int

const (
	// Result from a generic tracking routine
	KindBasic TrackKind = 0
	// Result from CAMShift color histogram tracking
	KindCAMShift TrackKind = 1
	// Result from Lucas-Kanade optical flow tracking
	KindLK TrackKind = 2
	// Result from SURF keypoint matching
	KindSURF TrackKind = 3
	// Result from median flow tracking
	KindMedianFlow TrackKind = 4
)

// Track is the base result produced for one processed frame.  All variant
// results embed Track so the common geometry and timing fields are carried
// the same way for every algorithm.
//
// The bounding box, center and creation time are fixed at construction.
// The size ratio, velocities, prediction point and corrected point are
// populated after construction by the caller chaining results across
// frames, typically through TrackSet.
type Track struct {
	// source frame the result was built from, shared not copied
	img *gocv.Mat
	// bounding box of the tracked object
	rect Rect
	// center of the bounding box, computed once at construction
	center Point
	// ratio of the bounding box area to the previous frame's result
	sizeRatio float32
	// velocity in pixels/frame
	vel Point
	// realtime velocity in pixels/second
	rtVel Point
	// creation time of the result
	created time.Time
	// predicted center point for the next frame
	predictPt Point
	// corrected/state center point after measurement update
	statePt Point
}

// NewTrack creates a new Track holding the source frame and bounding box.
// The frame is referenced, not copied, and must outlive any draw call on
// the result.
func NewTrack(img *gocv.Mat, rect Rect) *Track {
	return &Track{
		img:       img,
		rect:      rect,
		center:    rect.Center(),
		sizeRatio: 1,
		created:   time.Now(),
	}
}

// Kind returns the algorithm tag of the result
func (t *Track) Kind() TrackKind {
	return KindBasic
}

// GetImage returns the source frame the result was built from
func (t *Track) GetImage() *gocv.Mat {
	return t.img
}

// GetRect returns the bounding box of the tracked object
func (t *Track) GetRect() Rect {
	return t.rect
}

// GetCenter returns the center of the bounding box
func (t *Track) GetCenter() Point {
	return t.center
}

// Area returns the area of the bounding box
func (t *Track) Area() float32 {
	return t.rect.Area()
}

// GetSizeRatio returns the bounding box area ratio against the previous
// frame's result.  Defaults to 1 until set.
func (t *Track) GetSizeRatio() float32 {
	return t.sizeRatio
}

// SetSizeRatio sets the bounding box area ratio
func (t *Track) SetSizeRatio(ratio float32) {
	t.sizeRatio = ratio
}

// GetVelocity returns the object velocity in pixels/frame
func (t *Track) GetVelocity() Point {
	return t.vel
}

// SetVelocity sets the object velocity in pixels/frame
func (t *Track) SetVelocity(vel Point) {
	t.vel = vel
}

// GetVelocityRT returns the object velocity in pixels/second
func (t *Track) GetVelocityRT() Point {
	return t.rtVel
}

// SetVelocityRT sets the object velocity in pixels/second
func (t *Track) SetVelocityRT(vel Point) {
	t.rtVel = vel
}

// CreatedAt returns the creation time of the result
func (t *Track) CreatedAt() time.Time {
	return t.created
}

// GetPredictionPoint returns the predicted center point
func (t *Track) GetPredictionPoint() Point {
	return t.predictPt
}

// SetPredictionPoint sets the predicted center point
func (t *Track) SetPredictionPoint(pt Point) {
	t.predictPt = pt
}

// GetCorrectedPoint returns the corrected/state center point
func (t *Track) GetCorrectedPoint() Point {
	return t.statePt
}

// SetCorrectedPoint sets the corrected/state center point
func (t *Track) SetCorrectedPoint(pt Point) {
	t.statePt = pt
}

// ProcessTrack runs a caller supplied function on the frame held by the
// result and returns whatever the function returns
func ProcessTrack[T any](t *Track, fn func(img *gocv.Mat) T) T {
	return fn(t.img)
}

// Result is the common interface satisfied by Track and every variant
// result type.  TrackSet and the render subpackage operate on this surface
// so any algorithm's result can be chained and drawn.
type Result interface {
	Kind() TrackKind
	GetImage() *gocv.Mat
	GetRect() Rect
	GetCenter() Point
	Area() float32
	GetSizeRatio() float32
	SetSizeRatio(ratio float32)
	GetVelocity() Point
	SetVelocity(vel Point)
	GetVelocityRT() Point
	SetVelocityRT(vel Point)
	CreatedAt() time.Time
	GetPredictionPoint() Point
	SetPredictionPoint(pt Point)
	GetCorrectedPoint() Point
	SetCorrectedPoint(pt Point)
}

// PointsResult is satisfied by variant results carrying a tracked point
// set, such as LKTrack and SURFTrack
type PointsResult interface {
	Result
	GetTrackedPoints() []gocv.Point2f
}
