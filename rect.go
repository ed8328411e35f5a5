package tracklite

import (
	"math"
)

// Tlwh (top, left, width, height) represents a 1x4 matrix
type Tlwh []float32

// Tlbr (top, left, bottom, right) represents a 1x4 matrix
type Tlbr []float32

// Point represents an x,y coordinate pair in pixel space.  It is also used
// for velocity vectors where X and Y are the per-axis components.
type Point struct {
	X, Y float32
}

// Rect represents a rectangle with Tlwh (top, left, width, height) format
type Rect struct {
	Tlwh Tlwh
}

// NewRect creates a new Rect with given coordinates
func NewRect(x, y, width, height float32) Rect {
	return Rect{
		Tlwh: Tlwh{x, y, width, height},
	}
}

// X returns the x coordinate of the rectangle
func (r *Rect) X() float32 {
	return r.Tlwh[0]
}

// Y returns the y coordinate of the rectangle
func (r *Rect) Y() float32 {
	return r.Tlwh[1]
}

// Width returns the width of the rectangle
func (r *Rect) Width() float32 {
	return r.Tlwh[2]
}

// Height returns the height of the rectangle
func (r *Rect) Height() float32 {
	return r.Tlwh[3]
}

// TLX returns the top-left x coordinate of the rectangle
func (r *Rect) TLX() float32 {
	return r.Tlwh[0]
}

// TLY returns the top-left y coordinate of the rectangle
func (r *Rect) TLY() float32 {
	return r.Tlwh[1]
}

// BRX returns the bottom-right x coordinate of the rectangle
func (r *Rect) BRX() float32 {
	return r.Tlwh[0] + r.Tlwh[2]
}

// BRY returns the bottom-right y coordinate of the rectangle
func (r *Rect) BRY() float32 {
	return r.Tlwh[1] + r.Tlwh[3]
}

// Center returns the center point of the rectangle
func (r *Rect) Center() Point {
	return Point{
		X: r.Tlwh[0] + r.Tlwh[2]/2,
		Y: r.Tlwh[1] + r.Tlwh[3]/2,
	}
}

// Area returns the area of the rectangle
func (r *Rect) Area() float32 {
	return r.Tlwh[2] * r.Tlwh[3]
}

// GetTlbr converts the rectangle to Tlbr (top, left, bottom, right) format
func (r *Rect) GetTlbr() Tlbr {
	return Tlbr{
		r.Tlwh[0],
		r.Tlwh[1],
		r.Tlwh[0] + r.Tlwh[2],
		r.Tlwh[1] + r.Tlwh[3],
	}
}

// CalcIoU calculates the Intersection over Union (IoU) with another rectangle
func (r *Rect) CalcIoU(other Rect) float32 {

	boxArea := (other.Tlwh[2] + 1) * (other.Tlwh[3] + 1)
	iw := float32(math.Min(float64(r.Tlwh[0]+r.Tlwh[2]), float64(other.Tlwh[0]+other.Tlwh[2])) - math.Max(float64(r.Tlwh[0]), float64(other.Tlwh[0])) + 1)
	iou := float32(0)

	if iw > 0 {
		ih := float32(math.Min(float64(r.Tlwh[1]+r.Tlwh[3]), float64(other.Tlwh[1]+other.Tlwh[3])) - math.Max(float64(r.Tlwh[1]), float64(other.Tlwh[1])) + 1)

		if ih > 0 {
			ua := (r.Tlwh[2]+1)*(r.Tlwh[3]+1) + boxArea - iw*ih
			iou = iw * ih / ua
		}
	}

	return iou
}
