package tracklite

import (
	"gocv.io/x/gocv"
	"gocv.io/x/gocv/contrib"
)

// BuildOutcome names the construction path taken by NewSURFTrack.  Any
// outcome other than OutcomeOK means matching failed for the frame and the
// result holds the degenerate 1x1 placeholder box.
type BuildOutcome int

const (
	// Matching succeeded and the box was derived from the match points
	OutcomeOK BuildOutcome = 0
	// The template descriptor was absent
	OutcomeNoTemplateDescriptor BuildOutcome = 1
	// Fewer than one match point was supplied
	OutcomeNoMatches BuildOutcome = 2
	// The image descriptor was absent
	OutcomeNoImageDescriptor BuildOutcome = 3
)

// String returns the outcome name
func (o BuildOutcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNoTemplateDescriptor:
		return "no template descriptor"
	case OutcomeNoMatches:
		return "no matches"
	case OutcomeNoImageDescriptor:
		return "no image descriptor"
	}
	return "unknown"
}

// boxPad is the pixel margin applied to the low edges of the box derived
// from the matched point extent
const boxPad = 5

// SURFTrack is the result of SURF keypoint matching for one frame.  On top
// of the base Track fields it carries the detector and descriptor
// extractor handles, the template image, the keypoint/descriptor
// collections for both the frame and the template, and the matched point
// coordinates the bounding box was derived from.
type SURFTrack struct {
	Track
	outcome   BuildOutcome
	detector  *contrib.SURF
	extractor *contrib.SURF
	template  *gocv.Mat
	skp       []gocv.KeyPoint
	sd        *gocv.Mat
	tkp       []gocv.KeyPoint
	td        *gocv.Mat
	pts       []gocv.Point2f
}

// NewSURFTrack creates a SURF matching result.  matchPts are the keypoints
// matched between the template and the frame, skp/sd the frame keypoints
// and descriptor, tkp/td the template keypoints and descriptor.
//
// Degenerate inputs never fail.  When the template descriptor is absent no
// payload is stored; when no match points exist or the image descriptor is
// absent the payload is stored but the point set is left nil.  In all
// three cases the bounding box falls back to the 1x1 placeholder and the
// outcome names which branch was taken.
func NewSURFTrack(img *gocv.Mat, matchPts []gocv.KeyPoint,
	detector, extractor *contrib.SURF, template *gocv.Mat,
	skp []gocv.KeyPoint, sd *gocv.Mat,
	tkp []gocv.KeyPoint, td *gocv.Mat) *SURFTrack {

	if td == nil {
		return &SURFTrack{
			Track:   *NewTrack(img, NewRect(1, 1, 1, 1)),
			outcome: OutcomeNoTemplateDescriptor,
		}
	}

	if len(matchPts) < 1 || sd == nil {

		outcome := OutcomeNoMatches

		if len(matchPts) >= 1 {
			outcome = OutcomeNoImageDescriptor
		}

		return &SURFTrack{
			Track:     *NewTrack(img, NewRect(1, 1, 1, 1)),
			outcome:   outcome,
			detector:  detector,
			extractor: extractor,
			template:  template,
			skp:       skp,
			sd:        sd,
			tkp:       tkp,
			td:        td,
		}
	}

	pts := make([]gocv.Point2f, len(matchPts))

	for i, kp := range matchPts {
		pts[i] = gocv.Point2f{X: float32(kp.X), Y: float32(kp.Y)}
	}

	// the cluster center is computed but the box derives from the min/max
	// extent of the match points only
	clusterCenter(pts)

	minX, minY := int(pts[0].X), int(pts[0].Y)
	maxX, maxY := minX, minY

	for _, p := range pts[1:] {
		if int(p.X) < minX {
			minX = int(p.X)
		}
		if int(p.X) > maxX {
			maxX = int(p.X)
		}
		if int(p.Y) < minY {
			minY = int(p.Y)
		}
		if int(p.Y) > maxY {
			maxY = int(p.Y)
		}
	}

	rect := NewRect(float32(minX-boxPad), float32(minY-boxPad),
		float32(maxX-minX+boxPad), float32(maxY-minY+boxPad))

	return &SURFTrack{
		Track:     *NewTrack(img, rect),
		outcome:   OutcomeOK,
		detector:  detector,
		extractor: extractor,
		template:  template,
		skp:       skp,
		sd:        sd,
		tkp:       tkp,
		td:        td,
		pts:       pts,
	}
}

// clusterCenter runs single cluster k-means over the match point
// coordinates and returns the cluster center
func clusterCenter(pts []gocv.Point2f) Point {

	data := gocv.NewMatWithSize(len(pts), 2, gocv.MatTypeCV32F)
	defer data.Close()

	for i, p := range pts {
		data.SetFloatAt(i, 0, p.X)
		data.SetFloatAt(i, 1, p.Y)
	}

	labels := gocv.NewMat()
	defer labels.Close()

	centers := gocv.NewMat()
	defer centers.Close()

	criteria := gocv.NewTermCriteria(gocv.MaxIter|gocv.EPS, 10, 1.0)
	gocv.KMeans(data, 1, &labels, criteria, 1, gocv.KMeansRandomCenters, &centers)

	return Point{
		X: centers.GetFloatAt(0, 0),
		Y: centers.GetFloatAt(0, 1),
	}
}

// Kind returns the algorithm tag of the result
func (t *SURFTrack) Kind() TrackKind {
	return KindSURF
}

// Outcome returns which construction path was taken
func (t *SURFTrack) Outcome() BuildOutcome {
	return t.outcome
}

// IsDegenerate reports whether matching failed for this frame and the
// bounding box is the 1x1 placeholder
func (t *SURFTrack) IsDegenerate() bool {
	return t.outcome != OutcomeOK
}

// GetTrackedPoints returns the matched point coordinates, nil when the
// result is degenerate
func (t *SURFTrack) GetTrackedPoints() []gocv.Point2f {
	return t.pts
}

// GetDetector returns the SURF detector handle
func (t *SURFTrack) GetDetector() *contrib.SURF {
	return t.detector
}

// GetDescriptorExtractor returns the SURF descriptor extractor handle
func (t *SURFTrack) GetDescriptorExtractor() *contrib.SURF {
	return t.extractor
}

// GetImageKeyPoints returns the keypoints found on the frame
func (t *SURFTrack) GetImageKeyPoints() []gocv.KeyPoint {
	return t.skp
}

// GetImageDescriptor returns the frame descriptor matrix
func (t *SURFTrack) GetImageDescriptor() *gocv.Mat {
	return t.sd
}

// GetTemplateKeyPoints returns the keypoints found on the template image
func (t *SURFTrack) GetTemplateKeyPoints() []gocv.KeyPoint {
	return t.tkp
}

// GetTemplateDescriptor returns the template descriptor matrix
func (t *SURFTrack) GetTemplateDescriptor() *gocv.Mat {
	return t.td
}

// GetTemplateImage returns the template image
func (t *SURFTrack) GetTemplateImage() *gocv.Mat {
	return t.template
}
