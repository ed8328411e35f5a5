package tracklite

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// TrackSet is a bounded history of results for one tracked object.  Each
// appended result gets its size ratio, velocities and prediction/corrected
// points populated from the history, so callers only construct the
// per-frame result and hand it over.
type TrackSet struct {
	// id uniquely identifies the tracked object across frames
	id uuid.UUID
	// maxLen is the maximum number of most recent results to keep
	maxLen int
	// history of results, oldest first
	tracks []Result
	// kalman filter state for center point prediction/correction
	kf        *PointKalmanFilter
	mean      PointState
	cov       PointStateCov
	initiated bool
	sync.Mutex
}

// NewTrackSet returns a new track history instance.  maxLen is the number
// of most recent results to keep.
func NewTrackSet(maxLen int) *TrackSet {
	return &TrackSet{
		id:     uuid.New(),
		maxLen: maxLen,
		kf:     NewPointKalmanFilter(1.0/20, 1.0/160),
		mean:   make(PointState, 4),
		cov:    PointStateCov{mat.NewDense(4, 4, nil)},
	}
}

// ID returns the unique ID of the tracked object
func (ts *TrackSet) ID() uuid.UUID {
	return ts.id
}

// Append adds a result to the history, computing its size ratio, pixel
// velocity and realtime velocity against the previous result and running
// the prediction/correction chain to fill in the prediction and corrected
// points
func (ts *TrackSet) Append(r Result) error {
	ts.Lock()
	defer ts.Unlock()

	if len(ts.tracks) > 0 {
		prev := ts.tracks[len(ts.tracks)-1]

		if area := prev.Area(); area > 0 {
			r.SetSizeRatio(r.Area() / area)
		}

		pc := prev.GetCenter()
		cc := r.GetCenter()

		// pixels/frame
		r.SetVelocity(Point{X: cc.X - pc.X, Y: cc.Y - pc.Y})

		// pixels/second
		if dt := r.CreatedAt().Sub(prev.CreatedAt()).Seconds(); dt > 0 {
			r.SetVelocityRT(Point{
				X: float32(float64(cc.X-pc.X) / dt),
				Y: float32(float64(cc.Y-pc.Y) / dt),
			})
		}
	}

	scale := r.GetRect().Height()

	if !ts.initiated {
		ts.kf.Initiate(ts.mean, &ts.cov, r.GetCenter(), scale)
		ts.initiated = true

		r.SetPredictionPoint(r.GetCenter())
		r.SetCorrectedPoint(r.GetCenter())

	} else {
		ts.kf.Predict(ts.mean, &ts.cov, scale)
		r.SetPredictionPoint(Point{X: ts.mean[0], Y: ts.mean[1]})

		if err := ts.kf.Update(ts.mean, &ts.cov, r.GetCenter(), scale); err != nil {
			return errors.Wrap(err, "correcting track state")
		}

		r.SetCorrectedPoint(Point{X: ts.mean[0], Y: ts.mean[1]})
	}

	ts.tracks = append(ts.tracks, r)

	// check if history is exceeded and drop oldest result
	if len(ts.tracks) > ts.maxLen {
		ts.tracks = ts.tracks[1:]
	}

	return nil
}

// Len returns the number of results in the history
func (ts *TrackSet) Len() int {
	ts.Lock()
	defer ts.Unlock()

	return len(ts.tracks)
}

// Last returns the most recent result, nil when the history is empty
func (ts *TrackSet) Last() Result {
	ts.Lock()
	defer ts.Unlock()

	if len(ts.tracks) == 0 {
		return nil
	}

	return ts.tracks[len(ts.tracks)-1]
}

// Tracks returns a copy of the result history, oldest first
func (ts *TrackSet) Tracks() []Result {
	ts.Lock()
	defer ts.Unlock()

	out := make([]Result, len(ts.tracks))
	copy(out, ts.tracks)

	return out
}

// Centers returns the center point history, oldest first
func (ts *TrackSet) Centers() []Point {
	ts.Lock()
	defer ts.Unlock()

	out := make([]Point, len(ts.tracks))

	for i, r := range ts.tracks {
		out[i] = r.GetCenter()
	}

	return out
}

// Overlap returns the IoU between the bounding boxes of the two most
// recent results.  A low value means the box jumped between frames, which
// usually indicates tracking drifted or failed.  Returns 0 when fewer
// than two results exist.
func (ts *TrackSet) Overlap() float32 {
	ts.Lock()
	defer ts.Unlock()

	if len(ts.tracks) < 2 {
		return 0
	}

	prev := ts.tracks[len(ts.tracks)-2].GetRect()

	return prev.CalcIoU(ts.tracks[len(ts.tracks)-1].GetRect())
}

// Reset clears the history and the filter state
func (ts *TrackSet) Reset() {
	ts.Lock()
	defer ts.Unlock()

	ts.tracks = nil
	ts.mean = make(PointState, 4)
	ts.cov = PointStateCov{mat.NewDense(4, 4, nil)}
	ts.initiated = false
}
