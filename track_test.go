package tracklite

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestTrackGeometry(t *testing.T) {
	img := gocv.NewMatWithSize(600, 800, gocv.MatTypeCV8UC3)
	defer img.Close()

	tr := NewTrack(&img, NewRect(100, 100, 50, 50))

	c := tr.GetCenter()

	if c.X != 125 || c.Y != 125 {
		t.Errorf("expected center (125,125), got (%v,%v)", c.X, c.Y)
	}

	if a := tr.Area(); a != 2500 {
		t.Errorf("expected area 2500, got %v", a)
	}

	r := tr.GetRect()
	expected := Tlwh{100, 100, 50, 50}

	for i := range expected {
		if r.Tlwh[i] != expected[i] {
			t.Errorf("expected rect %v, got %v", expected, r.Tlwh)
			break
		}
	}

	if tr.GetImage() != &img {
		t.Error("expected held frame to be the source frame")
	}

	if tr.Kind() != KindBasic {
		t.Errorf("expected kind %d, got %d", KindBasic, tr.Kind())
	}
}

func TestTrackDefaults(t *testing.T) {
	img := gocv.NewMatWithSize(600, 800, gocv.MatTypeCV8UC3)
	defer img.Close()

	tr := NewTrack(&img, NewRect(10, 10, 20, 20))

	if tr.GetSizeRatio() != 1 {
		t.Errorf("expected default size ratio 1, got %v", tr.GetSizeRatio())
	}

	if v := tr.GetVelocity(); v.X != 0 || v.Y != 0 {
		t.Errorf("expected zero velocity, got (%v,%v)", v.X, v.Y)
	}

	if v := tr.GetVelocityRT(); v.X != 0 || v.Y != 0 {
		t.Errorf("expected zero realtime velocity, got (%v,%v)", v.X, v.Y)
	}

	if tr.CreatedAt().IsZero() {
		t.Error("expected creation time to be set")
	}
}

func TestTrackSetters(t *testing.T) {
	img := gocv.NewMatWithSize(600, 800, gocv.MatTypeCV8UC3)
	defer img.Close()

	tr := NewTrack(&img, NewRect(10, 10, 20, 20))

	tr.SetSizeRatio(1.5)
	tr.SetVelocity(Point{X: 3, Y: -2})
	tr.SetVelocityRT(Point{X: 30, Y: -20})
	tr.SetPredictionPoint(Point{X: 22, Y: 21})
	tr.SetCorrectedPoint(Point{X: 21, Y: 20})

	if tr.GetSizeRatio() != 1.5 {
		t.Errorf("expected size ratio 1.5, got %v", tr.GetSizeRatio())
	}

	if v := tr.GetVelocity(); v.X != 3 || v.Y != -2 {
		t.Errorf("expected velocity (3,-2), got (%v,%v)", v.X, v.Y)
	}

	if v := tr.GetVelocityRT(); v.X != 30 || v.Y != -20 {
		t.Errorf("expected realtime velocity (30,-20), got (%v,%v)", v.X, v.Y)
	}

	if p := tr.GetPredictionPoint(); p.X != 22 || p.Y != 21 {
		t.Errorf("expected prediction point (22,21), got (%v,%v)", p.X, p.Y)
	}

	if p := tr.GetCorrectedPoint(); p.X != 21 || p.Y != 20 {
		t.Errorf("expected corrected point (21,20), got (%v,%v)", p.X, p.Y)
	}
}

func TestProcessTrack(t *testing.T) {
	img := gocv.NewMatWithSize(600, 800, gocv.MatTypeCV8UC3)
	defer img.Close()

	tr := NewTrack(&img, NewRect(100, 100, 50, 50))

	cols := ProcessTrack(tr, func(img *gocv.Mat) int {
		return img.Cols()
	})

	if cols != 800 {
		t.Errorf("expected 800 columns, got %d", cols)
	}
}

func TestVariantKinds(t *testing.T) {
	img := gocv.NewMatWithSize(600, 800, gocv.MatTypeCV8UC3)
	defer img.Close()

	rect := NewRect(10, 10, 20, 20)

	var results = []struct {
		result Result
		kind   TrackKind
	}{
		{NewCAMShiftTrack(&img, rect, gocv.RotatedRect{}), KindCAMShift},
		{NewLKTrack(&img, rect, nil), KindLK},
		{NewMFTrack(&img, rect, 2.5), KindMedianFlow},
	}

	for _, r := range results {
		if r.result.Kind() != r.kind {
			t.Errorf("expected kind %d, got %d", r.kind, r.result.Kind())
		}
	}
}

func TestMFTrackShift(t *testing.T) {
	img := gocv.NewMatWithSize(600, 800, gocv.MatTypeCV8UC3)
	defer img.Close()

	tr := NewMFTrack(&img, NewRect(10, 10, 20, 20), 3.75)

	if tr.GetShift() != 3.75 {
		t.Errorf("expected shift 3.75, got %v", tr.GetShift())
	}
}

func TestLKTrackPoints(t *testing.T) {
	img := gocv.NewMatWithSize(600, 800, gocv.MatTypeCV8UC3)
	defer img.Close()

	pts := []gocv.Point2f{{X: 12, Y: 14}, {X: 20, Y: 25}}

	tr := NewLKTrack(&img, NewRect(10, 10, 20, 20), pts)

	got := tr.GetTrackedPoints()

	if len(got) != 2 || got[0] != pts[0] || got[1] != pts[1] {
		t.Errorf("expected points %v, got %v", pts, got)
	}

	empty := NewLKTrack(&img, NewRect(10, 10, 20, 20), nil)

	if empty.GetTrackedPoints() != nil {
		t.Error("expected nil point set to be preserved")
	}
}
