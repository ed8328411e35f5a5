package tracklite

import (
	"testing"

	"github.com/google/uuid"
	"gocv.io/x/gocv"
)

func TestTrackSetID(t *testing.T) {
	ts := NewTrackSet(10)

	if ts.ID() == uuid.Nil {
		t.Error("expected a non-nil track set ID")
	}

	if ts.ID() == NewTrackSet(10).ID() {
		t.Error("expected distinct IDs for distinct track sets")
	}
}

func TestTrackSetAppendChainsFields(t *testing.T) {
	img := gocv.NewMatWithSize(600, 800, gocv.MatTypeCV8UC3)
	defer img.Close()

	ts := NewTrackSet(10)

	t1 := NewTrack(&img, NewRect(100, 100, 50, 50))

	if err := ts.Append(t1); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	// first result seeds the filter, prediction and correction equal the
	// measured center
	if p := t1.GetPredictionPoint(); p.X != 125 || p.Y != 125 {
		t.Errorf("expected prediction (125,125), got (%v,%v)", p.X, p.Y)
	}

	if p := t1.GetCorrectedPoint(); p.X != 125 || p.Y != 125 {
		t.Errorf("expected corrected point (125,125), got (%v,%v)", p.X, p.Y)
	}

	t2 := NewTrack(&img, NewRect(110, 120, 50, 50))

	if err := ts.Append(t2); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	// center moved from (125,125) to (135,145)
	if v := t2.GetVelocity(); v.X != 10 || v.Y != 20 {
		t.Errorf("expected velocity (10,20), got (%v,%v)", v.X, v.Y)
	}

	if r := t2.GetSizeRatio(); r != 1 {
		t.Errorf("expected size ratio 1, got %v", r)
	}

	// prediction comes from the seeded state with zero velocity
	if p := t2.GetPredictionPoint(); p.X != 125 || p.Y != 125 {
		t.Errorf("expected prediction (125,125), got (%v,%v)", p.X, p.Y)
	}

	// correction pulls the prediction toward the new measurement
	p := t2.GetCorrectedPoint()

	if p.X <= 125 || p.X >= 135 {
		t.Errorf("expected corrected X between 125 and 135, got %v", p.X)
	}

	if p.Y <= 125 || p.Y >= 145 {
		t.Errorf("expected corrected Y between 125 and 145, got %v", p.Y)
	}
}

func TestTrackSetSizeRatio(t *testing.T) {
	img := gocv.NewMatWithSize(600, 800, gocv.MatTypeCV8UC3)
	defer img.Close()

	ts := NewTrackSet(10)

	if err := ts.Append(NewTrack(&img, NewRect(0, 0, 10, 10))); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	t2 := NewTrack(&img, NewRect(0, 0, 20, 10))

	if err := ts.Append(t2); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	if r := t2.GetSizeRatio(); r != 2 {
		t.Errorf("expected size ratio 2, got %v", r)
	}
}

func TestTrackSetHistoryBound(t *testing.T) {
	img := gocv.NewMatWithSize(600, 800, gocv.MatTypeCV8UC3)
	defer img.Close()

	ts := NewTrackSet(2)

	for i := 0; i < 3; i++ {
		tr := NewTrack(&img, NewRect(float32(i*10), 0, 10, 10))

		if err := ts.Append(tr); err != nil {
			t.Fatalf("failed to append: %v", err)
		}
	}

	if ts.Len() != 2 {
		t.Errorf("expected history length 2, got %d", ts.Len())
	}

	centers := ts.Centers()

	// oldest result dropped, centers of the last two remain
	if len(centers) != 2 || centers[0].X != 15 || centers[1].X != 25 {
		t.Errorf("expected centers at X 15 and 25, got %v", centers)
	}

	last := ts.Last()

	if last == nil || last.GetCenter().X != 25 {
		t.Error("expected last result center at X 25")
	}
}

func TestTrackSetMixedVariants(t *testing.T) {
	img := gocv.NewMatWithSize(600, 800, gocv.MatTypeCV8UC3)
	defer img.Close()

	ts := NewTrackSet(10)

	if err := ts.Append(NewCAMShiftTrack(&img, NewRect(0, 0, 10, 10),
		gocv.RotatedRect{})); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	mf := NewMFTrack(&img, NewRect(5, 5, 10, 10), 1.5)

	if err := ts.Append(mf); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	if v := mf.GetVelocity(); v.X != 5 || v.Y != 5 {
		t.Errorf("expected velocity (5,5), got (%v,%v)", v.X, v.Y)
	}

	tracks := ts.Tracks()

	if len(tracks) != 2 {
		t.Fatalf("expected 2 results, got %d", len(tracks))
	}

	if tracks[0].Kind() != KindCAMShift || tracks[1].Kind() != KindMedianFlow {
		t.Error("expected kinds to be preserved in history order")
	}
}

func TestTrackSetOverlap(t *testing.T) {
	img := gocv.NewMatWithSize(600, 800, gocv.MatTypeCV8UC3)
	defer img.Close()

	ts := NewTrackSet(10)

	if err := ts.Append(NewTrack(&img, NewRect(100, 100, 50, 50))); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	// a single result has nothing to overlap with
	if iou := ts.Overlap(); iou != 0 {
		t.Errorf("expected overlap 0 for a single result, got %v", iou)
	}

	if err := ts.Append(NewTrack(&img, NewRect(110, 110, 50, 50))); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	// boxes shifted by (10,10) still mostly overlap
	if iou := ts.Overlap(); iou < 0.3 {
		t.Errorf("expected substantial overlap for a small shift, got %v", iou)
	}

	// a box jump to the far side of the frame drops the overlap to zero
	if err := ts.Append(NewTrack(&img, NewRect(600, 400, 50, 50))); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	if iou := ts.Overlap(); iou != 0 {
		t.Errorf("expected zero overlap after a box jump, got %v", iou)
	}
}

func TestTrackSetReset(t *testing.T) {
	img := gocv.NewMatWithSize(600, 800, gocv.MatTypeCV8UC3)
	defer img.Close()

	ts := NewTrackSet(10)

	if err := ts.Append(NewTrack(&img, NewRect(0, 0, 10, 10))); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	ts.Reset()

	if ts.Len() != 0 {
		t.Errorf("expected empty history after reset, got %d", ts.Len())
	}

	if ts.Last() != nil {
		t.Error("expected no last result after reset")
	}

	// filter reseeds on the next append
	tr := NewTrack(&img, NewRect(40, 40, 20, 20))

	if err := ts.Append(tr); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	if p := tr.GetPredictionPoint(); p.X != 50 || p.Y != 50 {
		t.Errorf("expected prediction (50,50), got (%v,%v)", p.X, p.Y)
	}
}
