package filter

import (
	"testing"

	"github.com/kozaktomas/face-filters/internal/landmark"
)

func TestBlushTintsBothCheeks(t *testing.T) {
	const w, h = 200, 200

	frame := solidFrame(w, h, 200, 200, 200)
	before := CloneFrame(frame)

	set := meshSet()
	place(t, set, landmark.IndexLeftCheek, 60, 120, w, h)
	place(t, set, landmark.IndexRightCheek, 140, 120, w, h)

	overlay := &blushOverlay{params: DefaultParams()}
	if err := overlay.Apply(frame, set); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// Cheek centers must be tinted toward the blush color.
	for _, cx := range []int{60, 140} {
		r, g, b := pixelAt(frame, cx, 120)
		wantR := blendChannel(blushR, 200, 0.35)
		wantG := blendChannel(blushG, 200, 0.35)
		wantB := blendChannel(blushB, 200, 0.35)
		if r != wantR || g != wantG || b != wantB {
			t.Errorf("cheek (%d,120) = (%d,%d,%d); want (%d,%d,%d)", cx, r, g, b, wantR, wantG, wantB)
		}
	}

	// The area between the cheeks stays untouched.
	if r, g, b := pixelAt(frame, 100, 120); r != 200 || g != 200 || b != 200 {
		t.Errorf("midface pixel tinted: (%d,%d,%d)", r, g, b)
	}

	// No rotation, regions are local: the top of the frame is untouched.
	box, _ := changedBounds(frame, before)
	if box.Min.Y < 100 {
		t.Errorf("tint reached y=%d; expected local cheek regions only", box.Min.Y)
	}
}

func TestBlushScalesWithCheekDistance(t *testing.T) {
	const w, h = 400, 400

	near := solidFrame(w, h, 200, 200, 200)
	far := solidFrame(w, h, 200, 200, 200)
	beforeNear := CloneFrame(near)
	beforeFar := CloneFrame(far)

	wide := meshSet()
	place(t, wide, landmark.IndexLeftCheek, 100, 200, w, h)
	place(t, wide, landmark.IndexRightCheek, 300, 200, w, h)

	narrow := meshSet()
	place(t, narrow, landmark.IndexLeftCheek, 180, 200, w, h)
	place(t, narrow, landmark.IndexRightCheek, 220, 200, w, h)

	overlay := &blushOverlay{params: DefaultParams()}
	if err := overlay.Apply(near, wide); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if err := overlay.Apply(far, narrow); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	nearBox, _ := changedBounds(near, beforeNear)
	farBox, _ := changedBounds(far, beforeFar)
	if nearBox.Dy() <= farBox.Dy() {
		t.Errorf("wide face tint height %d not larger than narrow face %d", nearBox.Dy(), farBox.Dy())
	}
}

func TestBlushSkipsShortSet(t *testing.T) {
	frame := solidFrame(100, 100, 200, 200, 200)
	before := CloneFrame(frame)

	overlay := &blushOverlay{params: DefaultParams()}
	if err := overlay.Apply(frame, meshSet()[:40]); err == nil {
		t.Fatal("expected skip error for short landmark set")
	}
	if !samePixels(frame, before) {
		t.Error("short set must leave the frame bit-identical")
	}
}
