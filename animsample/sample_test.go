package animsample

import (
	"math"
	"testing"

	"github.com/ashenforge/mdlgraph"
)

func floatTrack(interp mdlgraph.InterpolationMode, keys ...mdlgraph.Keyframe[float32]) *mdlgraph.AnimatedTrack[float32] {
	return &mdlgraph.AnimatedTrack[float32]{Interp: interp, Keys: keys}
}

func TestSampleFloatTrackEmpty(t *testing.T) {
	if _, ok := SampleFloatTrack(nil, 5); ok {
		t.Errorf("expected ok=false for nil track")
	}
	if _, ok := SampleFloatTrack(floatTrack(mdlgraph.InterpLinear), 5); ok {
		t.Errorf("expected ok=false for empty track")
	}
}

func TestSampleFloatTrackClampsBeforeFirstAndAfterLast(t *testing.T) {
	track := floatTrack(mdlgraph.InterpLinear,
		mdlgraph.Keyframe[float32]{Frame: 10, Vector: []float32{1}},
		mdlgraph.Keyframe[float32]{Frame: 20, Vector: []float32{2}},
	)
	if v, ok := SampleFloatTrack(track, 0); !ok || v != 1 {
		t.Errorf("before first keyframe: got %v, %v, want 1, true", v, ok)
	}
	if v, ok := SampleFloatTrack(track, 30); !ok || v != 2 {
		t.Errorf("after last keyframe: got %v, %v, want 2, true", v, ok)
	}
}

func TestSampleFloatTrackLinearInterpolatesMidpoint(t *testing.T) {
	track := floatTrack(mdlgraph.InterpLinear,
		mdlgraph.Keyframe[float32]{Frame: 0, Vector: []float32{0}},
		mdlgraph.Keyframe[float32]{Frame: 10, Vector: []float32{10}},
	)
	v, ok := SampleFloatTrack(track, 5)
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if v < 4.9 || v > 5.1 {
		t.Errorf("midpoint = %v, want ~5", v)
	}
}

func TestSampleFloatTrackDontInterpHoldsFirstOfPair(t *testing.T) {
	track := floatTrack(mdlgraph.InterpDontInterp,
		mdlgraph.Keyframe[float32]{Frame: 0, Vector: []float32{1}},
		mdlgraph.Keyframe[float32]{Frame: 10, Vector: []float32{2}},
	)
	v, ok := SampleFloatTrack(track, 5)
	if !ok || v != 1 {
		t.Errorf("DontInterp at frame 5 = %v, %v, want 1, true", v, ok)
	}
}

func TestSampleRotationTrackEmpty(t *testing.T) {
	if _, ok := SampleRotationTrack(nil, 5); ok {
		t.Errorf("expected ok=false for nil track")
	}
}

func TestSampleRotationTrackClampsAndSlerpsMidpoint(t *testing.T) {
	identity := mdlgraph.Keyframe[float32]{Frame: 0, Vector: []float32{0, 0, 0, 1}}
	halfTurnZ := mdlgraph.Keyframe[float32]{Frame: 10, Vector: []float32{0, 0, 1, 0}}
	track := floatTrack(mdlgraph.InterpLinear, identity, halfTurnZ)

	q0, ok := SampleRotationTrack(track, 0)
	if !ok || q0.W != 1 {
		t.Errorf("frame 0 = %+v, %v, want identity quaternion", q0, ok)
	}
	q1, ok := SampleRotationTrack(track, 10)
	if !ok || q1.Z != 1 {
		t.Errorf("frame 10 = %+v, %v, want {0,0,1,0}", q1, ok)
	}
	mid, ok := SampleRotationTrack(track, 5)
	if !ok {
		t.Fatalf("expected ok=true at midpoint")
	}
	norm := mid.X*mid.X + mid.Y*mid.Y + mid.Z*mid.Z + mid.W*mid.W
	if norm < 0.98 || norm > 1.02 {
		t.Errorf("midpoint quaternion not unit length: %+v (norm=%v)", mid, norm)
	}
}

func TestQuaternionSlerpBoundaries(t *testing.T) {
	a := Quaternion{W: 1}
	b := Quaternion{Z: 1}

	if got := a.Slerp(b, 0); got != a {
		t.Errorf("Slerp(0) = %+v, want %+v", got, a)
	}
	if got := a.Slerp(b, 1); got != b {
		t.Errorf("Slerp(1) = %+v, want %+v", got, b)
	}
}

func TestQuaternionSlerpIdenticalInputsReturnsSameQuaternion(t *testing.T) {
	a := Quaternion{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9}
	got := a.Slerp(a, 0.5)
	if math.Abs(float64(got.X-a.X)) > 1e-5 || math.Abs(float64(got.W-a.W)) > 1e-5 {
		t.Errorf("Slerp of identical quaternions = %+v, want %+v", got, a)
	}
}

func TestQuaternionFromVectorShortVectorDefaultsToIdentity(t *testing.T) {
	q := QuaternionFromVector([]float32{1, 2})
	want := Quaternion{W: 1}
	if q != want {
		t.Errorf("QuaternionFromVector(short) = %+v, want %+v", q, want)
	}
}
