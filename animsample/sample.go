package animsample

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/ashenforge/mdlgraph"
)

// easeFor maps a track's interpolation mode to the gween easing function used
// to blend between its two bracketing keyframes. Hermite/Bezier tangents
// aren't reproduced exactly (gween has no cubic-Hermite primitive); InOutCubic
// is the closest built-in approximation and is good enough for previewing.
func easeFor(mode mdlgraph.InterpolationMode) ease.TweenFunc {
	switch mode {
	case mdlgraph.InterpLinear:
		return ease.Linear
	case mdlgraph.InterpHermite, mdlgraph.InterpBezier:
		return ease.InOutCubic
	default:
		return ease.Linear
	}
}

// SampleFloatTrack evaluates a float32 AnimatedTrack of arity 1 at the given
// frame, holding the value of the last keyframe at or before DontInterp
// tracks and easing between the bracketing pair otherwise. It returns false
// if the track has no keyframes.
func SampleFloatTrack(track *mdlgraph.AnimatedTrack[float32], frame float32) (float32, bool) {
	if track == nil || len(track.Keys) == 0 {
		return 0, false
	}
	keys := track.Keys
	if frame <= float32(keys[0].Frame) {
		return keys[0].Vector[0], true
	}
	last := keys[len(keys)-1]
	if frame >= float32(last.Frame) {
		return last.Vector[0], true
	}

	for i := 0; i < len(keys)-1; i++ {
		a, b := keys[i], keys[i+1]
		if frame < float32(a.Frame) || frame >= float32(b.Frame) {
			continue
		}
		if track.Interp == mdlgraph.InterpDontInterp {
			return a.Vector[0], true
		}
		span := float32(b.Frame - a.Frame)
		t := gween.New(a.Vector[0], b.Vector[0], span, easeFor(track.Interp))
		v, _ := t.Update(frame - float32(a.Frame))
		return v, true
	}
	return last.Vector[0], true
}

// SampleRotationTrack evaluates a quaternion (arity-4) AnimatedTrack at frame
// via spherical interpolation between the bracketing keyframes.
func SampleRotationTrack(track *mdlgraph.AnimatedTrack[float32], frame float32) (Quaternion, bool) {
	if track == nil || len(track.Keys) == 0 {
		return Quaternion{W: 1}, false
	}
	keys := track.Keys
	if frame <= float32(keys[0].Frame) {
		return QuaternionFromVector(keys[0].Vector), true
	}
	last := keys[len(keys)-1]
	if frame >= float32(last.Frame) {
		return QuaternionFromVector(last.Vector), true
	}

	for i := 0; i < len(keys)-1; i++ {
		a, b := keys[i], keys[i+1]
		if frame < float32(a.Frame) || frame > float32(b.Frame) {
			continue
		}
		span := float32(b.Frame - a.Frame)
		percent := (frame - float32(a.Frame)) / span
		qa := QuaternionFromVector(a.Vector)
		qb := QuaternionFromVector(b.Vector)
		return qa.Slerp(qb, percent), true
	}
	return QuaternionFromVector(last.Vector), true
}
