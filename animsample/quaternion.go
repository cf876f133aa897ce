// Package animsample is a downstream consumer of a parsed scene graph: it
// evaluates AnimatedTrack values at an arbitrary frame, the kind of work a
// renderer or exporter does after mdlgraph.Parse has already built the
// scene. It is not part of the core parser.
package animsample

import "github.com/ashenforge/mdlgraph/math32"

// Quaternion is a float32 rotation, matching the arity-4 Rotation channel
// format stores on nodes.
type Quaternion struct {
	X, Y, Z, W float32
}

// QuaternionFromVector builds a Quaternion from an AnimatedTrack keyframe's
// 4-element Vector, in the (X, Y, Z, W) order the format uses.
func QuaternionFromVector(v []float32) Quaternion {
	if len(v) < 4 {
		return Quaternion{W: 1}
	}
	return Quaternion{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

func (q Quaternion) dot(o Quaternion) float32 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Slerp spherically interpolates between q and o by percent in [0, 1],
// taking the shorter path around the hypersphere.
func (q Quaternion) Slerp(o Quaternion, percent float32) Quaternion {
	if percent <= 0 {
		return q
	}
	if percent >= 1 {
		return o
	}
	if q == o {
		return q
	}

	angle := q.dot(o)
	if angle < 0 {
		o = Quaternion{-o.X, -o.Y, -o.Z, -o.W}
		angle = -angle
	}
	if angle >= 1 {
		return q
	}

	sinHalfTheta := math32.Sqrt(1 - angle*angle)
	halfTheta := math32.Atan2(sinHalfTheta, angle)

	ratioA := math32.Sin((1-percent)*halfTheta) / sinHalfTheta
	ratioB := math32.Sin(percent*halfTheta) / sinHalfTheta

	return Quaternion{
		X: q.X*ratioA + o.X*ratioB,
		Y: q.Y*ratioA + o.Y*ratioB,
		Z: q.Z*ratioA + o.Z*ratioB,
		W: q.W*ratioA + o.W*ratioB,
	}
}
