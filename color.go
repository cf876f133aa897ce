package mdlgraph

// Color channel order normalization.
//
// The binary twin format stores color triples as BGR; the text format
// mirrors that order on the wire. We reverse the channels once, at parse
// time, so every Color-bearing field in the returned Scene is RGB and
// downstream code never has to think about the source order again.

// reverseTriple swaps channels 0 and 2 of a 3-element slice in place.
func reverseTriple(v []float32) {
	if len(v) >= 3 {
		v[0], v[2] = v[2], v[0]
	}
}

// normalizeColorVec reverses a static color triple (BGR -> RGB) in place.
func normalizeColorVec(v []float32) []float32 {
	reverseTriple(v)
	return v
}

// normalizeColorTrack reverses every Keyframe's Vector (and, if present, its
// tangents) of a color-carrying animated track from BGR to RGB order.
func normalizeColorTrack(t *AnimatedTrack[float32]) *AnimatedTrack[float32] {
	if t == nil {
		return t
	}
	for i := range t.Keys {
		reverseTriple(t.Keys[i].Vector)
		if t.Keys[i].InTan != nil {
			reverseTriple(t.Keys[i].InTan)
		}
		if t.Keys[i].OutTan != nil {
			reverseTriple(t.Keys[i].OutTan)
		}
	}
	return t
}

// normalizeColor applies BGR->RGB normalization to whichever half of a
// color VecProperty is populated.
func normalizeColor(v VecProperty) VecProperty {
	if v.Track != nil {
		normalizeColorTrack(v.Track)
		return v
	}
	normalizeColorVec(v.Value)
	return v
}
