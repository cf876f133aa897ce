package mdlgraph

// rawKeyframe holds one animated-track entry before its vector is narrowed
// to the channel's concrete element kind (int32 or float32).
type rawKeyframe struct {
	Frame  int32
	Vector []float64
	InTan  []float64
	OutTan []float64
}

// readAnimatedTrackRaw parses the recurring animated-track sub-block: a
// brace-delimited body whose first entry is a key count (a hint only, never
// trusted), followed by an interpolation-mode keyword, an optional
// GlobalSeqId binding, and an ordered list of frame keys carrying a vector of
// the given arity plus (for Hermite/Bezier tracks) matching tangents.
func (s *scanner) readAnimatedTrackRaw(arity int) (InterpolationMode, *int32, []rawKeyframe, error) {
	if err := s.expectSymbol('{'); err != nil {
		return 0, nil, nil, err
	}
	if _, err := s.number(); err != nil { // key count, a hint only, never trusted
		return 0, nil, nil, err
	}
	s.maybeSymbol(',')

	interp := InterpDontInterp
	if kw, ok := s.keyword(); ok {
		switch kw {
		case "DontInterp":
			interp = InterpDontInterp
		case "Linear":
			interp = InterpLinear
		case "Hermite":
			interp = InterpHermite
		case "Bezier":
			interp = InterpBezier
		}
	} else {
		return 0, nil, nil, newSyntaxError(s.pos, "expected interpolation mode keyword")
	}
	s.maybeSymbol(',')

	var globalSeq *int32
	var keys []rawKeyframe

	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if ok && kw == "GlobalSeqId" {
			v, err := s.number()
			if err != nil {
				return 0, nil, nil, err
			}
			id := wrapInt32(v)
			globalSeq = &id
			s.maybeSymbol(',')
			continue
		}
		if !ok {
			frameVal, err := s.number()
			if err != nil {
				return 0, nil, nil, err
			}
			kf, err := s.readKeyframeBody(wrapInt32(frameVal), arity, interp.hasTangents())
			if err != nil {
				return 0, nil, nil, err
			}
			keys = append(keys, kf)
			s.maybeSymbol(',')
			continue
		}
		return 0, nil, nil, newSyntaxError(s.pos, "unexpected keyword %q in animated track", kw)
	}
	if err := s.expectSymbol('}'); err != nil {
		return 0, nil, nil, err
	}
	return interp, globalSeq, keys, nil
}

// readKeyframeBody reads `: vector-or-scalar [, InTan vec, OutTan vec]` after
// the frame number has already been consumed.
func (s *scanner) readKeyframeBody(frame int32, arity int, withTangents bool) (rawKeyframe, error) {
	if err := s.expectSymbol(':'); err != nil {
		return rawKeyframe{}, err
	}
	vec, err := s.readVectorOfArity(arity)
	if err != nil {
		return rawKeyframe{}, err
	}
	kf := rawKeyframe{Frame: frame, Vector: vec}

	if withTangents {
		s.maybeSymbol(',')
		if kw, ok := s.keyword(); !ok || kw != "InTan" {
			return rawKeyframe{}, newSyntaxError(s.pos, "expected InTan for Hermite/Bezier keyframe")
		}
		inTan, err := s.readVectorOfArity(arity)
		if err != nil {
			return rawKeyframe{}, err
		}
		kf.InTan = inTan

		s.maybeSymbol(',')
		if kw, ok := s.keyword(); !ok || kw != "OutTan" {
			return rawKeyframe{}, newSyntaxError(s.pos, "expected OutTan for Hermite/Bezier keyframe")
		}
		outTan, err := s.readVectorOfArity(arity)
		if err != nil {
			return rawKeyframe{}, err
		}
		kf.OutTan = outTan
	}

	return kf, nil
}

// readVectorOfArity reads a bare scalar when arity is 1, otherwise a
// brace-delimited array of exactly the given arity.
func (s *scanner) readVectorOfArity(arity int) ([]float64, error) {
	if arity == 1 {
		v, err := s.number()
		if err != nil {
			return nil, err
		}
		return []float64{v}, nil
	}
	var arr []float64
	ok, err := s.array(&arr)
	if err != nil {
		return nil, err
	}
	if !ok || len(arr) != arity {
		return nil, newSyntaxError(s.pos, "expected %d-element vector", arity)
	}
	return arr, nil
}

func wrapInt32(v float64) int32 {
	return int32(uint32(int64(v)))
}

// readFloatTrack reads an animated track whose channel carries float32
// vectors of the given arity (1, 3, or 4).
func (s *scanner) readFloatTrack(arity int) (*AnimatedTrack[float32], error) {
	interp, gseq, raws, err := s.readAnimatedTrackRaw(arity)
	if err != nil {
		return nil, err
	}
	track := &AnimatedTrack[float32]{Interp: interp, GlobalSeqID: gseq}
	for _, r := range raws {
		track.Keys = append(track.Keys, Keyframe[float32]{
			Frame:  r.Frame,
			Vector: toFloat32Slice(r.Vector),
			InTan:  toFloat32SliceOrNil(r.InTan),
			OutTan: toFloat32SliceOrNil(r.OutTan),
		})
	}
	return track, nil
}

// readIntTrack reads an animated track whose channel carries arity-1 int32
// values (e.g. Layer.TextureID), wrapping on overflow per two's complement.
func (s *scanner) readIntTrack() (*AnimatedTrack[int32], error) {
	interp, gseq, raws, err := s.readAnimatedTrackRaw(1)
	if err != nil {
		return nil, err
	}
	track := &AnimatedTrack[int32]{Interp: interp, GlobalSeqID: gseq}
	for _, r := range raws {
		track.Keys = append(track.Keys, Keyframe[int32]{
			Frame:  r.Frame,
			Vector: toInt32Slice(r.Vector),
		})
	}
	return track, nil
}

func toFloat32SliceOrNil(v []float64) []float32 {
	if v == nil {
		return nil
	}
	return toFloat32Slice(v)
}

func toInt32Slice(v []float64) []int32 {
	out := make([]int32, len(v))
	for i, f := range v {
		out[i] = wrapInt32(f)
	}
	return out
}
