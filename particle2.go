package mdlgraph

// readParticleEmitter2 reads a top-level ParticleEmitter2 block.
func (s *scanner) readParticleEmitter2(sc *Scene) error {
	name, err := s.readNodeName()
	if err != nil {
		return err
	}
	n := newNode(NodeTypeParticleEmitter)
	n.Name = name
	pe := &ParticleEmitter2Data{}
	n.ParticleEmitter2 = pe

	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return newSyntaxError(s.pos, "expected keyword inside ParticleEmitter2")
		}
		if err := s.readParticleEmitter2Key(n, pe, kw); err != nil {
			return err
		}
		s.maybeSymbol(',')
	}
	if err := s.expectSymbol('}'); err != nil {
		return err
	}

	sc.ParticleEmitters2 = append(sc.ParticleEmitters2, n)
	sc.Nodes = append(sc.Nodes, n)
	return nil
}

func (s *scanner) readParticleEmitter2Key(n *Node, pe *ParticleEmitter2Data, kw string) error {
	switch kw {
	case "static":
		inner, ok := s.keyword()
		if !ok {
			return newSyntaxError(s.pos, "expected keyword after static")
		}
		return s.readStaticParticleEmitter2Scalar(pe, inner)
	case "Speed":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		pe.Speed = animatedScalar(track)
		return nil
	case "Latitude":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		pe.Latitude = animatedScalar(track)
		return nil
	case "EmissionRate":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		pe.EmissionRate = animatedScalar(track)
		return nil
	case "Width":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		pe.Width = animatedScalar(track)
		return nil
	case "Length":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		pe.Length = animatedScalar(track)
		return nil
	case "Gravity":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		pe.Gravity = animatedScalar(track)
		return nil
	case "Variation":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		pe.Variation = animatedScalar(track)
		return nil
	case "Both":
		pe.FrameFlags |= PE2FrameHead | PE2FrameTail
		return nil
	case "Head":
		pe.FrameFlags |= PE2FrameHead
		return nil
	case "Tail":
		pe.FrameFlags |= PE2FrameTail
		return nil
	case "Transparent":
		pe.Filter = PE2FilterTransparent
		return nil
	case "Blend":
		pe.Filter = PE2FilterBlend
		return nil
	case "Additive":
		pe.Filter = PE2FilterAdditive
		return nil
	case "AlphaKey":
		pe.Filter = PE2FilterAlphaKey
		return nil
	case "Modulate":
		pe.Filter = PE2FilterModulate
		return nil
	case "Modulate2x":
		pe.Filter = PE2FilterModulate2x
		return nil
	case "SortPrimsFarZ":
		pe.Flags |= PE2FlagSortPrimsFarZ
		return nil
	case "Unshaded":
		pe.Flags |= PE2FlagUnshaded
		return nil
	case "LineEmitter":
		pe.Flags |= PE2FlagLineEmitter
		return nil
	case "Unfogged":
		pe.Flags |= PE2FlagUnfogged
		return nil
	case "ModelSpace":
		pe.Flags |= PE2FlagModelSpace
		return nil
	case "XYQuad":
		pe.Flags |= PE2FlagXYQuad
		return nil
	case "SegmentColor":
		colors, err := s.readSegmentColor()
		if err != nil {
			return err
		}
		pe.SegmentColor = colors
		return nil
	case "Alpha":
		var arr []float64
		if _, err := s.array(&arr); err != nil {
			return err
		}
		for i := 0; i < 3 && i < len(arr); i++ {
			pe.Alpha[i] = byte(int64(arr[i]))
		}
		return nil
	case "ParticleScaling":
		var arr []float64
		if _, err := s.array(&arr); err != nil {
			return err
		}
		pe.ParticleScaling = toFloat32Slice(arr)
		return nil
	case "LifeSpanUVAnim":
		return s.readUint32Triple(&pe.LifeSpanUVAnim)
	case "DecayUVAnim":
		return s.readUint32Triple(&pe.DecayUVAnim)
	case "TailUVAnim":
		return s.readUint32Triple(&pe.TailUVAnim)
	case "TailDecayUVAnim":
		return s.readUint32Triple(&pe.TailDecayUVAnim)
	case "Squirt":
		pe.Squirt = true
		return nil
	}

	handled, err := s.tryNodeCommonKey(n, kw)
	if err != nil {
		return err
	}
	if handled {
		return nil
	}
	return s.readNodeTrailingNumber(n, kw)
}

func (s *scanner) readStaticParticleEmitter2Scalar(pe *ParticleEmitter2Data, kw string) error {
	switch kw {
	case "Speed":
		v, err := s.number()
		if err != nil {
			return err
		}
		pe.Speed = staticScalar(float32(v))
	case "Latitude":
		v, err := s.number()
		if err != nil {
			return err
		}
		pe.Latitude = staticScalar(float32(v))
	case "EmissionRate":
		v, err := s.number()
		if err != nil {
			return err
		}
		pe.EmissionRate = staticScalar(float32(v))
	case "Width":
		v, err := s.number()
		if err != nil {
			return err
		}
		pe.Width = staticScalar(float32(v))
	case "Length":
		v, err := s.number()
		if err != nil {
			return err
		}
		pe.Length = staticScalar(float32(v))
	case "Gravity":
		v, err := s.number()
		if err != nil {
			return err
		}
		pe.Gravity = staticScalar(float32(v))
	case "Variation":
		v, err := s.number()
		if err != nil {
			return err
		}
		pe.Variation = staticScalar(float32(v))
	default:
		return newSyntaxError(s.pos, "unexpected static channel %q in ParticleEmitter2", kw)
	}
	return nil
}

func (s *scanner) readSegmentColor() ([][3]float32, error) {
	if err := s.expectSymbol('{'); err != nil {
		return nil, err
	}
	var out [][3]float32
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok || kw != "Color" {
			return nil, newSyntaxError(s.pos, "expected Color inside SegmentColor")
		}
		var arr []float64
		if _, err := s.array(&arr); err != nil {
			return nil, err
		}
		v := toFloat32Slice(arr)
		normalizeColorVec(v)
		var c [3]float32
		copy(c[:], v)
		out = append(out, c)
		s.maybeSymbol(',')
	}
	return out, s.expectSymbol('}')
}

func (s *scanner) readUint32Triple(dst *[3]uint32) error {
	var arr []float64
	if _, err := s.array(&arr); err != nil {
		return err
	}
	for i := 0; i < 3 && i < len(arr); i++ {
		dst[i] = uint32(int64(arr[i]))
	}
	return nil
}
