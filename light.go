package mdlgraph

// readLight reads a top-level Light block.
func (s *scanner) readLight(sc *Scene) error {
	name, err := s.readNodeName()
	if err != nil {
		return err
	}
	n := newNode(NodeTypeLight)
	n.Name = name
	lt := &LightData{}
	n.Light = lt

	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return newSyntaxError(s.pos, "expected keyword inside Light")
		}
		if err := s.readLightKey(n, lt, kw); err != nil {
			return err
		}
		s.maybeSymbol(',')
	}
	if err := s.expectSymbol('}'); err != nil {
		return err
	}

	sc.Lights = append(sc.Lights, n)
	sc.Nodes = append(sc.Nodes, n)
	return nil
}

func (s *scanner) readLightKey(n *Node, lt *LightData, kw string) error {
	switch kw {
	case "Omnidirectional":
		lt.LightType = LightOmnidirectional
		return nil
	case "Directional":
		lt.LightType = LightDirectional
		return nil
	case "Ambient":
		lt.LightType = LightAmbient
		return nil
	case "static":
		inner, ok := s.keyword()
		if !ok {
			return newSyntaxError(s.pos, "expected keyword after static")
		}
		return s.readStaticLightScalar(lt, inner)
	case "Color":
		track, err := s.readFloatTrack(3)
		if err != nil {
			return err
		}
		lt.Color = animatedVec(normalizeColorTrack(track))
		return nil
	case "AmbColor":
		track, err := s.readFloatTrack(3)
		if err != nil {
			return err
		}
		lt.AmbColor = animatedVec(normalizeColorTrack(track))
		return nil
	case "Intensity":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		lt.Intensity = animatedScalar(track)
		return nil
	case "AmbIntensity":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		lt.AmbIntensity = animatedScalar(track)
		return nil
	case "AttenuationStart":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		lt.AttenuationStart = animatedScalar(track)
		return nil
	case "AttenuationEnd":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		lt.AttenuationEnd = animatedScalar(track)
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

func (s *scanner) readStaticLightScalar(lt *LightData, kw string) error {
	switch kw {
	case "Color":
		var arr []float64
		if _, err := s.array(&arr); err != nil {
			return err
		}
		lt.Color = staticVec(normalizeColorVec(toFloat32Slice(arr)))
	case "AmbColor":
		var arr []float64
		if _, err := s.array(&arr); err != nil {
			return err
		}
		lt.AmbColor = staticVec(normalizeColorVec(toFloat32Slice(arr)))
	case "Intensity":
		v, err := s.number()
		if err != nil {
			return err
		}
		lt.Intensity = staticScalar(float32(v))
	case "AmbIntensity":
		v, err := s.number()
		if err != nil {
			return err
		}
		lt.AmbIntensity = staticScalar(float32(v))
	case "AttenuationStart":
		v, err := s.number()
		if err != nil {
			return err
		}
		lt.AttenuationStart = staticScalar(float32(v))
	case "AttenuationEnd":
		v, err := s.number()
		if err != nil {
			return err
		}
		lt.AttenuationEnd = staticScalar(float32(v))
	default:
		return newSyntaxError(s.pos, "unexpected static channel %q in Light", kw)
	}
	return nil
}
