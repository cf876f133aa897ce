package mdlgraph

// readRibbonEmitter reads a top-level RibbonEmitter block.
func (s *scanner) readRibbonEmitter(sc *Scene) error {
	name, err := s.readNodeName()
	if err != nil {
		return err
	}
	n := newNode(NodeTypeRibbonEmitter)
	n.Name = name
	rb := &RibbonEmitterData{}
	n.RibbonEmitter = rb

	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return newSyntaxError(s.pos, "expected keyword inside RibbonEmitter")
		}
		if err := s.readRibbonEmitterKey(n, rb, kw); err != nil {
			return err
		}
		s.maybeSymbol(',')
	}
	if err := s.expectSymbol('}'); err != nil {
		return err
	}

	sc.RibbonEmitters = append(sc.RibbonEmitters, n)
	sc.Nodes = append(sc.Nodes, n)
	return nil
}

func (s *scanner) readRibbonEmitterKey(n *Node, rb *RibbonEmitterData, kw string) error {
	switch kw {
	case "static":
		inner, ok := s.keyword()
		if !ok {
			return newSyntaxError(s.pos, "expected keyword after static")
		}
		return s.readStaticRibbonScalar(rb, inner)
	case "HeightAbove":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		rb.HeightAbove = animatedScalar(track)
		return nil
	case "HeightBelow":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		rb.HeightBelow = animatedScalar(track)
		return nil
	case "Alpha":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		rb.Alpha = animatedScalar(track)
		return nil
	case "Color":
		track, err := s.readFloatTrack(3)
		if err != nil {
			return err
		}
		rb.Color = animatedVec(normalizeColorTrack(track))
		return nil
	case "TextureSlot":
		track, err := s.readIntTrack()
		if err != nil {
			return err
		}
		rb.TextureSlot = animatedScalar(track)
		return nil
	case "LifeSpan":
		v, err := s.number()
		if err != nil {
			return err
		}
		rb.LifeSpan = float32(v)
		return nil
	case "EmissionRate":
		v, err := s.number()
		if err != nil {
			return err
		}
		rb.EmissionRate = float32(v)
		return nil
	case "Rows":
		v, err := s.number()
		if err != nil {
			return err
		}
		rb.Rows = wrapInt32(v)
		return nil
	case "Columns":
		v, err := s.number()
		if err != nil {
			return err
		}
		rb.Columns = wrapInt32(v)
		return nil
	case "MaterialID":
		v, err := s.number()
		if err != nil {
			return err
		}
		rb.MaterialID = wrapInt32(v)
		return nil
	case "Gravity":
		v, err := s.number()
		if err != nil {
			return err
		}
		rb.Gravity = float32(v)
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

func (s *scanner) readStaticRibbonScalar(rb *RibbonEmitterData, kw string) error {
	switch kw {
	case "HeightAbove":
		v, err := s.number()
		if err != nil {
			return err
		}
		rb.HeightAbove = staticScalar(float32(v))
	case "HeightBelow":
		v, err := s.number()
		if err != nil {
			return err
		}
		rb.HeightBelow = staticScalar(float32(v))
	case "Alpha":
		v, err := s.number()
		if err != nil {
			return err
		}
		rb.Alpha = staticScalar(float32(v))
	case "Color":
		var arr []float64
		if _, err := s.array(&arr); err != nil {
			return err
		}
		rb.Color = staticVec(normalizeColorVec(toFloat32Slice(arr)))
	default:
		return newSyntaxError(s.pos, "unexpected static channel %q in RibbonEmitter", kw)
	}
	return nil
}
