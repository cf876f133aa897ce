package mdlgraph

// ModelInfo is the Model block's header, keyed by the model's own name.
type ModelInfo struct {
	Name          string
	MinimumExtent []float32
	MaximumExtent []float32
	BoundsRadius  float32
	BlendTime     int32
}

// Sequence is one entry of the Sequences block: a named animation range with
// its own extent and optional playback hints.
type Sequence struct {
	Name          string
	Interval      [2]uint32
	MinimumExtent []float32
	MaximumExtent []float32
	BoundsRadius  float32
	Rarity        *float32
	MoveSpeed     *float32
	NonLooping    bool
}

// readVersion reads the Version block, copying FormatVersion into sc.Version
// when present.
func (s *scanner) readVersion(sc *Scene) error {
	if _, err := s.readGenericPrefix(); err != nil {
		return err
	}
	body, err := s.readGenericBody()
	if err != nil {
		return err
	}
	if v, ok := body.Float("FormatVersion"); ok {
		sc.Version = int32(v)
	}
	return nil
}

// readModel reads the Model block: the prefix is the model's name, and every
// other key becomes a field of Info.
func (s *scanner) readModel(sc *Scene) error {
	prefix, err := s.readGenericPrefix()
	if err != nil {
		return err
	}
	body, err := s.readGenericBody()
	if err != nil {
		return err
	}
	info := ModelInfo{Name: prefix.Name, BlendTime: 150}
	if v, ok := body.Float("BlendTime"); ok {
		info.BlendTime = int32(v)
	}
	if v, ok := body.Array("MinimumExtent"); ok {
		info.MinimumExtent = toFloat32Slice(v)
	}
	if v, ok := body.Array("MaximumExtent"); ok {
		info.MaximumExtent = toFloat32Slice(v)
	}
	if v, ok := body.Float("BoundsRadius"); ok {
		info.BoundsRadius = float32(v)
	}
	sc.Info = info
	return nil
}

// readSequences reads the Sequences block, repeating `Anim "name" { ... }`.
func (s *scanner) readSequences(sc *Scene) error {
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok || kw != "Anim" {
			return newSyntaxError(s.pos, "expected Anim inside Sequences")
		}
		prefix, err := s.readGenericPrefix()
		if err != nil {
			return err
		}
		body, err := s.readGenericBody()
		if err != nil {
			return err
		}
		seq := Sequence{Name: prefix.Name, NonLooping: body.Has("NonLooping")}
		if v, ok := body.Array("Interval"); ok {
			seq.Interval = toUint32Pair(v)
		}
		if v, ok := body.Array("MinimumExtent"); ok {
			seq.MinimumExtent = toFloat32Slice(v)
		}
		if v, ok := body.Array("MaximumExtent"); ok {
			seq.MaximumExtent = toFloat32Slice(v)
		}
		if v, ok := body.Float("BoundsRadius"); ok {
			seq.BoundsRadius = float32(v)
		}
		if v, ok := body.Float("Rarity"); ok {
			f := float32(v)
			seq.Rarity = &f
		}
		if v, ok := body.Float("MoveSpeed"); ok {
			f := float32(v)
			seq.MoveSpeed = &f
		}
		sc.Sequences = append(sc.Sequences, seq)
		s.maybeSymbol(',')
	}
	return s.expectSymbol('}')
}
