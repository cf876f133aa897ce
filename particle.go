package mdlgraph

// ParticleEmitter is the legacy (non-ParticleEmitter2) particle emitter
// block. Unlike the node specializations it is not added to the flat Nodes
// list; it carries its own Parent/ObjectId pair directly.
type ParticleEmitter struct {
	Name     string
	ObjectID int32
	Parent   int32
	Flags    ParticleEmitterFlags

	EmissionRate Scalar[float32]
	Gravity      Scalar[float32]
	Longitude    Scalar[float32]
	Latitude     Scalar[float32]
	Visibility   Scalar[float32]
	Translation  VecProperty
	Scaling      VecProperty
	Rotation     VecProperty

	// LifeSpan and InitVelocity may be set both by a top-level scalar and
	// by the nested Particle block; whichever is encountered later in the
	// source wins, matching the format's own last-write-wins behavior.
	LifeSpan     Scalar[float32]
	InitVelocity Scalar[float32]
	Path         string

	Extras extras
}

func newParticleEmitter() ParticleEmitter {
	return ParticleEmitter{Parent: -1}
}

// readParticleEmitter reads a top-level ParticleEmitter block.
func (s *scanner) readParticleEmitter(sc *Scene) error {
	name, err := s.readNodeName()
	if err != nil {
		return err
	}
	pe := newParticleEmitter()
	pe.Name = name

	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return newSyntaxError(s.pos, "expected keyword inside ParticleEmitter")
		}
		if err := s.readParticleEmitterKey(&pe, kw); err != nil {
			return err
		}
		s.maybeSymbol(',')
	}
	if err := s.expectSymbol('}'); err != nil {
		return err
	}

	sc.ParticleEmitters = append(sc.ParticleEmitters, pe)
	return nil
}

func (s *scanner) readParticleEmitterKey(pe *ParticleEmitter, kw string) error {
	switch kw {
	case "ObjectId":
		v, err := s.number()
		if err != nil {
			return err
		}
		pe.ObjectID = wrapInt32(v)
	case "Parent":
		v, err := s.number()
		if err != nil {
			return err
		}
		pe.Parent = wrapInt32(v)
	case "EmitterUsesMDL":
		pe.Flags |= ParticleEmitterFlagUsesMDL
	case "EmitterUsesTGA":
		pe.Flags |= ParticleEmitterFlagUsesTGA
	case "EmissionRate":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		pe.EmissionRate = animatedScalar(track)
	case "Gravity":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		pe.Gravity = animatedScalar(track)
	case "Longitude":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		pe.Longitude = animatedScalar(track)
	case "Latitude":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		pe.Latitude = animatedScalar(track)
	case "Visibility":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return err
		}
		pe.Visibility = animatedScalar(track)
	case "Translation":
		track, err := s.readFloatTrack(3)
		if err != nil {
			return err
		}
		pe.Translation = animatedVec(track)
	case "Scaling":
		track, err := s.readFloatTrack(3)
		if err != nil {
			return err
		}
		pe.Scaling = animatedVec(track)
	case "Rotation":
		track, err := s.readFloatTrack(4)
		if err != nil {
			return err
		}
		pe.Rotation = animatedVec(track)
	case "LifeSpan":
		v, err := s.number()
		if err != nil {
			return err
		}
		pe.LifeSpan = staticScalar(float32(v))
	case "InitVelocity":
		v, err := s.number()
		if err != nil {
			return err
		}
		pe.InitVelocity = staticScalar(float32(v))
	case "Path":
		str, _, err := s.quotedString()
		if err != nil {
			return err
		}
		pe.Path = str
	case "Particle":
		return s.readLegacyParticleBody(pe)
	default:
		v, err := s.number()
		if err != nil {
			return newSyntaxError(s.pos, "unexpected keyword %q inside ParticleEmitter", kw)
		}
		pe.Extras.set(kw, v)
	}
	return nil
}

// readLegacyParticleBody reads the nested `Particle { LifeSpan, InitVelocity,
// Path }` block; its keys overwrite the same fields a top-level occurrence
// of the same keyword would have set (see ParticleEmitter.LifeSpan doc).
func (s *scanner) readLegacyParticleBody(pe *ParticleEmitter) error {
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return newSyntaxError(s.pos, "expected keyword inside Particle")
		}
		switch kw {
		case "LifeSpan":
			v, err := s.number()
			if err != nil {
				return err
			}
			pe.LifeSpan = staticScalar(float32(v))
		case "InitVelocity":
			v, err := s.number()
			if err != nil {
				return err
			}
			pe.InitVelocity = staticScalar(float32(v))
		case "Path":
			str, _, err := s.quotedString()
			if err != nil {
				return err
			}
			pe.Path = str
		default:
			return newSyntaxError(s.pos, "unexpected keyword %q inside Particle", kw)
		}
		s.maybeSymbol(',')
	}
	return s.expectSymbol('}')
}
