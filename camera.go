package mdlgraph

// CameraTarget is a Camera's optional look-at point, fixed or animated.
type CameraTarget struct {
	Position    []float32 // arity 3
	Translation VecProperty // arity 3
}

// Camera is a top-level Camera block.
type Camera struct {
	Name        string
	Position    []float32
	FieldOfView float32
	NearClip    float32
	FarClip     float32
	Target      *CameraTarget

	Translation VecProperty    // arity 3
	Rotation    Scalar[float32] // arity 1: roll only, intentionally not a quaternion
}

// readCamera reads a top-level Camera block.
func (s *scanner) readCamera(sc *Scene) error {
	name, err := s.readNodeName()
	if err != nil {
		return err
	}
	cam := Camera{Name: name}

	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return newSyntaxError(s.pos, "expected keyword inside Camera")
		}
		switch kw {
		case "Position":
			var arr []float64
			if _, err := s.array(&arr); err != nil {
				return err
			}
			cam.Position = toFloat32Slice(arr)
		case "FieldOfView":
			v, err := s.number()
			if err != nil {
				return err
			}
			cam.FieldOfView = float32(v)
		case "NearClip":
			v, err := s.number()
			if err != nil {
				return err
			}
			cam.NearClip = float32(v)
		case "FarClip":
			v, err := s.number()
			if err != nil {
				return err
			}
			cam.FarClip = float32(v)
		case "Target":
			target, err := s.readCameraTarget()
			if err != nil {
				return err
			}
			cam.Target = target
		case "Translation":
			track, err := s.readFloatTrack(3)
			if err != nil {
				return err
			}
			cam.Translation = animatedVec(track)
		case "Rotation":
			track, err := s.readFloatTrack(1)
			if err != nil {
				return err
			}
			cam.Rotation = animatedScalar(track)
		default:
			return newSyntaxError(s.pos, "unexpected keyword %q inside Camera", kw)
		}
		s.maybeSymbol(',')
	}
	if err := s.expectSymbol('}'); err != nil {
		return err
	}

	sc.Cameras = append(sc.Cameras, cam)
	return nil
}

func (s *scanner) readCameraTarget() (*CameraTarget, error) {
	if err := s.expectSymbol('{'); err != nil {
		return nil, err
	}
	target := &CameraTarget{}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return nil, newSyntaxError(s.pos, "expected keyword inside Target")
		}
		switch kw {
		case "Position":
			var arr []float64
			if _, err := s.array(&arr); err != nil {
				return nil, err
			}
			target.Position = toFloat32Slice(arr)
		case "Translation":
			track, err := s.readFloatTrack(3)
			if err != nil {
				return nil, err
			}
			target.Translation = animatedVec(track)
		default:
			return nil, newSyntaxError(s.pos, "unexpected keyword %q inside Target", kw)
		}
		s.maybeSymbol(',')
	}
	return target, s.expectSymbol('}')
}
