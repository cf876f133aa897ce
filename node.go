package mdlgraph

// Node is the shared shape of every transformable scene entity: Bone, Helper,
// Attachment, EventObject, CollisionShape, ParticleEmitter2, Light, and
// RibbonEmitter. Rather than modeling each as its own Go type, a Node carries
// the fields common to all of them plus at most one populated specialization
// pointer selected by Flags.Type(). This mirrors the arena-of-nodes shape the
// format itself uses: ObjectId is a node's index into Scene.Nodes, and the
// typed buckets (Scene.Lights, Scene.EventObjects, ...) hold the same pointers
// as that arena rather than separate copies. Bone, Helper and Attachment
// nodes are held only by their typed buckets, not by Scene.Nodes.
type Node struct {
	Name       string
	ObjectID   int32
	Parent     int32 // -1 when the node has no parent
	PivotPoint []float32

	// Flags carries exactly one NodeType tag bit plus zero or more
	// behavioral bits (Billboarded, CameraAnchored, DontInherit*).
	Flags NodeFlags

	Translation VecProperty     // arity 3
	Rotation    VecProperty     // arity 4 (quaternion)
	Scaling     VecProperty     // arity 3
	Visibility  Scalar[float32] // arity 1

	Path string // Attachment only

	Extras extras

	EventObject      *EventObjectData
	CollisionShape   *CollisionShapeData
	ParticleEmitter2 *ParticleEmitter2Data
	Light            *LightData
	RibbonEmitter    *RibbonEmitterData
}

func newNode(nodeType NodeType) *Node {
	return &Node{Parent: -1, Flags: NodeFlags(0).withType(nodeType)}
}

// EventObjectData holds EventObject's own field beyond the shared Node shape.
type EventObjectData struct {
	EventTrack []uint32
}

// CollisionShapeData holds CollisionShape's own fields.
type CollisionShapeData struct {
	Shape    CollisionShapeType
	Vertices [][]float32
	Radius   *float32
}

// ParticleEmitter2Data holds ParticleEmitter2's own fields.
type ParticleEmitter2Data struct {
	Flags      ParticleEmitter2Flags
	FrameFlags ParticleEmitter2FrameFlags
	Filter     ParticleEmitter2FilterMode

	SegmentColor    [][3]float32
	Alpha           [3]byte
	ParticleScaling []float32 // arity 3

	LifeSpanUVAnim  [3]uint32
	DecayUVAnim     [3]uint32
	TailUVAnim      [3]uint32
	TailDecayUVAnim [3]uint32

	Squirt bool

	Speed        Scalar[float32]
	Latitude     Scalar[float32]
	EmissionRate Scalar[float32]
	Width        Scalar[float32]
	Length       Scalar[float32]
	Gravity      Scalar[float32]
	Variation    Scalar[float32]
}

// LightData holds Light's own fields.
type LightData struct {
	LightType LightType

	Color    VecProperty
	AmbColor VecProperty

	Intensity        Scalar[float32]
	AmbIntensity     Scalar[float32]
	AttenuationStart Scalar[float32]
	AttenuationEnd   Scalar[float32]
}

// RibbonEmitterData holds RibbonEmitter's own fields.
type RibbonEmitterData struct {
	HeightAbove  Scalar[float32]
	HeightBelow  Scalar[float32]
	Alpha        Scalar[float32]
	Color        VecProperty
	LifeSpan     float32
	TextureSlot  Scalar[int32]
	EmissionRate float32
	Rows         int32
	Columns      int32
	MaterialID   int32
	Gravity      float32
}

// readNodeName reads the quoted name every node-shaped block is prefixed with.
func (s *scanner) readNodeName() (string, error) {
	name, ok, err := s.quotedString()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", newSyntaxError(s.pos, "expected quoted node name")
	}
	return name, nil
}

// tryNodeCommonKey dispatches the keyword set shared by every node
// specialization (transform channels, inheritance/billboard flags, the
// Attachment-only Path string, and ObjectId/Parent). It reports whether kw
// was one of those shared keys.
func (s *scanner) tryNodeCommonKey(n *Node, kw string) (bool, error) {
	switch kw {
	case "ObjectId":
		v, err := s.number()
		if err != nil {
			return true, err
		}
		n.ObjectID = wrapInt32(v)
		return true, nil
	case "Parent":
		v, err := s.number()
		if err != nil {
			return true, err
		}
		n.Parent = wrapInt32(v)
		return true, nil
	case "Translation":
		track, err := s.readFloatTrack(3)
		if err != nil {
			return true, err
		}
		n.Translation = animatedVec(track)
		return true, nil
	case "Rotation":
		track, err := s.readFloatTrack(4)
		if err != nil {
			return true, err
		}
		n.Rotation = animatedVec(track)
		return true, nil
	case "Scaling":
		track, err := s.readFloatTrack(3)
		if err != nil {
			return true, err
		}
		n.Scaling = animatedVec(track)
		return true, nil
	case "Visibility":
		track, err := s.readFloatTrack(1)
		if err != nil {
			return true, err
		}
		n.Visibility = animatedScalar(track)
		return true, nil
	case "Billboarded":
		n.Flags |= NodeFlagBillboarded
		return true, nil
	case "BillboardedLockX":
		n.Flags |= NodeFlagBillboardedLockX
		return true, nil
	case "BillboardedLockY":
		n.Flags |= NodeFlagBillboardedLockY
		return true, nil
	case "BillboardedLockZ":
		n.Flags |= NodeFlagBillboardedLockZ
		return true, nil
	case "CameraAnchored":
		n.Flags |= NodeFlagCameraAnchored
		return true, nil
	case "DontInherit":
		return true, s.readDontInherit(n)
	case "Path":
		str, _, err := s.quotedString()
		if err != nil {
			return true, err
		}
		n.Path = str
		return true, nil
	}
	return false, nil
}

// readDontInherit reads the `DontInherit { Translation|Rotation|Scaling (,)* }`
// construct, setting the matching bits in n.Flags.
func (s *scanner) readDontInherit(n *Node) error {
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return newSyntaxError(s.pos, "expected inheritance keyword")
		}
		switch kw {
		case "Translation":
			n.Flags |= NodeFlagDontInheritTranslation
		case "Rotation":
			n.Flags |= NodeFlagDontInheritRotation
		case "Scaling":
			n.Flags |= NodeFlagDontInheritScaling
		default:
			return newSyntaxError(s.pos, "unexpected DontInherit keyword %q", kw)
		}
		s.maybeSymbol(',')
	}
	return s.expectSymbol('}')
}

// readNodeTrailingNumber handles a loose handler's fallback: an unrecognized
// keyword whose value is a bare number, recorded rather than rejected.
func (s *scanner) readNodeTrailingNumber(n *Node, kw string) error {
	v, err := s.number()
	if err != nil {
		return newSyntaxError(s.pos, "unexpected keyword %q", kw)
	}
	n.Extras.set(kw, v)
	return nil
}

// parseBoneHelperAttachment implements the routine shared by the Bone,
// Helper and Attachment top-level handlers: they differ only in their
// NodeType tag and destination bucket.
func (s *scanner) parseBoneHelperAttachment(nodeType NodeType) (*Node, error) {
	name, err := s.readNodeName()
	if err != nil {
		return nil, err
	}
	n := newNode(nodeType)
	n.Name = name

	if err := s.expectSymbol('{'); err != nil {
		return nil, err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return nil, newSyntaxError(s.pos, "expected keyword, found %q", s.describeCurrent())
		}
		handled, err := s.tryNodeCommonKey(n, kw)
		if err != nil {
			return nil, err
		}
		if !handled {
			if err := s.readNodeTrailingNumber(n, kw); err != nil {
				return nil, err
			}
		}
		s.maybeSymbol(',')
	}
	if err := s.expectSymbol('}'); err != nil {
		return nil, err
	}
	return n, nil
}
