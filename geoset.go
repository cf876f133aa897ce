package mdlgraph

// Geoset is one renderable mesh chunk: dense vertex buffers plus the
// per-material, per-sequence animation hints layered on top of them.
type Geoset struct {
	Vertices    [][3]float32
	Normals     [][3]float32
	TVertices   [][][2]float32
	VertexGroup []byte
	Faces       []uint16
	Groups      [][]int32
	TotalGroupsCount int32

	MinimumExtent []float32
	MaximumExtent []float32
	BoundsRadius  float32

	MaterialID      int32
	SelectionGroup  int32
	Unselectable    bool

	Anims []GeosetAnimRecord
}

// GeosetAnimRecord is one Anim sub-block nested inside a Geoset.
type GeosetAnimRecord struct {
	Alpha         float32
	Color         []float32
	MinimumExtent []float32
	MaximumExtent []float32
	BoundsRadius  float32
}

// GeosetAnim is a top-level block: a static or animated alpha/color overlay
// applied to the Geoset named by GeosetId.
type GeosetAnim struct {
	GeosetID int32
	Alpha    Scalar[float32]
	Color    VecProperty
	Flags    GeosetAnimFlags
}

func newGeosetAnim() GeosetAnim {
	return GeosetAnim{GeosetID: -1, Alpha: staticScalar[float32](1)}
}

// readGeoset reads a Geoset block.
func (s *scanner) readGeoset(sc *Scene) error {
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	g := Geoset{SelectionGroup: 0}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return newSyntaxError(s.pos, "expected keyword inside Geoset")
		}
		if err := s.readGeosetKey(&g, kw); err != nil {
			return err
		}
		s.maybeSymbol(',')
	}
	if err := s.expectSymbol('}'); err != nil {
		return err
	}
	sc.Geosets = append(sc.Geosets, g)
	return nil
}

func (s *scanner) readGeosetKey(g *Geoset, kw string) error {
	switch kw {
	case "Vertices":
		n, err := s.number()
		if err != nil {
			return err
		}
		vs, err := s.readVec3Array(int(n))
		if err != nil {
			return err
		}
		g.Vertices = vs
		g.VertexGroup = make([]byte, len(vs))
		return nil
	case "Normals":
		n, err := s.number()
		if err != nil {
			return err
		}
		vs, err := s.readVec3Array(int(n))
		if err != nil {
			return err
		}
		g.Normals = vs
		return nil
	case "TVertices":
		n, err := s.number()
		if err != nil {
			return err
		}
		vs, err := s.readVec2Array(int(n))
		if err != nil {
			return err
		}
		g.TVertices = append(g.TVertices, vs)
		return nil
	case "VertexGroup":
		n, err := s.number()
		if err != nil {
			return err
		}
		if err := s.expectSymbol('{'); err != nil {
			return err
		}
		group := make([]byte, 0, int(n))
		for s.peekChar() != '}' {
			v, err := s.number()
			if err != nil {
				return err
			}
			group = append(group, byte(int64(v)))
			s.maybeSymbol(',')
		}
		g.VertexGroup = group
		return s.expectSymbol('}')
	case "Faces":
		if _, err := s.number(); err != nil { // group count, ignored
			return err
		}
		if _, err := s.number(); err != nil { // index count, hint only
			return err
		}
		if err := s.expectSymbol('{'); err != nil {
			return err
		}
		if ikw, ok := s.keyword(); !ok || ikw != "Triangles" {
			return newSyntaxError(s.pos, "expected Triangles inside Faces")
		}
		var arr []float64
		if _, err := s.array(&arr); err != nil {
			return err
		}
		g.Faces = toUint16Slice(arr)
		s.maybeSymbol(',')
		return s.expectSymbol('}')
	case "Groups":
		groupCount, err := s.number()
		if err != nil {
			return err
		}
		total, err := s.number()
		if err != nil {
			return err
		}
		g.TotalGroupsCount = wrapInt32(total)
		if err := s.expectSymbol('{'); err != nil {
			return err
		}
		for i := 0; i < int(groupCount); i++ {
			mkw, ok := s.keyword()
			if !ok || mkw != "Matrices" {
				return newSyntaxError(s.pos, "expected Matrices inside Groups")
			}
			var arr []float64
			if _, err := s.array(&arr); err != nil {
				return err
			}
			g.Groups = append(g.Groups, toInt32Slice(arr))
			s.maybeSymbol(',')
		}
		return s.expectSymbol('}')
	case "MinimumExtent":
		var arr []float64
		if _, err := s.array(&arr); err != nil {
			return err
		}
		g.MinimumExtent = toFloat32Slice(arr)
		return nil
	case "MaximumExtent":
		var arr []float64
		if _, err := s.array(&arr); err != nil {
			return err
		}
		g.MaximumExtent = toFloat32Slice(arr)
		return nil
	case "BoundsRadius":
		v, err := s.number()
		if err != nil {
			return err
		}
		g.BoundsRadius = float32(v)
		return nil
	case "MaterialID":
		v, err := s.number()
		if err != nil {
			return err
		}
		g.MaterialID = wrapInt32(v)
		return nil
	case "SelectionGroup":
		v, err := s.number()
		if err != nil {
			return err
		}
		g.SelectionGroup = wrapInt32(v)
		return nil
	case "Unselectable":
		g.Unselectable = true
		return nil
	case "Anim":
		rec, err := s.readGeosetAnimRecord()
		if err != nil {
			return err
		}
		g.Anims = append(g.Anims, rec)
		return nil
	}
	return newSyntaxError(s.pos, "unexpected keyword %q inside Geoset", kw)
}

func (s *scanner) readGeosetAnimRecord() (GeosetAnimRecord, error) {
	if err := s.expectSymbol('{'); err != nil {
		return GeosetAnimRecord{}, err
	}
	rec := GeosetAnimRecord{Alpha: 1}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return GeosetAnimRecord{}, newSyntaxError(s.pos, "expected keyword inside Anim")
		}
		switch kw {
		case "Alpha":
			v, err := s.number()
			if err != nil {
				return GeosetAnimRecord{}, err
			}
			rec.Alpha = float32(v)
		case "Color":
			var arr []float64
			if _, err := s.array(&arr); err != nil {
				return GeosetAnimRecord{}, err
			}
			rec.Color = normalizeColorVec(toFloat32Slice(arr))
		case "MinimumExtent":
			var arr []float64
			if _, err := s.array(&arr); err != nil {
				return GeosetAnimRecord{}, err
			}
			rec.MinimumExtent = toFloat32Slice(arr)
		case "MaximumExtent":
			var arr []float64
			if _, err := s.array(&arr); err != nil {
				return GeosetAnimRecord{}, err
			}
			rec.MaximumExtent = toFloat32Slice(arr)
		case "BoundsRadius":
			v, err := s.number()
			if err != nil {
				return GeosetAnimRecord{}, err
			}
			rec.BoundsRadius = float32(v)
		default:
			return GeosetAnimRecord{}, newSyntaxError(s.pos, "unexpected keyword %q inside Anim", kw)
		}
		s.maybeSymbol(',')
	}
	return rec, s.expectSymbol('}')
}

// readGeosetAnim reads a top-level GeosetAnim block.
func (s *scanner) readGeosetAnim(sc *Scene) error {
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	ga := newGeosetAnim()
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return newSyntaxError(s.pos, "expected keyword inside GeosetAnim")
		}
		switch kw {
		case "GeosetId":
			v, err := s.number()
			if err != nil {
				return err
			}
			ga.GeosetID = wrapInt32(v)
		case "static":
			inner, ok := s.keyword()
			if !ok {
				return newSyntaxError(s.pos, "expected keyword after static")
			}
			switch inner {
			case "Alpha":
				v, err := s.number()
				if err != nil {
					return err
				}
				ga.Alpha = staticScalar(float32(v))
			case "Color":
				var arr []float64
				if _, err := s.array(&arr); err != nil {
					return err
				}
				ga.Color = staticVec(normalizeColorVec(toFloat32Slice(arr)))
			default:
				return newSyntaxError(s.pos, "unexpected static channel %q in GeosetAnim", inner)
			}
		case "Alpha":
			track, err := s.readFloatTrack(1)
			if err != nil {
				return err
			}
			ga.Alpha = animatedScalar(track)
		case "Color":
			track, err := s.readFloatTrack(3)
			if err != nil {
				return err
			}
			ga.Color = animatedVec(normalizeColorTrack(track))
		case "DropShadow":
			ga.Flags |= GeosetAnimFlagDropShadow
		default:
			return newSyntaxError(s.pos, "unexpected keyword %q inside GeosetAnim", kw)
		}
		s.maybeSymbol(',')
	}
	if err := s.expectSymbol('}'); err != nil {
		return err
	}
	sc.GeosetAnims = append(sc.GeosetAnims, ga)
	return nil
}

func (s *scanner) readVec3Array(count int) ([][3]float32, error) {
	if err := s.expectSymbol('{'); err != nil {
		return nil, err
	}
	out := make([][3]float32, 0, count)
	for s.peekChar() != '}' {
		var arr []float64
		if _, err := s.array(&arr); err != nil {
			return nil, err
		}
		var v [3]float32
		for i := 0; i < 3 && i < len(arr); i++ {
			v[i] = float32(arr[i])
		}
		out = append(out, v)
		s.maybeSymbol(',')
	}
	return out, s.expectSymbol('}')
}

func (s *scanner) readVec2Array(count int) ([][2]float32, error) {
	if err := s.expectSymbol('{'); err != nil {
		return nil, err
	}
	out := make([][2]float32, 0, count)
	for s.peekChar() != '}' {
		var arr []float64
		if _, err := s.array(&arr); err != nil {
			return nil, err
		}
		var v [2]float32
		for i := 0; i < 2 && i < len(arr); i++ {
			v[i] = float32(arr[i])
		}
		out = append(out, v)
		s.maybeSymbol(',')
	}
	return out, s.expectSymbol('}')
}

func toUint16Slice(v []float64) []uint16 {
	out := make([]uint16, len(v))
	for i, f := range v {
		out[i] = uint16(int64(f))
	}
	return out
}
