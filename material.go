package mdlgraph

// Material is one entry of the Materials block: packed render-mode flags
// plus an ordered stack of Layers blended together.
type Material struct {
	RenderMode    MaterialRenderMode
	PriorityPlane *int32
	Layers        []Layer
}

// Layer is one texture stage within a Material.
type Layer struct {
	Filter      FilterMode
	Shading     LayerShading
	TextureID   Scalar[int32]
	Alpha       Scalar[float32]
	CoordID     int32
	TVertexAnimID int32 // -1 when unset
}

func newLayer() Layer {
	return Layer{Alpha: staticScalar[float32](1), TVertexAnimID: -1}
}

// readMaterials reads the Materials block, repeating `Material { ... }`.
func (s *scanner) readMaterials(sc *Scene) error {
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok || kw != "Material" {
			return newSyntaxError(s.pos, "expected Material inside Materials")
		}
		mat, err := s.readMaterial()
		if err != nil {
			return err
		}
		sc.Materials = append(sc.Materials, mat)
		s.maybeSymbol(',')
	}
	return s.expectSymbol('}')
}

func (s *scanner) readMaterial() (Material, error) {
	if err := s.expectSymbol('{'); err != nil {
		return Material{}, err
	}
	var mat Material
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return Material{}, newSyntaxError(s.pos, "expected keyword inside Material")
		}
		switch kw {
		case "Layer":
			layer, err := s.readLayer()
			if err != nil {
				return Material{}, err
			}
			mat.Layers = append(mat.Layers, layer)
		case "PriorityPlane":
			v, err := s.number()
			if err != nil {
				return Material{}, err
			}
			p := wrapInt32(v)
			mat.PriorityPlane = &p
		case "ConstantColor":
			mat.RenderMode |= RenderModeConstantColor
		case "SortPrimsFarZ":
			mat.RenderMode |= RenderModeSortPrimsFarZ
		case "FullResolution":
			mat.RenderMode |= RenderModeFullResolution
		default:
			return Material{}, newSyntaxError(s.pos, "unexpected keyword %q inside Material", kw)
		}
		s.maybeSymbol(',')
	}
	return mat, s.expectSymbol('}')
}

func (s *scanner) readLayer() (Layer, error) {
	if err := s.expectSymbol('{'); err != nil {
		return Layer{}, err
	}
	layer := newLayer()
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return Layer{}, newSyntaxError(s.pos, "expected keyword inside Layer")
		}
		switch kw {
		case "static":
			inner, ok := s.keyword()
			if !ok {
				return Layer{}, newSyntaxError(s.pos, "expected keyword after static")
			}
			switch inner {
			case "TextureID":
				v, err := s.number()
				if err != nil {
					return Layer{}, err
				}
				layer.TextureID = staticScalar(wrapInt32(v))
			case "Alpha":
				v, err := s.number()
				if err != nil {
					return Layer{}, err
				}
				layer.Alpha = staticScalar(float32(v))
			default:
				return Layer{}, newSyntaxError(s.pos, "unexpected static channel %q in Layer", inner)
			}
		case "TextureID":
			track, err := s.readIntTrack()
			if err != nil {
				return Layer{}, err
			}
			layer.TextureID = animatedScalar(track)
		case "Alpha":
			track, err := s.readFloatTrack(1)
			if err != nil {
				return Layer{}, err
			}
			layer.Alpha = animatedScalar(track)
		case "CoordId":
			v, err := s.number()
			if err != nil {
				return Layer{}, err
			}
			layer.CoordID = wrapInt32(v)
		case "TVertexAnimId":
			v, err := s.number()
			if err != nil {
				return Layer{}, err
			}
			layer.TVertexAnimID = wrapInt32(v)
		case "None":
			layer.Filter = FilterNone
		case "Transparent":
			layer.Filter = FilterTransparent
		case "Blend":
			layer.Filter = FilterBlend
		case "Additive":
			layer.Filter = FilterAdditive
		case "AddAlpha":
			layer.Filter = FilterAddAlpha
		case "Modulate":
			layer.Filter = FilterModulate
		case "Modulate2x":
			layer.Filter = FilterModulate2x
		case "Unshaded":
			layer.Shading |= ShadingUnshaded
		case "SphereEnvMap":
			layer.Shading |= ShadingSphereEnvMap
		case "TwoSided":
			layer.Shading |= ShadingTwoSided
		case "Unfogged":
			layer.Shading |= ShadingUnfogged
		case "NoDepthTest":
			layer.Shading |= ShadingNoDepthTest
		case "NoDepthSet":
			layer.Shading |= ShadingNoDepthSet
		default:
			return Layer{}, newSyntaxError(s.pos, "unexpected keyword %q inside Layer", kw)
		}
		s.maybeSymbol(',')
	}
	return layer, s.expectSymbol('}')
}
