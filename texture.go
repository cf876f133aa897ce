package mdlgraph

// Texture is one entry of the Textures block.
type Texture struct {
	Image         string
	ReplaceableID int32
	Flags         TextureFlags
}

// readTextures reads the Textures block, repeating `Bitmap { ... }`.
// WrapWidth and WrapHeight are bare flag keywords inside the Bitmap body;
// they promote into Flags and never surface as raw object keys.
func (s *scanner) readTextures(sc *Scene) error {
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok || kw != "Bitmap" {
			return newSyntaxError(s.pos, "expected Bitmap inside Textures")
		}
		tex, err := s.readBitmap()
		if err != nil {
			return err
		}
		sc.Textures = append(sc.Textures, tex)
		s.maybeSymbol(',')
	}
	return s.expectSymbol('}')
}

func (s *scanner) readBitmap() (Texture, error) {
	if err := s.expectSymbol('{'); err != nil {
		return Texture{}, err
	}
	var tex Texture
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return Texture{}, newSyntaxError(s.pos, "expected keyword inside Bitmap")
		}
		switch kw {
		case "Image":
			str, _, err := s.quotedString()
			if err != nil {
				return Texture{}, err
			}
			tex.Image = str
		case "ReplaceableId":
			v, err := s.number()
			if err != nil {
				return Texture{}, err
			}
			tex.ReplaceableID = wrapInt32(v)
		case "WrapWidth":
			tex.Flags |= TextureFlagWrapWidth
		case "WrapHeight":
			tex.Flags |= TextureFlagWrapHeight
		default:
			return Texture{}, newSyntaxError(s.pos, "unexpected keyword %q inside Bitmap", kw)
		}
		s.maybeSymbol(',')
	}
	return tex, s.expectSymbol('}')
}
