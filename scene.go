package mdlgraph

import (
	"go.uber.org/zap"

	"github.com/ashenforge/mdlgraph/internal/mdllog"
)

// Scene is the root of the normalized scene graph a parse produces: every
// top-level block's records, linked together by the finalization pass.
type Scene struct {
	Version int32
	Info    ModelInfo

	Sequences       []Sequence
	Textures        []Texture
	Materials       []Material
	Geosets         []Geoset
	GeosetAnims     []GeosetAnim
	ParticleEmitters []ParticleEmitter
	Cameras         []Camera
	TextureAnims    []TVertexAnim
	GlobalSequences []int32
	PivotPoints     [][3]float32

	// Nodes is the flat, ObjectId-indexed arena. Only EventObject,
	// CollisionShape, ParticleEmitter2, Light and RibbonEmitter records are
	// appended here by their own handlers; Bone, Helper and Attachment
	// records live only in their typed buckets below (see finalize).
	Nodes []*Node

	Bones             []*Node
	Helpers           []*Node
	Attachments       []*Node
	EventObjects      []*Node
	CollisionShapes   []*Node
	ParticleEmitters2 []*Node
	Lights            []*Node
	RibbonEmitters    []*Node
}

func newScene() *Scene {
	return &Scene{
		Version: 800,
		Info:    ModelInfo{BlendTime: 150},
	}
}

// Parse reads a complete textual scene description and returns the
// normalized scene graph it describes, or a *SyntaxError on the first
// malformed construct encountered.
func Parse(source string) (*Scene, error) {
	return ParseWithLogger(source, mdllog.NewDiscard())
}

// ParseWithLogger is Parse with a caller-supplied trace logger; it receives
// one Debug entry per unrecognized top-level block that gets skipped.
func ParseWithLogger(source string, log *zap.Logger) (*Scene, error) {
	if log == nil {
		log = mdllog.NewDiscard()
	}
	s := newScanner(source, log)
	sc := newScene()

	for {
		s.skipTrivia()
		if s.atEOF() {
			break
		}
		kw, ok := s.keyword()
		if !ok {
			return nil, newSyntaxError(s.pos, "expected top-level keyword, found %q", s.describeCurrent())
		}
		if err := s.dispatchTopLevel(sc, kw); err != nil {
			return nil, err
		}
	}

	finalize(sc)
	return sc, nil
}
