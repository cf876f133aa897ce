package mdlgraph

// TextureFlags packs the Textures block's wrap-mode keywords.
type TextureFlags uint32

const (
	TextureFlagWrapWidth  TextureFlags = 1 << 0
	TextureFlagWrapHeight TextureFlags = 1 << 1
)

// FilterMode is a Layer's blend mode, numbered per the format's binary twin.
type FilterMode int32

const (
	FilterNone FilterMode = iota
	FilterTransparent
	FilterBlend
	FilterAdditive
	FilterAddAlpha
	FilterModulate
	FilterModulate2x
)

// LayerShading packs a Layer's shading keywords. Bits 4 and 8 are reserved
// by the format and intentionally left unused.
type LayerShading uint32

const (
	ShadingUnshaded      LayerShading = 1 << 0
	ShadingSphereEnvMap  LayerShading = 1 << 1
	ShadingTwoSided      LayerShading = 1 << 4
	ShadingUnfogged      LayerShading = 1 << 5
	ShadingNoDepthTest   LayerShading = 1 << 6
	ShadingNoDepthSet    LayerShading = 1 << 7
)

// MaterialRenderMode packs a Material's render-mode keywords.
type MaterialRenderMode uint32

const (
	RenderModeConstantColor MaterialRenderMode = 1 << 0
	RenderModeSortPrimsFarZ MaterialRenderMode = 1 << 4
	RenderModeFullResolution MaterialRenderMode = 1 << 5
)

// GeosetAnimFlags packs GeosetAnim's flag keywords.
type GeosetAnimFlags uint32

const (
	GeosetAnimFlagDropShadow GeosetAnimFlags = 1 << 0
)

// ParticleEmitterFlags packs the legacy ParticleEmitter's flag keywords.
type ParticleEmitterFlags uint32

const (
	ParticleEmitterFlagUsesMDL ParticleEmitterFlags = 1 << 0
	ParticleEmitterFlagUsesTGA ParticleEmitterFlags = 1 << 1
)

// ParticleEmitter2Flags packs ParticleEmitter2's flag keywords.
type ParticleEmitter2Flags uint32

const (
	PE2FlagSortPrimsFarZ ParticleEmitter2Flags = 1 << 0
	PE2FlagUnshaded      ParticleEmitter2Flags = 1 << 1
	PE2FlagLineEmitter   ParticleEmitter2Flags = 1 << 2
	PE2FlagUnfogged      ParticleEmitter2Flags = 1 << 3
	PE2FlagModelSpace    ParticleEmitter2Flags = 1 << 4
	PE2FlagXYQuad        ParticleEmitter2Flags = 1 << 5
)

// ParticleEmitter2FrameFlags packs the Both/Head/Tail keywords.
type ParticleEmitter2FrameFlags uint32

const (
	PE2FrameHead ParticleEmitter2FrameFlags = 1 << 0
	PE2FrameTail ParticleEmitter2FrameFlags = 1 << 1
)

// ParticleEmitter2FilterMode is ParticleEmitter2's own filter-mode keyword
// set, distinct in shape from Layer's FilterMode.
type ParticleEmitter2FilterMode int32

const (
	PE2FilterTransparent ParticleEmitter2FilterMode = iota
	PE2FilterBlend
	PE2FilterAdditive
	PE2FilterAlphaKey
	PE2FilterModulate
	PE2FilterModulate2x
)

// CollisionShapeType distinguishes CollisionShape's two kinds.
type CollisionShapeType int32

const (
	CollisionShapeBox CollisionShapeType = iota
	CollisionShapeSphere
)

// LightType distinguishes Light's three kinds.
type LightType int32

const (
	LightOmnidirectional LightType = iota
	LightDirectional
	LightAmbient
)

// NodeFlags packs the behavioral bits shared by every node specialization.
// These occupy bits 0-15; NodeType tag bits occupy a disjoint range starting
// at bit 16 (see NodeType below), so a Flags value always carries exactly one
// type tag alongside zero or more behavioral bits.
type NodeFlags uint32

const (
	NodeFlagBillboarded             NodeFlags = 1 << 0
	NodeFlagBillboardedLockX        NodeFlags = 1 << 1
	NodeFlagBillboardedLockY        NodeFlags = 1 << 2
	NodeFlagBillboardedLockZ        NodeFlags = 1 << 3
	NodeFlagCameraAnchored          NodeFlags = 1 << 4
	NodeFlagDontInheritTranslation  NodeFlags = 1 << 5
	NodeFlagDontInheritRotation     NodeFlags = 1 << 6
	NodeFlagDontInheritScaling      NodeFlags = 1 << 7

	nodeBehaviorMask NodeFlags = (1 << 16) - 1
)

// NodeType is the node-kind tag packed into the high bits of a Node's Flags.
// Exactly one of these bits is ever set on a given node.
type NodeType uint32

const (
	NodeTypeBone NodeType = (1 << 16) << iota
	NodeTypeHelper
	NodeTypeAttachment
	NodeTypeCollisionShape
	NodeTypeEventObject
	NodeTypeParticleEmitter
	NodeTypeLight
	NodeTypeRibbonEmitter
)

func (f NodeFlags) withType(t NodeType) NodeFlags {
	return f | NodeFlags(t)
}

// Type extracts the node-type tag from a packed Flags value.
func (f NodeFlags) Type() NodeType {
	return NodeType(f &^ nodeBehaviorMask)
}
