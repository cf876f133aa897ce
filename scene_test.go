package mdlgraph

import (
	"fmt"
	"testing"

	"github.com/Pallinder/go-randomdata"
)

func TestParseVersionOnly(t *testing.T) {
	sc, err := Parse(`Version { FormatVersion 800, }`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sc.Version != 800 {
		t.Errorf("Version = %d, want 800", sc.Version)
	}
	if len(sc.Sequences) != 0 || len(sc.Textures) != 0 || len(sc.Nodes) != 0 {
		t.Errorf("expected empty lists, got Sequences=%d Textures=%d Nodes=%d",
			len(sc.Sequences), len(sc.Textures), len(sc.Nodes))
	}
}

func TestParseModelInfo(t *testing.T) {
	sc, err := Parse(`Model "Zeppelin" {
		BlendTime 150,
		MinimumExtent { -1, -2, -3 },
		MaximumExtent { 1, 2, 3 },
	}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sc.Info.Name != "Zeppelin" {
		t.Errorf("Name = %q, want Zeppelin", sc.Info.Name)
	}
	if sc.Info.BlendTime != 150 {
		t.Errorf("BlendTime = %d, want 150", sc.Info.BlendTime)
	}
	wantMin := []float32{-1, -2, -3}
	for i, v := range wantMin {
		if sc.Info.MinimumExtent[i] != v {
			t.Errorf("MinimumExtent[%d] = %v, want %v", i, sc.Info.MinimumExtent[i], v)
		}
	}
	wantMax := []float32{1, 2, 3}
	for i, v := range wantMax {
		if sc.Info.MaximumExtent[i] != v {
			t.Errorf("MaximumExtent[%d] = %v, want %v", i, sc.Info.MaximumExtent[i], v)
		}
	}
}

func TestParseGeosetAnimHermiteTrack(t *testing.T) {
	sc, err := Parse(`GeosetAnim {
		GeosetId 0,
		Alpha { 2, Hermite, 0: 0.0, InTan 0.1, OutTan 0.2, 10: 1.0, InTan 0.3, OutTan 0.4, },
	}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(sc.GeosetAnims) != 1 {
		t.Fatalf("expected 1 GeosetAnim, got %d", len(sc.GeosetAnims))
	}
	ga := sc.GeosetAnims[0]
	if !ga.Alpha.IsAnimated() {
		t.Fatalf("expected animated Alpha")
	}
	track := ga.Alpha.Track
	if track.Interp != InterpHermite {
		t.Errorf("Interp = %v, want Hermite", track.Interp)
	}
	if len(track.Keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(track.Keys))
	}
	k0 := track.Keys[0]
	if k0.Frame != 0 || k0.Vector[0] != 0.0 || k0.InTan[0] != float32(0.1) || k0.OutTan[0] != float32(0.2) {
		t.Errorf("unexpected key 0: %+v", k0)
	}
	k1 := track.Keys[1]
	if k1.Frame != 10 || k1.Vector[0] != 1.0 || k1.InTan[0] != float32(0.3) || k1.OutTan[0] != float32(0.4) {
		t.Errorf("unexpected key 1: %+v", k1)
	}
}

func TestParseStaticColorReversal(t *testing.T) {
	sc, err := Parse(`GeosetAnim {
		static Color { 0.1, 0.2, 0.3 },
	}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ga := sc.GeosetAnims[0]
	if ga.Color.IsAnimated() {
		t.Fatalf("expected static Color")
	}
	want := []float32{0.3, 0.2, 0.1}
	for i, v := range want {
		if ga.Color.Value[i] != v {
			t.Errorf("Color[%d] = %v, want %v", i, ga.Color.Value[i], v)
		}
	}
}

func TestParseTextureFlagPromotion(t *testing.T) {
	sc, err := Parse(`Textures {
		Bitmap { Image "foo.blp", WrapWidth, WrapHeight, }
	}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(sc.Textures) != 1 {
		t.Fatalf("expected 1 texture, got %d", len(sc.Textures))
	}
	tex := sc.Textures[0]
	if tex.Image != "foo.blp" {
		t.Errorf("Image = %q, want foo.blp", tex.Image)
	}
	want := TextureFlagWrapWidth | TextureFlagWrapHeight
	if tex.Flags != want {
		t.Errorf("Flags = %v, want %v", tex.Flags, want)
	}
}

func TestParseUnknownTopLevelBlockSkipped(t *testing.T) {
	sc, err := Parse(`FaceFX { Anim { Path "x", }, } Version { FormatVersion 800, }`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sc.Version != 800 {
		t.Errorf("Version = %d, want 800", sc.Version)
	}
}

func TestParseUnknownTopLevelBlockNestedBraces(t *testing.T) {
	sc, err := Parse(`Weird { A { B { C 1, } } D "str", } Version { FormatVersion 900, }`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sc.Version != 900 {
		t.Errorf("Version = %d, want 900", sc.Version)
	}
}

func TestParseSequenceNonLooping(t *testing.T) {
	sc, err := Parse(`Sequences {
		Anim "Stand" {
			Interval { 0, 100 },
			NonLooping,
			MoveSpeed 0,
		}
	}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(sc.Sequences) != 1 {
		t.Fatalf("expected 1 sequence, got %d", len(sc.Sequences))
	}
	seq := sc.Sequences[0]
	if seq.Name != "Stand" {
		t.Errorf("Name = %q, want Stand", seq.Name)
	}
	if !seq.NonLooping {
		t.Errorf("expected NonLooping true")
	}
	if seq.Interval != [2]uint32{0, 100} {
		t.Errorf("Interval = %v, want {0 100}", seq.Interval)
	}
	if seq.MoveSpeed == nil || *seq.MoveSpeed != 0 {
		t.Errorf("MoveSpeed = %v, want pointer to 0", seq.MoveSpeed)
	}
}

func TestParseBoneNotInFlatNodes(t *testing.T) {
	sc, err := Parse(`Bone "Root" {
		ObjectId 0,
	}
	PivotPoints 1 {
		{ 0, 0, 0 },
	}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(sc.Bones) != 1 {
		t.Fatalf("expected 1 bone, got %d", len(sc.Bones))
	}
	if len(sc.Nodes) != 0 {
		t.Errorf("expected Bones not appended to flat Nodes, got %d", len(sc.Nodes))
	}
}

func TestParsePivotAssignmentByIndex(t *testing.T) {
	sc, err := Parse(`EventObject "Ev0" {
		ObjectId 0,
	}
	EventObject "Ev1" {
		ObjectId 1,
	}
	PivotPoints 1 {
		{ 1, 2, 3 },
	}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(sc.Nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(sc.Nodes))
	}
	if sc.Nodes[0].PivotPoint == nil {
		t.Fatalf("expected PivotPoint assigned to index 0")
	}
	want := []float32{1, 2, 3}
	for i, v := range want {
		if sc.Nodes[0].PivotPoint[i] != v {
			t.Errorf("PivotPoint[%d] = %v, want %v", i, sc.Nodes[0].PivotPoint[i], v)
		}
	}
}

func TestParseLayerShadingFlagPacking(t *testing.T) {
	sc, err := Parse(`Materials {
		Material {
			Layer {
				Unshaded,
				TwoSided,
				NoDepthTest,
			}
		}
	}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	layer := sc.Materials[0].Layers[0]
	want := ShadingUnshaded | ShadingTwoSided | ShadingNoDepthTest
	if layer.Shading != want {
		t.Errorf("Shading = %v, want %v", layer.Shading, want)
	}
}

func TestParseMaterialsUnknownKeywordIsError(t *testing.T) {
	_, err := Parse(`Materials {
		Material {
			Bogus,
		}
	}`)
	if err == nil {
		t.Fatalf("expected syntax error for unknown Material keyword")
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Errorf("expected *SyntaxError, got %T", err)
	}
}

func TestParseNodeUnknownKeywordRecordedAsExtra(t *testing.T) {
	sc, err := Parse(`Bone "Root" {
		ObjectId 0,
		SomeFutureKeyword 42,
	}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	n := sc.Bones[0]
	if n.Extras == nil || n.Extras["SomeFutureKeyword"] != 42 {
		t.Errorf("expected extras to carry SomeFutureKeyword=42, got %v", n.Extras)
	}
}

func TestParseParticleEmitterLastWriteWins(t *testing.T) {
	sc, err := Parse(`ParticleEmitter "Fire" {
		LifeSpan 1,
		Particle {
			LifeSpan 2,
		}
	}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pe := sc.ParticleEmitters[0]
	if pe.LifeSpan.Value != 2 {
		t.Errorf("LifeSpan = %v, want 2 (nested Particle block should win)", pe.LifeSpan.Value)
	}
}

func TestParseParticleEmitter2FlagsDoNotCollideWithNodeFlags(t *testing.T) {
	sc, err := Parse(`ParticleEmitter2 "Smoke" {
		Billboarded,
		SortPrimsFarZ,
		Unshaded,
	}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	n := sc.ParticleEmitters2[0]
	if n.Flags&NodeFlagBillboarded == 0 {
		t.Errorf("expected Billboarded bit set on Node.Flags")
	}
	want := PE2FlagSortPrimsFarZ | PE2FlagUnshaded
	if n.ParticleEmitter2.Flags != want {
		t.Errorf("ParticleEmitter2.Flags = %v, want %v", n.ParticleEmitter2.Flags, want)
	}
}

func TestParseCameraRotationArityOne(t *testing.T) {
	sc, err := Parse(`Camera "Main" {
		Position { 0, 0, 0 },
		FieldOfView 1.2,
		NearClip 1,
		FarClip 1000,
		Rotation { 1, Linear, 0: 0.5, },
	}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cam := sc.Cameras[0]
	if !cam.Rotation.IsAnimated() {
		t.Fatalf("expected animated Rotation")
	}
	if arity := cam.Rotation.Track.arity(); arity != 1 {
		t.Errorf("Rotation arity = %d, want 1", arity)
	}
}

func TestParseSequenceNameRoundTripsForArbitraryNames(t *testing.T) {
	for i := 0; i < 5; i++ {
		name := randomdata.SillyName()
		src := fmt.Sprintf(`Sequences { Anim %q { Interval { 0, 1 }, } }`, name)
		sc, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", name, err)
		}
		if got := sc.Sequences[0].Name; got != name {
			t.Errorf("Name = %q, want %q", got, name)
		}
	}
}

func TestParseSyntaxErrorOffset(t *testing.T) {
	_, err := Parse(`Version { FormatVersion }`)
	if err == nil {
		t.Fatalf("expected syntax error")
	}
	synErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if synErr.Offset <= 0 {
		t.Errorf("expected positive offset, got %d", synErr.Offset)
	}
}
