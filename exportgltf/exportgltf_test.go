package exportgltf

import (
	"bytes"
	"testing"

	"github.com/ashenforge/mdlgraph"
)

func triangleScene() *mdlgraph.Scene {
	sc, err := mdlgraph.Parse(`
		Geoset {
			Vertices 3 {
				{ 0, 0, 0 },
				{ 1, 0, 0 },
				{ 0, 1, 0 },
			}
			Normals 3 {
				{ 0, 0, 1 },
				{ 0, 0, 1 },
				{ 0, 0, 1 },
			}
			Faces 1 3 {
				Triangles { 0, 1, 2 }
			}
			MaterialID 0,
		}
		Materials {
			Material {
				Layer {
					TwoSided,
				}
			}
		}
	`)
	if err != nil {
		panic(err)
	}
	return sc
}

func TestExportProducesOneMeshAndMaterial(t *testing.T) {
	doc, err := Export(triangleScene())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(doc.Meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(doc.Meshes))
	}
	if len(doc.Materials) != 1 {
		t.Fatalf("expected 1 material, got %d", len(doc.Materials))
	}
	if !doc.Materials[0].DoubleSided {
		t.Errorf("expected DoubleSided material (TwoSided shading bit)")
	}
	prim := doc.Meshes[0].Primitives[0]
	if _, ok := prim.Attributes["POSITION"]; !ok {
		t.Errorf("expected POSITION attribute")
	}
	if _, ok := prim.Attributes["NORMAL"]; !ok {
		t.Errorf("expected NORMAL attribute")
	}
}

func TestExportEmptyGeosetErrors(t *testing.T) {
	sc := &mdlgraph.Scene{Geosets: []mdlgraph.Geoset{{}}}
	if _, err := Export(sc); err == nil {
		t.Fatalf("expected error exporting a geoset with no vertices")
	}
}

func TestWriteBinaryProducesGLBMagic(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBinary(&buf, triangleScene()); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}
	if buf.Len() < 4 || string(buf.Bytes()[:4]) != "glTF" {
		t.Errorf("expected glb magic header, got %q", buf.Bytes()[:min(4, buf.Len())])
	}
}
