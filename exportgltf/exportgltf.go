// Package exportgltf is a downstream consumer of a parsed scene graph: it
// converts a mdlgraph.Scene into a glTF document, the kind of format
// converter the core is explicitly designed to feed. It never reaches into
// the scanner or semantic handlers directly; it
// only reads the already-built Scene.
package exportgltf

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/ashenforge/mdlgraph"
)

// Export converts every Geoset in sc into its own glTF mesh, and every
// Material into a glTF material whose base-color alpha is its first layer's
// static Alpha and which is double-sided when any layer is TwoSided; no
// textures are exported. It does not attempt to resolve bone skinning or node hierarchy;
// callers needing that can walk sc.Nodes themselves using the returned
// document's Meshes slice, indexed in Geoset order.
func Export(sc *mdlgraph.Scene) (*gltf.Document, error) {
	doc := gltf.NewDocument()

	for i, geoset := range sc.Geosets {
		if geoset.MaterialID < 0 || int(geoset.MaterialID) >= len(sc.Materials) {
			return nil, errors.Errorf("exporting geoset %d: material %d out of range (%d materials)", i, geoset.MaterialID, len(sc.Materials))
		}
		mesh, err := exportGeoset(doc, geoset)
		if err != nil {
			return nil, errors.Wrapf(err, "exporting geoset %d", i)
		}
		doc.Meshes = append(doc.Meshes, mesh)
	}

	for i, mat := range sc.Materials {
		doc.Materials = append(doc.Materials, exportMaterial(mat, i))
	}

	for i := range doc.Meshes {
		meshIdx := i
		node := &gltf.Node{
			Name: meshName(i),
			Mesh: &meshIdx,
		}
		doc.Nodes = append(doc.Nodes, node)
	}
	if len(doc.Nodes) > 0 {
		scene := 0
		doc.Scene = &scene
		sceneNodes := make([]int, len(doc.Nodes))
		for i := range sceneNodes {
			sceneNodes[i] = i
		}
		doc.Scenes = append(doc.Scenes, &gltf.Scene{Nodes: sceneNodes})
	}

	return doc, nil
}

// WriteBinary writes sc as a binary glTF (.glb) stream.
func WriteBinary(w io.Writer, sc *mdlgraph.Scene) error {
	doc, err := Export(sc)
	if err != nil {
		return err
	}
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	return encoder.Encode(doc)
}

func exportGeoset(doc *gltf.Document, g mdlgraph.Geoset) (*gltf.Mesh, error) {
	if len(g.Vertices) == 0 {
		return nil, errors.New("geoset has no vertices")
	}

	positions := make([][3]float32, len(g.Vertices))
	copy(positions, g.Vertices)
	positionAccessor := modeler.WritePosition(doc, positions)

	attributes := map[string]int{
		"POSITION": positionAccessor,
	}

	if len(g.Normals) == len(g.Vertices) {
		normals := make([][3]float32, len(g.Normals))
		copy(normals, g.Normals)
		attributes["NORMAL"] = modeler.WriteNormal(doc, normals)
	}

	for layer, tverts := range g.TVertices {
		uvs := make([][2]float32, len(tverts))
		copy(uvs, tverts)
		attributes[texCoordAttr(layer)] = modeler.WriteTextureCoord(doc, uvs)
	}

	indices := make([]uint32, len(g.Faces))
	for i, idx := range g.Faces {
		indices[i] = uint32(idx)
	}
	indicesAccessor := modeler.WriteIndices(doc, indices)

	matIdx := int(g.MaterialID)
	return &gltf.Mesh{
		Primitives: []*gltf.Primitive{
			{
				Indices:    &indicesAccessor,
				Attributes: attributes,
				Material:   &matIdx,
			},
		},
	}, nil
}

func exportMaterial(mat mdlgraph.Material, index int) *gltf.Material {
	color := [4]float64{1, 1, 1, 1}
	if len(mat.Layers) > 0 && !mat.Layers[0].Alpha.IsAnimated() {
		color[3] = float64(mat.Layers[0].Alpha.Value)
	}
	return &gltf.Material{
		Name:        materialName(index),
		DoubleSided: mat.Layers != nil && hasTwoSided(mat.Layers),
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &color,
		},
	}
}

func hasTwoSided(layers []mdlgraph.Layer) bool {
	for _, l := range layers {
		if l.Shading&mdlgraph.ShadingTwoSided != 0 {
			return true
		}
	}
	return false
}

func texCoordAttr(layer int) string {
	if layer == 0 {
		return "TEXCOORD_0"
	}
	return "TEXCOORD_" + strconv.Itoa(layer)
}

func meshName(i int) string     { return "geoset_" + strconv.Itoa(i) }
func materialName(i int) string { return "material_" + strconv.Itoa(i) }
