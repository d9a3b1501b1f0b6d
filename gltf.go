package transformblend

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
)

// ErrNodeNotFound is returned when a glTF document has no node with the requested name.
var ErrNodeNotFound = errors.New("node not found")

// Names of the nodes written by ExportBlendScene.
const (
	StartNodeName  = "start"
	EndNodeName    = "end"
	ChangeNodeName = "change"
)

// SceneMatrices holds the start and end Matrix4s for a blend, as read from a glTF scene.
type SceneMatrices struct {
	Start Matrix4
	End   Matrix4
}

// LoadSceneMatrices loads a .gltf or .glb file from the filepath given, and returns the world transforms of the two nodes named.
// Nodes can be positioned with either a matrix or translation / rotation / scale values; parent transforms are applied.
func LoadSceneMatrices(path, startNode, endNode string) (SceneMatrices, error) {

	doc, err := gltf.Open(path)

	if err != nil {
		return SceneMatrices{}, fmt.Errorf("load scene %s: %w", path, err)
	}

	return SceneMatricesFromDocument(doc, startNode, endNode)

}

// SceneMatricesFromDocument returns the world transforms of the two named nodes in an already-decoded glTF document.
func SceneMatricesFromDocument(doc *gltf.Document, startNode, endNode string) (SceneMatrices, error) {

	start, err := NodeWorldMatrix(doc, startNode)
	if err != nil {
		return SceneMatrices{}, err
	}

	end, err := NodeWorldMatrix(doc, endNode)
	if err != nil {
		return SceneMatrices{}, err
	}

	return SceneMatrices{Start: start, End: end}, nil

}

// NodeWorldMatrix returns the world transform of the first node with the given name in the glTF document.
func NodeWorldMatrix(doc *gltf.Document, name string) (Matrix4, error) {

	parents := make(map[int]int, len(doc.Nodes))
	for parentIndex, node := range doc.Nodes {
		for _, child := range node.Children {
			parents[child] = parentIndex
		}
	}

	for index, node := range doc.Nodes {

		if node.Name != name {
			continue
		}

		matrix := NodeMatrix(node)

		// Walk up the hierarchy; the visited set guards against malformed, cyclic documents.
		visited := map[int]bool{index: true}
		for parent, ok := parents[index]; ok && !visited[parent]; parent, ok = parents[parent] {
			visited[parent] = true
			matrix = NodeMatrix(doc.Nodes[parent]).Mult(matrix)
		}

		return matrix, nil

	}

	return Matrix4{}, fmt.Errorf("%w: %q", ErrNodeNotFound, name)

}

// NodeMatrix returns the local transform of a glTF node. glTF matrices are column-major, which matches the
// column-vector convention used by Matrix4. If the node has no matrix (or an identity one), its translation, rotation,
// and scale are composed instead.
func NodeMatrix(node *gltf.Node) Matrix4 {

	floats := [16]float32{}
	for i, v := range node.Matrix {
		floats[i] = float32(v)
	}
	// Reading column-major values row by row gives the transpose.
	matrix := NewMatrix4FromFloats(floats).Transposed()

	if !matrix.IsIdentity() && !matrix.IsZero() {
		return matrix
	}

	translation := Vector3{X: float32(node.Translation[0]), Y: float32(node.Translation[1]), Z: float32(node.Translation[2])}

	rotation := NewQuaternion(float32(node.Rotation[0]), float32(node.Rotation[1]), float32(node.Rotation[2]), float32(node.Rotation[3]))
	if rotation == (Quaternion{}) {
		rotation = NewQuaternionIdentity()
	}

	scale := Vector3{X: float32(node.Scale[0]), Y: float32(node.Scale[1]), Z: float32(node.Scale[2])}
	if scale == (Vector3{}) {
		scale = Vector3{1, 1, 1}
	}

	return Decomposition{Translation: translation, Rotation: rotation, Scale: scale}.Recompose()

}

// BlendSceneDocument returns a glTF document with one root scene, holding a node for each of the start, end, and change Matrix4s.
func BlendSceneDocument(start, end, change Matrix4) *gltf.Document {

	doc := &gltf.Document{
		Asset:  gltf.Asset{Generator: "transformblend", Version: "2.0"},
		Scene:  gltf.Index(0),
		Scenes: []*gltf.Scene{{Name: "Blend"}},
	}

	add := func(name string, matrix Matrix4) {
		node := &gltf.Node{Name: name}
		for i, v := range matrix.Transposed().ToFloats() {
			node.Matrix[i] = float64(v)
		}
		doc.Nodes = append(doc.Nodes, node)
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	add(StartNodeName, start)
	add(EndNodeName, end)
	add(ChangeNodeName, change)

	return doc

}

// ExportBlendScene writes the start, end, and change Matrix4s to a glTF file as three named nodes, so the blend can be inspected
// in a 3D modeler. A path ending in .glb is written as binary glTF.
func ExportBlendScene(path string, start, end, change Matrix4) error {

	doc := BlendSceneDocument(start, end, change)

	var err error
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		err = gltf.Save(doc, path)
	}

	if err != nil {
		return fmt.Errorf("export scene %s: %w", path, err)
	}

	return nil

}
