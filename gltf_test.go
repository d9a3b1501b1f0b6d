package transformblend

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
)

func testDocument() *gltf.Document {

	rotation := NewQuaternionAxisAngle(WorldUp, 0.5)

	return &gltf.Document{
		Nodes: []*gltf.Node{
			{
				Name:        "trs",
				Translation: [3]float64{1, 2, 3},
				Rotation:    [4]float64{float64(rotation.X), float64(rotation.Y), float64(rotation.Z), float64(rotation.W)},
				Scale:       [3]float64{2, 2, 2},
			},
			{
				Name: "matrix",
				// Column-major translation of (4, 5, 6)
				Matrix: [16]float64{
					1, 0, 0, 0,
					0, 1, 0, 0,
					0, 0, 1, 0,
					4, 5, 6, 1,
				},
				Children: []int{2},
			},
			{
				Name:        "child",
				Translation: [3]float64{0, 1, 0},
			},
		},
	}

}

func TestNodeMatrix(t *testing.T) {

	doc := testDocument()

	want := NewMatrix4TRS(NewVector3(1, 2, 3), NewQuaternionAxisAngle(WorldUp, 0.5), NewVector3(2, 2, 2))
	if got := NodeMatrix(doc.Nodes[0]); !got.Equals(want) {
		t.Fatalf("TRS node matrix incorrect;\nwanted:\n%v\ngot:\n%v", want, got)
	}

	if got := NodeMatrix(doc.Nodes[1]); !got.Equals(NewMatrix4Translate(4, 5, 6)) {
		t.Fatalf("matrix node incorrect:\n%v", got)
	}

	// Unset rotation and scale fall back to glTF's defaults
	if got := NodeMatrix(doc.Nodes[2]); !got.Equals(NewMatrix4Translate(0, 1, 0)) {
		t.Fatalf("translation-only node incorrect:\n%v", got)
	}

}

func TestSceneMatricesFromDocument(t *testing.T) {

	doc := testDocument()

	matrices, err := SceneMatricesFromDocument(doc, "trs", "child")
	if err != nil {
		t.Fatal(err)
	}

	// The child inherits its parent's translation
	if !matrices.End.Equals(NewMatrix4Translate(4, 6, 6)) {
		t.Fatalf("child world matrix incorrect:\n%v", matrices.End)
	}

	if _, err := SceneMatricesFromDocument(doc, "trs", "missing"); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}

}

func TestExportBlendScene(t *testing.T) {

	start := NewMatrix4TRS(NewVector3(1, 0, 0), NewQuaternionAxisAngle(WorldRight, 0.3), NewVector3(1, 2, 1))
	end := NewMatrix4TRS(NewVector3(0, 3, 0), NewQuaternionAxisAngle(WorldUp, 1.3), NewVector3(2, 1, 1))
	change := Blend(start, end, NewBlendConfig(0.5))

	for _, name := range []string{"blend.gltf", "blend.glb"} {

		path := filepath.Join(t.TempDir(), name)

		if err := ExportBlendScene(path, start, end, change); err != nil {
			t.Fatal(err)
		}

		matrices, err := LoadSceneMatrices(path, StartNodeName, ChangeNodeName)
		if err != nil {
			t.Fatal(err)
		}

		if !matrices.Start.Equals(start) || !matrices.End.Equals(change) {
			t.Fatalf("%s: exported matrices didn't load back the same", name)
		}

	}

}

func TestLoadSceneMatricesMissingFile(t *testing.T) {
	if _, err := LoadSceneMatrices(filepath.Join(t.TempDir(), "nope.gltf"), "a", "b"); err == nil {
		t.Fatal("expected an error loading a missing file")
	}
}
