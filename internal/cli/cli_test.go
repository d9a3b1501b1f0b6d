package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/solarlune/transformblend"
)

const testConfig = `
start:
  translation: [0, 0, 0]
end:
  translation: [2, 0, 0]
  axis: [0, 0, 1]
  angle: 90
  scale: [2, 2, 2]
`

func run(t *testing.T, args ...string) []byte {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := NewRootCommand(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	return out.Bytes()
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blend.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))
	return path
}

func TestBlendCommand(t *testing.T) {

	out := run(t, "blend", "--config", writeConfig(t), "--factor", "0.5", "--rotation=false")

	report := blendReport{}
	require.NoError(t, yaml.Unmarshal(out, &report))

	assert.Equal(t, float32(0.5), report.Settings.Factor)
	assert.False(t, report.Settings.InterpolateRotation)
	assert.Equal(t, "shortest", report.Settings.Slerp)

	assert.InDelta(t, 1, report.Change.Translation[0], 1e-4)
	assert.InDelta(t, 1.5, report.Change.Scale[0], 1e-4)
	// Rotation pinned to the start; uniform scale of 1.5
	assert.InDelta(t, 1.5*1.5*1.5, report.Change.Determinant, 1e-3)
	assert.InDelta(t, 1, report.Change.Rotation[3], 1e-4)

	assert.InDelta(t, 8, report.End.Determinant, 1e-3)

}

func TestBlendCommandJSONExport(t *testing.T) {

	export := filepath.Join(t.TempDir(), "blend.glb")

	out := run(t, "blend", "--config", writeConfig(t), "--output", "json", "--export", export)

	report := blendReport{}
	require.NoError(t, json.Unmarshal(out, &report))

	matrices, err := transformblend.LoadSceneMatrices(export, transformblend.StartNodeName, transformblend.ChangeNodeName)
	require.NoError(t, err)
	assert.True(t, matrices.End.Equals(transformblend.Matrix4(report.Change.Matrix)))

}

func TestDecomposeCommand(t *testing.T) {

	out := run(t, "decompose", "--config", writeConfig(t))

	report := decomposeReport{}
	require.NoError(t, yaml.Unmarshal(out, &report))

	assert.InDelta(t, 1, report.Start.Determinant, 1e-4)
	assert.Equal(t, [3]float32{2, 0, 0}, report.End.Translation)
	assert.InDelta(t, 2, report.End.Scale[1], 1e-4)

	assert.InDelta(t, 0, report.Start.RotationAngle, 1e-3)
	assert.InDelta(t, 90, report.End.RotationAngle, 1e-2)

}

func TestBlendCommandTarget(t *testing.T) {

	out := run(t, "blend", "--config", writeConfig(t), "--factor", "0.25", "--target", "4,0,-8")

	report := blendReport{}
	require.NoError(t, yaml.Unmarshal(out, &report))

	require.NotNil(t, report.Target)
	assert.InDeltaSlice(t, []float32{1, 0, -2}, report.Target[:], 1e-4)

	out = run(t, "blend", "--config", writeConfig(t))
	report = blendReport{}
	require.NoError(t, yaml.Unmarshal(out, &report))
	assert.Nil(t, report.Target)

}

func TestSweepCommand(t *testing.T) {

	out := run(t, "sweep", "--config", writeConfig(t), "--steps", "5", "--workers", "3")

	report := sweepReport{}
	require.NoError(t, yaml.Unmarshal(out, &report))
	require.Len(t, report.Steps, 5)

	for i, step := range report.Steps {
		assert.InDelta(t, float32(i)/4, step.Factor, 1e-6)
		// Uniform scale lerped from 1 to 2
		s := 1 + step.Factor
		assert.InDelta(t, s*s*s, step.Determinant, 1e-3)
		assert.InDelta(t, 2*step.Factor, step.Translation[0], 1e-4)
	}

}

func TestSweepCancelled(t *testing.T) {

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sweep(ctx, transformblend.NewMatrix4(), transformblend.NewMatrix4(), transformblend.NewBlendConfig(0), 1000, 2)
	assert.ErrorIs(t, err, context.Canceled)

}

func TestSweepTooFewSteps(t *testing.T) {
	_, err := sweep(context.Background(), transformblend.NewMatrix4(), transformblend.NewMatrix4(), transformblend.NewBlendConfig(0), 1, 1)
	assert.Error(t, err)
}

func TestInvalidFlags(t *testing.T) {

	for _, args := range [][]string{
		{"blend", "--output", "xml"},
		{"blend", "--log-level", "loud"},
		{"blend", "--slerp", "sideways"},
	} {
		cmd := NewRootCommand(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		assert.Error(t, cmd.Execute(), "args %v", args)
	}

}
