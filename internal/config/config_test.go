package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarlune/transformblend"
	"github.com/solarlune/transformblend/math32"
)

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {

	opts, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, float32(0.5), opts.Factor)
	assert.True(t, opts.Rotation)
	assert.True(t, opts.Scale)
	assert.True(t, opts.Translation)
	assert.Equal(t, "shortest", opts.Slerp)
	assert.Equal(t, transformblend.StartNodeName, opts.StartNode)
	assert.Equal(t, transformblend.EndNodeName, opts.EndNode)

	cfg := opts.BlendConfig()
	assert.Equal(t, transformblend.NewBlendConfig(0.5), cfg)

	matrices, err := opts.Matrices()
	require.NoError(t, err)
	assert.True(t, matrices.Start.IsIdentity())
	assert.True(t, matrices.End.IsIdentity())

}

func TestLoadFile(t *testing.T) {

	path := writeConfig(t, "blend.yaml", `
factor: 0.25
scale: false
slerp: literal
start:
  translation: [1, 2, 3]
end:
  axis: [0, 1, 0]
  angle: 90
  scale: [2, 2, 2]
`)

	opts, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, float32(0.25), opts.Factor)
	assert.False(t, opts.Scale)
	assert.True(t, opts.Rotation)

	cfg := opts.BlendConfig()
	assert.Equal(t, transformblend.SlerpLiteral, cfg.Slerp)
	assert.False(t, cfg.InterpolateScale)

	matrices, err := opts.Matrices()
	require.NoError(t, err)

	assert.True(t, matrices.Start.Equals(transformblend.NewMatrix4Translate(1, 2, 3)))

	wantEnd := transformblend.NewMatrix4TRS(
		transformblend.Vector3{},
		transformblend.NewQuaternionAxisAngle(transformblend.WorldUp, math32.ToRadians(90)),
		transformblend.NewVector3(2, 2, 2),
	)
	assert.True(t, matrices.End.Equals(wantEnd), "end matrix:\n%v", matrices.End)

}

func TestLoadRawMatrix(t *testing.T) {

	path := writeConfig(t, "blend.json", `{
  "start": {"matrix": [1,0,0,5, 0,1,0,6, 0,0,1,7, 0,0,0,1]}
}`)

	opts, err := Load(path, nil)
	require.NoError(t, err)

	matrices, err := opts.Matrices()
	require.NoError(t, err)
	assert.True(t, matrices.Start.Equals(transformblend.NewMatrix4Translate(5, 6, 7)))

}

func TestLoadPrecedence(t *testing.T) {

	path := writeConfig(t, "blend.yaml", "factor: 0.25\nslerp: literal\nrotation: false\n")

	t.Setenv("TRANSFORMBLEND_FACTOR", "0.75")
	t.Setenv("TRANSFORMBLEND_START_NODE", "a")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(flags)
	require.NoError(t, flags.Parse([]string{"--slerp=shortest"}))

	opts, err := Load(path, flags)
	require.NoError(t, err)

	// Environment beats the file
	assert.Equal(t, float32(0.75), opts.Factor)
	assert.Equal(t, "a", opts.StartNode)
	// Flags beat the file
	assert.Equal(t, "shortest", opts.Slerp)
	// Unset flags don't override the file with their defaults
	assert.False(t, opts.Rotation)

	require.NoError(t, flags.Parse([]string{"--factor=0.1"}))
	opts, err = Load(path, flags)
	require.NoError(t, err)
	// Flags beat the environment
	assert.Equal(t, float32(0.1), opts.Factor)

}

func TestLoadInvalid(t *testing.T) {

	tests := []struct {
		name     string
		contents string
	}{
		{"slerp", "slerp: sideways\n"},
		{"matrix", "start:\n  matrix: [1, 2, 3]\n"},
		{"translation", "end:\n  translation: [1, 2]\n"},
		{"nodes", "scene: scene.gltf\nend-node: \"\"\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "blend.yaml", test.contents), nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "unexpected error: %v", err)
		})
	}

}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadScene(t *testing.T) {

	start := transformblend.NewMatrix4Translate(1, 0, 0)
	end := transformblend.NewMatrix4Scale(2, 3, 4)

	scene := filepath.Join(t.TempDir(), "blend.gltf")
	require.NoError(t, transformblend.ExportBlendScene(scene, start, end, transformblend.Blend(start, end, transformblend.NewBlendConfig(0.5))))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(flags)
	require.NoError(t, flags.Parse([]string{"--scene", scene, "--end-node", transformblend.ChangeNodeName}))

	opts, err := Load("", flags)
	require.NoError(t, err)

	matrices, err := opts.Matrices()
	require.NoError(t, err)
	assert.True(t, matrices.Start.Equals(start))
	assert.True(t, matrices.End.Equals(transformblend.Blend(start, end, transformblend.NewBlendConfig(0.5))))

}

func TestLoadEnvironment(t *testing.T) {

	t.Setenv("TRANSFORMBLEND_SCENE", "from-env.gltf")
	t.Setenv("TRANSFORMBLEND_END_NODE", "Other")

	opts, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "from-env.gltf", opts.Scene)
	assert.Equal(t, "Other", opts.EndNode)
	assert.Equal(t, transformblend.StartNodeName, opts.StartNode)

}

func TestLoadEnvironmentTransforms(t *testing.T) {

	path := writeConfig(t, "blend.yaml", "end:\n  translation: [9, 9, 9]\n  scale: [2, 2, 2]\n")

	t.Setenv("TRANSFORMBLEND_START_ANGLE", "90")
	t.Setenv("TRANSFORMBLEND_END_TRANSLATION", "1,2,3")

	opts, err := Load(path, nil)
	require.NoError(t, err)

	matrices, err := opts.Matrices()
	require.NoError(t, err)

	wantStart := transformblend.NewMatrix4TRS(
		transformblend.Vector3{},
		transformblend.NewQuaternionAxisAngle(transformblend.WorldUp, math32.ToRadians(90)),
		transformblend.NewVector3(1, 1, 1),
	)
	assert.True(t, matrices.Start.ApproxEquals(wantStart, 1e-5), "start matrix:\n%v", matrices.Start)

	// The environment replaces the file's translation, but leaves the file's scale alone
	assert.Equal(t, transformblend.NewVector3(1, 2, 3), matrices.End.Translation())
	assert.True(t, matrices.End.ScaleVector().Equals(transformblend.NewVector3(2, 2, 2)))

}

func TestLoadNaNFactor(t *testing.T) {

	t.Setenv("TRANSFORMBLEND_FACTOR", "NaN")

	_, err := Load("", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig), "unexpected error: %v", err)

}

func TestLoadTarget(t *testing.T) {

	opts, err := Load("", nil)
	require.NoError(t, err)

	_, ok := opts.TargetPoint()
	assert.False(t, ok)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(flags)
	require.NoError(t, flags.Parse([]string{"--target=1,2,3"}))

	opts, err = Load("", flags)
	require.NoError(t, err)

	target, ok := opts.TargetPoint()
	require.True(t, ok)
	assert.Equal(t, transformblend.NewVector3(1, 2, 3), target)

	opts, err = Load(writeConfig(t, "blend.yaml", "target: [4, 5, 6]\n"), nil)
	require.NoError(t, err)

	target, ok = opts.TargetPoint()
	require.True(t, ok)
	assert.Equal(t, transformblend.NewVector3(4, 5, 6), target)

	_, err = Load(writeConfig(t, "blend.yaml", "target: [4, 5]\n"), nil)
	assert.True(t, errors.Is(err, ErrInvalidConfig), "unexpected error: %v", err)

}
