// Package config loads the blend settings shared by the transformblend command line tool and the viewer.
// Settings come from (in increasing priority) defaults, a YAML or JSON config file, TRANSFORMBLEND_* environment
// variables, and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/solarlune/transformblend"
	"github.com/solarlune/transformblend/math32"
)

// EnvPrefix is prepended to setting names to form environment variable names; "start-node" is read from
// TRANSFORMBLEND_START_NODE.
const EnvPrefix = "TRANSFORMBLEND"

// Setting keys, which double as flag names.
const (
	KeyFactor      = "factor"
	KeyRotation    = "rotation"
	KeyScale       = "scale"
	KeyTranslation = "translation"
	KeySlerp       = "slerp"
	KeyScene       = "scene"
	KeyStartNode   = "start-node"
	KeyEndNode     = "end-node"
	KeyTarget      = "target"
)

// envKeys lists every setting that can be read from the environment. Nested transform values are named with a dot, so
// "start.translation" is read from TRANSFORMBLEND_START_TRANSLATION as comma-separated values.
var envKeys = []string{
	KeyFactor, KeyRotation, KeyScale, KeyTranslation, KeySlerp, KeyScene, KeyStartNode, KeyEndNode, KeyTarget,
	"start.translation", "start.axis", "start.angle", "start.scale", "start.matrix",
	"end.translation", "end.axis", "end.angle", "end.scale", "end.matrix",
}

var envKeyReplacer = strings.NewReplacer("-", "_", ".", "_")

var ErrInvalidConfig = errors.New("invalid config")

// Transform describes a Matrix4 either as translation / axis-angle rotation / scale values, or as
// 16 raw values laid out row by row. If Matrix is set, the other fields are ignored.
type Transform struct {
	Translation []float32 `mapstructure:"translation"`
	Axis        []float32 `mapstructure:"axis"`
	Angle       float32   `mapstructure:"angle"` // Degrees
	Scale       []float32 `mapstructure:"scale"`
	Matrix      []float32 `mapstructure:"matrix"`
}

// Options holds everything needed to run a blend.
type Options struct {
	Factor      float32 `mapstructure:"factor"`
	Rotation    bool    `mapstructure:"rotation"`
	Scale       bool    `mapstructure:"scale"`
	Translation bool    `mapstructure:"translation"`
	Slerp       string  `mapstructure:"slerp"`

	// Scene is an optional glTF file to read the start and end matrices from, using the named nodes.
	Scene     string `mapstructure:"scene"`
	StartNode string `mapstructure:"start-node"`
	EndNode   string `mapstructure:"end-node"`

	// Start and End are used when no Scene is given.
	Start Transform `mapstructure:"start"`
	End   Transform `mapstructure:"end"`

	// Target is an optional point that the start translation is lerped towards by the factor, on its own.
	Target []float32 `mapstructure:"target"`
}

// AddFlags registers the blend setting flags on the flag set given.
func AddFlags(flags *pflag.FlagSet) {
	flags.Float32(KeyFactor, 0.5, "Blend factor, from 0 (start) to 1 (end)")
	flags.Bool(KeyRotation, true, "Interpolate rotation")
	flags.Bool(KeyScale, true, "Interpolate scale")
	flags.Bool(KeyTranslation, true, "Interpolate translation")
	flags.String(KeySlerp, "shortest", "Slerp mode for opposing quaternions (shortest, literal)")
	flags.String(KeyScene, "", "glTF file to read the start and end matrices from")
	flags.String(KeyStartNode, transformblend.StartNodeName, "Name of the start node in the glTF scene")
	flags.String(KeyEndNode, transformblend.EndNodeName, "Name of the end node in the glTF scene")
	flags.StringSlice(KeyTarget, nil, "Point to lerp the start translation towards, as x,y,z")
}

// EnvName returns the environment variable a setting key is read from.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(envKeyReplacer.Replace(key))
}

// bindEnvironmentVariables registers every setting with the environment explicitly; viper only unmarshals keys it
// already knows about, so settings without a default would otherwise be skipped.
func bindEnvironmentVariables(v *viper.Viper) error {
	for _, key := range envKeys {
		if err := v.BindEnv(key, EnvName(key)); err != nil {
			return err
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyFactor, 0.5)
	v.SetDefault(KeyRotation, true)
	v.SetDefault(KeyScale, true)
	v.SetDefault(KeyTranslation, true)
	v.SetDefault(KeySlerp, "shortest")
	v.SetDefault(KeyStartNode, transformblend.StartNodeName)
	v.SetDefault(KeyEndNode, transformblend.EndNodeName)
}

// Load reads the Options from the config file at path (if path isn't empty), the environment, and the flag set
// (if it isn't nil), and validates them.
func Load(path string, flags *pflag.FlagSet) (Options, error) {

	v := viper.New()
	setDefaults(v)

	if err := bindEnvironmentVariables(v); err != nil {
		return Options{}, fmt.Errorf("config: bind environment: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if flags != nil {
		// Only flags the user actually set should override the file; unset flags fall back to the viper defaults.
		var bindErr error
		flags.Visit(func(f *pflag.Flag) {
			if bindErr == nil {
				bindErr = v.BindPFlag(f.Name, f)
			}
		})
		if bindErr != nil {
			return Options{}, fmt.Errorf("config: bind flags: %w", bindErr)
		}
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("config: decode: %w", err)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}

	return opts, nil

}

// Validate checks that the Options can be turned into a blend.
func (opts Options) Validate() error {

	if math32.IsNaN(opts.Factor) {
		return fmt.Errorf("%w: factor is NaN", ErrInvalidConfig)
	}

	if _, err := transformblend.ParseSlerpMode(opts.Slerp); err != nil {
		return fmt.Errorf("%w: slerp %q: %w", ErrInvalidConfig, opts.Slerp, err)
	}

	if opts.Scene != "" && (opts.StartNode == "" || opts.EndNode == "") {
		return fmt.Errorf("%w: a scene needs both a start and an end node name", ErrInvalidConfig)
	}

	if err := opts.Start.validate(); err != nil {
		return fmt.Errorf("%w: start: %w", ErrInvalidConfig, err)
	}

	if err := opts.End.validate(); err != nil {
		return fmt.Errorf("%w: end: %w", ErrInvalidConfig, err)
	}

	if opts.Target != nil && len(opts.Target) != 3 {
		return fmt.Errorf("%w: target needs 3 values, got %d", ErrInvalidConfig, len(opts.Target))
	}

	return nil

}

// BlendConfig returns the blend settings as a transformblend.BlendConfig.
func (opts Options) BlendConfig() transformblend.BlendConfig {
	// Validate has already rejected unknown modes.
	mode, _ := transformblend.ParseSlerpMode(opts.Slerp)
	return transformblend.BlendConfig{
		Factor:                 opts.Factor,
		InterpolateRotation:    opts.Rotation,
		InterpolateScale:       opts.Scale,
		InterpolateTranslation: opts.Translation,
		Slerp:                  mode,
	}
}

// Matrices returns the start and end matrices, either read from the glTF scene or built from the Start and End transforms.
func (opts Options) Matrices() (transformblend.SceneMatrices, error) {

	if opts.Scene != "" {
		return transformblend.LoadSceneMatrices(opts.Scene, opts.StartNode, opts.EndNode)
	}

	return transformblend.SceneMatrices{
		Start: opts.Start.Matrix4(),
		End:   opts.End.Matrix4(),
	}, nil

}

// TargetPoint returns the target point, and whether one was set.
func (opts Options) TargetPoint() (transformblend.Vector3, bool) {
	if len(opts.Target) != 3 {
		return transformblend.Vector3{}, false
	}
	return vector3(opts.Target, transformblend.Vector3{}), true
}

func (t Transform) validate() error {

	if t.Matrix != nil && len(t.Matrix) != 16 {
		return fmt.Errorf("matrix needs 16 values, got %d", len(t.Matrix))
	}

	for name, values := range map[string][]float32{
		"translation": t.Translation,
		"axis":        t.Axis,
		"scale":       t.Scale,
	} {
		if values != nil && len(values) != 3 {
			return fmt.Errorf("%s needs 3 values, got %d", name, len(values))
		}
	}

	return nil

}

// Matrix4 builds the Matrix4 the Transform describes. Missing values default to no translation, no rotation, and a scale of 1.
func (t Transform) Matrix4() transformblend.Matrix4 {

	if len(t.Matrix) == 16 {
		return transformblend.NewMatrix4FromFloats([16]float32(t.Matrix))
	}

	translation := vector3(t.Translation, transformblend.Vector3{})
	scale := vector3(t.Scale, transformblend.NewVector3(1, 1, 1))
	rotation := transformblend.NewQuaternionAxisAngle(vector3(t.Axis, transformblend.WorldUp), math32.ToRadians(t.Angle))

	return transformblend.NewMatrix4TRS(translation, rotation, scale)

}

func vector3(values []float32, fallback transformblend.Vector3) transformblend.Vector3 {
	if len(values) != 3 {
		return fallback
	}
	return transformblend.NewVector3(values[0], values[1], values[2])
}
