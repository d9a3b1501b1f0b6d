package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/solarlune/transformblend"
	"github.com/solarlune/transformblend/math32"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

func validateOutput(format string) error {
	if format != outputYAML && format != outputJSON {
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, outputYAML, outputJSON)
	}
	return nil
}

// transformReport describes a single Matrix4 along with its decomposed parts.
type transformReport struct {
	Matrix        [4][4]float32 `json:"matrix"`
	Translation   [3]float32    `json:"translation"`
	Rotation      [4]float32    `json:"rotation"`      // X, Y, Z, W
	RotationAngle float32       `json:"rotationAngle"` // Degrees away from no rotation
	Scale         [3]float32    `json:"scale"`
	Determinant   float32       `json:"determinant"`
}

func newTransformReport(m transformblend.Matrix4) transformReport {
	d := m.Decompose()
	return transformReport{
		Matrix:        m,
		Translation:   [3]float32{d.Translation.X, d.Translation.Y, d.Translation.Z},
		Rotation:      [4]float32{d.Rotation.X, d.Rotation.Y, d.Rotation.Z, d.Rotation.W},
		RotationAngle: math32.ToDegrees(transformblend.NewQuaternionIdentity().Angle(d.Rotation)),
		Scale:         [3]float32{d.Scale.X, d.Scale.Y, d.Scale.Z},
		Determinant:   m.Determinant(),
	}
}

type settingsReport struct {
	Factor                 float32 `json:"factor"`
	InterpolateRotation    bool    `json:"interpolateRotation"`
	InterpolateScale       bool    `json:"interpolateScale"`
	InterpolateTranslation bool    `json:"interpolateTranslation"`
	Slerp                  string  `json:"slerp"`
}

func newSettingsReport(cfg transformblend.BlendConfig) settingsReport {
	return settingsReport{
		Factor:                 cfg.Factor,
		InterpolateRotation:    cfg.InterpolateRotation,
		InterpolateScale:       cfg.InterpolateScale,
		InterpolateTranslation: cfg.InterpolateTranslation,
		Slerp:                  cfg.Slerp.String(),
	}
}

// write encodes the value given to out in the output format; sigs.k8s.io/yaml goes through the JSON field tags, so
// both formats share the same field names.
func write(out io.Writer, format string, value any) error {

	var data []byte
	var err error

	if format == outputJSON {
		data, err = json.MarshalIndent(value, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(value)
	}

	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	_, err = out.Write(data)
	return err

}
