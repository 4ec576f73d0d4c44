package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-math/pkg/math"
)

// vec3 decodes either a flow sequence [x, y, z] or a mapping {x: .., y: .., z: ..}.
type vec3 struct {
	math.Vec3
	set bool
}

func (v *vec3) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var xyz []float64
		if err := n.Decode(&xyz); err != nil {
			return err
		}
		if len(xyz) != 3 {
			return fmt.Errorf("line %d: want 3 components, got %d", n.Line, len(xyz))
		}
		v.Vec3 = math.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	case yaml.MappingNode:
		var m struct{ X, Y, Z float64 }
		if err := n.Decode(&m); err != nil {
			return err
		}
		v.Vec3 = math.Vec3{X: m.X, Y: m.Y, Z: m.Z}
	default:
		return fmt.Errorf("line %d: vector must be a sequence or mapping", n.Line)
	}
	v.set = true
	return nil
}

type boxFile struct {
	Min vec3 `yaml:"min"`
	Max vec3 `yaml:"max"`
}

type cameraFile struct {
	Position vec3    `yaml:"position"`
	Rotation vec3    `yaml:"rotation"` // Degrees
	Target   *vec3   `yaml:"target"`
	Order    string  `yaml:"order"`
	Fov      float64 `yaml:"fov"` // Vertical, degrees
	Near     float64 `yaml:"near"`
	Far      float64 `yaml:"far"`
}

type objectFile struct {
	Name       string    `yaml:"name"`
	Parent     string    `yaml:"parent"`
	Bounds     boxFile   `yaml:"bounds"`
	Position   vec3      `yaml:"position"`
	Rotation   vec3      `yaml:"rotation"` // Degrees
	Order      string    `yaml:"order"`
	Quaternion []float64 `yaml:"quaternion"` // x, y, z, w
	Scale      *vec3     `yaml:"scale"`
	Matrix     []float64 `yaml:"matrix"` // 16 values, row-major
}

// sunFile places a directional light by angles in degrees.
type sunFile struct {
	Longitude float64 `yaml:"longitude"`
	Latitude  float64 `yaml:"latitude"`
}

type sceneFile struct {
	Camera  cameraFile   `yaml:"camera"`
	Light   *vec3        `yaml:"light"`
	Sun     *sunFile     `yaml:"sun"`
	Objects []objectFile `yaml:"objects"`
}
