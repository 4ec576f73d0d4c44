// Package scene loads YAML scene descriptions: a camera plus a hierarchy of
// objects, each with local bounds and a local transform.
package scene

import (
	"errors"
	"fmt"
	gomath "math"
	"os"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-math/internal/camera"
	"github.com/Faultbox/midgard-math/internal/logger"
	"github.com/Faultbox/midgard-math/pkg/geom"
	"github.com/Faultbox/midgard-math/pkg/math"
)

// Errors returned while loading or querying a scene.
var (
	ErrDuplicateName = errors.New("duplicate object name")
	ErrUnknownParent = errors.New("unknown parent")
	ErrUnknownObject = errors.New("unknown object")
	ErrCycle         = errors.New("parent cycle")
	ErrEmptyScene    = errors.New("scene has no objects")
	ErrBadTransform  = errors.New("bad transform")
)

// Object is one node of the scene hierarchy.
type Object struct {
	Name   string
	Parent string
	Bounds geom.AABB // Local space
	Local  math.Mat4 // Object to parent space
}

// Scene is a parsed scene file.
type Scene struct {
	Camera  *camera.Camera
	Light   math.Vec3 // Zero when the file sets none
	Objects []*Object

	index map[string]*Object
}

// Load reads and parses a scene file. defaultOrder applies to rotations that
// do not name their own Euler order.
func Load(path string, defaultOrder math.EulerOrder) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	s, err := Parse(data, defaultOrder)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("scene loaded",
		zap.String("path", path),
		zap.Int("objects", len(s.Objects)),
		logger.Vec3("camera", s.Camera.Position),
	)
	return s, nil
}

// Parse decodes a scene from YAML.
func Parse(data []byte, defaultOrder math.EulerOrder) (*Scene, error) {
	var f sceneFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}

	cam, err := buildCamera(f.Camera, defaultOrder)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Camera: cam,
		index:  make(map[string]*Object, len(f.Objects)),
	}
	switch {
	case f.Light != nil && f.Sun != nil:
		return nil, errors.New("scene: set either light or sun, not both")
	case f.Light != nil:
		s.Light = f.Light.Vec3
	case f.Sun != nil:
		s.Light = camera.SunDirection(f.Sun.Longitude, f.Sun.Latitude)
	}

	for i, of := range f.Objects {
		if of.Name == "" {
			return nil, fmt.Errorf("object #%d: missing name", i)
		}
		if _, dup := s.index[of.Name]; dup {
			return nil, fmt.Errorf("object %q: %w", of.Name, ErrDuplicateName)
		}
		obj, err := buildObject(of, defaultOrder)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", of.Name, err)
		}
		s.Objects = append(s.Objects, obj)
		s.index[obj.Name] = obj
	}

	for _, obj := range s.Objects {
		if obj.Parent != "" && s.index[obj.Parent] == nil {
			return nil, fmt.Errorf("object %q: %w %q", obj.Name, ErrUnknownParent, obj.Parent)
		}
	}
	for _, obj := range s.Objects {
		if _, err := s.WorldMatrix(obj.Name); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func buildCamera(cf cameraFile, defaultOrder math.EulerOrder) (*camera.Camera, error) {
	cam := camera.New()
	order, err := orderOr(cf.Order, defaultOrder)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	cam.Order = order
	cam.Position = cf.Position.Vec3
	cam.Rotation = radians(cf.Rotation.Vec3)
	if cf.Fov != 0 {
		cam.FovY = cf.Fov * gomath.Pi / 180
	}
	if cf.Near != 0 {
		cam.Near = cf.Near
	}
	if cf.Far != 0 {
		cam.Far = cf.Far
	}
	if cf.Target != nil {
		if err := cam.LookAt(cf.Target.Vec3); err != nil {
			return nil, fmt.Errorf("camera: %w", err)
		}
	}
	// Surface bad projection parameters at load time rather than per frame.
	if _, err := cam.Projection(1); err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	return cam, nil
}

func buildObject(of objectFile, defaultOrder math.EulerOrder) (*Object, error) {
	if !of.Bounds.Min.set || !of.Bounds.Max.set {
		return nil, errors.New("bounds need both min and max")
	}
	obj := &Object{
		Name:   of.Name,
		Parent: of.Parent,
		Bounds: geom.Union(
			geom.NewAABB(of.Bounds.Min.Vec3, of.Bounds.Min.Vec3),
			geom.NewAABB(of.Bounds.Max.Vec3, of.Bounds.Max.Vec3),
		),
	}

	if len(of.Matrix) > 0 {
		if len(of.Matrix) != 16 {
			return nil, fmt.Errorf("%w: matrix has %d values, want 16", ErrBadTransform, len(of.Matrix))
		}
		var a [16]float64
		copy(a[:], of.Matrix)
		m := math.FromArray(a)
		// Explicit matrices come from hand-written files; make sure they can be
		// inverted before anything tries to.
		if _, err := m.InvertGeneral(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadTransform, err)
		}
		obj.Local = m
		return obj, nil
	}

	var rot math.Mat4
	switch {
	case len(of.Quaternion) > 0:
		if len(of.Quaternion) != 4 {
			return nil, fmt.Errorf("%w: quaternion has %d values, want 4", ErrBadTransform, len(of.Quaternion))
		}
		q := math.Quat{X: of.Quaternion[0], Y: of.Quaternion[1], Z: of.Quaternion[2], W: of.Quaternion[3]}
		rot = q.ToMat4()
	default:
		order, err := orderOr(of.Order, defaultOrder)
		if err != nil {
			return nil, err
		}
		rot = math.RotateEuler(radians(of.Rotation.Vec3), order)
	}

	scale := math.Vec3{X: 1, Y: 1, Z: 1}
	if of.Scale != nil {
		scale = of.Scale.Vec3
	}

	obj.Local = math.TranslateVec(of.Position.Vec3).Mul(rot).Mul(math.ScaleVec(scale))
	return obj, nil
}

func orderOr(name string, def math.EulerOrder) (math.EulerOrder, error) {
	if name == "" {
		return def, nil
	}
	return math.ParseEulerOrder(name)
}

func radians(deg math.Vec3) math.Vec3 {
	return deg.Scale(gomath.Pi / 180)
}

// Object returns the named object.
func (s *Scene) Object(name string) (*Object, error) {
	obj := s.index[name]
	if obj == nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownObject, name)
	}
	return obj, nil
}

// WorldMatrix returns the object-to-world transform of name, following the
// parent chain up to the root.
func (s *Scene) WorldMatrix(name string) (math.Mat4, error) {
	obj, err := s.Object(name)
	if err != nil {
		return math.Mat4{}, err
	}

	world := obj.Local
	visited := map[string]bool{obj.Name: true}
	for p := obj.Parent; p != ""; {
		if visited[p] {
			return math.Mat4{}, fmt.Errorf("object %q: %w through %q", name, ErrCycle, p)
		}
		visited[p] = true
		parent := s.index[p]
		if parent == nil {
			return math.Mat4{}, fmt.Errorf("object %q: %w %q", name, ErrUnknownParent, p)
		}
		world = parent.Local.Mul(world)
		p = parent.Parent
	}
	return world, nil
}

// WorldBounds returns the world-space box enclosing the object's local bounds.
func (s *Scene) WorldBounds(name string) (geom.AABB, error) {
	world, err := s.WorldMatrix(name)
	if err != nil {
		return geom.AABB{}, err
	}
	obj := s.index[name]
	return obj.Bounds.Transform(world), nil
}

// Bounds returns the union of all world bounds.
func (s *Scene) Bounds() (geom.AABB, error) {
	if len(s.Objects) == 0 {
		return geom.AABB{}, ErrEmptyScene
	}
	var out geom.AABB
	for i, obj := range s.Objects {
		b, err := s.WorldBounds(obj.Name)
		if err != nil {
			return geom.AABB{}, err
		}
		if i == 0 {
			out = b
			continue
		}
		out = out.Union(b)
	}
	return out, nil
}

// Children returns the names of the direct children of name, sorted.
func (s *Scene) Children(name string) []string {
	var out []string
	for _, obj := range s.Objects {
		if obj.Parent == name {
			out = append(out, obj.Name)
		}
	}
	sort.Strings(out)
	return out
}
