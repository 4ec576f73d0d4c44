// Package culling classifies scene objects against a camera frustum and,
// optionally, a directional light's shadow volume.
package culling

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-math/internal/camera"
	"github.com/Faultbox/midgard-math/internal/logger"
	"github.com/Faultbox/midgard-math/internal/scene"
	"github.com/Faultbox/midgard-math/pkg/geom"
	"github.com/Faultbox/midgard-math/pkg/math"
)

// Status is the outcome for one object.
type Status int

const (
	Visible Status = iota
	Culled
	// ShadowOnly objects are outside the view but may cast a shadow into it.
	ShadowOnly
)

func (s Status) String() string {
	switch s {
	case Visible:
		return "visible"
	case Culled:
		return "culled"
	case ShadowOnly:
		return "shadow"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Options controls a Culler.
type Options struct {
	Disabled bool // Mark everything visible

	// ShadowCasters keeps objects whose shadow along LightDirection can reach
	// the view frustum.
	ShadowCasters  bool
	LightDirection math.Vec3
}

// ObjectResult is the classification of one object.
type ObjectResult struct {
	Name   string
	Bounds geom.AABB // World space
	Status Status
	Plane  int // Index of the rejecting view plane, -1 if none
}

// Result holds one culling pass.
type Result struct {
	Objects []ObjectResult

	Visible    int
	Culled     int
	ShadowOnly int

	// PlaneRejections counts culled objects per rejecting view plane.
	PlaneRejections [6]int
}

// Culler tests scenes against a fixed camera.
type Culler struct {
	view   geom.Frustum
	aspect float64
	opts   Options
}

// New builds a culler for cam at the given aspect ratio.
func New(cam *camera.Camera, aspect float64, opts Options) (*Culler, error) {
	f, err := cam.Frustum(aspect)
	if err != nil {
		return nil, fmt.Errorf("culling: %w", err)
	}
	if opts.ShadowCasters && opts.LightDirection.Length() == 0 {
		return nil, fmt.Errorf("culling: shadow casters need a light direction")
	}
	return &Culler{view: f, aspect: aspect, opts: opts}, nil
}

// Frustum returns the view frustum in world space.
func (c *Culler) Frustum() geom.Frustum {
	return c.view
}

// Cull classifies every object of s.
func (c *Culler) Cull(s *scene.Scene) (*Result, error) {
	log := logger.Named("culling")
	res := &Result{Objects: make([]ObjectResult, 0, len(s.Objects))}

	var shadow *shadowVolume
	if c.opts.ShadowCasters && !c.opts.Disabled && len(s.Objects) > 0 {
		sv, err := newShadowVolume(c.opts.LightDirection, s)
		if err != nil {
			return nil, err
		}
		shadow = sv
	}

	for _, obj := range s.Objects {
		bounds, err := s.WorldBounds(obj.Name)
		if err != nil {
			return nil, err
		}

		r := ObjectResult{Name: obj.Name, Bounds: bounds, Status: Visible, Plane: -1}
		if !c.opts.Disabled {
			r.Plane = c.view.FirstRejecting(bounds)
			if r.Plane >= 0 {
				r.Status = Culled
				if shadow != nil && shadow.reaches(bounds, c.view) {
					r.Status = ShadowOnly
				}
			}
		}

		switch r.Status {
		case Visible:
			res.Visible++
		case Culled:
			res.Culled++
			res.PlaneRejections[r.Plane]++
		case ShadowOnly:
			res.ShadowOnly++
		}

		log.Debug("cull",
			zap.String("object", r.Name),
			zap.Stringer("status", r.Status),
			zap.String("plane", geom.PlaneName(r.Plane)),
			logger.AABB("bounds", bounds),
		)
		res.Objects = append(res.Objects, r)
	}

	log.Info("cull pass",
		zap.Int("objects", len(res.Objects)),
		zap.Int("visible", res.Visible),
		zap.Int("culled", res.Culled),
		zap.Int("shadow", res.ShadowOnly),
	)
	return res, nil
}

// Lookup returns the result for name.
func (r *Result) Lookup(name string) (ObjectResult, bool) {
	for _, o := range r.Objects {
		if o.Name == name {
			return o, true
		}
	}
	return ObjectResult{}, false
}

type shadowVolume struct {
	light   geom.Frustum
	extrude math.Vec3
}

func newShadowVolume(dir math.Vec3, s *scene.Scene) (*shadowVolume, error) {
	bounds, err := s.Bounds()
	if err != nil {
		return nil, err
	}
	light, err := camera.ShadowFrustum(dir, bounds)
	if err != nil {
		return nil, fmt.Errorf("culling: %w", err)
	}
	// Long enough to cross the whole scene.
	length := bounds.Size().Length()
	return &shadowVolume{light: light, extrude: dir.Normalize().Scale(length)}, nil
}

// reaches reports whether box is lit and its shadow, swept along the light
// direction, overlaps the view.
func (v *shadowVolume) reaches(box geom.AABB, view geom.Frustum) bool {
	if !v.light.InsideOrIntersecting(box) {
		return false
	}
	swept := box.Union(box.Transform(math.TranslateVec(v.extrude)))
	return view.InsideOrIntersecting(swept)
}
