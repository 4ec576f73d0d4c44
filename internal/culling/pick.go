package culling

import (
	"github.com/Faultbox/midgard-math/internal/camera"
	"github.com/Faultbox/midgard-math/internal/scene"
	"github.com/Faultbox/midgard-math/pkg/geom"
)

// Hit is a picked object.
type Hit struct {
	Name     string
	Distance float64
	Ray      geom.Ray
}

// Pick casts a ray through pixel (px, py) and returns the nearest object whose
// world bounds it hits. ok is false when nothing is hit.
func Pick(s *scene.Scene, cam *camera.Camera, px, py float64, w, h int) (hit Hit, ok bool, err error) {
	ray, err := cam.Ray(px, py, w, h)
	if err != nil {
		return Hit{}, false, err
	}
	hit.Ray = ray

	for _, obj := range s.Objects {
		bounds, err := s.WorldBounds(obj.Name)
		if err != nil {
			return Hit{}, false, err
		}
		t, hitBox := ray.IntersectAABB(bounds)
		if !hitBox {
			continue
		}
		if !ok || t < hit.Distance {
			hit.Name, hit.Distance, ok = obj.Name, t, true
		}
	}
	return hit, ok, nil
}
