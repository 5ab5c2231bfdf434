package minirt

import "math"

// surfaceBias offsets secondary ray origins off the surface they leave.
const surfaceBias = 1e-4

// nearest returns the closest sphere hit by r, or nil.
func (s *Scene) nearest(r Ray) (float64, *Sphere) {
	best := math.Inf(1)
	var hit *Sphere
	for i := range s.spheres {
		if t, ok := s.spheres[i].Intersect(r); ok && t < best {
			best, hit = t, &s.spheres[i]
		}
	}
	return best, hit
}

// occluded reports whether anything lies on r closer than dist.
func (s *Scene) occluded(r Ray, dist float64) bool {
	for i := range s.spheres {
		if t, ok := s.spheres[i].Intersect(r); ok && t < dist {
			return true
		}
	}
	return false
}

// trace returns the color seen along r. depth counts the secondary bounces
// already taken; recursion stops at the scene's recursion limit.
func (s *Scene) trace(r Ray, depth int) Color {
	t, sp := s.nearest(r)
	if sp == nil {
		return s.background
	}

	p := r.At(t)
	n := sp.Normal(p)
	inside := n.Dot(r.Direction) > 0
	if inside {
		n = n.Neg()
	}
	m := &sp.Material

	c := s.ambient.Mul(m.Diffuse)
	c = c.Add(s.direct(p, n, r.Direction.Neg(), m))

	if depth >= s.recursionLimit {
		return c
	}

	if !m.Specular.IsBlack() {
		refl := Ray{Origin: p.Add(n.Mul(surfaceBias)), Direction: r.Direction.Reflect(n)}
		c = c.Add(m.Specular.Mul(s.trace(refl, depth+1)))
	}

	if m.Transparency > 0 {
		eta := 1 / m.RefractiveIndex
		if inside {
			eta = m.RefractiveIndex
		}
		if d, ok := r.Direction.Refract(n, eta); ok {
			refr := Ray{Origin: p.Sub(n.Mul(surfaceBias)), Direction: d.Normalize()}
			c = c.Lerp(s.trace(refr, depth+1), m.Transparency)
		}
	}
	return c
}

// direct sums the diffuse and specular contribution of every light that is
// visible from p.
func (s *Scene) direct(p, n, view Vec3, m *Material) Color {
	var c Color
	origin := p.Add(n.Mul(surfaceBias))
	for _, l := range s.lights {
		toLight := l.Position.Sub(p)
		dist := toLight.Length()
		if dist == 0 {
			continue
		}
		dir := toLight.Mul(1 / dist)

		nl := n.Dot(dir)
		if nl <= 0 {
			continue
		}
		if s.occluded(Ray{Origin: origin, Direction: dir}, dist) {
			continue
		}

		c = c.Add(m.Diffuse.Mul(l.Color).Scale(nl))
		if m.Shininess > 0 {
			if rv := dir.Neg().Reflect(n).Dot(view); rv > 0 {
				c = c.Add(m.Specular.Mul(l.Color).Scale(math.Pow(rv, m.Shininess)))
			}
		}
	}
	return c
}
