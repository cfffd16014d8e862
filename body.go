package rigid2d

import (
	"fmt"
	"math"
)

// Kind tags which shape variant a Body carries. Go has no need for a
// Body/CircularBody/PolygonBody class hierarchy: a single tagged struct
// with a small capability set (ContainsPoint, MinCoordinateAlong,
// integrate) covers both shapes without virtual tables.
type Kind int

const (
	KindCircle Kind = iota
	KindPolygon
)

// Body is a rigid 2D object: either a circle or a convex polygon. Fields
// that are shape-specific are documented as such; reading or mutating the
// wrong shape's fields is a programmer error the package does not guard
// against.
type Body struct {
	Kind Kind

	Position, Velocity, Acceleration Vector2D
	Angle, AngularVelocity, AngularAcceleration float64

	Mass, InvMass                   float64
	MomentOfInertia, InvMomentOfInertia float64
	Restitution                      float64
	Static                           bool

	// Circle-only.
	Radius, RadiusSquared float64

	// Polygon-only. relVertices/relNormals are the immutable body-local
	// offsets computed once at construction; Vertices/Normals are their
	// world-space images, refreshed by Integrate every tick.
	relVertices, relNormals []Vector2D
	Vertices, Normals       []Vector2D
}

// CircularSeed is the documented parameter bundle for building a circular
// Body. Zero-value fields mean zero except Restitution, which the
// constructor pre-populates to 0.5 since a Go float64 can't otherwise
// distinguish "unset" from "explicitly zero."
type CircularSeed struct {
	Position, Velocity             Vector2D
	Angle, AngularVelocity         float64
	Restitution                    float64
	Mass, MomentOfInertia          float64
	Radius                         float64
}

func NewCircularSeed(radius float64) CircularSeed {
	return CircularSeed{Restitution: 0.5, Radius: radius}
}

// SetDensity derives Mass and MomentOfInertia from the circle's area,
// matching CircularBodySeed.setBodyDensity in the original implementation.
func (s *CircularSeed) SetDensity(density float64) {
	area := math.Pi * s.Radius * s.Radius
	s.Mass = density * area
	s.MomentOfInertia = s.Mass * s.Radius * s.Radius / 2
}

func (s *CircularSeed) MakeStatic() {
	s.Mass = math.Inf(1)
	s.MomentOfInertia = math.Inf(1)
}

// PolygonSeed is the documented parameter bundle for building a polygon
// Body. RelativeVertices must be given in a winding order consistent with
// the package's -90 convention: construction rotates edge vectors by that
// convention to get outward normals, so relative vertices must be wound
// clockwise in a y-down frame (or counter-clockwise in y-up).
type PolygonSeed struct {
	Position, Velocity     Vector2D
	Angle, AngularVelocity float64
	Restitution            float64
	Mass, MomentOfInertia  float64
	RelativeVertices       []Vector2D
}

func NewPolygonSeed(relativeVertices []Vector2D) PolygonSeed {
	return PolygonSeed{Restitution: 0.5, RelativeVertices: relativeVertices}
}

// SetDensity derives Mass and MomentOfInertia from the shoelace-formula
// area/second-moment of the polygon, matching
// PolygonBodySeed.setBodyDensity in the original implementation.
func (s *PolygonSeed) SetDensity(density float64) {
	verts := s.RelativeVertices
	n := len(verts)
	var mass, inertia float64
	prev := n - 1
	for i := 0; i < n; i++ {
		a, b := verts[prev], verts[i]
		cross := a.Cross(b)
		mass += cross
		inertia += cross * (a.MagnitudeSquared() + b.MagnitudeSquared() + a.Dot(b))
		prev = i
	}
	s.Mass = mass * density / 2
	s.MomentOfInertia = inertia * density / 12
}

func (s *PolygonSeed) MakeStatic() {
	s.Mass = math.Inf(1)
	s.MomentOfInertia = math.Inf(1)
}

// NewCircularBody constructs a circular Body from a seed. Panics (a
// programmer error) on a non-positive radius, a non-positive mass on a
// body that isn't static, or a non-finite seed vector.
func NewCircularBody(seed CircularSeed) *Body {
	if seed.Radius <= 0 {
		panic(fmt.Errorf("rigid2d: circular body radius must be positive, got %g", seed.Radius))
	}
	if !seed.Position.IsFinite() || !seed.Velocity.IsFinite() {
		panic(fmt.Errorf("rigid2d: circular body seed vectors must be finite"))
	}
	b := &Body{
		Kind:            KindCircle,
		Position:        seed.Position,
		Velocity:        seed.Velocity,
		Angle:           seed.Angle,
		AngularVelocity: seed.AngularVelocity,
		Restitution:     seed.Restitution,
		Radius:          seed.Radius,
		RadiusSquared:   seed.Radius * seed.Radius,
	}
	setMassProperties(b, seed.Mass, seed.MomentOfInertia)
	return b
}

// NewPolygonBody constructs a polygon Body from a seed. Panics on fewer
// than 3 vertices, a non-convex hull, a non-finite vertex or seed vector,
// or a non-positive mass on a body that isn't static.
func NewPolygonBody(seed PolygonSeed) *Body {
	n := len(seed.RelativeVertices)
	if n < 3 {
		panic(fmt.Errorf("rigid2d: polygon body needs at least 3 vertices, got %d", n))
	}
	if !seed.Position.IsFinite() || !seed.Velocity.IsFinite() {
		panic(fmt.Errorf("rigid2d: polygon body seed vectors must be finite"))
	}
	for _, v := range seed.RelativeVertices {
		if !v.IsFinite() {
			panic(fmt.Errorf("rigid2d: polygon body vertices must be finite"))
		}
	}
	if !isConvex(seed.RelativeVertices) {
		panic(fmt.Errorf("rigid2d: polygon body vertices are not convex"))
	}

	relVertices := make([]Vector2D, n)
	copy(relVertices, seed.RelativeVertices)

	relNormals := make([]Vector2D, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		relNormals[i] = relVertices[i].Sub(relVertices[j]).Perp().Normalize()
	}

	b := &Body{
		Kind:            KindPolygon,
		Position:        seed.Position,
		Velocity:        seed.Velocity,
		Angle:           seed.Angle,
		AngularVelocity: seed.AngularVelocity,
		Restitution:     seed.Restitution,
		relVertices:     relVertices,
		relNormals:      relNormals,
		Vertices:        make([]Vector2D, n),
		Normals:         make([]Vector2D, n),
	}
	setMassProperties(b, seed.Mass, seed.MomentOfInertia)
	b.refreshWorldShape()
	return b
}

func setMassProperties(b *Body, mass, momentOfInertia float64) {
	b.Static = math.IsInf(mass, 1)
	if !b.Static && mass <= 0 {
		panic(fmt.Errorf("rigid2d: body mass must be positive for a non-static body, got %g", mass))
	}
	b.Mass = mass
	b.MomentOfInertia = momentOfInertia
	if b.Static {
		b.InvMass = 0
		b.InvMomentOfInertia = 0
	} else {
		b.InvMass = 1 / mass
		b.InvMomentOfInertia = 1 / momentOfInertia
	}
}

// isConvex reports whether a simple polygon given as an ordered vertex
// list turns consistently in one direction at every vertex.
func isConvex(vertices []Vector2D) bool {
	n := len(vertices)
	sign := 0.0
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		c := vertices[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

// SetPosition overwrites the body's position.
func (b *Body) SetPosition(p Vector2D) {
	b.Position = p
}

// SetVelocity overwrites the body's linear velocity.
func (b *Body) SetVelocity(v Vector2D) {
	b.Velocity = v
}

// SetAngle overwrites the body's angle (radians).
func (b *Body) SetAngle(angle float64) {
	b.Angle = angle
}

// SetAngularVelocity overwrites the body's angular velocity (radians/s).
func (b *Body) SetAngularVelocity(w float64) {
	b.AngularVelocity = w
}

// ApplyForce accumulates force/mass into the body's acceleration, cleared
// on the next Integrate call. Applying a force to a static body is a
// programmer error.
func (b *Body) ApplyForce(force Vector2D) {
	if b.Static {
		panic(fmt.Errorf("rigid2d: cannot apply force to a static body"))
	}
	b.Acceleration = b.Acceleration.Add(force.Scale(b.InvMass))
}

// ContainsPoint reports whether point lies inside the body's shape,
// dispatching on Kind. A point on a circle's boundary is not contained; a
// point on a polygon's edge is.
func (b *Body) ContainsPoint(point Vector2D) bool {
	switch b.Kind {
	case KindCircle:
		return b.Position.DistanceSquared(point) < b.RadiusSquared
	case KindPolygon:
		for i, n := range b.Normals {
			if point.Dot(n) > b.maxCoordinateAlongNormal(i) {
				return false
			}
		}
		return true
	default:
		panic("rigid2d: unknown body kind")
	}
}

// MinCoordinateAlong returns the minimum projection of the body's shape
// onto the given axis, dispatching on Kind. Used by the narrow phase's SAT
// probe.
func (b *Body) MinCoordinateAlong(axis Vector2D) float64 {
	switch b.Kind {
	case KindCircle:
		return b.Position.Dot(axis) - b.Radius
	case KindPolygon:
		minCoord := math.Inf(1)
		for _, v := range b.Vertices {
			if c := v.Dot(axis); c < minCoord {
				minCoord = c
			}
		}
		return minCoord
	default:
		panic("rigid2d: unknown body kind")
	}
}

func (b *Body) maxCoordinateAlongNormal(normalIndex int) float64 {
	return b.Vertices[normalIndex].Dot(b.Normals[normalIndex])
}

// vertexLeftOfNormal and vertexRightOfNormal name edge i's endpoints the
// way the narrow phase's incident-edge clipping consumes them: normal i
// is the outward normal of the edge running from vertexLeftOfNormal(i) to
// vertexRightOfNormal(i).
func (b *Body) vertexLeftOfNormal(normalIndex int) Vector2D {
	return b.Vertices[normalIndex]
}

func (b *Body) vertexRightOfNormal(normalIndex int) Vector2D {
	return b.Vertices[(normalIndex+1)%len(b.Vertices)]
}

// refreshWorldShape recomputes Vertices/Normals from the current
// position/angle. Only meaningful for polygons; a no-op otherwise.
func (b *Body) refreshWorldShape() {
	if b.Kind != KindPolygon {
		return
	}
	for i := range b.relVertices {
		b.Vertices[i] = b.relVertices[i].Rotate(b.Angle).Add(b.Position)
		b.Normals[i] = b.relNormals[i].Rotate(b.Angle)
	}
}
