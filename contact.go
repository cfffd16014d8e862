package rigid2d

// Contact is the output of the narrow phase for a single interpenetrating
// pair: which body is the reference and which is incident, the collision
// normal (pointing from A toward B by convention), the penetration depth,
// and one or two world-space contact points. Contacts are recomputed from
// scratch every tick; none of this is persisted across ticks.
type Contact struct {
	A, B   *Body
	Normal Vector2D
	Depth  float64
	Points []Vector2D
}
