package rigid2d

// World owns every live body and the pairing between them, and drives one
// simulation tick at a time. It is the module's only stateful type; Body,
// Contact, and BodyPair are otherwise plain data passed between the free
// functions in this package.
type World struct {
	bodies []*Body
	pairs  []*BodyPair
}

func NewWorld() *World {
	return &World{}
}

// GrowCircular constructs a circular body from seed, adds it to the world,
// and pairs it against every body already present.
func (w *World) GrowCircular(seed CircularSeed) *Body {
	b := NewCircularBody(seed)
	w.addBody(b)
	return b
}

// GrowPolygon constructs a polygon body from seed, adds it to the world,
// and pairs it against every body already present.
func (w *World) GrowPolygon(seed PolygonSeed) *Body {
	b := NewPolygonBody(seed)
	w.addBody(b)
	return b
}

func (w *World) addBody(b *Body) {
	for _, existing := range w.bodies {
		w.pairs = append(w.pairs, NewBodyPair(existing, b))
	}
	w.bodies = append(w.bodies, b)
}

// Destroy removes body from the world along with every pair that
// references it. Destroying a body the world doesn't hold is a silent
// no-op.
func (w *World) Destroy(body *Body) {
	for i, b := range w.bodies {
		if b == body {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}

	kept := w.pairs[:0]
	for _, p := range w.pairs {
		if !p.Contains(body) {
			kept = append(kept, p)
		}
	}
	w.pairs = kept
}

// Bodies returns the world's live bodies. The returned slice aliases the
// world's internal storage and must not be retained across a call to
// GrowCircular, GrowPolygon, or Destroy.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Update advances the world by one tick of dt seconds: integrate motion,
// find this tick's contacts, then resolve them. The three phases always
// run in this order — a tick never resolves contacts found by a previous
// tick's geometry.
func (w *World) Update(dt float64) {
	Integrate(w.bodies, dt)
	contacts := ReportContacts(w.pairs)
	ResolveContacts(contacts)
}
