package rigid2d

import "testing"

func TestWorldGrowPairsEveryExistingBody(t *testing.T) {
	w := NewWorld()
	seed := NewCircularSeed(1)
	seed.SetDensity(1)

	a := w.GrowCircular(seed)
	b := w.GrowCircular(seed)
	c := w.GrowCircular(seed)

	if len(w.Bodies()) != 3 {
		t.Fatalf("expected 3 bodies, got %d", len(w.Bodies()))
	}
	if len(w.pairs) != 3 {
		t.Fatalf("expected 3 pairs (ab, ac, bc), got %d", len(w.pairs))
	}
	if !(w.pairs[0].Contains(a) && w.pairs[0].Contains(b)) {
		t.Error("first pair should be (a, b)")
	}
	if !(w.pairs[2].Contains(b) && w.pairs[2].Contains(c)) {
		t.Error("last pair should be (b, c)")
	}
}

func TestWorldDestroyRemovesBodyAndItsPairs(t *testing.T) {
	w := NewWorld()
	seed := NewCircularSeed(1)
	seed.SetDensity(1)

	a := w.GrowCircular(seed)
	b := w.GrowCircular(seed)
	w.GrowCircular(seed)

	w.Destroy(b)

	if len(w.Bodies()) != 2 {
		t.Fatalf("expected 2 bodies after destroy, got %d", len(w.Bodies()))
	}
	for _, body := range w.Bodies() {
		if body == b {
			t.Fatal("destroyed body is still present")
		}
	}
	for _, p := range w.pairs {
		if p.Contains(b) {
			t.Fatal("a pair referencing the destroyed body survived")
		}
	}
	_ = a
}

func TestWorldDestroyUnknownBodyIsNoOp(t *testing.T) {
	w := NewWorld()
	seed := NewCircularSeed(1)
	seed.SetDensity(1)
	w.GrowCircular(seed)

	stray := NewCircularBody(seed)
	w.Destroy(stray) // must not panic

	if len(w.Bodies()) != 1 {
		t.Fatalf("expected 1 body to remain, got %d", len(w.Bodies()))
	}
}

func TestWorldUpdateRunsIntegrateThenContactsThenSolve(t *testing.T) {
	w := NewWorld()

	floorSeed := NewPolygonSeed(square(5))
	floorSeed.MakeStatic()
	floor := w.GrowPolygon(floorSeed)
	floor.SetPosition(NewVector2D(0, -5))
	floor.refreshWorldShape()

	ballSeed := NewCircularSeed(1)
	ballSeed.SetDensity(1)
	ballSeed.Restitution = 0
	ball := w.GrowCircular(ballSeed)
	ball.SetPosition(NewVector2D(0, -0.5))

	for i := 0; i < 30; i++ {
		w.Update(1.0 / 60)
	}

	if ball.Position.Y < -2 {
		t.Errorf("ball should have come to rest on the floor, got Y=%v", ball.Position.Y)
	}
}

func TestWorldUpdateTwoStaticBodiesNeverContact(t *testing.T) {
	w := NewWorld()
	seedA := NewPolygonSeed(square(1))
	seedA.MakeStatic()
	seedB := NewPolygonSeed(square(1))
	seedB.MakeStatic()

	a := w.GrowPolygon(seedA)
	b := w.GrowPolygon(seedB)
	b.SetPosition(NewVector2D(0.5, 0))
	b.refreshWorldShape()

	startA, startB := a.Position, b.Position
	w.Update(1.0 / 60)

	if a.Position != startA || b.Position != startB {
		t.Error("two static bodies should never move, even while overlapping")
	}
}
