package rigid2d

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// renderWorld renders every body's position, angle, and velocity as one
// line per body, in World.Bodies order. It exists purely so this test has
// a deterministic multi-line text artifact to diff.
func renderWorld(w *World) string {
	var lines []string
	for i, b := range w.Bodies() {
		lines = append(lines, fmt.Sprintf("body %d: pos=%s angle=%s vel=%s", i, b.Position, formatAngle(b.Angle), b.Velocity))
	}
	return strings.Join(lines, "\n")
}

func formatAngle(angle float64) string {
	return fmt.Sprintf("%g", angle)
}

// TestWorldUpdateGoldenTrace pins a short, fully deterministic simulation
// trace against a golden rendering, reporting any drift as a unified diff.
// The scenario is chosen so every number involved is exactly representable
// in binary floating point: a static floor far out of reach, and a ball
// drifting at constant velocity with no forces applied, so the only thing
// under test is World.Update's integrate/report/resolve pipeline itself.
func TestWorldUpdateGoldenTrace(t *testing.T) {
	w := NewWorld()

	floorSeed := NewPolygonSeed(square(1))
	floorSeed.MakeStatic()
	floor := w.GrowPolygon(floorSeed)
	floor.SetPosition(NewVector2D(0, -10))
	floor.refreshWorldShape()

	ballSeed := NewCircularSeed(1)
	ballSeed.SetDensity(1)
	ball := w.GrowCircular(ballSeed)
	ball.SetPosition(NewVector2D(0, 5))
	ball.SetVelocity(NewVector2D(0, -2))

	for i := 0; i < 3; i++ {
		w.Update(0.5)
	}

	got := renderWorld(w)
	want := "body 0: pos=(0, -10) angle=0 vel=(0, 0)\n" +
		"body 1: pos=(0, 2) angle=0 vel=(0, -2)"

	if got != want {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(got),
			FromFile: "want",
			ToFile:   "got",
			Context:  3,
		}
		text, _ := difflib.GetUnifiedDiffString(diff)
		t.Fatalf("world trace drifted from golden:\n%s", text)
	}
}
