package rigid2d

import "fmt"

// Integrate advances every body in bodies by dt seconds using
// semi-implicit Euler: velocity absorbs acceleration first, then position
// absorbs the updated velocity (and likewise for the angular pair).
// Acceleration and angular acceleration are cleared afterward so that
// ApplyForce's accumulation only affects a single tick.
//
// Static bodies receive the same routine: the contract is that nothing
// else ever gives them nonzero velocity or acceleration, not that
// Integrate special-cases them. A caller that violates that contract
// (e.g. by calling SetVelocity on a static body) gets undefined drift, not
// a panic — Integrate does not assert static bodies are motionless.
func Integrate(bodies []*Body, dt float64) {
	if dt <= 0 {
		panic(fmt.Errorf("rigid2d: Integrate requires dt > 0, got %g", dt))
	}
	for _, b := range bodies {
		b.Velocity = b.Velocity.Add(b.Acceleration.Scale(dt))
		b.Acceleration = Vector2D{}
		b.Position = b.Position.Add(b.Velocity.Scale(dt))

		b.AngularVelocity += b.AngularAcceleration * dt
		b.AngularAcceleration = 0
		b.Angle += b.AngularVelocity * dt

		b.refreshWorldShape()
	}
}
