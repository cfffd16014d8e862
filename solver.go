package rigid2d

import "math"

// ResolveContacts runs the sequential impulse solver over contacts, in
// list order: for each contact, every contact point gets an impulse pass,
// then the pair is separated positionally. Contacts are resolved
// independently of each other — there is no iteration across the list,
// just one velocity-impulse pass per contact point and one positional-split
// correction per contact.
func ResolveContacts(contacts []*Contact) {
	for _, c := range contacts {
		applyImpulses(c)
		moveApart(c)
	}
}

func applyImpulses(c *Contact) {
	a, b := c.A, c.B
	n := c.Normal

	for _, p := range c.Points {
		offsetA := p.Sub(a.Position).Perp()
		offsetB := p.Sub(b.Position).Perp()

		velA := a.Velocity.Add(offsetA.Scale(a.AngularVelocity))
		velB := b.Velocity.Add(offsetB.Scale(b.AngularVelocity))
		relativeVel := velA.Sub(velB)

		smashingSpeed := relativeVel.Dot(n)
		if smashingSpeed <= 0 {
			continue
		}

		e := math.Min(a.Restitution, b.Restitution)
		offsetAn := offsetA.Dot(n)
		offsetBn := offsetB.Dot(n)
		denom := a.InvMass + b.InvMass +
			offsetAn*offsetAn*a.InvMomentOfInertia +
			offsetBn*offsetBn*b.InvMomentOfInertia

		j := (1 + e) * smashingSpeed / denom

		impulseB := n.Scale(j)
		angularImpulseB := impulseB.Dot(offsetB)
		impulseA := impulseB.Neg()
		angularImpulseA := impulseA.Dot(offsetA)

		b.Velocity = b.Velocity.Add(impulseB.Scale(b.InvMass))
		b.AngularVelocity += angularImpulseB * b.InvMomentOfInertia
		a.Velocity = a.Velocity.Add(impulseA.Scale(a.InvMass))
		a.AngularVelocity += angularImpulseA * a.InvMomentOfInertia
	}
}

// moveApart separates the pair positionally along the contact normal by
// half the penetration depth (a fixed 0.5 correction fraction), split by
// mass ratio. The static-body
// branches are intentionally asymmetric with the general branch — see
// DESIGN.md's Open Question #2 — and are preserved exactly rather than
// "fixed."
func moveApart(c *Contact) {
	a, b := c.A, c.B
	correction := c.Normal.Scale(0.5 * c.Depth)

	switch {
	case a.Static:
		b.Position = b.Position.Add(correction)
	case b.Static:
		a.Position = a.Position.Sub(correction)
	default:
		total := a.Mass + b.Mass
		proportionA := b.Mass / total
		proportionB := a.Mass / total
		b.Position = b.Position.Add(correction.Scale(proportionB))
		a.Position = a.Position.Sub(correction.Scale(proportionA))
	}
}
