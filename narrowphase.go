package rigid2d

import "math"

// ReportContacts runs the narrow phase over every live BodyPair, producing
// one Contact per pair that currently interpenetrates. It is pure and
// allocating: it reads body state, never mutates it, and never panics on
// a geometric degeneracy — an empty or short result is the only failure
// signal.
func ReportContacts(pairs []*BodyPair) []*Contact {
	contacts := make([]*Contact, 0, len(pairs))
	for _, pair := range pairs {
		if c := contactForPair(pair); c != nil {
			contacts = append(contacts, c)
		}
	}
	return contacts
}

func contactForPair(pair *BodyPair) *Contact {
	a, b := pair.A, pair.B
	if a.Static && b.Static {
		return nil
	}

	aCircle := a.Kind == KindCircle
	bCircle := b.Kind == KindCircle

	switch {
	case aCircle && bCircle:
		return circleCircleContact(a, b)
	case aCircle:
		return circlePolygonContact(a, b)
	case bCircle:
		return circlePolygonContact(b, a)
	default:
		return polygonPolygonContact(a, b)
	}
}

func circleCircleContact(a, b *Body) *Contact {
	delta := b.Position.Sub(a.Position)
	distSquared := delta.MagnitudeSquared()
	radiusSum := a.Radius + b.Radius
	if distSquared >= radiusSum*radiusSum {
		return nil
	}

	dist := math.Sqrt(distSquared)
	if dist == 0 {
		// Coincident centers: this package treats it as no contact rather
		// than fabricate a direction.
		return nil
	}

	depth := radiusSum - dist
	normal := delta.Scale(1 / dist)
	contactPoint := normal.Scale(-b.Radius).Add(b.Position)
	return &Contact{A: a, B: b, Normal: normal, Depth: depth, Points: []Vector2D{contactPoint}}
}

// circlePolygonContact runs the polygon-side SAT probe with polygon as the
// normal-considered body. circle and polygon are passed in whichever
// order the pair held them; the returned Contact always carries polygon
// as A (reference) and circle as B (incident).
func circlePolygonContact(circle, polygon *Body) *Contact {
	normalIndex, depth, ok := satProbe(polygon, circle)
	if !ok {
		return nil
	}
	normal := polygon.Normals[normalIndex]
	contactPoint := normal.Scale(-circle.Radius).Add(circle.Position)
	return &Contact{A: polygon, B: circle, Normal: normal, Depth: depth, Points: []Vector2D{contactPoint}}
}

func polygonPolygonContact(a, b *Body) *Contact {
	indexA, depthA, okA := satProbe(a, b)
	if !okA {
		return nil
	}
	indexB, depthB, okB := satProbe(b, a)
	if !okB {
		return nil
	}

	var reference, incident *Body
	var referenceIndex, incidentIndex int
	var depth float64

	// Tie-break: A is chosen as reference unless B's depth is strictly
	// smaller. See DESIGN.md for the rationale on exact ties.
	if depthB < depthA {
		reference, incident = b, a
		referenceIndex, incidentIndex = indexB, indexA
		depth = depthB
	} else {
		reference, incident = a, b
		referenceIndex, incidentIndex = indexA, indexB
		depth = depthA
	}

	referenceLeft := reference.vertexLeftOfNormal(referenceIndex)
	referenceRight := reference.vertexRightOfNormal(referenceIndex)
	incidentLeft := incident.vertexLeftOfNormal(incidentIndex)
	incidentRight := incident.vertexRightOfNormal(incidentIndex)
	referenceNormal := reference.Normals[referenceIndex]

	points := clipIncidentEdge(referenceLeft, referenceRight, incidentLeft, incidentRight, referenceNormal)
	return &Contact{A: reference, B: incident, Normal: referenceNormal, Depth: depth, Points: points}
}

// satProbe measures, for each edge normal of reference, the gap between
// reference's extent along that normal and other's minimum extent along
// the same normal. A non-positive gap on any axis means the axis
// separates the shapes. The minimum positive gap (lowest index wins on
// exact ties, since the comparison is a strict "<") is the candidate
// (normal, depth) for this probe.
func satProbe(reference, other *Body) (normalIndex int, depth float64, ok bool) {
	depth = math.Inf(1)
	for i, n := range reference.Normals {
		edgeCoord := reference.maxCoordinateAlongNormal(i)
		minCoord := other.MinCoordinateAlong(n)
		proposedDepth := edgeCoord - minCoord
		if proposedDepth <= 0 {
			return 0, 0, false
		}
		if proposedDepth < depth {
			depth = proposedDepth
			normalIndex = i
		}
	}
	return normalIndex, depth, true
}

// clipIncidentEdge trims the incident polygon's edge to the reference
// edge's span (Sutherland-Hodgman style, against exactly two side planes),
// then drops at most one resulting point that still lies on the
// non-penetrating side of the reference face. Returns 1 or 2 points.
func clipIncidentEdge(referenceLeft, referenceRight, incidentLeft, incidentRight, referenceNormal Vector2D) []Vector2D {
	tangent := referenceRight.Sub(referenceLeft).Normalize()

	pointNearRight := constrainPoint(incidentRight, referenceLeft, tangent, incidentLeft)
	pointNearLeft := constrainPoint(incidentLeft, referenceRight, tangent.Neg(), incidentRight)

	return removeOnePointAtMost(pointNearLeft, pointNearRight, referenceLeft, referenceNormal.Neg())
}

// constrainPoint clips point against the half-plane through edgePoint whose
// kept side lies along sideNormal, replacing it with the point on the
// segment toward constrainTowards that lies exactly on the plane if it fell
// outside.
func constrainPoint(point, edgePoint, sideNormal, constrainTowards Vector2D) Vector2D {
	edgeCoord := edgePoint.Dot(sideNormal)
	relative := point.Dot(sideNormal) - edgeCoord
	if relative >= 0 {
		return point
	}
	delta := constrainTowards.Sub(point)
	t := relative / (relative - (constrainTowards.Dot(sideNormal) - edgeCoord))
	return point.Add(delta.Scale(t))
}

// removeOnePointAtMost drops pointA or pointB if it lies on the
// non-penetrating side of the reference face (its coordinate along
// sideNormal, which points into the reference body, is below edgePoint's),
// removing at most one of the two.
func removeOnePointAtMost(pointA, pointB, edgePoint, sideNormal Vector2D) []Vector2D {
	edgeCoord := edgePoint.Dot(sideNormal)
	if pointA.Dot(sideNormal) < edgeCoord {
		return []Vector2D{pointB}
	}
	if pointB.Dot(sideNormal) < edgeCoord {
		return []Vector2D{pointA}
	}
	return []Vector2D{pointA, pointB}
}
