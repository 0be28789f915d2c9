package physics

// PushBack moves position opposite to direction by distance and returns
// the new position. Used to shove the player off an obstacle after impact.
func PushBack(position, direction Vector3D, distance float64) Vector3D {
	return position.Add(direction.Normalize().Scale(-distance))
}

// Separate resolves an overlap by moving the first position away from the
// second along the line between them. Identical positions fall back to a
// fixed axis so the result is deterministic.
func Separate(position, obstacle Vector3D, distance float64) Vector3D {
	direction := position.Sub(obstacle)
	if direction.Length() > 0 {
		direction = direction.Normalize()
	} else {
		direction = Vector3D{X: 1}
	}
	return position.Add(direction.Scale(distance))
}
