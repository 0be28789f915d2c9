// pkg/physics/octree.go
package physics

// Box represents an axis-aligned bounding volume
type Box struct {
	Center Vector3D
	Width  float64
	Height float64
	Depth  float64
}

func (b Box) Contains(point Vector3D) bool {
	return point.X >= b.Center.X-b.Width/2 &&
		point.X < b.Center.X+b.Width/2 &&
		point.Y >= b.Center.Y-b.Height/2 &&
		point.Y < b.Center.Y+b.Height/2 &&
		point.Z >= b.Center.Z-b.Depth/2 &&
		point.Z < b.Center.Z+b.Depth/2
}

// Octree for spatial partitioning of entities in the world volume
type Octree struct {
	Boundary Box
	Capacity int
	Points   []Vector3D
	Objects  []interface{}
	Divided  bool
	Children [8]*Octree
}

// NewOctree creates a new octree with the given boundary and capacity
func NewOctree(boundary Box, capacity int) *Octree {
	return &Octree{
		Boundary: boundary,
		Capacity: capacity,
		Points:   make([]Vector3D, 0, capacity),
		Objects:  make([]interface{}, 0, capacity),
		Divided:  false,
	}
}

// Insert adds an object at the given point, subdividing when full
func (ot *Octree) Insert(point Vector3D, object interface{}) bool {
	if !ot.Boundary.Contains(point) {
		return false
	}

	if len(ot.Points) < ot.Capacity && !ot.Divided {
		ot.Points = append(ot.Points, point)
		ot.Objects = append(ot.Objects, object)
		return true
	}

	if !ot.Divided {
		ot.Subdivide()
	}

	for _, child := range ot.Children {
		if child.Insert(point, object) {
			return true
		}
	}
	return false
}

// Subdivide splits the octree into eight octants
func (ot *Octree) Subdivide() {
	c := ot.Boundary.Center
	w := ot.Boundary.Width / 2
	h := ot.Boundary.Height / 2
	d := ot.Boundary.Depth / 2

	i := 0
	for _, dx := range []float64{-w / 2, w / 2} {
		for _, dy := range []float64{-h / 2, h / 2} {
			for _, dz := range []float64{-d / 2, d / 2} {
				octant := Box{
					Center: Vector3D{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz},
					Width:  w,
					Height: h,
					Depth:  d,
				}
				ot.Children[i] = NewOctree(octant, ot.Capacity)
				i++
			}
		}
	}
	ot.Divided = true
}

// Query returns all objects whose points fall inside the given volume
func (ot *Octree) Query(area Box) []interface{} {
	found := make([]interface{}, 0)

	if !ot.intersects(area) {
		return found
	}

	for i, point := range ot.Points {
		if area.Contains(point) {
			found = append(found, ot.Objects[i])
		}
	}

	if !ot.Divided {
		return found
	}

	for _, child := range ot.Children {
		found = append(found, child.Query(area)...)
	}

	return found
}

func (ot *Octree) intersects(area Box) bool {
	return !(area.Center.X-area.Width/2 > ot.Boundary.Center.X+ot.Boundary.Width/2 ||
		area.Center.X+area.Width/2 < ot.Boundary.Center.X-ot.Boundary.Width/2 ||
		area.Center.Y-area.Height/2 > ot.Boundary.Center.Y+ot.Boundary.Height/2 ||
		area.Center.Y+area.Height/2 < ot.Boundary.Center.Y-ot.Boundary.Height/2 ||
		area.Center.Z-area.Depth/2 > ot.Boundary.Center.Z+ot.Boundary.Depth/2 ||
		area.Center.Z+area.Depth/2 < ot.Boundary.Center.Z-ot.Boundary.Depth/2)
}
