// pkg/entity/model.go
package entity

import (
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-starfighter/pkg/physics"
)

// WireframeModel represents a 3D object as vertices and edges only,
// rendered without filled faces.
type WireframeModel struct {
	Vertices []physics.Vector3D
	Edges    [][2]int
}

func v(x, y, z float64) physics.Vector3D {
	return physics.Vector3D{X: x, Y: y, Z: z}
}

// PlayerShipModel creates the player spaceship wireframe
func PlayerShipModel() *WireframeModel {
	return &WireframeModel{
		Vertices: []physics.Vector3D{
			// Front nose
			v(0, 0, 2),
			// Body
			v(-1, -0.5, 0), v(1, -0.5, 0), v(1, 0.5, 0), v(-1, 0.5, 0),
			// Rear
			v(-1, -0.5, -2), v(1, -0.5, -2), v(1, 0.5, -2), v(-1, 0.5, -2),
			// Wings
			v(-3, -0.5, -1), v(3, -0.5, -1),
			// Cockpit
			v(0, 1, 0.5),
		},
		Edges: [][2]int{
			// Front to body
			{0, 1}, {0, 2}, {0, 3}, {0, 4},
			// Body square
			{1, 2}, {2, 3}, {3, 4}, {4, 1},
			// Body to rear
			{1, 5}, {2, 6}, {3, 7}, {4, 8},
			// Rear square
			{5, 6}, {6, 7}, {7, 8}, {8, 5},
			// Wings
			{1, 9}, {5, 9}, {2, 10}, {6, 10},
			// Cockpit
			{3, 11}, {4, 11}, {11, 0},
		},
	}
}

// ModelBuilder constructs a wireframe model
type ModelBuilder func() *WireframeModel

// StandardEnemyModel creates the standard enemy ship
func StandardEnemyModel() *WireframeModel {
	return &WireframeModel{
		Vertices: []physics.Vector3D{
			// Front nose
			v(0, 0, 2.0),
			// Main hull, top
			v(-0.7, 0.4, 0), v(0.7, 0.4, 0), v(0.7, 0.4, -0.5), v(-0.7, 0.4, -0.5),
			// Main hull, bottom
			v(-0.7, -0.4, 0), v(0.7, -0.4, 0), v(0.7, -0.4, -0.5), v(-0.7, -0.4, -0.5),
			// Rear engine block
			v(-0.5, 0.3, -1.2), v(0.5, 0.3, -1.2), v(0.5, -0.3, -1.2), v(-0.5, -0.3, -1.2),
			// Rear point
			v(0, 0, -2.0),
		},
		Edges: [][2]int{
			// Nose to front hull
			{0, 1}, {0, 2}, {0, 5}, {0, 6},
			// Fuselage
			{1, 5}, {2, 6}, {3, 7}, {4, 8},
			// Top and bottom faces
			{1, 4}, {4, 3}, {3, 2},
			{5, 8}, {8, 7}, {7, 6},
			// Hull to engine
			{1, 9}, {2, 10}, {5, 12}, {6, 11},
			// Engine block
			{9, 10}, {10, 11}, {11, 12}, {12, 9},
			// Engine to tail
			{9, 13}, {10, 13}, {11, 13}, {12, 13},
		},
	}
}

// ScoutEnemyModel creates the scout enemy (fast, light)
func ScoutEnemyModel() *WireframeModel {
	return &WireframeModel{
		Vertices: []physics.Vector3D{
			// Front nose
			v(0, 0, 1.2),
			// Wing top layer
			v(-1.0, 0.2, -0.5), v(1.0, 0.2, -0.5),
			// Wing bottom layer
			v(-1.0, -0.2, -0.5), v(1.0, -0.2, -0.5),
			// Vertical fins
			v(0, 0.5, -0.5), v(0, -0.5, -0.5),
			// Rear engine center
			v(0, 0, -0.5),
		},
		Edges: [][2]int{
			// Nose connections
			{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {0, 6},
			// Wing thickness
			{1, 3}, {2, 4},
			// Rear structure
			{1, 5}, {2, 5}, {3, 6}, {4, 6},
			// Cross bracing
			{5, 7}, {6, 7}, {1, 7}, {2, 7}, {3, 7}, {4, 7},
		},
	}
}

// HeavyEnemyModel creates the heavy enemy (tank-like)
func HeavyEnemyModel() *WireframeModel {
	return &WireframeModel{
		Vertices: []physics.Vector3D{
			// Main hull front
			v(-0.5, 0.5, 1), v(0.5, 0.5, 1), v(0.5, -0.5, 1), v(-0.5, -0.5, 1),
			// Main hull rear
			v(-0.8, 0.8, -1), v(0.8, 0.8, -1), v(0.8, -0.8, -1), v(-0.8, -0.8, -1),
			// Center spike
			v(0, 0, 1.5),
		},
		Edges: [][2]int{
			// Front face
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			// Rear face
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			// Connecting
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
			// Center spike
			{8, 0}, {8, 1}, {8, 2}, {8, 3},
		},
	}
}

// InterceptorEnemyModel creates the interceptor (forward-swept wings)
func InterceptorEnemyModel() *WireframeModel {
	return &WireframeModel{
		Vertices: []physics.Vector3D{
			// Body
			v(0, 0, 1.5),
			v(-0.3, 0, 0.5), v(0.3, 0, 0.5), v(0, 0.2, 0.5), v(0, -0.2, 0.5),
			// Wing tips, forward swept
			v(-1.5, 0, 1.0), v(1.5, 0, 1.0),
			// Rear
			v(-0.5, 0, -1.0), v(0.5, 0, -1.0), v(0, 0, -1.2),
		},
		Edges: [][2]int{
			// Nose cone
			{0, 1}, {0, 2}, {0, 3}, {0, 4},
			// Mid body
			{1, 2}, {3, 4}, {1, 3}, {2, 4}, {2, 3}, {1, 4},
			// Body to rear
			{1, 7}, {2, 8}, {3, 9}, {4, 9},
			// Wings
			{7, 5}, {5, 1},
			{8, 6}, {6, 2},
		},
	}
}

// BomberEnemyModel creates the bomber (wide wingspan, heavy)
func BomberEnemyModel() *WireframeModel {
	return &WireframeModel{
		Vertices: []physics.Vector3D{
			// Center fuselage
			v(0, 0, 1.0),
			v(-0.5, 0.2, -0.5), v(0.5, 0.2, -0.5), v(0.5, -0.2, -0.5), v(-0.5, -0.2, -0.5),
			// Wings
			v(-2.5, 0, -0.5), v(2.5, 0, -0.5), v(-2.5, 0, 0), v(2.5, 0, 0),
		},
		Edges: [][2]int{
			// Fuselage
			{0, 1}, {0, 2}, {0, 3}, {0, 4},
			{1, 2}, {2, 3}, {3, 4}, {4, 1},
			// Wings
			{1, 5}, {5, 7}, {7, 4},
			{2, 6}, {6, 8}, {8, 3},
		},
	}
}

// FrigateEnemyModel creates the frigate (vertical structure)
func FrigateEnemyModel() *WireframeModel {
	return &WireframeModel{
		Vertices: []physics.Vector3D{
			// Top spike
			v(0, 1.5, 0),
			// Top section
			v(-0.3, 0.5, 0.3), v(0.3, 0.5, 0.3), v(0.3, 0.5, -0.3), v(-0.3, 0.5, -0.3),
			// Bottom section
			v(-0.3, -0.5, 0.3), v(0.3, -0.5, 0.3), v(0.3, -0.5, -0.3), v(-0.3, -0.5, -0.3),
			// Bottom spike
			v(0, -1.5, 0),
		},
		Edges: [][2]int{
			// Top spike
			{0, 1}, {0, 2}, {0, 3}, {0, 4},
			// Top ring
			{1, 2}, {2, 3}, {3, 4}, {4, 1},
			// Vertical spars
			{1, 5}, {2, 6}, {3, 7}, {4, 8},
			// Bottom ring
			{5, 6}, {6, 7}, {7, 8}, {8, 5},
			// Bottom spike
			{9, 5}, {9, 6}, {9, 7}, {9, 8},
		},
	}
}

// StealthEnemyModel creates the stealth enemy (flat, triangular)
func StealthEnemyModel() *WireframeModel {
	return &WireframeModel{
		Vertices: []physics.Vector3D{
			// Nose
			v(0, 0, 1.5),
			// Rear corners
			v(-1.2, 0, -0.5), v(1.2, 0, -0.5),
			// Top and bottom mid
			v(0, 0.2, -0.5), v(0, -0.2, -0.5),
		},
		Edges: [][2]int{
			// Outline
			{0, 1}, {1, 3}, {3, 2}, {2, 0}, {1, 4}, {4, 2},
			// Central spine
			{0, 3}, {0, 4}, {3, 4},
		},
	}
}

// AssaultEnemyModel creates the assault enemy (twin hull)
func AssaultEnemyModel() *WireframeModel {
	return &WireframeModel{
		Vertices: []physics.Vector3D{
			// Left hull front
			v(-0.8, -0.2, 1), v(-0.4, -0.2, 1), v(-0.4, 0.2, 1), v(-0.8, 0.2, 1),
			// Left hull rear
			v(-0.8, -0.2, -1), v(-0.4, -0.2, -1), v(-0.4, 0.2, -1), v(-0.8, 0.2, -1),
			// Right hull front
			v(0.4, -0.2, 1), v(0.8, -0.2, 1), v(0.8, 0.2, 1), v(0.4, 0.2, 1),
			// Right hull rear
			v(0.4, -0.2, -1), v(0.8, -0.2, -1), v(0.8, 0.2, -1), v(0.4, 0.2, -1),
			// Connecting strut
			v(-0.4, 0, 0), v(0.4, 0, 0),
		},
		Edges: [][2]int{
			// Left hull
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
			// Right hull
			{8, 9}, {9, 10}, {10, 11}, {11, 8},
			{12, 13}, {13, 14}, {14, 15}, {15, 12},
			{8, 12}, {9, 13}, {10, 14}, {11, 15},
			// Strut
			{16, 17},
			{16, 1}, {16, 2}, {16, 5}, {16, 6},
			{17, 8}, {17, 11}, {17, 12}, {17, 15},
		},
	}
}

var enemyModelBuilders = []ModelBuilder{
	StandardEnemyModel,
	ScoutEnemyModel,
	HeavyEnemyModel,
	InterceptorEnemyModel,
	BomberEnemyModel,
	FrigateEnemyModel,
	StealthEnemyModel,
	AssaultEnemyModel,
}

// RandomEnemyModel picks one of the enemy ship variants
func RandomEnemyModel(rng *rand.Rand) *WireframeModel {
	return enemyModelBuilders[rng.IntN(len(enemyModelBuilders))]()
}

// MeteoriteModel creates an irregular meteorite wireframe: an octahedron
// with randomized axis lengths so no two rocks look alike.
func MeteoriteModel(size float64, rng *rand.Rand) *WireframeModel {
	minS := size * 0.7
	maxS := size * 1.3
	r := func() float64 { return minS + rng.Float64()*(maxS-minS) }

	return &WireframeModel{
		Vertices: []physics.Vector3D{
			v(0, 0, r()),  // top
			v(0, 0, -r()), // bottom
			v(0, r(), 0),  // front
			v(0, -r(), 0), // back
			v(r(), 0, 0),  // right
			v(-r(), 0, 0), // left
		},
		Edges: [][2]int{
			// Top pyramid
			{0, 2}, {0, 3}, {0, 4}, {0, 5},
			// Bottom pyramid
			{1, 2}, {1, 3}, {1, 4}, {1, 5},
			// Equator
			{2, 4}, {4, 3}, {3, 5}, {5, 2},
		},
	}
}

// LifeSphereModel creates a sphere wireframe from latitude/longitude bands
func LifeSphereModel(size float64) *WireframeModel {
	const latSegments = 8
	const lonSegments = 8

	model := &WireframeModel{}

	for i := 0; i <= latSegments; i++ {
		lat := math.Pi*float64(i)/latSegments - math.Pi/2
		for j := 0; j < lonSegments; j++ {
			lon := 2 * math.Pi * float64(j) / lonSegments
			model.Vertices = append(model.Vertices, v(
				size*math.Cos(lat)*math.Cos(lon),
				size*math.Cos(lat)*math.Sin(lon),
				size*math.Sin(lat),
			))
		}
	}

	// Latitude circles
	for i := 0; i <= latSegments; i++ {
		for j := 0; j < lonSegments; j++ {
			current := i*lonSegments + j
			nextLon := i*lonSegments + (j+1)%lonSegments
			model.Edges = append(model.Edges, [2]int{current, nextLon})
		}
	}

	// Longitude lines
	for i := 0; i < latSegments; i++ {
		for j := 0; j < lonSegments; j++ {
			current := i*lonSegments + j
			nextLat := (i+1)*lonSegments + j
			model.Edges = append(model.Edges, [2]int{current, nextLat})
		}
	}

	// Internal cross connecting the poles through the center
	centerIdx := len(model.Vertices)
	model.Vertices = append(model.Vertices, physics.Vector3D{})
	model.Edges = append(model.Edges,
		[2]int{centerIdx, 0},
		[2]int{centerIdx, lonSegments * latSegments},
	)

	return model
}

// LaserModel creates a laser bolt wireframe of the given length
func LaserModel(length float64) *WireframeModel {
	return &WireframeModel{
		Vertices: []physics.Vector3D{
			// Front tip
			v(0, 0, length/2),
			// Mid ring
			v(0.1, 0, 0), v(-0.1, 0, 0), v(0, 0.1, 0), v(0, -0.1, 0),
			// Back
			v(0, 0, -length/2),
		},
		Edges: [][2]int{
			// Front to mid
			{0, 1}, {0, 2}, {0, 3}, {0, 4},
			// Mid ring
			{1, 3}, {3, 2}, {2, 4}, {4, 1},
			// Mid to back
			{1, 5}, {2, 5}, {3, 5}, {4, 5},
		},
	}
}

// CubeModel creates a simple cube, handy in tests
func CubeModel(size float64) *WireframeModel {
	s := size / 2
	return &WireframeModel{
		Vertices: []physics.Vector3D{
			v(-s, -s, -s), v(s, -s, -s), v(s, s, -s), v(-s, s, -s),
			v(-s, -s, s), v(s, -s, s), v(s, s, s), v(-s, s, s),
		},
		Edges: [][2]int{
			// Front face
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			// Back face
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			// Connecting edges
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
	}
}
