package renderer

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the interleaved vertex layout consumed by the lit shader.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    mgl32.Vec3
}

// vertexStride is the byte size of one Vertex.
const vertexStride = 9 * 4

// Mesh is CPU-side indexed geometry.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// VertexBytes returns the vertex data ready for upload.
func (m Mesh) VertexBytes() []byte {
	return common.SliceToBytes(m.Vertices)
}

// IndexBytes returns the index data ready for upload.
func (m Mesh) IndexBytes() []byte {
	return common.SliceToBytes(m.Indices)
}

// cubeFaces lists each face as its outward normal and two in-plane axes chosen so
// normal = u x v, giving counter-clockwise winding seen from outside.
var cubeFaces = [6][3]mgl32.Vec3{
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
}

// CubeMesh builds an axis-aligned cube centered on the origin with flat per-face normals.
//
// Parameters:
//   - size: edge length
//   - color: vertex color applied to every face
//
// Returns:
//   - Mesh: 24 vertices and 36 indices
func CubeMesh(size float32, color mgl32.Vec3) Mesh {
	half := size / 2
	m := Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for _, face := range cubeFaces {
		n, u, v := face[0], face[1], face[2]
		base := uint32(len(m.Vertices))
		center := n.Mul(half)
		for _, corner := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			p := center.Add(u.Mul(corner[0] * half)).Add(v.Mul(corner[1] * half))
			m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: n, Color: color})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}
