// Package mesh flattens parsed OBJ objects into renderer-ready vertex and index buffers.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one output vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Mesh holds the vertex and index buffers built from one object.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the middle of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box on each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// BuildOptions contains options for mesh building.
type BuildOptions struct {
	// CenterXZ moves the mesh so its bounds are centered on X and Z. Y is kept.
	CenterXZ bool
	// SkipInvalidFaces drops faces with out-of-range indices instead of failing.
	SkipInvalidFaces bool
}
