package mesh

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/objkit/pkg/formats"
)

// ErrNilObject is returned when Build is called without an object.
var ErrNilObject = errors.New("mesh: nil object")

// Build creates a mesh from a parsed object. Each face definition becomes one
// output vertex with the next sequential index, in face order.
// Returns an *IndexError if any definition points outside the object's arrays,
// unless opts.SkipInvalidFaces is set, in which case such faces are left out.
func Build(obj *formats.OBJObject, opts BuildOptions) (*Mesh, error) {
	if obj == nil {
		return nil, ErrNilObject
	}

	faces := make([]formats.Face, 0, len(obj.Faces))
	count := 0
	for fi, face := range obj.Faces {
		if errs := checkFace(obj, fi, face); len(errs) > 0 {
			if !opts.SkipInvalidFaces {
				return nil, errs[0]
			}
			continue
		}
		faces = append(faces, face)
		count += len(face.FaceDefs)
	}

	m := &Mesh{
		Name:     obj.DisplayName(),
		Vertices: make([]Vertex, 0, count),
		Indices:  make([]uint32, 0, count),
	}

	var i uint32
	for _, face := range faces {
		for _, fd := range face.FaceDefs {
			m.Vertices = append(m.Vertices, Vertex{
				Position: mgl32.Vec3(obj.Vertices[fd.VertexIndex].ToArray()),
				Normal:   mgl32.Vec3(obj.Normals[fd.NormalIndex].ToArray()),
				TexCoord: mgl32.Vec2(obj.UVTextures[fd.UVTextureIndex].ToArray()),
			})
			m.Indices = append(m.Indices, i)
			i++
		}
	}

	m.Bounds = computeBounds(m.Vertices)
	if opts.CenterXZ {
		CenterXZ(m.Vertices, &m.Bounds)
	}

	return m, nil
}

// CenterXZ centers the vertices horizontally (X/Z) but preserves Y offset.
// Returns the centering offset applied.
func CenterXZ(vertices []Vertex, bounds *Bounds) (centerX, centerZ float32) {
	c := bounds.Center()
	centerX, centerZ = c.X(), c.Z()

	for i := range vertices {
		vertices[i].Position[0] -= centerX
		vertices[i].Position[2] -= centerZ
	}

	bounds.Min[0] -= centerX
	bounds.Max[0] -= centerX
	bounds.Min[2] -= centerZ
	bounds.Max[2] -= centerZ

	return centerX, centerZ
}

// FaceNormal returns the unit normal of the plane through the first three
// positions of face, following counter-clockwise winding.
// Returns false for a nil object, faces with fewer than 3 definitions, out-of-range indices,
// or degenerate triangles.
func FaceNormal(obj *formats.OBJObject, face formats.Face) (mgl32.Vec3, bool) {
	if obj == nil || len(face.FaceDefs) < 3 {
		return mgl32.Vec3{}, false
	}

	var p [3]mgl32.Vec3
	for j := 0; j < 3; j++ {
		idx := face.FaceDefs[j].VertexIndex
		if int64(idx) >= int64(len(obj.Vertices)) {
			return mgl32.Vec3{}, false
		}
		p[j] = mgl32.Vec3(obj.Vertices[idx].ToArray())
	}

	n := p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
	if n.Len() < 1e-5 {
		return mgl32.Vec3{}, false
	}
	return n.Normalize(), true
}

func computeBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, v := range vertices[1:] {
		updateBounds(&b, v.Position)
	}
	return b
}

func updateBounds(b *Bounds, p mgl32.Vec3) {
	for axis := 0; axis < 3; axis++ {
		if p[axis] < b.Min[axis] {
			b.Min[axis] = p[axis]
		}
		if p[axis] > b.Max[axis] {
			b.Max[axis] = p[axis]
		}
	}
}
