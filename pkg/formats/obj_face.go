package formats

import (
	"fmt"
	"strings"
)

// FaceDefinition holds zero-based indices into the owning object's vertex,
// normal and texture coordinate arrays.
type FaceDefinition struct {
	VertexIndex    uint32
	NormalIndex    uint32
	UVTextureIndex uint32
}

// NewFaceDefinition creates a face definition from zero-based indices.
func NewFaceDefinition(vertexIndex, normalIndex, uvTextureIndex uint32) FaceDefinition {
	return FaceDefinition{
		VertexIndex:    vertexIndex,
		NormalIndex:    normalIndex,
		UVTextureIndex: uvTextureIndex,
	}
}

// ParseFaceDefinition parses a "v/vt/vn" token of one-based indices.
// The stored indices are rebased to zero. A zero index is rejected with
// ErrZeroFaceIndex.
func ParseFaceDefinition(token string) (FaceDefinition, error) {
	parts := strings.Split(token, "/")
	if len(parts) != 3 {
		return FaceDefinition{}, ErrInvalidFaceDefinitionFormat
	}

	var idx [3]uint32
	for i, p := range parts {
		n, err := parseFaceIndex(p)
		if err != nil {
			return FaceDefinition{}, err
		}
		idx[i] = n
	}

	// Token order is vertex/uv/normal
	return NewFaceDefinition(idx[0], idx[2], idx[1]), nil
}

func parseFaceIndex(s string) (uint32, error) {
	n, err := parseUint(s, 32)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: %q", ErrZeroFaceIndex, s)
	}
	return uint32(n - 1), nil
}

// Face is a polygon made of face definitions.
type Face struct {
	FaceDefs []FaceDefinition
}

// NewFace creates a face from its definitions.
func NewFace(defs []FaceDefinition) Face {
	return Face{FaceDefs: defs}
}

// ParseFace parses the face-vertex tokens following an "f" directive.
// No tokens yield an empty face.
func ParseFace(tokens []string) (Face, error) {
	defs := make([]FaceDefinition, 0, len(tokens))
	for i, tok := range tokens {
		fd, err := ParseFaceDefinition(tok)
		if err != nil {
			return Face{}, fmt.Errorf("face vertex %d: %w", i+1, err)
		}
		defs = append(defs, fd)
	}
	return NewFace(defs), nil
}

// String lists the zero-based "v,vt,vn" triples of the face, comma separated.
func (f Face) String() string {
	parts := make([]string, len(f.FaceDefs))
	for i, fd := range f.FaceDefs {
		parts[i] = fmt.Sprintf("%d,%d,%d", fd.VertexIndex, fd.UVTextureIndex, fd.NormalIndex)
	}
	return strings.Join(parts, ",")
}
