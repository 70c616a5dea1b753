package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/objkit/pkg/formats"
)

// ErrIndexOutOfRange is wrapped by every IndexError.
var ErrIndexOutOfRange = errors.New("face index out of range")

// IndexError describes one face definition index that points past its array.
type IndexError struct {
	Face  int    // face position in the object
	Def   int    // definition position in the face
	Array string // "vertex", "uv" or "normal"
	Index uint32 // zero-based index
	Len   int    // length of the referenced array
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: face %d definition %d: %s index %d (have %d)",
		ErrIndexOutOfRange, e.Face, e.Def, e.Array, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// Validate returns every face definition index in obj that does not point
// into the object's arrays. An empty result means the object can be built.
// A nil object has nothing to check; Build reports it as ErrNilObject.
func Validate(obj *formats.OBJObject) []*IndexError {
	if obj == nil {
		return nil
	}
	var errs []*IndexError
	for fi, face := range obj.Faces {
		errs = append(errs, checkFace(obj, fi, face)...)
	}
	return errs
}

func checkFace(obj *formats.OBJObject, fi int, face formats.Face) []*IndexError {
	var errs []*IndexError
	for di, fd := range face.FaceDefs {
		errs = append(errs, checkDef(obj, fi, di, fd)...)
	}
	return errs
}

func checkDef(obj *formats.OBJObject, fi, di int, fd formats.FaceDefinition) []*IndexError {
	var errs []*IndexError
	check := func(array string, idx uint32, n int) {
		if int64(idx) >= int64(n) {
			errs = append(errs, &IndexError{Face: fi, Def: di, Array: array, Index: idx, Len: n})
		}
	}
	check("vertex", fd.VertexIndex, len(obj.Vertices))
	check("uv", fd.UVTextureIndex, len(obj.UVTextures))
	check("normal", fd.NormalIndex, len(obj.Normals))
	return errs
}
