// Package formats provides parsers for 3-D asset interchange formats.
package formats

// Note: Wavefront OBJ is implemented in obj.go (objects, parser, entry points)
// with primitives in obj_types.go and faces in obj_face.go
