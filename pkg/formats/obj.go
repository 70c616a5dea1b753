package formats

import (
	"fmt"
	"os"
	"strings"
)

// OBJObject is one "o" block of a Wavefront OBJ file.
type OBJObject struct {
	Name       *string // nil when the "o" line has no name
	Vertices   []Vertex
	Normals    []Normal
	UVTextures []UVTexture
	Smoothing  Smoothing // last "s" line wins
	Faces      []Face
}

// NewOBJObject creates an object from its parts.
func NewOBJObject(name *string, vertices []Vertex, normals []Normal, uvTextures []UVTexture, smoothing Smoothing, faces []Face) OBJObject {
	return OBJObject{
		Name:       name,
		Vertices:   vertices,
		Normals:    normals,
		UVTextures: uvTextures,
		Smoothing:  smoothing,
		Faces:      faces,
	}
}

// NewNamedOBJObject creates an empty object with the given name.
func NewNamedOBJObject(name string) OBJObject {
	return OBJObject{Name: &name}
}

// HasName reports whether the object was declared with a name.
func (o *OBJObject) HasName() bool {
	return o.Name != nil
}

// DisplayName returns the object name, or "(unnamed)".
func (o *OBJObject) DisplayName() string {
	if o.Name == nil {
		return "(unnamed)"
	}
	return *o.Name
}

// OBJParser parses OBJ text into objects.
type OBJParser struct {
	// Strict rejects unknown directives with *UnrecognizedTokenError instead
	// of skipping the line. Blank lines and '#' comments are always skipped.
	Strict bool
}

// objState tracks the objects built so far and which one receives data.
type objState struct {
	objects []OBJObject
	current int // -1 until the first "o" line
}

func (s *objState) target() (*OBJObject, error) {
	if s.current < 0 {
		return nil, ErrMissingObjectDeclaration
	}
	return &s.objects[s.current], nil
}

// Parse parses OBJ data. The first error aborts parsing and no objects are returned.
func (p OBJParser) Parse(data []byte) ([]OBJObject, error) {
	state := objState{current: -1}

	for i, line := range strings.Split(string(data), "\n") {
		if err := p.parseLine(&state, line); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	if state.objects == nil {
		return []OBJObject{}, nil
	}
	return state.objects, nil
}

func (p OBJParser) parseLine(s *objState, line string) error {
	// Fields are separated by a single space; runs of spaces produce empty tokens.
	tokens := strings.Split(line, " ")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	tok, ok := lookupOBJToken(tokens[0])
	if !ok {
		if p.Strict && tokens[0] != "" && !strings.HasPrefix(tokens[0], "#") {
			return &UnrecognizedTokenError{Token: tokens[0]}
		}
		return nil
	}
	tail := tokens[1:]

	if tok == OBJTokenO {
		var obj OBJObject
		if len(tail) > 0 && tail[0] != "" {
			name := tail[0]
			obj.Name = &name
		}
		s.objects = append(s.objects, obj)
		s.current = len(s.objects) - 1
		return nil
	}

	obj, err := s.target()
	if err != nil {
		return err
	}

	switch tok {
	case OBJTokenV:
		v, err := ParseVertex(tail)
		if err != nil {
			return err
		}
		obj.Vertices = append(obj.Vertices, v)
	case OBJTokenVn:
		n, err := ParseNormal(tail)
		if err != nil {
			return err
		}
		obj.Normals = append(obj.Normals, n)
	case OBJTokenVt:
		t, err := ParseUVTexture(tail)
		if err != nil {
			return err
		}
		obj.UVTextures = append(obj.UVTextures, t)
	case OBJTokenS:
		sm, err := ParseSmoothing(tail)
		if err != nil {
			return err
		}
		obj.Smoothing = sm
	case OBJTokenF:
		f, err := ParseFace(tail)
		if err != nil {
			return err
		}
		obj.Faces = append(obj.Faces, f)
	}
	return nil
}

// ParseOBJ parses every object in OBJ data, in declaration order.
func ParseOBJ(data []byte) ([]OBJObject, error) {
	return OBJParser{}.Parse(data)
}

// ParseOBJFirst returns the first object, or nil if the data declares none.
func ParseOBJFirst(data []byte) (*OBJObject, error) {
	objs, err := ParseOBJ(data)
	if err != nil {
		return nil, err
	}
	return firstObject(objs), nil
}

// ParseOBJSingle returns the only object in the data. Any other object count
// fails with *CardinalityError.
func ParseOBJSingle(data []byte) (*OBJObject, error) {
	objs, err := ParseOBJ(data)
	if err != nil {
		return nil, err
	}
	return singleObject(objs)
}

// ParseOBJString is ParseOBJ for string input.
func ParseOBJString(s string) ([]OBJObject, error) {
	return ParseOBJ([]byte(s))
}

// ParseOBJFirstString is ParseOBJFirst for string input.
func ParseOBJFirstString(s string) (*OBJObject, error) {
	return ParseOBJFirst([]byte(s))
}

// ParseOBJSingleString is ParseOBJSingle for string input.
func ParseOBJSingleString(s string) (*OBJObject, error) {
	return ParseOBJSingle([]byte(s))
}

// ParseOBJFile parses every object in an OBJ file from disk.
func ParseOBJFile(path string) ([]OBJObject, error) {
	data, err := readOBJFile(path)
	if err != nil {
		return nil, err
	}
	return ParseOBJ(data)
}

// ParseOBJFirstFile parses the first object of an OBJ file from disk.
func ParseOBJFirstFile(path string) (*OBJObject, error) {
	data, err := readOBJFile(path)
	if err != nil {
		return nil, err
	}
	return ParseOBJFirst(data)
}

// ParseOBJSingleFile parses the only object of an OBJ file from disk.
func ParseOBJSingleFile(path string) (*OBJObject, error) {
	data, err := readOBJFile(path)
	if err != nil {
		return nil, err
	}
	return ParseOBJSingle(data)
}

func readOBJFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return data, nil
}

func firstObject(objs []OBJObject) *OBJObject {
	if len(objs) == 0 {
		return nil
	}
	return &objs[0]
}

func singleObject(objs []OBJObject) (*OBJObject, error) {
	if len(objs) != 1 {
		return nil, &CardinalityError{Count: len(objs)}
	}
	return &objs[0], nil
}
