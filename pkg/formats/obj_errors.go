package formats

import (
	"errors"
	"fmt"
)

// OBJ format errors.
var (
	ErrMissingObjectDeclaration    = errors.New("expected object declaration")
	ErrInvalidVertexFormat         = errors.New("expected vertex string in the format: 'v [x] [y] [z]'")
	ErrInvalidNormalFormat         = errors.New("expected normal string in the format: 'vn [x] [y] [z]'")
	ErrInvalidUVTextureFormat      = errors.New("expected uv texture string in the format: 'vt [h] [v]'")
	ErrInvalidSmoothingFormat      = errors.New("expected smoothing string in the format: 's [s]'")
	ErrInvalidFaceDefinitionFormat = errors.New("expected face definition string in the format: '[i]/[j]/[k]'")
	ErrZeroFaceIndex               = errors.New("face index must be 1 or greater")
)

// NumberError reports a token that could not be converted to a number.
type NumberError struct {
	Token string
	Err   error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("parsing number %q: %v", e.Token, e.Err)
}

func (e *NumberError) Unwrap() error {
	return e.Err
}

// CardinalityError is returned when exactly one object was expected.
type CardinalityError struct {
	Count int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("expected .obj data to contain 1 object, but found %d objects instead", e.Count)
}

// UnrecognizedTokenError is returned for unknown directives in strict mode.
type UnrecognizedTokenError struct {
	Token string
}

func (e *UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("unrecognized token: %s", e.Token)
}
