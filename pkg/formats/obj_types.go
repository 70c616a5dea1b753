package formats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Vertex is a vertex position.
type Vertex struct {
	X, Y, Z float32
}

// NewVertex creates a vertex position.
func NewVertex(x, y, z float32) Vertex {
	return Vertex{X: x, Y: y, Z: z}
}

// ToArray returns the position as [x, y, z].
func (v Vertex) ToArray() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// String formats the vertex as "[x, y, z]" with 9 decimal places.
func (v Vertex) String() string {
	return fmt.Sprintf("[%.9f, %.9f, %.9f]", v.X, v.Y, v.Z)
}

// ParseVertex parses "x y z" or "v x y z" tokens.
func ParseVertex(tokens []string) (Vertex, error) {
	xyz, ok := dataTokens(tokens, OBJTokenV, 3)
	if !ok {
		return Vertex{}, ErrInvalidVertexFormat
	}
	f, err := parseFloats(xyz)
	if err != nil {
		return Vertex{}, err
	}
	return NewVertex(f[0], f[1], f[2]), nil
}

// ParseVertexString parses a space separated vertex line.
func ParseVertexString(s string) (Vertex, error) {
	return ParseVertex(strings.Split(s, " "))
}

// Normal is a vertex normal. The parser does not renormalize it.
type Normal struct {
	X, Y, Z float32
}

// NewNormal creates a vertex normal.
func NewNormal(x, y, z float32) Normal {
	return Normal{X: x, Y: y, Z: z}
}

// ToArray returns the normal as [x, y, z].
func (n Normal) ToArray() [3]float32 {
	return [3]float32{n.X, n.Y, n.Z}
}

// String formats the normal as "[x, y, z]" with 9 decimal places.
func (n Normal) String() string {
	return fmt.Sprintf("[%.9f, %.9f, %.9f]", n.X, n.Y, n.Z)
}

// ParseNormal parses "x y z" or "vn x y z" tokens.
func ParseNormal(tokens []string) (Normal, error) {
	xyz, ok := dataTokens(tokens, OBJTokenVn, 3)
	if !ok {
		return Normal{}, ErrInvalidNormalFormat
	}
	f, err := parseFloats(xyz)
	if err != nil {
		return Normal{}, err
	}
	return NewNormal(f[0], f[1], f[2]), nil
}

// ParseNormalString parses a space separated normal line.
func ParseNormalString(s string) (Normal, error) {
	return ParseNormal(strings.Split(s, " "))
}

// UVTexture is a texture coordinate. Fields keep the h, v naming of the format.
type UVTexture struct {
	H, V float32
}

// NewUVTexture creates a texture coordinate.
func NewUVTexture(h, v float32) UVTexture {
	return UVTexture{H: h, V: v}
}

// ToArray returns the coordinate as [h, v].
func (t UVTexture) ToArray() [2]float32 {
	return [2]float32{t.H, t.V}
}

// String formats the coordinate as "[h, v]" with 9 decimal places.
func (t UVTexture) String() string {
	return fmt.Sprintf("[%.9f, %.9f]", t.H, t.V)
}

// ParseUVTexture parses "h v" or "vt h v" tokens.
func ParseUVTexture(tokens []string) (UVTexture, error) {
	hv, ok := dataTokens(tokens, OBJTokenVt, 2)
	if !ok {
		return UVTexture{}, ErrInvalidUVTextureFormat
	}
	f, err := parseFloats(hv)
	if err != nil {
		return UVTexture{}, err
	}
	return NewUVTexture(f[0], f[1]), nil
}

// ParseUVTextureString parses a space separated texture coordinate line.
func ParseUVTextureString(s string) (UVTexture, error) {
	return ParseUVTexture(strings.Split(s, " "))
}

// Smoothing is a smoothing group tag. Zero means smoothing is off.
type Smoothing uint8

// SmoothingOff is the default smoothing group.
const SmoothingOff Smoothing = 0

// String returns the smoothing group as a decimal number.
func (s Smoothing) String() string {
	return strconv.Itoa(int(s))
}

// ParseSmoothing parses a single smoothing token: "off" (any case) or 0-255.
func ParseSmoothing(tokens []string) (Smoothing, error) {
	if len(tokens) != 1 {
		return 0, ErrInvalidSmoothingFormat
	}
	return ParseSmoothingString(tokens[0])
}

// ParseSmoothingString parses one smoothing token.
func ParseSmoothingString(s string) (Smoothing, error) {
	if strings.EqualFold(s, "off") {
		return SmoothingOff, nil
	}
	n, err := parseUint(s, 8)
	if err != nil {
		return 0, err
	}
	return Smoothing(n), nil
}

// dataTokens accepts either exactly n data tokens, or the directive followed
// by n data tokens, and returns the data tokens.
func dataTokens(tokens []string, directive OBJToken, n int) ([]string, bool) {
	switch len(tokens) {
	case n:
		return tokens, true
	case n + 1:
		if t, ok := lookupOBJToken(tokens[0]); ok && t == directive {
			return tokens[1:], true
		}
	}
	return nil, false
}

func parseFloats(tokens []string) ([]float32, error) {
	out := make([]float32, len(tokens))
	for i, tok := range tokens {
		f, err := parseFloat(tok)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// parseFloat parses a decimal float32. Values beyond the float32 range
// become ±Inf. Hexadecimal floats are rejected.
func parseFloat(tok string) (float32, error) {
	digits := strings.TrimLeft(tok, "+-")
	if len(tok)-len(digits) <= 1 && (strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X")) {
		return 0, &NumberError{Token: tok, Err: strconv.ErrSyntax}
	}
	f, err := strconv.ParseFloat(tok, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, numberError(tok, err)
	}
	return float32(f), nil
}

// parseUint parses an unsigned decimal integer that may carry one leading '+'.
func parseUint(tok string, bitSize int) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, bitSize)
	if err != nil {
		return 0, numberError(tok, err)
	}
	return n, nil
}

func numberError(token string, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return &NumberError{Token: token, Err: err}
}
