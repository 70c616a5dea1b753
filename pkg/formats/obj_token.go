package formats

// OBJToken is a line-leading directive recognized by the OBJ parser.
type OBJToken uint8

// Recognized directives.
const (
	OBJTokenO  OBJToken = iota // Object declaration
	OBJTokenV                  // Vertex position
	OBJTokenVn                 // Vertex normal
	OBJTokenVt                 // Texture coordinate
	OBJTokenS                  // Smoothing group
	OBJTokenF                  // Face
)

var objTokenNames = [...]string{
	OBJTokenO:  "o",
	OBJTokenV:  "v",
	OBJTokenVn: "vn",
	OBJTokenVt: "vt",
	OBJTokenS:  "s",
	OBJTokenF:  "f",
}

var objTokenLookup = map[string]OBJToken{
	"o":  OBJTokenO,
	"v":  OBJTokenV,
	"vn": OBJTokenVn,
	"vt": OBJTokenVt,
	"s":  OBJTokenS,
	"f":  OBJTokenF,
}

// String returns the directive as it appears in OBJ text.
func (t OBJToken) String() string {
	if int(t) < len(objTokenNames) {
		return objTokenNames[t]
	}
	return "unknown"
}

// lookupOBJToken maps a directive string to its token. Matching is case-sensitive.
func lookupOBJToken(s string) (OBJToken, bool) {
	t, ok := objTokenLookup[s]
	return t, ok
}

// ParseOBJToken returns the token for s, or an *UnrecognizedTokenError.
func ParseOBJToken(s string) (OBJToken, error) {
	t, ok := lookupOBJToken(s)
	if !ok {
		return 0, &UnrecognizedTokenError{Token: s}
	}
	return t, nil
}
