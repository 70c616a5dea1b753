package formats

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const planeOBJ = `o Plane
v 0 0 0
v 1 0 0
v 1 1 0
vn 0 0 1
vt 0 0
f 1/1/1 2/1/1 3/1/1
`

func TestParseOBJ_Plane(t *testing.T) {
	objs, err := ParseOBJString(planeOBJ)
	if err != nil {
		t.Fatalf("ParseOBJString failed: %v", err)
	}
	if len(objs) != 1 {
		t.Fatalf("expected 1 object, got %d", len(objs))
	}

	o := objs[0]
	if !o.HasName() || *o.Name != "Plane" {
		t.Errorf("expected name 'Plane', got %v", o.Name)
	}
	if len(o.Vertices) != 3 {
		t.Errorf("expected 3 vertices, got %d", len(o.Vertices))
	}
	if len(o.Normals) != 1 {
		t.Errorf("expected 1 normal, got %d", len(o.Normals))
	}
	if len(o.UVTextures) != 1 {
		t.Errorf("expected 1 uv, got %d", len(o.UVTextures))
	}
	if o.Smoothing != SmoothingOff {
		t.Errorf("expected smoothing 0, got %d", o.Smoothing)
	}
	if len(o.Faces) != 1 {
		t.Fatalf("expected 1 face, got %d", len(o.Faces))
	}

	defs := o.Faces[0].FaceDefs
	if len(defs) != 3 {
		t.Fatalf("expected 3 face definitions, got %d", len(defs))
	}
	for i, fd := range defs {
		if fd.VertexIndex != uint32(i) {
			t.Errorf("def %d: expected vertex index %d, got %d", i, i, fd.VertexIndex)
		}
		if fd.NormalIndex != 0 || fd.UVTextureIndex != 0 {
			t.Errorf("def %d: expected normal/uv index 0, got %d/%d", i, fd.NormalIndex, fd.UVTextureIndex)
		}
	}
}

func TestParseOBJ_VerticesInFileOrder(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("o Points\n")
	const n = 50
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "v 1 0 %d\n", i)
	}

	objs, err := ParseOBJString(sb.String())
	if err != nil {
		t.Fatalf("ParseOBJString failed: %v", err)
	}
	if len(objs) != 1 {
		t.Fatalf("expected 1 object, got %d", len(objs))
	}
	if len(objs[0].Vertices) != n {
		t.Fatalf("expected %d vertices, got %d", n, len(objs[0].Vertices))
	}
	for i, v := range objs[0].Vertices {
		if v.Z != float32(i) {
			t.Errorf("vertex %d: expected z = %d, got %f", i, i, v.Z)
		}
	}
}

func TestParseOBJ_Empty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "# only a comment\n"} {
		objs, err := ParseOBJString(input)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", input, err)
		}
		if objs == nil || len(objs) != 0 {
			t.Errorf("input %q: expected empty non-nil slice, got %v", input, objs)
		}
	}
}

func TestParseOBJ_MultipleObjects(t *testing.T) {
	objs, err := ParseOBJFile(filepath.Join("testdata", "two_objects.obj"))
	if err != nil {
		t.Fatalf("ParseOBJFile failed: %v", err)
	}
	if len(objs) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(objs))
	}

	if objs[0].DisplayName() != "Left" || objs[1].DisplayName() != "Right" {
		t.Errorf("expected Left, Right; got %s, %s", objs[0].DisplayName(), objs[1].DisplayName())
	}
	if len(objs[0].UVTextures) != 3 {
		t.Errorf("expected 3 uvs in first object, got %d", len(objs[0].UVTextures))
	}
	if len(objs[1].UVTextures) != 1 {
		t.Errorf("expected 1 uv in second object, got %d", len(objs[1].UVTextures))
	}
	if objs[0].Smoothing != 1 {
		t.Errorf("expected smoothing 1, got %d", objs[0].Smoothing)
	}
	if objs[1].Smoothing != 0 {
		t.Errorf("expected smoothing 0, got %d", objs[1].Smoothing)
	}
	if got := objs[1].Faces[0].String(); got != "0,0,0,2,0,0,1,0,0" {
		t.Errorf("unexpected face %q", got)
	}
}

func TestParseOBJ_SmoothingLastWriteWins(t *testing.T) {
	input := "o Obj\ns 1\nv 0 0 0\ns off\n"
	o, err := ParseOBJSingleString(input)
	if err != nil {
		t.Fatalf("ParseOBJSingleString failed: %v", err)
	}
	if o.Smoothing != 0 {
		t.Errorf("expected smoothing 0, got %d", o.Smoothing)
	}

	o, err = ParseOBJSingleString("o Obj\ns OFF\ns 7\n")
	if err != nil {
		t.Fatalf("ParseOBJSingleString failed: %v", err)
	}
	if o.Smoothing != 7 {
		t.Errorf("expected smoothing 7, got %d", o.Smoothing)
	}
}

func TestParseOBJ_UnnamedObject(t *testing.T) {
	objs, err := ParseOBJString("o\nv 1 2 3\no Named extra tokens\n")
	if err != nil {
		t.Fatalf("ParseOBJString failed: %v", err)
	}
	if len(objs) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(objs))
	}
	if objs[0].HasName() {
		t.Errorf("expected no name, got %q", *objs[0].Name)
	}
	if len(objs[0].Vertices) != 1 {
		t.Errorf("expected 1 vertex, got %d", len(objs[0].Vertices))
	}
	if objs[1].DisplayName() != "Named" {
		t.Errorf("expected name 'Named', got %s", objs[1].DisplayName())
	}
}

func TestParseOBJ_SkipsUnknownLines(t *testing.T) {
	input := "o Obj\nv 0 0 0\ng mygroup\nusemtl wood\n# comment\n\nv 1 1 1\n"
	objs, err := ParseOBJString(input)
	if err != nil {
		t.Fatalf("ParseOBJString failed: %v", err)
	}
	if len(objs) != 1 || len(objs[0].Vertices) != 2 {
		t.Fatalf("expected 1 object with 2 vertices, got %+v", objs)
	}
	if objs[0].Vertices[1] != NewVertex(1, 1, 1) {
		t.Errorf("unexpected vertex %v", objs[0].Vertices[1])
	}
}

func TestParseOBJ_CRLF(t *testing.T) {
	o, err := ParseOBJSingleString("o Obj\r\nv 1 2 3\r\nf 1/1/1\r\n")
	if err != nil {
		t.Fatalf("ParseOBJSingleString failed: %v", err)
	}
	if *o.Name != "Obj" {
		t.Errorf("expected name 'Obj', got %q", *o.Name)
	}
	if o.Vertices[0] != NewVertex(1, 2, 3) {
		t.Errorf("unexpected vertex %v", o.Vertices[0])
	}
}

func TestParseOBJ_EmptyFace(t *testing.T) {
	o, err := ParseOBJSingleString("o Obj\nf\n")
	if err != nil {
		t.Fatalf("ParseOBJSingleString failed: %v", err)
	}
	if len(o.Faces) != 1 || len(o.Faces[0].FaceDefs) != 0 {
		t.Errorf("expected one empty face, got %+v", o.Faces)
	}
}

func TestParseOBJ_OutOfRangeIndicesAccepted(t *testing.T) {
	o, err := ParseOBJSingleString("o Obj\nf 9/9/9\n")
	if err != nil {
		t.Fatalf("ParseOBJSingleString failed: %v", err)
	}
	if o.Faces[0].FaceDefs[0].VertexIndex != 8 {
		t.Errorf("expected vertex index 8, got %d", o.Faces[0].FaceDefs[0].VertexIndex)
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		line    string
	}{
		{"vertex before object", "v 1 2 3\no Obj\nv 1 2 3\n", ErrMissingObjectDeclaration, "line 1:"},
		{"normal before object", "vn 0 0 1\n", ErrMissingObjectDeclaration, "line 1:"},
		{"uv before object", "# c\nvt 0 0\n", ErrMissingObjectDeclaration, "line 2:"},
		{"smoothing before object", "s 1\n", ErrMissingObjectDeclaration, "line 1:"},
		{"face before object", "f 1/1/1\n", ErrMissingObjectDeclaration, "line 1:"},
		{"vertex too few", "o Obj\nv 1 2\n", ErrInvalidVertexFormat, "line 2:"},
		{"vertex double space", "o Obj\nv 1  2 3\n", ErrInvalidVertexFormat, "line 2:"},
		{"vertex trailing space", "o Obj\nv 1 2 3 \n", ErrInvalidVertexFormat, "line 2:"},
		{"normal too many", "o Obj\nvn 1 2 3 4 5\n", ErrInvalidNormalFormat, "line 2:"},
		{"uv too few", "o Obj\nvt 1\n", ErrInvalidUVTextureFormat, "line 2:"},
		{"smoothing missing", "o Obj\ns\n", ErrInvalidSmoothingFormat, "line 2:"},
		{"smoothing two values", "o Obj\ns 1 2\n", ErrInvalidSmoothingFormat, "line 2:"},
		{"face shorthand", "o Obj\nf 1//1\n", nil, "line 2:"},
		{"face two parts", "o Obj\nf 1/1\n", ErrInvalidFaceDefinitionFormat, "line 2:"},
		{"face zero index", "o Obj\nf 0/1/1\n", ErrZeroFaceIndex, "line 2:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			objs, err := ParseOBJString(tt.input)
			if err == nil {
				t.Fatalf("expected error, got %d objects", len(objs))
			}
			if objs != nil {
				t.Errorf("expected no partial result, got %v", objs)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if !strings.HasPrefix(err.Error(), tt.line) {
				t.Errorf("expected error to start with %q, got %q", tt.line, err.Error())
			}
		})
	}
}

func TestParseOBJ_NumberErrors(t *testing.T) {
	tests := []string{
		"o Obj\nv 1 x 3\n",
		"o Obj\nvn 1 2 abc\n",
		"o Obj\nvt 0.5 q\n",
		"o Obj\ns 256\n",
		"o Obj\ns on\n",
		"o Obj\nf 1/a/1\n",
		"o Obj\nf 1//1\n",
		"o Obj\nf -1/1/1\n",
		"o Obj\nv 0x1p3 0 0\n",
	}

	for _, input := range tests {
		_, err := ParseOBJString(input)
		var numErr *NumberError
		if !errors.As(err, &numErr) {
			t.Errorf("input %q: expected *NumberError, got %v", input, err)
		}
	}
}

func TestParseOBJ_NumberGrammar(t *testing.T) {
	objs, err := ParseOBJString("o A\nv 1e39 -1e39 +1\ns +1\nf +1/+1/+1\n")
	if err != nil {
		t.Fatalf("ParseOBJString failed: %v", err)
	}
	if len(objs) != 1 {
		t.Fatalf("expected 1 object, got %d", len(objs))
	}

	o := objs[0]
	v := o.Vertices[0]
	if !math.IsInf(float64(v.X), 1) || !math.IsInf(float64(v.Y), -1) || v.Z != 1 {
		t.Errorf("unexpected vertex %v", v)
	}
	if o.Smoothing != 1 {
		t.Errorf("expected smoothing 1, got %d", o.Smoothing)
	}
	if fd := o.Faces[0].FaceDefs[0]; fd != NewFaceDefinition(0, 0, 0) {
		t.Errorf("unexpected face definition %+v", fd)
	}
}

func TestParseOBJFirst(t *testing.T) {
	o, err := ParseOBJFirstString("v-less comment\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o != nil {
		t.Errorf("expected nil object, got %+v", o)
	}

	o, err = ParseOBJFirstFile(filepath.Join("testdata", "two_objects.obj"))
	if err != nil {
		t.Fatalf("ParseOBJFirstFile failed: %v", err)
	}
	if o == nil || o.DisplayName() != "Left" {
		t.Errorf("expected first object 'Left', got %+v", o)
	}

	if _, err := ParseOBJFirstString("v 1 2 3\n"); !errors.Is(err, ErrMissingObjectDeclaration) {
		t.Errorf("expected ErrMissingObjectDeclaration, got %v", err)
	}
}

func TestParseOBJSingle_Cardinality(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int
	}{
		{"zero objects", "# nothing\n", 0},
		{"two objects", "o A\no B\n", 2},
		{"three objects", "o A\no B\no\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJSingleString(tt.input)
			var cardErr *CardinalityError
			if !errors.As(err, &cardErr) {
				t.Fatalf("expected *CardinalityError, got %v", err)
			}
			if cardErr.Count != tt.count {
				t.Errorf("expected count %d, got %d", tt.count, cardErr.Count)
			}
		})
	}
}

func TestParseOBJSingle_MatchesParseAll(t *testing.T) {
	all, err := ParseOBJString(planeOBJ)
	if err != nil {
		t.Fatalf("ParseOBJString failed: %v", err)
	}
	single, err := ParseOBJSingleString(planeOBJ)
	if err != nil {
		t.Fatalf("ParseOBJSingleString failed: %v", err)
	}

	if *single.Name != *all[0].Name {
		t.Errorf("name mismatch: %s vs %s", *single.Name, *all[0].Name)
	}
	if len(single.Vertices) != len(all[0].Vertices) || len(single.Faces) != len(all[0].Faces) {
		t.Errorf("content mismatch between single and parse-all results")
	}
	for i := range single.Vertices {
		if single.Vertices[i] != all[0].Vertices[i] {
			t.Errorf("vertex %d mismatch", i)
		}
	}
}

func TestParseOBJSingleFile(t *testing.T) {
	o, err := ParseOBJSingleFile(filepath.Join("testdata", "plane.obj"))
	if err != nil {
		t.Fatalf("ParseOBJSingleFile failed: %v", err)
	}
	if o.DisplayName() != "Plane" {
		t.Errorf("expected 'Plane', got %s", o.DisplayName())
	}

	_, err = ParseOBJSingleFile(filepath.Join("testdata", "two_objects.obj"))
	var cardErr *CardinalityError
	if !errors.As(err, &cardErr) || cardErr.Count != 2 {
		t.Errorf("expected cardinality error with count 2, got %v", err)
	}
}

func TestParseOBJFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.obj")

	if _, err := ParseOBJFile(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
	if _, err := ParseOBJFirstFile(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
	if _, err := ParseOBJSingleFile(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestParseOBJFile_TempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	content := "o Quad\nv 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nvn 0 0 1\nvt 0 0\nf 1/1/1 2/1/1 3/1/1 4/1/1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	o, err := ParseOBJSingleFile(path)
	if err != nil {
		t.Fatalf("ParseOBJSingleFile failed: %v", err)
	}
	if len(o.Faces[0].FaceDefs) != 4 {
		t.Errorf("expected quad face, got %d definitions", len(o.Faces[0].FaceDefs))
	}
}

func TestOBJParser_Strict(t *testing.T) {
	p := OBJParser{Strict: true}

	objs, err := p.Parse([]byte("# header\n\no Obj\nv 1 2 3\n"))
	if err != nil {
		t.Fatalf("strict parse of known directives failed: %v", err)
	}
	if len(objs) != 1 {
		t.Errorf("expected 1 object, got %d", len(objs))
	}

	_, err = p.Parse([]byte("o Obj\ng group\n"))
	var tokErr *UnrecognizedTokenError
	if !errors.As(err, &tokErr) {
		t.Fatalf("expected *UnrecognizedTokenError, got %v", err)
	}
	if tokErr.Token != "g" {
		t.Errorf("expected token 'g', got %q", tokErr.Token)
	}
	if !strings.HasPrefix(err.Error(), "line 2:") {
		t.Errorf("expected line 2 prefix, got %q", err.Error())
	}

	if _, err := (OBJParser{}).Parse([]byte("o Obj\ng group\n")); err != nil {
		t.Errorf("lenient parser should skip unknown directives, got %v", err)
	}
}

func TestOBJObject_Constructors(t *testing.T) {
	name := "Plane"
	vertices := []Vertex{NewVertex(1, 2, 3), NewVertex(4, 5, 6), NewVertex(7, 8, 9)}
	normals := []Normal{NewNormal(10, 11, 12)}
	uvs := []UVTexture{NewUVTexture(1, 2)}
	faces := []Face{NewFace([]FaceDefinition{NewFaceDefinition(1, 2, 3)})}

	o := NewOBJObject(&name, vertices, normals, uvs, Smoothing(1), faces)
	if *o.Name != name {
		t.Errorf("expected name %s, got %s", name, *o.Name)
	}
	if len(o.Vertices) != 3 || o.Vertices[2] != NewVertex(7, 8, 9) {
		t.Errorf("unexpected vertices %v", o.Vertices)
	}
	if o.Smoothing != 1 {
		t.Errorf("expected smoothing 1, got %d", o.Smoothing)
	}
	if o.Faces[0].FaceDefs[0].NormalIndex != 2 {
		t.Errorf("expected normal index 2, got %d", o.Faces[0].FaceDefs[0].NormalIndex)
	}

	named := NewNamedOBJObject("Cube")
	if !named.HasName() || *named.Name != "Cube" {
		t.Errorf("expected name 'Cube', got %v", named.Name)
	}
	if len(named.Vertices) != 0 || len(named.Faces) != 0 || named.Smoothing != 0 {
		t.Error("expected named object to be empty")
	}
}
