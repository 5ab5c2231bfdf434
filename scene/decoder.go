package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/alecthomas/participle/v2/lexer/stateful"

	"github.com/gogpu/minirt"
)

// Decoding errors.
var (
	// ErrUnknownMaterial is returned when a sphere names a material that was
	// not declared earlier in the file.
	ErrUnknownMaterial = errors.New("scene: unknown material")

	// ErrInvalidValue is returned for values outside their valid range, such
	// as a non-positive radius.
	ErrInvalidValue = errors.New("scene: invalid value")
)

// Scene description grammar. A file is a sequence of statements:
//
//	# comment
//	background 0.05 0.05 0.08
//	ambient 0.1 0.1 0.1
//	recursion 20
//	camera position 0 0 -20 lookat 0 0 0
//	material red { diffuse 1 0.2 0.2 specular 0.8 0.8 0.8 shininess 50 }
//	material glass { diffuse 0.2 1 0.2 transparent 0.8 1.03 }
//	sphere -3 2 11 radius 2 material red
//	light -15 0 -15 color 0.8 0.8 0.8
type sceneFile struct {
	Statements []*statement `parser:"@@*"`
}

type statement struct {
	Pos lexer.Position

	Background *triple       `parser:"  \"background\" @@"`
	Ambient    *triple       `parser:"| \"ambient\" @@"`
	Recursion  *scalar       `parser:"| \"recursion\" @@"`
	Camera     *cameraStmt   `parser:"| \"camera\" @@"`
	Material   *materialStmt `parser:"| \"material\" @@"`
	Sphere     *sphereStmt   `parser:"| \"sphere\" @@"`
	Light      *lightStmt    `parser:"| \"light\" @@"`
}

type triple struct {
	X float64 `parser:"@Number"`
	Y float64 `parser:"@Number"`
	Z float64 `parser:"@Number"`
}

func (t *triple) vec() minirt.Vec3 {
	return minirt.V3(t.X, t.Y, t.Z)
}

func (t *triple) color() minirt.Color {
	return minirt.RGB(t.X, t.Y, t.Z)
}

type scalar struct {
	Value float64 `parser:"@Number"`
}

type cameraStmt struct {
	Position *triple `parser:"\"position\" @@"`
	LookAt   *triple `parser:"\"lookat\" @@"`
}

type materialStmt struct {
	Name  string          `parser:"@Ident \"{\""`
	Props []*materialProp `parser:"@@* \"}\""`
}

type materialProp struct {
	Diffuse     *triple       `parser:"  \"diffuse\" @@"`
	Specular    *triple       `parser:"| \"specular\" @@"`
	Shininess   *scalar       `parser:"| \"shininess\" @@"`
	Transparent *transparency `parser:"| \"transparent\" @@"`
}

type transparency struct {
	Amount float64 `parser:"@Number"`
	Index  float64 `parser:"@Number"`
}

type sphereStmt struct {
	Center   *triple `parser:"@@"`
	Radius   float64 `parser:"\"radius\" @Number"`
	Material string  `parser:"\"material\" @Ident"`
}

type lightStmt struct {
	Position *triple `parser:"@@"`
	Color    *triple `parser:"\"color\" @@"`
}

var lexerDef = lexer.Must(stateful.NewSimple([]stateful.Rule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[{}]`},
}))

var parser = participle.MustBuild(&sceneFile{},
	participle.Lexer(lexerDef),
	participle.Elide("Comment", "Whitespace"),
)

// DecodeString parses a scene description. filename is used in error
// messages only.
func DecodeString(filename, src string) (*minirt.Scene, error) {
	var f sceneFile
	if err := parser.ParseString(filename, src, &f); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return f.build()
}

// Decode reads a scene description from r.
func Decode(filename string, r io.Reader) (*minirt.Scene, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", filename, err)
	}
	return DecodeString(filename, string(src))
}

// Load reads a scene description file.
func Load(path string) (*minirt.Scene, error) {
	src, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return DecodeString(path, string(src))
}

// build applies the statements in order to a fresh SceneBuilder.
func (f *sceneFile) build() (*minirt.Scene, error) {
	b := NewSceneBuilder()

	for _, st := range f.Statements {
		switch {
		case st.Background != nil:
			b.Background(st.Background.color())

		case st.Ambient != nil:
			b.Ambient(st.Ambient.color())

		case st.Recursion != nil:
			n := st.Recursion.Value
			if n < 0 || n != float64(int(n)) {
				return nil, fmt.Errorf("%s: %w: recursion %g", st.Pos, ErrInvalidValue, n)
			}
			b.RecursionLimit(int(n))

		case st.Camera != nil:
			pos, at := st.Camera.Position.vec(), st.Camera.LookAt.vec()
			if pos == at {
				return nil, fmt.Errorf("%s: %w: camera looks at its own position", st.Pos, ErrInvalidValue)
			}
			b.Camera(pos, at)

		case st.Material != nil:
			m, err := st.Material.material()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", st.Pos, err)
			}
			b.Material(st.Material.Name, m)

		case st.Sphere != nil:
			sp := st.Sphere
			if sp.Radius <= 0 {
				return nil, fmt.Errorf("%s: %w: radius %g", st.Pos, ErrInvalidValue, sp.Radius)
			}
			if !b.HasMaterial(sp.Material) {
				return nil, fmt.Errorf("%s: %w %q", st.Pos, ErrUnknownMaterial, sp.Material)
			}
			b.Sphere(sp.Center.vec(), sp.Radius, sp.Material)

		case st.Light != nil:
			b.Light(st.Light.Position.vec(), st.Light.Color.color())
		}
	}
	return b.Build(), nil
}

// material converts the declared properties. Unset properties default to a
// black, opaque, non-shiny surface.
func (ms *materialStmt) material() (minirt.Material, error) {
	m := minirt.NewMaterial(minirt.Black, minirt.Black, 0)
	for _, p := range ms.Props {
		switch {
		case p.Diffuse != nil:
			m.Diffuse = p.Diffuse.color()
		case p.Specular != nil:
			m.Specular = p.Specular.color()
		case p.Shininess != nil:
			if p.Shininess.Value < 0 {
				return m, fmt.Errorf("%w: shininess %g", ErrInvalidValue, p.Shininess.Value)
			}
			m.Shininess = p.Shininess.Value
		case p.Transparent != nil:
			t := p.Transparent
			if t.Amount < 0 || t.Amount > 1 || t.Index <= 0 {
				return m, fmt.Errorf("%w: transparent %g %g", ErrInvalidValue, t.Amount, t.Index)
			}
			m = m.Transparent(t.Amount, t.Index)
		}
	}
	return m, nil
}
