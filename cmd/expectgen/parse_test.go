package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writePackage(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestParsePackage(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"components.go": strings.Join([]string{
			"package game",
			"",
			"import (",
			"\tgfx \"example.com/engine/render\"",
			"\t\"example.com/engine/audio\"",
			")",
			"",
			"var _ = gfx.Sprite{}",
			"var _ = audio.Emitter{}",
			"",
			"type Position struct{}",
			"",
			"type Velocity struct{}",
			"",
			"// Body is a rigid body.",
			"//",
			"//ecs:expects Position, Velocity",
			"type Body struct{ Mass float64 }",
			"",
			"//ecs:expects Position",
			"//ecs:expects gfx.Sprite, audio.Emitter",
			"//ecs:expects example.com/engine/net/v2.Replicated",
			"type Actor struct{}",
			"",
			"// Plain is not annotated.",
			"type Plain struct{}",
		}, "\n"),
	})

	spec, err := parsePackage(dir, "", defaultOutput)
	require.NoError(t, err)
	require.Equal(t, "game", spec.Name)
	require.Len(t, spec.Decls, 2)

	require.Equal(t, "Body", spec.Decls[0].Name)
	require.Equal(t, []string{"Position", "Velocity"}, spec.Decls[0].Refs)

	require.Equal(t, "Actor", spec.Decls[1].Name)
	require.Equal(t, []string{"Position", "gfx.Sprite", "audio.Emitter", "net.Replicated"}, spec.Decls[1].Refs)

	require.Equal(t, []importSpec{
		{Name: "audio", Path: "example.com/engine/audio"},
		{Name: "net", Path: "example.com/engine/net/v2"},
		{Name: "gfx", Path: "example.com/engine/render"},
	}, spec.Imports)
}

func TestParsePackageGroupedTypes(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"a.go": strings.Join([]string{
			"package game",
			"",
			"type (",
			"\tPosition struct{}",
			"",
			"\t//ecs:expects Position,",
			"\tBody struct{}",
			")",
		}, "\n"),
	})

	spec, err := parsePackage(dir, "", defaultOutput)
	require.NoError(t, err)
	require.Len(t, spec.Decls, 1)
	require.Equal(t, []string{"Position"}, spec.Decls[0].Refs)
}

func TestParsePackageErrors(t *testing.T) {
	tests := []struct {
		name string
		decl string
		want string
	}{
		{
			name: "no expectations",
			decl: "//ecs:expects\ntype Body struct{}",
			want: "declares no expected components",
		},
		{
			name: "empty expectations across lines",
			decl: "//ecs:expects\n//ecs:expects   \ntype Body struct{}",
			want: "declares no expected components",
		},
		{
			name: "unknown local type",
			decl: "//ecs:expects Missing\ntype Body struct{}",
			want: `unknown type "Missing"`,
		},
		{
			name: "unknown package",
			decl: "//ecs:expects physics.Position\ntype Body struct{}",
			want: `unknown package "physics"`,
		},
		{
			name: "unexported foreign type",
			decl: "//ecs:expects example.com/physics.position\ntype Body struct{}",
			want: "unexported type",
		},
		{
			name: "empty element",
			decl: "//ecs:expects Position,,Position\ntype Body struct{}",
			want: "empty type reference",
		},
		{
			name: "malformed path",
			decl: "//ecs:expects example.com/physics\ntype Body struct{}",
			want: "malformed type reference",
		},
		{
			name: "invalid import path",
			decl: "//ecs:expects example.com/bad path.Position\ntype Body struct{}",
			want: "malformed import path",
		},
		{
			name: "generic type",
			decl: "//ecs:expects Position\ntype Body[T any] struct{ v T }",
			want: "generic types",
		},
		{
			name: "non-struct type",
			decl: "//ecs:expects Position\ntype Body int",
			want: "only struct types",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writePackage(t, map[string]string{
				"a.go": "package game\n\ntype Position struct{}\n\n" + tt.decl + "\n",
			})

			_, err := parsePackage(dir, "", defaultOutput)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
			require.Contains(t, err.Error(), "type Body")
		})
	}
}

func TestParsePackageSkipsTestsAndOutput(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"a.go":           "package game\n\ntype Position struct{}\n",
		"a_test.go":      "package game\n\n//ecs:expects Position\ntype Fixture struct{}\n",
		"expects_gen.go": "package game\n\n//ecs:expects Position\ntype Stale struct{}\n",
	})

	spec, err := parsePackage(dir, "", defaultOutput)
	require.NoError(t, err)
	require.Empty(t, spec.Decls)
}

func TestParsePackageSelectsPackage(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"a.go": "package game\n\ntype Position struct{}\n\n//ecs:expects Position\ntype Body struct{}\n",
		"b.go": "package other\n",
	})

	_, err := parsePackage(dir, "", defaultOutput)
	require.ErrorContains(t, err, "select one with -package")

	spec, err := parsePackage(dir, "game", defaultOutput)
	require.NoError(t, err)
	require.Len(t, spec.Decls, 1)
}

func TestDirectiveIgnoresLookalikes(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"a.go": "package game\n\n//ecs:expectsfoo Position\n// ecs:expects Position\ntype Body struct{}\n",
	})

	spec, err := parsePackage(dir, "", defaultOutput)
	require.NoError(t, err)
	require.Empty(t, spec.Decls)
}

func TestDefaultImportName(t *testing.T) {
	require.Equal(t, "physics", defaultImportName("example.com/physics"))
	require.Equal(t, "env", defaultImportName("github.com/caarlos0/env/v11"))
	require.Equal(t, "cmp", defaultImportName("github.com/google/go-cmp"))
	require.Equal(t, "yaml", defaultImportName("gopkg.in/yaml.v3"))
	require.Equal(t, "check", defaultImportName("gopkg.in/check.v1"))
}

func TestImportSetAvoidsCollisions(t *testing.T) {
	s := newImportSet()

	require.Equal(t, "reflect2", s.add("example.com/reflect", ""))
	require.Equal(t, "physics", s.add("example.com/a/physics", ""))
	require.Equal(t, "physics2", s.add("example.com/b/physics", ""))
	require.Equal(t, "physics", s.add("example.com/a/physics", "other"))
}

func TestParsePackageSelfReference(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"go.mod": "module example.com/game\n\ngo 1.24\n",
		"a.go":   "package game\n\ntype Position struct{}\n\n//ecs:expects example.com/game.Position, example.com/game/render.Sprite\ntype Body struct{}\n",
	})

	spec, err := parsePackage(dir, "", defaultOutput)
	require.NoError(t, err)
	require.Len(t, spec.Decls, 1)
	require.Equal(t, []string{"Position", "render.Sprite"}, spec.Decls[0].Refs)
	require.Equal(t, []importSpec{{Name: "render", Path: "example.com/game/render"}}, spec.Imports)

	out, err := render(spec, defaultOutput)
	require.NoError(t, err)
	require.NotContains(t, string(out), `"example.com/game"`)
	require.Contains(t, string(out), "reflect.TypeFor[Position](),")
}

func TestParsePackageSelfReferenceUnknownType(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"go.mod": "module example.com/game\n",
		"a.go":   "package game\n\n//ecs:expects example.com/game.Missing\ntype Body struct{}\n",
	})

	_, err := parsePackage(dir, "", defaultOutput)
	require.ErrorContains(t, err, `unknown type "example.com/game.Missing"`)
}

func TestParsePackageGopkgImport(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"a.go": "package game\n\nimport \"gopkg.in/yaml.v3\"\n\nvar _ yaml.Node\n\n//ecs:expects yaml.Node\ntype Body struct{}\n",
	})

	spec, err := parsePackage(dir, "", defaultOutput)
	require.NoError(t, err)
	require.Equal(t, []string{"yaml.Node"}, spec.Decls[0].Refs)
	require.Equal(t, []importSpec{{Name: "yaml", Path: "gopkg.in/yaml.v3"}}, spec.Imports)
}

func TestParsePackageCollectsTakenNames(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"a.go": "package game\n\nvar expectedBody = 1\n\nconst limit = 2\n\nfunc helper() {}\n\nfunc init() {}\n\ntype Position struct{}\n\nfunc (Position) method() {}\n\n//ecs:expects Position\ntype Body struct{}\n",
	})

	spec, err := parsePackage(dir, "", defaultOutput)
	require.NoError(t, err)
	require.Equal(t, []string{"Body", "Position", "expectedBody", "helper", "limit"}, spec.Taken)
}
