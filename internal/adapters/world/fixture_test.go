package world_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modkit/internal/adapters/world"
	"go.trai.ch/modkit/internal/core/domain"
)

const fixture = `
packages:
  - name: /Script/Game
    classes:
      - name: Widget
        fields:
          - {name: count, type: int}
          - {name: ratio, type: float}
          - {name: label, type: string}
          - {name: target, type: object}
          - {name: tags, type: array, elem: string}
          - {name: scores, type: map, elem: int}
          - {name: cache, type: int, transient: true}
  - name: /Game/P
    objects:
      - name: Foo
        class: /Script/Game.Widget
        flags: [public, standalone]
        values:
          count: 5
          ratio: 2
          label: hello
          target: /Game/P.Bar
          tags: [a, b]
          scores: {x: 1}
      - name: Bar
        class: /Script/Game.Widget
      - name: Sub
        class: /Script/Game.Widget
        outer: /Game/P.Foo
`

func field(t *testing.T, w *world.World, obj domain.Handle, name string) any {
	t.Helper()
	for _, f := range w.Fields(w.ClassOf(obj)) {
		if f.Name == name {
			v, err := w.FieldValue(obj, f)
			require.NoError(t, err)
			return v
		}
	}
	t.Fatalf("field %s not found", name)
	return nil
}

func TestDecode(t *testing.T) {
	w, err := world.Decode([]byte(fixture))
	require.NoError(t, err)

	foo := w.FindByPath("/Game/P.Foo")
	bar := w.FindByPath("/Game/P.Bar")
	require.False(t, foo.IsNone())
	require.False(t, bar.IsNone())
	assert.False(t, w.FindByPath("/Game/P.Foo:Sub").IsNone())

	assert.Equal(t, domain.FlagPublic|domain.FlagStandalone, w.FlagsOf(foo))
	assert.Equal(t, int64(5), field(t, w, foo, "count"))
	assert.Equal(t, float64(2), field(t, w, foo, "ratio"))
	assert.Equal(t, "hello", field(t, w, foo, "label"))
	assert.Equal(t, bar, field(t, w, foo, "target"))
	assert.Equal(t, []any{"a", "b"}, field(t, w, foo, "tags"))
	assert.Equal(t, map[string]any{"x": int64(1)}, field(t, w, foo, "scores"))

	fields := w.Fields(w.ClassOf(foo))
	require.Len(t, fields, 7)
	assert.True(t, fields[6].Is(domain.FieldTransient))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown class",
			doc:  "packages: [{name: /Game/P, objects: [{name: Foo, class: /Script/Game.Nope}]}]",
			want: domain.ErrClassNotFound.Error(),
		},
		{
			name: "unknown field",
			doc: `packages:
  - name: /Game/P
    objects: [{name: Foo, class: /Script/CoreUObject.Object, values: {nope: 1}}]`,
			want: "unknown field",
		},
		{
			name: "unknown flag",
			doc:  "packages: [{name: /Game/P, objects: [{name: Foo, class: /Script/CoreUObject.Object, flags: [shiny]}]}]",
			want: "unknown object flag",
		},
		{
			name: "type mismatch",
			doc: `packages:
  - name: /Script/Game
    classes: [{name: W, fields: [{name: n, type: int}]}]
  - name: /Game/P
    objects: [{name: Foo, class: /Script/Game.W, values: {n: text}}]`,
			want: domain.ErrPropertyEncoding.Error(),
		},
		{
			name: "malformed",
			doc:  "packages: [",
			want: "failed to parse world description",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := world.Decode([]byte(tt.doc))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	w, err := world.Decode([]byte(fixture))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "world.yaml")
	require.NoError(t, world.Save(w, path))

	loaded, err := world.NewLoader().Load(path)
	require.NoError(t, err)
	reloaded, ok := loaded.(*world.World)
	require.True(t, ok)

	assert.Equal(t, []string{world.CorePackage, "/Script/Game", "/Game/P"}, reloaded.Packages())
	foo := reloaded.FindByPath("/Game/P.Foo")
	require.False(t, foo.IsNone())
	assert.Equal(t, int64(5), field(t, reloaded, foo, "count"))
	assert.Equal(t, reloaded.FindByPath("/Game/P.Bar"), field(t, reloaded, foo, "target"))
	assert.Equal(t, []any{"a", "b"}, field(t, reloaded, foo, "tags"))
	assert.Equal(t, domain.FlagPublic|domain.FlagStandalone, reloaded.FlagsOf(foo))
	assert.False(t, reloaded.FindByPath("/Game/P.Foo:Sub").IsNone())
}
