package hierarchy_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/modkit/internal/adapters/propcodec"
	"go.trai.ch/modkit/internal/adapters/world"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/modkit/internal/engine/hierarchy"
	"go.trai.ch/modkit/internal/json"
)

const classesYAML = `
packages:
  - name: /Script/Game
    classes:
      - name: Widget
        fields:
          - {name: count, type: int}
      - name: Node
        fields:
          - {name: target, type: object}
          - {name: items, type: array, elem: object}
          - {name: scratch, type: int, transient: true}
      - name: Blob
        native: true
        fields:
          - {name: size, type: int}
`

const scenarioYAML = classesYAML + `
  - name: /Game/P
    objects:
      - name: Foo
        class: /Script/Game.Widget
        flags: [public, standalone, transient]
        values: {count: 5}
`

const graphYAML = classesYAML + `
  - name: /Game/Other
    objects:
      - name: Thing
        class: /Script/Game.Widget
  - name: /Game/P
    objects:
      - name: A
        class: /Script/Game.Node
        values:
          target: /Game/P.A:B
          items: [/Game/Other.Thing, null]
      - name: B
        class: /Script/Game.Node
        outer: /Game/P.A
        values:
          target: /Game/P.A
`

func decodeWorld(t *testing.T, doc string) *world.World {
	t.Helper()
	w, err := world.Decode([]byte(doc))
	require.NoError(t, err)
	return w
}

func newSerializer(w *world.World, logger ports.Logger) *hierarchy.Serializer {
	return hierarchy.NewSerializer(w, propcodec.New(w), logger)
}

// serializePackage saves every object of pkg in a fresh session and returns the records
// after a trip through the wire format.
func serializePackage(t *testing.T, w *world.World, pkg string, logger ports.Logger) []domain.Record {
	t.Helper()
	s := newSerializer(w, logger)
	pkgHandle := w.FindPackage(pkg)
	s.InitializeForSerialization(pkgHandle)
	for _, obj := range w.ObjectsIn(pkgHandle) {
		s.SerializeObject(obj)
	}
	records, err := s.Finalize()
	require.NoError(t, err)

	data, err := json.Marshal(records)
	require.NoError(t, err)
	var decoded []domain.Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	return decoded
}
