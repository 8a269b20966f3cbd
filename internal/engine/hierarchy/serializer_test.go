package hierarchy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports/mocks"
	"go.trai.ch/modkit/internal/engine/hierarchy"
	"go.trai.ch/modkit/internal/json"
	"go.uber.org/mock/gomock"
)

func TestSerializeObject_Scenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := decodeWorld(t, scenarioYAML)
	pkg := w.FindPackage("/Game/P")
	foo := w.FindByPath("/Game/P.Foo")

	s := newSerializer(w, mocks.NewMockLogger(ctrl))
	s.InitializeForSerialization(pkg)
	require.Equal(t, 0, s.SerializeObject(foo))

	records, err := s.Finalize()
	require.NoError(t, err)
	require.Len(t, records, 6)

	fooRec := records[0]
	assert.Equal(t, domain.KindExport, fooRec.Type)
	assert.Equal(t, "Foo", fooRec.ObjectName)
	assert.Equal(t, 1, fooRec.ClassIndex())
	assert.Equal(t, 3, fooRec.OuterIndex())
	assert.Equal(t, domain.FlagPublic|domain.FlagStandalone, fooRec.Flags())

	widget := records[1]
	assert.Equal(t, domain.KindImport, widget.Type)
	assert.Equal(t, "/Script/CoreUObject", widget.ClassPackage)
	assert.Equal(t, "Class", widget.ClassName)
	assert.Equal(t, "Widget", widget.ObjectName)
	assert.Equal(t, 2, widget.OuterIndex())

	gamePkg := records[2]
	assert.Equal(t, domain.KindImport, gamePkg.Type)
	assert.Equal(t, "Package", gamePkg.ClassName)
	assert.Equal(t, "/Script/Game", gamePkg.ObjectName)
	assert.Nil(t, gamePkg.Outer)

	root := records[3]
	assert.Equal(t, domain.KindExport, root.Type)
	assert.Equal(t, 4, root.ClassIndex())
	assert.Nil(t, root.Outer)
	assert.Empty(t, root.ObjectName)
	assert.Nil(t, root.ObjectFlags)
	assert.Nil(t, root.Properties)

	assert.Equal(t, "Package", records[4].ObjectName)
	assert.Equal(t, "/Script/CoreUObject", records[5].ObjectName)

	for i, rec := range records {
		assert.Equal(t, i, rec.ObjectIndex)
	}
}

func TestSerializeObject_WireFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := decodeWorld(t, scenarioYAML)

	s := newSerializer(w, mocks.NewMockLogger(ctrl))
	s.InitializeForSerialization(w.FindPackage("/Game/P"))
	s.SerializeObject(w.FindByPath("/Game/P.Foo"))
	records, err := s.Finalize()
	require.NoError(t, err)

	data, err := json.Marshal(records[:4])
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"ObjectIndex":0,"Type":"Export","ObjectClass":1,"Outer":3,"ObjectName":"Foo","ObjectFlags":3,
		 "Properties":{"count":5,"$ReferencedObjects":[]}},
		{"ObjectIndex":1,"Type":"Import","ClassPackage":"/Script/CoreUObject","ClassName":"Class","Outer":2,"ObjectName":"Widget"},
		{"ObjectIndex":2,"Type":"Import","ClassPackage":"/Script/CoreUObject","ClassName":"Package","ObjectName":"/Script/Game"},
		{"ObjectIndex":3,"Type":"Export","ObjectClass":4}
	]`, string(data))
}

func TestCompareObject_DetectsChangedField(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := decodeWorld(t, scenarioYAML)
	records := serializePackage(t, w, "/Game/P", mocks.NewMockLogger(ctrl))

	foo := w.FindByPath("/Game/P.Foo")
	count := w.Fields(w.ClassOf(foo))[0]

	s := newSerializer(w, mocks.NewMockLogger(ctrl))
	s.InitializeForDeserialization(w.FindPackage("/Game/P"), records)
	assert.True(t, s.CompareObject(0, foo))

	require.NoError(t, w.SetFieldValue(foo, count, int64(7)))
	assert.False(t, s.CompareObject(0, foo))

	v, err := w.FieldValue(foo, count)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v, "compare must not mutate the live object")
}

func TestCompareObject_Identity(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := decodeWorld(t, graphYAML)
	records := serializePackage(t, w, "/Game/P", mocks.NewMockLogger(ctrl))

	s := newSerializer(w, mocks.NewMockLogger(ctrl))
	pkg := w.FindPackage("/Game/P")
	s.InitializeForDeserialization(pkg, records)

	a := w.FindByPath("/Game/P.A")
	b := w.FindByPath("/Game/P.A:B")

	assert.True(t, s.CompareObject(domain.NoIndex, domain.NoObject))
	assert.False(t, s.CompareObject(domain.NoIndex, a))
	assert.False(t, s.CompareObject(0, domain.NoObject))
	assert.True(t, s.CompareObject(0, a))
	assert.False(t, s.CompareObject(0, b))

	rootIndex := records[0].OuterIndex()
	assert.True(t, s.CompareObject(rootIndex, pkg))
	assert.False(t, s.CompareObject(rootIndex, w.FindPackage("/Game/Other")))
}

func TestDeserializeObject_ReusesExistingObjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := decodeWorld(t, scenarioYAML)
	records := serializePackage(t, w, "/Game/P", mocks.NewMockLogger(ctrl))

	foo := w.FindByPath("/Game/P.Foo")
	count := w.Fields(w.ClassOf(foo))[0]
	require.NoError(t, w.SetFieldValue(foo, count, int64(7)))

	s := newSerializer(w, mocks.NewMockLogger(ctrl))
	s.InitializeForDeserialization(w.FindPackage("/Game/P"), records)
	assert.Equal(t, foo, s.DeserializeObject(0))

	v, err := w.FieldValue(foo, count)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
	assert.True(t, s.CompareObject(0, foo))
}

func TestRoundTrip_FreshWorld(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := decodeWorld(t, graphYAML)
	records := serializePackage(t, src, "/Game/P", mocks.NewMockLogger(ctrl))

	dst := decodeWorld(t, classesYAML+`
  - name: /Game/Other
    objects:
      - name: Thing
        class: /Script/Game.Widget
  - name: /Game/P
`)
	pkg := dst.FindPackage("/Game/P")
	s := newSerializer(dst, mocks.NewMockLogger(ctrl))
	s.InitializeForDeserialization(pkg, records)
	for i := range records {
		s.DeserializeObject(i)
	}

	a := dst.FindByPath("/Game/P.A")
	b := dst.FindByPath("/Game/P.A:B")
	require.False(t, a.IsNone())
	require.False(t, b.IsNone())
	assert.Equal(t, a, s.DeserializeObject(0))

	fields := dst.Fields(dst.ClassOf(a))
	target, err := dst.FieldValue(a, fields[0])
	require.NoError(t, err)
	assert.Equal(t, b, target)
	items, err := dst.FieldValue(a, fields[1])
	require.NoError(t, err)
	assert.Equal(t, []any{dst.FindByPath("/Game/Other.Thing"), domain.NoObject}, items)
	back, err := dst.FieldValue(b, fields[0])
	require.NoError(t, err)
	assert.Equal(t, a, back)

	for i, rec := range records {
		if rec.Type == domain.KindExport && rec.Outer != nil {
			assert.True(t, s.CompareObject(i, s.DeserializeObject(i)), "record %d", i)
		}
	}
}

func TestSerializeObject_DedupAndSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := decodeWorld(t, scenarioYAML)
	foo := w.FindByPath("/Game/P.Foo")

	s := newSerializer(w, mocks.NewMockLogger(ctrl))
	assert.Equal(t, domain.NoIndex, s.SerializeObject(domain.NoObject))
	assert.Equal(t, domain.NoObject, s.DeserializeObject(domain.NoIndex))

	s.InitializeForSerialization(w.FindPackage("/Game/P"))
	assert.Equal(t, domain.NoIndex, s.SerializeObject(domain.NoObject))
	assert.Equal(t, 0, s.Len())

	first := s.SerializeObject(foo)
	n := s.Len()
	assert.Equal(t, first, s.SerializeObject(foo))
	assert.Equal(t, n, s.Len())
}

func TestSerializeObject_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := decodeWorld(t, graphYAML)

	first := serializePackage(t, w, "/Game/P", mocks.NewMockLogger(ctrl))
	second := serializePackage(t, w, "/Game/P", mocks.NewMockLogger(ctrl))

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestFinalize_Closure(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := decodeWorld(t, graphYAML)
	records := serializePackage(t, w, "/Game/P", mocks.NewMockLogger(ctrl))

	inRange := func(i int) bool { return i >= 0 && i < len(records) }
	for _, rec := range records {
		if rec.Outer != nil {
			assert.True(t, inRange(*rec.Outer))
		}
		if rec.ObjectClass != nil {
			assert.True(t, inRange(*rec.ObjectClass))
		}
		if rec.Properties != nil {
			for _, ref := range rec.Properties.ReferencedObjects {
				assert.True(t, inRange(ref))
			}
		}
	}
}

func TestSerializeObject_SkipsTransientFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := decodeWorld(t, graphYAML)
	records := serializePackage(t, w, "/Game/P", mocks.NewMockLogger(ctrl))

	props := records[0].Properties
	require.NotNil(t, props)
	_, ok := props.Get("scratch")
	assert.False(t, ok)
	assert.Equal(t, 2, props.Len())
	assert.Len(t, props.ReferencedObjects, 2)
}

func TestObjectMark(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := decodeWorld(t, scenarioYAML)
	foo := w.FindByPath("/Game/P.Foo")
	pkg := w.FindPackage("/Game/P")

	s := newSerializer(w, mocks.NewMockLogger(ctrl))
	s.SetObjectMark(foo, "M")
	s.InitializeForSerialization(pkg)
	s.SerializeObject(foo)
	records, err := s.Finalize()
	require.NoError(t, err)
	require.Len(t, records, 1)

	data, err := json.Marshal(records[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"ObjectIndex":0,"Type":"Export","ObjectMark":"M"}`, string(data))

	d := newSerializer(w, mocks.NewMockLogger(ctrl))
	d.SetObjectMark(foo, "M")
	d.InitializeForDeserialization(pkg, records)
	assert.Equal(t, foo, d.DeserializeObject(0))
	assert.True(t, d.CompareObject(0, foo))
	assert.False(t, d.CompareObject(0, pkg))

	unregistered := newSerializer(w, mocks.NewMockLogger(ctrl))
	unregistered.InitializeForDeserialization(pkg, records)
	err = hierarchy.Guard(func() error {
		unregistered.DeserializeObject(0)
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownObjectMark)
	var cfgErr *hierarchy.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestDeserializeObject_ResolutionErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := decodeWorld(t, graphYAML)
	records := serializePackage(t, src, "/Game/P", mocks.NewMockLogger(ctrl))

	// /Game/Other is missing, so the Thing import cannot be resolved.
	dst := decodeWorld(t, classesYAML+"\n  - name: /Game/P\n")
	logger := mocks.NewMockLogger(ctrl)
	s := newSerializer(dst, logger)
	s.InitializeForDeserialization(dst.FindPackage("/Game/P"), records)

	thing := -1
	for i, rec := range records {
		if rec.Type == domain.KindImport && rec.ObjectName == "Thing" {
			thing = i
		}
	}
	require.NotEqual(t, -1, thing)

	var logged []error
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = append(logged, err) }).MinTimes(1)

	assert.True(t, s.DeserializeObject(thing).IsNone())
	n := len(logged)
	assert.True(t, s.DeserializeObject(thing).IsNone())
	assert.Len(t, logged, n, "failed resolution is cached")
	assert.ErrorContains(t, logged[0], domain.ErrPackageNotFound.Error())

	a := s.DeserializeObject(0)
	require.False(t, a.IsNone(), "partial graphs are tolerated")
	assert.True(t, s.DeserializeObject(len(records)+3).IsNone())
	assert.ErrorContains(t, logged[len(logged)-1], domain.ErrUnknownIndex.Error())
}

func TestDeserializeObject_RecordCycles(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.Record
	}{
		{
			name: "imports whose outers point at each other",
			records: []domain.Record{
				{ObjectIndex: 0, Type: domain.KindImport, ClassPackage: "/Script/Game", ClassName: "Widget", ObjectName: "X", Outer: domain.Index(1)},
				{ObjectIndex: 1, Type: domain.KindImport, ClassPackage: "/Script/Game", ClassName: "Widget", ObjectName: "Y", Outer: domain.Index(0)},
			},
		},
		{
			name: "export that is its own class",
			records: []domain.Record{
				{ObjectIndex: 0, Type: domain.KindExport, ObjectClass: domain.Index(0), Outer: domain.Index(0), ObjectName: "Loop"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			w := decodeWorld(t, scenarioYAML)
			logger := mocks.NewMockLogger(ctrl)

			var logged []error
			logger.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = append(logged, err) }).MinTimes(1)

			s := newSerializer(w, logger)
			s.InitializeForDeserialization(w.FindPackage("/Game/P"), tt.records)

			var obj domain.Handle
			err := hierarchy.Guard(func() error {
				obj = s.DeserializeObject(0)
				return nil
			})
			require.NoError(t, err)
			assert.True(t, obj.IsNone())
			require.NotEmpty(t, logged)
			assert.ErrorIs(t, logged[0], domain.ErrOuterNotResolved)

			n := len(logged)
			for i := range tt.records {
				assert.True(t, s.DeserializeObject(i).IsNone())
			}
			assert.Len(t, logged, n, "failed resolution is cached")
		})
	}
}

func TestSetObjectMark_EmptyTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := decodeWorld(t, scenarioYAML)
	s := newSerializer(w, mocks.NewMockLogger(ctrl))

	err := hierarchy.Guard(func() error {
		s.SetObjectMark(w.FindByPath("/Game/P.Foo"), "")
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyObjectMark)
	var cfgErr *hierarchy.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestSessionState(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := decodeWorld(t, scenarioYAML)
	foo := w.FindByPath("/Game/P.Foo")
	pkg := w.FindPackage("/Game/P")

	s := newSerializer(w, mocks.NewMockLogger(ctrl))
	assert.Equal(t, hierarchy.StateUnconfigured, s.State())
	err := hierarchy.Guard(func() error {
		s.SerializeObject(foo)
		return nil
	})
	assert.ErrorContains(t, err, domain.ErrSessionNotConfigured.Error())

	s.InitializeForSerialization(pkg)
	assert.Equal(t, hierarchy.StateSerialize, s.State())
	err = hierarchy.Guard(func() error {
		s.InitializeForDeserialization(pkg, nil)
		return nil
	})
	assert.ErrorContains(t, err, domain.ErrSessionConfigured.Error())

	_, err = s.Finalize()
	require.NoError(t, err)
	assert.Equal(t, hierarchy.StateFinalized, s.State())
	err = hierarchy.Guard(func() error {
		s.SerializeObject(foo)
		return nil
	})
	assert.ErrorContains(t, err, domain.ErrSessionFinalized.Error())
}

func TestGuard_PropagatesOtherPanics(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		_ = hierarchy.Guard(func() error { panic("boom") })
	})
	assert.NoError(t, hierarchy.Guard(func() error { return nil }))
}

func TestUnhandledNativeClasses(t *testing.T) {
	hierarchy.ResetUnhandledNativeClasses()
	t.Cleanup(hierarchy.ResetUnhandledNativeClasses)

	ctrl := gomock.NewController(t)
	w := decodeWorld(t, classesYAML+`
  - name: /Game/P
    objects:
      - {name: Data, class: /Script/Game.Blob}
`)
	pkg := w.FindPackage("/Game/P")
	blob := w.FindByPath("/Script/Game.Blob")

	allowed := newSerializer(w, mocks.NewMockLogger(ctrl))
	allowed.AllowNativeClass(blob)
	allowed.InitializeForSerialization(pkg)
	allowed.SerializeObject(w.FindByPath("/Game/P.Data"))
	assert.Empty(t, hierarchy.UnhandledNativeClasses())

	s := newSerializer(w, mocks.NewMockLogger(ctrl))
	s.InitializeForSerialization(pkg)
	s.SerializeObject(w.FindByPath("/Game/P.Data"))
	assert.Equal(t, []string{"/Script/Game.Blob"}, hierarchy.UnhandledNativeClasses())

	records, err := s.Finalize()
	require.NoError(t, err)
	require.NotNil(t, records[0].Properties, "native classes are still serialized")
}

func TestSerializeObject_LogsEncodeFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := decodeWorld(t, scenarioYAML)
	foo := w.FindByPath("/Game/P.Foo")

	codec := mocks.NewMockPropertyCodec(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	codec.EXPECT().ShouldPersist(gomock.Any()).Return(true).AnyTimes()
	codec.EXPECT().Encode(gomock.Any(), foo, gomock.Any(), gomock.Any()).Return(nil, domain.ErrPropertyEncoding)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrPropertyEncoding)
	})

	s := hierarchy.NewSerializer(w, codec, logger)
	s.InitializeForSerialization(w.FindPackage("/Game/P"))
	s.SerializeObject(foo)
	records, err := s.Finalize()
	require.NoError(t, err)
	assert.Equal(t, 0, records[0].Properties.Len())
	assert.Equal(t, []int{}, records[0].Properties.ReferencedObjects)
}
