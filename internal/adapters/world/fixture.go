package world

import (
	"math"
	"slices"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

type flagName struct {
	name string
	flag domain.ObjectFlags
}

var flagNames = []flagName{
	{"public", domain.FlagPublic},
	{"standalone", domain.FlagStandalone},
	{"transactional", domain.FlagTransactional},
	{"class_default_object", domain.FlagClassDefaultObject},
	{"archetype_object", domain.FlagArchetypeObject},
	{"transient", domain.FlagTransient},
	{"default_subobject", domain.FlagDefaultSubObject},
}

// Decode builds a world from its YAML description.
func Decode(data []byte) (*World, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, "failed to parse world description")
	}

	w := New()
	for _, p := range doc.Packages {
		if p.Name == "" {
			return nil, zerr.New("package name is required")
		}
		w.CreatePackage(p.Name)
	}

	for _, p := range doc.Packages {
		pkg := w.FindPackage(p.Name)
		for _, c := range p.Classes {
			if err := w.decodeClass(pkg, c); err != nil {
				return nil, zerr.With(err, "package", p.Name)
			}
		}
	}

	type pending struct {
		obj domain.Handle
		dto ObjectDTO
	}
	var created []pending
	for _, p := range doc.Packages {
		pkg := w.FindPackage(p.Name)
		for _, o := range p.Objects {
			h, err := w.decodeObject(pkg, o)
			if err != nil {
				return nil, zerr.With(err, "package", p.Name)
			}
			created = append(created, pending{obj: h, dto: o})
		}
	}

	// Values are applied once every object exists so references may point forward.
	for _, c := range created {
		if err := w.decodeValues(c.obj, c.dto.Values); err != nil {
			return nil, zerr.With(err, "object", w.PathName(c.obj))
		}
	}
	return w, nil
}

func (w *World) decodeClass(pkg domain.Handle, c ClassDTO) error {
	super := domain.NoObject
	if c.Super != "" {
		super = w.FindByPath(c.Super)
		if super.IsNone() {
			return zerr.With(zerr.Wrap(domain.ErrClassNotFound, "unknown super class"), "class", c.Super)
		}
	}
	fields := make([]domain.Field, 0, len(c.Fields))
	for _, f := range c.Fields {
		field := domain.Field{Name: f.Name, Type: domain.FieldType(f.Type), Elem: domain.FieldType(f.Elem)}
		if f.Transient {
			field.Flags |= domain.FieldTransient
		}
		fields = append(fields, field)
	}
	_, err := w.DefineClass(pkg, c.Name, super, fields, c.Native)
	return err
}

func (w *World) decodeObject(pkg domain.Handle, o ObjectDTO) (domain.Handle, error) {
	class := w.FindByPath(o.Class)
	if class.IsNone() {
		return domain.NoObject, zerr.With(zerr.Wrap(domain.ErrClassNotFound, "unknown object class"), "class", o.Class)
	}
	outer := pkg
	if o.Outer != "" {
		outer = w.FindByPath(o.Outer)
		if outer.IsNone() {
			return domain.NoObject, zerr.With(domain.ErrOuterNotResolved, "outer", o.Outer)
		}
	}
	flags, err := parseFlags(o.Flags)
	if err != nil {
		return domain.NoObject, err
	}
	return w.NewObject(class, outer, o.Name, flags)
}

func (w *World) decodeValues(obj domain.Handle, values map[string]any) error {
	fields := w.Fields(w.ClassOf(obj))
	for name, raw := range values {
		i := slices.IndexFunc(fields, func(f domain.Field) bool { return f.Name == name })
		if i < 0 {
			return zerr.With(zerr.New("unknown field"), "field", name)
		}
		value, err := w.fromYAML(fields[i].Type, fields[i].Elem, raw)
		if err != nil {
			return zerr.With(err, "field", name)
		}
		if err := w.SetFieldValue(obj, fields[i], value); err != nil {
			return err
		}
	}
	return nil
}

func (w *World) fromYAML(t, elem domain.FieldType, raw any) (any, error) {
	switch t {
	case domain.FieldInt:
		switch v := raw.(type) {
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		case uint64:
			if v <= math.MaxInt64 {
				return int64(v), nil
			}
		case float64:
			if v == math.Trunc(v) {
				return int64(v), nil
			}
		}
	case domain.FieldFloat:
		switch v := raw.(type) {
		case int:
			return float64(v), nil
		case float64:
			return v, nil
		}
	case domain.FieldBool:
		if v, ok := raw.(bool); ok {
			return v, nil
		}
	case domain.FieldString:
		if v, ok := raw.(string); ok {
			return v, nil
		}
	case domain.FieldObject:
		if raw == nil {
			return domain.NoObject, nil
		}
		if path, ok := raw.(string); ok {
			h := w.FindByPath(path)
			if h.IsNone() {
				return nil, zerr.With(domain.ErrObjectNotFound, "path", path)
			}
			return h, nil
		}
	case domain.FieldArray:
		if raw == nil {
			return []any{}, nil
		}
		if items, ok := raw.([]any); ok {
			out := make([]any, len(items))
			for i, item := range items {
				v, err := w.fromYAML(elem, "", item)
				if err != nil {
					return nil, err
				}
				out[i] = v
			}
			return out, nil
		}
	case domain.FieldMap:
		if raw == nil {
			return map[string]any{}, nil
		}
		if entries, ok := raw.(map[string]any); ok {
			out := make(map[string]any, len(entries))
			for k, item := range entries {
				v, err := w.fromYAML(elem, "", item)
				if err != nil {
					return nil, err
				}
				out[k] = v
			}
			return out, nil
		}
	}
	return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrPropertyEncoding, "value does not match field type"), "type", string(t)), "value", raw)
}

// Encode writes the YAML description of w. The core package is implied and left out.
func Encode(w *World) ([]byte, error) {
	w.mu.RLock()
	doc := w.document()
	w.mu.RUnlock()

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode world description")
	}
	return data, nil
}

func (w *World) document() Document {
	var doc Document
	for i, o := range w.objects {
		pkg := domain.Handle(i + 1)
		if !o.outer.IsNone() || o.name.String() == CorePackage {
			continue
		}
		p := PackageDTO{Name: o.name.String()}
		for j, c := range w.objects {
			h := domain.Handle(j + 1)
			if w.packageOf(h) != pkg || h == pkg {
				continue
			}
			switch {
			case c.meta != nil:
				p.Classes = append(p.Classes, w.classDTO(c))
			case !c.flags.Has(domain.FlagClassDefaultObject):
				p.Objects = append(p.Objects, w.objectDTO(pkg, c))
			}
		}
		doc.Packages = append(doc.Packages, p)
	}
	return doc
}

func (w *World) classDTO(c *object) ClassDTO {
	dto := ClassDTO{Name: c.name.String(), Native: c.meta.native}
	if c.meta.super != w.objectClass {
		dto.Super = w.pathName(c.meta.super)
	}
	for _, f := range c.meta.fields {
		dto.Fields = append(dto.Fields, FieldDTO{
			Name:      f.Name,
			Type:      string(f.Type),
			Elem:      string(f.Elem),
			Transient: f.Is(domain.FieldTransient),
		})
	}
	return dto
}

func (w *World) objectDTO(pkg domain.Handle, o *object) ObjectDTO {
	dto := ObjectDTO{Name: o.name.String(), Class: w.pathName(o.class)}
	if o.outer != pkg {
		dto.Outer = w.pathName(o.outer)
	}
	for _, f := range flagNames {
		if o.flags.Has(f.flag) {
			dto.Flags = append(dto.Flags, f.name)
		}
	}
	var chain []domain.Handle
	for c := o.class; !c.IsNone(); c = w.get(c).meta.super {
		chain = append(chain, c)
	}
	for _, c := range slices.Backward(chain) {
		for _, f := range w.get(c).meta.fields {
			v, ok := o.values[f.Name]
			if !ok {
				continue
			}
			if dto.Values == nil {
				dto.Values = make(map[string]any)
			}
			dto.Values[f.Name] = w.toYAML(v)
		}
	}
	return dto
}

func (w *World) toYAML(v any) any {
	switch v := v.(type) {
	case domain.Handle:
		if v.IsNone() {
			return nil
		}
		return w.pathName(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = w.toYAML(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = w.toYAML(item)
		}
		return out
	default:
		return v
	}
}

func parseFlags(names []string) (domain.ObjectFlags, error) {
	var flags domain.ObjectFlags
	for _, name := range names {
		i := slices.IndexFunc(flagNames, func(f flagName) bool { return f.name == name })
		if i < 0 {
			return 0, zerr.With(zerr.New("unknown object flag"), "flag", name)
		}
		flags |= flagNames[i].flag
	}
	return flags, nil
}
