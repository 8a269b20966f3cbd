package world

// Document is the YAML description of a world.
type Document struct {
	Packages []PackageDTO `yaml:"packages"`
}

// PackageDTO describes one package and its contents.
type PackageDTO struct {
	Name    string      `yaml:"name"`
	Classes []ClassDTO  `yaml:"classes,omitempty"`
	Objects []ObjectDTO `yaml:"objects,omitempty"`
}

// ClassDTO describes a class. Super is a class path.
type ClassDTO struct {
	Name   string     `yaml:"name"`
	Super  string     `yaml:"super,omitempty"`
	Native bool       `yaml:"native,omitempty"`
	Fields []FieldDTO `yaml:"fields,omitempty"`
}

// FieldDTO describes a reflected field.
type FieldDTO struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Elem      string `yaml:"elem,omitempty"`
	Transient bool   `yaml:"transient,omitempty"`
}

// ObjectDTO describes an object. Class and Outer are object paths; an empty Outer is the package.
// Object references inside Values are object paths too.
type ObjectDTO struct {
	Name   string         `yaml:"name"`
	Class  string         `yaml:"class"`
	Outer  string         `yaml:"outer,omitempty"`
	Flags  []string       `yaml:"flags,omitempty"`
	Values map[string]any `yaml:"values,omitempty"`
}
