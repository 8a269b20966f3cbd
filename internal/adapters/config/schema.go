package config

// File is the structure of the modkit.yaml configuration file.
// Nil fields are missing from the file and get completed with defaults.
type File struct {
	SaveDir              *string           `yaml:"saveDir"`
	Store                *string           `yaml:"store"`
	Parallelism          *int              `yaml:"parallelism"`
	AllowedNativeClasses []string          `yaml:"allowedNativeClasses"`
	ObjectMarks          map[string]string `yaml:"objectMarks"`
}

// Env holds the environment overrides applied on top of the file.
type Env struct {
	SaveDir     *string `env:"MODKIT_SAVE_DIR"`
	Store       *string `env:"MODKIT_STORE"`
	Parallelism *int    `env:"MODKIT_PARALLELISM"`
}
