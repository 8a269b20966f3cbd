package domain

// StoreKind selects the save store backend.
type StoreKind string

const (
	// StoreFile keeps one JSON document per package in a directory.
	StoreFile StoreKind = "file"
	// StoreSQLite keeps saves in a SQLite database.
	StoreSQLite StoreKind = "sqlite"
)

// Config is the framework configuration.
type Config struct {
	// SaveDir is the directory holding file saves or the SQLite database.
	SaveDir string
	// Store selects the save store backend.
	Store StoreKind
	// Parallelism bounds the number of packages saved concurrently.
	Parallelism int
	// AllowedNativeClasses lists class paths whose native serialization is known to be handled.
	AllowedNativeClasses []string
	// ObjectMarks maps a mark tag to the path of the singleton object it stands for.
	ObjectMarks map[string]string
}

// DefaultConfig returns the configuration written when no configuration file exists.
func DefaultConfig() Config {
	return Config{
		SaveDir:              "saves",
		Store:                StoreFile,
		Parallelism:          4,
		AllowedNativeClasses: []string{"/Script/CoreUObject.Object"},
		ObjectMarks:          map[string]string{},
	}
}
