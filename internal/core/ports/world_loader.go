package ports

// WorldLoader reads and writes world descriptions.
//
//go:generate mockgen -source=world_loader.go -destination=mocks/mock_world_loader.go -package=mocks
type WorldLoader interface {
	// Load reads the world description at path.
	Load(path string) (World, error)
	// Save writes world to path.
	Save(world World, path string) error
}
