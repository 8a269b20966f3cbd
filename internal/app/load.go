package app

import (
	"context"
	"fmt"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/engine/hierarchy"
	"go.trai.ch/zerr"
)

// LoadReport is the outcome of a Load run.
type LoadReport struct {
	Package    string
	Records    int
	Resolved   int
	Unresolved int
	// MissingPackages lists referenced packages that could not be loaded before resolution.
	MissingPackages []string
}

// Load restores the stored save of pkg into the world at worldPath. Referenced packages are
// loaded first; ones that cannot be loaded are reported and their objects stay unresolved.
// When outPath is not empty the resulting world is written there.
func (a *App) Load(ctx context.Context, worldPath, pkg, outPath string) (*LoadReport, error) {
	cfg, store, err := a.openStore()
	if err != nil {
		return nil, err
	}
	defer a.closeStore(store)

	save, err := readSave(store, pkg)
	if err != nil {
		return nil, err
	}
	world, err := a.loadWorld(worldPath)
	if err != nil {
		return nil, err
	}

	_, vertex := a.telemetry.Record(ctx, "load "+pkg)

	report := &LoadReport{Package: pkg, Records: len(save.Objects)}
	err = hierarchy.Guard(func() error {
		s := a.newSession(world, cfg)
		s.InitializeForDeserialization(world.CreatePackage(pkg), save.Objects)

		indices := allIndices(len(save.Objects))
		for _, dep := range s.CollectReferencedPackages(indices) {
			if dep == pkg {
				continue
			}
			if world.LoadPackage(dep).IsNone() {
				a.logger.Warn("referenced package " + dep + " is not available")
				vertex.Log(domain.LogLevelWarn, "missing package "+dep)
				report.MissingPackages = append(report.MissingPackages, dep)
			}
		}

		for _, index := range indices {
			if s.DeserializeObject(index).IsNone() {
				report.Unresolved++
			} else {
				report.Resolved++
			}
		}
		_, err := s.Finalize()
		return err
	})
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "load session failed"), "package", pkg)
		vertex.Complete(err)
		return nil, err
	}
	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%d resolved, %d unresolved", report.Resolved, report.Unresolved))

	if outPath != "" {
		if err := a.worlds.Save(world, outPath); err != nil {
			err = zerr.With(zerr.Wrap(err, "failed to write world"), "path", outPath)
			vertex.Complete(err)
			return nil, err
		}
	}
	vertex.Complete(nil)
	return report, nil
}
