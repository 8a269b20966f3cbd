package app

import (
	"context"
	"strings"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/modkit/internal/engine/hierarchy"
	"go.trai.ch/zerr"
)

// DiffStatus classifies a stored object against the live world.
type DiffStatus string

const (
	// DiffUpToDate means the live object matches the stored record.
	DiffUpToDate DiffStatus = "up-to-date"
	// DiffChanged means the live object exists but differs from the stored record.
	DiffChanged DiffStatus = "changed"
	// DiffMissing means the stored object does not exist in the world.
	DiffMissing DiffStatus = "missing"
	// DiffAdded means the live object has no stored record.
	DiffAdded DiffStatus = "added"
)

// DiffEntry is the status of one object.
type DiffEntry struct {
	Path   string
	Status DiffStatus
}

// Diff compares the stored save of pkg with the world at worldPath. Entries for stored objects
// come first in record order, followed by live objects the save does not contain.
func (a *App) Diff(ctx context.Context, worldPath, pkg string) ([]DiffEntry, error) {
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

	_, vertex := a.telemetry.Record(ctx, "diff "+pkg)

	var entries []DiffEntry
	err = hierarchy.Guard(func() error {
		s := a.newSession(world, cfg)
		s.InitializeForDeserialization(world.FindPackage(pkg), save.Objects)

		paths := recordPaths(pkg, save.Objects, func(tag string) string {
			if obj, ok := s.MarkTarget(tag); ok {
				return world.PathName(obj)
			}
			return ""
		})
		stored := make(map[string]struct{})
		for i := range save.Objects {
			rec := &save.Objects[i]
			if rec.Type != domain.KindExport {
				continue
			}
			path := paths[i]
			if rec.IsMarked() {
				stored[path] = struct{}{}
				continue
			}
			if rec.Outer == nil {
				continue
			}
			stored[path] = struct{}{}

			live := world.FindByPath(path)
			status := DiffUpToDate
			switch {
			case live.IsNone():
				status = DiffMissing
			case !s.CompareObject(i, live):
				status = DiffChanged
			}
			entries = append(entries, DiffEntry{Path: path, Status: status})
		}

		if source := world.FindPackage(pkg); !source.IsNone() {
			entries = append(entries, addedObjects(world, source, stored)...)
		}

		_, err := s.Finalize()
		return err
	})
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "diff session failed"), "package", pkg)
		vertex.Complete(err)
		return nil, err
	}
	vertex.Complete(nil)
	return entries, nil
}

func addedObjects(world ports.World, source domain.Handle, stored map[string]struct{}) []DiffEntry {
	var entries []DiffEntry
	for _, obj := range world.ObjectsIn(source) {
		path := world.PathName(obj)
		if _, ok := stored[path]; ok {
			continue
		}
		entries = append(entries, DiffEntry{Path: path, Status: DiffAdded})
	}
	return entries
}

// recordPaths computes the object path of every record from its outer chain. The package
// root export is named pkg and marked records take the path of their mark target. Records
// with an unresolvable outer get an empty path.
func recordPaths(pkg string, records []domain.Record, markPath func(tag string) string) []string {
	paths := make([]string, len(records))
	done := make([]bool, len(records))

	var pathOf func(i int, depth int) string
	pathOf = func(i int, depth int) string {
		if i < 0 || i >= len(records) || depth > len(records) {
			return ""
		}
		if done[i] {
			return paths[i]
		}
		rec := &records[i]
		var path string
		switch {
		case rec.IsMarked():
			path = markPath(rec.ObjectMark)
		case rec.Outer == nil && rec.Type == domain.KindExport:
			path = pkg
		case rec.Outer == nil:
			path = rec.ObjectName
		default:
			parent := pathOf(*rec.Outer, depth+1)
			if parent != "" && rec.ObjectName != "" {
				// Packages are the only paths without a '.'.
				sep := "."
				if strings.Contains(parent, ".") {
					sep = ":"
				}
				path = parent + sep + rec.ObjectName
			}
		}
		paths[i] = path
		done[i] = true
		return path
	}

	for i := range records {
		pathOf(i, 0)
	}
	return paths
}
