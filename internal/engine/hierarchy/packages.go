package hierarchy

import (
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/zerr"
)

// ScriptPackagePrefix marks engine-builtin class packages, which never need loading.
const ScriptPackagePrefix = "/Script/"

// CollectReferencedPackages returns the names of every package that must be available before
// the records reachable from start can be resolved, in discovery order. Reachability follows
// outers, classes and referenced objects; each index is visited once.
func (s *Serializer) CollectReferencedPackages(start []int) []string {
	s.requireActive()

	var packages []string
	visited := make(map[int]struct{})

	stack := slices.Clone(start)
	slices.Reverse(stack)
	for len(stack) > 0 {
		index := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if index == domain.NoIndex {
			continue
		}
		if _, ok := visited[index]; ok {
			continue
		}
		visited[index] = struct{}{}

		rec, ok := s.Record(index)
		if !ok {
			s.reportUnresolved(index, zerr.Wrap(domain.ErrUnknownIndex, "cannot collect referenced packages"))
			continue
		}

		var next []int
		switch {
		case rec.Type == domain.KindImport:
			if !strings.HasPrefix(rec.ClassPackage, ScriptPackagePrefix) {
				packages = append(packages, rec.ClassPackage)
			}
			if rec.Outer != nil {
				next = append(next, *rec.Outer)
			} else {
				packages = append(packages, rec.ObjectName)
			}
		case rec.IsMarked():
		case rec.Type == domain.KindExport:
			next = append(next, rec.ClassIndex())
			if rec.Outer != nil {
				next = append(next, *rec.Outer)
			}
			if rec.Properties != nil {
				next = append(next, rec.Properties.ReferencedObjects...)
			}
		}

		// Pushed in reverse so the first reference is walked first.
		slices.Reverse(next)
		stack = append(stack, next...)
	}
	return lo.Uniq(packages)
}
