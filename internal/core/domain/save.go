package domain

import (
	"time"

	"github.com/blang/semver/v4"
	"go.trai.ch/zerr"
)

// SaveFormatVersion is the version of the save document layout written by this build.
// Saves with the same major version and a minor version not newer than this one can be read.
var SaveFormatVersion = semver.MustParse("1.1.0")

// SaveFile is one persisted object hierarchy for a single source package.
type SaveFile struct {
	FormatVersion string    `json:"FormatVersion"`
	Package       string    `json:"Package"`
	Checksum      string    `json:"Checksum,omitempty"`
	SavedAt       time.Time `json:"SavedAt"`
	Objects       []Record  `json:"Objects"`
}

// CheckSaveFormat verifies that a save written with version v can be read by this build.
func CheckSaveFormat(v string) error {
	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return zerr.With(zerr.Wrap(ErrIncompatibleSaveFormat, "failed to parse save format version"), "format_version", v)
	}
	if parsed.Major != SaveFormatVersion.Major || parsed.Minor > SaveFormatVersion.Minor {
		err := zerr.With(zerr.Wrap(ErrIncompatibleSaveFormat, "failed to check save format"), "format_version", v)
		return zerr.With(err, "supported_version", SaveFormatVersion.String())
	}
	return nil
}
